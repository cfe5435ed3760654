package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/carcheck/internal/domain"
)

func TestBuildReport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	in := env.createInspection(t)
	front := env.addItem(t, in.ID, domain.SeverityLight, "front")
	env.addItem(t, in.ID, domain.SeveritySevere, "roof")
	env.addItem(t, in.ID, domain.SeverityMedium, "front")
	_, err := env.svc.AddPhoto(ctx, front.ID, pngBytes(t, 8, 8), "image/png")
	require.NoError(t, err)

	report, err := env.svc.BuildReport(ctx, in.ID)
	require.NoError(t, err)

	assert.Equal(t, ReportSummary{
		TotalDefects: 3,
		LightCount:   1,
		MediumCount:  1,
		SevereCount:  1,
		TotalPhotos:  1,
	}, report.Summary)

	require.Len(t, report.Areas, 2)
	assert.Equal(t, "front", report.Areas[0].Area.ID)
	assert.Len(t, report.Areas[0].Items, 2)
	assert.Equal(t, "roof", report.Areas[1].Area.ID)
	assert.Equal(t, "0 0 300 400", report.Areas[1].Area.ViewBox)
}

func TestBuildReport_NumbersItemsAcrossAreas(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	in := env.createInspection(t)
	first := env.addItem(t, in.ID, domain.SeverityLight, "front")
	second := env.addItem(t, in.ID, domain.SeverityMedium, "back")
	third := env.addItem(t, in.ID, domain.SeveritySevere, "front")

	report, err := env.svc.BuildReport(ctx, in.ID)
	require.NoError(t, err)

	require.Len(t, report.Items, 3)
	for i, want := range []int64{first.ID, second.ID, third.ID} {
		assert.Equal(t, want, report.Items[i].ID)
		assert.Equal(t, i+1, report.Items[i].Number)
	}

	numbers := func(g *AreaGroup) []int {
		var out []int
		for _, item := range g.Items {
			out = append(out, item.Number)
		}
		return out
	}
	require.Len(t, report.Areas, 2)
	assert.Equal(t, "front", report.Areas[0].Area.ID)
	assert.Equal(t, []int{1, 3}, numbers(report.Areas[0]))
	assert.Equal(t, "back", report.Areas[1].Area.ID)
	assert.Equal(t, []int{2}, numbers(report.Areas[1]))
}

func TestBuildReport_Empty(t *testing.T) {
	env := newTestEnv(t)
	in := env.createInspection(t)

	report, err := env.svc.BuildReport(context.Background(), in.ID)
	require.NoError(t, err)
	assert.Zero(t, report.Summary.TotalDefects)
	assert.Empty(t, report.Areas)
}

func TestBuildReport_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.BuildReport(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
