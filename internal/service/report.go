package service

import (
	"context"

	"github.com/vbonduro/carcheck/internal/catalog"
	"github.com/vbonduro/carcheck/internal/domain"
)

type ReportSummary struct {
	TotalDefects int
	LightCount   int
	MediumCount  int
	SevereCount  int
	TotalPhotos  int
}

// ReportItem is an item with its number on the report. Numbers run 1..N in
// recording order across the whole inspection, so a diagram pin and its
// table row show the same number.
type ReportItem struct {
	*domain.ItemWithPhotos
	Number int
}

// AreaGroup collects the items drawn on one diagram view.
type AreaGroup struct {
	Area  catalog.Area
	Items []*ReportItem
}

type Report struct {
	*domain.InspectionDetail
	// Items shadows InspectionDetail.Items with the numbered list.
	Items   []*ReportItem
	Summary ReportSummary
	Areas   []*AreaGroup
}

// BuildReport assembles everything the printable report shows. Areas appear
// in diagram order and only when they hold at least one item.
func (s *InspectionService) BuildReport(ctx context.Context, id int64) (*Report, error) {
	detail, err := s.GetInspection(ctx, id)
	if err != nil {
		return nil, err
	}

	report := &Report{
		InspectionDetail: detail,
		Items:            make([]*ReportItem, 0, len(detail.Items)),
	}
	byArea := make(map[string][]*ReportItem)
	for i, item := range detail.Items {
		numbered := &ReportItem{ItemWithPhotos: item, Number: i + 1}
		report.Items = append(report.Items, numbered)
		report.Summary.TotalDefects++
		report.Summary.TotalPhotos += len(item.Photos)
		switch item.Severity {
		case domain.SeverityLight:
			report.Summary.LightCount++
		case domain.SeverityMedium:
			report.Summary.MediumCount++
		case domain.SeveritySevere:
			report.Summary.SevereCount++
		}
		byArea[item.VehicleArea] = append(byArea[item.VehicleArea], numbered)
	}

	for _, area := range catalog.Areas {
		if items := byArea[area.ID]; len(items) > 0 {
			report.Areas = append(report.Areas, &AreaGroup{Area: area, Items: items})
		}
	}
	return report, nil
}
