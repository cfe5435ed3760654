package web

import (
	"errors"
	"net/http"

	"github.com/vbonduro/carcheck/internal/domain"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.service.ListInspectionSummaries(r.Context())
	if err != nil {
		http.Error(w, "failed to list inspections", http.StatusInternalServerError)
		s.logger.Error("list inspection summaries failed", "error", err)
		return
	}

	if err := s.renderPage(w,
		map[string]any{"Inspections": summaries, "Title": "Inspections"},
		"base.html", "pages/dashboard.html", "partials/severity_badge.html",
	); err != nil {
		s.logger.Error("render page failed", "page", "dashboard", "error", err)
	}
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	report, err := s.service.BuildReport(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "failed to build report", http.StatusInternalServerError)
		s.logger.Error("build report failed", "inspection_id", id, "error", err)
		return
	}

	if err := s.renderPage(w,
		map[string]any{
			"Report": report,
			"Title":  "Inspection report: " + report.ClientName,
		},
		"base.html", "pages/report.html", "partials/severity_badge.html", "partials/area_diagram.html",
	); err != nil {
		s.logger.Error("render page failed", "page", "report", "inspection_id", id, "error", err)
	}
}
