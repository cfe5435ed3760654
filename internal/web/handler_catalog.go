package web

import (
	"net/http"

	"github.com/vbonduro/carcheck/internal/catalog"
)

type catalogResponse struct {
	Parts       []catalog.Part       `json:"parts"`
	DefectTypes []catalog.DefectType `json:"defectTypes"`
	Severities  []catalog.Severity   `json:"severities"`
	Areas       []catalog.Area       `json:"areas"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalogResponse{
		Parts:       catalog.Parts,
		DefectTypes: catalog.DefectTypes,
		Severities:  catalog.Severities,
		Areas:       catalog.Areas,
	})
}
