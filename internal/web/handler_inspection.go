package web

import (
	"net/http"
)

func (s *Server) handleListInspections(w http.ResponseWriter, r *http.Request) {
	inspections, err := s.service.ListInspections(r.Context())
	if err != nil {
		s.writeServiceError(w, err, "list inspections")
		return
	}
	writeJSON(w, http.StatusOK, inspections)
}

func (s *Server) handleGetInspection(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		s.writeServiceError(w, err, "get inspection")
		return
	}

	detail, err := s.service.GetInspection(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, err, "get inspection", "inspection_id", id)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleCreateInspection(w http.ResponseWriter, r *http.Request) {
	var req createInspectionRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeServiceError(w, err, "create inspection")
		return
	}

	in, err := s.service.CreateInspection(r.Context(), req.toDomain())
	if err != nil {
		s.writeServiceError(w, err, "create inspection")
		return
	}
	writeJSON(w, http.StatusCreated, in)
}

func (s *Server) handleUpdateInspection(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		s.writeServiceError(w, err, "update inspection")
		return
	}

	var req updateInspectionRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeServiceError(w, err, "update inspection")
		return
	}

	in, err := s.service.UpdateInspection(r.Context(), id, req.toDomain())
	if err != nil {
		s.writeServiceError(w, err, "update inspection", "inspection_id", id)
		return
	}
	writeJSON(w, http.StatusOK, in)
}

func (s *Server) handleUpdateSignature(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		s.writeServiceError(w, err, "update signature")
		return
	}

	var req signatureRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeServiceError(w, err, "update signature")
		return
	}

	in, err := s.service.UpdateSignature(r.Context(), id, *req.Signature)
	if err != nil {
		s.writeServiceError(w, err, "update signature", "inspection_id", id)
		return
	}
	writeJSON(w, http.StatusOK, in)
}

func (s *Server) handleDeleteInspection(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		s.writeServiceError(w, err, "delete inspection")
		return
	}

	if err := s.service.DeleteInspection(r.Context(), id); err != nil {
		s.writeServiceError(w, err, "delete inspection", "inspection_id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
