package web

import "net/http"

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	inspectionID, err := parseID(r, "id")
	if err != nil {
		s.writeServiceError(w, err, "create item")
		return
	}

	var req createItemRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeServiceError(w, err, "create item")
		return
	}

	item, err := s.service.AddItem(r.Context(), req.toDomain(inspectionID))
	if err != nil {
		s.writeServiceError(w, err, "create item", "inspection_id", inspectionID)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		s.writeServiceError(w, err, "delete item")
		return
	}

	if err := s.service.DeleteItem(r.Context(), id); err != nil {
		s.writeServiceError(w, err, "delete item", "item_id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
