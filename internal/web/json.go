package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vbonduro/carcheck/internal/domain"
	"github.com/vbonduro/carcheck/internal/photoproc"
	"github.com/vbonduro/carcheck/internal/validate"
)

const maxJSONBody = 1 << 20 // 1 MB; signatures are data URLs

// errBodyTooLarge is returned by decodeJSON when the body exceeds maxJSONBody.
var errBodyTooLarge = errors.New("request body too large")

type errorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// writeServiceError maps service and validation errors onto status codes.
// Unexpected errors are logged and reported without detail.
func (s *Server) writeServiceError(w http.ResponseWriter, err error, op string, attrs ...any) {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: verr.Message, Field: verr.Field})
	case errors.Is(err, errBodyTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "request body must be at most 1 MB")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAnalyzerUnavailable):
		writeError(w, http.StatusNotImplemented, "defect suggestions are not configured")
	case errors.Is(err, photoproc.ErrInvalidImage):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "image could not be decoded", Field: "photo"})
	default:
		s.logger.Error(op+" failed", append(attrs, "error", err)...)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// requestNormalizer is implemented by request bodies that tidy their input
// before validation.
type requestNormalizer interface {
	normalize()
}

// decodeJSON reads a JSON body into v and validates it.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errBodyTooLarge
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return validate.Invalid(typeErr.Field, fmt.Sprintf("%s has the wrong type", typeErr.Field))
		}
		return validate.Invalid("", "invalid JSON body")
	}
	if n, ok := v.(requestNormalizer); ok {
		n.normalize()
	}
	return s.validator.Struct(v)
}

// parseID extracts the named path variable and returns it as int64.
func parseID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, validate.Invalid(name, "invalid "+name)
	}
	return id, nil
}
