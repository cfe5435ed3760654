package web

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/vbonduro/carcheck/internal/domain"
	"github.com/vbonduro/carcheck/internal/validate"
)

const maxPhotoSize = 20 * 1024 * 1024 // 20 MB

// allowedImageTypes is the set of MIME types accepted for uploaded photos.
// net/http.DetectContentType handles JPEG, PNG, and GIF via magic-byte
// sniffing. WebP is detected separately because the WHATWG sniff spec (and
// therefore the stdlib) does not include a WebP signature.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// isWebP reports whether data is a WebP image (RIFF container with "WEBP" at
// offset 8).
func isWebP(data []byte) bool {
	return len(data) >= 12 &&
		string(data[0:4]) == "RIFF" &&
		string(data[8:12]) == "WEBP"
}

// allowedImageMIME returns the detected MIME type and true if the data is an
// accepted image format, or ("", false) otherwise.
func allowedImageMIME(data []byte) (string, bool) {
	if isWebP(data) {
		return "image/webp", true
	}
	mime := http.DetectContentType(data)
	if allowedImageTypes[mime] {
		return mime, true
	}
	return "", false
}

// readPhoto pulls the "photo" part out of a multipart request and checks its
// size and format.
func (s *Server) readPhoto(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	// Leave headroom for the multipart envelope around the file.
	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoSize+1<<20)
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, "", validate.Invalid("photo", "photo must be at most 20 MB")
		}
		return nil, "", validate.Invalid("photo", "failed to parse form")
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		return nil, "", validate.Invalid("photo", "photo file required")
	}
	defer closeWithLog(file, "upload file", s.logger)

	if header.Size > maxPhotoSize {
		return nil, "", validate.Invalid("photo", "photo must be at most 20 MB")
	}

	imageData, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	mimeType, ok := allowedImageMIME(imageData)
	if !ok {
		return nil, "", validate.Invalid("photo", "unsupported image format")
	}
	return imageData, mimeType, nil
}

func (s *Server) handleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	itemID, err := parseID(r, "itemId")
	if err != nil {
		s.writeServiceError(w, err, "upload photo")
		return
	}

	imageData, mimeType, err := s.readPhoto(w, r)
	if err != nil {
		s.writeServiceError(w, err, "read upload", "item_id", itemID)
		return
	}

	photo, err := s.service.AddPhoto(r.Context(), itemID, imageData, mimeType)
	if err != nil {
		s.writeServiceError(w, err, "upload photo", "item_id", itemID)
		return
	}
	writeJSON(w, http.StatusCreated, photo)
}

func (s *Server) handleSuggestDefects(w http.ResponseWriter, r *http.Request) {
	inspectionID, err := parseID(r, "id")
	if err != nil {
		s.writeServiceError(w, err, "suggest defects")
		return
	}

	imageData, mimeType, err := s.readPhoto(w, r)
	if err != nil {
		s.writeServiceError(w, err, "read upload", "inspection_id", inspectionID)
		return
	}

	defects, err := s.service.SuggestDefects(r.Context(), inspectionID, imageData, mimeType)
	if err != nil {
		s.writeServiceError(w, err, "suggest defects", "inspection_id", inspectionID)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"defects": defects})
}

// handleGetPhoto serves a recorded photo with the MIME type stored on its
// row. The key is "<prefix>/<name>", so the route matches the rest of the path.
func (s *Server) handleGetPhoto(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	reader, photo, err := s.service.OpenPhoto(r.Context(), key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("get photo failed", "storage_key", key, "error", err)
		}
		http.NotFound(w, r)
		return
	}
	defer closeWithLog(reader, "photo reader", s.logger)

	w.Header().Set("Content-Type", photo.MimeType)
	w.Header().Set("Cache-Control", "private, max-age=86400")
	if _, err := io.Copy(w, reader); err != nil {
		s.logger.Error("write photo failed", "storage_key", key, "error", err)
	}
}

// closeWithLog closes c and logs any error, using label to identify the resource.
func closeWithLog(c io.Closer, label string, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Error("failed to close resource", "label", label, "error", err)
	}
}
