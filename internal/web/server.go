package web

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/vbonduro/carcheck/internal/catalog"
	"github.com/vbonduro/carcheck/internal/service"
	"github.com/vbonduro/carcheck/internal/validate"
)

// pinger is satisfied by *sqlx.DB and *sql.DB.
type pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	service   *service.InspectionService
	templates embed.FS
	db        pinger
	validator *validate.Validator
	mux       *http.ServeMux
	tmplFuncs template.FuncMap
	logger    *slog.Logger
}

func NewServer(svc *service.InspectionService, tmpl embed.FS, db pinger, logger *slog.Logger) *Server {
	s := &Server{
		service:   svc,
		templates: tmpl,
		db:        db,
		validator: validate.New(),
		mux:       http.NewServeMux(),
		logger:    logger,
		tmplFuncs: template.FuncMap{
			"partLabel":     catalog.PartLabel,
			"defectLabel":   catalog.DefectLabel,
			"severityLabel": func(s any) string { return catalog.SeverityLabel(toString(s)) },
			"severityColor": func(s any) string { return catalog.SeverityColor(toString(s)) },
			"areaLabel":     catalog.AreaLabel,
			"deref":         deref,
			"safeURL":       safeImageURL,
		},
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /{$}", s.handleDashboard)
	s.mux.HandleFunc("GET /report/{id}", s.handleReport)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.HandleFunc("GET /uploads/{key...}", s.handleGetPhoto)

	s.mux.HandleFunc("GET /api/catalog", s.handleCatalog)

	s.mux.HandleFunc("GET /api/inspections", s.handleListInspections)
	s.mux.HandleFunc("POST /api/inspections", s.handleCreateInspection)
	s.mux.HandleFunc("GET /api/inspections/{id}", s.handleGetInspection)
	s.mux.HandleFunc("PATCH /api/inspections/{id}", s.handleUpdateInspection)
	s.mux.HandleFunc("DELETE /api/inspections/{id}", s.handleDeleteInspection)
	s.mux.HandleFunc("PATCH /api/inspections/{id}/signature", s.handleUpdateSignature)
	s.mux.HandleFunc("POST /api/inspections/{id}/items", s.handleCreateItem)
	s.mux.HandleFunc("POST /api/inspections/{id}/suggestions", s.handleSuggestDefects)

	s.mux.HandleFunc("DELETE /api/items/{id}", s.handleDeleteItem)
	s.mux.HandleFunc("POST /api/items/{itemId}/photos", s.handleUploadPhoto)
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy",
			"default-src 'self'; "+
				"style-src 'self' 'unsafe-inline'; "+
				"img-src 'self' data:; "+
				"connect-src 'self'")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.mux)).ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// renderPage parses and executes a full-page template set.
func (s *Server) renderPage(w http.ResponseWriter, data any, files ...string) error {
	tmpl, err := template.New("").Funcs(s.tmplFuncs).ParseFS(s.templates, files...)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, "base", data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.PingContext(r.Context()); err != nil {
		s.logger.Error("health check failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
