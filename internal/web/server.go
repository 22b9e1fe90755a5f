package web

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"a11y-analyzer/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageFetcher retrieves the markup for a URL. *fetcher.Fetcher satisfies it;
// tests substitute stubs.
type PageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, string, error)
}

// Server is the HTTP web UI for the analyzer.
type Server struct {
	cfg     config.WebConfig
	fetcher PageFetcher
	logger  *slog.Logger
	mux     *http.ServeMux
	srv     *http.Server

	// Pre-parsed templates
	tmplIndex   *template.Template
	tmplResults *template.Template

	guideHTML template.HTML
}

// NewServer creates a web server that analyzes pages fetched through
// pageFetcher.
func NewServer(cfg config.WebConfig, pageFetcher PageFetcher, logger *slog.Logger) *Server {
	s := &Server{
		cfg:       cfg,
		fetcher:   pageFetcher,
		logger:    logger,
		mux:       http.NewServeMux(),
		guideHTML: renderGuide(),
	}

	// Parse templates once at startup.
	s.tmplIndex = template.Must(template.New("layout.html").Funcs(funcMap).ParseFS(templateFS, "templates/layout.html", "templates/index.html"))
	s.tmplResults = template.Must(template.New("layout.html").Funcs(funcMap).ParseFS(templateFS, "templates/layout.html", "templates/results.html"))

	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/analyze", s.handleAnalyze)
	s.mux.HandleFunc("/export/csv", s.handleExportCSV)
	s.mux.HandleFunc("/export/sarif", s.handleExportSARIF)

	s.srv = &http.Server{
		Addr:    cfg.Listen,
		Handler: s.withRequestID(s.mux),
	}

	return s
}

// Start begins listening and serving HTTP requests. It blocks until the
// server is shut down or encounters a fatal error.
func (s *Server) Start() error {
	s.logger.Info("Web server listening", slog.String("addr", s.cfg.Listen))
	return s.srv.ListenAndServe()
}

// Stop gracefully shuts down the web server.
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Handler returns the root handler for testing purposes.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

type loggerKey struct{}

// withRequestID tags every request with a generated id, echoed in the
// X-Request-ID response header and attached to the request-scoped logger.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)

		logger := s.logger.With(slog.String("request_id", requestID))
		ctx := context.WithValue(r.Context(), loggerKey{}, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestLogger returns the logger carrying the request id, falling back to
// the server logger.
func (s *Server) requestLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return s.logger
}
