package web

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"a11y-analyzer/internal/analyzer"
	"a11y-analyzer/internal/report"
)

var funcMap = template.FuncMap{
	"severityClass": severityClass,
}

func severityClass(sev analyzer.Severity) string {
	switch sev {
	case analyzer.SeverityHigh:
		return "high"
	case analyzer.SeverityMedium:
		return "medium"
	default:
		return "low"
	}
}

// TemplateData carries everything the pages render.
type TemplateData struct {
	URL     string
	Error   string
	Results *report.Summary
	Guide   template.HTML
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		clientError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	s.render(w, r, s.tmplIndex, TemplateData{Guide: s.guideHTML})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		clientError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	ctx := r.Context()
	logger := s.requestLogger(ctx)

	rawURL := strings.TrimSpace(r.FormValue("url"))
	data := TemplateData{URL: rawURL, Guide: s.guideHTML}
	if rawURL == "" {
		data.Error = "Please enter a website URL to analyze."
		s.render(w, r, s.tmplResults, data)
		return
	}

	pageURL, markup, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		logger.WarnContext(ctx, "Fetch failed", slog.String("url", rawURL), slog.Any("error", err))
		data.Error = "Error fetching website. The URL might be unreachable or blocking automated requests."
		s.render(w, r, s.tmplResults, data)
		return
	}
	data.URL = pageURL

	result, err := analyzer.Analyze(ctx, logger, pageURL, markup)
	if err != nil {
		logger.WarnContext(ctx, "Analysis failed", slog.String("url", pageURL), slog.Any("error", err))
		data.Error = "Failed to analyze the page. The content could not be parsed as HTML."
		s.render(w, r, s.tmplResults, data)
		return
	}

	summary := report.Summarize(result)
	data.Results = &summary
	s.render(w, r, s.tmplResults, data)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	s.export(w, r, "csv")
}

func (s *Server) handleExportSARIF(w http.ResponseWriter, r *http.Request) {
	s.export(w, r, "sarif")
}

// export re-fetches and re-analyzes the page, then streams the findings as a
// downloadable file in the given format.
func (s *Server) export(w http.ResponseWriter, r *http.Request, format string) {
	if r.Method != http.MethodGet {
		clientError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	ctx := r.Context()
	logger := s.requestLogger(ctx)

	rawURL := strings.TrimSpace(r.URL.Query().Get("url"))
	if rawURL == "" {
		clientError(w, http.StatusBadRequest, "Missing url parameter")
		return
	}

	pageURL, markup, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		logger.WarnContext(ctx, "Fetch failed", slog.String("url", rawURL), slog.Any("error", err))
		clientError(w, http.StatusBadGateway, "Error fetching website")
		return
	}

	result, err := analyzer.Analyze(ctx, logger, pageURL, markup)
	if err != nil {
		logger.WarnContext(ctx, "Analysis failed", slog.String("url", pageURL), slog.Any("error", err))
		clientError(w, http.StatusBadGateway, "Failed to analyze the page")
		return
	}

	filename := report.Filename(pageURL, format, time.Now())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		err = report.WriteCSV(w, result)
	default:
		w.Header().Set("Content-Type", "application/json")
		err = report.WriteSARIF(w, result)
	}
	if err != nil {
		logger.ErrorContext(ctx, "Export failed", slog.String("format", format), slog.Any("error", err))
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, tmpl *template.Template, data TemplateData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		s.serverError(w, r, err)
	}
}

func clientError(w http.ResponseWriter, status int, message string) {
	http.Error(w, message, status)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	trace := string(debug.Stack())
	s.requestLogger(r.Context()).Error("Internal Server Error", slog.Any("error", err), slog.String("trace", trace))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
