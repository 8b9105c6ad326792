package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/TFMV/cyclomatic/analysis"
	"github.com/TFMV/cyclomatic/lang"
)

// AnalyzeRequest is the JSON body for the analyze endpoint.
type AnalyzeRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// Server exposes the complexity analyzer over HTTP.
type Server struct {
	analyzer *analysis.Analyzer
	logger   *slog.Logger
}

func New(analyzer *analysis.Analyzer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{analyzer: analyzer, logger: logger}
}

// Handler returns the route table for the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/complexity/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/complexity/supported-languages", s.handleSupportedLanguages)
	return mux
}

// HTTPServer wraps the handler in an http.Server bound to addr.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
		return
	}
	if req.Code == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Code content cannot be empty."})
		return
	}
	if req.Language == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Language cannot be empty."})
		return
	}

	report, err := s.analyzer.AnalyzeSource(req.Code, req.Language)
	if err != nil {
		var unsupported *lang.UnsupportedLanguageError
		if errors.As(err, &unsupported) {
			s.writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":              "Unsupported language for complexity analysis: " + unsupported.Language,
				"supportedLanguages": unsupported.Supported,
			})
			return
		}
		s.logger.Error("analysis failed", "language", req.Language, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Analysis failed."})
		return
	}

	s.logger.Info("analyzed snippet",
		"language", req.Language,
		"methods", report.Summary.TotalMethods,
		"complexity", report.Summary.TotalComplexity)
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleSupportedLanguages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"languages": s.analyzer.Registry.Languages()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}
