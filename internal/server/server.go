package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/beetune/internal/analysis"
	"github.com/jonathan/beetune/internal/config"
	"github.com/jonathan/beetune/internal/extraction"
	"github.com/jonathan/beetune/internal/latex"
	"github.com/jonathan/beetune/internal/llm"
)

// maxUploadBytes caps resume uploads at 16MB.
const maxUploadBytes = 16 << 20

// Config holds server configuration.
type Config struct {
	Port int
	// APISecret guards the API. When empty, authentication is disabled
	// and all routes are open.
	APISecret string
}

// Server is the HTTP API server.
type Server struct {
	httpServer *http.Server

	store    *config.Store
	client   llm.Client
	compiler *latex.Compiler
	policy   *extraction.UploadPolicy

	jwtService *JWTService
	secretCfg  *config.SecretConfig
	secretHash string
}

// New assembles the server. client may be nil when no AI provider is
// configured; the analysis endpoints then answer 400.
func New(cfg Config, store *config.Store, client llm.Client) (*Server, error) {
	s := &Server{
		store:    store,
		client:   client,
		compiler: latex.NewCompiler(),
		policy:   extraction.NewUploadPolicy(),
	}

	if cfg.APISecret != "" {
		secretCfg, err := config.NewSecretConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create secret config: %w", err)
		}
		hash, err := secretCfg.HashSecret(cfg.APISecret)
		if err != nil {
			return nil, err
		}
		s.secretCfg = secretCfg
		s.secretHash = hash

		jwtCfg, err := config.NewJWTConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		s.jwtService = NewJWTService(jwtCfg)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/token", s.handleAuthToken)

	mux.Handle("POST /analyze/job", s.withAuth(http.HandlerFunc(s.handleAnalyzeJob)))
	mux.Handle("POST /resume/extract-text", s.withAuth(http.HandlerFunc(s.handleExtractText)))
	mux.Handle("POST /resume/suggest-improvements", s.withAuth(http.HandlerFunc(s.handleSuggestImprovements)))
	mux.Handle("POST /document/apply-improvements", s.withAuth(http.HandlerFunc(s.handleApplyImprovements)))
	mux.Handle("POST /convert/latex", s.withAuth(http.HandlerFunc(s.handleConvertLatex)))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // compilation requests can run long
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler exposes the configured handler chain, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start listens until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.client != nil {
		_ = s.client.Close()
	}
	log.Println("Server stopped")
	return nil
}

// textAnalyzer builds a text analyzer when a provider is configured.
func (s *Server) textAnalyzer() *analysis.TextAnalyzer {
	if s.client == nil {
		return nil
	}
	return analysis.NewTextAnalyzer(s.client)
}

func (s *Server) resumeAnalyzer() *analysis.ResumeAnalyzer {
	if s.client == nil {
		return nil
	}
	return analysis.NewResumeAnalyzer(s.client)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"service": "beetune-api",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":               "GET /health",
			"auth_token":           "POST /auth/token",
			"analyze_job":          "POST /analyze/job",
			"extract_text":         "POST /resume/extract-text",
			"suggest_improvements": "POST /resume/suggest-improvements",
			"apply_improvements":   "POST /document/apply-improvements",
			"convert_latex":        "POST /convert/latex",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	latexStatus := "available"
	if err := s.compiler.CheckInstallation(r.Context()); err != nil {
		latexStatus = "unavailable"
	}

	aiStatus := "not_configured"
	if s.client != nil {
		aiStatus = "configured"
		if s.store != nil && s.store.IsConfigured() {
			aiStatus = s.store.ActiveProvider()
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"components": map[string]string{
			"latex":          latexStatus,
			"ai_provider":    aiStatus,
			"file_processor": "ready",
		},
	})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response in the {error, message} shape.
func (s *Server) errorResponse(w http.ResponseWriter, status int, kind, message string) {
	s.jsonResponse(w, status, map[string]string{"error": kind, "message": message})
}
