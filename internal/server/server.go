// Package server provides the HTTP REST API for the resume builder.
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

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/flow"
	"github.com/jonathan/resume-builder/internal/ids"
	"github.com/jonathan/resume-builder/internal/store"
)

// Server represents the HTTP server
type Server struct {
	httpServer    *http.Server
	store         *store.Store
	flow          *flow.Controller
	idGen         ids.Generator
	exportTimeout time.Duration
}

// Config holds server configuration
type Config struct {
	Port          int
	StorageDir    string
	ExportTimeout time.Duration
}

// New creates a new server instance. The resume document is loaded from
// durable storage when a persisted copy exists; otherwise editing starts
// from the empty document.
func New(cfg Config) (*Server, error) {
	backend, err := store.NewFileBackend(cfg.StorageDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	st := store.New(backend)
	if st.Load() {
		log.Printf("Loaded saved resume from %s", cfg.StorageDir)
	}

	s := &Server{
		store:         st,
		flow:          flow.NewController(st),
		idGen:         ids.ShortToken{},
		exportTimeout: cfg.ExportTimeout,
	}
	if s.exportTimeout == 0 {
		s.exportTimeout = 60 * time.Second
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Document endpoints. Section mutators are full replacements; there
	// is no partial-patch protocol.
	mux.HandleFunc("GET /resume", s.handleGetResume)
	mux.HandleFunc("PUT /resume/contact", s.handleSetContact)
	mux.HandleFunc("PUT /resume/summary", s.handleSetSummary)
	mux.HandleFunc("PUT /resume/skills", s.handleSetSkills)
	mux.HandleFunc("PUT /resume/experience", s.handleSetExperience)
	mux.HandleFunc("PUT /resume/education", s.handleSetEducation)
	mux.HandleFunc("PUT /resume/projects", s.handleSetProjects)

	// Lifecycle endpoints
	mux.HandleFunc("POST /resume/save", s.handleSave)
	mux.HandleFunc("POST /resume/load", s.handleLoad)
	mux.HandleFunc("DELETE /resume", s.handleClear)

	// Derived views
	mux.HandleFunc("GET /resume/progress", s.handleProgress)
	mux.HandleFunc("POST /resume/score", s.handleScore)
	mux.HandleFunc("GET /resume/preview", s.handlePreview)
	mux.HandleFunc("POST /resume/export", s.handleExport)

	// Step navigation
	mux.HandleFunc("GET /steps", s.handleSteps)
	mux.HandleFunc("POST /steps/next", s.handleStepNext)
	mux.HandleFunc("POST /steps/prev", s.handleStepPrev)
	mux.HandleFunc("POST /steps/goto", s.handleStepGoTo)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // long enough for a PDF export run
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
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

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging with a per-request ID
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()[:8]
		start := time.Now()
		log.Printf("[%s] %s %s %s", requestID, r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s completed in %v", requestID, r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
