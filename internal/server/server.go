// Package server exposes the HTTP API: statement upload plus CRUD over the
// stored transactions.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"jmoret/bankparse/internal/extract"
	"jmoret/bankparse/internal/logging"
	"jmoret/bankparse/internal/store"
)

// Server holds the HTTP handlers and their collaborators.
type Server struct {
	store          store.TransactionStore
	extractor      *extract.Service
	logger         logging.Logger
	maxUploadBytes int64
}

// New creates the API server. maxUploadMB bounds the multipart form size
// held in memory before spilling to temp files.
func New(txStore store.TransactionStore, extractor *extract.Service, logger logging.Logger, maxUploadMB int64) *Server {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if maxUploadMB <= 0 {
		maxUploadMB = 32
	}
	return &Server{
		store:          txStore,
		extractor:      extractor,
		logger:         logger,
		maxUploadBytes: maxUploadMB << 20,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/parse", s.handleParse)

	mux.HandleFunc("GET /api/transactions", s.handleList)
	mux.HandleFunc("POST /api/transactions", s.handleCreate)
	mux.HandleFunc("POST /api/transactions/batch", s.handleBatch)
	mux.HandleFunc("GET /api/transactions/{id}", s.handleGet)
	mux.HandleFunc("PUT /api/transactions/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE /api/transactions/{id}", s.handleDelete)

	return mux
}

// Run serves the API until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("API listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
