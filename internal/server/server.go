// Package server exposes the publish processor over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"vidpub/internal/logutil"
	"vidpub/internal/publish"
)

// Server serves the publish API on a fixed address.
type Server struct {
	proc *publish.Processor
	addr string
}

// New builds a server around the given processor.
func New(proc *publish.Processor, port int) *Server {
	return &Server{proc: proc, addr: fmt.Sprintf(":%d", port)}
}

type publishRequest struct {
	Job     *publish.VideoJob `json:"job"`
	Options publish.Options   `json:"options"`
}

// Handler routes the fixed endpoint set. Anything outside it is 404.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/health":
			s.handleHealth(w)
		case r.Method == http.MethodPost && r.URL.Path == "/publish":
			s.handlePublish(w, r)
		default:
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		}
	})
}

func (s *Server) handleHealth(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"platforms": s.proc.Platforms(),
	})
}

func (s *Server) handlePublish(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": fmt.Sprintf("read request body: %v", err)})
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "request body is required"})
		return
	}

	var req publishRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": fmt.Sprintf("invalid JSON body: %v", err)})
		return
	}
	if req.Job == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "job is required"})
		return
	}

	report, err := s.proc.Publish(r.Context(), req.Job, req.Options)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logutil.Errorf("write response: %v", err)
	}
}

// ListenAndServe blocks until the listener fails or the context is
// cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	logutil.Infof("listening on %s", s.addr)

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
