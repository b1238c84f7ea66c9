// Package server exposes the symdiff tools over HTTP for agent frameworks.
//
//	POST /tool   execute a tool call
//	GET  /schema tool schema for agent registration
//	GET  /health liveness check
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/njchilds90/symdiff"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// New returns the tool server's handler. Requests are logged to logger.
func New(logger *log.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/tool", toolHandler(logger))
	mux.HandleFunc("/schema", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, symdiff.MCPToolSpec())
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
	return mux
}

func toolHandler(logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Printf("panic in /tool: %v\n%s", rec, string(debug.Stack()))
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()

		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		defer r.Body.Close()

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req symdiff.ToolRequest
		if err := dec.Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		if dec.More() {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: trailing data"})
			return
		}

		resp := symdiff.HandleToolCall(req)
		if resp.Error != "" {
			logger.Printf("tool %s: %s", req.Tool, resp.Error)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ListenAndServe serves New(logger) on addr until the server fails.
func ListenAndServe(addr string, logger *log.Logger) error {
	logger.Printf("symdiff tool server listening on %s", addr)
	logger.Printf("  POST /tool execute a tool call")
	logger.Printf("  GET  /schema tool schema for agent registration")
	logger.Printf("  GET  /health health check")

	srv := &http.Server{
		Addr:              addr,
		Handler:           New(logger),
		ErrorLog:          logger,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
