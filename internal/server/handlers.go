package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/nuraksworld/sl-market-friend-data/internal/storage"
)

// HandleHealth provides the health check endpoint.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}

// HandleUpdate triggers a snapshot run and returns the stored document.
func (s *Server) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.log.Info("snapshot update triggered")
	snap, err := s.RunUpdate(r.Context())
	if err != nil {
		s.log.Error("snapshot update failed", err)
		http.Error(w, "Snapshot update failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(snap)
}

// HandleLatest serves the most recent stored snapshot document.
func (s *Server) HandleLatest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, err := s.Storage.GetFile(r.Context(), storage.LatestSnapshotPath)
	if err != nil {
		http.Error(w, "No snapshot available yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// HandleRoot redirects to the latest snapshot.
func (s *Server) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/latest", http.StatusFound)
}
