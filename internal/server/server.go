package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/sync/singleflight"

	"github.com/nuraksworld/sl-market-friend-data/internal/assembler"
	"github.com/nuraksworld/sl-market-friend-data/internal/config"
	"github.com/nuraksworld/sl-market-friend-data/internal/logger"
	"github.com/nuraksworld/sl-market-friend-data/internal/models"
	"github.com/nuraksworld/sl-market-friend-data/internal/reports"
	"github.com/nuraksworld/sl-market-friend-data/internal/storage"
)

// Server is the HTTP surface of the snapshot service.
type Server struct {
	Config    *config.Config
	Assembler *assembler.Assembler
	Storage   storage.Client

	log     *logger.Logger
	updates singleflight.Group
}

// NewServer creates a server over an assembler and a storage backend.
func NewServer(cfg *config.Config, asm *assembler.Assembler, store storage.Client) *Server {
	return &Server{
		Config:    cfg,
		Assembler: asm,
		Storage:   store,
		log:       logger.Global().WithComponent("server"),
	}
}

// SetupRoutes configures HTTP routes for the server.
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/update", s.HandleUpdate)
	mux.HandleFunc("/latest", s.HandleLatest)
	mux.HandleFunc("/", s.HandleRoot)
	return mux
}

// Close cleans up server resources.
func (s *Server) Close() error {
	if s.Storage != nil {
		return s.Storage.Close()
	}
	return nil
}

// RunUpdate executes one snapshot pipeline run and persists the result.
// Concurrent triggers are collapsed into a single run; every caller gets
// the same snapshot. The pipeline itself never fails, so an error here
// means the snapshot could not be written.
func (s *Server) RunUpdate(ctx context.Context) (*models.Snapshot, error) {
	result, err, _ := s.updates.Do("update", func() (interface{}, error) {
		snap := s.Assembler.Run(ctx)
		if err := s.storeSnapshot(ctx, snap); err != nil {
			return nil, err
		}
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Snapshot), nil
}

// storeSnapshot writes the dated archive copy, the stable latest copy
// and the HTML summary.
func (s *Server) storeSnapshot(ctx context.Context, snap *models.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	archivePath := storage.SnapshotArchivePath(snap.RunTime())
	if err := s.Storage.StoreFile(ctx, archivePath, data); err != nil {
		return err
	}
	if err := s.Storage.StoreFile(ctx, storage.LatestSnapshotPath, data); err != nil {
		return err
	}

	summary, err := reports.BuildSummary(snap)
	if err != nil {
		// The JSON document is already written; a summary failure is
		// not worth failing the run over.
		s.log.Error("failed to build summary page", err)
		return nil
	}
	if err := s.Storage.StoreFile(ctx, storage.LatestSummaryPath, summary); err != nil {
		s.log.Error("failed to store summary page", err)
	}

	s.log.Infof("snapshot stored at %s", archivePath)
	return nil
}
