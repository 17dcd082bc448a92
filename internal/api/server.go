// Package api exposes the catalog ingestion service over HTTP.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dubas14/HairCareStore/internal/catalog"
	"github.com/Dubas14/HairCareStore/internal/config"
	"github.com/Dubas14/HairCareStore/internal/pipeline"
)

// Server wires HTTP routes to the extraction pipeline.
type Server struct {
	cfg          config.Config
	orchestrator *pipeline.Orchestrator
	taxonomy     *catalog.Taxonomy
	brands       []catalog.BrandInfo
	log          *slog.Logger
}

func NewServer(cfg config.Config, orch *pipeline.Orchestrator, taxonomy *catalog.Taxonomy, brands []catalog.BrandInfo, log *slog.Logger) *Server {
	return &Server{
		cfg:          cfg,
		orchestrator: orch,
		taxonomy:     taxonomy,
		brands:       brands,
		log:          log,
	}
}

// Routes builds the router: a public health check and key-protected
// ingestion and catalog endpoints.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/ingest", s.handleIngest)
		r.Post("/ingest/scan", s.handleScan)
		r.Get("/ingest/{jobID}/status", s.handleJobStatus)

		r.Get("/catalog/taxonomy", s.handleTaxonomy)
		r.Get("/catalog/brands", s.handleBrands)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
