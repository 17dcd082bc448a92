package api

import "net/http"

// handleTaxonomy returns the full category forest.
func (s *Server) handleTaxonomy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": s.taxonomy.Roots,
		"fallback":   s.taxonomy.Fallback,
		"count":      s.taxonomy.Count(),
	})
}

// handleBrands returns the static brand reference pages.
func (s *Server) handleBrands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"brands": s.brands})
}
