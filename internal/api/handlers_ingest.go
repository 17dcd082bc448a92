package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/Dubas14/HairCareStore/internal/catalog"
	"github.com/Dubas14/HairCareStore/internal/extractor"
	"github.com/Dubas14/HairCareStore/internal/parser"
	"github.com/Dubas14/HairCareStore/internal/pipeline"
)

// handleIngest accepts one vendor document upload and queues a job.
// Expects multipart form fields "brand" and "file".
func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("parse upload: %v", err))
		return
	}

	brand := catalog.Brand(r.FormValue("brand"))
	if _, ok := extractor.VendorFor(brand); !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown brand: %q", brand))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	if !parser.IsSupportedExtension(header.Filename) {
		writeError(w, http.StatusUnsupportedMediaType,
			fmt.Sprintf("unsupported file type: %s", filepath.Ext(header.Filename)))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("read upload: %v", err))
		return
	}

	job := pipeline.NewJob(brand, header.Filename, data)
	if err := s.orchestrator.Enqueue(job); err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	s.log.Info("job queued", "job_id", job.ID, "brand", brand, "filename", header.Filename)
	writeJSON(w, http.StatusAccepted, job.Snapshot())
}

// handleScan walks the catalog directory and queues a job for every
// vendor whose price document is present.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var queued []pipeline.JobSnapshot
	var missing []string

	for _, vendor := range extractor.Vendors() {
		path, err := parser.FindFile(s.cfg.CatalogDir, vendor.Keyword)
		if errors.Is(err, os.ErrNotExist) {
			missing = append(missing, string(vendor.Brand))
			continue
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		data, err := os.ReadFile(path)
		if err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("read %s: %v", path, err))
			return
		}

		job := pipeline.NewJob(vendor.Brand, filepath.Base(path), data)
		if err := s.orchestrator.Enqueue(job); err != nil {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		queued = append(queued, job.Snapshot())
	}

	if queued == nil {
		queued = []pipeline.JobSnapshot{}
	}
	if missing == nil {
		missing = []string{}
	}
	s.log.Info("catalog scan queued", "jobs", len(queued), "missing", len(missing))
	writeJSON(w, http.StatusAccepted, map[string]any{
		"jobs":    queued,
		"missing": missing,
	})
}

func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "jobID")
	job := s.orchestrator.Job(id)
	if job == nil {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	writeJSON(w, http.StatusOK, job.Snapshot())
}
