package pipeline

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Dubas14/HairCareStore/internal/catalog"
)

// JobStatus represents the state of a vendor extraction job.
type JobStatus string

const (
	StatusQueued      JobStatus = "queued"
	StatusParsing     JobStatus = "parsing"
	StatusExtracting  JobStatus = "extracting"
	StatusClassifying JobStatus = "classifying"
	StatusSeeding     JobStatus = "seeding"
	StatusCompleted   JobStatus = "completed"
	StatusFailed      JobStatus = "failed"
	StatusPartial     JobStatus = "partial"
)

// Job tracks the extraction of a single vendor document.
type Job struct {
	mu sync.Mutex

	ID       string        `json:"job_id"`
	Brand    catalog.Brand `json:"brand"`
	Filename string        `json:"filename"`

	Status JobStatus `json:"status"`
	Phase  string    `json:"phase"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData []byte
	products []catalog.Product
	errors   []string
}

// Progress tracks per-phase counters.
type Progress struct {
	Lines      int      `json:"lines"`
	Extracted  int      `json:"extracted"`
	Duplicates int      `json:"duplicates_dropped"`
	Seeded     int      `json:"seeded"`
	Errors     []string `json:"errors"`
}

// NewJob creates a queued job for one vendor document.
func NewJob(brand catalog.Brand, filename string, data []byte) *Job {
	now := time.Now()
	return &Job{
		ID:        uuid.NewString(),
		Brand:     brand,
		Filename:  filename,
		Status:    StatusQueued,
		Phase:     "queued",
		CreatedAt: now,
		UpdatedAt: now,
		fileData:  data,
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error without failing the job.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// SetCounts records line and extraction counters.
func (j *Job) SetCounts(lines, extracted, duplicates int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.Lines = lines
	j.Progress.Extracted = extracted
	j.Progress.Duplicates = duplicates
	j.UpdatedAt = time.Now()
}

// IncrSeeded counts one successfully upserted product.
func (j *Job) IncrSeeded() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.Seeded++
	j.UpdatedAt = time.Now()
}

// SetProducts stores the classified extraction result.
func (j *Job) SetProducts(ps []catalog.Product) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.products = ps
}

// Products returns a copy of the classified extraction result.
func (j *Job) Products() []catalog.Product {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]catalog.Product, len(j.products))
	copy(out, j.products)
	return out
}

// FileData returns the raw file bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// ReleaseFileData drops the raw bytes once parsing is done.
func (j *Job) ReleaseFileData() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = nil
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID       string        `json:"job_id"`
	Brand    catalog.Brand `json:"brand"`
	Filename string        `json:"filename"`
	Status   JobStatus     `json:"status"`
	Phase    string        `json:"phase"`
	Progress Progress      `json:"progress"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:       j.ID,
		Brand:    j.Brand,
		Filename: j.Filename,
		Status:   j.Status,
		Phase:    j.Phase,
		Progress: Progress{
			Lines:      j.Progress.Lines,
			Extracted:  j.Progress.Extracted,
			Duplicates: j.Progress.Duplicates,
			Seeded:     j.Progress.Seeded,
			Errors:     errs,
		},
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}
