package pipeline

import (
	"sync"
	"time"

	"github.com/pyhub-apps/pdfsplit-golang/pkg/splitter"
)

// JobStatus represents the state of a split job.
type JobStatus string

const (
	StatusQueued    JobStatus = "queued"
	StatusAnalyzing JobStatus = "analyzing"
	StatusSplitting JobStatus = "splitting"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
)

// Job tracks the state of a single split operation.
type Job struct {
	mu sync.Mutex

	ID       string
	Filename string

	Status JobStatus
	Error  string

	Progress Progress

	Plans []splitter.SplitPlan
	Files []string

	CreatedAt time.Time
	UpdatedAt time.Time

	inputPath string
	outputDir string
}

// JobSnapshot is a point-in-time copy of a Job, safe to serialize while
// workers keep mutating the original.
type JobSnapshot struct {
	ID       string `json:"job_id"`
	Filename string `json:"filename"`

	Status JobStatus `json:"status"`
	Error  string    `json:"error,omitempty"`

	Progress Progress `json:"progress"`

	Plans []splitter.SplitPlan `json:"plans,omitempty"`
	Files []string             `json:"files,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Progress mirrors the splitter's progress callback values.
type Progress struct {
	Fraction float64 `json:"fraction"`
	Message  string  `json:"message"`
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.UpdatedAt = time.Now()
}

// SetProgress records a progress callback value.
func (j *Job) SetProgress(fraction float64, message string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress = Progress{Fraction: fraction, Message: message}
	j.UpdatedAt = time.Now()
}

// SetPlans records the analysis result.
func (j *Job) SetPlans(plans []splitter.SplitPlan) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Plans = plans
	j.UpdatedAt = time.Now()
}

// Complete records the written files and marks the job done.
func (j *Job) Complete(files []string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Files = files
	j.Status = StatusCompleted
	j.Progress = Progress{Fraction: 1.0, Message: j.Progress.Message}
	j.UpdatedAt = time.Now()
}

// Fail records a terminal error, keeping any files written before it.
func (j *Job) Fail(err error, files []string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = StatusFailed
	j.Error = err.Error()
	j.Files = files
	j.UpdatedAt = time.Now()
}

// Snapshot returns a copy safe for serialization while workers mutate the job.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	return JobSnapshot{
		ID:        j.ID,
		Filename:  j.Filename,
		Status:    j.Status,
		Error:     j.Error,
		Progress:  j.Progress,
		Plans:     j.Plans,
		Files:     j.Files,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}

// OutputDir returns the directory the job writes into.
func (j *Job) OutputDir() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.outputDir
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
		job.mu.Lock()
		expired := now.Sub(job.UpdatedAt) > s.ttl
		job.mu.Unlock()
		if expired {
			delete(s.jobs, id)
		}
	}
}
