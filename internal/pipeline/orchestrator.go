package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	pdfsplit "github.com/pyhub-apps/pdfsplit-golang"
	"github.com/pyhub-apps/pdfsplit-golang/internal/config"
	"github.com/pyhub-apps/pdfsplit-golang/pkg/pdf"
)

// OpenFunc opens a document by path. Production uses pdfsplit.Open; tests
// inject a fixture opener.
type OpenFunc func(path string) (pdf.Document, error)

// Orchestrator manages the split job pipeline.
type Orchestrator struct {
	jobs    *JobStore
	queue   chan *Job
	log     *slog.Logger
	cfg     config.Config
	openDoc OpenFunc

	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	stopped bool
}

// NewOrchestrator creates the pipeline. Call Start to launch workers.
func NewOrchestrator(cfg config.Config, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:    NewJobStore(cfg.JobTTL),
		queue:   make(chan *Job, cfg.MaxQueueSize),
		log:     log,
		cfg:     cfg,
		openDoc: pdfsplit.Open,
	}
}

// SetOpener overrides how workers open documents. For tests.
func (o *Orchestrator) SetOpener(fn OpenFunc) {
	o.openDoc = fn
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for i := 0; i < o.cfg.WorkerCount; i++ {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					o.process(job)
				}
			}
		}()
	}

	// Start job store cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the pipeline. A split already in progress runs
// to completion; the splitter itself offers no cancellation.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	// The stopped flag and the close share a critical section with the queue
	// send in Submit, so a late Submit gets an error instead of panicking on a
	// closed channel.
	o.mu.Lock()
	if !o.stopped {
		o.stopped = true
		close(o.queue)
	}
	o.mu.Unlock()
	o.wg.Wait()
}

// Submit registers an uploaded file as a new job and queues it.
func (o *Orchestrator) Submit(filename, inputPath string) (*Job, error) {
	now := time.Now()
	id := NewJobID()
	job := &Job{
		ID:        id,
		Filename:  filename,
		Status:    StatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
		inputPath: inputPath,
		outputDir: filepath.Join(o.cfg.OutputRoot, id),
	}

	o.jobs.Put(job)

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.stopped {
		err := fmt.Errorf("pipeline is shutting down")
		job.Fail(err, nil)
		return nil, err
	}
	select {
	case o.queue <- job:
		return job, nil
	default:
		job.Fail(fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize), nil)
		return nil, fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// process runs one job to completion on the calling worker goroutine.
func (o *Orchestrator) process(job *Job) {
	log := o.log.With("job_id", job.ID, "filename", job.Filename)
	defer os.Remove(job.inputPath)

	job.SetStatus(StatusAnalyzing)

	doc, err := o.openDoc(job.inputPath)
	if err != nil {
		log.Error("failed to open document", "error", err)
		job.Fail(err, nil)
		return
	}
	defer doc.Close()

	plans := pdfsplit.Analyze(doc)
	job.SetPlans(plans)
	log.Info("analysis complete", "pages", doc.PageCount(), "plans", len(plans))

	job.SetStatus(StatusSplitting)
	files, err := pdfsplit.Export(doc, plans, job.outputDir, job.SetProgress)
	if err != nil {
		log.Error("split failed", "error", err, "files_written", len(files))
		job.Fail(err, files)
		return
	}

	job.Complete(files)
	log.Info("split complete", "files", len(files))
}
