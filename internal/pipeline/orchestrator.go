// Package pipeline coordinates catalog extraction jobs: a bounded queue
// feeds a fixed worker pool, and an in-memory store tracks job state
// until it expires.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Orchestrator owns the job queue, the worker pool, and the job store.
type Orchestrator struct {
	store   *JobStore
	worker  *Worker
	queue   chan *Job
	workers int
	log     *slog.Logger

	wg       sync.WaitGroup
	stopOnce sync.Once
	cancel   context.CancelFunc
}

// NewOrchestrator creates an orchestrator with the given pool size and
// queue capacity. Start must be called before Enqueue.
func NewOrchestrator(worker *Worker, workers, queueSize int, jobTTL time.Duration, log *slog.Logger) *Orchestrator {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &Orchestrator{
		store:   NewJobStore(jobTTL),
		worker:  worker,
		queue:   make(chan *Job, queueSize),
		workers: workers,
		log:     log,
	}
}

// Start launches the worker pool and the job-store janitor.
func (o *Orchestrator) Start(ctx context.Context) {
	ctx, o.cancel = context.WithCancel(ctx)

	for i := 0; i < o.workers; i++ {
		o.wg.Add(1)
		go o.runWorker(ctx, i)
	}

	o.wg.Add(1)
	go o.runJanitor(ctx)

	o.log.Info("pipeline started", "workers", o.workers, "queue_size", cap(o.queue))
}

func (o *Orchestrator) runWorker(ctx context.Context, id int) {
	defer o.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-o.queue:
			o.log.Debug("worker picked up job", "worker", id, "job_id", job.ID)
			o.worker.Process(ctx, job)
		}
	}
}

func (o *Orchestrator) runJanitor(ctx context.Context) {
	defer o.wg.Done()
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			o.store.Cleanup()
		}
	}
}

// Enqueue registers the job and hands it to the pool. It fails fast
// when the queue is full instead of blocking the caller.
func (o *Orchestrator) Enqueue(job *Job) error {
	o.store.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.SetStatus(StatusFailed, "failed")
		job.AddError("queue full")
		return fmt.Errorf("job queue is full (%d pending)", cap(o.queue))
	}
}

// Job returns the job with the given id, or nil if unknown or expired.
func (o *Orchestrator) Job(id string) *Job {
	return o.store.Get(id)
}

// Stop shuts the pool down and waits for in-flight jobs to finish.
func (o *Orchestrator) Stop() {
	o.stopOnce.Do(func() {
		if o.cancel != nil {
			o.cancel()
		}
		o.wg.Wait()
		o.log.Info("pipeline stopped")
	})
}
