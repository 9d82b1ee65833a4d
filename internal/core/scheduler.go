package core

/*
typofuzz — domain typosquatting generator and registration status checker
Copyright (C) 2025  typofuzz contributors

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

import (
	"context"
	"log"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/zeebo/xxh3"
	"golang.org/x/time/rate"

	"github.com/typofuzz/typofuzz/internal/metrics"
)

// WorkItem represents one domain status check queued to a worker.
// It is pooled via sync.Pool to reduce allocations in the hot path.
type WorkItem struct {
	Domain   string          // Candidate domain; also the sharding key.
	Attempt  int             // Tracks resubmission attempts after ErrQueueFull.
	Callback WorkCallback    // Function to execute for this work item.
	Ctx      context.Context // Context for the specific check.
}

// WorkCallback is the function signature for work item callbacks.
type WorkCallback func(item *WorkItem) error

// Scheduler manages a fixed pool of worker goroutines and dispatches
// WorkItems to them based on a hash of the domain. The worker count IS
// the concurrency bound: at most numWorkers checks run at once, so no
// separate semaphore is needed.
type Scheduler struct {
	numWorkers   int
	workers      []*worker
	ctx          context.Context
	cancel       context.CancelFunc
	shutdown     atomic.Bool
	workItemPool sync.Pool
	activeWork   sync.WaitGroup // Tracks actively processing work items.
}

// worker encapsulates a single worker goroutine and its state.
type worker struct {
	id        int
	queue     chan *WorkItem // Buffered channel acting as the work queue for this worker.
	scheduler *Scheduler
	ctx       context.Context
	limiter   *rate.Limiter // Per-worker request pacing; inert unless a rate is configured.

	processed atomic.Int64
	errors    atomic.Int64
	panics    atomic.Int64
}

// NewScheduler creates, configures, and starts the scheduler and its
// worker pool. numWorkers is clamped to [1, MaxWorkers]. perWorkerRate
// caps how many items each worker starts per second; zero or negative
// means unlimited, leaving the pool size as the only backpressure.
func NewScheduler(parentCtx context.Context, numWorkers int, perWorkerRate float64) (*Scheduler, error) {
	if numWorkers <= 0 {
		numWorkers = DefaultConcurrency
	}
	if numWorkers > MaxWorkers {
		numWorkers = MaxWorkers
	}

	sctx, cancel := context.WithCancel(parentCtx)

	s := &Scheduler{
		numWorkers: numWorkers,
		workers:    make([]*worker, numWorkers),
		ctx:        sctx,
		cancel:     cancel,
		workItemPool: sync.Pool{
			New: func() interface{} {
				return &WorkItem{}
			},
		},
	}

	limit := rate.Inf
	if perWorkerRate > 0 {
		limit = rate.Limit(perWorkerRate)
	}

	for i := 0; i < numWorkers; i++ {
		w := &worker{
			id:        i,
			queue:     make(chan *WorkItem, WorkerQueueCapacity),
			scheduler: s,
			ctx:       sctx,
			limiter:   rate.NewLimiter(limit, 1),
		}
		s.workers[i] = w
		go w.run()
	}

	log.Printf("Scheduler initialized with %d workers", numWorkers)
	return s, nil
}

// NumWorkers returns the size of the worker pool.
func (s *Scheduler) NumWorkers() int {
	return s.numWorkers
}

// run is the main processing loop for a single worker goroutine.
// It pins itself to a core where the platform supports that, then loops
// reading from its queue until the scheduler context is cancelled.
func (w *worker) run() {
	setAffinity(w.id)

	idLabel := strconv.Itoa(w.id)
	for {
		select {
		case <-w.ctx.Done():
			return
		case item := <-w.queue:
			if item == nil { // Safety check, queue should only receive non-nil items.
				continue
			}

			if err := w.limiter.Wait(w.ctx); err != nil {
				// Shutdown raced the wait; hand the item back as done.
				w.scheduler.activeWork.Done()
				w.scheduler.putItem(item)
				return
			}

			if metrics.IsMetricsEnabled() {
				metrics.GetMetrics().WorkerBusy.WithLabelValues(idLabel).Set(1)
			}

			// Mark work as done when the callback finishes or panics.
			func() {
				defer w.scheduler.activeWork.Done()
				defer func() {
					if r := recover(); r != nil {
						w.panics.Add(1)
						log.Printf("Panic recovered in worker %d processing %s: %v", w.id, item.Domain, r)
						if metrics.IsMetricsEnabled() {
							metrics.GetMetrics().WorkerPanics.WithLabelValues(idLabel).Inc()
						}
					}
				}()

				if err := item.Callback(item); err != nil {
					w.errors.Add(1)
					log.Printf("Error processing %s: %v", item.Domain, err)
					if metrics.IsMetricsEnabled() {
						metrics.GetMetrics().WorkerErrors.WithLabelValues(idLabel, "callback").Inc()
					}
				} else {
					w.processed.Add(1)
					if metrics.IsMetricsEnabled() {
						metrics.GetMetrics().WorkerProcessed.WithLabelValues(idLabel).Inc()
					}
				}
			}()

			if metrics.IsMetricsEnabled() {
				metrics.GetMetrics().WorkerBusy.WithLabelValues(idLabel).Set(0)
			}

			w.scheduler.putItem(item)
		}
	}
}

// putItem resets a WorkItem and returns it to the pool.
func (s *Scheduler) putItem(item *WorkItem) {
	item.Domain = ""
	item.Attempt = 0
	item.Callback = nil
	item.Ctx = nil
	s.workItemPool.Put(item)
}

// SubmitWork routes a work item to a specific worker queue based on
// hashing the domain name. The send is non-blocking: a full queue
// returns ErrQueueFull so the caller can pace resubmission.
func (s *Scheduler) SubmitWork(ctx context.Context, domainName string, attempt int, callback WorkCallback) error {
	if s.shutdown.Load() {
		return ErrWorkerShutdown
	}

	shardIndex := int(xxh3.HashString(domainName) % uint64(s.numWorkers))
	targetWorker := s.workers[shardIndex]

	item := s.workItemPool.Get().(*WorkItem)
	item.Domain = domainName
	item.Attempt = attempt
	item.Callback = callback
	item.Ctx = ctx
	s.activeWork.Add(1)

	select {
	case targetWorker.queue <- item:
		if metrics.IsMetricsEnabled() {
			metrics.GetMetrics().WorkSubmitted.WithLabelValues("check").Inc()
			metrics.GetMetrics().UpdateQueueMetrics(targetWorker.id, len(targetWorker.queue), WorkerQueueCapacity)
		}
		return nil
	default:
		// Queue is full - signal backpressure immediately.
		s.activeWork.Done()
		s.putItem(item)
		if metrics.IsMetricsEnabled() {
			metrics.GetMetrics().QueueBackpressureHit.WithLabelValues(strconv.Itoa(targetWorker.id)).Inc()
		}
		return ErrQueueFull
	}
}

// Wait blocks until all submitted work items have been processed.
func (s *Scheduler) Wait() {
	s.activeWork.Wait()
}

// Shutdown initiates a graceful shutdown: no new work is accepted and
// worker goroutines exit once the context cancellation is observed.
func (s *Scheduler) Shutdown() {
	if s.shutdown.CompareAndSwap(false, true) {
		s.cancel()
	}
}
