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
	"errors"
	"sync/atomic"
	"time"

	"github.com/typofuzz/typofuzz/internal/status"
)

// Checker resolves a single domain to its registration outcome. The
// status.Resolver satisfies this; tests substitute fakes.
type Checker interface {
	Resolve(ctx context.Context, domain string) status.Outcome
}

// Result pairs a domain with its resolved outcome.
type Result struct {
	Domain  string
	Outcome status.Outcome
}

// Runner resolves batches of domains through the scheduler's worker
// pool. Results arrive in completion order, not submission order.
type Runner struct {
	scheduler *Scheduler
	checker   Checker
	completed atomic.Int64
}

// NewRunner wires a runner over an already-started scheduler.
func NewRunner(scheduler *Scheduler, checker Checker) *Runner {
	return &Runner{scheduler: scheduler, checker: checker}
}

// Completed returns the number of domains resolved so far, across all
// batches. Safe to poll from a progress reporter goroutine.
func (r *Runner) Completed() int64 {
	return r.completed.Load()
}

// RunBatch resolves every domain in the slice and returns the results
// in completion order. Domains that cannot be submitted after
// MaxSubmitRetries, or that are cut off by context cancellation, come
// back with the timeout outcome so the result set always matches the
// input set.
func (r *Runner) RunBatch(ctx context.Context, domains []string) []Result {
	if len(domains) == 0 {
		return nil
	}

	results := make(chan Result, len(domains))

	submitted := 0
	for _, d := range domains {
		d := d
		callback := func(item *WorkItem) error {
			outcome := r.checker.Resolve(item.Ctx, item.Domain)
			r.completed.Add(1)
			results <- Result{Domain: item.Domain, Outcome: outcome}
			return nil
		}

		if err := r.submitWithRetry(ctx, d, callback); err != nil {
			r.completed.Add(1)
			results <- Result{Domain: d, Outcome: status.Timeout}
			continue
		}
		submitted++
	}

	out := make([]Result, 0, len(domains))
	for range domains {
		select {
		case res := <-results:
			out = append(out, res)
		case <-ctx.Done():
			// Drain what already finished, then mark the rest.
			for {
				select {
				case res := <-results:
					out = append(out, res)
					continue
				default:
				}
				break
			}
			for _, d := range domains {
				if !containsDomain(out, d) {
					out = append(out, Result{Domain: d, Outcome: status.Timeout})
				}
			}
			return out
		}
	}
	return out
}

// submitWithRetry pushes a domain into the scheduler, backing off
// briefly when the target queue is full.
func (r *Runner) submitWithRetry(ctx context.Context, domainName string, callback WorkCallback) error {
	delay := RetryBaseDelay
	for attempt := 0; ; attempt++ {
		err := r.scheduler.SubmitWork(ctx, domainName, attempt, callback)
		if err == nil {
			return nil
		}
		if !IsRetryable(err) || attempt >= MaxSubmitRetries {
			return err
		}
		if !errors.Is(err, ErrQueueFull) {
			return err
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		delay *= 2
		if delay > RetryMaxDelay {
			delay = RetryMaxDelay
		}
	}
}

func containsDomain(results []Result, domainName string) bool {
	for i := range results {
		if results[i].Domain == domainName {
			return true
		}
	}
	return false
}
