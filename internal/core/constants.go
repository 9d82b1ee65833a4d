/*
Package core provides the concurrency machinery for typofuzz: the worker
scheduler, the batch runner that resolves candidate domains through it,
and the streaming pipeline with early termination. It also defines the
shared constants and error values used across these components.
*/
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
	"time"
)

// Application-wide constants for tuning concurrency and batching.
const (
	// DefaultConcurrency is the default number of domains checked in
	// parallel. One worker goroutine per permit.
	DefaultConcurrency = 15

	// MaxWorkers caps the worker count regardless of what the user asks
	// for on the command line.
	MaxWorkers = 256

	// DefaultBatchSize is how many candidates the pipeline pulls from
	// the generator stream per resolution round.
	DefaultBatchSize = 20

	// WorkerQueueCapacity is the buffered channel depth of each
	// worker's queue. Submissions beyond this hit ErrQueueFull.
	WorkerQueueCapacity = 64

	// MaxSubmitRetries is how many times the runner re-attempts a
	// submission that bounced off a full queue before giving up on the
	// domain.
	MaxSubmitRetries = 3

	// Retry pacing for queue-full resubmissions.
	RetryBaseDelay = 25 * time.Millisecond
	RetryMaxDelay  = 500 * time.Millisecond
)
