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

// customError is an error type that includes a retryable flag.
// This allows components to determine if an operation that resulted in this error
// should be retried.
// It implements the standard `error` interface.
type customError struct {
	message   string // The error message.
	retryable bool   // True if the error indicates a condition that might be resolved by retrying.
}

// NewError creates a new customError with the given message and retryable status.
func NewError(msg string, retryable bool) error {
	return &customError{
		message:   msg,
		retryable: retryable,
	}
}

// Error implements the standard Go `error` interface.
func (e *customError) Error() string {
	return e.message
}

// IsRetryable returns true if the error is designated as retryable, false otherwise.
func (e *customError) IsRetryable() bool {
	return e.retryable
}

// IsRetryable is a helper function to check if a given error is of type *customError
// and if its retryable flag is set.
// If the error is nil, it returns false.
// If the error is not a *customError, it defaults to false (non-retryable).
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	if e, ok := err.(*customError); ok {
		return e.IsRetryable()
	}

	return false
}

// Common error constants used within the core package.
var (
	// ErrQueueFull indicates that a worker's queue is at capacity and cannot accept new work items.
	// This error is typically considered retryable, as the queue might free up later.
	ErrQueueFull = NewError("queue full", true)
	// ErrWorkerShutdown indicates that the scheduler is in the process of shutting down
	// and can no longer process new work items.
	ErrWorkerShutdown = NewError("worker shutdown", false)
)
