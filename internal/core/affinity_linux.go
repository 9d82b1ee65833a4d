//go:build linux
// +build linux

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

package core

import (
	"log"
	"runtime"

	"golang.org/x/sys/unix"
)

// setAffinity binds the calling goroutine's OS thread to a CPU core
// chosen round-robin from the worker id. Best-effort: failure is logged
// and the worker continues unpinned.
func setAffinity(workerID int) {
	// LockOSThread keeps the goroutine on this thread so the affinity
	// mask applies for the worker's whole lifetime. No unlock since the
	// worker runs until shutdown.
	runtime.LockOSThread()

	cpuID := workerID % runtime.NumCPU()

	var cpuSet unix.CPUSet
	cpuSet.Zero()
	cpuSet.Set(cpuID)

	tid := unix.Gettid()
	if err := unix.SchedSetaffinity(tid, &cpuSet); err != nil {
		log.Printf("Warning: failed to set CPU affinity for worker %d on core %d (tid: %d): %v", workerID, cpuID, tid, err)
	}
}
