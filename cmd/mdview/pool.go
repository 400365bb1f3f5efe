package main

import (
	"fmt"
	"runtime"
)

// MaxWorkers caps the export worker count.
const MaxWorkers = 32

// resolveWorkers determines the export worker count.
// Priority: explicit flag > MDVIEW_WORKERS > GOMAXPROCS-based calculation.
// Rendering is CPU-bound, so the automatic value is GOMAXPROCS itself
// (adjusted by automaxprocs for containers), capped at MaxWorkers.
func resolveWorkers(flagWorkers, envWorkers int) int {
	if flagWorkers > 0 {
		return min(flagWorkers, MaxWorkers)
	}
	if envWorkers > 0 {
		return min(envWorkers, MaxWorkers)
	}
	return max(1, min(runtime.GOMAXPROCS(0), MaxWorkers))
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}
