package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess     = 0 // Benchmark or analysis completed
	ExitBenchFailed = 1 // Benchmark ran but produced no usable results
	ExitError       = 2 // Configuration or runtime error
)

// BenchFailureError indicates that the benchmark ran to completion but
// recorded no results, e.g. every attempt failed or timed out.
type BenchFailureError struct {
	Message string
}

func (e *BenchFailureError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var benchErr *BenchFailureError
		if errors.As(err, &benchErr) {
			os.Exit(ExitBenchFailed)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
