// Package parallel provides chunked parallel execution for element-wise kernels.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls how element-wise work is split across goroutines.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum elements per goroutine to avoid scheduling overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 1 << 12, // Transcendental kernels are cheap per element.
	}
}

// ForRange executes kernel over contiguous sub-ranges covering [0, n).
// Each invocation receives a disjoint half-open range [lo, hi), so kernels
// may write to disjoint slice regions without synchronization. Falls back to
// a single sequential call when parallelism is disabled or n is too small to
// amortize goroutine startup.
func ForRange(n int, kernel func(lo, hi int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < 2*cfg.MinChunkSize {
		kernel(0, n)
		return
	}

	chunk := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			kernel(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // Kernels are total functions and never fail.
}
