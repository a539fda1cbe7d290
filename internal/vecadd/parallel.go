package vecadd

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/vecbench/internal/errors"
)

// Stats describes how a parallel map was actually executed.
type Stats struct {
	// ThreadsRequested is the configured worker count.
	ThreadsRequested int
	// ThreadsUsed is the number of workers that actually ran. It is observed,
	// not derived. Every configured worker starts for a non-empty input, even
	// one that owns no chunk; an empty input starts none.
	ThreadsUsed int
	// Chunks is the number of ranges the input was split into.
	Chunks int
	// ChunkSize is the configured partition granularity.
	ChunkSize int
	// GOMAXPROCS is the scheduler's processor limit during the run.
	GOMAXPROCS int
}

// AddParallel writes a[i] + b[i] into dst[i] using a fixed pool of workers.
//
// [0, len(a)) is split by Chunks and distributed over all threads workers by
// Assign before any worker starts. Each worker runs on its own locked OS thread and only touches the
// indices of its chunks. AddParallel returns once every worker has finished,
// so all writes to dst are visible to the caller.
func AddParallel(dst, a, b []int, threads, chunkSize int) (Stats, error) {
	if threads < 1 {
		return Stats{}, apperrors.ValidationError{Field: "threads", Message: fmt.Sprintf("must be >= 1, got %d", threads)}
	}
	if chunkSize < 1 {
		return Stats{}, apperrors.ValidationError{Field: "chunk", Message: fmt.Sprintf("must be >= 1, got %d", chunkSize)}
	}
	if err := checkLengths(dst, a, b); err != nil {
		return Stats{}, err
	}

	chunks := Chunks(len(a), chunkSize)
	stats := Stats{
		ThreadsRequested: threads,
		Chunks:           len(chunks),
		ChunkSize:        chunkSize,
		GOMAXPROCS:       runtime.GOMAXPROCS(0),
	}
	if len(chunks) == 0 {
		return stats, nil
	}

	plan := Assign(chunks, threads)

	var started atomic.Int64
	var g errgroup.Group
	for _, owned := range plan {
		g.Go(func() error {
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			started.Add(1)
			for _, r := range owned {
				addRange(dst[r.Start:r.End], a[r.Start:r.End], b[r.Start:r.End])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats, err
	}

	stats.ThreadsUsed = int(started.Load())
	return stats, nil
}
