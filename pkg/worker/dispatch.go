package worker

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/chazu/hemisphere/internal/monitoring"
	"github.com/chazu/hemisphere/pkg/geometry"
)

// DefaultTimeout is the limit for a single job when Dispatcher.Timeout is
// zero.
const DefaultTimeout = 5 * time.Second

var (
	// ErrTimeout is returned when a job outlives the dispatcher timeout.
	ErrTimeout = errors.New("job timed out")

	// ErrSuperseded is returned by Submit when a newer submission started
	// before this one finished.
	ErrSuperseded = errors.New("job superseded by newer request")
)

// jobResult passes a job outcome through a channel.
type jobResult struct {
	geometry *geometry.Geometry
	err      error
}

// Dispatcher runs jobs on their own goroutines, bounding each by a
// timeout and turning panics from malformed buffers into errors. The zero
// value is ready to use.
type Dispatcher struct {
	// Timeout bounds a single job. Zero means DefaultTimeout.
	Timeout time.Duration
	// Concurrency caps the jobs Run executes at once. Zero means
	// GOMAXPROCS.
	Concurrency int

	mu         sync.Mutex
	generation uint64
}

func (d *Dispatcher) timeout() time.Duration {
	if d.Timeout <= 0 {
		return DefaultTimeout
	}
	return d.Timeout
}

func (d *Dispatcher) concurrency() int {
	if d.Concurrency <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return d.Concurrency
}

// Do runs a single job.
func (d *Dispatcher) Do(ctx context.Context, job Job) (*geometry.Geometry, error) {
	return waitWithTimeout(ctx, start(job), d.timeout())
}

// Submit runs a job the way an interactive host re-tessellates while its
// parameters change: once a newer Submit has started, the result of this
// one is discarded and ErrSuperseded is returned.
func (d *Dispatcher) Submit(ctx context.Context, job Job) (*geometry.Geometry, error) {
	gen := d.nextGeneration()
	g, err := d.Do(ctx, job)
	return d.checkGeneration(gen, g, err)
}

func (d *Dispatcher) nextGeneration() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.generation++
	return d.generation
}

// checkGeneration discards a result whose generation is no longer the
// newest.
func (d *Dispatcher) checkGeneration(gen uint64, g *geometry.Geometry, err error) (*geometry.Geometry, error) {
	d.mu.Lock()
	current := d.generation
	d.mu.Unlock()

	if gen != current {
		return nil, ErrSuperseded
	}
	return g, err
}

// Run executes jobs concurrently and returns their geometry in job order.
// The first failure cancels the jobs that have not started and is
// returned.
func (d *Dispatcher) Run(ctx context.Context, jobs []Job) ([]*geometry.Geometry, error) {
	results := make([]*geometry.Geometry, len(jobs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(d.concurrency())

	for i, job := range jobs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g, err := d.Do(ctx, job)
			if err != nil {
				monitoring.Logf("worker: job %d (%s) failed: %v", i, job.Kind, err)
				return fmt.Errorf("worker: job %d (%s): %w", i, job.Kind, err)
			}
			results[i] = g
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// start runs job on a new goroutine and returns the channel its result
// arrives on.
func start(job Job) <-chan jobResult {
	ch := make(chan jobResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- jobResult{err: fmt.Errorf("panic during tessellation: %v", r)}
			}
		}()

		g, err := job.run()
		ch <- jobResult{geometry: g, err: err}
	}()
	return ch
}

// waitWithTimeout waits for a result from ch. On timeout or cancellation
// the goroutine may still be running; its result is dropped into the
// buffered channel and never read.
func waitWithTimeout(ctx context.Context, ch <-chan jobResult, timeout time.Duration) (*geometry.Geometry, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		return res.geometry, res.err
	case <-timer.C:
		return nil, fmt.Errorf("%w after %s", ErrTimeout, timeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
