// Package worker provides a small generic worker pool used to fan out
// independent completion calls (one per requested band) and collect
// their results.
package worker

// Job produces a single result.
type Job[T any] func() T

// Result pairs a job's output with the id it was submitted under.
type Result[T any] struct {
	JobID  string
	Output T
}

// Pool runs submitted jobs on a fixed set of goroutines. Pools are cheap
// and short-lived: create one per fan-out, Submit the jobs, read exactly
// as many Results, then Close.
type Pool[T any] struct {
	jobs    chan jobWrapper[T]
	results chan Result[T]
}

type jobWrapper[T any] struct {
	id string
	fn Job[T]
}

// NewPool starts workerCount workers with the given channel buffer size.
func NewPool[T any](workerCount, bufferSize int) *Pool[T] {
	p := &Pool[T]{
		jobs:    make(chan jobWrapper[T], bufferSize),
		results: make(chan Result[T], bufferSize),
	}

	for i := 0; i < workerCount; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool[T]) worker() {
	for job := range p.jobs {
		p.results <- Result[T]{
			JobID:  job.id,
			Output: job.fn(),
		}
	}
}

// Submit queues a job. Must not be called after Close.
func (p *Pool[T]) Submit(id string, fn Job[T]) {
	p.jobs <- jobWrapper[T]{id: id, fn: fn}
}

// Results returns the channel job outputs arrive on, in completion order.
func (p *Pool[T]) Results() <-chan Result[T] {
	return p.results
}

// Close stops the workers once queued jobs have drained.
func (p *Pool[T]) Close() {
	close(p.jobs)
}
