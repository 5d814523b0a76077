package push

// StepResult is the outcome of one step of an accumulating traversal:
// either "continue with this running value" or "stop now, this is the
// final result". See [Traverse].
type StepResult[T any] struct {
	value   T
	stopped bool
}

// Continue signals that traversal should proceed, carrying the running
// accumulator forward.
func Continue[T any](v T) StepResult[T] {
	return StepResult[T]{value: v}
}

// Stop signals that traversal must halt immediately with v as the final
// result. Every adapter propagates a Stop unchanged; no further element is
// delivered once one has been produced.
func Stop[T any](v T) StepResult[T] {
	return StepResult[T]{value: v, stopped: true}
}

// Value returns the carried accumulator or final result.
func (r StepResult[T]) Value() T { return r.value }

// Stopped reports whether the result was produced by [Stop].
func (r StepResult[T]) Stopped() bool { return r.stopped }
