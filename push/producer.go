package push

// Step is the per-element callback supplied by a terminal operation.
// It returns true to receive the next element and false to stop the
// traversal. This is the same discipline as the yield function of
// iter.Seq.
type Step[T any] func(T) bool

// Producer is anything that can push its elements, one at a time, into a
// Step function. It is the only contract a data source has to implement;
// the full adapter and terminal operation set works on top of it.
//
// Produce calls step once per element in the producer's defined order and
// stops immediately, without touching any further element, the first
// time step returns false. It returns false when it was stopped early and
// true when it pushed every element.
//
// A Producer is single-use: it is consumed by the terminal operation that
// drives it.
type Producer[T any] interface {
	Produce(step Step[T]) bool
}

// ProducerFunc adapts an ordinary function to the [Producer] interface.
//
// The function should be written the way a Produce method would be: call
// step once per element, bail out the moment it returns false, and report
// whether every element was pushed.
//
//	depthFirst := push.ProducerFunc[int](func(step push.Step[int]) bool {
//		return tree.walk(step)
//	})
type ProducerFunc[T any] func(step Step[T]) bool

// Produce calls f(step).
func (f ProducerFunc[T]) Produce(step Step[T]) bool { return f(step) }

// Sized is implemented by producers that know exactly how many elements
// they will push. [Count] and [ToSlice] use it to skip traversal. Only
// implement it when the count is exact: a producer that filters or may cut
// its input short must not be Sized.
type Sized interface {
	Len() int
}

// sizeHinter is the adapter-internal face of Sized: adapters whose element
// count is derivable from their source without traversal (map, enumerate,
// take, skip, chain, ...) forward or transform the hint of what they wrap.
type sizeHinter interface {
	sizeHint() (int, bool)
}

// sizeOf reports the exact element count of p without traversing it, when
// the concrete producer chain permits.
func sizeOf(p any) (int, bool) {
	switch s := p.(type) {
	case sizeHinter:
		return s.sizeHint()
	case Sized:
		if n := s.Len(); n >= 0 {
			return n, true
		}
	}
	return 0, false
}

// indexed is implemented by sources with O(1) element access, enabling the
// [Nth] and [Last] fast paths.
type indexed[T any] interface {
	at(i int) (T, bool)
	last() (T, bool)
}

// Traverse is the accumulating form of the traversal primitive. It applies
// step to every element of p, threading the running accumulator forward
// between calls, and halts at the first [Stop], returning it unchanged.
// If p runs out of elements, the final accumulator is returned in a
// [Continue].
//
// Every terminal operation in this package is expressible through
// Traverse; it is exposed for building custom short-circuiting folds.
func Traverse[A, T any](p Producer[T], init A, step func(A, T) StepResult[A]) StepResult[A] {
	res := Continue(init)
	p.Produce(func(v T) bool {
		res = step(res.value, v)
		return !res.stopped
	})
	return res
}
