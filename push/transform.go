package push

// Pair holds two values of possibly different types. [Enumerate] and the
// map sources push their elements as pairs.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Map applies transform to each element of p before forwarding it.
func Map[S, T any](p Producer[S], transform func(S) T) Producer[T] {
	return mapped[S, T]{src: p, transform: transform}
}

type mapped[S, T any] struct {
	src       Producer[S]
	transform func(S) T
}

func (m mapped[S, T]) Produce(step Step[T]) bool {
	return m.src.Produce(func(v S) bool {
		return step(m.transform(v))
	})
}

func (m mapped[S, T]) sizeHint() (int, bool) { return sizeOf(m.src) }

// Filter forwards only the elements of p that satisfy the predicate. The
// predicate runs on every element of p exactly once.
func Filter[T any](p Producer[T], predicate func(T) bool) Producer[T] {
	return filtered[T]{src: p, predicate: predicate}
}

type filtered[T any] struct {
	src       Producer[T]
	predicate func(T) bool
}

func (f filtered[T]) Produce(step Step[T]) bool {
	return f.src.Produce(func(v T) bool {
		if f.predicate(v) {
			return step(v)
		}
		return true
	})
}

// FilterMap combines [Filter] and [Map] in one pass: transform reports
// whether the element is kept alongside its replacement, and only kept
// values are forwarded.
func FilterMap[S, T any](p Producer[S], transform func(S) (T, bool)) Producer[T] {
	return filterMapped[S, T]{src: p, transform: transform}
}

type filterMapped[S, T any] struct {
	src       Producer[S]
	transform func(S) (T, bool)
}

func (f filterMapped[S, T]) Produce(step Step[T]) bool {
	return f.src.Produce(func(v S) bool {
		if mapped, ok := f.transform(v); ok {
			return step(mapped)
		}
		return true
	})
}

// FlatMap expands each element of p into its own producer and splices the
// expansions into one flat stream. The downstream step is handed to each
// inner producer unchanged, so a stop signal anywhere, even mid-way
// through an inner sequence, halts the entire traversal at once, and no
// later inner producer is ever constructed. An empty outer sequence
// expands nothing.
func FlatMap[S, T any](p Producer[S], expand func(S) Producer[T]) Producer[T] {
	return flatMapped[S, T]{src: p, expand: expand}
}

type flatMapped[S, T any] struct {
	src    Producer[S]
	expand func(S) Producer[T]
}

func (f flatMapped[S, T]) Produce(step Step[T]) bool {
	return f.src.Produce(func(v S) bool {
		return f.expand(v).Produce(step)
	})
}

// Flatten splices a producer of producers into one flat stream. It is
// [FlatMap] with the identity expansion.
func Flatten[T any](p Producer[Producer[T]]) Producer[T] {
	return flatMapped[Producer[T], T]{src: p, expand: func(inner Producer[T]) Producer[T] { return inner }}
}

// Enumerate pairs each element with a running 0-based index.
func Enumerate[T any](p Producer[T]) Producer[Pair[int, T]] {
	return enumerated[T]{src: p}
}

type enumerated[T any] struct {
	src Producer[T]
}

func (e enumerated[T]) Produce(step Step[Pair[int, T]]) bool {
	idx := 0
	return e.src.Produce(func(v T) bool {
		cur := idx
		idx++
		return step(Pair[int, T]{V1: cur, V2: v})
	})
}

func (e enumerated[T]) sizeHint() (int, bool) { return sizeOf(e.src) }

// Inspect invokes observe on each element and forwards it unchanged.
// Useful for peeking at the values flowing through the middle of a
// pipeline.
func Inspect[T any](p Producer[T], observe func(T)) Producer[T] {
	return inspected[T]{src: p, observe: observe}
}

type inspected[T any] struct {
	src     Producer[T]
	observe func(T)
}

func (i inspected[T]) Produce(step Step[T]) bool {
	return i.src.Produce(func(v T) bool {
		i.observe(v)
		return step(v)
	})
}

func (i inspected[T]) sizeHint() (int, bool) { return sizeOf(i.src) }

// Chain traverses each producer in order, as one stream. A stop signal
// propagates across the boundaries: once stopped, no later producer is
// touched.
func Chain[T any](producers ...Producer[T]) Producer[T] {
	return chained[T]{srcs: producers}
}

type chained[T any] struct {
	srcs []Producer[T]
}

func (c chained[T]) Produce(step Step[T]) bool {
	for _, p := range c.srcs {
		if !p.Produce(step) {
			return false
		}
	}
	return true
}

func (c chained[T]) sizeHint() (int, bool) {
	total := 0
	for _, p := range c.srcs {
		n, ok := sizeOf(p)
		if !ok {
			return 0, false
		}
		total += n
	}
	return total, true
}
