package push

import "iter"

// FromSlice returns a producer that pushes the elements of items in order.
// The producer indexes the slice directly, so [Count], [Nth] and [Last]
// on it are O(1).
func FromSlice[T any](items []T) Producer[T] {
	return sliceSource[T]{items: items}
}

// Of returns a producer over the given values, in order.
func Of[T any](values ...T) Producer[T] {
	return sliceSource[T]{items: values}
}

// Empty returns a producer that pushes nothing.
func Empty[T any]() Producer[T] {
	return sliceSource[T]{}
}

type sliceSource[T any] struct {
	items []T
}

func (s sliceSource[T]) Produce(step Step[T]) bool {
	for _, v := range s.items {
		if !step(v) {
			return false
		}
	}
	return true
}

func (s sliceSource[T]) Len() int { return len(s.items) }

func (s sliceSource[T]) at(i int) (T, bool) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

func (s sliceSource[T]) last() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// FromMap returns a producer over the entries of m as [Pair] values.
// Entry order is undefined, as with ranging over a map.
func FromMap[K comparable, V any](m map[K]V) Producer[Pair[K, V]] {
	return ProducerFunc[Pair[K, V]](func(step Step[Pair[K, V]]) bool {
		for k, v := range m {
			if !step(Pair[K, V]{V1: k, V2: v}) {
				return false
			}
		}
		return true
	})
}

// Keys returns a producer over the keys of m, in undefined order.
func Keys[K comparable, V any](m map[K]V) Producer[K] {
	return mapKeys[K, V]{m: m}
}

// Values returns a producer over the values of m, in undefined order.
func Values[K comparable, V any](m map[K]V) Producer[V] {
	return mapValues[K, V]{m: m}
}

type mapKeys[K comparable, V any] struct {
	m map[K]V
}

func (p mapKeys[K, V]) Produce(step Step[K]) bool {
	for k := range p.m {
		if !step(k) {
			return false
		}
	}
	return true
}

func (p mapKeys[K, V]) Len() int { return len(p.m) }

type mapValues[K comparable, V any] struct {
	m map[K]V
}

func (p mapValues[K, V]) Produce(step Step[V]) bool {
	for _, v := range p.m {
		if !step(v) {
			return false
		}
	}
	return true
}

func (p mapValues[K, V]) Len() int { return len(p.m) }

// FromSeq bridges a pull-ecosystem iter.Seq into a producer. The sequence
// is traversed exactly once, in its own order.
func FromSeq[T any](seq iter.Seq[T]) Producer[T] {
	return ProducerFunc[T](func(step Step[T]) bool {
		for v := range seq {
			if !step(v) {
				return false
			}
		}
		return true
	})
}

// FromSeq2 bridges an iter.Seq2 into a producer of [Pair] values.
func FromSeq2[K, V any](seq iter.Seq2[K, V]) Producer[Pair[K, V]] {
	return ProducerFunc[Pair[K, V]](func(step Step[Pair[K, V]]) bool {
		for k, v := range seq {
			if !step(Pair[K, V]{V1: k, V2: v}) {
				return false
			}
		}
		return true
	})
}

// Range returns a producer counting from start towards end (exclusive) in
// increments of stride. A zero stride produces nothing.
func Range(start, end, stride int) Producer[int] {
	return rangeSource{start: start, end: end, stride: stride}
}

type rangeSource struct {
	start, end, stride int
}

func (r rangeSource) Produce(step Step[int]) bool {
	if r.stride == 0 {
		return true
	}
	for i := r.start; r.stride > 0 && i < r.end || r.stride < 0 && i > r.end; i += r.stride {
		if !step(i) {
			return false
		}
	}
	return true
}

func (r rangeSource) Len() int {
	if r.stride == 0 {
		return 0
	}
	span := r.end - r.start
	if r.stride > 0 {
		if span <= 0 {
			return 0
		}
		return (span + r.stride - 1) / r.stride
	}
	if span >= 0 {
		return 0
	}
	return (-span - r.stride - 1) / -r.stride
}

// Repeat returns a producer that pushes value count times.
func Repeat[T any](value T, count int) Producer[T] {
	return repeatSource[T]{value: value, count: count}
}

type repeatSource[T any] struct {
	value T
	count int
}

func (r repeatSource[T]) Produce(step Step[T]) bool {
	for i := 0; i < r.count; i++ {
		if !step(r.value) {
			return false
		}
	}
	return true
}

func (r repeatSource[T]) Len() int { return max(r.count, 0) }
