package push

import (
	"iter"
	"strings"
)

// Collector is the materialization contract: a target container accepts
// elements one at a time, in traversal order. Any container implementing
// it can be filled straight from a pipeline via [CollectInto].
type Collector[T any] interface {
	Collect(v T)
}

// CollectInto drives every element of p into c and returns c. Container
// construction order matches traversal order.
func CollectInto[T any, C Collector[T]](p Producer[T], c C) C {
	ForEach(p, c.Collect)
	return c
}

// ToSlice materializes p into a slice, in traversal order. Length-known
// chains allocate the result exactly once.
func ToSlice[T any](p Producer[T]) []T {
	var out []T
	if n, ok := sizeOf(p); ok {
		out = make([]T, 0, n)
	}
	return AppendTo(p, out)
}

// AppendTo appends every element of p to dst, in traversal order.
func AppendTo[T any](p Producer[T], dst []T) []T {
	ForEach(p, func(v T) {
		dst = append(dst, v)
	})
	return dst
}

// ToMap materializes a pair producer into a map, V1 as key. Later
// duplicate keys overwrite earlier ones.
func ToMap[K comparable, V any](p Producer[Pair[K, V]]) map[K]V {
	out := make(map[K]V)
	ForEach(p, func(kv Pair[K, V]) {
		out[kv.V1] = kv.V2
	})
	return out
}

// ToSet materializes p into a set of its distinct elements.
func ToSet[T comparable](p Producer[T]) map[T]struct{} {
	out := make(map[T]struct{})
	ForEach(p, func(v T) {
		out[v] = struct{}{}
	})
	return out
}

// ToString materializes a rune producer into a string.
func ToString(p Producer[rune]) string {
	var b strings.Builder
	ForEach(p, func(r rune) {
		b.WriteRune(r)
	})
	return b.String()
}

// Seq bridges p into an iter.Seq, making a pipeline consumable by
// for-range and the slices/maps helpers. The sequence is single-use, like
// the producer behind it.
func Seq[T any](p Producer[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		p.Produce(yield)
	}
}

// Seq2 bridges a pair producer into an iter.Seq2.
func Seq2[K, V any](p Producer[Pair[K, V]]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		p.Produce(func(kv Pair[K, V]) bool {
			return yield(kv.V1, kv.V2)
		})
	}
}
