package push

import "cmp"

// ForEach pushes every element of p through visit. It never stops early.
func ForEach[T any](p Producer[T], visit func(T)) {
	p.Produce(func(v T) bool {
		visit(v)
		return true
	})
}

// Count returns the number of elements p pushes. Chains whose count is
// analytically known (length-known sources under map/take/skip/chain and
// friends) are counted without traversal; filtered or flattened chains
// fall back to a full pass.
func Count[T any](p Producer[T]) int {
	if n, ok := sizeOf(p); ok {
		return n
	}
	return Traverse(p, 0, func(n int, _ T) StepResult[int] {
		return Continue(n + 1)
	}).Value()
}

// First returns the first element of p, stopping the source immediately,
// or false if p is empty.
func First[T any](p Producer[T]) (T, bool) {
	var first T
	found := false
	p.Produce(func(v T) bool {
		first, found = v, true
		return false
	})
	return first, found
}

// Nth returns the element at 0-based index k, or false if p has fewer than
// k+1 elements. Traversal stops the instant the k-th element is seen: no
// element past index k is produced or reaches any closure.
func Nth[T any](p Producer[T], k int) (T, bool) {
	var hit T
	if k < 0 {
		return hit, false
	}
	if s, ok := p.(indexed[T]); ok {
		return s.at(k)
	}
	found := false
	remaining := k
	p.Produce(func(v T) bool {
		if remaining == 0 {
			hit, found = v, true
			return false
		}
		remaining--
		return true
	})
	return hit, found
}

// Last returns the final element of p, or false if p is empty. The general
// case must traverse fully, since a push source gives no advance notice of
// its end, but direct-access sources answer in O(1).
func Last[T any](p Producer[T]) (T, bool) {
	if s, ok := p.(indexed[T]); ok {
		return s.last()
	}
	var last T
	found := false
	ForEach(p, func(v T) {
		last, found = v, true
	})
	return last, found
}

// Find returns the first element satisfying the predicate, stopping the
// traversal on the match.
func Find[T any](p Producer[T], predicate func(T) bool) (T, bool) {
	var match T
	found := false
	p.Produce(func(v T) bool {
		if predicate(v) {
			match, found = v, true
			return false
		}
		return true
	})
	return match, found
}

// Position returns the 0-based index of the first element satisfying the
// predicate, stopping on the match.
func Position[T any](p Producer[T], predicate func(T) bool) (int, bool) {
	idx := 0
	found := false
	p.Produce(func(v T) bool {
		if predicate(v) {
			found = true
			return false
		}
		idx++
		return true
	})
	if !found {
		return 0, false
	}
	return idx, true
}

// Any reports whether any element satisfies the predicate, stopping on the
// first hit. Any on an empty producer is false.
func Any[T any](p Producer[T], predicate func(T) bool) bool {
	return !p.Produce(func(v T) bool {
		return !predicate(v)
	})
}

// All reports whether every element satisfies the predicate, stopping on
// the first miss. All on an empty producer is true.
func All[T any](p Producer[T], predicate func(T) bool) bool {
	return p.Produce(func(v T) bool {
		return predicate(v)
	})
}

// Fold accumulates every element of p into a single value, left to right,
// starting from init. It never stops early; for a short-circuiting fold
// use [TryFold].
func Fold[A, T any](p Producer[T], init A, fold func(A, T) A) A {
	return Traverse(p, init, func(acc A, v T) StepResult[A] {
		return Continue(fold(acc, v))
	}).Value()
}

// TryFold is the short-circuiting fold: step may end the traversal at any
// element by returning [Stop]. It is [Traverse] under its conventional
// name.
func TryFold[A, T any](p Producer[T], init A, step func(A, T) StepResult[A]) StepResult[A] {
	return Traverse(p, init, step)
}

// MinByKey returns the element with the smallest key, or false if p is
// empty. Among equal keys the FIRST element wins.
func MinByKey[T any, K cmp.Ordered](p Producer[T], key func(T) K) (T, bool) {
	var best T
	var bestKey K
	found := false
	ForEach(p, func(v T) {
		k := key(v)
		if !found || k < bestKey {
			best, bestKey, found = v, k, true
		}
	})
	return best, found
}

// MaxByKey returns the element with the largest key, or false if p is
// empty. Among equal keys the LAST element wins, the opposite of
// [MinByKey], matching the usual max-prefers-later convention.
func MaxByKey[T any, K cmp.Ordered](p Producer[T], key func(T) K) (T, bool) {
	var best T
	var bestKey K
	found := false
	ForEach(p, func(v T) {
		k := key(v)
		if !found || k >= bestKey {
			best, bestKey, found = v, k, true
		}
	})
	return best, found
}

// MinFunc returns the smallest element under a three-way comparison
// function (negative when a < b, as in the cmp package), or false if p is
// empty. Among equal elements the first wins.
func MinFunc[T any](p Producer[T], compare func(a, b T) int) (T, bool) {
	var best T
	found := false
	ForEach(p, func(v T) {
		if !found || compare(v, best) < 0 {
			best, found = v, true
		}
	})
	return best, found
}

// MaxFunc returns the largest element under a three-way comparison
// function, or false if p is empty. Among equal elements the last wins.
func MaxFunc[T any](p Producer[T], compare func(a, b T) int) (T, bool) {
	var best T
	found := false
	ForEach(p, func(v T) {
		if !found || compare(v, best) >= 0 {
			best, found = v, true
		}
	})
	return best, found
}
