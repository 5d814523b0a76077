package push

// Take forwards the first n elements of p and stops the source after the
// n-th. The (n+1)-th element is never produced, never inspected, and never
// reaches any closure, even one with side effects. Take(p, 0) visits
// nothing.
func Take[T any](p Producer[T], n int) Producer[T] {
	return taken[T]{src: p, n: n}
}

type taken[T any] struct {
	src Producer[T]
	n   int
}

func (t taken[T]) Produce(step Step[T]) bool {
	if t.n <= 0 {
		return true
	}
	remaining := t.n
	// Distinguishes "budget spent" from "downstream stopped": a chain
	// continues past an exhausted Take but not past a stopped one.
	exhausted := false
	completed := t.src.Produce(func(v T) bool {
		remaining--
		if !step(v) {
			return false
		}
		if remaining == 0 {
			exhausted = true
			return false
		}
		return true
	})
	return completed || exhausted
}

func (t taken[T]) sizeHint() (int, bool) {
	n, ok := sizeOf(t.src)
	if !ok {
		return 0, false
	}
	return min(max(t.n, 0), n), true
}

// Skip discards the first n elements of p and forwards the rest. Skipping
// past the end yields an empty result.
func Skip[T any](p Producer[T], n int) Producer[T] {
	return skipped[T]{src: p, n: n}
}

type skipped[T any] struct {
	src Producer[T]
	n   int
}

func (s skipped[T]) Produce(step Step[T]) bool {
	remaining := s.n
	return s.src.Produce(func(v T) bool {
		if remaining > 0 {
			remaining--
			return true
		}
		return step(v)
	})
}

func (s skipped[T]) sizeHint() (int, bool) {
	n, ok := sizeOf(s.src)
	if !ok {
		return 0, false
	}
	return max(n-max(s.n, 0), 0), true
}

// StepBy forwards every n-th element, starting with the first. An n below
// 1 is treated as 1.
func StepBy[T any](p Producer[T], n int) Producer[T] {
	return stepped[T]{src: p, n: max(n, 1)}
}

type stepped[T any] struct {
	src Producer[T]
	n   int
}

func (s stepped[T]) Produce(step Step[T]) bool {
	if s.n == 1 {
		return s.src.Produce(step)
	}
	until := 0
	return s.src.Produce(func(v T) bool {
		if until > 0 {
			until--
			return true
		}
		until = s.n - 1
		return step(v)
	})
}

func (s stepped[T]) sizeHint() (int, bool) {
	n, ok := sizeOf(s.src)
	if !ok {
		return 0, false
	}
	return (n + s.n - 1) / s.n, true
}

// TakeWhile forwards elements as long as the predicate holds, then stops
// the source. The element that fails the predicate is not forwarded.
func TakeWhile[T any](p Producer[T], predicate func(T) bool) Producer[T] {
	return takenWhile[T]{src: p, predicate: predicate}
}

type takenWhile[T any] struct {
	src       Producer[T]
	predicate func(T) bool
}

func (t takenWhile[T]) Produce(step Step[T]) bool {
	ended := false
	completed := t.src.Produce(func(v T) bool {
		if !t.predicate(v) {
			ended = true
			return false
		}
		return step(v)
	})
	return completed || ended
}

// DropWhile discards elements as long as the predicate holds, then
// forwards everything from the first failing element on. The predicate is
// not consulted again once it has failed.
func DropWhile[T any](p Producer[T], predicate func(T) bool) Producer[T] {
	return droppedWhile[T]{src: p, predicate: predicate}
}

type droppedWhile[T any] struct {
	src       Producer[T]
	predicate func(T) bool
}

func (d droppedWhile[T]) Produce(step Step[T]) bool {
	dropping := true
	return d.src.Produce(func(v T) bool {
		if dropping {
			if d.predicate(v) {
				return true
			}
			dropping = false
		}
		return step(v)
	})
}
