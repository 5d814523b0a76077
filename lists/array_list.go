package lists

import (
	"conveyor/push"
)

// ArrayList is a slice-backed List.
type ArrayList[T any] struct {
	data []T
}

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

func (al *ArrayList[T]) Insert(index int, value T) error {
	if index < 0 || index > len(al.data) {
		return ErrIndexOutOfBounds
	}

	var zero T
	al.data = append(al.data, zero)
	copy(al.data[index+1:], al.data[index:])
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Remove(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(al.data) {
		return zero, ErrIndexOutOfBounds
	}

	res := al.data[index]
	copy(al.data[index:], al.data[index+1:])
	// Zero the vacated tail slot so the value can be collected.
	al.data[len(al.data)-1] = zero
	al.data = al.data[:len(al.data)-1]
	return res, nil
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(al.data) {
		return zero, ErrIndexOutOfBounds
	}
	return al.data[index], nil
}

func (al *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(al.data) {
		return ErrIndexOutOfBounds
	}
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Size() int { return len(al.data) }

func (al *ArrayList[T]) IsEmpty() bool { return len(al.data) == 0 }

func (al *ArrayList[T]) Clear() {
	al.data = nil
}

func (al *ArrayList[T]) ToSlice() []T {
	out := make([]T, len(al.data))
	copy(out, al.data)
	return out
}

// Values returns a producer over the backing slice. Count, Nth and Last on
// it resolve without traversal.
func (al *ArrayList[T]) Values() push.Producer[T] {
	return push.FromSlice(al.data)
}

// Collect implements push.Collector by appending.
func (al *ArrayList[T]) Collect(value T) {
	al.data = append(al.data, value)
}
