// Package lists provides generic list containers wired into the push
// iteration model: every list can hand its elements to a pipeline via
// Values and be filled from one via push.CollectInto.
package lists

import (
	"fmt"

	"conveyor/push"
)

var ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")

// List is a generic ordered container. T can be any type.
type List[T any] interface {
	// Add appends one or more elements to the end of the list.
	Add(values ...T)

	// Insert inserts an element at the specified index.
	// Returns ErrIndexOutOfBounds if index < 0 or index > Size().
	Insert(index int, value T) error

	// Remove removes and returns the element at the specified index.
	Remove(index int) (T, error)

	// Get retrieves the element at the specified index.
	Get(index int) (T, error)

	// Set replaces the element at the specified index.
	Set(index int, value T) error

	// Size returns the current number of elements.
	Size() int

	// IsEmpty checks if the list has no elements.
	IsEmpty() bool

	// Clear removes all elements and releases memory.
	Clear()

	// ToSlice copies the list into a native slice, an escape hatch to
	// the standard library.
	ToSlice() []T

	// Values returns a one-shot producer pushing the elements in list
	// order. The list must not be mutated during the traversal.
	Values() push.Producer[T]

	// Collect appends a single element; it makes every List a
	// push.Collector, so pipelines can materialize into it.
	Collect(value T)
}
