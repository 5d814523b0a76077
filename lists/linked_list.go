package lists

import (
	"conveyor/push"
)

type node[T any] struct {
	prev *node[T]
	next *node[T]
	val  T
}

// LinkedList is a doubly linked List with head and tail sentinels. Its
// Values producer walks the nodes directly; no cursor state is needed,
// which is the natural shape for push traversal.
type LinkedList[T any] struct {
	headSentinel *node[T]
	tailSentinel *node[T]
	size         int
}

func NewLinkedList[T any]() *LinkedList[T] {
	ll := &LinkedList[T]{
		headSentinel: &node[T]{},
		tailSentinel: &node[T]{},
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	return ll
}

// insertAfter links newNode directly after anchor.
func (ll *LinkedList[T]) insertAfter(anchor *node[T], newNode *node[T]) {
	newNode.prev = anchor
	newNode.next = anchor.next
	anchor.next.prev = newNode
	anchor.next = newNode
	ll.size++
}

// findNodeAt returns the node at index, walking from whichever end is
// closer. index == size returns the tail sentinel. Bounds checking is the
// caller's job.
func (ll *LinkedList[T]) findNodeAt(index int) *node[T] {
	if index == ll.size {
		return ll.tailSentinel
	}
	if index < ll.size/2 {
		current := ll.headSentinel.next
		for range index {
			current = current.next
		}
		return current
	}
	current := ll.tailSentinel.prev
	for i := ll.size - 1; i > index; i-- {
		current = current.prev
	}
	return current
}

// unlink removes target from the list and returns its value. The node's
// links and value are cleared to help GC.
func (ll *LinkedList[T]) unlink(target *node[T]) T {
	target.prev.next = target.next
	target.next.prev = target.prev
	res := target.val
	target.prev = nil
	target.next = nil
	var zero T
	target.val = zero
	ll.size--
	return res
}

func (ll *LinkedList[T]) Add(values ...T) {
	for _, value := range values {
		ll.insertAfter(ll.tailSentinel.prev, &node[T]{val: value})
	}
}

// AddFirst prepends a value to the list.
func (ll *LinkedList[T]) AddFirst(value T) {
	ll.insertAfter(ll.headSentinel, &node[T]{val: value})
}

func (ll *LinkedList[T]) Insert(index int, value T) error {
	if index < 0 || index > ll.size {
		return ErrIndexOutOfBounds
	}
	target := ll.findNodeAt(index)
	ll.insertAfter(target.prev, &node[T]{val: value})
	return nil
}

func (ll *LinkedList[T]) Remove(index int) (T, error) {
	var zero T
	if index < 0 || index >= ll.size {
		return zero, ErrIndexOutOfBounds
	}
	return ll.unlink(ll.findNodeAt(index)), nil
}

func (ll *LinkedList[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= ll.size {
		return zero, ErrIndexOutOfBounds
	}
	return ll.findNodeAt(index).val, nil
}

func (ll *LinkedList[T]) Set(index int, value T) error {
	if index < 0 || index >= ll.size {
		return ErrIndexOutOfBounds
	}
	ll.findNodeAt(index).val = value
	return nil
}

func (ll *LinkedList[T]) Size() int { return ll.size }

func (ll *LinkedList[T]) IsEmpty() bool { return ll.size == 0 }

func (ll *LinkedList[T]) Clear() {
	// Drop all nodes at once; clearing individual links is not needed
	// since the whole chain becomes unreachable together.
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	ll.size = 0
}

func (ll *LinkedList[T]) ToSlice() []T {
	out := make([]T, 0, ll.size)
	for n := ll.headSentinel.next; n != ll.tailSentinel; n = n.next {
		out = append(out, n.val)
	}
	return out
}

// Values returns a producer that walks the nodes head to tail, stopping
// the walk as soon as the step function does.
func (ll *LinkedList[T]) Values() push.Producer[T] {
	return &linkedValues[T]{list: ll}
}

type linkedValues[T any] struct {
	list *LinkedList[T]
}

func (lv *linkedValues[T]) Produce(step push.Step[T]) bool {
	for n := lv.list.headSentinel.next; n != lv.list.tailSentinel; n = n.next {
		if !step(n.val) {
			return false
		}
	}
	return true
}

// Len makes the producer push.Sized: a list knows its length, and Values
// filters nothing.
func (lv *linkedValues[T]) Len() int { return lv.list.size }

// Collect implements push.Collector by appending.
func (ll *LinkedList[T]) Collect(value T) {
	ll.insertAfter(ll.tailSentinel.prev, &node[T]{val: value})
}
