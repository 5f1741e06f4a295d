// Package dynarray implements a generic resizable array.
// The array doubles its buffer when full and halves it when only a quarter
// of the slots remain in use.
package dynarray

import (
	"fmt"
	"strings"
)

// DefaultCapacity is the capacity used by NewDefault.
const DefaultCapacity = 10

// Array is a contiguous, index-addressable buffer of elements with a logical
// size tracked separately from its capacity. Not goroutine-safe.
// Use SafeArray for concurrent access.
type Array[E any] struct {
	buf  []E // backing store, len(buf) is the capacity
	size int

	grows   int
	shrinks int
}

// New creates an Array with exactly capacity slots.
// A negative capacity is treated as 0.
func New[E any](capacity int) *Array[E] {
	if capacity < 0 {
		capacity = 0
	}
	return &Array[E]{buf: make([]E, capacity)}
}

// NewDefault creates an Array with DefaultCapacity slots.
func NewDefault[E any]() *Array[E] {
	return New[E](DefaultCapacity)
}

// From creates an Array holding a copy of values, in order.
func From[E any](values ...E) *Array[E] {
	a := New[E](max(len(values), DefaultCapacity))
	a.size = copy(a.buf, values)
	return a
}

// Len returns the number of elements in the array.
func (a *Array[E]) Len() int {
	return a.size
}

// Cap returns the number of allocated slots.
func (a *Array[E]) Cap() int {
	return len(a.buf)
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[E]) IsEmpty() bool {
	return a.size == 0
}

// Get returns the element at index.
func (a *Array[E]) Get(index int) (E, error) {
	if err := a.checkIndex("get", index, a.size); err != nil {
		var zero E
		return zero, err
	}
	return a.buf[index], nil
}

// Set overwrites the element at index.
func (a *Array[E]) Set(index int, e E) error {
	if err := a.checkIndex("set", index, a.size); err != nil {
		return err
	}
	a.buf[index] = e
	return nil
}

// Insert places e at index, shifting the elements at [index, Len()) one
// position right. index may equal Len(), which appends.
func (a *Array[E]) Insert(index int, e E) error {
	if err := a.checkIndex("insert", index, a.size+1); err != nil {
		return err
	}
	a.insert(index, e)
	return nil
}

// PushBack appends e.
func (a *Array[E]) PushBack(e E) {
	a.insert(a.size, e)
}

// PushFront inserts e at index 0.
func (a *Array[E]) PushFront(e E) {
	a.insert(0, e)
}

// Remove deletes and returns the element at index, shifting the elements
// after it one position left.
func (a *Array[E]) Remove(index int) (E, error) {
	if err := a.checkIndex("remove", index, a.size); err != nil {
		var zero E
		return zero, err
	}
	return a.remove(index), nil
}

// RemoveFirst deletes and returns the first element.
func (a *Array[E]) RemoveFirst() (E, error) {
	return a.Remove(0)
}

// RemoveLast deletes and returns the last element.
func (a *Array[E]) RemoveLast() (E, error) {
	return a.Remove(a.size - 1)
}

// Clear drops all elements but keeps the allocated capacity.
func (a *Array[E]) Clear() {
	clear(a.buf[:a.size])
	a.size = 0
}

// Values returns a copy of the elements in order.
func (a *Array[E]) Values() []E {
	out := make([]E, a.size)
	copy(out, a.buf[:a.size])
	return out
}

// String returns a debug representation listing the elements, the size and
// the capacity.
func (a *Array[E]) String() string {
	var sb strings.Builder
	sb.WriteString("Array{data=[")
	for i := 0; i < a.size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, a.buf[i])
	}
	fmt.Fprintf(&sb, "], size=%d} capacity=%d", a.size, len(a.buf))
	return sb.String()
}

// insert assumes index is within [0, size].
func (a *Array[E]) insert(index int, e E) {
	if a.size == len(a.buf) {
		a.resize(max(2*len(a.buf), 1))
		a.grows++
	}
	copy(a.buf[index+1:a.size+1], a.buf[index:a.size])
	a.buf[index] = e
	a.size++
}

// remove assumes index is within [0, size).
func (a *Array[E]) remove(index int) E {
	e := a.buf[index]
	copy(a.buf[index:a.size-1], a.buf[index+1:a.size])
	a.size--
	var zero E
	a.buf[a.size] = zero

	// Shrinking at a quarter rather than a half keeps a single insert from
	// undoing the resize.
	if half := len(a.buf) / 2; a.size == len(a.buf)/4 && half != 0 {
		a.resize(half)
		a.shrinks++
	}
	return e
}

// resize moves the elements into a fresh buffer of n slots.
func (a *Array[E]) resize(n int) {
	buf := make([]E, n)
	copy(buf, a.buf[:a.size])
	a.buf = buf
}

// checkIndex validates index against the half-open range [0, limit).
func (a *Array[E]) checkIndex(op string, index, limit int) error {
	if index < 0 || index >= limit {
		return &IndexError{Op: op, Index: index, Size: a.size}
	}
	return nil
}
