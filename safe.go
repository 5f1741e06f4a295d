package dynarray

import "sync"

// SafeArray is a mutex-protected wrapper around Array for concurrent access.
// All operations are thread-safe but come with the overhead of mutex locking.
type SafeArray[E any] struct {
	mu sync.Mutex
	a  *Array[E]
}

// NewSafe creates a new thread-safe array with the specified capacity.
func NewSafe[E any](capacity int) *SafeArray[E] {
	return &SafeArray[E]{a: New[E](capacity)}
}

// Len thread-safely returns the number of elements.
func (s *SafeArray[E]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Len()
}

// Cap thread-safely returns the number of allocated slots.
func (s *SafeArray[E]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Cap()
}

// IsEmpty thread-safely reports whether the array holds no elements.
func (s *SafeArray[E]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.IsEmpty()
}

// Get thread-safely returns the element at index.
func (s *SafeArray[E]) Get(index int) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Get(index)
}

// Set thread-safely overwrites the element at index.
func (s *SafeArray[E]) Set(index int, e E) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Set(index, e)
}

// Insert thread-safely places e at index.
func (s *SafeArray[E]) Insert(index int, e E) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Insert(index, e)
}

// PushBack thread-safely appends e.
func (s *SafeArray[E]) PushBack(e E) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.PushBack(e)
}

// PushFront thread-safely inserts e at index 0.
func (s *SafeArray[E]) PushFront(e E) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.PushFront(e)
}

// Remove thread-safely deletes and returns the element at index.
func (s *SafeArray[E]) Remove(index int) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Remove(index)
}

// RemoveFirst thread-safely deletes and returns the first element.
func (s *SafeArray[E]) RemoveFirst() (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.RemoveFirst()
}

// RemoveLast thread-safely deletes and returns the last element.
func (s *SafeArray[E]) RemoveLast() (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.RemoveLast()
}

// Clear thread-safely drops all elements.
func (s *SafeArray[E]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Clear()
}

// Values thread-safely returns a copy of the elements.
func (s *SafeArray[E]) Values() []E {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Values()
}

// String thread-safely returns the debug representation.
func (s *SafeArray[E]) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.String()
}

// Do runs fn with the lock held, so that several operations observe and
// leave a consistent state. fn must not retain a.
func (s *SafeArray[E]) Do(fn func(a *Array[E])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.a)
}

// Equality helpers for SafeArray

// SafeIndexOf thread-safely returns the index of the first element equal to e, or -1.
func SafeIndexOf[E comparable](s *SafeArray[E], e E) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return IndexOf(s.a, e)
}

// SafeContains thread-safely reports whether an element equal to e is present.
func SafeContains[E comparable](s *SafeArray[E], e E) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Contains(s.a, e)
}

// SafeRemoveElement thread-safely removes the first element equal to e.
func SafeRemoveElement[E comparable](s *SafeArray[E], e E) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RemoveElement(s.a, e)
}
