package dynarray

// Utilization returns the ratio of elements to capacity (0.0 to 1.0).
// Returns 0.0 if the array has no capacity.
func (a *Array[E]) Utilization() float64 {
	if len(a.buf) == 0 {
		return 0
	}
	return float64(a.size) / float64(len(a.buf))
}

// Grows returns how many times the buffer has been enlarged.
func (a *Array[E]) Grows() int {
	return a.grows
}

// Shrinks returns how many times the buffer has been halved.
func (a *Array[E]) Shrinks() int {
	return a.shrinks
}

// Resizes returns the total number of buffer reallocations.
func (a *Array[E]) Resizes() int {
	return a.grows + a.shrinks
}

// Metrics returns a snapshot of array statistics.
func (a *Array[E]) Metrics() ArrayMetrics {
	return ArrayMetrics{
		Len:         a.Len(),
		Cap:         a.Cap(),
		Grows:       a.grows,
		Shrinks:     a.shrinks,
		Utilization: a.Utilization(),
	}
}

// ArrayMetrics contains statistical information about an array.
type ArrayMetrics struct {
	Len         int     // Elements in use
	Cap         int     // Allocated slots
	Grows       int     // Buffer doublings
	Shrinks     int     // Buffer halvings
	Utilization float64 // Ratio of Len to Cap (0.0-1.0)
}

// Thread-safe metrics for SafeArray

// Utilization thread-safely returns the ratio of elements to capacity.
func (s *SafeArray[E]) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Metrics thread-safely returns a snapshot of array statistics.
func (s *SafeArray[E]) Metrics() ArrayMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
