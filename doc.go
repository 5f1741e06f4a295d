// Package dynarray implements a generic resizable array for Go.
//
// # Overview
//
// An Array keeps its elements in one contiguous buffer and tracks the
// number of elements in use separately from the number of slots allocated.
// Elements can be read, overwritten, inserted and removed at any position;
// the buffer grows and shrinks automatically.
//
// # Basic Usage
//
//	a := dynarray.NewDefault[int]() // capacity 10
//
//	a.PushBack(1)
//	a.PushFront(0)
//	if err := a.Insert(1, 100); err != nil {
//		// index outside [0, Len()]
//	}
//
//	v, err := a.Get(0)
//	old, err := a.Remove(1)
//
//	// Equality-based lookups need a comparable element type
//	i := dynarray.IndexOf(a, 100)
//	dynarray.RemoveElement(a, 100)
//
// # Resize Policy
//
// When an insertion finds the buffer full, the capacity doubles (an empty
// buffer grows to one slot). When a removal leaves exactly a quarter of the
// slots in use, the capacity halves, but never to zero.
//
// The gap between the two thresholds matters: with a shrink at half
// occupancy, alternately inserting and removing at the boundary would
// reallocate on every call. At a quarter, a freshly halved buffer is still
// half empty, so the next insertion cannot force it to grow again.
//
// # Errors
//
// Every out-of-bounds index is reported as an *IndexError, which matches
// ErrIndexOutOfRange under errors.Is. Indices are validated before anything
// is modified, so a failed call leaves the array untouched.
//
// # Thread Safety
//
// The Array type is not thread-safe. For concurrent access, use SafeArray:
//
//	s := dynarray.NewSafe[string](0)
//	s.PushBack("a")
//	s.Do(func(a *dynarray.Array[string]) {
//		// several operations under one lock
//	})
//
// # Performance Characteristics
//
//   - Get, Set, Len, Cap: O(1)
//   - PushBack: O(1) amortized
//   - Insert, Remove, PushFront: O(n) for the shift
//   - IndexOf, Contains, RemoveElement: O(n) linear scan
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Resizes: %d grows, %d shrinks\n", m.Grows, m.Shrinks)
package dynarray
