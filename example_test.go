package dynarray

import (
	"errors"
	"fmt"
	"sync"
)

// Example demonstrates basic array usage
func Example() {
	// Create an array with the default capacity of 10
	a := NewDefault[int]()
	for i := 0; i < 10; i++ {
		a.PushBack(i)
	}
	fmt.Println(a)

	// Inserting into a full array doubles its capacity
	_ = a.Insert(1, 100)
	fmt.Println(a)

	a.PushFront(-1)
	fmt.Println(a)

	_, _ = a.Remove(2)
	fmt.Println(a)

	RemoveElement(a, 4)
	fmt.Println(a)

	_, _ = a.RemoveFirst()
	fmt.Println(a)

	// Output:
	// Array{data=[0, 1, 2, 3, 4, 5, 6, 7, 8, 9], size=10} capacity=10
	// Array{data=[0, 100, 1, 2, 3, 4, 5, 6, 7, 8, 9], size=11} capacity=20
	// Array{data=[-1, 0, 100, 1, 2, 3, 4, 5, 6, 7, 8, 9], size=12} capacity=20
	// Array{data=[-1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9], size=11} capacity=20
	// Array{data=[-1, 0, 1, 2, 3, 5, 6, 7, 8, 9], size=10} capacity=20
	// Array{data=[0, 1, 2, 3, 5, 6, 7, 8, 9], size=9} capacity=20
}

// ExampleArray_Get demonstrates index validation
func ExampleArray_Get() {
	a := From("a", "b")

	v, err := a.Get(1)
	fmt.Println(v, err)

	_, err = a.Get(2)
	fmt.Println(errors.Is(err, ErrIndexOutOfRange))
	fmt.Println(err)

	// Output:
	// b <nil>
	// true
	// dynarray: get: index 2 out of range for size 2
}

// ExampleArray_Remove demonstrates the buffer shrinking at quarter occupancy
func ExampleArray_Remove() {
	a := New[int](8)
	for i := 0; i < 8; i++ {
		a.PushBack(i)
	}

	for !a.IsEmpty() {
		_, _ = a.RemoveLast()
		fmt.Printf("size %d capacity %d\n", a.Len(), a.Cap())
	}

	// Output:
	// size 7 capacity 8
	// size 6 capacity 8
	// size 5 capacity 8
	// size 4 capacity 8
	// size 3 capacity 8
	// size 2 capacity 4
	// size 1 capacity 2
	// size 0 capacity 1
}

// ExampleSafeArray demonstrates thread-safe array usage
func ExampleSafeArray() {
	s := NewSafe[int](0)

	var wg sync.WaitGroup
	const numWorkers = 3

	// Launch concurrent workers
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			s.PushBack(id)
		}(i)
	}

	wg.Wait()
	fmt.Printf("Elements: %d\n", s.Len())

	// Output:
	// Elements: 3
}

// ExampleArrayMetrics demonstrates monitoring resize behaviour
func ExampleArrayMetrics() {
	a := New[int](0)
	for i := 0; i < 100; i++ {
		a.PushBack(i)
	}

	m := a.Metrics()
	fmt.Printf("Metrics:\n")
	fmt.Printf("  Len: %d\n", m.Len)
	fmt.Printf("  Cap: %d\n", m.Cap)
	fmt.Printf("  Grows: %d\n", m.Grows)
	fmt.Printf("  Utilization: %.1f%%\n", m.Utilization*100)

	// Output:
	// Metrics:
	//   Len: 100
	//   Cap: 128
	//   Grows: 8
	//   Utilization: 78.1%
}
