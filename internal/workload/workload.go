// Package workload drives an array through synthetic operation patterns and
// samples its size and capacity after every operation.
package workload

import (
	"fmt"
	"math/rand"

	"github.com/pavanmanishd/dynarray"
)

type Pattern string

const (
	// Grow appends ops elements.
	Grow Pattern = "grow"
	// Shrink appends ops/2 elements, then removes them all.
	Shrink Pattern = "shrink"
	// Oscillate fills the array to capacity, then alternates one append
	// with one removal.
	Oscillate Pattern = "oscillate"
	// Churn picks appends, front inserts and removals at random.
	Churn Pattern = "churn"
)

func Patterns() []Pattern {
	return []Pattern{Grow, Shrink, Oscillate, Churn}
}

// Sample is the array state after one operation.
type Sample struct {
	Len int
	Cap int
}

// Run executes ops operations of pattern p on an array created with the
// given capacity. seed only affects Churn.
func Run(p Pattern, ops, capacity int, seed int64) (*dynarray.Array[int], []Sample, error) {
	if ops < 0 {
		return nil, nil, fmt.Errorf("ops %d is negative", ops)
	}
	a := dynarray.New[int](capacity)
	samples := make([]Sample, 0, ops)
	record := func() {
		samples = append(samples, Sample{Len: a.Len(), Cap: a.Cap()})
	}

	switch p {
	case Grow:
		for i := 0; i < ops; i++ {
			a.PushBack(i)
			record()
		}
	case Shrink:
		n := ops / 2
		for i := 0; i < n; i++ {
			a.PushBack(i)
			record()
		}
		for i := n; i < ops; i++ {
			// Removing from an empty array is a no-op sample.
			_, _ = a.RemoveLast()
			record()
		}
	case Oscillate:
		boundary := -1
		for i := 0; i < ops; i++ {
			switch {
			case boundary < 0:
				a.PushBack(i)
				if a.Len() == a.Cap() {
					boundary = i
				}
			case (i-boundary)%2 == 1:
				a.PushBack(i)
			default:
				_, _ = a.RemoveLast()
			}
			record()
		}
	case Churn:
		rng := rand.New(rand.NewSource(seed))
		for i := 0; i < ops; i++ {
			switch rng.Intn(4) {
			case 0:
				a.PushFront(i)
			case 1:
				a.PushBack(i)
			default:
				if !a.IsEmpty() {
					_, _ = a.Remove(rng.Intn(a.Len()))
				}
			}
			record()
		}
	default:
		return nil, nil, fmt.Errorf("unknown pattern %q", p)
	}
	return a, samples, nil
}

// Capacities returns the capacity series of samples, ready for plotting.
func Capacities(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s.Cap)
	}
	return out
}

// Lengths returns the size series of samples.
func Lengths(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s.Len)
	}
	return out
}
