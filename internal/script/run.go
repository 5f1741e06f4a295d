package script

import (
	"fmt"

	"github.com/pavanmanishd/dynarray"
)

// Result records the outcome of one step.
type Result struct {
	Step     int
	Op       Op
	Value    int // returned value, valid when HasValue is set
	HasValue bool
	Found    bool // contains and remove_element
	Err      error
	Len      int
	Cap      int
	Resized  bool
	State    string // debug representation after the step
}

// Failed reports whether the step produced an error or missed an expectation.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Run replays s against a fresh array. onStep, if non-nil, is called after
// every step. Failing steps are recorded in their Result; Run itself only
// returns an error when s.StopOnError is set and a step fails.
func Run(s *Script, onStep func(Result)) (*dynarray.Array[int], []Result, error) {
	a := s.NewArray()
	results := make([]Result, 0, len(s.Steps))

	for i, st := range s.Steps {
		resizes := a.Resizes()
		r := apply(a, st)
		r.Step = i
		r.Op = st.Op
		if r.Err == nil {
			r.Err = check(st, r)
		}
		r.Len = a.Len()
		r.Cap = a.Cap()
		r.Resized = a.Resizes() != resizes
		r.State = a.String()

		results = append(results, r)
		if onStep != nil {
			onStep(r)
		}
		if r.Err != nil && s.StopOnError {
			return a, results, fmt.Errorf("step %d (%s): %w", i, st.Op, r.Err)
		}
	}
	return a, results, nil
}

// apply performs one validated step.
func apply(a *dynarray.Array[int], st Step) Result {
	var r Result
	switch st.Op {
	case OpPushBack:
		a.PushBack(*st.Value)
	case OpPushFront:
		a.PushFront(*st.Value)
	case OpInsert:
		r.Err = a.Insert(*st.Index, *st.Value)
	case OpSet:
		r.Err = a.Set(*st.Index, *st.Value)
	case OpGet:
		r.Value, r.Err = a.Get(*st.Index)
		r.HasValue = r.Err == nil
	case OpRemove:
		r.Value, r.Err = a.Remove(*st.Index)
		r.HasValue = r.Err == nil
	case OpRemoveFirst:
		r.Value, r.Err = a.RemoveFirst()
		r.HasValue = r.Err == nil
	case OpRemoveLast:
		r.Value, r.Err = a.RemoveLast()
		r.HasValue = r.Err == nil
	case OpRemoveElement:
		r.Found = dynarray.RemoveElement(a, *st.Value)
	case OpContains:
		r.Found = dynarray.Contains(a, *st.Value)
	case OpIndexOf:
		r.Value = dynarray.IndexOf(a, *st.Value)
		r.HasValue = true
	case OpClear:
		a.Clear()
	default:
		r.Err = fmt.Errorf("%w %q", ErrUnknownOp, st.Op)
	}
	return r
}

// check compares a successful step against its expectations.
func check(st Step, r Result) error {
	if st.Expect != nil {
		if !r.HasValue {
			return fmt.Errorf("%w: %s returns no value", ErrExpectationFailed, st.Op)
		}
		if r.Value != *st.Expect {
			return fmt.Errorf("%w: got %d, want %d", ErrExpectationFailed, r.Value, *st.Expect)
		}
	}
	if st.Found != nil && r.Found != *st.Found {
		return fmt.Errorf("%w: found = %v, want %v", ErrExpectationFailed, r.Found, *st.Found)
	}
	return nil
}
