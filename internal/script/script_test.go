package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pavanmanishd/dynarray"
)

func TestParse(t *testing.T) {
	data := []byte(`
capacity: 2
steps:
  - op: push_back
    value: 1
  - op: insert
    index: 0
    value: 7
  - op: get
    index: 1
    expect: 1
  - op: contains
    value: 7
    found: true
`)
	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.Capacity == nil || *s.Capacity != 2 {
		t.Errorf("Capacity = %v, want 2", s.Capacity)
	}
	var ops []Op
	for _, st := range s.Steps {
		ops = append(ops, st.Op)
	}
	want := []Op{OpPushBack, OpInsert, OpGet, OpContains}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"empty", "", ErrEmptyScript},
		{"unknown op", "steps:\n  - op: sort\n", ErrUnknownOp},
		{"insert without index", "steps:\n  - op: insert\n    value: 1\n", ErrMissingField},
		{"push without value", "steps:\n  - op: push_back\n", ErrMissingField},
		{"get without index", "steps:\n  - op: get\n", ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("steps:\n  - op: push_back\n    value: 1\n    colour: red\n"))
	if err == nil {
		t.Fatal("Parse() accepted an unknown field")
	}
}

func TestParseRejectsNegativeCapacity(t *testing.T) {
	_, err := Parse([]byte("capacity: -3\nsteps: []\n"))
	if err == nil {
		t.Fatal("Parse() accepted a negative capacity")
	}
}

func TestNewArray(t *testing.T) {
	s := &Script{}
	if got := s.NewArray().Cap(); got != dynarray.DefaultCapacity {
		t.Errorf("NewArray() without capacity: Cap() = %d, want %d", got, dynarray.DefaultCapacity)
	}
	zero := 0
	s.Capacity = &zero
	if got := s.NewArray().Cap(); got != 0 {
		t.Errorf("NewArray() with capacity 0: Cap() = %d, want 0", got)
	}
}

func TestRunDemo(t *testing.T) {
	var seen int
	a, results, err := Run(Demo(dynarray.DefaultCapacity), func(Result) { seen++ })
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if seen != len(results) {
		t.Errorf("onStep called %d times, want %d", seen, len(results))
	}
	for _, r := range results {
		if r.Failed() {
			t.Errorf("step %d (%s) failed: %v", r.Step, r.Op, r.Err)
		}
	}

	// The insert into the full array is the only resize.
	var resized []int
	for _, r := range results {
		if r.Resized {
			resized = append(resized, r.Step)
		}
	}
	if diff := cmp.Diff([]int{10}, resized); diff != "" {
		t.Errorf("resized steps mismatch (-want +got):\n%s", diff)
	}
	if results[10].Cap != 20 {
		t.Errorf("capacity after insert = %d, want 20", results[10].Cap)
	}

	want := []int{0, 1, 2, 3, 5, 6, 7, 8, 9}
	if diff := cmp.Diff(want, a.Values()); diff != "" {
		t.Errorf("final values mismatch (-want +got):\n%s", diff)
	}
	last := results[len(results)-1]
	if last.State != "Array{data=[0, 1, 2, 3, 5, 6, 7, 8, 9], size=9} capacity=20" {
		t.Errorf("final State = %q", last.State)
	}
}

func TestRunRecordsIndexErrors(t *testing.T) {
	s, err := Parse([]byte(`
capacity: 0
steps:
  - op: remove_first
  - op: push_back
    value: 5
  - op: set
    index: 3
    value: 1
  - op: index_of
    value: 5
    expect: 0
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	a, results, err := Run(s, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !errors.Is(results[0].Err, dynarray.ErrIndexOutOfRange) {
		t.Errorf("remove_first on empty: Err = %v, want ErrIndexOutOfRange", results[0].Err)
	}
	if !errors.Is(results[2].Err, dynarray.ErrIndexOutOfRange) {
		t.Errorf("set past end: Err = %v, want ErrIndexOutOfRange", results[2].Err)
	}
	if results[3].Failed() {
		t.Errorf("index_of failed: %v", results[3].Err)
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
}

func TestRunExpectations(t *testing.T) {
	one, two := 1, 2
	no := false
	s := &Script{Steps: []Step{
		{Op: OpPushBack, Value: &one},
		{Op: OpGet, Index: ptr(0), Expect: &two},
		{Op: OpContains, Value: &one, Found: &no},
		{Op: OpPushBack, Value: &two, Expect: &two},
	}}

	_, results, err := Run(s, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, i := range []int{1, 2, 3} {
		if !errors.Is(results[i].Err, ErrExpectationFailed) {
			t.Errorf("step %d: Err = %v, want ErrExpectationFailed", i, results[i].Err)
		}
	}
}

func TestRunStopOnError(t *testing.T) {
	s := &Script{
		StopOnError: true,
		Steps: []Step{
			{Op: OpPushBack, Value: ptr(1)},
			{Op: OpRemove, Index: ptr(5)},
			{Op: OpPushBack, Value: ptr(2)},
		},
	}

	a, results, err := Run(s, nil)
	if !errors.Is(err, dynarray.ErrIndexOutOfRange) {
		t.Fatalf("Run() error = %v, want ErrIndexOutOfRange", err)
	}
	if len(results) != 2 {
		t.Errorf("ran %d steps, want 2", len(results))
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	if err := Save(path, Demo(4)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(Demo(4), s); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestOpsCoverRequirements(t *testing.T) {
	if len(Ops()) != len(requirements) {
		t.Fatalf("Ops() lists %d operations, requirements has %d", len(Ops()), len(requirements))
	}
	for _, op := range Ops() {
		if _, ok := requirements[op]; !ok {
			t.Errorf("operation %q has no requirements entry", op)
		}
	}
}
