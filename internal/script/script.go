// Package script describes sequences of array operations in YAML and
// replays them against a dynarray.Array[int].
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pavanmanishd/dynarray"
)

type Op string

const (
	OpPushBack      Op = "push_back"
	OpPushFront     Op = "push_front"
	OpInsert        Op = "insert"
	OpSet           Op = "set"
	OpGet           Op = "get"
	OpRemove        Op = "remove"
	OpRemoveFirst   Op = "remove_first"
	OpRemoveLast    Op = "remove_last"
	OpRemoveElement Op = "remove_element"
	OpContains      Op = "contains"
	OpIndexOf       Op = "index_of"
	OpClear         Op = "clear"
)

var (
	ErrUnknownOp         = errors.New("unknown operation")
	ErrMissingField      = errors.New("missing field")
	ErrEmptyScript       = errors.New("empty script")
	ErrExpectationFailed = errors.New("expectation failed")
)

type Script struct {
	// Capacity is the initial capacity. Nil means dynarray.DefaultCapacity.
	Capacity    *int   `yaml:"capacity,omitempty"`
	StopOnError bool   `yaml:"stop_on_error,omitempty"`
	Steps       []Step `yaml:"steps"`
}

type Step struct {
	Op     Op    `yaml:"op"`
	Index  *int  `yaml:"index,omitempty"`
	Value  *int  `yaml:"value,omitempty"`
	Expect *int  `yaml:"expect,omitempty"` // value returned by get, remove* or index_of
	Found  *bool `yaml:"found,omitempty"`  // result of contains or remove_element
}

// requirements lists which fields each operation needs.
var requirements = map[Op]struct{ index, value bool }{
	OpPushBack:      {value: true},
	OpPushFront:     {value: true},
	OpInsert:        {index: true, value: true},
	OpSet:           {index: true, value: true},
	OpGet:           {index: true},
	OpRemove:        {index: true},
	OpRemoveFirst:   {},
	OpRemoveLast:    {},
	OpRemoveElement: {value: true},
	OpContains:      {value: true},
	OpIndexOf:       {value: true},
	OpClear:         {},
}

// Ops returns every supported operation name.
func Ops() []Op {
	return []Op{
		OpPushBack, OpPushFront, OpInsert, OpSet, OpGet, OpRemove,
		OpRemoveFirst, OpRemoveLast, OpRemoveElement, OpContains, OpIndexOf, OpClear,
	}
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func Save(path string, s *Script) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Parse decodes and validates a script. Unknown keys are rejected.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScript
		}
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every step names a known operation and carries the
// fields that operation needs.
func (s *Script) Validate() error {
	if s.Capacity != nil && *s.Capacity < 0 {
		return fmt.Errorf("capacity %d is negative", *s.Capacity)
	}
	for i, st := range s.Steps {
		req, ok := requirements[st.Op]
		if !ok {
			return fmt.Errorf("step %d: %w %q", i, ErrUnknownOp, st.Op)
		}
		if req.index && st.Index == nil {
			return fmt.Errorf("step %d (%s): %w: index", i, st.Op, ErrMissingField)
		}
		if req.value && st.Value == nil {
			return fmt.Errorf("step %d (%s): %w: value", i, st.Op, ErrMissingField)
		}
	}
	return nil
}

// NewArray returns an empty array with the script's initial capacity.
func (s *Script) NewArray() *dynarray.Array[int] {
	if s.Capacity == nil {
		return dynarray.NewDefault[int]()
	}
	return dynarray.New[int](*s.Capacity)
}

// Demo returns the canonical walkthrough: fill ten slots, insert into the
// full array, then exercise each kind of removal.
func Demo(capacity int) *Script {
	s := &Script{Capacity: &capacity}
	for i := 0; i < 10; i++ {
		s.Steps = append(s.Steps, Step{Op: OpPushBack, Value: ptr(i)})
	}
	s.Steps = append(s.Steps,
		Step{Op: OpInsert, Index: ptr(1), Value: ptr(100)},
		Step{Op: OpPushFront, Value: ptr(-1)},
		Step{Op: OpRemove, Index: ptr(2), Expect: ptr(100)},
		Step{Op: OpRemoveElement, Value: ptr(4), Found: ptr(true)},
		Step{Op: OpRemoveFirst, Expect: ptr(-1)},
	)
	return s
}

func ptr[T any](v T) *T {
	return &v
}
