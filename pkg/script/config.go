package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ArturiaGit/DataStructure/pkg/render"
)

// Script is a list of operations to run against a fresh list.
type Script struct {
	Name        string  `yaml:"name,omitempty"`
	Description string  `yaml:"description,omitempty"`
	Initial     []any   `yaml:"initial,omitempty"`
	Options     Options `yaml:"options,omitempty"`
	Steps       []Step  `yaml:"steps"`
}

type Options struct {
	render.Options  `yaml:",inline"`
	ContinueOnError bool `yaml:"option-continue-on-error,omitempty"`
}

// Step is one operation. A missing or null value is passed to the list as
// an absent value.
type Step struct {
	Name   string       `yaml:"name,omitempty"`
	Op     string       `yaml:"op"`
	Index  *int         `yaml:"index,omitempty"`
	Value  any          `yaml:"value,omitempty"`
	Values []any        `yaml:"values,omitempty"`
	Expect *Expectation `yaml:"expect,omitempty"`
}

// Expectation is checked after its step runs. Error holds an outcome name
// such as "not_found".
type Expectation struct {
	Error  string `yaml:"error,omitempty"`
	Result any    `yaml:"result,omitempty"`
	Length *int   `yaml:"length,omitempty"`
}

const (
	OpAppend      = "append"
	OpInsertAt    = "insertAt"
	OpAddRange    = "addRange"
	OpRemoveAt    = "removeAt"
	OpRemoveValue = "removeValue"
	OpContains    = "contains"
	OpUpdate      = "update"
	OpGet         = "get"
	OpClear       = "clear"
	OpLength      = "length"
	OpValues      = "values"
)

// indexed reports whether op needs an index, and known whether op exists.
func indexed(op string) (needsIndex, known bool) {
	switch op {
	case OpInsertAt, OpRemoveAt, OpUpdate, OpGet:
		return true, true
	case OpAppend, OpAddRange, OpRemoveValue, OpContains, OpClear, OpLength, OpValues:
		return false, true
	}
	return false, false
}

func (s Step) Validate() error {
	needsIndex, known := indexed(s.Op)
	if !known {
		return fmt.Errorf("unknown op %q", s.Op)
	}
	if needsIndex && s.Index == nil {
		return fmt.Errorf("op %q requires 'index'", s.Op)
	}
	if !needsIndex && s.Index != nil {
		return fmt.Errorf("op %q does not take 'index'", s.Op)
	}
	if s.Values != nil && s.Op != OpAddRange {
		return fmt.Errorf("op %q does not take 'values'", s.Op)
	}
	return nil
}

// ToAction converts a Step to a concrete Action.
func (s Step) ToAction() (Action, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	switch s.Op {
	case OpAppend:
		return &AppendAction{Value: s.Value}, nil
	case OpInsertAt:
		return &InsertAtAction{Index: *s.Index, Value: s.Value}, nil
	case OpAddRange:
		return &AddRangeAction{Values: s.Values}, nil
	case OpRemoveAt:
		return &RemoveAtAction{Index: *s.Index}, nil
	case OpRemoveValue:
		return &RemoveValueAction{Value: s.Value}, nil
	case OpContains:
		return &ContainsAction{Value: s.Value}, nil
	case OpUpdate:
		return &UpdateAction{Index: *s.Index, Value: s.Value}, nil
	case OpGet:
		return &GetAction{Index: *s.Index}, nil
	case OpClear:
		return &ClearAction{}, nil
	case OpLength:
		return &LengthAction{}, nil
	case OpValues:
		return &ValuesAction{}, nil
	}
	// Validate rejects unknown ops.
	return nil, fmt.Errorf("no action for op %q", s.Op)
}

// Validate checks every step.
func (s *Script) Validate() error {
	for i, step := range s.Steps {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("error in step %d (%s): %w", i, step.label(), err)
		}
	}
	return nil
}

func (s Step) label() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Op
}

// LoadScript loads a Script from a YAML file.
func LoadScript(filename string) (*Script, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return LoadScriptFromString(string(data))
}

// LoadScriptFromString loads a Script from a YAML string.
func LoadScriptFromString(yamlContent string) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal([]byte(yamlContent), &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
