package script

import (
	"iter"
	"slices"

	"github.com/ArturiaGit/DataStructure/pkg/list"
)

// Action applies one operation to a list and returns its result, if the
// operation has one.
type Action interface {
	Apply(l list.Interface[any]) (any, error)
}

type AppendAction struct {
	Value any
}

func (a *AppendAction) Apply(l list.Interface[any]) (any, error) {
	return nil, l.Append(a.Value)
}

type InsertAtAction struct {
	Index int
	Value any
}

func (a *InsertAtAction) Apply(l list.Interface[any]) (any, error) {
	return nil, l.InsertAt(a.Index, a.Value)
}

// AddRangeAction passes a nil sequence when Values is nil.
type AddRangeAction struct {
	Values []any
}

func (a *AddRangeAction) Apply(l list.Interface[any]) (any, error) {
	var seq iter.Seq[any]
	if a.Values != nil {
		seq = slices.Values(a.Values)
	}
	return nil, l.AddRange(seq)
}

type RemoveAtAction struct {
	Index int
}

func (a *RemoveAtAction) Apply(l list.Interface[any]) (any, error) {
	return nil, l.RemoveAt(a.Index)
}

type RemoveValueAction struct {
	Value any
}

func (a *RemoveValueAction) Apply(l list.Interface[any]) (any, error) {
	return nil, l.RemoveValue(a.Value)
}

type ContainsAction struct {
	Value any
}

func (a *ContainsAction) Apply(l list.Interface[any]) (any, error) {
	index, err := l.Contains(a.Value)
	if err != nil {
		return nil, err
	}
	return index, nil
}

type UpdateAction struct {
	Index int
	Value any
}

func (a *UpdateAction) Apply(l list.Interface[any]) (any, error) {
	return nil, l.Update(a.Index, a.Value)
}

type GetAction struct {
	Index int
}

func (a *GetAction) Apply(l list.Interface[any]) (any, error) {
	return l.GetAt(a.Index)
}

type ClearAction struct{}

func (a *ClearAction) Apply(l list.Interface[any]) (any, error) {
	l.Clear()
	return nil, nil
}

type LengthAction struct{}

func (a *LengthAction) Apply(l list.Interface[any]) (any, error) {
	return l.Len(), nil
}

type ValuesAction struct{}

func (a *ValuesAction) Apply(l list.Interface[any]) (any, error) {
	values := slices.Collect(l.All())
	if values == nil {
		values = []any{}
	}
	return values, nil
}
