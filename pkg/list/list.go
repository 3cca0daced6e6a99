// Package list provides an ordered, singly linked list with positional
// access.
//
// A List keeps a value-less sentinel node in front of its elements, so
// inserting at the head and working on an empty list need no special
// cases. Every positional operation walks the chain from the sentinel and
// costs O(n).
//
// A List is not safe for concurrent use. Mutating a List while a
// traversal started by All or Iterator is still in progress is undefined;
// callers that share a List between goroutines must lock around it.
package list

import (
	"fmt"
	"io"
	"iter"
	"reflect"
	"slices"
	"strings"
)

// NotFound is the index Contains reports when no element matches.
const NotFound = -1

// Interface is the capability set of an ordered list.
type Interface[T any] interface {
	Append(value T) error
	InsertAt(index int, value T) error
	AddRange(seq iter.Seq[T]) error
	AddCollection(c Collection[T]) error
	RemoveAt(index int) error
	RemoveValue(value T) error
	Contains(value T) (int, error)
	Update(index int, value T) error
	GetAt(index int) (T, error)
	Clear()
	Len() int
	All() iter.Seq[T]
	io.Closer
}

// Collection is a source of elements whose count is known up front.
type Collection[T any] interface {
	Len() int
	All() iter.Seq[T]
}

// List is an ordered sequence of non-absent values. The zero value is an
// empty list that compares elements with reflect.DeepEqual. A List must not
// be copied after first use.
type List[T any] struct {
	head  node[T] // sentinel, never holds a value
	count int
	eq    func(a, b T) bool
}

var _ Interface[int] = (*List[int])(nil)

// New returns an empty list that compares elements with ==. Dynamic values
// that == cannot compare, such as a slice held in an interface, are
// compared with reflect.DeepEqual instead.
func New[T comparable]() *List[T] {
	return &List[T]{eq: comparableEqual[T]()}
}

// NewWithEqual returns an empty list that compares elements with eq.
// A nil eq selects reflect.DeepEqual.
func NewWithEqual[T any](eq func(a, b T) bool) *List[T] {
	return &List[T]{eq: eq}
}

// From builds a list holding the elements of seq in order.
func From[T comparable](seq iter.Seq[T]) (*List[T], error) {
	if seq == nil {
		return nil, fmt.Errorf("list.From: source sequence is nil: %w", ErrInvalidArgument)
	}
	l := New[T]()
	if err := l.AddRange(seq); err != nil {
		return nil, err
	}
	return l, nil
}

// Of builds a list holding values in order.
func Of[T comparable](values ...T) (*List[T], error) {
	l := New[T]()
	if err := l.AddRange(slices.Values(values)); err != nil {
		return nil, err
	}
	return l, nil
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.count
}

// Append adds value after the last element.
func (l *List[T]) Append(value T) error {
	if isAbsent(value) {
		return fmt.Errorf("list.Append: %w", errAbsentValue)
	}
	tail, err := l.nodeAt(l.count)
	if err != nil {
		return fmt.Errorf("list.Append: %w", err)
	}
	tail.next = &node[T]{value: value}
	l.count++
	return nil
}

// InsertAt inserts value so that it becomes the element at index. Elements
// from index on move one position later. An index equal to Len appends.
func (l *List[T]) InsertAt(index int, value T) error {
	if index < 0 || index > l.count {
		return outOfRange("InsertAt", index, l.count)
	}
	if isAbsent(value) {
		return fmt.Errorf("list.InsertAt: %w", errAbsentValue)
	}
	prev, err := l.nodeAt(index)
	if err != nil {
		return fmt.Errorf("list.InsertAt: %w", err)
	}
	prev.next = &node[T]{value: value, next: prev.next}
	l.count++
	return nil
}

// AddRange appends every element of seq, in the order seq yields them.
// The list is left unchanged if seq yields an absent value.
func (l *List[T]) AddRange(seq iter.Seq[T]) error {
	if seq == nil {
		return fmt.Errorf("list.AddRange: source sequence is nil: %w", ErrInvalidArgument)
	}
	var staged chain[T]
	for v := range seq {
		if err := staged.push(v); err != nil {
			return fmt.Errorf("list.AddRange: %w", err)
		}
	}
	return l.splice("AddRange", &staged)
}

// AddCollection appends the elements of c. Empty collections are not
// iterated, and at most c.Len() elements are taken, so a list may be
// appended to itself.
func (l *List[T]) AddCollection(c Collection[T]) error {
	if isAbsent(c) {
		return fmt.Errorf("list.AddCollection: source collection is nil: %w", ErrInvalidArgument)
	}
	n := c.Len()
	if n == 0 {
		return nil
	}
	var staged chain[T]
	for v := range c.All() {
		if err := staged.push(v); err != nil {
			return fmt.Errorf("list.AddCollection: %w", err)
		}
		if staged.count == n {
			break
		}
	}
	return l.splice("AddCollection", &staged)
}

// RemoveAt removes the element at index.
func (l *List[T]) RemoveAt(index int) error {
	if index < 0 || index >= l.count {
		return outOfRange("RemoveAt", index, l.count)
	}
	prev, err := l.nodeAt(index)
	if err != nil {
		return fmt.Errorf("list.RemoveAt: %w", err)
	}
	removed := prev.next
	if removed == nil {
		return fmt.Errorf("list.RemoveAt: no node at index %d of %d: %w", index, l.count, ErrCorrupted)
	}
	prev.next = removed.next
	removed.next = nil
	l.count--
	return nil
}

// RemoveValue removes the first element equal to value.
func (l *List[T]) RemoveValue(value T) error {
	if isAbsent(value) {
		return fmt.Errorf("list.RemoveValue: %w", errAbsentValue)
	}
	index := l.indexOf(value)
	if index == NotFound {
		return fmt.Errorf("list.RemoveValue: %v: %w", value, ErrNotFound)
	}
	return l.RemoveAt(index)
}

// Contains returns the index of the first element equal to value, or
// NotFound.
func (l *List[T]) Contains(value T) (int, error) {
	if isAbsent(value) {
		return NotFound, fmt.Errorf("list.Contains: %w", errAbsentValue)
	}
	return l.indexOf(value), nil
}

// Update replaces the element at index with value.
func (l *List[T]) Update(index int, value T) error {
	if index < 0 || index >= l.count {
		return outOfRange("Update", index, l.count)
	}
	if isAbsent(value) {
		return fmt.Errorf("list.Update: %w", errAbsentValue)
	}
	n, err := l.nodeAt(index + 1)
	if err != nil {
		return fmt.Errorf("list.Update: %w", err)
	}
	n.value = value
	return nil
}

// GetAt returns the element at index.
func (l *List[T]) GetAt(index int) (T, error) {
	var zero T
	if index < 0 || index >= l.count {
		return zero, outOfRange("GetAt", index, l.count)
	}
	n, err := l.nodeAt(index + 1)
	if err != nil {
		return zero, fmt.Errorf("list.GetAt: %w", err)
	}
	return n.value, nil
}

// Clear drops every element.
func (l *List[T]) Clear() {
	l.head.next = nil
	l.count = 0
}

// Close clears the list. The list must not be used afterwards.
func (l *List[T]) Close() error {
	l.Clear()
	return nil
}

// All returns the elements in order. Each range over the result starts a
// new walk from the first element.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head.next; n != nil; n = n.next {
		if n != l.head.next {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, n.value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// nodeAt walks offset links from the sentinel. Offset 0 is the sentinel
// itself and offset Len is the last element.
func (l *List[T]) nodeAt(offset int) (*node[T], error) {
	if offset < 0 || offset > l.count {
		return nil, fmt.Errorf("offset %d outside chain of %d nodes: %w", offset, l.count, ErrCorrupted)
	}
	n := &l.head
	for i := 0; i < offset; i++ {
		if n.next == nil {
			return nil, fmt.Errorf("chain ends after %d of %d nodes: %w", i, l.count, ErrCorrupted)
		}
		n = n.next
	}
	return n, nil
}

func (l *List[T]) indexOf(value T) int {
	eq := l.eq
	if eq == nil {
		eq = deepEqual[T]
	}
	i := 0
	for n := l.head.next; n != nil; n = n.next {
		if eq(n.value, value) {
			return i
		}
		i++
	}
	return NotFound
}

// splice links a staged chain after the current tail.
func (l *List[T]) splice(op string, staged *chain[T]) error {
	if staged.count == 0 {
		return nil
	}
	tail, err := l.nodeAt(l.count)
	if err != nil {
		return fmt.Errorf("list.%s: %w", op, err)
	}
	tail.next = staged.first
	l.count += staged.count
	return nil
}

// comparableEqual returns == for T. Interface, struct and array types may
// carry dynamic values that panic under ==, so for those each comparison
// first checks comparability and otherwise uses reflect.DeepEqual.
func comparableEqual[T comparable]() func(a, b T) bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Interface, reflect.Struct, reflect.Array:
		return func(a, b T) bool {
			va, vb := reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem()
			if !va.Comparable() || !vb.Comparable() {
				return reflect.DeepEqual(a, b)
			}
			return a == b
		}
	}
	return func(a, b T) bool { return a == b }
}

func deepEqual[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

// isAbsent reports whether v is a nil interface, pointer, map, slice,
// channel or function.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
