package list

import "github.com/emirpasic/gods/containers"

var _ containers.Container = (*List[int])(nil)

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.count == 0
}

// Size is Len, for the gods container interface.
func (l *List[T]) Size() int {
	return l.count
}

// Values returns the elements in order.
func (l *List[T]) Values() []interface{} {
	values := make([]interface{}, 0, l.count)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}
