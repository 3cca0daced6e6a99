package list

// Iterator walks a list from front to back.
//
//	for it := l.Iterator(); it.Next(); {
//		fmt.Println(it.Value())
//	}
type Iterator[T any] struct {
	next  *node[T]
	value T
}

// Iterator returns a cursor positioned before the first element.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{next: l.head.next}
}

// Next advances to the next element and reports whether there was one.
func (it *Iterator[T]) Next() bool {
	if it.next == nil {
		var zero T
		it.value = zero
		return false
	}
	it.value = it.next.value
	it.next = it.next.next
	return true
}

// Value returns the element the last call to Next moved to.
func (it *Iterator[T]) Value() T {
	return it.value
}
