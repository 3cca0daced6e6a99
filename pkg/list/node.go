package list

import "fmt"

type node[T any] struct {
	value T
	next  *node[T] // nil at the end of the chain
}

// chain is a detached run of nodes built before it is linked into a list.
type chain[T any] struct {
	first *node[T]
	last  *node[T]
	count int
}

func (c *chain[T]) push(value T) error {
	if isAbsent(value) {
		return fmt.Errorf("element %d of source: %w", c.count, errAbsentValue)
	}
	n := &node[T]{value: value}
	if c.last == nil {
		c.first = n
	} else {
		c.last.next = n
	}
	c.last = n
	c.count++
	return nil
}
