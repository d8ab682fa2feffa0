package list

// Iterator is an iterator over list elements. It can be used like this:
//
//	for it := l.Iterator(); it.HasElem(); it.Next() {
//	    elem := it.Elem()
//	    // do something with elem...
//	}
//
// An Iterator can be consumed only once; call the Iterator method of the list
// again to start over.
type Iterator[T any] interface {
	// Elem returns the element at the current position. It panics if the
	// iterator is exhausted.
	Elem() T
	// HasElem returns whether the iterator is pointing to an element.
	HasElem() bool
	// Next moves the iterator to the next position. It is a no-op if the
	// iterator is exhausted.
	Next()
}

// iterator walks the cons cells directly, holding the part of the list that
// has not been visited.
type iterator[T any] struct {
	rest List[T]
}

func (it *iterator[T]) Elem() T {
	c, ok := it.rest.(*cons[T])
	if !ok {
		panic("list: Elem called on exhausted iterator")
	}
	return c.head
}

func (it *iterator[T]) HasElem() bool {
	return !it.rest.IsEmpty()
}

func (it *iterator[T]) Next() {
	if c, ok := it.rest.(*cons[T]); ok {
		it.rest = c.tail
	}
}
