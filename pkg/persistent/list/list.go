// Package list implements persistent singly-linked lists built from cons cells.
//
// A List is either empty or a cons cell pairing a head element with a tail
// List. Lists are immutable: every operation that "modifies" a list returns a
// new one, and existing cells are never changed. This makes it safe to share
// lists, and tails of lists, between goroutines without synchronization.
//
// Prepend is O(1) and shares the receiver as the tail of the result. Append is
// O(n) and rebuilds the whole spine of the receiver.
package list

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/migl/conslist/pkg/persistent/hash"
)

// ErrEmptyList is returned when the head or tail of an empty list is requested.
var ErrEmptyList = errors.New("empty list")

// List is a persistent list of elements of type T. The zero value of a nilable
// T (such as a nil pointer or nil interface) is a legal element, and is
// rendered as null.
type List[T any] interface {
	json.Marshaler
	// IsEmpty reports whether the list has no elements.
	IsEmpty() bool
	// Len returns the number of elements in the list.
	Len() int
	// Car returns the first element of the list. It returns ErrEmptyList if
	// the list is empty.
	Car() (T, error)
	// Cdr returns the list after the first element. The returned value is the
	// very tail the cell was built with. It returns ErrEmptyList if the list is
	// empty.
	Cdr() (List[T], error)
	// Prepend returns a new list with an additional element in the front. The
	// receiver becomes the tail of the returned list.
	Prepend(T) List[T]
	// Append returns a new list with an additional element at the end. None of
	// the cells of the receiver are reused.
	Append(T) List[T]
	// Equal reports whether other is a List[T] with equal elements in the same
	// order. Equal lists have the same hash.
	Equal(other any) bool
	// Hash returns the hash code of the list.
	Hash() uint32
	// String returns the elements separated by spaces and enclosed in
	// parentheses, like "(1 2 3)".
	String() string
	// ToSlice returns a newly allocated slice of the elements.
	ToSlice() []T
	// Iterator returns an iterator positioned at the first element.
	Iterator() Iterator[T]
	// MarshalYAML implements yaml.Marshaler.
	MarshalYAML() (any, error)
}

// Nil returns the empty list of T. All empty lists of the same element type
// are identical.
func Nil[T any]() List[T] {
	return empty[T]{}
}

// Of returns a list with the given elements, the first argument being the
// head. Of() is identical to Nil().
func Of[T any](elems ...T) List[T] {
	l := Nil[T]()
	for i := len(elems) - 1; i >= 0; i-- {
		l = l.Prepend(elems[i])
	}
	return l
}

// Reduce folds the elements of l from head to tail, starting with init.
func Reduce[T, A any](l List[T], init A, f func(A, T) A) A {
	acc := init
	for it := l.Iterator(); it.HasElem(); it.Next() {
		acc = f(acc, it.Elem())
	}
	return acc
}

// Map returns a list of f applied to each element of l, in the same order.
func Map[T, U any](l List[T], f func(T) U) List[U] {
	return Reverse(Reduce(l, Nil[U](), func(acc List[U], v T) List[U] {
		return acc.Prepend(f(v))
	}))
}

// Reverse returns a list with the elements of l in reverse order.
func Reverse[T any](l List[T]) List[T] {
	return Reduce(l, Nil[T](), func(acc List[T], v T) List[T] {
		return acc.Prepend(v)
	})
}

type empty[T any] struct{}

func (empty[T]) IsEmpty() bool { return true }

func (empty[T]) Len() int { return 0 }

func (empty[T]) Car() (T, error) {
	var zero T
	return zero, ErrEmptyList
}

func (empty[T]) Cdr() (List[T], error) { return nil, ErrEmptyList }

func (e empty[T]) Prepend(v T) List[T] { return &cons[T]{v, e, 1} }

func (e empty[T]) Append(v T) List[T] { return &cons[T]{v, e, 1} }

func (empty[T]) Equal(other any) bool {
	o, ok := other.(List[T])
	return ok && o.IsEmpty()
}

func (empty[T]) Hash() uint32 { return hash.DJBInit }

func (empty[T]) String() string { return "()" }

func (empty[T]) ToSlice() []T { return []T{} }

func (e empty[T]) Iterator() Iterator[T] { return &iterator[T]{e} }

func (empty[T]) MarshalJSON() ([]byte, error) { return []byte("[]"), nil }

func (empty[T]) MarshalYAML() (any, error) { return []T{}, nil }

// cons is a cell of a non-empty list. Its fields are never modified after
// construction.
type cons[T any] struct {
	head T
	tail List[T]
	// Number of elements, including head. Cached so that Len is O(1).
	count int
}

func (*cons[T]) IsEmpty() bool { return false }

func (c *cons[T]) Len() int { return c.count }

func (c *cons[T]) Car() (T, error) { return c.head, nil }

func (c *cons[T]) Cdr() (List[T], error) { return c.tail, nil }

func (c *cons[T]) Prepend(v T) List[T] { return &cons[T]{v, c, c.count + 1} }

// Append rebuilds the spine iteratively: the receiver is reversed into fresh
// cells, which are then prepended onto the new last cell.
func (c *cons[T]) Append(v T) List[T] {
	return Reduce(Reverse[T](c), Nil[T]().Prepend(v), func(acc List[T], x T) List[T] {
		return acc.Prepend(x)
	})
}

func (c *cons[T]) Equal(other any) bool {
	o, ok := other.(List[T])
	if !ok || o.Len() != c.count {
		return false
	}
	// Walk both lists in parallel. Once the remaining parts are the same
	// value, they are equal without looking at the elements.
	var x, y List[T] = c, o
	for !x.IsEmpty() {
		if x == y {
			return true
		}
		xc := x.(*cons[T])
		yHead, _ := y.Car()
		if !equalElem(xc.head, yHead) {
			return false
		}
		x = xc.tail
		y, _ = y.Cdr()
	}
	return true
}

func (c *cons[T]) Hash() uint32 { return hashIterator(c.Iterator()) }

func (c *cons[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(reprElem(c.head))
	for it := c.tail.Iterator(); it.HasElem(); it.Next() {
		sb.WriteByte(' ')
		sb.WriteString(reprElem(it.Elem()))
	}
	sb.WriteByte(')')
	return sb.String()
}

func (c *cons[T]) ToSlice() []T {
	s := make([]T, 0, c.count)
	for it := c.Iterator(); it.HasElem(); it.Next() {
		s = append(s, it.Elem())
	}
	return s
}

func (c *cons[T]) Iterator() Iterator[T] { return &iterator[T]{c} }

func (c *cons[T]) MarshalJSON() ([]byte, error) { return marshalJSON[T](c) }

func (c *cons[T]) MarshalYAML() (any, error) { return c.ToSlice(), nil }
