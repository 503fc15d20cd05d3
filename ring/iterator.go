// File: ring/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Forward iterators over a Buffer. An iterator is a buffer reference plus a
// logical offset captured at creation; it is not adjusted by later inserts or
// removes.

package ring

import (
	"github.com/pkg/errors"

	"github.com/momentics/hioload-ring/api"
)

// cursor is the state shared by both iterator kinds.
type cursor[T any] struct {
	buf    *Buffer[T]
	offset int
}

// Position is satisfied by Iterator and ConstIterator.
type Position[T any] interface {
	position() cursor[T]
}

func (c cursor[T]) position() cursor[T] {
	return c
}

// Equal reports whether both positions reference the same buffer at the same offset.
// Mutable and read-only iterators compare freely with each other.
func (c cursor[T]) Equal(other Position[T]) bool {
	o := other.position()
	return c.buf == o.buf && c.offset == o.offset
}

// Offset returns the logical index the iterator points at.
func (c cursor[T]) Offset() int {
	return c.offset
}

// Get returns the element under the iterator.
func (c cursor[T]) Get() (T, error) {
	if c.buf == nil {
		var zero T
		return zero, errUnbound
	}
	return c.buf.At(c.offset)
}

var errUnbound = errors.Wrap(api.ErrIndexOutOfRange, "ring: iterator not bound to a buffer")

// Iterator is a read-write forward iterator.
type Iterator[T any] struct {
	cursor[T]
}

// Ref returns a pointer to the element under the iterator.
func (it Iterator[T]) Ref() (*T, error) {
	if it.buf == nil {
		return nil, errUnbound
	}
	return it.buf.Ref(it.offset)
}

// Set replaces the element under the iterator.
func (it Iterator[T]) Set(v T) error {
	p, err := it.Ref()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Next advances the iterator and returns it.
func (it *Iterator[T]) Next() Iterator[T] {
	it.offset++
	return *it
}

// PostNext advances the iterator and returns its previous position.
func (it *Iterator[T]) PostNext() Iterator[T] {
	prev := *it
	it.offset++
	return prev
}

// Const converts to a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it.cursor}
}

// ConstIterator is a read-only forward iterator.
type ConstIterator[T any] struct {
	cursor[T]
}

// Next advances the iterator and returns it.
func (it *ConstIterator[T]) Next() ConstIterator[T] {
	it.offset++
	return *it
}

// PostNext advances the iterator and returns its previous position.
func (it *ConstIterator[T]) PostNext() ConstIterator[T] {
	prev := *it
	it.offset++
	return prev
}

// Begin returns a read-write iterator at the oldest element.
func (b *Buffer[T]) Begin() Iterator[T] {
	return Iterator[T]{cursor[T]{buf: b}}
}

// End returns a read-write iterator one past the newest element.
func (b *Buffer[T]) End() Iterator[T] {
	return Iterator[T]{cursor[T]{buf: b, offset: b.size}}
}

// CBegin returns a read-only iterator at the oldest element.
func (b *Buffer[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{cursor[T]{buf: b}}
}

// CEnd returns a read-only iterator one past the newest element.
func (b *Buffer[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{cursor[T]{buf: b, offset: b.size}}
}

// FromRange builds a buffer of the given capacity from the elements in
// [begin, end), converting each one. Fails if an element in the range cannot
// be dereferenced, which includes end not being reachable from begin.
func FromRange[S, T any](begin, end ConstIterator[S], capacity int, convert func(S) T, opts ...Option) (*Buffer[T], error) {
	b := New[T](capacity, opts...)
	for it := begin; !it.Equal(end); it.Next() {
		v, err := it.Get()
		if err != nil {
			return nil, err
		}
		b.Insert(convert(v))
	}
	return b, nil
}
