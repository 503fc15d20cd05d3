// File: ring/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity circular buffer with overwrite-on-full insertion and
// head-relative logical indexing.

package ring

import (
	"fmt"
	"io"
	"iter"

	"github.com/pkg/errors"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Buffer[any])(nil)

// Buffer is a circular buffer of at most Cap() elements.
// Live elements occupy slots (head+k) mod capacity for k in [0, size).
// The zero value is an empty buffer of capacity 0.
// Not safe for concurrent use.
type Buffer[T any] struct {
	data   []T
	head   int
	size   int
	tracer api.Tracer
}

// Option configures a buffer at construction.
type Option func(*options)

type options struct {
	tracer api.Tracer
}

// WithTracer routes lifecycle events of the buffer to t.
func WithTracer(t api.Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

func applyOptions(opts []Option) api.Tracer {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o.tracer
}

// New allocates an empty buffer holding at most capacity elements.
// Panics if capacity is negative.
func New[T any](capacity int, opts ...Option) *Buffer[T] {
	if capacity < 0 {
		panic(api.NewError(api.ErrCodeInvalidArgument, "ring: negative capacity").
			Wrap(api.ErrInvalidArgument).
			WithContext("capacity", capacity))
	}
	b := &Buffer[T]{
		data:   make([]T, capacity),
		tracer: applyOptions(opts),
	}
	b.trace(api.OpCreate)
	return b
}

// FromSlice builds a buffer of the given capacity by inserting items in order.
// Items beyond capacity evict the oldest ones.
func FromSlice[T any](items []T, capacity int, opts ...Option) *Buffer[T] {
	b := New[T](capacity, opts...)
	for _, v := range items {
		b.Insert(v)
	}
	return b
}

// FromSeq builds a buffer of the given capacity by converting and inserting
// every element of seq in order.
func FromSeq[S, T any](seq iter.Seq[S], capacity int, convert func(S) T, opts ...Option) *Buffer[T] {
	b := New[T](capacity, opts...)
	for s := range seq {
		b.Insert(convert(s))
	}
	return b
}

// Number is the set of types Convert accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Convert is a numeric conversion suitable as the convert argument of FromSeq and FromRange.
func Convert[S, T Number](s S) T {
	return T(s)
}

// Clone returns a deep copy of b with the same capacity, head and size.
func (b *Buffer[T]) Clone() *Buffer[T] {
	c := b.clone()
	c.trace(api.OpClone)
	return c
}

func (b *Buffer[T]) clone() *Buffer[T] {
	c := &Buffer[T]{
		data:   make([]T, len(b.data)),
		head:   b.head,
		size:   b.size,
		tracer: b.tracer,
	}
	copy(c.data, b.data)
	return c
}

// CloneFunc is Clone with a fallible element copy applied to every live element.
// On failure nothing is returned and b is left untouched.
func (b *Buffer[T]) CloneFunc(copyElem func(T) (T, error)) (*Buffer[T], error) {
	c, err := b.cloneFunc(copyElem)
	if err != nil {
		return nil, err
	}
	c.trace(api.OpClone)
	return c, nil
}

func (b *Buffer[T]) cloneFunc(copyElem func(T) (T, error)) (*Buffer[T], error) {
	data := make([]T, len(b.data))
	for k := 0; k < b.size; k++ {
		slot := (b.head + k) % len(b.data)
		v, err := copyElem(b.data[slot])
		if err != nil {
			return nil, errors.WithStack(
				api.NewError(api.ErrCodeElementCopy, "ring: element copy failed").
					Wrap(err).
					WithContext("index", k))
		}
		data[slot] = v
	}
	return &Buffer[T]{data: data, head: b.head, size: b.size, tracer: b.tracer}, nil
}

// Assign replaces the contents of b with a deep copy of src.
func (b *Buffer[T]) Assign(src *Buffer[T]) {
	if b == src {
		return
	}
	tmp := src.clone()
	b.exchange(tmp)
	b.trace(api.OpAssign)
}

// AssignFunc is Assign with a fallible element copy. On error b is unmodified.
func (b *Buffer[T]) AssignFunc(src *Buffer[T], copyElem func(T) (T, error)) error {
	if b == src {
		return nil
	}
	tmp, err := src.cloneFunc(copyElem)
	if err != nil {
		return err
	}
	b.exchange(tmp)
	b.trace(api.OpAssign)
	return nil
}

// Swap exchanges storage, capacity, head and size with other in constant time.
// Tracers stay with their buffers.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	if b == other {
		return
	}
	b.exchange(other)
	b.trace(api.OpSwap)
	other.trace(api.OpSwap)
}

func (b *Buffer[T]) exchange(other *Buffer[T]) {
	b.data, other.data = other.data, b.data
	b.head, other.head = other.head, b.head
	b.size, other.size = other.size, b.size
}

// physical maps logical index i to its storage slot.
func (b *Buffer[T]) physical(i int) (int, error) {
	if i < 0 || i >= b.size {
		return 0, errors.Wrapf(api.ErrIndexOutOfRange, "ring: index %d with size %d", i, b.size)
	}
	return (b.head + i) % len(b.data), nil
}

// At returns the element at logical index i (0 is the oldest).
func (b *Buffer[T]) At(i int) (T, error) {
	slot, err := b.physical(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return b.data[slot], nil
}

// Ref returns a pointer to the element at logical index i.
// The pointer aliases storage and is overwritten by later inserts.
func (b *Buffer[T]) Ref(i int) (*T, error) {
	slot, err := b.physical(i)
	if err != nil {
		return nil, err
	}
	return &b.data[slot], nil
}

// Set replaces the element at logical index i.
func (b *Buffer[T]) Set(i int, v T) error {
	p, err := b.Ref(i)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Insert appends v as the newest element. When full, the oldest element is
// overwritten and head advances. Panics on a zero-capacity buffer.
func (b *Buffer[T]) Insert(v T) {
	if len(b.data) == 0 {
		panic(api.NewError(api.ErrCodePrecondition, "ring: insert into zero-capacity buffer").
			Wrap(api.ErrZeroCapacity))
	}
	b.data[b.Tail()] = v
	if b.size == len(b.data) {
		b.head = (b.head + 1) % len(b.data)
		b.trace(api.OpOverwrite)
		return
	}
	b.size++
	b.trace(api.OpInsert)
}

// Remove drops the oldest element. Returns false when the buffer is empty.
func (b *Buffer[T]) Remove() bool {
	if b.size == 0 {
		return false
	}
	var zero T
	b.data[b.head] = zero // release references held by the slot
	b.head = (b.head + 1) % len(b.data)
	b.size--
	b.trace(api.OpRemove)
	return true
}

// Clear drops every element, keeping the storage.
func (b *Buffer[T]) Clear() {
	clear(b.data)
	b.head = 0
	b.size = 0
	b.trace(api.OpClear)
}

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int {
	return b.size
}

// Head returns the physical slot of the oldest element.
func (b *Buffer[T]) Head() int {
	return b.head
}

// Tail returns the physical slot one past the newest element.
func (b *Buffer[T]) Tail() int {
	if len(b.data) == 0 {
		return 0
	}
	return (b.head + b.size) % len(b.data)
}

func (b *Buffer[T]) Full() bool {
	return b.size == len(b.data)
}

func (b *Buffer[T]) Empty() bool {
	return b.size == 0
}

// Slice returns a copy of the contents, oldest first.
func (b *Buffer[T]) Slice() []T {
	out := make([]T, b.size)
	for i := range out {
		out[i] = b.data[(b.head+i)%len(b.data)]
	}
	return out
}

// All yields logical index and element pairs, oldest first.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < b.size; i++ {
			if !yield(i, b.data[(b.head+i)%len(b.data)]) {
				return
			}
		}
	}
}

// Values yields elements, oldest first.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range b.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Equal reports whether a and b hold equal elements in the same logical order.
// Capacities are not compared; a nil buffer equals an empty one.
func Equal[T comparable](a, b *Buffer[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T, U any](a *Buffer[T], b *Buffer[U], eq func(T, U) bool) bool {
	if length(a) != length(b) {
		return false
	}
	for i := 0; i < length(a); i++ {
		if !eq(a.data[(a.head+i)%len(a.data)], b.data[(b.head+i)%len(b.data)]) {
			return false
		}
	}
	return true
}

func length[T any](b *Buffer[T]) int {
	if b == nil {
		return 0
	}
	return b.size
}

// Format implements fmt.Formatter: elements oldest first, separated by a
// single space, each rendered with the caller's verb and flags.
func (b *Buffer[T]) Format(f fmt.State, verb rune) {
	format := fmt.FormatString(f, verb)
	for i, v := range b.All() {
		if i > 0 {
			io.WriteString(f, " ")
		}
		fmt.Fprintf(f, format, v)
	}
}

func (b *Buffer[T]) String() string {
	return fmt.Sprintf("%v", b)
}

func (b *Buffer[T]) trace(op api.Op) {
	if b.tracer == nil {
		return
	}
	b.tracer.Trace(api.Event{Op: op, Capacity: len(b.data), Size: b.size, Head: b.head})
}
