// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/api"
)

func TestIterator_TraversalOrder(t *testing.T) {
	b := FromSlice([]int{1, 2, 3, 4, 5, 6}, 4)

	var got []int
	for it := b.Begin(); !it.Equal(b.End()); it.Next() {
		v, err := it.Get()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 4, 5, 6}, got)

	got = got[:0]
	for it := b.CBegin(); !it.Equal(b.CEnd()); it.Next() {
		v, err := it.Get()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 4, 5, 6}, got)
}

func TestIterator_CrossKindEquality(t *testing.T) {
	b := FromSlice([]int{1, 2}, 2)
	other := FromSlice([]int{1, 2}, 2)

	assert.True(t, b.Begin().Equal(b.CBegin()))
	assert.True(t, b.CBegin().Equal(b.Begin()))
	assert.True(t, b.End().Equal(b.CEnd()))
	assert.True(t, b.CEnd().Equal(b.End()))
	assert.False(t, b.Begin().Equal(b.CEnd()))
	assert.False(t, b.CBegin().Equal(other.Begin()), "different buffers never compare equal")

	it := b.Begin()
	it.Next()
	it.Next()
	assert.True(t, it.Equal(b.CEnd()))
	assert.True(t, it.Const().Equal(b.End()))
}

func TestIterator_PostNext(t *testing.T) {
	b := FromSlice([]string{"x", "y"}, 2)

	it := b.Begin()
	prev := it.PostNext()
	assert.Equal(t, 0, prev.Offset())
	assert.Equal(t, 1, it.Offset())

	next := it.Next()
	assert.Equal(t, 2, next.Offset())
	assert.True(t, next.Equal(it))

	cit := b.CBegin()
	cprev := cit.PostNext()
	v, err := cprev.Get()
	require.NoError(t, err)
	assert.Equal(t, "x", v)
	v, err = cit.Get()
	require.NoError(t, err)
	assert.Equal(t, "y", v)
}

func TestIterator_WriteThrough(t *testing.T) {
	b := FromSlice([]int{1, 2, 3}, 3)
	for it := b.Begin(); !it.Equal(b.CEnd()); it.Next() {
		p, err := it.Ref()
		require.NoError(t, err)
		*p *= 10
	}
	it := b.Begin()
	require.NoError(t, it.Set(-1))
	assert.Equal(t, []int{-1, 20, 30}, b.Slice())
}

func TestIterator_DereferenceOutOfRange(t *testing.T) {
	b := FromSlice([]int{1, 2}, 3)

	end := b.End()
	_, err := end.Get()
	assert.ErrorIs(t, err, api.ErrIndexOutOfRange)
	_, err = end.Ref()
	assert.ErrorIs(t, err, api.ErrIndexOutOfRange)
	assert.ErrorIs(t, end.Set(0), api.ErrIndexOutOfRange)

	last := b.CBegin()
	last.Next()
	b.Remove()
	_, err = last.Get()
	assert.ErrorIs(t, err, api.ErrIndexOutOfRange, "offset is not adjusted when the buffer shrinks")
}

func TestIterator_ZeroValue(t *testing.T) {
	var a, c Iterator[int]
	var ca ConstIterator[int]
	assert.True(t, a.Equal(c))
	assert.True(t, a.Equal(ca))

	_, err := a.Get()
	assert.ErrorIs(t, err, api.ErrIndexOutOfRange)
	_, err = a.Ref()
	assert.ErrorIs(t, err, api.ErrIndexOutOfRange)
	_, err = ca.Get()
	assert.ErrorIs(t, err, api.ErrIndexOutOfRange)
}

func TestFromRange_RoundTrip(t *testing.T) {
	b := FromSlice([]int{1, 4, -3, -2, 123, 1}, 5)
	b.Remove()

	c, err := FromRange(b.CBegin(), b.CEnd(), b.Cap(), func(v int) int { return v })
	require.NoError(t, err)
	assert.True(t, Equal(b, c))
	assert.Equal(t, b.Cap(), c.Cap())

	u, err := FromRange(b.Begin().Const(), b.CEnd(), b.Cap(), Convert[int, uint])
	require.NoError(t, err)
	neg3, neg2 := -3, -2
	assert.Equal(t, []uint{uint(neg3), uint(neg2), 123, 1}, u.Slice())

	small, err := FromRange(b.CBegin(), b.CEnd(), 2, func(v int) int { return v })
	require.NoError(t, err)
	assert.Equal(t, []int{123, 1}, small.Slice())
}

func TestFromRange_UnreachableEnd(t *testing.T) {
	a := FromSlice([]int{1, 2}, 2)
	b := FromSlice([]int{1, 2}, 2)

	c, err := FromRange(a.CBegin(), b.CEnd(), 4, func(v int) int { return v })
	assert.ErrorIs(t, err, api.ErrIndexOutOfRange)
	assert.Nil(t, c)
}
