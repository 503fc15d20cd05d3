// Package api
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity circular buffer contract with overwrite-on-full insertion.

package api

// Ring is a fixed-capacity circular buffer contract.
// Logical index 0 is always the oldest live element.
type Ring[T any] interface {
	// Insert appends item as the newest element, evicting the oldest when full.
	Insert(item T)
	// Remove drops the oldest element, returns false if empty.
	Remove() bool
	// At returns the element at logical index i.
	At(i int) (T, error)
	// Len returns current number of items.
	Len() int
	// Cap returns buffer capacity.
	Cap() int
	// Head returns the physical slot of the oldest element.
	Head() int
	// Tail returns the physical slot one past the newest element.
	Tail() int
}
