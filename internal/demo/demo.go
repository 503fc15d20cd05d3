// File: internal/demo/demo.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Walkthroughs of the ring buffer API used by cmd/ringdemo.

package demo

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/momentics/hioload-ring/ring"
)

// Person is a sample element type with its own formatting.
type Person struct {
	Name    string
	Surname string
}

func (p Person) String() string {
	return p.Name + " " + p.Surname
}

func PositiveInt(v int) bool { return v >= 0 }

func NegativeInt(v int) bool { return v < 0 }

// SurnameIs matches people with the given surname.
func SurnameIs(surname string) func(Person) bool {
	return func(p Person) bool { return p.Surname == surname }
}

// EvaluateIf writes "[i]: true|false" for every element of b, oldest first.
func EvaluateIf[T any](w io.Writer, b *ring.Buffer[T], pred func(T) bool) error {
	for i, v := range b.All() {
		if _, err := fmt.Fprintf(w, "[%d]: %t\n", i, pred(v)); err != nil {
			return err
		}
	}
	return nil
}

// minCapacity is what the walkthroughs need to index their third element.
const minCapacity = 3

func checkCapacity(capacity int) error {
	if capacity < minCapacity {
		return errors.Errorf("demo needs capacity >= %d, got %d", minCapacity, capacity)
	}
	return nil
}

// Basics exercises construction, insertion with overwrite, removal,
// iteration, copying, assignment and converting construction.
func Basics(w io.Writer, capacity int, opts ...ring.Option) error {
	if err := checkCapacity(capacity); err != nil {
		return err
	}

	people := ring.New[Person](capacity, opts...)
	p := Person{"Amuro", "Ray"}
	fmt.Fprintf(w, "person p: %v\n", p)
	people.Insert(p)
	people.Insert(Person{"Char", "Aznable"})
	people.Insert(Person{"Noa", "Bright"})
	fmt.Fprintf(w, "c1: %v\n", people)

	fmt.Fprint(w, "c1 via iterators:")
	for it := people.Begin(); !it.Equal(people.End()); it.Next() {
		v, err := it.Get()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, " %v", v)
	}
	fmt.Fprintln(w)

	third, err := people.At(2)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "c1[2] = %v\n", third)

	ints := ring.New[int](capacity, opts...)
	for _, v := range []int{1, 4, -3, -2, 123, 1} {
		ints.Insert(v)
	}
	ints.Remove()
	fmt.Fprintf(w, "c2: %v\n", ints)

	copied := ints.Clone()
	var assigned ring.Buffer[int]
	assigned.Assign(copied)
	fmt.Fprintf(w, "c4: %v\n", &assigned)

	unsigned, err := ring.FromRange(assigned.Begin().Const(), assigned.CEnd(), assigned.Cap(),
		ring.Convert[int, uint32], opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "c5: %v\n", unsigned)
	return nil
}

// Evaluate applies the sample predicates to an int buffer and a Person buffer.
func Evaluate(w io.Writer, capacity int, opts ...ring.Option) error {
	if err := checkCapacity(capacity); err != nil {
		return err
	}

	ints := ring.New[int](capacity, opts...)
	for _, v := range []int{1, 2, -4, 0, -1} {
		ints.Insert(v)
	}
	people := ring.FromSlice([]Person{
		{"Amuro", "Ray"},
		{"Char", "Aznable"},
		{"Noa", "Bright"},
	}, capacity, opts...)

	fmt.Fprintln(w, "int buffer, PositiveInt:")
	if err := EvaluateIf(w, ints, PositiveInt); err != nil {
		return err
	}
	fmt.Fprintln(w, "int buffer, NegativeInt:")
	if err := EvaluateIf(w, ints, NegativeInt); err != nil {
		return err
	}
	fmt.Fprintln(w, "person buffer, SurnameIs(\"Ray\"):")
	return EvaluateIf(w, people, SurnameIs("Ray"))
}
