// Package tuple provides small, ordered, fixed-size heterogeneous tuples.
//
// They are the "one value" side of the gather/spread calling conventions in
// package pure: a function taking T2[A, B] and a function taking (A, B) are
// interchangeable through pure.Gather2 and pure.Spread2.
package tuple

import "fmt"

// T2 is an ordered pair.
type T2[A, B any] struct {
	first  A
	second B
}

// NewT2 is the canonical constructor for a T2. The fields are unexported so
// a tuple cannot be changed after it is built.
func NewT2[A, B any](a A, b B) T2[A, B] {
	return T2[A, B]{first: a, second: b}
}

func (t T2[A, B]) First() A  { return t.first }
func (t T2[A, B]) Second() B { return t.second }

// Unpack ejects the members into the multiple return values that are
// customary in go idiom.
func (t T2[A, B]) Unpack() (A, B) {
	return t.first, t.second
}

// Reverse returns the pair with its members swapped.
func (t T2[A, B]) Reverse() T2[B, A] {
	return NewT2(t.second, t.first)
}

func (t T2[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.first, t.second)
}

// T3 is an ordered triple.
type T3[A, B, C any] struct {
	first  A
	second B
	third  C
}

func NewT3[A, B, C any](a A, b B, c C) T3[A, B, C] {
	return T3[A, B, C]{first: a, second: b, third: c}
}

func (t T3[A, B, C]) First() A  { return t.first }
func (t T3[A, B, C]) Second() B { return t.second }
func (t T3[A, B, C]) Third() C  { return t.third }

func (t T3[A, B, C]) Unpack() (A, B, C) {
	return t.first, t.second, t.third
}

func (t T3[A, B, C]) Reverse() T3[C, B, A] {
	return NewT3(t.third, t.second, t.first)
}

func (t T3[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.first, t.second, t.third)
}

// T4 is an ordered quadruple.
type T4[A, B, C, D any] struct {
	first  A
	second B
	third  C
	fourth D
}

func NewT4[A, B, C, D any](a A, b B, c C, d D) T4[A, B, C, D] {
	return T4[A, B, C, D]{first: a, second: b, third: c, fourth: d}
}

func (t T4[A, B, C, D]) First() A  { return t.first }
func (t T4[A, B, C, D]) Second() B { return t.second }
func (t T4[A, B, C, D]) Third() C  { return t.third }
func (t T4[A, B, C, D]) Fourth() D { return t.fourth }

func (t T4[A, B, C, D]) Unpack() (A, B, C, D) {
	return t.first, t.second, t.third, t.fourth
}

func (t T4[A, B, C, D]) Reverse() T4[D, C, B, A] {
	return NewT4(t.fourth, t.third, t.second, t.first)
}

func (t T4[A, B, C, D]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", t.first, t.second, t.third, t.fourth)
}
