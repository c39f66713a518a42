// Package args is an explicit, dynamically typed argument list.
//
// It stands in for variadic generics where a combinator has to hold "some
// arguments so far" without knowing their count or types at compile time,
// as pure.Curried does. Values are read back with At, which checks the
// requested type.
package args

import (
	"errors"
	"fmt"
	"slices"

	"github.com/on-the-ground/funcomb_go/shared/helper"
)

var (
	ErrIndexOutOfRange = errors.New("argument index out of range")
	ErrArgType         = helper.ErrUnexpectedType
)

// Args is an immutable ordered argument list. Every operation that would
// change it returns a fresh list that does not share storage with the receiver.
type Args struct {
	vals []any
}

func Of(vs ...any) Args {
	return Args{vals: slices.Clone(vs)}
}

func (a Args) Len() int { return len(a.vals) }

func (a Args) Append(vs ...any) Args {
	out := make([]any, 0, len(a.vals)+len(vs))
	out = append(out, a.vals...)
	return Args{vals: append(out, vs...)}
}

func (a Args) Prepend(vs ...any) Args {
	out := make([]any, 0, len(a.vals)+len(vs))
	out = append(out, vs...)
	return Args{vals: append(out, a.vals...)}
}

func (a Args) Reverse() Args {
	out := slices.Clone(a.vals)
	slices.Reverse(out)
	return Args{vals: out}
}

// Values returns a copy of the underlying values.
func (a Args) Values() []any {
	return slices.Clone(a.vals)
}

func (a Args) get(i int) (any, error) {
	if i < 0 || i >= len(a.vals) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(a.vals))
	}
	return a.vals[i], nil
}

// At returns the i-th argument as a T.
func At[T any](a Args, i int) (T, error) {
	return helper.GetTypedValueOf[T](func() (any, error) {
		return a.get(i)
	})
}

// MustAt is the panic-on-failure variant of At.
func MustAt[T any](a Args, i int) T {
	return helper.MustGetTypedValue[T](func() (any, error) {
		return a.get(i)
	})
}

func (a Args) String() string {
	return fmt.Sprint(a.vals)
}
