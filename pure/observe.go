package pure

import (
	"slices"

	"go.uber.org/multierr"
)

// Tap runs fn on a copy of its input for a side effect and returns the
// input unchanged.
func Tap[T any](fn func(T)) func(T) T {
	return func(t T) T {
		fn(t)
		return t
	}
}

// TapSlice is Tap for slices: fn gets its own backing array, so writes
// through it never reach the caller's slice.
func TapSlice[T any](fn func([]T)) func([]T) []T {
	return func(ts []T) []T {
		fn(slices.Clone(ts))
		return ts
	}
}

// Seq calls every fn, left to right, with the same argument.
func Seq[A any](fns ...func(A)) func(A) {
	return func(a A) {
		for _, fn := range fns {
			fn(a)
		}
	}
}

func Seq2[A, B any](fns ...func(A, B)) func(A, B) {
	return func(a A, b B) {
		for _, fn := range fns {
			fn(a, b)
		}
	}
}

// SeqE is Seq for fallible functions. It stops at the first error and
// returns it as is.
func SeqE[A any](fns ...func(A) error) func(A) error {
	return func(a A) error {
		for _, fn := range fns {
			if err := fn(a); err != nil {
				return err
			}
		}
		return nil
	}
}

// SeqAll calls every fn even when some fail, and returns all their errors
// combined.
func SeqAll[A any](fns ...func(A) error) func(A) error {
	return func(a A) error {
		var err error
		for _, fn := range fns {
			err = multierr.Append(err, fn(a))
		}
		return err
	}
}

// SeqLast applies every fn to the same input and returns the last result.
// With no functions it returns the zero value.
func SeqLast[A, R any](fns ...func(A) R) func(A) R {
	return func(a A) R {
		var r R
		for _, fn := range fns {
			r = fn(a)
		}
		return r
	}
}
