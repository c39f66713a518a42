package pure

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/funcomb_go/args"
)

// Curry2 converts a binary function into a chain of unary ones.
func Curry2[A, B, R any](fn func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return fn(a, b)
		}
	}
}

func Curry3[A, B, C, R any](fn func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return Curry2(PartialI3P1(fn, a))
	}
}

func Curry4[A, B, C, D, R any](fn func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return Curry3(PartialI4P1(fn, a))
	}
}

// Uncurry2 inverts Curry2.
func Uncurry2[A, B, R any](fn func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return fn(a)(b)
	}
}

func Uncurry3[A, B, C, R any](fn func(A) func(B) func(C) R) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return fn(a)(b)(c)
	}
}

func Uncurry4[A, B, C, D, R any](fn func(A) func(B) func(C) func(D) R) func(A, B, C, D) R {
	return func(a A, b B, c C, d D) R {
		return fn(a)(b)(c)(d)
	}
}

var (
	ErrInvalidArity   = errors.New("arity must be at least 1")
	ErrCurryExhausted = errors.New("curried function already applied")
)

// Curried is a curried function whose arity is only known at run time.
//
// Each Apply returns a new intermediate; the receiver is never changed, so
// one partially applied chain may be continued with different arguments.
type Curried[R any] struct {
	arity int
	fn    func(args.Args) (R, error)
	acc   args.Args
}

// NewCurried curries fn, to be invoked once arity arguments have arrived.
func NewCurried[R any](arity int, fn func(args.Args) (R, error)) (Curried[R], error) {
	if arity < 1 {
		return Curried[R]{}, fmt.Errorf("%w: got %d", ErrInvalidArity, arity)
	}
	return Curried[R]{arity: arity, fn: fn}, nil
}

// Arity is the number of arguments still missing.
func (c Curried[R]) Arity() int {
	return c.arity - c.acc.Len()
}

// Apply adds one argument. Once enough arguments have accumulated the
// wrapped function is invoked and done is true; next is then the zero value.
// Errors of the wrapped function are passed through unchanged.
func (c Curried[R]) Apply(arg any) (next Curried[R], result R, done bool, err error) {
	if c.fn == nil {
		return Curried[R]{}, result, false, ErrCurryExhausted
	}
	acc := c.acc.Append(arg)
	if acc.Len() < c.arity {
		return Curried[R]{arity: c.arity, fn: c.fn, acc: acc}, result, false, nil
	}
	result, err = c.fn(acc)
	return Curried[R]{}, result, true, err
}
