package pure

import (
	"errors"
	"fmt"
)

var ErrArityMismatch = errors.New("argument count does not match transformer count")

// Compose is right-to-left composition: Compose(f, g)(x) == f(g(x)).
// Composing nothing yields Identity.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(t T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			t = fns[i](t)
		}
		return t
	}
}

func Compose2[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

func Compose3[A, B, C, D any](f func(C) D, g func(B) C, h func(A) B) func(A) D {
	return Compose2(f, Compose2(g, h))
}

// Pipe is left-to-right composition: Pipe(f, g)(x) == g(f(x)).
func Pipe[T any](fns ...func(T) T) func(T) T {
	return func(t T) T {
		for _, fn := range fns {
			t = fn(t)
		}
		return t
	}
}

func Pipe2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return Compose2(g, f)
}

// Converge2 feeds one argument to each forker and joins their outputs.
func Converge2[A, B, C, R any](joiner func(B, C) R, f1 func(A) B, f2 func(A) C) func(A) R {
	return func(a A) R {
		return joiner(f1(a), f2(a))
	}
}

func Converge3[A, B, C, D, R any](joiner func(B, C, D) R, f1 func(A) B, f2 func(A) C, f3 func(A) D) func(A) R {
	return func(a A) R {
		return joiner(f1(a), f2(a), f3(a))
	}
}

// ConvergeN is Converge for any number of forkers of one result type. Their
// outputs reach the joiner in forker order.
func ConvergeN[A, B, R any](joiner func([]B) R, forkers ...func(A) B) func(A) R {
	return func(a A) R {
		outs := make([]B, len(forkers))
		for i, fork := range forkers {
			outs[i] = fork(a)
		}
		return joiner(outs)
	}
}

// UseWith2 transforms each argument with the transformer at its position
// before handing them all to joiner.
func UseWith2[A1, A2, B1, B2, R any](joiner func(B1, B2) R, t1 func(A1) B1, t2 func(A2) B2) func(A1, A2) R {
	return func(a1 A1, a2 A2) R {
		return joiner(t1(a1), t2(a2))
	}
}

func UseWith3[A1, A2, A3, B1, B2, B3, R any](
	joiner func(B1, B2, B3) R,
	t1 func(A1) B1,
	t2 func(A2) B2,
	t3 func(A3) B3,
) func(A1, A2, A3) R {
	return func(a1 A1, a2 A2, a3 A3) R {
		return joiner(t1(a1), t2(a2), t3(a3))
	}
}

// UseWithN is UseWith for any number of same-typed arguments. The call
// fails with ErrArityMismatch unless it gets exactly one argument per
// transformer.
func UseWithN[A, B, R any](joiner func([]B) R, ts ...func(A) B) func(...A) (R, error) {
	return func(as ...A) (R, error) {
		if len(as) != len(ts) {
			var zero R
			return zero, fmt.Errorf("%w: %d arguments, %d transformers", ErrArityMismatch, len(as), len(ts))
		}
		outs := make([]B, len(ts))
		for i, t := range ts {
			outs[i] = t(as[i])
		}
		return joiner(outs), nil
	}
}
