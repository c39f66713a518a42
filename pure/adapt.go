package pure

import "github.com/on-the-ground/funcomb_go/tuple"

// Unit is the informationless result of a lifted function without results.
type Unit = struct{}

// Void1 lifts a function without results into one returning Unit, so it can
// be passed to combinators that need a result type.
func Void1[A any](fn func(A)) func(A) Unit {
	return func(a A) Unit {
		fn(a)
		return Unit{}
	}
}

func Void2[A, B any](fn func(A, B)) func(A, B) Unit {
	return func(a A, b B) Unit {
		fn(a, b)
		return Unit{}
	}
}

func Void3[A, B, C any](fn func(A, B, C)) func(A, B, C) Unit {
	return func(a A, b B, c C) Unit {
		fn(a, b, c)
		return Unit{}
	}
}

func Void4[A, B, C, D any](fn func(A, B, C, D)) func(A, B, C, D) Unit {
	return func(a A, b B, c C, d D) Unit {
		fn(a, b, c, d)
		return Unit{}
	}
}

// Gather2 turns a function taking a pair into one taking two positional
// arguments.
func Gather2[A, B, R any](fn func(tuple.T2[A, B]) R) func(A, B) R {
	return func(a A, b B) R {
		return fn(tuple.NewT2(a, b))
	}
}

func Gather3[A, B, C, R any](fn func(tuple.T3[A, B, C]) R) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return fn(tuple.NewT3(a, b, c))
	}
}

func Gather4[A, B, C, D, R any](fn func(tuple.T4[A, B, C, D]) R) func(A, B, C, D) R {
	return func(a A, b B, c C, d D) R {
		return fn(tuple.NewT4(a, b, c, d))
	}
}

// Spread2 is the inverse of Gather2: it turns a function taking two
// positional arguments into one taking a pair.
func Spread2[A, B, R any](fn func(A, B) R) func(tuple.T2[A, B]) R {
	return func(t tuple.T2[A, B]) R {
		return fn(t.Unpack())
	}
}

func Spread3[A, B, C, R any](fn func(A, B, C) R) func(tuple.T3[A, B, C]) R {
	return func(t tuple.T3[A, B, C]) R {
		return fn(t.Unpack())
	}
}

func Spread4[A, B, C, D, R any](fn func(A, B, C, D) R) func(tuple.T4[A, B, C, D]) R {
	return func(t tuple.T4[A, B, C, D]) R {
		return fn(t.Unpack())
	}
}

// Reverse2 returns fn with its argument order reversed.
func Reverse2[A, B, R any](fn func(A, B) R) func(B, A) R {
	return func(b B, a A) R {
		return fn(a, b)
	}
}

func Reverse3[A, B, C, R any](fn func(A, B, C) R) func(C, B, A) R {
	return func(c C, b B, a A) R {
		return fn(a, b, c)
	}
}

func Reverse4[A, B, C, D, R any](fn func(A, B, C, D) R) func(D, C, B, A) R {
	return func(d D, c C, b B, a A) R {
		return fn(a, b, c, d)
	}
}
