package pure

// PartialI2P1 binds the first argument of a binary function.
func PartialI2P1[A, B, R any](fn func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return fn(a, b)
	}
}

func PartialI3P1[A, B, C, R any](fn func(A, B, C) R, a A) func(B, C) R {
	return func(b B, c C) R {
		return fn(a, b, c)
	}
}

func PartialI3P2[A, B, C, R any](fn func(A, B, C) R, a A, b B) func(C) R {
	return func(c C) R {
		return fn(a, b, c)
	}
}

func PartialI4P1[A, B, C, D, R any](fn func(A, B, C, D) R, a A) func(B, C, D) R {
	return func(b B, c C, d D) R {
		return fn(a, b, c, d)
	}
}

func PartialI4P2[A, B, C, D, R any](fn func(A, B, C, D) R, a A, b B) func(C, D) R {
	return func(c C, d D) R {
		return fn(a, b, c, d)
	}
}

func PartialI4P3[A, B, C, D, R any](fn func(A, B, C, D) R, a A, b B, c C) func(D) R {
	return func(d D) R {
		return fn(a, b, c, d)
	}
}

// The right partials are the left partials of the reversed function, reversed
// back. The bound suffix is passed in its natural order, so
// RightPartialI3P2(f, b, c)(a) == f(a, b, c).

// RightPartialI2P1 binds the last argument of a binary function.
func RightPartialI2P1[A, B, R any](fn func(A, B) R, b B) func(A) R {
	return PartialI2P1(Reverse2(fn), b)
}

func RightPartialI3P1[A, B, C, R any](fn func(A, B, C) R, c C) func(A, B) R {
	return Reverse2(PartialI3P1(Reverse3(fn), c))
}

func RightPartialI3P2[A, B, C, R any](fn func(A, B, C) R, b B, c C) func(A) R {
	return PartialI3P2(Reverse3(fn), c, b)
}

func RightPartialI4P1[A, B, C, D, R any](fn func(A, B, C, D) R, d D) func(A, B, C) R {
	return Reverse3(PartialI4P1(Reverse4(fn), d))
}

func RightPartialI4P2[A, B, C, D, R any](fn func(A, B, C, D) R, c C, d D) func(A, B) R {
	return Reverse2(PartialI4P2(Reverse4(fn), d, c))
}

func RightPartialI4P3[A, B, C, D, R any](fn func(A, B, C, D) R, b B, c C, d D) func(A) R {
	return PartialI4P3(Reverse4(fn), d, c, b)
}
