package pure

import "github.com/on-the-ground/funcomb_go/option"

// Alt calls fn1 and then fn2 with the same argument and prefers fn1's
// result. Both are always called.
func Alt[A, R any](fn1, fn2 func(A) option.Option[R]) func(A) option.Option[R] {
	return func(a A) option.Option[R] {
		r1, r2 := fn1(a), fn2(a)
		if r1.IsSome() {
			return r1
		}
		return r2
	}
}

func Alt2[A, B, R any](fn1, fn2 func(A, B) option.Option[R]) func(A, B) option.Option[R] {
	return func(a A, b B) option.Option[R] {
		r1, r2 := fn1(a, b), fn2(a, b)
		if r1.IsSome() {
			return r1
		}
		return r2
	}
}

// TryCatch1 returns fn's result, or, when fn fails, the handler's result for
// the same argument. The error itself is dropped; use TryCatchErr1 to see it.
func TryCatch1[A, R any](fn func(A) (R, error), handler func(A) R) func(A) R {
	return func(a A) R {
		r, err := fn(a)
		if err != nil {
			return handler(a)
		}
		return r
	}
}

func TryCatch2[A, B, R any](fn func(A, B) (R, error), handler func(A, B) R) func(A, B) R {
	return func(a A, b B) R {
		r, err := fn(a, b)
		if err != nil {
			return handler(a, b)
		}
		return r
	}
}

func TryCatch3[A, B, C, R any](fn func(A, B, C) (R, error), handler func(A, B, C) R) func(A, B, C) R {
	return func(a A, b B, c C) R {
		r, err := fn(a, b, c)
		if err != nil {
			return handler(a, b, c)
		}
		return r
	}
}

// TryCatchErr1 is TryCatch1 with the error handed to the handler.
func TryCatchErr1[A, R any](fn func(A) (R, error), handler func(A, error) R) func(A) R {
	return func(a A) R {
		r, err := fn(a)
		if err != nil {
			return handler(a, err)
		}
		return r
	}
}

func TryCatchErr2[A, B, R any](fn func(A, B) (R, error), handler func(A, B, error) R) func(A, B) R {
	return func(a A, b B) R {
		r, err := fn(a, b)
		if err != nil {
			return handler(a, b, err)
		}
		return r
	}
}

// Recover1 is TryCatch1 for functions that panic instead of returning an error.
func Recover1[A, R any](fn func(A) R, handler func(A) R) func(A) R {
	return func(a A) (r R) {
		defer func() {
			if rec := recover(); rec != nil {
				r = handler(a)
			}
		}()
		return fn(a)
	}
}
