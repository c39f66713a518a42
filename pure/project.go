package pure

import "github.com/on-the-ground/funcomb_go/option"

func Identity[T any](t T) T {
	return t
}

// DefaultTo unwraps an Option, falling back to def.
func DefaultTo[T any](def T) func(option.Option[T]) T {
	return func(o option.Option[T]) T {
		return o.OrElse(def)
	}
}

// Always ignores its argument.
func Always[A, T any](t T) func(A) T {
	return func(A) T {
		return t
	}
}

// Nothing is the no-op sink, e.g. a placeholder for a Tap side effect.
func Nothing[T any](T) {}
