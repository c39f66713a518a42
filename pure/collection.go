package pure

// Map lifts fn to work on slices. The result is a new slice of the same
// length and order.
func Map[T, U any](fn func(T) U) func([]T) []U {
	return func(ts []T) []U {
		out := make([]U, len(ts))
		for i, t := range ts {
			out[i] = fn(t)
		}
		return out
	}
}

// Reduce folds a slice left to right starting from init.
func Reduce[T, Acc any](reducer func(Acc, T) Acc, init Acc) func([]T) Acc {
	return func(ts []T) Acc {
		acc := init
		for _, t := range ts {
			acc = reducer(acc, t)
		}
		return acc
	}
}
