// Package pure provides generic higher-order combinators for pure functions.
//
// Every combinator takes one or more functions and returns a new function
// that adapts their shape: how arguments arrive (Gather, Spread, Reverse),
// which of them are already bound (Partial, RightPartial, Curry), how the
// results of several functions are joined (Converge, UseWith, Alt, Compose),
// and how a value is observed on its way through (Tap, Seq).
//
// Go has no variadic generics, so each shape-changing combinator comes as a
// family with its arity in the name, in the same way as the memoizers:
//
//	Gather2 .. Gather4
//	PartialI3P2   // a 3-ary function with its first 2 arguments bound
//	MemoizeI2O1   // 2 inputs, 1 output
//
// When the arity is only known at run time, use Curried, which takes the
// arity explicitly and accumulates an args.Args.
//
// Combinators keep no state between calls. The only exceptions are the
// Memoize family, whose tables are the point, and Curried, whose
// accumulated arguments live in each immutable intermediate value.
//
// Example:
//
//	plusThree := func(a, b, c int) int { return a + b + c }
//	add := pure.PartialI3P2(plusThree, 1, 2)
//	add(3) // 6
//
//	pow := pure.Curry2(math.Pow)
//	pow(2)(3) // 8
package pure
