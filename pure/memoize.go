package pure

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/on-the-ground/funcomb_go/tuple"
)

// ErrUnkeyable is the panic value, wrapped, when a memoized function gets an
// argument that is neither comparable nor a fmt.Stringer.
var ErrUnkeyable = errors.New("argument is neither comparable nor a fmt.Stringer")

// stringerKey keeps hashed Stringer keys apart from plain uint64 arguments.
type stringerKey uint64

// memoKey turns one argument into a table key. Stringers are keyed by the
// hash of their string form, so two Stringers printing the same text share
// an entry.
func memoKey(arg any) any {
	if s, ok := arg.(fmt.Stringer); ok {
		return stringerKey(xxhash.Sum64String(s.String()))
	}
	// the dynamic check also sees slices hidden behind interface fields
	if arg != nil && !reflect.ValueOf(arg).Comparable() {
		panic(fmt.Errorf("%w: %T", ErrUnkeyable, arg))
	}
	return arg
}

func memoKeys(in ...any) []any {
	keys := make([]any, len(in))
	for i, arg := range in {
		keys[i] = memoKey(arg)
	}
	return keys
}

// memoized returns the table entry for in, running compute to fill it on a miss.
func memoized[O any](table *Trie[O], compute func() O, in ...any) O {
	keys := memoKeys(in...)
	if v, ok := table.Load(keys); ok {
		return v
	}
	v := compute()
	table.Store(keys, v)
	return v
}

// MemoizeI1O1 caches fn by its argument. fn must be pure: given equal
// arguments it must return equal results and have no side effects.
func MemoizeI1O1[I1, O1 any](fn func(I1) O1, maxTableSize uint32) func(I1) O1 {
	table := NewTrie[O1](maxTableSize)
	return func(i1 I1) O1 {
		return memoized(table, func() O1 { return fn(i1) }, i1)
	}
}

func MemoizeI2O1[I1, I2, O1 any](fn func(I1, I2) O1, maxTableSize uint32) func(I1, I2) O1 {
	table := NewTrie[O1](maxTableSize)
	return func(i1 I1, i2 I2) O1 {
		return memoized(table, func() O1 { return fn(i1, i2) }, i1, i2)
	}
}

func MemoizeI3O1[I1, I2, I3, O1 any](fn func(I1, I2, I3) O1, maxTableSize uint32) func(I1, I2, I3) O1 {
	table := NewTrie[O1](maxTableSize)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return memoized(table, func() O1 { return fn(i1, i2, i3) }, i1, i2, i3)
	}
}

func MemoizeI4O1[I1, I2, I3, I4, O1 any](fn func(I1, I2, I3, I4) O1, maxTableSize uint32) func(I1, I2, I3, I4) O1 {
	table := NewTrie[O1](maxTableSize)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return memoized(table, func() O1 { return fn(i1, i2, i3, i4) }, i1, i2, i3, i4)
	}
}

// The two-output memoizers store both results as one pair.

func MemoizeI1O2[I1, O1, O2 any](fn func(I1) (O1, O2), maxTableSize uint32) func(I1) (O1, O2) {
	table := NewTrie[tuple.T2[O1, O2]](maxTableSize)
	return func(i1 I1) (O1, O2) {
		return memoized(table, func() tuple.T2[O1, O2] {
			return tuple.NewT2[O1, O2](fn(i1))
		}, i1).Unpack()
	}
}

func MemoizeI2O2[I1, I2, O1, O2 any](fn func(I1, I2) (O1, O2), maxTableSize uint32) func(I1, I2) (O1, O2) {
	table := NewTrie[tuple.T2[O1, O2]](maxTableSize)
	return func(i1 I1, i2 I2) (O1, O2) {
		return memoized(table, func() tuple.T2[O1, O2] {
			return tuple.NewT2[O1, O2](fn(i1, i2))
		}, i1, i2).Unpack()
	}
}

func MemoizeI3O2[I1, I2, I3, O1, O2 any](fn func(I1, I2, I3) (O1, O2), maxTableSize uint32) func(I1, I2, I3) (O1, O2) {
	table := NewTrie[tuple.T2[O1, O2]](maxTableSize)
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		return memoized(table, func() tuple.T2[O1, O2] {
			return tuple.NewT2[O1, O2](fn(i1, i2, i3))
		}, i1, i2, i3).Unpack()
	}
}

func MemoizeI4O2[I1, I2, I3, I4, O1, O2 any](fn func(I1, I2, I3, I4) (O1, O2), maxTableSize uint32) func(I1, I2, I3, I4) (O1, O2) {
	table := NewTrie[tuple.T2[O1, O2]](maxTableSize)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		return memoized(table, func() tuple.T2[O1, O2] {
			return tuple.NewT2[O1, O2](fn(i1, i2, i3, i4))
		}, i1, i2, i3, i4).Unpack()
	}
}
