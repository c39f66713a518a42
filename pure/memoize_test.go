package pure_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/on-the-ground/funcomb_go/pure"
	"github.com/stretchr/testify/assert"
)

func TestMemoize_SingleOutput(t *testing.T) {
	count := 0
	one := pure.MemoizeI1O1(func(i int) int {
		count++
		return i * 2
	}, 2)
	assert.Equal(t, 4, one(2))
	assert.Equal(t, 4, one(2))
	assert.Equal(t, 1, count)

	count = 0
	two := pure.MemoizeI2O1(func(a, b int) int {
		count++
		return a + b
	}, 2)
	assert.Equal(t, 5, two(2, 3))
	assert.Equal(t, 5, two(2, 3))
	assert.Equal(t, 7, two(3, 4))
	assert.Equal(t, 2, count)

	count = 0
	three := pure.MemoizeI3O1(func(a, b, c int) int {
		count++
		return a * b * c
	}, 2)
	assert.Equal(t, 24, three(2, 3, 4))
	assert.Equal(t, 24, three(2, 3, 4))
	assert.Equal(t, 1, count)

	count = 0
	four := pure.MemoizeI4O1(func(a, b, c, d int) int {
		count++
		return a + b + c + d
	}, 2)
	assert.Equal(t, 10, four(1, 2, 3, 4))
	assert.Equal(t, 10, four(1, 2, 3, 4))
	assert.Equal(t, 1, count)
}

func TestMemoize_DualOutput(t *testing.T) {
	count := 0
	one := pure.MemoizeI1O2(func(i int) (int, string) {
		count++
		return i, "val"
	}, 2)
	a, b := one(10)
	assert.Equal(t, 10, a)
	assert.Equal(t, "val", b)
	a, b = one(10)
	assert.Equal(t, 10, a)
	assert.Equal(t, "val", b)
	assert.Equal(t, 1, count)

	count = 0
	two := pure.MemoizeI2O2(func(a, b int) (int, string) {
		count++
		return a * b, "mul"
	}, 2)
	x, y := two(3, 4)
	assert.Equal(t, 12, x)
	assert.Equal(t, "mul", y)
	_, _ = two(3, 4)
	assert.Equal(t, 1, count)

	count = 0
	three := pure.MemoizeI3O2(func(a, b, c int) (int, error) {
		count++
		return a + b + c, nil
	}, 2)
	s, err := three(1, 2, 3)
	assert.NoError(t, err)
	assert.Equal(t, 6, s)
	_, _ = three(1, 2, 3)
	assert.Equal(t, 1, count)

	count = 0
	four := pure.MemoizeI4O2(func(a, b, c, d int) (int, string) {
		count++
		return a * b * c * d, "product"
	}, 2)
	p, name := four(1, 2, 3, 4)
	assert.Equal(t, 24, p)
	assert.Equal(t, "product", name)
	_, _ = four(1, 2, 3, 4)
	assert.Equal(t, 1, count)
}

func TestMemoize_EvictsOldestGeneration(t *testing.T) {
	count := 0
	fn := pure.MemoizeI1O1(func(i int) int {
		count++
		return i
	}, 1)

	fn(1) // gen A: {1}
	fn(2) // rotate, gen B: {2}
	fn(1) // still in gen A
	assert.Equal(t, 2, count)

	fn(3) // rotate, gen A dropped
	fn(1)
	assert.Equal(t, 4, count)
}

type nonComparable struct {
	Field []int
}

func (n nonComparable) String() string {
	return fmt.Sprintf("nonComparable%v", n.Field)
}

func TestMemoize_StringerFallback(t *testing.T) {
	count := 0
	fn := pure.MemoizeI1O1(func(n nonComparable) int {
		count++
		return len(n.Field)
	}, 2)

	assert.Equal(t, 3, fn(nonComparable{Field: []int{1, 2, 3}}))
	assert.Equal(t, 3, fn(nonComparable{Field: []int{1, 2, 3}}))
	assert.Equal(t, 1, count)
}

type totallyInvalid struct {
	Field []int
}

func TestMemoize_PanicsIfNotKeyable(t *testing.T) {
	fn := pure.MemoizeI1O1(func(t totallyInvalid) int {
		return len(t.Field)
	}, 2)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, pure.ErrUnkeyable) {
			t.Errorf("expected ErrUnkeyable panic, got %v", r)
		}
	}()
	_ = fn(totallyInvalid{Field: []int{1}})
}

type boxed struct {
	V any
}

func TestMemoize_PanicsIfInterfaceFieldNotKeyable(t *testing.T) {
	count := 0
	fn := pure.MemoizeI1O1(func(b boxed) int {
		count++
		return 1
	}, 2)

	assert.Equal(t, 1, fn(boxed{V: 1}))
	assert.Equal(t, 1, fn(boxed{V: 1}))
	assert.Equal(t, 1, count)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, pure.ErrUnkeyable) {
			t.Errorf("expected ErrUnkeyable panic, got %v", r)
		}
	}()
	_ = fn(boxed{V: []int{1}})
}

func TestMemoize_Concurrent(t *testing.T) {
	fn := pure.MemoizeI2O1(func(a, b int) int { return a * b }, 8)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 32 {
				assert.Equal(t, i*j, fn(i, j))
			}
		}()
	}
	wg.Wait()
}
