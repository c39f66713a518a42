package pure_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/funcomb_go/pure"
	"github.com/stretchr/testify/assert"
)

func plusThree(a, b, c int) int { return a + b + c }

func digits(a, b, c, d int) string { return fmt.Sprint(a, b, c, d) }

func TestPartial(t *testing.T) {
	assert.Equal(t, 6, pure.PartialI3P2(plusThree, 1, 2)(3))
	assert.Equal(t, 6, pure.PartialI3P1(plusThree, 1)(2, 3))

	sub := func(a, b int) int { return a - b }
	assert.Equal(t, 7, pure.PartialI2P1(sub, 10)(3))

	assert.Equal(t, digits(1, 2, 3, 4), pure.PartialI4P1(digits, 1)(2, 3, 4))
	assert.Equal(t, digits(1, 2, 3, 4), pure.PartialI4P2(digits, 1, 2)(3, 4))
	assert.Equal(t, digits(1, 2, 3, 4), pure.PartialI4P3(digits, 1, 2, 3)(4))
}

func TestRightPartial(t *testing.T) {
	sub := func(a, b int) int { return a - b }
	assert.Equal(t, 7, pure.RightPartialI2P1(sub, 3)(10))

	join := func(a, b, c string) string { return a + b + c }
	assert.Equal(t, "abc", pure.RightPartialI3P1(join, "c")("a", "b"))
	assert.Equal(t, "abc", pure.RightPartialI3P2(join, "b", "c")("a"))

	assert.Equal(t, digits(1, 2, 3, 4), pure.RightPartialI4P1(digits, 4)(1, 2, 3))
	assert.Equal(t, digits(1, 2, 3, 4), pure.RightPartialI4P2(digits, 3, 4)(1, 2))
	assert.Equal(t, digits(1, 2, 3, 4), pure.RightPartialI4P3(digits, 2, 3, 4)(1))
}

func TestPartial_BindsAtConstruction(t *testing.T) {
	x := 1
	add := pure.PartialI3P1(plusThree, x)
	x = 100
	assert.Equal(t, 6, add(2, 3))
}
