package pure_test

import (
	"fmt"
	"math"
	"strings"

	"github.com/on-the-ground/funcomb_go/option"
	"github.com/on-the-ground/funcomb_go/pure"
	"github.com/on-the-ground/funcomb_go/tuple"
)

func ExampleGather2() {
	printPair := func(t tuple.T2[int, int]) pure.Unit {
		fmt.Printf("%d %d\n", t.First(), t.Second())
		return pure.Unit{}
	}
	pure.Gather2(printPair)(1, 2)
	// Output: 1 2
}

func ExampleCurry2() {
	fmt.Println(pure.Curry2(math.Pow)(2)(3))
	// Output: 8
}

func ExamplePartialI3P2() {
	plus := func(a, b, c int) int { return a + b + c }
	fmt.Println(pure.PartialI3P2(plus, 1, 2)(3))
	// Output: 6
}

func ExampleConverge2() {
	avg := pure.Converge2(
		func(sum, n int) float64 { return float64(sum) / float64(n) },
		pure.Reduce(func(acc, x int) int { return acc + x }, 0),
		func(xs []int) int { return len(xs) },
	)
	fmt.Println(avg([]int{1, 2, 3, 4}))
	// Output: 2.5
}

func ExampleTap() {
	shout := pure.Pipe(
		strings.TrimSpace,
		pure.Tap(func(s string) { fmt.Println("trimmed:", s) }),
		strings.ToUpper,
	)
	fmt.Println(shout("  go "))
	// Output:
	// trimmed: go
	// GO
}

func ExampleDefaultTo() {
	port := pure.DefaultTo(8080)
	fmt.Println(port(option.None[int]()), port(option.Some(9090)))
	// Output: 8080 9090
}
