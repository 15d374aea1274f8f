package main

import (
	"fmt"

	"github.com/jeszy75/rangeutils/pkg/intrange"
)

var pairs = []struct {
	a, b int32
}{
	{a: 5, b: 1},
	{a: 3, b: 3},
	{a: 1, b: 10},
	{a: -100, b: 100},
}

func main() {
	for _, p := range pairs {
		r := intrange.Of(p.a, p.b)
		fmt.Println("range", r, "min", r.Min(), "max", r.Max())
	}

	a := intrange.Of(1, 5)
	b := intrange.Of(3, 8)
	fmt.Println("contains", a, a.Contains(3), a.Contains(6))
	fmt.Println("containsRange", a, b, a.ContainsRange(b))
	fmt.Println("overlapping", a, b, a.IsOverlapping(b))
	fmt.Println("disjoint", a, intrange.Of(6, 8), a.IsDisjoint(intrange.Of(6, 8)))
	fmt.Println("intersect", a, b, a.Intersect(b))

	// variadic intersect short-circuits once the result goes empty
	r := intrange.Of(1, 10).Intersect(
		intrange.Of(2, 9),
		intrange.Of(3, 8),
		intrange.Of(100, 200),
	)
	fmt.Println("fold", r)

	fmt.Println("empty", intrange.Empty(), intrange.Empty().IsEmpty())
	fmt.Println("all", intrange.All())
}
