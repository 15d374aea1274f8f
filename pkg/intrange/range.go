// Package intrange provides an immutable closed interval over int32,
// with membership, containment, overlap and intersection operations.
package intrange

import (
	"fmt"
	"math"
)

// Range is a closed interval of int32 values. The zero value is the
// single-point range [0,0]; use Of, Empty or All to obtain instances.
// Range is comparable, == is structural equality.
type Range struct {
	min int32
	max int32
}

var (
	// the sentinel bound pair is the only value treated as empty and
	// cannot be produced through Of, which would swap the bounds.
	empty = Range{min: math.MaxInt32, max: math.MinInt32}
	all   = Range{min: math.MinInt32, max: math.MaxInt32}
)

// Of returns the range with the inclusive bounds a and b. If a is
// greater than b the bounds are interchanged, so the result always
// satisfies Min() <= Max(). Callers cannot rely on argument order
// being preserved.
func Of(a, b int32) Range {
	if a <= b {
		return Range{min: a, max: b}
	}
	return Range{min: b, max: a}
}

// Empty returns the empty range, which contains no values.
func Empty() Range { return empty }

// All returns the range spanning every int32 value.
func All() Range { return all }

// Min returns the inclusive lower bound of r.
func (r Range) Min() int32 { return r.min }

// Max returns the inclusive upper bound of r.
func (r Range) Max() int32 { return r.max }

// IsEmpty reports whether r is the empty range. Only the canonical
// sentinel bound pair qualifies.
func (r Range) IsEmpty() bool {
	return r == empty
}

// Contains reports whether v lies within r. Always false on the
// empty range.
func (r Range) Contains(v int32) bool {
	return r.min <= v && v <= r.max
}

// ContainsRange reports whether every value of other lies within r.
// Checking other's two bounds suffices since other.min <= other.max
// holds for any constructible range.
func (r Range) ContainsRange(other Range) bool {
	return r.Contains(other.min) && r.Contains(other.max)
}

// IsOverlapping reports whether r and other share at least one value,
// by testing each range's bounds against the other.
func (r Range) IsOverlapping(other Range) bool {
	return r.Contains(other.min) || r.Contains(other.max) ||
		other.Contains(r.min) || other.Contains(r.max)
}

// IsDisjoint reports whether r and other share no values.
func (r Range) IsDisjoint(other Range) bool {
	return !r.IsOverlapping(other)
}

// Intersect returns the intersection of r with all the given ranges,
// folding left to right and stopping early once the result is empty.
// With no arguments it returns r unchanged.
func (r Range) Intersect(others ...Range) Range {
	result := r
	for _, other := range others {
		result = result.intersect(other)
		if result.IsEmpty() {
			break
		}
	}
	return result
}

func (r Range) intersect(other Range) Range {
	if r == other {
		return r
	}
	if r.IsOverlapping(other) {
		// Direct construction, not Of: the bounds are already ordered
		// when both ranges are non-empty, and an empty operand must
		// collapse back to the sentinel instead of being swapped into
		// the full range.
		return Range{min: max(r.min, other.min), max: min(r.max, other.max)}
	}
	return empty
}

// Hash returns a deterministic hash of the bounds. Equal ranges hash
// equally.
func (r Range) Hash() uint32 {
	h := uint32(5)
	h = 17*h + uint32(r.min)
	h = 17*h + uint32(r.max)
	return h
}

// String returns "[EMPTY]" for the empty range and "[min,max]"
// otherwise.
func (r Range) String() string {
	if r.IsEmpty() {
		return "[EMPTY]"
	}
	return fmt.Sprintf("[%d,%d]", r.min, r.max)
}
