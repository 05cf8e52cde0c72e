// SPDX-License-Identifier: MIT

package differ

// Point is a 2D position.
type Point struct {
	X, Y float64
}

// Size is a 2D extent.
type Size struct {
	Width, Height float64
}

// Insets are edge offsets, e.g. padding or hit-slop.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// PointsDiffer reports whether two optional points differ.
// Same pointer (including both nil) → false; exactly one nil → true.
func PointsDiffer(a, b *Point) bool {
	if a == b {
		return false
	}
	if a == nil || b == nil {
		return true
	}

	return a.X != b.X || a.Y != b.Y
}

// SizesDiffer reports whether two optional sizes differ.
func SizesDiffer(a, b *Size) bool {
	if a == b {
		return false
	}
	if a == nil || b == nil {
		return true
	}

	return a.Width != b.Width || a.Height != b.Height
}

// InsetsDiffer reports whether two optional inset sets differ.
func InsetsDiffer(a, b *Insets) bool {
	if a == b {
		return false
	}
	if a == nil || b == nil {
		return true
	}

	return a.Top != b.Top || a.Left != b.Left || a.Bottom != b.Bottom || a.Right != b.Right
}
