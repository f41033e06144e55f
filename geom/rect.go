// Package geom provides the small integer rectangle type the tiling
// Arranger and inspection API share.
package geom

// Rect is an axis-aligned integer rectangle in screen (cell or pixel)
// coordinates — the same X, Y, W, H int shape as the teacher's core.Rect
// (core/types.go), reused as-is rather than diverged from.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the point (x, y) falls within r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset shrinks r by n on every side. A negative n grows it. The result
// may be empty if n is large relative to r's size.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X: r.X + n,
		Y: r.Y + n,
		W: r.W - 2*n,
		H: r.H - 2*n,
	}
}

// SplitFractions divides total into len(fractions) integer spans that sum
// back to exactly total. Spans are computed by flooring each fraction's
// share and handing the leftover remainder to the last span, so rounding
// error never accumulates into a gap or overlap — the same rule the
// Arranger uses for both axes.
func SplitFractions(total int, fractions []float64) []int {
	spans := make([]int, len(fractions))
	used := 0
	for i, f := range fractions {
		if i == len(fractions)-1 {
			spans[i] = total - used
			break
		}
		span := int(float64(total) * f)
		spans[i] = span
		used += span
	}
	return spans
}

// Union returns the smallest rectangle containing both a and b. If one of
// them is empty, the other is returned unchanged.
func Union(a, b Rect) Rect {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	minX, minY := min(a.X, b.X), min(a.Y, b.Y)
	maxX, maxY := max(a.X+a.W, b.X+b.W), max(a.Y+a.H, b.Y+b.H)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Overlaps reports whether a and b share any area.
func Overlaps(a, b Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
