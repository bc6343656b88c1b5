package frame

import "github.com/cwbudde/algo-plot/plot/projection"

// Rect is a pixel rectangle with its origin at the upper left corner.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return !(r.W > 0) || !(r.H > 0)
}

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Margins place the plot area inside a surface. Left and Right are the
// horizontal positions of the area as fractions of the width. Bottom and
// Top are the distances from the lower and the upper edge as fractions of
// the height.
type Margins struct {
	Left, Right, Bottom, Top float64
}

// DefaultMargins leave room for y tick labels on the left and for x ticks
// above and below.
var DefaultMargins = Margins{Left: 0.15, Right: 1, Bottom: 0.1, Top: 0.1}

// Area returns the plot area of r.
func (m Margins) Area(r Rect) Rect {
	return Rect{
		X: r.X + r.W*m.Left,
		Y: r.Y + r.H*m.Top,
		W: r.W * (m.Right - m.Left),
		H: r.H * (1 - m.Top - m.Bottom),
	}
}

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Line is a pixel-space line segment.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// axes returns the x and y projections of the data ranges onto the plot
// area of r. The y projection runs from the bottom edge up.
func axes(r Rect, m Margins, xlo, xhi, ylo, yhi float64) (xp, yp *projection.Projection) {
	a := m.Area(r)

	xp = projection.New()
	xp.SetInRange(xlo, xhi)
	xp.SetOutRange(a.X, a.X+a.W)

	yp = projection.New()
	yp.SetInRange(ylo, yhi)
	yp.SetOutRange(a.Y+a.H, a.Y)

	return xp, yp
}
