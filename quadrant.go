package contour

import "fmt"

// Quadrant names one of nine reference points of a rectangle: its corners, the
// midpoints of its edges, and its center. The editor uses it to decide which
// point of a selection's bounding box stays fixed when the selection is scaled
// or rotated, and which point's coordinates are shown for a multi-point
// selection.
//
// Quadrants are expressed in the y-up design space, so Top refers to the
// larger Y coordinate.
type Quadrant int

const (
	Center Quadrant = iota
	TopLeft
	Top
	TopRight
	Left
	Right
	BottomLeft
	Bottom
	BottomRight
)

func (q Quadrant) String() string {
	switch q {
	case Center:
		return "Center"
	case TopLeft:
		return "TopLeft"
	case Top:
		return "Top"
	case TopRight:
		return "TopRight"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case BottomLeft:
		return "BottomLeft"
	case Bottom:
		return "Bottom"
	case BottomRight:
		return "BottomRight"
	default:
		return fmt.Sprintf("Quadrant(%d)", int(q))
	}
}

// QuadrantAt returns the quadrant of r that pt falls into, dividing r into a
// three by three grid. Points outside of r are clamped to the nearest cell.
func QuadrantAt(pt Point, r Rect) Quadrant {
	r = r.Abs()
	col := third(pt.X, r.X0, r.Width())
	row := third(pt.Y, r.Y0, r.Height())
	// rows count upwards, so row 2 is the top row.
	grid := [3][3]Quadrant{
		{BottomLeft, Bottom, BottomRight},
		{Left, Center, Right},
		{TopLeft, Top, TopRight},
	}
	return grid[row][col]
}

func third(v, origin, extent float64) int {
	if extent <= 0 {
		return 1
	}
	switch f := (v - origin) / extent; {
	case f < 1.0/3.0:
		return 0
	case f < 2.0/3.0:
		return 1
	default:
		return 2
	}
}

// PointIn returns the reference point of r that q names.
func (q Quadrant) PointIn(r Rect) Point {
	r = r.Abs()
	c := r.Center()
	switch q {
	case TopLeft:
		return Pt(r.X0, r.Y1)
	case Top:
		return Pt(c.X, r.Y1)
	case TopRight:
		return Pt(r.X1, r.Y1)
	case Left:
		return Pt(r.X0, c.Y)
	case Right:
		return Pt(r.X1, c.Y)
	case BottomLeft:
		return Pt(r.X0, r.Y0)
	case Bottom:
		return Pt(c.X, r.Y0)
	case BottomRight:
		return Pt(r.X1, r.Y0)
	default:
		return c
	}
}
