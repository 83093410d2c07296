package contour

import (
	"fmt"
	"iter"
)

type SegmentKind int

const (
	// A line between two on-curve points.
	LineSegment SegmentKind = iota + 1
	// A cubic Bézier between two on-curve points, with two off-curve points.
	CubicSegment
)

func (k SegmentKind) String() string {
	switch k {
	case LineSegment:
		return "Line"
	case CubicSegment:
		return "Cubic"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Segment is the part of a contour between two consecutive on-curve points.
// This type acts as a tagged union: lines use P0 and P1, cubic Béziers use P0
// through P3. The points are copies; modifying them does not modify the
// contour they came from.
type Segment struct {
	Kind SegmentKind
	P0   PathPoint
	P1   PathPoint
	P2   PathPoint
	P3   PathPoint
}

func LineSeg(p0, p1 PathPoint) Segment {
	return Segment{Kind: LineSegment, P0: p0, P1: p1}
}

func CubicSeg(p0, p1, p2, p3 PathPoint) Segment {
	return Segment{Kind: CubicSegment, P0: p0, P1: p1, P2: p2, P3: p3}
}

func (s Segment) Start() PathPoint {
	return s.P0
}

func (s Segment) End() PathPoint {
	switch s.Kind {
	case LineSegment:
		return s.P1
	case CubicSegment:
		return s.P3
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", s.Kind))
	}
}

func (s Segment) StartID() EntityID { return s.Start().ID }
func (s Segment) EndID() EntityID   { return s.End().ID }

func (s Segment) points() []PathPoint {
	switch s.Kind {
	case LineSegment:
		return []PathPoint{s.P0, s.P1}
	case CubicSegment:
		return []PathPoint{s.P0, s.P1, s.P2, s.P3}
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", s.Kind))
	}
}

// IDs returns the ids of the segment's points, in order.
func (s Segment) IDs() []EntityID {
	pts := s.points()
	ids := make([]EntityID, len(pts))
	for i, pt := range pts {
		ids[i] = pt.ID
	}
	return ids
}

// Points returns the segment's points, in order.
func (s Segment) Points() iter.Seq[PathPoint] {
	return func(yield func(PathPoint) bool) {
		for _, pt := range s.points() {
			if !yield(pt) {
				return
			}
		}
	}
}

// Line returns the geometry of a line segment. It panics for other kinds.
func (s Segment) Line() Line {
	if s.Kind != LineSegment {
		panic(fmt.Sprintf("Line called on %v segment", s.Kind))
	}
	return Line{s.P0.Point, s.P1.Point}
}

// Cubic returns the geometry of the segment as a cubic Bézier. Lines are
// represented exactly, with control points at a third and two thirds of their
// length.
func (s Segment) Cubic() CubicBez {
	switch s.Kind {
	case LineSegment:
		return CubicBez{
			s.P0.Point,
			s.P0.Point.Lerp(s.P1.Point, 1.0/3.0),
			s.P0.Point.Lerp(s.P1.Point, 2.0/3.0),
			s.P1.Point,
		}
	case CubicSegment:
		return CubicBez{s.P0.Point, s.P1.Point, s.P2.Point, s.P3.Point}
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", s.Kind))
	}
}

// ToCubic converts a line segment into an equivalent cubic segment with new
// off-curve points. The end points keep their identities. Cubic segments are
// returned unchanged.
//
// Together with [Contour.ReplaceSegment], this turns a line into a curve.
func (s Segment) ToCubic() Segment {
	if s.Kind == CubicSegment {
		return s
	}
	parent := s.StartID().Parent()
	cb := s.Cubic()
	return CubicSeg(s.P0, OffCurvePoint(parent, cb.P1), OffCurvePoint(parent, cb.P2), s.P1)
}

func (s Segment) Eval(t float64) Point {
	switch s.Kind {
	case LineSegment:
		return s.Line().Eval(t)
	default:
		return s.Cubic().Eval(t)
	}
}

// Nearest returns the squared distance from pt to the segment and the
// parameter of the nearest point.
func (s Segment) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	switch s.Kind {
	case LineSegment:
		return s.Line().Nearest(pt)
	default:
		return s.Cubic().Nearest(pt, accuracy)
	}
}

// Subsegment returns the part of the segment between t0 and t1 as a new
// segment of the same kind. All of its points are new, scoped to the contour
// of s.
func (s Segment) Subsegment(t0, t1 float64) Segment {
	parent := s.StartID().Parent()
	switch s.Kind {
	case LineSegment:
		l := s.Line().Subsegment(t0, t1)
		return LineSeg(
			OnCurvePoint(parent, l.P0),
			OnCurvePoint(parent, l.P1),
		)
	case CubicSegment:
		cb := s.Cubic().Subsegment(t0, t1)
		return CubicSeg(
			OnCurvePoint(parent, cb.P0),
			OffCurvePoint(parent, cb.P1),
			OffCurvePoint(parent, cb.P2),
			OnCurvePoint(parent, cb.P3),
		)
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", s.Kind))
	}
}

// Subdivide splits the segment at t. The halves share the new on-curve point
// at t, and keep the start and end points of s. The result is suitable for
// [Contour.SplitSegment].
func (s Segment) Subdivide(t float64) (pre, post Segment) {
	pre = s.Subsegment(0, t)
	post = s.Subsegment(t, 1)
	mid := pre.End()
	pre.P0 = s.P0
	post.P0 = mid
	switch s.Kind {
	case LineSegment:
		post.P1 = s.P1
	case CubicSegment:
		post.P3 = s.P3
	}
	return pre, post
}

func (s Segment) String() string {
	switch s.Kind {
	case LineSegment:
		return fmt.Sprintf("(%s->%s) Line(%s, %s)", s.StartID(), s.EndID(), s.P0.Point, s.P1.Point)
	case CubicSegment:
		return fmt.Sprintf("(%s->%s) Cubic(%s, %s, %s, %s)", s.StartID(), s.EndID(), s.P0.Point, s.P1.Point, s.P2.Point, s.P3.Point)
	default:
		return "InvalidSegment"
	}
}

// PointsFromSegments returns the stored representation of a contour made of
// the given consecutive segments, for use with [FromParts]. For closed
// contours, the end of the last segment must be the start of the first.
func PointsFromSegments(segs []Segment, closed bool) []PathPoint {
	if len(segs) == 0 {
		return nil
	}
	var out []PathPoint
	if !closed {
		out = append(out, segs[0].Start())
	}
	for _, seg := range segs {
		out = append(out, seg.points()[1:]...)
	}
	return out
}
