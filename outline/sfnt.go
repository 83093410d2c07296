package outline

import (
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"honnef.co/go/contour"
)

// FromSegments converts a glyph outline into contours, one per sfnt subpath.
// Points are mapped through aff. Subpaths of three or more points are closed;
// a final point coinciding with the subpath's first point is merged into it.
func FromSegments(segs sfnt.Segments, aff contour.Affine) []*contour.Contour {
	var (
		out   []*contour.Contour
		b     builder
		start fixed.Point26_6
		cur   fixed.Point26_6
	)
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if c := b.finish(cur == start); c != nil {
				out = append(out, c)
			}
			b.begin(fromFixed(seg.Args[0], aff))
			start, cur = seg.Args[0], seg.Args[0]
		case sfnt.SegmentOpLineTo:
			b.on(fromFixed(seg.Args[0], aff))
			cur = seg.Args[0]
		case sfnt.SegmentOpQuadTo:
			// degree elevation: the cubic's controls lie two thirds of the way
			// from each end point to the quadratic's control point.
			p0 := fromFixed(cur, aff)
			q := fromFixed(seg.Args[0], aff)
			p1 := fromFixed(seg.Args[1], aff)
			b.off(p0.Lerp(q, 2.0/3.0))
			b.off(p1.Lerp(q, 2.0/3.0))
			b.on(p1)
			cur = seg.Args[1]
		case sfnt.SegmentOpCubeTo:
			b.off(fromFixed(seg.Args[0], aff))
			b.off(fromFixed(seg.Args[1], aff))
			b.on(fromFixed(seg.Args[2], aff))
			cur = seg.Args[2]
		}
	}
	if c := b.finish(cur == start); c != nil {
		out = append(out, c)
	}
	tracer().Debugf("imported %d contours from %d segments", len(out), len(segs))
	return out
}

type builder struct {
	id  contour.EntityID
	pts []contour.PathPoint
}

func (b *builder) begin(pt contour.Point) {
	b.id = contour.NewContourID()
	b.pts = []contour.PathPoint{contour.OnCurvePoint(b.id, pt)}
}

func (b *builder) on(pt contour.Point) {
	b.pts = append(b.pts, contour.OnCurvePoint(b.id, pt))
}

func (b *builder) off(pt contour.Point) {
	b.pts = append(b.pts, contour.OffCurvePoint(b.id, pt))
}

// finish returns the contour built since the last begin, if any. endsAtStart
// reports whether the last point coincides with the first.
func (b *builder) finish(endsAtStart bool) *contour.Contour {
	if len(b.pts) == 0 {
		return nil
	}
	pts := b.pts
	b.pts = nil
	if endsAtStart && len(pts) > 1 {
		pts = pts[:len(pts)-1]
	}
	c := contour.FromParts(b.id, pts, nil, false)
	if len(pts) >= 3 {
		c.Close()
	}
	return c
}

// ToSegments converts contours into an sfnt outline, mapping points through
// aff. sfnt subpaths are implicitly closed, so open contours are closed by a
// straight line.
func ToSegments(contours []*contour.Contour, aff contour.Affine) sfnt.Segments {
	var out sfnt.Segments
	for _, c := range contours {
		out = append(out, sfnt.Segment{
			Op:   sfnt.SegmentOpMoveTo,
			Args: [3]fixed.Point26_6{toFixed(c.StartPoint().Point, aff)},
		})
		for seg := range c.Segments() {
			switch seg.Kind {
			case contour.LineSegment:
				out = append(out, sfnt.Segment{
					Op:   sfnt.SegmentOpLineTo,
					Args: [3]fixed.Point26_6{toFixed(seg.P1.Point, aff)},
				})
			case contour.CubicSegment:
				out = append(out, sfnt.Segment{
					Op: sfnt.SegmentOpCubeTo,
					Args: [3]fixed.Point26_6{
						toFixed(seg.P1.Point, aff),
						toFixed(seg.P2.Point, aff),
						toFixed(seg.P3.Point, aff),
					},
				})
			}
		}
	}
	return out
}

func fromFixed(p fixed.Point26_6, aff contour.Affine) contour.Point {
	return contour.Pt(float64(p.X)/64, float64(p.Y)/64).Transform(aff)
}

func toFixed(p contour.Point, aff contour.Affine) fixed.Point26_6 {
	p = p.Transform(aff)
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(p.X * 64)),
		Y: fixed.Int26_6(math.Round(p.Y * 64)),
	}
}
