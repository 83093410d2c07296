// Package contour implements the point model of a single glyph contour, as
// edited in a font editor: an open or closed path of on-curve and off-curve
// points describing lines and cubic Béziers.
//
// # Points and identity
//
// A [Contour] stores an ordered sequence of [PathPoint] values. Every point has
// an [EntityID] scoped to its contour. Callers refer to points by id, never by
// position: positions change with every insertion and deletion, ids do not.
// Looking up an id that no longer exists is not an error; mutations silently
// do nothing and queries report absence.
//
// On-curve points are either corners or smooth. The two handles of a smooth
// point are kept collinear through it: moving one handle re-angles the other,
// preserving the other's length.
//
// # Invariants
//
// A contour is never empty. An open contour starts with an on-curve point. A
// closed contour ends with an on-curve point, which is its start; iterating the
// points of a closed contour with [Contour.Points] yields that point first.
// Between two consecutive on-curve points there are either zero off-curve
// points (a line) or two (a cubic Bézier). Deleting points from a closed
// contour opens it once fewer than three points remain; [Contour.Close] itself
// accepts open contours of any length. Violating an invariant, or calling a
// mutation that would violate one, is a programming error and panics.
//
// # Segments
//
// [Contour.Segments] converts the point sequence into [Segment] values, lines
// and cubic Béziers with explicit start points. Segments are the unit exchanged
// with geometry code: [Segment.Subdivide] produces the two halves that
// [Contour.SplitSegment] inserts, and [Segment.Line] and [Segment.Cubic] return
// plain curves for hit-testing and drawing.
//
// # Snapshots
//
// [Contour.Clone] is O(1). A clone shares storage with its source until either
// of them is modified, at which point the modified one copies. This makes it
// cheap to keep undo history and to compare a contour against a previous
// version with [Contour.Equal].
//
// Contours are not safe for concurrent mutation. Mutate a contour from a single
// goroutine and hand out clones to everyone else.
package contour

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'glyphs.contour'
func tracer() tracing.Trace {
	return tracing.Select("glyphs.contour")
}
