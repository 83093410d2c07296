package contour

import (
	"fmt"
	"iter"
	"slices"
)

// Contour is a single open or closed path of on-curve and off-curve points.
//
// Contours must be used through pointers; lookups update an internal index.
type Contour struct {
	id       EntityID
	points   pointStore
	trailing option[Point]
	closed   bool
}

// New returns an open contour consisting of a single corner point.
func New(start Point) *Contour {
	id := NewContourID()
	return &Contour{
		id:     id,
		points: newPointStore([]PathPoint{OnCurvePoint(id, start)}),
	}
}

// FromParts reconstructs a contour from its stored representation, as
// returned by [Contour.Raw], [Contour.Trailing] and [Contour.Closed]. trailing
// may be nil.
//
// All points must be scoped to id. Open contours must start with an on-curve
// point. Closed contours whose last point is off-curve are rotated until an
// on-curve point is last. The points slice is copied.
func FromParts(id EntityID, points []PathPoint, trailing *Point, closed bool) *Contour {
	if len(points) == 0 {
		panic("contour may not be empty")
	}
	for _, pt := range points {
		if !pt.ID.IsChildOf(id) {
			panic(fmt.Sprintf("point %s does not belong to contour %s", pt.ID, id))
		}
	}
	if !closed && !points[0].IsOnCurve() {
		panic("open contour must start with an on-curve point")
	}

	points = slices.Clone(points)
	if closed && !points[len(points)-1].IsOnCurve() {
		i := slices.IndexFunc(points, PathPoint.IsOnCurve)
		if i < 0 {
			panic("closed contour has no on-curve point")
		}
		rotateLeft(points, i+1)
	}

	c := &Contour{
		id:     id,
		points: newPointStore(points),
		closed: closed,
	}
	if trailing != nil {
		c.trailing.set(*trailing)
	}
	return c
}

// Clone returns a copy of c that shares storage with c until either is
// modified.
func (c *Contour) Clone() *Contour {
	return &Contour{
		id:       c.id,
		points:   c.points.clone(),
		trailing: c.trailing,
		closed:   c.closed,
	}
}

// Equal reports whether c and o describe the same contour. Contours that
// still share storage compare in constant time.
func (c *Contour) Equal(o *Contour) bool {
	if c == o {
		return true
	}
	if c.id != o.id || c.closed != o.closed || c.trailing != o.trailing {
		return false
	}
	if c.points.sameStorage(&o.points) {
		return true
	}
	return slices.Equal(c.points.slice(), o.points.slice())
}

func (c *Contour) Len() int       { return c.points.len() }
func (c *Contour) Closed() bool   { return c.closed }
func (c *Contour) ID() EntityID   { return c.id }
func (c *Contour) ClearTrailing() { c.trailing.clear() }

// Trailing returns the provisional point that is being drawn but has not been
// committed yet.
func (c *Contour) Trailing() (Point, bool) {
	return c.trailing.get()
}

func (c *Contour) SetTrailing(pt Point) {
	c.trailing.set(pt)
}

// Raw returns the points in storage order. For closed contours, the start
// point is last. The slice must not be modified, and it is invalidated by the
// next mutation of c.
func (c *Contour) Raw() []PathPoint {
	return c.points.slice()
}

// Points returns the points in canonical order, starting with the start
// point. The contour must not be modified during iteration.
func (c *Contour) Points() iter.Seq[PathPoint] {
	return func(yield func(PathPoint) bool) {
		pts := c.points.slice()
		n := len(pts)
		if c.closed {
			if !yield(pts[n-1]) {
				return
			}
			n--
		}
		for _, pt := range pts[:n] {
			if !yield(pt) {
				return
			}
		}
	}
}

// Segments returns the lines and cubic Béziers making up the contour,
// starting at the start point. The sequence is built from a snapshot: it can
// be iterated any number of times and is not affected by later modifications
// of c.
func (c *Contour) Segments() iter.Seq[Segment] {
	pts := c.points.snapshot()
	start := c.StartPoint()
	first := 1
	if c.closed {
		first = 0
	}
	return func(yield func(Segment) bool) {
		prev := start
		for i := first; i < len(pts); {
			var seg Segment
			if pts[i].IsOnCurve() {
				seg = LineSeg(prev, pts[i])
				i++
			} else {
				if i+2 >= len(pts) || !pts[i+2].IsOnCurve() {
					panic(fmt.Sprintf("broken point alternation at index %d of %v", i, pts))
				}
				seg = CubicSeg(prev, pts[i], pts[i+1], pts[i+2])
				i += 3
			}
			prev = seg.End()
			if !yield(seg) {
				return
			}
		}
	}
}

func (c *Contour) firstIdx() int {
	if c.closed {
		return c.points.len() - 1
	}
	return 0
}

func (c *Contour) prevIdx(idx int) (int, bool) {
	n := c.points.len()
	if c.closed {
		return (n + idx - 1) % n, true
	}
	if idx == 0 {
		return 0, false
	}
	return idx - 1, true
}

func (c *Contour) nextIdx(idx int) (int, bool) {
	n := c.points.len()
	if c.closed {
		return (idx + 1) % n, true
	}
	if idx < n-1 {
		return idx + 1, true
	}
	return 0, false
}

// StartPoint returns the first on-curve point in canonical order.
func (c *Contour) StartPoint() PathPoint {
	if c.points.isEmpty() {
		panic("empty contour")
	}
	return c.points.slice()[c.firstIdx()]
}

// LastOnCurvePoint returns the on-curve point preceding the start point of a
// closed contour, or the last on-curve point of an open one. For a contour of
// a single point, that is the start point itself.
func (c *Contour) LastOnCurvePoint() PathPoint {
	pts := c.points.slice()
	if len(pts) == 0 {
		panic("empty contour")
	}
	end := len(pts)
	if c.closed {
		end--
	}
	for i := end - 1; i >= 0; i-- {
		if pts[i].IsOnCurve() {
			return pts[i]
		}
	}
	return c.StartPoint()
}

// TrailingPointInOpenPath returns the last point of an open contour, the point
// the pen tool continues from.
func (c *Contour) TrailingPointInOpenPath() (PathPoint, bool) {
	if c.closed {
		return PathPoint{}, false
	}
	pts := c.points.slice()
	return pts[len(pts)-1], true
}

// LastSegmentIsCurve reports whether the contour ends with a cubic Bézier.
func (c *Contour) LastSegmentIsCurve() bool {
	pts := c.points.slice()
	return len(pts) > 2 && !pts[len(pts)-2].IsOnCurve()
}

func (c *Contour) assertOwns(id EntityID) {
	if !id.IsChildOf(c.id) {
		panic(fmt.Sprintf("point %s does not belong to contour %s", id, c.id))
	}
}

// PathPoint returns the point with the given id.
func (c *Contour) PathPoint(id EntityID) (PathPoint, bool) {
	c.assertOwns(id)
	return c.points.get(id)
}

// PrevPoint returns the point before the one with the given id, wrapping
// around in closed contours.
func (c *Contour) PrevPoint(id EntityID) (PathPoint, bool) {
	c.assertOwns(id)
	cur := c.CursorAt(id)
	return cur.PeekPrev()
}

// NextPoint returns the point after the one with the given id, wrapping
// around in closed contours.
func (c *Contour) NextPoint(id EntityID) (PathPoint, bool) {
	c.assertOwns(id)
	cur := c.CursorAt(id)
	return cur.PeekNext()
}

// ControlBox returns the bounding box of all points, including off-curve
// points. It contains the outline.
func (c *Contour) ControlBox() Rect {
	pts := c.points.slice()
	r := NewRectFromPoints(pts[0].Point, pts[0].Point)
	for _, pt := range pts[1:] {
		r = r.UnionPoint(pt.Point)
	}
	return r
}

// NearestSegment returns the segment closest to pt and the parameter of the
// closest point on it, if that point is no further than maxDist from pt.
func (c *Contour) NearestSegment(pt Point, maxDist float64) (Segment, float64, bool) {
	const accuracy = 1e-6
	var (
		best  option[float64]
		bestS Segment
		bestT float64
	)
	for seg := range c.Segments() {
		distSq, t := seg.Nearest(pt, accuracy)
		if !best.isSet || distSq < best.value {
			best.set(distSq)
			bestS, bestT = seg, t
		}
	}
	if !best.isSet || best.value > maxDist*maxDist {
		return Segment{}, 0, false
	}
	return bestS, bestT, true
}

// PushOnCurve appends a corner point to an open contour.
func (c *Contour) PushOnCurve(pt Point) EntityID {
	if c.closed {
		panic("cannot push to a closed contour")
	}
	p := OnCurvePoint(c.id, pt)
	pts := c.points.mut()
	*pts = append(*pts, p)
	return p.ID
}

// Close closes an open contour. The first point becomes the start point of the
// closed contour; its id is returned. Contours of one or two points may be
// closed too; only DeletePoints opens contours that are too short.
func (c *Contour) Close() EntityID {
	if c.closed {
		panic("contour is already closed")
	}
	pts := c.points.mut()
	rotateLeft(*pts, 1)
	c.closed = true
	return (*pts)[len(*pts)-1].ID
}

// ReverseContour reverses the direction of the contour. The start point stays
// the start point.
func (c *Contour) ReverseContour() {
	pts := *c.points.mut()
	if c.closed {
		pts = pts[:len(pts)-1]
	}
	slices.Reverse(pts)
}

// TransformAll applies aff to all points and to the trailing point, treating
// anchor as the origin.
func (c *Contour) TransformAll(aff Affine, anchor Point) {
	pts := *c.points.mut()
	for i := range pts {
		pts[i].transform(aff, anchor)
	}
	if t, ok := c.trailing.get(); ok {
		c.trailing.set(t.TransformAbout(aff, anchor))
	}
}

// TransformPoints applies aff to the points with the given ids, treating
// anchor as the origin. Off-curve points adjacent to a selected on-curve point
// move with it. When a moved handle has a tangent partner that did not move,
// the partner is re-angled to keep the smooth point smooth.
func (c *Contour) TransformPoints(ids []EntityID, aff Affine, anchor Point) {
	sel := c.expandSelection(ids)
	order := make([]EntityID, 0, len(sel))
	for _, pt := range c.points.slice() {
		if _, ok := sel[pt.ID]; ok {
			order = append(order, pt.ID)
		}
	}

	for _, id := range order {
		c.points.update(id, func(pt *PathPoint) { pt.transform(aff, anchor) })
		if onCurve, partner, ok := c.tangentHandle(id); ok {
			if _, moved := sel[partner]; !moved {
				c.adjustHandleAngle(id, onCurve, partner)
			}
		}
	}
}

// expandSelection returns the given ids that exist in c, plus the off-curve
// neighbours of the on-curve ones.
func (c *Contour) expandSelection(ids []EntityID) map[EntityID]struct{} {
	sel := make(map[EntityID]struct{}, len(ids))
	for _, id := range ids {
		cur := c.CursorAt(id)
		pt, ok := cur.Point()
		if !ok {
			continue
		}
		sel[id] = struct{}{}
		if pt.IsOffCurve() {
			continue
		}
		if prev, ok := cur.PeekPrev(); ok && prev.IsOffCurve() {
			sel[prev.ID] = struct{}{}
		}
		if next, ok := cur.PeekNext(); ok && next.IsOffCurve() {
			sel[next.ID] = struct{}{}
		}
	}
	return sel
}

// UpdateHandle moves the off-curve point id to pos. If axisLocked is set, pos
// is first constrained to the horizontal or vertical through the handle's
// on-curve point. If that point is smooth, its other handle is re-angled.
func (c *Contour) UpdateHandle(id EntityID, pos Point, axisLocked bool) {
	onCurve, partner, ok := c.tangentHandleOpt(id)
	if !ok {
		tracer().Debugf("contour %s: %s is not a handle", c.id, id)
		return
	}
	if axisLocked {
		on, ok := c.points.get(onCurve)
		if !ok {
			return
		}
		pos = pos.AxisLockedTo(on.Point)
	}
	c.points.update(id, func(pt *PathPoint) { pt.Point = pos })
	if p, ok := partner.get(); ok {
		c.adjustHandleAngle(id, onCurve, p)
	}
}

// adjustHandleAngle moves bcp2 so that it is collinear with bcp1 through
// onCurve, on the opposite side, keeping its distance from onCurve.
func (c *Contour) adjustHandleAngle(bcp1, onCurve, bcp2 EntityID) {
	p1, ok1 := c.points.get(bcp1)
	p2, ok2 := c.points.get(onCurve)
	p3, ok3 := c.points.get(bcp2)
	if !ok1 || !ok2 || !ok3 {
		return
	}
	dir := p1.Point.Sub(p2.Point)
	if dir.Hypot() == 0 {
		return
	}
	handleLen := p3.Point.Sub(p2.Point).Hypot()
	newPos := p2.Point.Translate(dir.Normalize().Negate().Mul(handleLen))
	c.points.update(bcp2, func(pt *PathPoint) { pt.Point = newPos })
}

// tangentHandle returns the on-curve neighbour of the off-curve point id and
// that neighbour's other handle, if the neighbour is smooth and has one.
func (c *Contour) tangentHandle(id EntityID) (onCurve, partner EntityID, ok bool) {
	onCurve, p, ok := c.tangentHandleOpt(id)
	if !ok {
		return EntityID{}, EntityID{}, false
	}
	partner, ok = p.get()
	return onCurve, partner, ok
}

// tangentHandleOpt returns the on-curve neighbour of the off-curve point id,
// and, if that neighbour is smooth and its other neighbour is off-curve, that
// other neighbour. ok is false if id is not an off-curve point of c.
func (c *Contour) tangentHandleOpt(id EntityID) (onCurve EntityID, partner option[EntityID], ok bool) {
	cur := c.CursorAt(id)
	pt, ok := cur.Point()
	if !ok || !pt.IsOffCurve() {
		return EntityID{}, partner, false
	}

	var on PathPoint
	if next, ok := cur.PeekNext(); ok && next.IsOnCurve() {
		on = next
	} else if prev, ok := cur.PeekPrev(); ok && prev.IsOnCurve() {
		on = prev
	} else {
		panic(fmt.Sprintf("off-curve point %s has no on-curve neighbour", id))
	}
	if !on.IsSmooth() {
		return on.ID, partner, true
	}

	cur = c.CursorAt(on.ID)
	if next, ok := cur.PeekNext(); ok && next.IsOffCurve() && next.ID != id {
		partner.set(next.ID)
	} else if prev, ok := cur.PeekPrev(); ok && prev.IsOffCurve() && prev.ID != id {
		partner.set(prev.ID)
	}
	return on.ID, partner, true
}

// SplitSegment replaces old, a segment of c, by the two segments pre and post,
// which are usually produced by [Segment.Subdivide]. The start point of pre
// and the end point of post are the existing points of old and are not
// inserted. Inserted points are rescoped to c. pre and post must be of the
// same kind as old.
func (c *Contour) SplitSegment(old, pre, post Segment) {
	startIdx, ok := c.points.index(old.StartID())
	if !ok {
		tracer().Debugf("contour %s: split of missing segment %s", c.id, old)
		return
	}
	insertIdx, ok := c.nextIdx(startIdx)
	if !ok {
		return
	}

	if pre.Kind != old.Kind || post.Kind != old.Kind {
		panic(fmt.Sprintf("cannot split %v segment into %v and %v", old.Kind, pre.Kind, post.Kind))
	}
	existing, n := 0, 1
	if old.Kind == CubicSegment {
		existing, n = 2, 5
	}
	ins := make([]PathPoint, 0, 6)
	ins = append(ins, pre.points()[1:]...)
	ins = append(ins, post.points()[1:]...)
	ins = ins[:n]
	for i := range ins {
		ins[i].Reparent(c.id)
	}

	pts := c.points.mut()
	*pts = slices.Replace(*pts, insertIdx, insertIdx+existing, ins...)
}

// ReplaceSegment replaces the geometry of old, a segment of c, by that of
// repl, which may be of a different kind. The start and end points of old keep
// their identities and move to the start and end of repl; the off-curve points
// between them are replaced by those of repl, rescoped to c. Shared end points
// are never duplicated.
func (c *Contour) ReplaceSegment(old, repl Segment) {
	startIdx, ok := c.points.index(old.StartID())
	if !ok {
		tracer().Debugf("contour %s: replacement of missing segment %s", c.id, old)
		return
	}
	if _, ok := c.points.index(old.EndID()); !ok {
		tracer().Debugf("contour %s: replacement of missing segment %s", c.id, old)
		return
	}
	insertIdx, ok := c.nextIdx(startIdx)
	if !ok {
		return
	}

	existing := 0
	if old.Kind == CubicSegment {
		existing = 2
	}
	newPts := repl.points()
	interior := slices.Clone(newPts[1 : len(newPts)-1])
	for i := range interior {
		interior[i].Reparent(c.id)
	}

	pts := c.points.mut()
	*pts = slices.Replace(*pts, insertIdx, insertIdx+existing, interior...)
	c.points.update(old.StartID(), func(pt *PathPoint) { pt.Point = repl.Start().Point })
	c.points.update(old.EndID(), func(pt *PathPoint) { pt.Point = repl.End().Point })
}

// DeletePoints removes the points with the given ids, together with any
// off-curve points that would be left without a segment: the sibling of a
// deleted handle, and the handles of a deleted on-curve point that had a handle
// on both sides or that ended an open contour. Unknown ids are ignored.
//
// Handles left without a segment because the on-curve points on both of
// their sides were deleted are removed as well. Afterwards, closed contours
// are rotated so that they end in an on-curve point, contours with fewer than
// three points are opened, and smooth points that lost both handles become
// corners.
//
// DeletePoints reports whether the contour is now empty, in which case the
// caller must discard it.
func (c *Contour) DeletePoints(ids []EntityID) (empty bool) {
	toDelete := make(map[EntityID]struct{}, len(ids))
	for _, id := range ids {
		c.deletionClosure(id, toDelete)
	}
	if len(toDelete) == 0 {
		return false
	}
	tracer().Debugf("contour %s: deleting %d points", c.id, len(toDelete))

	pts := c.points.mut()
	*pts = slices.DeleteFunc(*pts, func(pt PathPoint) bool {
		_, ok := toDelete[pt.ID]
		return ok
	})
	if len(*pts) > 0 {
		c.dropDanglingHandles()
	}
	if c.points.isEmpty() {
		c.closed = false
		return true
	}
	c.normalize()
	return false
}

// dropDanglingHandles removes off-curve points that no longer sit in a run of
// exactly two between on-curve points. This happens when neighbouring on-curve
// points are deleted together and their handles meet. Longer runs keep their
// outermost handles, which belong to the surviving on-curve points. Single
// handles, and handles of an open contour that are not followed by an on-curve
// point, are removed.
func (c *Contour) dropDanglingHandles() {
	pts := c.points.slice()
	n := len(pts)
	drop := make([]bool, n)
	var run []int
	flush := func(terminated bool) {
		switch {
		case !terminated || len(run) == 1:
			for _, i := range run {
				drop[i] = true
			}
		case len(run) > 2:
			for _, i := range run[1 : len(run)-1] {
				drop[i] = true
			}
		}
		run = run[:0]
	}

	first := slices.IndexFunc(pts, PathPoint.IsOnCurve)
	switch {
	case first < 0:
		for i := range drop {
			drop[i] = true
		}
	case c.closed:
		for k := 1; k <= n; k++ {
			i := (first + k) % n
			if pts[i].IsOnCurve() {
				flush(true)
			} else {
				run = append(run, i)
			}
		}
	default:
		for i := range first {
			drop[i] = true
		}
		for i := first + 1; i < n; i++ {
			if pts[i].IsOnCurve() {
				flush(true)
			} else {
				run = append(run, i)
			}
		}
		flush(false)
	}

	if !slices.Contains(drop, true) {
		return
	}
	tracer().Debugf("contour %s: dropping dangling handles", c.id)
	mpts := c.points.mut()
	kept := (*mpts)[:0]
	for i, pt := range *mpts {
		if !drop[i] {
			kept = append(kept, pt)
		}
	}
	clear((*mpts)[len(kept):])
	*mpts = kept
}

func (c *Contour) deletionClosure(id EntityID, toDelete map[EntityID]struct{}) {
	cur := c.CursorAt(id)
	pt, ok := cur.Point()
	if !ok {
		tracer().Debugf("contour %s: no point %s to delete", c.id, id)
		return
	}
	prev, hasPrev := cur.PeekPrev()
	next, hasNext := cur.PeekNext()

	toDelete[pt.ID] = struct{}{}
	switch {
	case pt.IsOffCurve():
		if hasPrev && prev.IsOffCurve() {
			toDelete[prev.ID] = struct{}{}
		} else if hasNext && next.IsOffCurve() {
			toDelete[next.ID] = struct{}{}
		}
	case hasPrev && hasNext:
		if prev.IsOffCurve() && next.IsOffCurve() {
			toDelete[prev.ID] = struct{}{}
			toDelete[next.ID] = struct{}{}
		}
	case hasNext && next.IsOffCurve():
		// first point of an open contour
		toDelete[next.ID] = struct{}{}
		cur.MoveNext()
		if sib, ok := cur.PeekNext(); ok && sib.IsOffCurve() {
			toDelete[sib.ID] = struct{}{}
		}
	case hasPrev && prev.IsOffCurve():
		// last point of an open contour
		toDelete[prev.ID] = struct{}{}
		cur.MovePrev()
		if sib, ok := cur.PeekPrev(); ok && sib.IsOffCurve() {
			toDelete[sib.ID] = struct{}{}
		}
	}
}

// normalize restores the boundary invariants after points have been removed
// and demotes smooth points that no longer have handles.
func (c *Contour) normalize() {
	if pts := c.points.slice(); c.closed && !pts[len(pts)-1].IsOnCurve() {
		i := slices.IndexFunc(pts, PathPoint.IsOnCurve)
		if i < 0 {
			panic(fmt.Sprintf("contour %s has no on-curve points", c.id))
		}
		tracer().Debugf("contour %s: rotating by %d to restore start point", c.id, i+1)
		rotateLeft(*c.points.mut(), i+1)
	}

	if c.closed && c.points.len() < 3 {
		tracer().Debugf("contour %s: opening contour of %d points", c.id, c.points.len())
		// keep the start point first
		rotateRight(*c.points.mut(), 1)
		c.closed = false
	}

	if pts := c.points.slice(); !c.closed && !pts[0].IsOnCurve() {
		panic(fmt.Sprintf("open contour %s starts with off-curve point %s", c.id, pts[0].ID))
	}

	var demote []int
	pts := c.points.slice()
	for i, pt := range pts {
		if !pt.IsSmooth() {
			continue
		}
		p, okp := c.prevIdx(i)
		n, okn := c.nextIdx(i)
		if okp && okn && pts[p].IsOnCurve() && pts[n].IsOnCurve() {
			demote = append(demote, i)
		}
	}
	if len(demote) > 0 {
		pts := *c.points.mut()
		for _, i := range demote {
			pts[i].Type = OnCurveCorner
		}
	}
}

func rotateLeft[T any](s []T, k int) {
	if len(s) == 0 {
		return
	}
	k %= len(s)
	slices.Reverse(s[:k])
	slices.Reverse(s[k:])
	slices.Reverse(s)
}

func rotateRight[T any](s []T, k int) {
	if len(s) == 0 {
		return
	}
	rotateLeft(s, len(s)-k%len(s))
}
