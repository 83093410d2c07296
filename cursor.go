package contour

// Cursor is a position in a contour. Moving past either end of an open contour
// leaves the cursor without a position; in a closed contour it wraps around.
//
// A cursor is only valid until the contour is modified through any means other
// than the cursor itself.
type Cursor struct {
	idx option[int]
	c   *Contour
}

// Cursor returns a cursor at the start point of c.
func (c *Contour) Cursor() Cursor {
	cur := Cursor{c: c}
	if !c.points.isEmpty() {
		cur.idx.set(c.firstIdx())
	}
	return cur
}

// CursorAt returns a cursor at the point with the given id. If there is no
// such point, the cursor has no position.
func (c *Contour) CursorAt(id EntityID) Cursor {
	cur := Cursor{c: c}
	if idx, ok := c.points.index(id); ok {
		cur.idx.set(idx)
	}
	return cur
}

// Point returns the point at the cursor.
func (cur *Cursor) Point() (PathPoint, bool) {
	idx, ok := cur.idx.get()
	if !ok {
		return PathPoint{}, false
	}
	return cur.c.points.slice()[idx], true
}

// Update calls f on the point at the cursor, in place. f may change any
// property of the point, including its id.
func (cur *Cursor) Update(f func(pt *PathPoint)) bool {
	idx, ok := cur.idx.get()
	if !ok {
		return false
	}
	f(&(*cur.c.points.mut())[idx])
	return true
}

func (cur *Cursor) MoveNext() {
	idx, ok := cur.idx.get()
	if !ok {
		return
	}
	if next, ok := cur.c.nextIdx(idx); ok {
		cur.idx.set(next)
	} else {
		cur.idx.clear()
	}
}

func (cur *Cursor) MovePrev() {
	idx, ok := cur.idx.get()
	if !ok {
		return
	}
	if prev, ok := cur.c.prevIdx(idx); ok {
		cur.idx.set(prev)
	} else {
		cur.idx.clear()
	}
}

// PeekNext returns the point after the cursor without moving it.
func (cur *Cursor) PeekNext() (PathPoint, bool) {
	idx, ok := cur.idx.get()
	if !ok {
		return PathPoint{}, false
	}
	next, ok := cur.c.nextIdx(idx)
	if !ok {
		return PathPoint{}, false
	}
	return cur.c.points.slice()[next], true
}

// PeekPrev returns the point before the cursor without moving it.
func (cur *Cursor) PeekPrev() (PathPoint, bool) {
	idx, ok := cur.idx.get()
	if !ok {
		return PathPoint{}, false
	}
	prev, ok := cur.c.prevIdx(idx)
	if !ok {
		return PathPoint{}, false
	}
	return cur.c.points.slice()[prev], true
}
