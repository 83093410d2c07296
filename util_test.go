package contour

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var idComparer = cmp.Comparer(func(a, b EntityID) bool { return a == b })

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	opts = append(opts, idComparer)
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

type protoPoint struct {
	typ  PointType
	x, y float64
}

func on(x, y float64) protoPoint     { return protoPoint{OnCurveCorner, x, y} }
func smooth(x, y float64) protoPoint { return protoPoint{OnCurveSmooth, x, y} }
func off(x, y float64) protoPoint    { return protoPoint{OffCurve, x, y} }

// makeContour builds a contour from points in storage order and returns the
// ids of the points, in the order they were given.
func makeContour(closed bool, protos ...protoPoint) (*Contour, []EntityID) {
	id := NewContourID()
	pts := make([]PathPoint, len(protos))
	ids := make([]EntityID, len(protos))
	for i, p := range protos {
		pts[i] = PathPoint{ID: newChildID(id), Point: Pt(p.x, p.y), Type: p.typ}
		ids[i] = pts[i].ID
	}
	return FromParts(id, pts, nil, closed), ids
}

func rawIDs(c *Contour) []EntityID {
	var ids []EntityID
	for _, pt := range c.Raw() {
		ids = append(ids, pt.ID)
	}
	return ids
}

func rawTypes(c *Contour) []PointType {
	var typs []PointType
	for _, pt := range c.Raw() {
		typs = append(typs, pt.Type)
	}
	return typs
}

// checkInvariants verifies the structural invariants of c.
func checkInvariants(t *testing.T, c *Contour) {
	t.Helper()
	pts := c.Raw()
	if len(pts) == 0 {
		t.Fatal("contour is empty")
	}
	if c.Closed() {
		if !pts[len(pts)-1].IsOnCurve() {
			t.Errorf("closed contour ends with off-curve point: %v", pts)
		}
	} else if !pts[0].IsOnCurve() {
		t.Errorf("open contour starts with off-curve point: %v", pts)
	}

	run := 0
	for pt := range c.Points() {
		if pt.IsOffCurve() {
			run++
			continue
		}
		if run != 0 && run != 2 {
			t.Errorf("%d off-curve points before %s", run, pt.ID)
		}
		run = 0
	}
	if c.Closed() && run != 0 && run != 2 {
		t.Errorf("%d off-curve points before the start point", run)
	}
	if !c.Closed() && run != 0 {
		t.Errorf("open contour ends with %d off-curve points", run)
	}

	for i, pt := range pts {
		if !pt.ID.IsChildOf(c.ID()) {
			t.Errorf("point %s is not scoped to %s", pt.ID, c.ID())
		}
		if idx, ok := c.points.index(pt.ID); !ok || idx != i {
			t.Errorf("index of %s is %d, %t; want %d", pt.ID, idx, ok, i)
		}
	}
}
