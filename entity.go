package contour

import (
	"fmt"
	"sync/atomic"
)

var nextEntity atomic.Uint64

// EntityID identifies a contour or a point. Point ids are scoped to the
// contour they belong to; the scope is part of the id, so an id cannot be
// confused with a point of another contour.
//
// The zero value is not a valid id.
type EntityID struct {
	parent uint64
	local  uint64
}

func nextLocal() uint64 {
	return nextEntity.Add(1)
}

// NewContourID returns a fresh, globally unique contour id.
func NewContourID() EntityID {
	return EntityID{local: nextLocal()}
}

// newChildID returns a fresh id scoped to parent.
func newChildID(parent EntityID) EntityID {
	return EntityID{parent: parent.local, local: nextLocal()}
}

// IsChildOf reports whether id is scoped to parent.
func (id EntityID) IsChildOf(parent EntityID) bool {
	return id.parent != 0 && id.parent == parent.local
}

// Parent returns the id of the contour id is scoped to.
func (id EntityID) Parent() EntityID {
	return EntityID{local: id.parent}
}

func (id EntityID) IsZero() bool {
	return id == EntityID{}
}

func (id EntityID) String() string {
	if id.parent == 0 {
		return fmt.Sprintf("id%d", id.local)
	}
	return fmt.Sprintf("id%d.%d", id.parent, id.local)
}

// PointType is the curve role of a point.
type PointType uint8

const (
	// OnCurveCorner is a path vertex without tangent constraints.
	OnCurveCorner PointType = iota + 1
	// OnCurveSmooth is a path vertex whose adjacent handles stay collinear
	// through it.
	OnCurveSmooth
	// OffCurve is a Bézier control point.
	OffCurve
)

func (typ PointType) IsOnCurve() bool {
	return typ == OnCurveCorner || typ == OnCurveSmooth
}

func (typ PointType) String() string {
	switch typ {
	case OnCurveCorner:
		return "Corner"
	case OnCurveSmooth:
		return "Smooth"
	case OffCurve:
		return "OffCurve"
	default:
		return fmt.Sprintf("PointType(%d)", typ)
	}
}

// PathPoint is a point of a contour. It is a plain value: copies do not alias
// the contour, and the only stable way to refer to a point across mutations is
// its ID.
type PathPoint struct {
	ID    EntityID
	Point Point
	Type  PointType
}

// OnCurvePoint returns a new corner point scoped to the contour parent.
func OnCurvePoint(parent EntityID, pt Point) PathPoint {
	return PathPoint{ID: newChildID(parent), Point: pt, Type: OnCurveCorner}
}

// SmoothPoint returns a new smooth on-curve point scoped to the contour parent.
func SmoothPoint(parent EntityID, pt Point) PathPoint {
	return PathPoint{ID: newChildID(parent), Point: pt, Type: OnCurveSmooth}
}

// OffCurvePoint returns a new control point scoped to the contour parent.
func OffCurvePoint(parent EntityID, pt Point) PathPoint {
	return PathPoint{ID: newChildID(parent), Point: pt, Type: OffCurve}
}

func (pp PathPoint) IsOnCurve() bool  { return pp.Type.IsOnCurve() }
func (pp PathPoint) IsOffCurve() bool { return pp.Type == OffCurve }
func (pp PathPoint) IsSmooth() bool   { return pp.Type == OnCurveSmooth }

// ToggleType switches an on-curve point between corner and smooth. Off-curve
// points are left alone.
func (pp *PathPoint) ToggleType() {
	switch pp.Type {
	case OnCurveCorner:
		pp.Type = OnCurveSmooth
	case OnCurveSmooth:
		pp.Type = OnCurveCorner
	}
}

// Reparent rescopes the point to the contour parent, keeping its local
// identity.
func (pp *PathPoint) Reparent(parent EntityID) {
	pp.ID.parent = parent.local
}

func (pp *PathPoint) transform(aff Affine, anchor Point) {
	pp.Point = pp.Point.TransformAbout(aff, anchor)
}

func (pp PathPoint) String() string {
	return fmt.Sprintf("%s %s%s", pp.ID, pp.Type, pp.Point)
}
