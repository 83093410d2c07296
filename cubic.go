package contour

// CubicBez is a cubic Bézier curve. It is the geometry of a [CubicSegment].
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// deriv evaluates the first derivative at t.
func (c CubicBez) deriv(t float64) Vec2 {
	d0 := c.P1.Sub(c.P0).Mul(3)
	d1 := c.P2.Sub(c.P1).Mul(3)
	d2 := c.P3.Sub(c.P2).Mul(3)
	mt := 1.0 - t
	return d0.Mul(mt * mt).Add(d1.Mul(2 * mt * t)).Add(d2.Mul(t * t))
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(c.deriv(t0).Mul(scale))
	p2 := p3.Translate(c.deriv(t1).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

// nearestSamples is the number of intervals the curve is split into before
// refining the best candidate.
const nearestSamples = 16

// Nearest finds the nearest point to pt. The curve is sampled at evenly spaced
// parameters, and the interval around the best sample is then narrowed by
// ternary search until it is smaller than accuracy.
func (c CubicBez) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	var best option[float64]
	bestT := 0.0
	for i := range nearestSamples + 1 {
		ti := float64(i) / nearestSamples
		if d := pt.DistanceSquared(c.Eval(ti)); !best.isSet || d < best.value {
			best.set(d)
			bestT = ti
		}
	}

	lo := max(bestT-1.0/nearestSamples, 0)
	hi := min(bestT+1.0/nearestSamples, 1)
	for hi-lo > accuracy {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if pt.DistanceSquared(c.Eval(m1)) < pt.DistanceSquared(c.Eval(m2)) {
			hi = m2
		} else {
			lo = m1
		}
	}
	if tm := 0.5 * (lo + hi); pt.DistanceSquared(c.Eval(tm)) < best.value {
		bestT = tm
		best.set(pt.DistanceSquared(c.Eval(tm)))
	}
	return best.value, bestT
}
