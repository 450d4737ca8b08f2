package curve

import "github.com/lixenwraith/curvedeck/vmath"

// Evaluate maps (type, t, control points) to a position
// t is nominally in [0,1] but is not clamped; out-of-range t extrapolates
// per the formula, and range policy belongs to the caller
// All evaluators are total: no failure mode, no allocation
func Evaluate(typ Type, t float32, p0, p1, p2, p3 vmath.Vec2) vmath.Vec2 {
	switch typ {
	case Bezier:
		return evalBezier(t, p0, p1, p2, p3)
	case CatmullRom:
		return evalCatmullRom(t, p0, p1, p2, p3)
	case Linear:
		return evalLinear(t, p0, p3)
	case Hermite:
		return evalHermite(t, p0, p1, p2, p3)
	case TCB:
		// Degenerate Kochanek-Bartels (tension=continuity=bias=0) collapses
		// to Catmull-Rom; kept as a distinct case so nonzero t/c/b can be
		// added without touching callers
		return evalCatmullRom(t, p0, p1, p2, p3)
	}
	return vmath.Vec2{}
}

// evalLinear interpolates the endpoints only; p1, p2 are ignored
func evalLinear(t float32, p0, p3 vmath.Vec2) vmath.Vec2 {
	return p0.Scale(1 - t).Add(p3.Scale(t))
}

// evalBezier is the cubic Bernstein blend of all four points
func evalBezier(t float32, p0, p1, p2, p3 vmath.Vec2) vmath.Vec2 {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return p0.Scale(b0).Add(p1.Scale(b1)).Add(p2.Scale(b2)).Add(p3.Scale(b3))
}

// evalCatmullRom passes through p1..p2; p0 and p3 flank the segment and
// shape the tangents (0.5-matrix form)
func evalCatmullRom(t float32, p0, p1, p2, p3 vmath.Vec2) vmath.Vec2 {
	t2 := t * t
	t3 := t2 * t
	c0 := -t3 + 2*t2 - t
	c1 := 3*t3 - 5*t2 + 2
	c2 := -3*t3 + 4*t2 + t
	c3 := t3 - t2
	return p0.Scale(c0).Add(p1.Scale(c1)).Add(p2.Scale(c2)).Add(p3.Scale(c3)).Scale(0.5)
}

// evalHermite blends endpoints p0/p3 with tangents derived from the point
// pairs (p1-p0, p3-p2) using the h00/h10/h01/h11 cubic Hermite basis
//
// The h01 term multiplies p3 directly rather than a second endpoint slot, so
// the boundary values are not simply p0 and p3. This asymmetry is the
// intended shape; do not "fix" it to the textbook parameterization without
// re-checking the visual output it was tuned against
func evalHermite(t float32, p0, p1, p2, p3 vmath.Vec2) vmath.Vec2 {
	m0 := p1.Sub(p0)
	m1 := p3.Sub(p2)
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return p0.Scale(h00).Add(m0.Scale(h10)).Add(p3.Scale(h01)).Add(m1.Scale(h11))
}
