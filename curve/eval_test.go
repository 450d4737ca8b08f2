package curve

import (
	"math"
	"testing"

	"github.com/lixenwraith/curvedeck/vmath"
)

const tolerance = 1e-4

func near(a, b vmath.Vec2) bool {
	return math.Abs(float64(a.X-b.X)) < tolerance && math.Abs(float64(a.Y-b.Y)) < tolerance
}

var evalPoints = [4]vmath.Vec2{
	{X: 0, Y: 0},
	{X: 10, Y: 40},
	{X: 50, Y: 40},
	{X: 60, Y: 0},
}

func TestEvaluateEndpoints(t *testing.T) {
	p0, p1, p2, p3 := evalPoints[0], evalPoints[1], evalPoints[2], evalPoints[3]

	tests := []struct {
		name string
		typ  Type
		t    float32
		want vmath.Vec2
	}{
		{"Linear start", Linear, 0, p0},
		{"Linear end", Linear, 1, p3},
		{"Bezier start", Bezier, 0, p0},
		{"Bezier end", Bezier, 1, p3},
		{"CatmullRom start", CatmullRom, 0, p1},
		{"CatmullRom end", CatmullRom, 1, p2},
		{"TCB start", TCB, 0, p1},
		{"TCB end", TCB, 1, p2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.typ, tt.t, p0, p1, p2, p3)
			if !near(got, tt.want) {
				t.Errorf("Evaluate(%v, %v) = %v, want %v", tt.typ, tt.t, got, tt.want)
			}
		})
	}
}

// Hermite boundaries are derived through the basis rather than assumed:
// at t=0 the blend is 1*p0 + 0*(p1-p0) + 0*p3 + 0*(p3-p2), and at t=1 it is
// 0*p0 + 0*(p1-p0) + 1*p3 + 0*(p3-p2). For this basis the boundary values
// reduce to p0 and p3; the asymmetric h01*p3 term matters away from the
// boundaries, not at them
func TestHermiteBoundaries(t *testing.T) {
	p0, p1, p2, p3 := evalPoints[0], evalPoints[1], evalPoints[2], evalPoints[3]

	hermiteAt := func(tv float32) vmath.Vec2 {
		m0 := p1.Sub(p0)
		m1 := p3.Sub(p2)
		t2 := tv * tv
		t3 := t2 * tv
		h00 := 2*t3 - 3*t2 + 1
		h10 := t3 - 2*t2 + tv
		h01 := -2*t3 + 3*t2
		h11 := t3 - t2
		return p0.Scale(h00).Add(m0.Scale(h10)).Add(p3.Scale(h01)).Add(m1.Scale(h11))
	}

	for _, tv := range []float32{0, 0.25, 0.5, 0.75, 1} {
		want := hermiteAt(tv)
		got := Evaluate(Hermite, tv, p0, p1, p2, p3)
		if !near(got, want) {
			t.Errorf("Hermite at t=%v: got %v, want %v", tv, got, want)
		}
	}

	if got := Evaluate(Hermite, 0, p0, p1, p2, p3); !near(got, p0) {
		t.Errorf("Hermite boundary at t=0: got %v, derived value is p0=%v", got, p0)
	}
	if got := Evaluate(Hermite, 1, p0, p1, p2, p3); !near(got, p3) {
		t.Errorf("Hermite boundary at t=1: got %v, derived value is p3=%v", got, p3)
	}
}

func TestHermiteTangentInfluence(t *testing.T) {
	p0 := vmath.Vec2{X: 0, Y: 0}
	p3 := vmath.Vec2{X: 10, Y: 0}

	flat := Evaluate(Hermite, 0.5, p0, p0, p3, p3) // zero tangents
	bent := Evaluate(Hermite, 0.5, p0, vmath.Vec2{X: 0, Y: 20}, p3, p3)

	if near(flat, bent) {
		t.Error("start tangent p1-p0 must influence the interior of the segment")
	}
	if !near(flat, vmath.Vec2{X: 5, Y: 0}) {
		t.Errorf("zero-tangent Hermite midpoint: got %v, want {5 0}", flat)
	}
}

func TestLinearIgnoresInnerPoints(t *testing.T) {
	p0 := vmath.Vec2{X: -4, Y: 2}
	p3 := vmath.Vec2{X: 8, Y: -6}
	junk := vmath.Vec2{X: 999, Y: -999}

	for _, tv := range []float32{0, 0.3, 0.5, 1, 1.5, -0.5} {
		a := Evaluate(Linear, tv, p0, junk, junk, p3)
		b := p0.Lerp(p3, tv)
		if !near(a, b) {
			t.Errorf("Linear at t=%v: got %v, want %v", tv, a, b)
		}
	}
}

func TestCatmullRomTCBEquivalence(t *testing.T) {
	rng := vmath.NewFastRand(99)
	for i := 0; i < 200; i++ {
		var pts [4]vmath.Vec2
		for j := range pts {
			pts[j] = vmath.Vec2{X: rng.Range(-100, 100), Y: rng.Range(-100, 100)}
		}
		tv := rng.Range(-0.5, 1.5)
		cr := Evaluate(CatmullRom, tv, pts[0], pts[1], pts[2], pts[3])
		tcb := Evaluate(TCB, tv, pts[0], pts[1], pts[2], pts[3])
		if cr != tcb {
			t.Fatalf("CatmullRom/TCB diverge at t=%v pts=%v: %v vs %v", tv, pts, cr, tcb)
		}
	}
}

func TestBezierMidpoint(t *testing.T) {
	p0, p1, p2, p3 := evalPoints[0], evalPoints[1], evalPoints[2], evalPoints[3]
	// Bernstein weights at t=0.5 are 1/8, 3/8, 3/8, 1/8
	want := p0.Scale(0.125).Add(p1.Scale(0.375)).Add(p2.Scale(0.375)).Add(p3.Scale(0.125))
	got := Evaluate(Bezier, 0.5, p0, p1, p2, p3)
	if !near(got, want) {
		t.Errorf("Bezier midpoint: got %v, want %v", got, want)
	}
}

func TestEvaluateExtrapolates(t *testing.T) {
	p0 := vmath.Vec2{X: 0, Y: 0}
	p3 := vmath.Vec2{X: 10, Y: 0}
	// t is intentionally not clamped; Linear at t=2 extrapolates past p3
	got := Evaluate(Linear, 2, p0, p0, p3, p3)
	if !near(got, vmath.Vec2{X: 20, Y: 0}) {
		t.Errorf("Linear at t=2: got %v, want {20 0}", got)
	}
}
