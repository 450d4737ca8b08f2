// Package scene builds the demo's per-scene data: curve fields classified
// into batches, rotating line sets, and the timer that rotates between them.
package scene

import (
	"github.com/lixenwraith/curvedeck/core"
	"github.com/lixenwraith/curvedeck/curve"
	"github.com/lixenwraith/curvedeck/line"
	"github.com/lixenwraith/curvedeck/vmath"
)

// Scene is one self-contained visual set
//
// Curves are finalized at construction and classified exactly once; batches
// index into the Curves slice, which never grows afterward. Regeneration
// replaces the whole Scene rather than mutating a referenced slice
type Scene struct {
	Name    string
	Curves  []curve.Curve
	Batches []curve.Batch
	Lines   []line.Rotating
}

// Params bounds randomized generation for one scene build
type Params struct {
	Area       vmath.Vec2 // world units == buffer pixels
	CurveCount int
	LineCount  int
	Seed       uint64
}

var curvePalette = []core.RGB{
	{R: 255, G: 60, B: 130},
	{R: 60, G: 200, B: 255},
	{R: 255, G: 200, B: 60},
	{R: 140, G: 255, B: 90},
	{R: 200, G: 120, B: 255},
}

// randomCurve picks a type, a category, and four control points inside area
// Control points are built as a jittered left-to-right chain so every type
// produces something arc-like rather than scribble
func randomCurve(rng *vmath.FastRand, area vmath.Vec2) curve.Curve {
	typ := curve.CanonicalOrder[rng.Intn(len(curve.CanonicalOrder))]

	baseY := rng.Range(0, area.Y)
	spread := rng.Range(area.X*0.2, area.X*0.6)
	x0 := rng.Range(0, area.X-spread)
	wobble := area.Y * 0.3

	var pts [4]vmath.Vec2
	for i := range pts {
		pts[i] = vmath.Vec2{
			X: x0 + spread*float32(i)/3,
			Y: vmath.Clamp(baseY+rng.Range(-wobble, wobble), 0, area.Y-1),
		}
	}

	return curve.Curve{
		Type:     typ,
		Points:   pts,
		Color:    curvePalette[rng.Intn(len(curvePalette))],
		Category: curve.Category(rng.Intn(3)),
	}
}

// CurveField builds a scene of randomized curves, no lines
func CurveField(p Params) *Scene {
	rng := vmath.NewFastRand(p.Seed)
	curves := make([]curve.Curve, 0, p.CurveCount)
	for i := 0; i < p.CurveCount; i++ {
		curves = append(curves, randomCurve(rng, p.Area))
	}
	return &Scene{
		Name:    "curve field",
		Curves:  curves,
		Batches: curve.Classify(curves),
	}
}

// LineStorm builds a scene of rotating lines, no curves
func LineStorm(p Params) *Scene {
	rng := vmath.NewFastRand(p.Seed)
	cfg := lineConfig(p.Area)
	return &Scene{
		Name:  "line storm",
		Lines: line.Generate(p.LineCount, cfg, rng),
	}
}

// Combined builds a scene with both layers active
func Combined(p Params) *Scene {
	rng := vmath.NewFastRand(p.Seed)
	curves := make([]curve.Curve, 0, p.CurveCount)
	for i := 0; i < p.CurveCount; i++ {
		curves = append(curves, randomCurve(rng, p.Area))
	}
	return &Scene{
		Name:    "combined",
		Curves:  curves,
		Batches: curve.Classify(curves),
		Lines:   line.Generate(p.LineCount/2, lineConfig(p.Area), rng),
	}
}

// lineConfig scales the default length range down to the viewport when the
// stock 50-150 unit range would overflow a small terminal
func lineConfig(area vmath.Vec2) line.Config {
	cfg := line.DefaultConfig(area)
	limit := min(area.X, area.Y) * 0.45
	if cfg.LengthMax > limit {
		scale := limit / cfg.LengthMax
		cfg.LengthMin *= scale
		cfg.LengthMax = limit
	}
	return cfg
}
