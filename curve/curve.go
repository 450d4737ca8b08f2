package curve

import (
	"github.com/lixenwraith/curvedeck/core"
	"github.com/lixenwraith/curvedeck/vmath"
)

// Type identifies the evaluation formula for a cubic segment
// Closed set; adding a kind requires an evaluator case and a classifier bucket
type Type uint8

const (
	Bezier Type = iota
	CatmullRom
	Linear
	Hermite
	TCB
	typeCount
)

// CanonicalOrder is the fixed batch emission order
// Classification output is deterministic because batches always appear in this sequence
var CanonicalOrder = [typeCount]Type{Bezier, CatmullRom, Linear, Hermite, TCB}

// String returns the type name for HUD and test output
func (t Type) String() string {
	switch t {
	case Bezier:
		return "bezier"
	case CatmullRom:
		return "catmull-rom"
	case Linear:
		return "linear"
	case Hermite:
		return "hermite"
	case TCB:
		return "tcb"
	}
	return "unknown"
}

// Category selects which knob group modulates a curve's color at render time
type Category uint8

const (
	CategoryA Category = iota
	CategoryB
	CategoryC
)

// Curve is one cubic segment: four control points whose meaning depends on Type
// Immutable after creation except for Color/Category, which only the renderer reads
type Curve struct {
	Type     Type
	Points   [4]vmath.Vec2
	Color    core.RGB
	Category Category
}
