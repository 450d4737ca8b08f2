// Package line animates segments spinning around fixed pivots, the demo's
// secondary visual layer alongside the curve field.
package line

import (
	"math"

	"github.com/lixenwraith/curvedeck/core"
	"github.com/lixenwraith/curvedeck/vmath"
)

// Rotating is a segment spinning around its pivot at a fixed angular rate
// Start and Pivot never move; Update rewrites End each tick
type Rotating struct {
	Pivot      vmath.Vec2
	Start      vmath.Vec2
	End        vmath.Vec2
	Color      core.RGB
	AngularVel float32 // rad/sec, signed
}

// Config bounds the randomized generation ranges
type Config struct {
	Area       vmath.Vec2 // pivots land in [0,Area.X) x [0,Area.Y)
	LengthMin  float32
	LengthMax  float32
	MaxAngular float32 // magnitude cap, rad/sec
	Palette    []core.RGB
}

// DefaultConfig returns the base generation ranges
func DefaultConfig(area vmath.Vec2) Config {
	return Config{
		Area:       area,
		LengthMin:  50,
		LengthMax:  150,
		MaxAngular: 2,
		Palette: []core.RGB{
			{R: 255, G: 80, B: 80},
			{R: 80, G: 255, B: 120},
			{R: 100, G: 140, B: 255},
			{R: 255, G: 220, B: 90},
		},
	}
}

// Generate produces count lines with randomized pivot, length, initial
// angle, and signed angular velocity inside cfg's ranges
// The same seed reproduces the same field
func Generate(count int, cfg Config, rng *vmath.FastRand) []Rotating {
	lines := make([]Rotating, 0, count)
	for i := 0; i < count; i++ {
		pivot := vmath.Vec2{
			X: rng.Range(0, cfg.Area.X),
			Y: rng.Range(0, cfg.Area.Y),
		}
		length := rng.Range(cfg.LengthMin, cfg.LengthMax)
		angle := rng.Range(0, 2*math.Pi)
		arm := vmath.Vec2{X: length, Y: 0}.Rotate(angle)

		var color core.RGB
		if len(cfg.Palette) > 0 {
			color = cfg.Palette[rng.Intn(len(cfg.Palette))]
		} else {
			color = core.RGBWhite
		}

		end := pivot.Add(arm)
		lines = append(lines, Rotating{
			Pivot:      pivot,
			Start:      end,
			End:        end,
			Color:      color,
			AngularVel: rng.Sign() * rng.Range(0, cfg.MaxAngular),
		})
	}
	return lines
}

// Update rotates each line's pivot->end arm by AngularVel*dt
// O(n), no failure modes; Start and Pivot are invariant
func Update(lines []Rotating, dt float32) {
	for i := range lines {
		l := &lines[i]
		arm := l.End.Sub(l.Pivot)
		l.End = l.Pivot.Add(arm.Rotate(l.AngularVel * dt))
	}
}
