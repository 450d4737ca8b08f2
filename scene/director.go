package scene

import "github.com/lixenwraith/curvedeck/vmath"

// Builder constructs a scene from generation parameters
type Builder func(Params) *Scene

// Director owns the scene rotation: a fixed playlist of builders, each
// active for Duration seconds of demo time, rebuilt with a fresh seed on
// every entry so no two passes through the playlist look alike
type Director struct {
	builders []Builder
	params   Params
	duration float32

	index   int
	elapsed float32
	seed    *vmath.FastRand
	active  *Scene
}

// NewDirector creates a director over the standard playlist
func NewDirector(params Params, duration float32) *Director {
	d := &Director{
		builders: []Builder{CurveField, LineStorm, Combined},
		params:   params,
		duration: duration,
		seed:     vmath.NewFastRand(params.Seed),
	}
	d.rebuild()
	return d
}

// Active returns the current scene
func (d *Director) Active() *Scene {
	return d.active
}

// Advance accumulates demo time and rotates to the next scene when the
// current one expires. Returns true when the scene changed
func (d *Director) Advance(dt float32) bool {
	d.elapsed += dt
	if d.elapsed < d.duration {
		return false
	}
	d.elapsed = 0
	d.index = (d.index + 1) % len(d.builders)
	d.rebuild()
	return true
}

// Resize rebuilds the active scene for a new viewport
func (d *Director) Resize(area vmath.Vec2) {
	d.params.Area = area
	d.rebuild()
}

func (d *Director) rebuild() {
	p := d.params
	p.Seed = d.seed.Next()
	d.active = d.builders[d.index](p)
}
