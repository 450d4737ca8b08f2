// Package engine runs the frame-stepped demo: the per-tick update order,
// the sweep of the curve parameter, live knob input, and the render pass.
package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/curvedeck/audio"
	"github.com/lixenwraith/curvedeck/config"
	"github.com/lixenwraith/curvedeck/curve"
	"github.com/lixenwraith/curvedeck/knob"
	"github.com/lixenwraith/curvedeck/line"
	"github.com/lixenwraith/curvedeck/render"
	"github.com/lixenwraith/curvedeck/scene"
	"github.com/lixenwraith/curvedeck/vmath"
)

// Knob names the engine reads each frame; a deck may omit any of them and
// the store's zero-on-unknown contract keeps the frame loop total
const (
	KnobColorA      = "color_a"
	KnobColorB      = "color_b"
	KnobColorC      = "color_c"
	KnobSweepRate   = "sweep_rate"
	KnobLineGlow    = "line_glow"
	KnobPersistence = "persistence"
	KnobBeatRate    = "beat_rate"
	KnobBeatPitch   = "beat_pitch"
)

const beatLength = 90 * time.Millisecond

// Demo owns all per-run state and the frame loop
type Demo struct {
	screen   tcell.Screen
	buf      *render.Buffer
	store    *knob.Store
	director *scene.Director
	pulse    *audio.Pulse
	clock    *FrameClock

	wave   audio.Wave
	bounce []bounceKnob

	// Curve parameter sweep: t ping-pongs through [0,1] at sweep_rate
	sweepT   float32
	sweepDir float32

	beatAccum float32
	paused    bool
	showHUD   bool
}

// bounceKnob caches bounds so the reversal check does not re-snapshot
type bounceKnob struct {
	name     string
	min, max float32
}

// New assembles a demo from a deck configuration
func New(screen tcell.Screen, deck config.Deck, pulse *audio.Pulse) *Demo {
	width, height := screen.Size()

	store := knob.NewStore(deck.Specs())
	var bounce []bounceKnob
	for _, st := range store.Snapshot() {
		for _, name := range deck.BounceNames() {
			if st.Name == name {
				bounce = append(bounce, bounceKnob{name: name, min: st.Min, max: st.Max})
			}
		}
	}

	seed := deck.Scene.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	d := &Demo{
		screen: screen,
		buf:    render.NewBuffer(width, height),
		store:  store,
		director: scene.NewDirector(scene.Params{
			Area:       vmath.Vec2{X: float32(width), Y: float32(height * 2)},
			CurveCount: deck.Scene.CurveCount,
			LineCount:  deck.Scene.LineCount,
			Seed:       seed,
		}, deck.Scene.Duration),
		pulse:    pulse,
		clock:    NewFrameClock(0.1),
		wave:     parseWave(deck.Audio.Wave),
		bounce:   bounce,
		sweepDir: 1,
		showHUD:  true,
	}
	if pulse != nil && !deck.Audio.Enabled {
		pulse.SetMuted(true)
	}
	return d
}

func parseWave(name string) audio.Wave {
	switch name {
	case "square":
		return audio.WaveSquare
	case "saw":
		return audio.WaveSaw
	}
	return audio.WaveSine
}

// Step advances one frame of demo time
// Update order: knobs integrate, bounce reversal, sweep advances, lines
// rotate, scene timer, batch evaluation at the new t, beat timing
func (d *Demo) Step(dt float32) {
	if d.paused {
		return
	}

	d.store.Update(dt)
	d.applyBounce()
	d.advanceSweep(dt)

	active := d.director.Active()
	line.Update(active.Lines, dt)

	if d.director.Advance(dt) {
		active = d.director.Active()
	}
	curve.EvaluateAll(active.Batches, active.Curves, d.sweepT)

	d.advanceBeat(dt)
}

// applyBounce reverses a bounce knob's velocity when its value saturates,
// turning the store's clamp into a ping-pong. Implemented on the store's
// public contract; the integrator itself stays pure clamp semantics
func (d *Demo) applyBounce() {
	if len(d.bounce) == 0 {
		return
	}
	states := make(map[string]knob.State)
	for _, st := range d.store.Snapshot() {
		states[st.Name] = st
	}
	for _, b := range d.bounce {
		st, ok := states[b.name]
		if !ok {
			continue
		}
		if (st.Value >= b.max && st.Velocity > 0) || (st.Value <= b.min && st.Velocity < 0) {
			d.store.SetVelocity(b.name, -st.Velocity)
		}
	}
}

func (d *Demo) advanceSweep(dt float32) {
	rate := d.store.Get(KnobSweepRate)
	d.sweepT += d.sweepDir * rate * dt
	if d.sweepT > 1 {
		d.sweepT = 2 - d.sweepT
		d.sweepDir = -1
	} else if d.sweepT < 0 {
		d.sweepT = -d.sweepT
		d.sweepDir = 1
	}
}

func (d *Demo) advanceBeat(dt float32) {
	if d.pulse == nil {
		return
	}
	rate := d.store.Get(KnobBeatRate)
	if rate <= 0 {
		d.beatAccum = 0
		return
	}
	d.beatAccum += dt
	interval := 1 / rate
	if d.beatAccum >= interval {
		d.beatAccum -= interval
		d.pulse.Beat(float64(d.store.Get(KnobBeatPitch)), beatLength, d.wave)
	}
}

// Render draws the current frame state to the screen
func (d *Demo) Render() {
	d.buf.Clear(d.store.Get(KnobPersistence))

	mod := render.Modulation{
		CategoryA: d.store.Get(KnobColorA),
		CategoryB: d.store.Get(KnobColorB),
		CategoryC: d.store.Get(KnobColorC),
		Glow:      d.store.Get(KnobLineGlow),
	}
	active := d.director.Active()
	render.DrawBatches(d.buf, active.Batches, active.Curves, mod)
	render.DrawLines(d.buf, active.Lines, mod)

	d.buf.Flush(d.screen)
	if d.showHUD {
		render.DrawHUD(d.screen, 1, 1, d.store.Snapshot())
	}
	silent := d.pulse != nil && d.pulse.Silent()
	render.DrawStatus(d.screen, d.buf.Height()-1, active.Name, d.clock.FPS(), d.paused, silent)
	d.screen.Show()
}

// Run drives the demo until quit. Input arrives on a poll goroutine; the
// frame ticker owns all state mutation, so live knob tweaks go through the
// store's locked API and nothing else is shared
func (d *Demo) Run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- d.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !d.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			d.Step(d.clock.Tick())
			d.Render()
		}
	}
}

// handleEvent processes one input event; false means quit
func (d *Demo) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		width, height := ev.Size()
		d.buf.Resize(width, height)
		d.director.Resize(vmath.Vec2{X: float32(width), Y: float32(height * 2)})
		d.screen.Sync()

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			return d.handleRune(ev.Rune())
		}
	}
	return true
}

// handleRune maps live-performance keys onto the knob store
// Every binding goes through Get/Set/NudgeVelocity, so a deck that lacks a
// knob simply renders the key inert
func (d *Demo) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ':
		d.paused = !d.paused
	case 'h':
		d.showHUD = !d.showHUD
	case 'n':
		d.director.Advance(1e9) // force the rotation timer past its deadline
	case 'm':
		if d.pulse != nil {
			d.pulse.SetMuted(true)
		}
	case 'M':
		if d.pulse != nil {
			d.pulse.SetMuted(false)
		}
	case '1':
		d.store.NudgeVelocity(KnobColorA, 0.05)
	case '2':
		d.store.NudgeVelocity(KnobColorB, 0.05)
	case '3':
		d.store.NudgeVelocity(KnobColorC, 0.05)
	case '[':
		d.store.Set(KnobSweepRate, d.store.Get(KnobSweepRate)*0.8)
	case ']':
		d.store.Set(KnobSweepRate, d.store.Get(KnobSweepRate)*1.25)
	case ',':
		d.store.Set(KnobBeatRate, d.store.Get(KnobBeatRate)-0.25)
	case '.':
		d.store.Set(KnobBeatRate, d.store.Get(KnobBeatRate)+0.25)
	case 'g':
		d.store.NudgeVelocity(KnobLineGlow, -0.05)
	case 'G':
		d.store.NudgeVelocity(KnobLineGlow, 0.05)
	}
	return true
}
