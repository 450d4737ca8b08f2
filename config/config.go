// Package config loads deck files: the TOML description of a performance's
// knob set, scene rotation, and audio behavior.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/curvedeck/knob"
)

// Knob is one knob row in a deck file
// Bounce marks knobs whose velocity the engine reverses at the bounds so
// the value ping-pongs instead of saturating
type Knob struct {
	Name     string  `toml:"name"`
	Value    float32 `toml:"value"`
	Min      float32 `toml:"min"`
	Max      float32 `toml:"max"`
	Velocity float32 `toml:"velocity"`
	Bounce   bool    `toml:"bounce"`
}

// Scene configures the rotation playlist
type Scene struct {
	Duration   float32 `toml:"duration"` // seconds per scene
	CurveCount int     `toml:"curve_count"`
	LineCount  int     `toml:"line_count"`
	Seed       uint64  `toml:"seed"` // 0 picks a time-based seed
}

// Audio configures the beat track
type Audio struct {
	Enabled bool   `toml:"enabled"`
	Wave    string `toml:"wave"` // sine, square, saw
}

// Deck is a full performance configuration
type Deck struct {
	Knobs []Knob `toml:"knob"`
	Scene Scene  `toml:"scene"`
	Audio Audio  `toml:"audio"`
}

// Default returns the built-in deck used when no file is given
func Default() Deck {
	return Deck{
		Knobs: []Knob{
			{Name: "color_a", Value: 0.9, Min: 0.2, Max: 1, Velocity: -0.11, Bounce: true},
			{Name: "color_b", Value: 0.4, Min: 0.2, Max: 1, Velocity: 0.17, Bounce: true},
			{Name: "color_c", Value: 0.7, Min: 0.2, Max: 1, Velocity: -0.07, Bounce: true},
			{Name: "sweep_rate", Value: 0.3, Min: 0.05, Max: 2, Velocity: 0},
			{Name: "line_glow", Value: 0.9, Min: 0.1, Max: 1, Velocity: -0.04, Bounce: true},
			{Name: "persistence", Value: 0.55, Min: 0, Max: 0.92, Velocity: 0},
			{Name: "beat_rate", Value: 1.5, Min: 0, Max: 6, Velocity: 0},
			{Name: "beat_pitch", Value: 220, Min: 80, Max: 880, Velocity: 0},
		},
		Scene: Scene{
			Duration:   12,
			CurveCount: 48,
			LineCount:  14,
		},
		Audio: Audio{
			Enabled: true,
			Wave:    "sine",
		},
	}
}

// Load reads a deck file and fills unset sections from the defaults
func Load(path string) (Deck, error) {
	deck := Default()
	var fromFile Deck
	md, err := toml.DecodeFile(path, &fromFile)
	if err != nil {
		return Deck{}, fmt.Errorf("deck %s: %w", path, err)
	}

	if len(fromFile.Knobs) > 0 {
		deck.Knobs = fromFile.Knobs
	}
	if fromFile.Scene.Duration > 0 {
		deck.Scene.Duration = fromFile.Scene.Duration
	}
	if fromFile.Scene.CurveCount > 0 {
		deck.Scene.CurveCount = fromFile.Scene.CurveCount
	}
	if fromFile.Scene.LineCount > 0 {
		deck.Scene.LineCount = fromFile.Scene.LineCount
	}
	if fromFile.Scene.Seed != 0 {
		deck.Scene.Seed = fromFile.Scene.Seed
	}
	// Booleans and strings have no unset sentinel, so audio merges on
	// key presence rather than zero values
	if md.IsDefined("audio", "enabled") {
		deck.Audio.Enabled = fromFile.Audio.Enabled
	}
	if md.IsDefined("audio", "wave") {
		deck.Audio.Wave = fromFile.Audio.Wave
	}

	return deck, validate(deck)
}

func validate(d Deck) error {
	seen := make(map[string]bool, len(d.Knobs))
	for _, k := range d.Knobs {
		if k.Name == "" {
			return fmt.Errorf("deck: knob with empty name")
		}
		if seen[k.Name] {
			return fmt.Errorf("deck: duplicate knob %q", k.Name)
		}
		seen[k.Name] = true
	}
	switch d.Audio.Wave {
	case "sine", "square", "saw":
	default:
		return fmt.Errorf("deck: unknown wave %q", d.Audio.Wave)
	}
	return nil
}

// Specs converts the deck's knob rows into store specs
func (d Deck) Specs() []knob.Spec {
	specs := make([]knob.Spec, 0, len(d.Knobs))
	for _, k := range d.Knobs {
		specs = append(specs, knob.Spec{
			Name:     k.Name,
			Value:    k.Value,
			Min:      k.Min,
			Max:      k.Max,
			Velocity: k.Velocity,
		})
	}
	return specs
}

// BounceNames returns the knobs flagged for velocity reversal at the bounds
func (d Deck) BounceNames() []string {
	var names []string
	for _, k := range d.Knobs {
		if k.Bounce {
			names = append(names, k.Name)
		}
	}
	return names
}
