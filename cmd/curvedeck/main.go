package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/curvedeck/audio"
	"github.com/lixenwraith/curvedeck/config"
	"github.com/lixenwraith/curvedeck/engine"
)

var (
	deckFlag = flag.String("deck", "", "Path to a TOML deck file (built-in deck if empty)")
	muteFlag = flag.Bool("mute", false, "Disable the beat track")
	seedFlag = flag.Uint64("seed", 0, "Scene generation seed (0 = time-based)")
)

func main() {
	// Ensure the terminal is restored even if a frame panics
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\ncurvedeck crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	deck := config.Default()
	if *deckFlag != "" {
		var err error
		deck, err = config.Load(*deckFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load deck: %v\n", err)
			os.Exit(1)
		}
	}
	if *seedFlag != 0 {
		deck.Scene.Seed = *seedFlag
	}
	if *muteFlag {
		deck.Audio.Enabled = false
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	// Speaker failure is non-fatal; the demo runs silent
	pulse := audio.NewPulse(!deck.Audio.Enabled)
	defer pulse.Close()

	engine.New(screen, deck, pulse).Run()
}
