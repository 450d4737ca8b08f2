package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/curvedeck/knob"
)

const hudBarWidth = 10

var (
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	hudDimStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	hudBarStyle = tcell.StyleDefault.Foreground(tcell.ColorAqua)
)

// DrawText writes a string starting at (x, y) in screen cells
func DrawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// DrawHUD renders the knob overlay: one row per knob with name, value and a
// fill bar showing value position inside [min, max]
func DrawHUD(screen tcell.Screen, x, y int, states []knob.State) {
	for row, st := range states {
		label := fmt.Sprintf("%-12s %6.3f ", st.Name, st.Value)
		DrawText(screen, x, y+row, hudStyle, label)

		span := st.Max - st.Min
		fill := 0
		if span > 0 {
			fill = int((st.Value - st.Min) / span * hudBarWidth)
		}
		if fill > hudBarWidth {
			fill = hudBarWidth
		}
		bx := x + len(label)
		for i := 0; i < hudBarWidth; i++ {
			r := '░'
			style := hudDimStyle
			if i < fill {
				r = '█'
				style = hudBarStyle
			}
			screen.SetContent(bx+i, y+row, r, nil, style)
		}
	}
}

// DrawStatus writes the one-line scene/timing readout
// silent flags a speaker that failed to open, so a muted-looking show on a
// machine with no audio device is visibly the machine's doing
func DrawStatus(screen tcell.Screen, y int, scene string, fps float64, paused, silent bool) {
	text := fmt.Sprintf(" %s  %5.1f fps ", scene, fps)
	if paused {
		text += " [paused] "
	}
	if silent {
		text += " [no audio] "
	}
	DrawText(screen, 0, y, hudDimStyle, text)
}
