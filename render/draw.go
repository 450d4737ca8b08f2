package render

import (
	"github.com/lixenwraith/curvedeck/curve"
	"github.com/lixenwraith/curvedeck/line"
)

// Modulation carries the per-frame knob readings the renderer applies
// Channel factors scale curve colors by category; Glow scales line colors
type Modulation struct {
	CategoryA float32
	CategoryB float32
	CategoryC float32
	Glow      float32
}

func (m Modulation) factor(cat curve.Category) float32 {
	switch cat {
	case curve.CategoryA:
		return m.CategoryA
	case curve.CategoryB:
		return m.CategoryB
	case curve.CategoryC:
		return m.CategoryC
	}
	return 1
}

// DrawBatches plots every batch's evaluated positions
// Zipping Results[i] with curves[Members[i]] relies on the evaluation
// driver's index-alignment invariant
func DrawBatches(buf *Buffer, batches []curve.Batch, curves []curve.Curve, mod Modulation) {
	for bi := range batches {
		b := &batches[bi]
		for i, ci := range b.Members {
			if i >= len(b.Results) {
				break
			}
			c := &curves[ci]
			pos := b.Results[i]
			buf.Set(int(pos.X), int(pos.Y), c.Color.Scale(mod.factor(c.Category)))
		}
	}
}

// DrawLines draws each rotating segment pivot->end with the glow factor
// applied to its color
func DrawLines(buf *Buffer, lines []line.Rotating, mod Modulation) {
	for i := range lines {
		l := &lines[i]
		c := l.Color.Scale(mod.Glow)
		buf.Line(int(l.Pivot.X), int(l.Pivot.Y), int(l.End.X), int(l.End.Y), c)
	}
}
