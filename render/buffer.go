// Package render plots world-space geometry into an RGB buffer with 2x
// vertical sub-cell resolution and flushes it to a tcell screen using
// half-block characters.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/curvedeck/core"
)

// HalfBlock maps a cell's upper pixel to the glyph foreground and the lower
// pixel to the background, doubling vertical resolution on a terminal grid
const HalfBlock = '▀' // ▀

// Buffer is a pixel grid of width x 2*height RGB values
// Pixel y counts down from the top, matching terminal rows
type Buffer struct {
	width  int
	height int // terminal rows; pixel rows = 2*height
	pixels []core.RGB
}

// NewBuffer creates a buffer for a width x height cell area
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		pixels: make([]core.RGB, width*height*2),
	}
}

// Width returns the buffer width in cells
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in cells
func (b *Buffer) Height() int {
	return b.height
}

// PixelHeight returns the buffer height in pixels (2 per cell row)
func (b *Buffer) PixelHeight() int {
	return b.height * 2
}

// Resize reallocates the pixel grid; content is not preserved because the
// next frame repaints everything anyway
func (b *Buffer) Resize(width, height int) {
	b.width = width
	b.height = height
	b.pixels = make([]core.RGB, width*height*2)
}

// Clear fades every pixel toward black by the persistence factor
// persistence 0 clears hard; higher values leave trails
func (b *Buffer) Clear(persistence float32) {
	if persistence <= 0 {
		clear(b.pixels)
		return
	}
	for i := range b.pixels {
		b.pixels[i] = b.pixels[i].Blend(core.RGBBlack, 1-persistence)
	}
}

// Set plots one pixel additively (light accumulation where points overlap)
// Out-of-bounds coordinates are dropped, not clamped
func (b *Buffer) Set(x, y int, c core.RGB) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height*2 {
		return
	}
	i := y*b.width + x
	b.pixels[i] = b.pixels[i].Add(c)
}

// At returns the pixel at (x, y), black when out of bounds
func (b *Buffer) At(x, y int) core.RGB {
	if x < 0 || x >= b.width || y < 0 || y >= b.height*2 {
		return core.RGBBlack
	}
	return b.pixels[y*b.width+x]
}

// Line draws a 1-pixel Bresenham segment between pixel coordinates
func (b *Buffer) Line(x0, y0, x1, y1 int, c core.RGB) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		b.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Flush writes the pixel grid to the screen as half-block cells
// Row r takes pixel row 2r as foreground and 2r+1 as background
func (b *Buffer) Flush(screen tcell.Screen) {
	for row := 0; row < b.height; row++ {
		top := row * 2 * b.width
		bot := top + b.width
		for col := 0; col < b.width; col++ {
			upper := b.pixels[top+col]
			lower := b.pixels[bot+col]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(upper.R), int32(upper.G), int32(upper.B))).
				Background(tcell.NewRGBColor(int32(lower.R), int32(lower.G), int32(lower.B)))
			screen.SetContent(col, row, HalfBlock, nil, style)
		}
	}
}
