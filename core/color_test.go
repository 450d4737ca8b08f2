package core

import "testing"

func TestScale(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 50}

	if got := c.Scale(0.5); got != (RGB{R: 100, G: 50, B: 25}) {
		t.Errorf("Scale(0.5): got %v", got)
	}
	if got := c.Scale(0); got != RGBBlack {
		t.Errorf("Scale(0) must black out, got %v", got)
	}
	if got := c.Scale(2); got != c {
		t.Errorf("Scale above 1 must pass through, got %v", got)
	}
}

func TestBlend(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 0}

	if got := c.Blend(RGBBlack, 0); got != c {
		t.Errorf("alpha 0 keeps dst, got %v", got)
	}
	if got := c.Blend(RGBWhite, 1); got != RGBWhite {
		t.Errorf("alpha 1 takes src, got %v", got)
	}
	mid := c.Blend(RGBBlack, 0.5)
	if mid.R != 100 || mid.G != 50 || mid.B != 0 {
		t.Errorf("half blend toward black: got %v", mid)
	}
}

func TestAddClamps(t *testing.T) {
	c := RGB{R: 200, G: 10, B: 255}
	got := c.Add(RGB{R: 100, G: 5, B: 1})
	if got != (RGB{R: 255, G: 15, B: 255}) {
		t.Errorf("additive blend: got %v", got)
	}
}
