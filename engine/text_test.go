package engine

import (
	"image/color"
	"testing"
)

func TestTextRendererDrawString(t *testing.T) {
	tr, err := NewTextRenderer(0)
	if err != nil {
		t.Fatalf("new text renderer: %v", err)
	}
	img := NewImage(120, 30)
	if err := tr.DrawString(img, "Score: 3", 2, 2, color.White); err != nil {
		t.Fatalf("draw string: %v", err)
	}

	lit := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 120; x++ {
			if img.RGBAAt(x, y).R > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatalf("expected glyph pixels")
	}
}
