package engine

import (
	"image"
	"image/color"
	"math"
)

// FillRect paints a clipped rectangle on any surface.
func FillRect(dst Surface, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetRGBA(x, y, c)
		}
	}
}

// FillCircle paints every pixel within radius of (x, y).
func FillCircle(dst Surface, x, y, radius float64, c color.RGBA) {
	rSquared := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= rSquared {
				dst.SetRGBA(int(x+dx), int(y+dy), c)
			}
		}
	}
}

// StrokeLine draws a one pixel line by stepping along its length.
func StrokeLine(dst Surface, x1, y1, x2, y2 float64, c color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	distance := math.Hypot(dx, dy)
	if distance == 0 {
		dst.SetRGBA(int(x1), int(y1), c)
		return
	}
	dx /= distance
	dy /= distance

	for i := 0.0; i <= distance; i++ {
		dst.SetRGBA(int(x1+dx*i), int(y1+dy*i), c)
	}
}
