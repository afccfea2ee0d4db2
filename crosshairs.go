package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Crosshairs struct {
	x, y   float32
	size   float32
	stroke float32
	color  color.RGBA
}

func NewCrosshairs(x, y float32) *Crosshairs {
	return &Crosshairs{
		x:      x,
		y:      y,
		size:   8,
		stroke: 2,
		color:  color.RGBA{255, 255, 255, 200},
	}
}

func (c *Crosshairs) Draw(screen *ebiten.Image) {
	vector.StrokeLine(screen, c.x-c.size, c.y, c.x+c.size, c.y, c.stroke, c.color, false)
	vector.StrokeLine(screen, c.x, c.y-c.size, c.x, c.y+c.size, c.stroke, c.color, false)
}
