package model

import (
	"github.com/harbdog/raycaster-go"
	"github.com/harbdog/raycaster-go/geom"
)

// Billboard is a point object in the world drawn as a camera-facing square.
type Billboard struct {
	Position geom.Vector2
	Texture  string
	Scale    float64
	Anchor   raycaster.SpriteAnchor
}

func NewBillboard(x, y float64, texture string) Billboard {
	return Billboard{
		Position: geom.Vector2{X: x, Y: y},
		Texture:  texture,
		Scale:    1,
		Anchor:   raycaster.AnchorCenter,
	}
}
