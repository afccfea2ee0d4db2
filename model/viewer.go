package model

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// Viewer is the camera: a world position, an unbounded facing angle in
// radians and a fixed field of view.
type Viewer struct {
	Position geom.Vector2
	Angle    float64
	FOV      float64
}

func NewViewer(x, y, angle, fov float64) *Viewer {
	return &Viewer{
		Position: geom.Vector2{X: x, Y: y},
		Angle:    angle,
		FOV:      fov,
	}
}

// Move is a movement delta computed by an input layer for one tick.
// Forward and Strafe are world units, Turn is radians.
type Move struct {
	Forward float64
	Strafe  float64
	Turn    float64
}

func (m Move) IsZero() bool {
	return m.Forward == 0 && m.Strafe == 0 && m.Turn == 0
}

// Direction returns the unit facing vector.
func (v Viewer) Direction() (float64, float64) {
	return math.Cos(v.Angle), math.Sin(v.Angle)
}

// Target computes where a move would put the viewer without applying it.
// The turn is applied first so forward motion follows the new heading.
func (v Viewer) Target(m Move) (geom.Vector2, float64) {
	angle := v.Angle + m.Turn
	dirX, dirY := math.Cos(angle), math.Sin(angle)

	// strafe right is a quarter turn clockwise on a y-down grid
	rightX, rightY := -dirY, dirX

	return geom.Vector2{
		X: v.Position.X + dirX*m.Forward + rightX*m.Strafe,
		Y: v.Position.Y + dirY*m.Forward + rightY*m.Strafe,
	}, angle
}

// Apply is the single place the viewer is mutated.
func (v *Viewer) Apply(pos geom.Vector2, angle float64) {
	v.Position = pos
	v.Angle = angle
}
