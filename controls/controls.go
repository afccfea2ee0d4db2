// Package controls turns device-independent player intents into viewer moves.
// Both the window and the terminal front-ends feed it.
package controls

import (
	"github.com/trvswgnr/maze-raycaster/config"
	"github.com/trvswgnr/maze-raycaster/model"
)

const (
	// key repeat, in ticks
	RepeatDelay    = 15
	RepeatInterval = 4

	DefaultRunFactor = 2.0
)

// Intent is what the player asked for during one tick.
type Intent struct {
	Forward, Backward       bool
	TurnLeft, TurnRight     bool
	StrafeLeft, StrafeRight bool
	Run                     bool

	// MouseDX is the horizontal pointer travel in pixels since the last tick.
	MouseDX float64
}

type Mapper struct {
	Step             float64
	Turn             float64
	MouseSensitivity float64
	RunFactor        float64
}

func NewMapper(cfg config.MovementConfig) Mapper {
	return Mapper{
		Step:             cfg.Step,
		Turn:             cfg.Turn(),
		MouseSensitivity: cfg.MouseSensitivity,
		RunFactor:        DefaultRunFactor,
	}
}

// Move converts an intent into a delta. Opposing keys cancel out.
func (m Mapper) Move(in Intent) model.Move {
	scale := 1.0
	if in.Run && m.RunFactor > 0 {
		scale = m.RunFactor
	}

	var out model.Move
	out.Forward = axis(in.Forward, in.Backward) * m.Step * scale
	out.Strafe = axis(in.StrafeRight, in.StrafeLeft) * m.Step * scale
	out.Turn = axis(in.TurnRight, in.TurnLeft)*m.Turn + in.MouseDX*m.MouseSensitivity
	return out
}

func axis(pos, neg bool) float64 {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	}
	return 0
}

// Repeating reports whether a key held for duration ticks should fire this
// tick: once on press, then every RepeatInterval ticks after RepeatDelay.
func Repeating(duration int) bool {
	if duration == 1 {
		return true
	}
	return duration >= RepeatDelay && (duration-RepeatDelay)%RepeatInterval == 0
}
