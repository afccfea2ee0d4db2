package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/trvswgnr/maze-raycaster/controls"
)

const helpText = "W/S move, A/D turn, Q/E strafe, shift run, mouse look, M map, ESC exit"

func (g *Game) handleInput() {
	// if escape, exit game
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.quit = true
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.session.ToggleView()
	}

	in := controls.Intent{
		Forward:     pressed(ebiten.KeyW, ebiten.KeyUp),
		Backward:    pressed(ebiten.KeyS, ebiten.KeyDown),
		TurnLeft:    pressed(ebiten.KeyA, ebiten.KeyLeft),
		TurnRight:   pressed(ebiten.KeyD, ebiten.KeyRight),
		StrafeLeft:  pressed(ebiten.KeyQ),
		StrafeRight: pressed(ebiten.KeyE),
		Run:         ebiten.IsKeyPressed(ebiten.KeyShift),
		MouseDX:     g.mouseDelta(),
	}
	g.session.Handle(in)
}

// handleMenuInput serves the win screen.
func (g *Game) handleMenuInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.quit = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
	}
}

// pressed reports whether any of keys fires this tick, with key repeat.
func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if controls.Repeating(inpututil.KeyPressDuration(k)) {
			return true
		}
	}
	return false
}

func anyKeyPressed() bool {
	return len(inpututil.AppendJustPressedKeys(nil)) > 0 ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// mouseDelta returns the horizontal cursor travel since the last tick.
func (g *Game) mouseDelta() float64 {
	x, y := ebiten.CursorPosition()

	if g.mouseX == math.MinInt32 && g.mouseY == math.MinInt32 {
		// initialize first position to establish delta
		if x != 0 && y != 0 {
			g.mouseX, g.mouseY = x, y
		}
		return 0
	}

	dx := x - g.mouseX
	g.mouseX, g.mouseY = x, y
	return float64(dx)
}
