package main

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/trvswgnr/maze-raycaster/controls"
	"github.com/trvswgnr/maze-raycaster/engine"
)

type action int

const (
	actionNone action = iota
	actionMove
	actionToggleView
	actionRestart
	actionQuit
)

type setContentFunc func(x, y int, primary rune, combining []rune, style tcell.Style)

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

var runeIntents = map[rune]controls.Intent{
	'w': {Forward: true},
	's': {Backward: true},
	'a': {TurnLeft: true},
	'd': {TurnRight: true},
	'q': {StrafeLeft: true},
	'e': {StrafeRight: true},
}

// keyAction maps a key event to an action. Terminals report presses only,
// so every event is one step. Shifted letters run.
func keyAction(ev *tcell.EventKey) (action, controls.Intent) {
	var in controls.Intent
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit, in
	case tcell.KeyUp:
		in.Forward = true
	case tcell.KeyDown:
		in.Backward = true
	case tcell.KeyLeft:
		in.TurnLeft = true
	case tcell.KeyRight:
		in.TurnRight = true
	case tcell.KeyRune:
		return runeAction(ev.Rune())
	default:
		return actionNone, in
	}
	return actionMove, in
}

func runeAction(r rune) (action, controls.Intent) {
	switch unicode.ToLower(r) {
	case 'm':
		return actionToggleView, controls.Intent{}
	case 'r':
		return actionRestart, controls.Intent{}
	}
	in, ok := runeIntents[unicode.ToLower(r)]
	if !ok {
		return actionNone, in
	}
	in.Run = unicode.IsUpper(r)
	return actionMove, in
}

// blit draws frame with one '▀' per pair of pixel rows: the foreground is
// the upper pixel and the background the lower one.
func blit(frame *engine.Image, set setContentFunc) {
	for y := 0; y+1 < frame.Height(); y += 2 {
		for x := 0; x < frame.Width(); x++ {
			top, bottom := frame.RGBAAt(x, y), frame.RGBAAt(x, y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			set(x, y/2, '▀', nil, style)
		}
	}
}

func drawText(set setContentFunc, x, y int, s string) {
	for _, r := range s {
		set(x, y, r, nil, statusStyle)
		x++
	}
}
