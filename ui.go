// ui.go
package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/trvswgnr/maze-raycaster/engine"
)

var hudColor = color.RGBA{255, 255, 255, 255}

func (g *Game) drawHUD(dst *engine.Image) {
	lines := []string{
		fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()),
		fmt.Sprintf("Score: %d", g.session.World.Score),
	}
	for i, line := range lines {
		if err := g.text.DrawString(dst, line, 10, 10+i*(engine.DefaultFontSize+4), hudColor); err != nil {
			log.Printf("hud: %v", err)
			return
		}
	}
}
