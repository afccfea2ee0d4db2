package main

import (
	"errors"
	"log"
	"math"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/trvswgnr/maze-raycaster/assets"
	"github.com/trvswgnr/maze-raycaster/config"
	"github.com/trvswgnr/maze-raycaster/engine"
	"github.com/trvswgnr/maze-raycaster/session"
)

type gameState int

const (
	stateIntro gameState = iota
	statePlaying
	stateWon
)

// main game object
type Game struct {
	cfg     *config.Config
	session *session.Session
	state   gameState

	screenWidth  int
	screenHeight int

	//--frame is rendered on the CPU and uploaded to scene each Draw--//
	frame *engine.Image
	scene *ebiten.Image
	text  *engine.TextRenderer

	watcher *assets.Watcher

	mouseX, mouseY int
	quit           bool

	crosshairs *Crosshairs
	introUI    *ebitenui.UI
	wonUI      *ebitenui.UI
	wonScore   *widget.Text
}

// NewGame loads the maze and assets and prepares the window.
func NewGame(cfg *config.Config) (*Game, error) {
	w, h := cfg.Screen.Width, cfg.Screen.Height

	s, err := session.New(cfg, w, h)
	if err != nil {
		return nil, err
	}
	text, err := engine.NewTextRenderer(engine.DefaultFontSize)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:          cfg,
		session:      s,
		state:        stateIntro,
		screenWidth:  w,
		screenHeight: h,
		frame:        engine.NewImage(w, h),
		scene:        ebiten.NewImage(w, h),
		text:         text,
		mouseX:       math.MinInt32,
		mouseY:       math.MinInt32,
		crosshairs:   NewCrosshairs(float32(w)/2, float32(h)/2),
	}
	g.introUI = NewIntroUI(g)
	g.wonUI = NewWonUI(g)

	if cfg.Maze.Watch {
		watcher, err := assets.NewWatcher(cfg.Maze.Path)
		if err != nil {
			// embedded mazes have nothing on disk to watch
			log.Printf("not watching %s: %v", cfg.Maze.Path, err)
		} else {
			g.watcher = watcher
		}
	}

	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetWindowSize(w, h)
	return g, nil
}

// Run is the Ebiten Run loop caller
func (g *Game) Run() error {
	defer g.Close()

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// Layout takes the outside size (e.g., the window size) and returns the (logical) screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth, g.screenHeight
}

// Update runs the input phase. The world is only written here, never in Draw.
func (g *Game) Update() error {
	g.applyReloads()

	switch g.state {
	case stateIntro:
		g.introUI.Update()
		if anyKeyPressed() {
			g.start()
		}
	case stateWon:
		g.wonUI.Update()
		g.handleMenuInput()
	case statePlaying:
		g.handleInput()
		if g.session.World.Won {
			g.state = stateWon
			g.updateWonScore()
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		}
	}

	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) start() {
	g.state = statePlaying
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	g.mouseX, g.mouseY = math.MinInt32, math.MinInt32
}

func (g *Game) restart() {
	if err := g.session.Restart(); err != nil {
		log.Printf("restart: %v", err)
		return
	}
	g.start()
}

// applyReloads drains pending maze changes from the watcher.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if err := g.session.Reload(); err != nil {
				log.Printf("reload: %v", err)
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Render(g.frame)
	g.drawHUD(g.frame)

	g.scene.WritePixels(g.frame.Pix)
	screen.DrawImage(g.scene, nil)

	switch g.state {
	case stateIntro:
		g.introUI.Draw(screen)
	case stateWon:
		g.wonUI.Draw(screen)
	case statePlaying:
		if !g.session.TopDown() {
			g.crosshairs.Draw(screen)
		}
		ebitenutil.DebugPrintAt(screen, helpText, 10, g.screenHeight-20)
	}
}
