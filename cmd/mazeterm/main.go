// Command mazeterm plays the maze in a terminal. Each character cell shows
// two frame pixels using the upper half block.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/trvswgnr/maze-raycaster/assets"
	"github.com/trvswgnr/maze-raycaster/config"
	"github.com/trvswgnr/maze-raycaster/engine"
	"github.com/trvswgnr/maze-raycaster/session"
)

const tick = 33 * time.Millisecond

const statusHelp = "arrows/WASD move, Q/E strafe, M map, R restart, ESC quit"

func main() {
	flags := config.Flags(os.Args[0])
	logPath := flags.String("log", "mazeterm.log", "log file, the terminal is busy drawing")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	if f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	cfg, err := config.Load("", flags)
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("mazeterm: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("mazeterm: init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	cols, rows := screen.Size()
	s, err := session.New(cfg, cols, frameHeight(rows))
	if err != nil {
		return err
	}
	t := &term{screen: screen, session: s, frame: engine.NewImage(cols, frameHeight(rows))}

	var reloads chan string
	if cfg.Maze.Watch {
		if w, err := assets.NewWatcher(cfg.Maze.Path); err == nil {
			defer w.Close()
			reloads = w.Events
		} else {
			log.Printf("not watching %s: %v", cfg.Maze.Path, err)
		}
	}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !t.handle(ev) {
				return nil
			}
		case _, ok := <-reloads:
			if !ok {
				reloads = nil
				continue
			}
			if err := s.Reload(); err != nil {
				log.Printf("reload: %v", err)
			}
		case <-ticker.C:
			t.draw()
		}
	}
}

// frameHeight leaves the last terminal row for the status line.
func frameHeight(rows int) int {
	return max(rows-1, 1) * 2
}

type term struct {
	screen  tcell.Screen
	session *session.Session
	frame   *engine.Image
}

// handle applies one terminal event and reports whether to keep running.
func (t *term) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		t.frame = engine.NewImage(cols, frameHeight(rows))
		t.session.Resize(cols, frameHeight(rows))
		t.screen.Sync()
	case *tcell.EventKey:
		act, in := keyAction(ev)
		switch act {
		case actionQuit:
			return false
		case actionToggleView:
			t.session.ToggleView()
		case actionRestart:
			if err := t.session.Restart(); err != nil {
				log.Printf("restart: %v", err)
			}
		case actionMove:
			t.session.Handle(in)
		}
	}
	return true
}

func (t *term) draw() {
	t.session.Render(t.frame)
	blit(t.frame, t.screen.SetContent)

	status := fmt.Sprintf(" score %d  %s", t.session.World.Score, statusHelp)
	if t.session.World.Won {
		status = fmt.Sprintf(" you found the exit! score %d  R restart, ESC quit", t.session.World.Score)
	}
	drawText(t.screen.SetContent, 0, t.frame.Height()/2, status)
	t.screen.Show()
}
