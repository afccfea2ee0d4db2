// Package session wires configuration, assets, the world and the renderer
// together for a front-end.
package session

import (
	"bytes"
	"fmt"
	"log"
	"path/filepath"

	"github.com/trvswgnr/maze-raycaster/assets"
	"github.com/trvswgnr/maze-raycaster/config"
	"github.com/trvswgnr/maze-raycaster/controls"
	"github.com/trvswgnr/maze-raycaster/engine"
	"github.com/trvswgnr/maze-raycaster/model"
)

type Session struct {
	Config   *config.Config
	World    *model.World
	Renderer *engine.Renderer
	Controls controls.Mapper

	npc     *model.Billboard
	topDown bool
}

// New builds a session rendering into width x height frames.
func New(cfg *config.Config, width, height int) (*Session, error) {
	grid, err := LoadMaze(cfg)
	if err != nil {
		return nil, err
	}

	manifest, err := assets.LoadManifest(cfg.Textures.Manifest)
	if err != nil {
		return nil, err
	}
	textures, err := manifest.Build(filepath.Dir(cfg.Textures.Manifest))
	if err != nil {
		return nil, err
	}

	r := engine.NewRenderer(width, height, textures)
	r.Cast = engine.CastOptions{Step: cfg.Render.RayStep, MaxDistance: cfg.Render.MaxDistance}
	r.Workers = cfg.Render.Workers
	r.SideShade = cfg.Render.SideShade

	world, err := model.NewWorld(grid, cfg.View.Angle(), cfg.View.FOV())
	if err != nil {
		return nil, fmt.Errorf("session: %s: %w", cfg.Maze.Path, err)
	}

	s := &Session{
		Config:   cfg,
		World:    world,
		Renderer: r,
		Controls: controls.NewMapper(cfg.Movement),
		topDown:  cfg.View.Mode == config.ModeTopDown,
	}
	s.Resize(width, height)

	if cfg.NPC.Enabled {
		anchor, err := cfg.NPC.SpriteAnchor()
		if err != nil {
			return nil, err
		}
		npc := model.NewBillboard(cfg.NPC.X, cfg.NPC.Y, cfg.NPC.Texture)
		npc.Scale = cfg.NPC.Scale
		npc.Anchor = anchor
		s.npc = &npc
	}

	log.Printf("maze %s: %dx%d cells of %.0f units", cfg.Maze.Path, grid.Cols(), grid.Rows(), grid.CellSize())
	return s, nil
}

// LoadMaze reads the configured maze from disk, or from the embedded assets
// when the path does not exist, and sizes its cells.
func LoadMaze(cfg *config.Config) (*model.Grid, error) {
	data, err := assets.Load(cfg.Maze.Path)
	if err != nil {
		return nil, fmt.Errorf("session: load maze %s: %w", cfg.Maze.Path, err)
	}
	grid, err := model.ReadGrid(cfg.Maze.Path, bytes.NewReader(data), 1)
	if err != nil {
		return nil, fmt.Errorf("session: %s: %w", cfg.Maze.Path, err)
	}
	return grid.WithCellSize(cfg.CellSize(grid.Cols(), grid.Rows()))
}

// Handle applies one tick of input to the world.
func (s *Session) Handle(in controls.Intent) model.Outcome {
	out := s.World.Step(s.Controls.Move(in))
	switch out {
	case model.OutcomeCollected:
		log.Printf("collected, score %d", s.World.Score)
	case model.OutcomeWon:
		log.Printf("reached the goal with score %d", s.World.Score)
	}
	return out
}

// Reload swaps in the maze file's current contents. The score is kept. A
// maze that fails to load or has nowhere to stand leaves the world as is.
func (s *Session) Reload() error {
	grid, err := LoadMaze(s.Config)
	if err != nil {
		return err
	}
	if err := s.World.ReplaceGrid(grid); err != nil {
		return fmt.Errorf("session: reload %s: %w", s.Config.Maze.Path, err)
	}
	log.Printf("reloaded maze %s", s.Config.Maze.Path)
	return nil
}

// Restart starts a fresh run of the maze.
func (s *Session) Restart() error {
	grid, err := LoadMaze(s.Config)
	if err != nil {
		return err
	}
	world, err := model.NewWorld(grid, s.Config.View.Angle(), s.Config.View.FOV())
	if err != nil {
		return fmt.Errorf("session: restart %s: %w", s.Config.Maze.Path, err)
	}
	s.World = world
	return nil
}

// Resize changes the frame size the renderer targets. The minimap shrinks to
// fit small frames.
func (s *Session) Resize(width, height int) {
	s.Renderer.Width, s.Renderer.Height = width, height
	s.Renderer.Minimap = nil
	if size := min(s.Config.Minimap.Size, width/3, height/3); size > 0 {
		s.Renderer.Minimap = engine.MinimapAt(width, height, size)
	}
}

func (s *Session) TopDown() bool { return s.topDown }

func (s *Session) ToggleView() {
	s.topDown = !s.topDown
}

// Sprites returns the billboards of this frame: the remaining collectibles
// followed by the npc.
func (s *Session) Sprites() []model.Billboard {
	sprites := s.World.Collectibles(s.Config.Collectible.Texture)
	if s.npc != nil {
		sprites = append(sprites, *s.npc)
	}
	return sprites
}

// Render draws the current view into dst.
func (s *Session) Render(dst *engine.Image) {
	if s.topDown {
		s.Renderer.RenderTopDown(dst, s.World.Grid, *s.World.Viewer)
		return
	}
	s.Renderer.RenderFrame(dst, s.World.Grid, *s.World.Viewer, s.Sprites())
}
