package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/harbdog/raycaster-go"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Screen.Width != 1300 || cfg.Screen.Height != 900 {
		t.Fatalf("unexpected screen %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if math.Abs(cfg.View.FOV()-math.Pi/3) > 1e-12 {
		t.Fatalf("expected fov pi/3, got %f", cfg.View.FOV())
	}
	if math.Abs(cfg.Movement.Turn()-math.Pi/10) > 1e-12 {
		t.Fatalf("expected turn pi/10, got %f", cfg.Movement.Turn())
	}
	if cfg.View.Mode != ModeProjected {
		t.Fatalf("expected 3d mode, got %q", cfg.View.Mode)
	}
	if cfg.Render.Workers < 1 {
		t.Fatalf("expected at least one worker")
	}
	if cfg.NPC.Texture != "cat" || cfg.Collectible.Texture != "carrot" {
		t.Fatalf("unexpected sprite textures")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("MAZE_SCREEN_WIDTH", "640")
	t.Setenv("MAZE_VIEW_MODE", "2d")
	t.Setenv("MAZE_RENDER_SIDE_SHADE", "0.5")

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Screen.Width != 640 {
		t.Fatalf("expected width 640, got %d", cfg.Screen.Width)
	}
	if cfg.View.Mode != ModeTopDown {
		t.Fatalf("expected 2d mode, got %q", cfg.View.Mode)
	}
	if cfg.Render.SideShade != 0.5 {
		t.Fatalf("expected side shade 0.5, got %f", cfg.Render.SideShade)
	}
}

func TestLoadFileAndFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.yaml")
	data := []byte("screen:\n  width: 800\n  height: 600\nmaze:\n  path: levels/one.txt\n  cell_size: 32\nnpc:\n  anchor: bottom\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fs := Flags("test")
	if err := fs.Parse([]string{"--config", path, "--height", "500"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load("", fs)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Screen.Width != 800 {
		t.Fatalf("expected width from file, got %d", cfg.Screen.Width)
	}
	if cfg.Screen.Height != 500 {
		t.Fatalf("expected height from flag, got %d", cfg.Screen.Height)
	}
	if cfg.Maze.Path != "levels/one.txt" || cfg.CellSize(10, 10) != 32 {
		t.Fatalf("unexpected maze settings %+v", cfg.Maze)
	}
	anchor, err := cfg.NPC.SpriteAnchor()
	if err != nil || anchor != raycaster.AnchorBottom {
		t.Fatalf("expected bottom anchor, got %v (%v)", anchor, err)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml"), nil); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero_width", func(c *Config) { c.Screen.Width = 0 }},
		{"fov_too_wide", func(c *Config) { c.View.FOVDegrees = 180 }},
		{"bad_mode", func(c *Config) { c.View.Mode = "4d" }},
		{"no_maze", func(c *Config) { c.Maze.Path = "" }},
		{"negative_cell", func(c *Config) { c.Maze.CellSize = -1 }},
		{"huge_minimap", func(c *Config) { c.Minimap.Size = 5000 }},
		{"no_step", func(c *Config) { c.Movement.Step = 0 }},
		{"negative_workers", func(c *Config) { c.Render.Workers = -1 }},
		{"shade_above_one", func(c *Config) { c.Render.SideShade = 1.5 }},
		{"bad_anchor", func(c *Config) { c.NPC.Anchor = "left" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := Load("", nil)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			c.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestCellSizeFitsScreen(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// 1300/21 = 61, 900/13 = 69
	if got := cfg.CellSize(21, 13); got != 61 {
		t.Fatalf("expected 61, got %f", got)
	}
	if got := cfg.CellSize(5000, 5000); got != 1 {
		t.Fatalf("expected minimum of 1, got %f", got)
	}
}
