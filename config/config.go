package config

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/harbdog/raycaster-go"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "MAZE"

const (
	ModeProjected = "3d"
	ModeTopDown   = "2d"
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Screen      ScreenConfig      `mapstructure:"screen"`
	View        ViewConfig        `mapstructure:"view"`
	Maze        MazeConfig        `mapstructure:"maze"`
	Textures    TexturesConfig    `mapstructure:"textures"`
	Minimap     MinimapConfig     `mapstructure:"minimap"`
	Movement    MovementConfig    `mapstructure:"movement"`
	Render      RenderConfig      `mapstructure:"render"`
	NPC         NPCConfig         `mapstructure:"npc"`
	Collectible CollectibleConfig `mapstructure:"collectible"`
}

type ScreenConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type ViewConfig struct {
	FOVDegrees   float64 `mapstructure:"fov_degrees"`
	AngleDegrees float64 `mapstructure:"angle_degrees"`
	Mode         string  `mapstructure:"mode"`
}

type MazeConfig struct {
	Path string `mapstructure:"path"`
	// CellSize of zero fits the maze to the screen.
	CellSize float64 `mapstructure:"cell_size"`
	Watch    bool    `mapstructure:"watch"`
}

type TexturesConfig struct {
	Manifest string `mapstructure:"manifest"`
}

type MinimapConfig struct {
	Size int `mapstructure:"size"`
}

type MovementConfig struct {
	Step             float64 `mapstructure:"step"`
	TurnDegrees      float64 `mapstructure:"turn_degrees"`
	MouseSensitivity float64 `mapstructure:"mouse_sensitivity"`
}

type RenderConfig struct {
	RayStep     float64 `mapstructure:"ray_step"`
	MaxDistance float64 `mapstructure:"max_distance"`
	Workers     int     `mapstructure:"workers"`
	SideShade   float64 `mapstructure:"side_shade"`
}

type NPCConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Texture string  `mapstructure:"texture"`
	X       float64 `mapstructure:"x"`
	Y       float64 `mapstructure:"y"`
	Scale   float64 `mapstructure:"scale"`
	Anchor  string  `mapstructure:"anchor"`
}

type CollectibleConfig struct {
	Texture string `mapstructure:"texture"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("screen.width", 1300)
	v.SetDefault("screen.height", 900)
	v.SetDefault("screen.title", "Maze")

	v.SetDefault("view.fov_degrees", 60)
	v.SetDefault("view.angle_degrees", 60)
	v.SetDefault("view.mode", ModeProjected)

	v.SetDefault("maze.path", "assets/maze.txt")
	v.SetDefault("maze.cell_size", 0)
	v.SetDefault("maze.watch", true)

	v.SetDefault("textures.manifest", "assets/textures.yaml")

	v.SetDefault("minimap.size", 200)

	v.SetDefault("movement.step", 10)
	v.SetDefault("movement.turn_degrees", 18)
	v.SetDefault("movement.mouse_sensitivity", 0.005)

	v.SetDefault("render.ray_step", 0)
	v.SetDefault("render.max_distance", 0)
	v.SetDefault("render.workers", runtime.NumCPU())
	v.SetDefault("render.side_shade", 0.7)

	v.SetDefault("npc.enabled", true)
	v.SetDefault("npc.texture", "cat")
	v.SetDefault("npc.x", 300.26)
	v.SetDefault("npc.y", 218.68)
	v.SetDefault("npc.scale", 1)
	v.SetDefault("npc.anchor", "center")

	v.SetDefault("collectible.texture", "carrot")
}

// Flags returns the command line overrides understood by Load.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a yaml, toml or json config file")
	fs.String("maze", "", "maze file (.txt or .png)")
	fs.String("mode", "", "start view: 3d or 2d")
	fs.Int("width", 0, "screen width")
	fs.Int("height", 0, "screen height")
	fs.Int("workers", 0, "parallel column bands")
	return fs
}

var flagKeys = map[string]string{
	"maze":    "maze.path",
	"mode":    "view.mode",
	"width":   "screen.width",
	"height":  "screen.height",
	"workers": "render.workers",
}

// Load resolves configuration from defaults, an optional config file,
// MAZE_* environment variables and changed flags, in increasing priority.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if path == "" {
			if f := flags.Lookup("config"); f != nil {
				path = f.Value.String()
			}
		}
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.View.FOVDegrees <= 0 || c.View.FOVDegrees >= 180:
		return fmt.Errorf("%w: fov_degrees %f must be in (0, 180)", ErrInvalid, c.View.FOVDegrees)
	case c.View.Mode != ModeProjected && c.View.Mode != ModeTopDown:
		return fmt.Errorf("%w: view mode %q", ErrInvalid, c.View.Mode)
	case c.Maze.Path == "":
		return fmt.Errorf("%w: maze path is empty", ErrInvalid)
	case c.Maze.CellSize < 0:
		return fmt.Errorf("%w: cell_size %f", ErrInvalid, c.Maze.CellSize)
	case c.Textures.Manifest == "":
		return fmt.Errorf("%w: texture manifest is empty", ErrInvalid)
	case c.Minimap.Size < 0 || c.Minimap.Size > min(c.Screen.Width, c.Screen.Height):
		return fmt.Errorf("%w: minimap size %d", ErrInvalid, c.Minimap.Size)
	case c.Movement.Step <= 0 || c.Movement.TurnDegrees <= 0:
		return fmt.Errorf("%w: movement steps must be positive", ErrInvalid)
	case c.Render.RayStep < 0 || c.Render.MaxDistance < 0 || c.Render.Workers < 0:
		return fmt.Errorf("%w: render settings must not be negative", ErrInvalid)
	case c.Render.SideShade < 0 || c.Render.SideShade > 1:
		return fmt.Errorf("%w: side_shade %f must be in [0, 1]", ErrInvalid, c.Render.SideShade)
	}
	if _, err := c.NPC.SpriteAnchor(); err != nil {
		return err
	}
	return nil
}

func (c ViewConfig) FOV() float64 {
	return c.FOVDegrees * math.Pi / 180
}

func (c ViewConfig) Angle() float64 {
	return c.AngleDegrees * math.Pi / 180
}

func (c MovementConfig) Turn() float64 {
	return c.TurnDegrees * math.Pi / 180
}

func (c NPCConfig) SpriteAnchor() (raycaster.SpriteAnchor, error) {
	switch strings.ToLower(c.Anchor) {
	case "", "center":
		return raycaster.AnchorCenter, nil
	case "bottom":
		return raycaster.AnchorBottom, nil
	case "top":
		return raycaster.AnchorTop, nil
	}
	return raycaster.AnchorCenter, fmt.Errorf("%w: npc anchor %q", ErrInvalid, c.Anchor)
}

// CellSize returns the configured cell size, or the largest whole size that
// fits the maze on screen.
func (c *Config) CellSize(cols, rows int) float64 {
	if c.Maze.CellSize > 0 {
		return c.Maze.CellSize
	}
	if cols <= 0 || rows <= 0 {
		return 1
	}
	return float64(max(min(c.Screen.Width/cols, c.Screen.Height/rows), 1))
}
