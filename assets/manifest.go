package assets

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/trvswgnr/maze-raycaster/engine"
	"github.com/trvswgnr/maze-raycaster/model"
	"gopkg.in/yaml.v3"
)

const DefaultTextureSize = 64

var (
	ErrUnknownPattern = errors.New("assets: unknown texture pattern")
	ErrUnknownKind    = errors.New("assets: unknown cell kind")
)

// Manifest lists the wall and sprite textures to build at startup.
type Manifest struct {
	Size     int                    `yaml:"size"`
	Fallback YAMLColor              `yaml:"fallback"`
	Walls    map[string]TextureSpec `yaml:"walls"`
	Sprites  map[string]TextureSpec `yaml:"sprites"`
}

// TextureSpec is either an image file or a generated pattern.
type TextureSpec struct {
	File    string      `yaml:"file"`
	Pattern string      `yaml:"pattern"`
	Colors  []YAMLColor `yaml:"colors"`
}

type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	c.RGBA = color.RGBA{R: r, G: g, B: b, A: 255}
	return nil
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: unmarshal manifest: %w", err)
	}
	if m.Size <= 0 {
		m.Size = DefaultTextureSize
	}
	return &m, nil
}

func LoadManifest(path string) (*Manifest, error) {
	data, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", path, err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", path, err)
	}
	return m, nil
}

// Build turns the manifest into a texture registry. Relative texture files
// resolve against dir.
func (m *Manifest) Build(dir string) (*engine.Textures, error) {
	reg := engine.NewTextures()
	reg.SetFallback(engine.Solid(m.Fallback.RGBA))

	for name, spec := range m.Walls {
		kind, ok := model.CellKindFromName(name)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownKind, name)
		}
		tex, err := m.texture(dir, spec)
		if err != nil {
			return nil, fmt.Errorf("assets: wall %s: %w", name, err)
		}
		reg.SetWall(kind, tex)
	}

	for name, spec := range m.Sprites {
		tex, err := m.texture(dir, spec)
		if err != nil {
			return nil, fmt.Errorf("assets: sprite %s: %w", name, err)
		}
		reg.SetSprite(name, tex)
	}

	return reg, nil
}

func (m *Manifest) texture(dir string, spec TextureSpec) (engine.Sampler, error) {
	if spec.File != "" {
		path := spec.File
		if !filepath.IsAbs(path) && dir != "" {
			path = filepath.Join(dir, path)
		}
		return LoadTexture(path)
	}

	colors := make([]color.RGBA, len(spec.Colors))
	for i, c := range spec.Colors {
		colors[i] = c.RGBA
	}
	img, err := Generate(spec.Pattern, m.Size, colors)
	if err != nil {
		return nil, err
	}
	return engine.NewTexture(img), nil
}
