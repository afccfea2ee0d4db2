package engine

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/trvswgnr/maze-raycaster/model"
)

// Sampler returns texels by pixel coordinate.
type Sampler interface {
	Size() (int, int)
	Sample(col, row int) color.RGBA
}

// Texture is a decoded image held as RGBA. Sampling wraps coordinates and
// always returns an opaque color.
type Texture struct {
	pix    *image.RGBA
	width  int
	height int
}

func NewTexture(img image.Image) *Texture {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || b.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	return &Texture{pix: rgba, width: b.Dx(), height: b.Dy()}
}

func (t *Texture) Size() (int, int) {
	return t.width, t.height
}

func (t *Texture) Sample(col, row int) color.RGBA {
	if t.width == 0 || t.height == 0 {
		return color.RGBA{A: 255}
	}
	col = wrap(col, t.width)
	row = wrap(row, t.height)
	c := t.pix.RGBAAt(col, row)
	c.A = 255
	return c
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Solid is a 1x1 sampler of a single color.
type Solid color.RGBA

func (s Solid) Size() (int, int) { return 1, 1 }

func (s Solid) Sample(_, _ int) color.RGBA {
	c := color.RGBA(s)
	c.A = 255
	return c
}

// Textures maps cell kinds and sprite names to samplers. It is built once at
// startup and handed to the projectors.
type Textures struct {
	walls    map[model.CellKind]Sampler
	sprites  map[string]Sampler
	fallback Sampler
}

func NewTextures() *Textures {
	return &Textures{
		walls:    make(map[model.CellKind]Sampler),
		sprites:  make(map[string]Sampler),
		fallback: Solid{0, 0, 0, 255},
	}
}

func (t *Textures) SetWall(kind model.CellKind, s Sampler) {
	t.walls[kind] = s
}

func (t *Textures) SetSprite(name string, s Sampler) {
	t.sprites[name] = s
}

func (t *Textures) SetFallback(s Sampler) {
	t.fallback = s
}

// Wall returns the texture for a cell kind, or the fallback.
func (t *Textures) Wall(kind model.CellKind) Sampler {
	if s, ok := t.walls[kind]; ok {
		return s
	}
	return t.fallback
}

// Sprite returns the texture registered under name, or nil.
func (t *Textures) Sprite(name string) Sampler {
	return t.sprites[name]
}
