package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/trvswgnr/maze-raycaster/engine"
	_ "golang.org/x/image/bmp"
)

const (
	brickRows   = 4
	brickMortar = 2
	checkerSize = 8
	stripeWidth = 8
)

var patterns = map[string]func(img *image.RGBA, size int, fg, bg color.RGBA){
	"solid":   drawSolid,
	"checker": drawChecker,
	"brick":   drawBrick,
	"stripes": drawStripes,
	"disc":    drawDisc,
}

// Generate draws a size x size texture. The first color is the pattern's
// foreground, the second its background; missing colors default to white
// and black.
func Generate(pattern string, size int, colors []color.RGBA) (*image.RGBA, error) {
	draw, ok := patterns[pattern]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPattern, pattern)
	}
	if size <= 0 {
		size = DefaultTextureSize
	}

	fg := color.RGBA{255, 255, 255, 255}
	bg := color.RGBA{0, 0, 0, 255}
	if len(colors) > 0 {
		fg = colors[0]
	}
	if len(colors) > 1 {
		bg = colors[1]
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw(img, size, fg, bg)
	return img, nil
}

func drawSolid(img *image.RGBA, size int, fg, _ color.RGBA) {
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, fg)
		}
	}
}

func drawChecker(img *image.RGBA, size int, fg, bg color.RGBA) {
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/checkerSize+y/checkerSize)%2 == 0 {
				img.SetRGBA(x, y, fg)
			} else {
				img.SetRGBA(x, y, bg)
			}
		}
	}
}

// drawBrick lays running bond courses: fg bricks, bg mortar.
func drawBrick(img *image.RGBA, size int, fg, bg color.RGBA) {
	course := max(size/brickRows, 1)
	brickW := max(size/2, 1)
	for y := 0; y < size; y++ {
		row := y / course
		shift := 0
		if row%2 == 1 {
			shift = brickW / 2
		}
		for x := 0; x < size; x++ {
			mortar := y%course < brickMortar || (x+shift)%brickW < brickMortar
			if mortar {
				img.SetRGBA(x, y, bg)
			} else {
				img.SetRGBA(x, y, fg)
			}
		}
	}
}

func drawStripes(img *image.RGBA, size int, fg, bg color.RGBA) {
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/stripeWidth)%2 == 0 {
				img.SetRGBA(x, y, fg)
			} else {
				img.SetRGBA(x, y, bg)
			}
		}
	}
}

func drawDisc(img *image.RGBA, size int, fg, bg color.RGBA) {
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, fg)
			} else {
				img.SetRGBA(x, y, bg)
			}
		}
	}
}

// LoadTexture decodes a png, jpeg, gif or bmp image from disk or the
// embedded assets.
func LoadTexture(path string) (*engine.Texture, error) {
	data, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return engine.NewTexture(img), nil
}
