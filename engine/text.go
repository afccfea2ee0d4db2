package engine

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const DefaultFontSize = 14

// TextRenderer rasterises HUD text straight into a framebuffer, so the
// terminal front-end shows the same overlay as the window.
type TextRenderer struct {
	font *truetype.Font
	size float64
}

func NewTextRenderer(size float64) (*TextRenderer, error) {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("engine: parse font: %w", err)
	}
	if size <= 0 {
		size = DefaultFontSize
	}
	return &TextRenderer{font: f, size: size}, nil
}

// DrawString draws s with its top-left corner at (x, y).
func (t *TextRenderer) DrawString(dst draw.Image, s string, x, y int, c color.Color) error {
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(t.font)
	ctx.SetFontSize(t.size)
	ctx.SetHinting(font.HintingFull)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(c))

	pt := freetype.Pt(x, y+int(ctx.PointToFixed(t.size)>>6))
	if _, err := ctx.DrawString(s, pt); err != nil {
		return fmt.Errorf("engine: draw string: %w", err)
	}
	return nil
}
