package engine

import (
	"image/color"
	"math"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/trvswgnr/maze-raycaster/model"
)

// MinWallDistance is the distance at or below which a hit draws nothing.
const MinWallDistance = 0.01

// Stripe is one projected wall column. Rows [Top, Bottom) are painted and
// Top+Bottom always equals the screen height.
type Stripe struct {
	Top, Bottom int
	Height      float64
	Offset      float64
	Kind        model.CellKind
	Side        Side
}

// Empty reports whether the stripe covers no rows.
func (s Stripe) Empty() bool {
	return s.Bottom <= s.Top
}

// ProjectWall turns a hit into a stripe centred on the screen midline. It
// returns false for misses and degenerate distances.
func ProjectWall(hit RayHit, screenHeight int, dpp, cellSize float64) (Stripe, bool) {
	if !hit.Hit || hit.Distance <= MinWallDistance {
		return Stripe{}, false
	}

	height := dpp / hit.Distance * cellSize
	top := int(math.Round(geom.Clamp(float64(screenHeight)/2-height/2, 0, float64((screenHeight+1)/2))))
	if height < 0.5 {
		// under half a pixel tall: empty even when the midline splits a row
		top = (screenHeight + 1) / 2
	}

	return Stripe{
		Top:    top,
		Bottom: screenHeight - top,
		Height: height,
		Offset: hit.Offset,
		Kind:   hit.Kind,
		Side:   hit.Side,
	}, true
}

// DrawStripe paints column x of dst with tex. shade in (0, 1] darkens the
// texels; anything else leaves them untouched.
func DrawStripe(dst Surface, x int, s Stripe, tex Sampler, shade float64) {
	if s.Empty() {
		return
	}
	texW, texH := tex.Size()
	tx := int(s.Offset * float64(texW))
	if tx >= texW {
		tx = texW - 1
	}

	span := float64(s.Bottom - s.Top)
	for row := s.Top; row < s.Bottom; row++ {
		ty := float64(row-s.Top) / span
		c := tex.Sample(tx, int(ty*float64(texH)))
		dst.SetRGBA(x, row, shadeColor(c, shade))
	}
}

func shadeColor(c color.RGBA, shade float64) color.RGBA {
	if shade <= 0 || shade >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * shade),
		G: uint8(float64(c.G) * shade),
		B: uint8(float64(c.B) * shade),
		A: 255,
	}
}
