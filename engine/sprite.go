package engine

import (
	"image"
	"math"

	"github.com/harbdog/raycaster-go"
	"github.com/trvswgnr/maze-raycaster/model"
)

// MinSpriteDistance suppresses billboards the viewer is standing on.
const MinSpriteDistance = 0.01

// ProjectSprite places a billboard on screen and returns the clamped
// rectangle to paint along with the unclamped one used for texture mapping.
// It reports false when the billboard sits in a wall-like or out-of-bounds
// cell, coincides with the viewer, or lands fully off screen.
//
// There is no field-of-view culling and no depth test against walls.
func ProjectSprite(b model.Billboard, viewer model.Viewer, grid *model.Grid, screenW, screenH int, dpp float64) (clipped, full image.Rectangle, ok bool) {
	kind, inside := grid.KindAt(b.Position.X, b.Position.Y)
	if !inside || kind.IsWall() {
		return image.Rectangle{}, image.Rectangle{}, false
	}

	dx := b.Position.X - viewer.Position.X
	dy := b.Position.Y - viewer.Position.Y
	dist := math.Hypot(dx, dy)
	if dist < MinSpriteDistance {
		return image.Rectangle{}, image.Rectangle{}, false
	}

	scale := b.Scale
	if scale <= 0 {
		scale = 1
	}
	size := dpp / dist * grid.CellSize() * scale
	angle := normalizeAngle(math.Atan2(dy, dx) - viewer.Angle)

	halfW, halfH := float64(screenW)/2, float64(screenH)/2
	left := halfW + angle*dpp

	// anchors are relative to a full cell height billboard
	cellHeight := dpp / dist * grid.CellSize()
	var top float64
	switch b.Anchor {
	case raycaster.AnchorBottom:
		top = halfH + cellHeight/2 - size
	case raycaster.AnchorTop:
		top = halfH - cellHeight/2
	default:
		top = halfH - size/2
	}

	full = image.Rect(
		int(math.Floor(left)), int(math.Floor(top)),
		int(math.Floor(left+size)), int(math.Floor(top+size)),
	)
	clipped = full.Intersect(image.Rect(0, 0, screenW, screenH))
	if clipped.Empty() || full.Dx() <= 0 || full.Dy() <= 0 {
		return image.Rectangle{}, image.Rectangle{}, false
	}
	return clipped, full, true
}

// DrawSprite maps tex over full and writes the part inside clipped. Every
// texel is written opaque.
func DrawSprite(dst Surface, clipped, full image.Rectangle, tex Sampler) {
	texW, texH := tex.Size()
	w, h := float64(full.Dx()), float64(full.Dy())
	for y := clipped.Min.Y; y < clipped.Max.Y; y++ {
		ty := int(float64(y-full.Min.Y) / h * float64(texH))
		for x := clipped.Min.X; x < clipped.Max.X; x++ {
			tx := int(float64(x-full.Min.X) / w * float64(texW))
			dst.SetRGBA(x, y, tex.Sample(tx, ty))
		}
	}
}

// normalizeAngle folds an angle into (-Pi, Pi].
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
