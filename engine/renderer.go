package engine

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/trvswgnr/maze-raycaster/model"
)

const DefaultSideShade = 0.7

var (
	DefaultSky    = color.RGBA{135, 206, 235, 255}
	DefaultGround = color.RGBA{90, 90, 90, 255}

	topDownBackground = color.RGBA{20, 20, 20, 255}
	topDownRay        = color.RGBA{255, 220, 0, 255}
	topDownHit        = color.RGBA{255, 0, 0, 255}
	topDownPickup     = color.RGBA{198, 54, 54, 255}
)

// Renderer draws whole frames. Fields are read once per frame and must not
// change while RenderFrame runs.
type Renderer struct {
	Width, Height int
	Textures      *Textures
	Cast          CastOptions

	// Workers is the number of column bands cast in parallel. With more than
	// one, dst must accept concurrent writes to distinct pixels, which
	// *Image does.
	Workers int

	// SideShade darkens SideY faces. Zero or one disables shading.
	SideShade float64

	Sky, Ground color.RGBA
	Minimap     *Minimap
}

func NewRenderer(width, height int, textures *Textures) *Renderer {
	if textures == nil {
		textures = NewTextures()
	}
	return &Renderer{
		Width:     width,
		Height:    height,
		Textures:  textures,
		Workers:   1,
		SideShade: DefaultSideShade,
		Sky:       DefaultSky,
		Ground:    DefaultGround,
	}
}

// ProjectionDistance for the renderer's screen width.
func (r *Renderer) ProjectionDistance(fov float64) float64 {
	return ProjectionDistance(float64(r.Width)/2, fov)
}

// RenderFrame draws sky and ground, then the walls, then every billboard in
// the given order, then the minimap. Billboards are not depth tested.
func (r *Renderer) RenderFrame(dst Surface, grid *model.Grid, viewer model.Viewer, sprites []model.Billboard) {
	half := r.Height / 2
	FillRect(dst, image.Rect(0, 0, r.Width, half), r.Sky)
	FillRect(dst, image.Rect(0, half, r.Width, r.Height), r.Ground)

	r.drawWalls(dst, grid, viewer)

	dpp := r.ProjectionDistance(viewer.FOV)
	for _, b := range sprites {
		tex := r.Textures.Sprite(b.Texture)
		if tex == nil {
			continue
		}
		clipped, full, ok := ProjectSprite(b, viewer, grid, r.Width, r.Height, dpp)
		if !ok {
			continue
		}
		DrawSprite(dst, clipped, full, tex)
	}

	if r.Minimap != nil {
		r.Minimap.Draw(dst, grid, viewer)
	}
}

func (r *Renderer) drawWalls(dst Surface, grid *model.Grid, viewer model.Viewer) {
	dpp := r.ProjectionDistance(viewer.FOV)
	if r.Workers <= 1 || r.Width < r.Workers {
		r.drawColumns(dst, grid, viewer, dpp, 0, r.Width)
		return
	}

	snap, err := grid.Snapshot()
	if err != nil {
		r.drawColumns(dst, grid, viewer, dpp, 0, r.Width)
		return
	}

	band := (r.Width + r.Workers - 1) / r.Workers
	var wg sync.WaitGroup
	for start := 0; start < r.Width; start += band {
		wg.Add(1)
		go r.asyncDrawColumns(dst, snap, viewer, dpp, start, min(start+band, r.Width), &wg)
	}
	wg.Wait()
}

func (r *Renderer) asyncDrawColumns(dst Surface, grid *model.Grid, viewer model.Viewer, dpp float64, from, to int, wg *sync.WaitGroup) {
	defer wg.Done()
	r.drawColumns(dst, grid, viewer, dpp, from, to)
}

func (r *Renderer) drawColumns(dst Surface, grid *model.Grid, viewer model.Viewer, dpp float64, from, to int) {
	for x := from; x < to; x++ {
		hit := Cast(grid, viewer, ColumnAngle(viewer, x, r.Width), r.Cast)
		stripe, ok := ProjectWall(hit, r.Height, dpp, grid.CellSize())
		if !ok {
			continue
		}
		shade := 1.0
		if stripe.Side == SideY {
			shade = r.SideShade
		}
		DrawStripe(dst, x, stripe, r.Textures.Wall(stripe.Kind), shade)
	}
}

// RenderTopDown draws the maze from above with the path of every column's
// ray. Rays stop at any non-empty cell.
func (r *Renderer) RenderTopDown(dst Surface, grid *model.Grid, viewer model.Viewer) {
	FillRect(dst, image.Rect(0, 0, r.Width, r.Height), topDownBackground)

	palette := DefaultMinimapPalette
	if r.Minimap != nil {
		palette = r.Minimap.Palette
	}

	block := math.Min(float64(r.Width)/float64(grid.Cols()), float64(r.Height)/float64(grid.Rows()))
	scale := block / grid.CellSize()
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			cell := image.Rect(
				int(float64(col)*block), int(float64(row)*block),
				int(float64(col+1)*block), int(float64(row+1)*block),
			)
			c := palette.Color(grid.At(row, col))
			if grid.At(row, col) == model.CellKind_Collectible {
				c = topDownPickup
			}
			FillRect(dst, cell, c)
		}
	}

	opts := r.Cast
	opts.Permissive = true
	opts.Trace = func(x, y float64) {
		dst.SetRGBA(int(x*scale), int(y*scale), topDownRay)
	}
	for x := 0; x < r.Width; x++ {
		hit := Cast(grid, viewer, ColumnAngle(viewer, x, r.Width), opts)
		if hit.Hit {
			dst.SetRGBA(int(hit.Point.X*scale), int(hit.Point.Y*scale), topDownHit)
		}
	}

	px, py := viewer.Position.X*scale, viewer.Position.Y*scale
	dirX, dirY := viewer.Direction()
	FillCircle(dst, px, py, math.Max(2, block/6), palette.Viewer)
	StrokeLine(dst, px, py, px+dirX*block, py+dirY*block, palette.Viewer)
}
