// minimap.go
package engine

import (
	"image"
	"image/color"
	"math"

	"github.com/trvswgnr/maze-raycaster/model"
)

const (
	DefaultMinimapSize   = 200
	DefaultMinimapMargin = 10
	DefaultMarkerSize    = 3
)

type MinimapPalette struct {
	Empty  color.RGBA
	Wall   color.RGBA
	Goal   color.RGBA
	Spawn  color.RGBA
	Viewer color.RGBA
}

var DefaultMinimapPalette = MinimapPalette{
	Empty:  color.RGBA{200, 200, 200, 255},
	Wall:   color.RGBA{50, 50, 50, 255},
	Goal:   color.RGBA{255, 255, 0, 255},
	Spawn:  color.RGBA{200, 200, 200, 255},
	Viewer: color.RGBA{0, 255, 255, 255},
}

// Color picks the fill for a cell kind. Unlisted kinds, collectibles
// included, draw as walls. The spawn marker is floor and draws as empty.
func (p MinimapPalette) Color(kind model.CellKind) color.RGBA {
	switch kind {
	case model.CellKind_Empty:
		return p.Empty
	case model.CellKind_Goal:
		return p.Goal
	case model.CellKind_SpawnMarker:
		return p.Spawn
	}
	return p.Wall
}

// Minimap is a grid-aligned overlay square. It never rotates with the viewer.
type Minimap struct {
	Origin     image.Point
	Size       int
	MarkerSize int
	Palette    MinimapPalette
}

// MinimapAt anchors a minimap of the given size in the bottom-right corner
// of a screen.
func MinimapAt(screenW, screenH, size int) *Minimap {
	if size <= 0 {
		size = DefaultMinimapSize
	}
	return &Minimap{
		Origin:     image.Pt(screenW-size-DefaultMinimapMargin, screenH-size-DefaultMinimapMargin),
		Size:       size,
		MarkerSize: DefaultMarkerSize,
		Palette:    DefaultMinimapPalette,
	}
}

func (m *Minimap) Bounds() image.Rectangle {
	return image.Rectangle{Min: m.Origin, Max: m.Origin.Add(image.Pt(m.Size, m.Size))}
}

func (m *Minimap) scale(grid *model.Grid) (float64, float64) {
	return float64(m.Size) / float64(grid.Cols()), float64(m.Size) / float64(grid.Rows())
}

// CellRect is the overlay rectangle for a grid cell, clipped to the overlay.
func (m *Minimap) CellRect(grid *model.Grid, row, col int) image.Rectangle {
	sx, sy := m.scale(grid)
	x := m.Origin.X + int(float64(col)*sx)
	y := m.Origin.Y + int(float64(row)*sy)
	r := image.Rect(x, y, x+int(math.Ceil(sx)), y+int(math.Ceil(sy)))
	return r.Intersect(m.Bounds())
}

// ViewerPoint is the viewer position scaled into the overlay.
func (m *Minimap) ViewerPoint(grid *model.Grid, viewer model.Viewer) image.Point {
	sx, sy := m.scale(grid)
	cs := grid.CellSize()
	return image.Pt(
		m.Origin.X+int(viewer.Position.X/cs*sx),
		m.Origin.Y+int(viewer.Position.Y/cs*sy),
	)
}

func (m *Minimap) Draw(dst Surface, grid *model.Grid, viewer model.Viewer) {
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			FillRect(dst, m.CellRect(grid, row, col), m.Palette.Color(grid.At(row, col)))
		}
	}

	size := m.MarkerSize
	if size <= 0 {
		size = DefaultMarkerSize
	}
	p := m.ViewerPoint(grid, viewer)
	marker := image.Rect(p.X-size/2, p.Y-size/2, p.X-size/2+size, p.Y-size/2+size)
	FillRect(dst, marker.Intersect(m.Bounds()), m.Palette.Viewer)
}
