package engine

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/trvswgnr/maze-raycaster/model"
)

const testCellSize = 64.0

func mustGrid(t *testing.T, rows ...string) *model.Grid {
	t.Helper()
	g, err := model.ParseGrid(strings.NewReader(strings.Join(rows, "\n")), testCellSize)
	if err != nil {
		t.Fatalf("parse grid: %v", err)
	}
	return g
}

func viewerAt(g *model.Grid, row, col int, angle, fov float64) model.Viewer {
	c := g.Center(row, col)
	return *model.NewViewer(c.X, c.Y, angle, fov)
}

// recorder counts every write, including out of bounds ones.
type recorder struct {
	bounds image.Rectangle
	writes map[image.Point]color.RGBA
}

func newRecorder(w, h int) *recorder {
	return &recorder{bounds: image.Rect(0, 0, w, h), writes: make(map[image.Point]color.RGBA)}
}

func (r *recorder) SetRGBA(x, y int, c color.RGBA) { r.writes[image.Pt(x, y)] = c }
func (r *recorder) Bounds() image.Rectangle        { return r.bounds }

// coordTexture encodes the sampled texel position in the color.
type coordTexture struct{ w, h int }

func (c coordTexture) Size() (int, int) { return c.w, c.h }

func (c coordTexture) Sample(col, row int) color.RGBA {
	return color.RGBA{R: uint8(col), G: uint8(row), B: 7, A: 255}
}
