package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/jinzhu/copier"
)

// CellKind is the symbol stored in each maze cell.
type CellKind int

const (
	CellKind_Empty CellKind = iota
	CellKind_WallA
	CellKind_Door
	CellKind_Goal
	CellKind_Collectible
	CellKind_SpawnMarker
)

var (
	ErrEmptyGrid   = errors.New("model: grid has no cells")
	ErrRaggedGrid  = errors.New("model: grid rows differ in length")
	ErrCellSize    = errors.New("model: cell size must be positive")
	ErrUnknownCell = errors.New("model: unknown cell symbol")
	ErrNoOpenCell  = errors.New("model: grid has no spawn marker or empty cell")
)

var cellKindNames = map[CellKind]string{
	CellKind_Empty:       "empty",
	CellKind_WallA:       "wall_a",
	CellKind_Door:        "door",
	CellKind_Goal:        "goal",
	CellKind_Collectible: "collectible",
	CellKind_SpawnMarker: "spawn",
}

func (k CellKind) String() string {
	if name, ok := cellKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("CellKind(%d)", int(k))
}

// CellKindFromName is the inverse of String, used by texture manifests.
func CellKindFromName(name string) (CellKind, bool) {
	for k, n := range cellKindNames {
		if n == name {
			return k, true
		}
	}
	return CellKind_Empty, false
}

// IsWall reports whether rays stop at this kind in the 3D view.
func (k CellKind) IsWall() bool {
	switch k {
	case CellKind_WallA, CellKind_Door, CellKind_Goal:
		return true
	}
	return false
}

// Grid is a rectangular maze. Rows index y, columns index x; every cell is
// a square of CellSize world units.
type Grid struct {
	cells    [][]CellKind
	cellSize float64
}

// NewGrid validates cells once; the renderer never re-checks the shape.
func NewGrid(cells [][]CellKind, cellSize float64) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if cellSize <= 0 || math.IsNaN(cellSize) || math.IsInf(cellSize, 0) {
		return nil, ErrCellSize
	}
	cols := len(cells[0])
	for i, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, i, len(row), cols)
		}
	}
	return &Grid{cells: cells, cellSize: cellSize}, nil
}

func (g *Grid) Rows() int                { return len(g.cells) }
func (g *Grid) Cols() int                { return len(g.cells[0]) }
func (g *Grid) CellSize() float64        { return g.cellSize }
func (g *Grid) Width() float64           { return float64(g.Cols()) * g.cellSize }
func (g *Grid) Height() float64          { return float64(g.Rows()) * g.cellSize }
func (g *Grid) At(row, col int) CellKind { return g.cells[row][col] }

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < len(g.cells) && col < len(g.cells[0])
}

// CellOf converts a world point into the (row, col) containing it.
func (g *Grid) CellOf(x, y float64) (int, int) {
	return int(math.Floor(y / g.cellSize)), int(math.Floor(x / g.cellSize))
}

// KindAt is the bounds-checked lookup for a world point.
func (g *Grid) KindAt(x, y float64) (CellKind, bool) {
	row, col := g.CellOf(x, y)
	if !g.InBounds(row, col) {
		return CellKind_Empty, false
	}
	return g.cells[row][col], true
}

// Center returns the world position of the middle of a cell.
func (g *Grid) Center(row, col int) geom.Vector2 {
	return geom.Vector2{
		X: (float64(col) + 0.5) * g.cellSize,
		Y: (float64(row) + 0.5) * g.cellSize,
	}
}

// Find returns the first cell of the given kind in row-major order.
func (g *Grid) Find(kind CellKind) (int, int, bool) {
	for row := range g.cells {
		for col, k := range g.cells[row] {
			if k == kind {
				return row, col, true
			}
		}
	}
	return 0, 0, false
}

// Spawn returns the center of the spawn marker, or of the first empty cell
// when the maze has none.
func (g *Grid) Spawn() (geom.Vector2, error) {
	if row, col, ok := g.Find(CellKind_SpawnMarker); ok {
		return g.Center(row, col), nil
	}
	if row, col, ok := g.Find(CellKind_Empty); ok {
		return g.Center(row, col), nil
	}
	return geom.Vector2{}, ErrNoOpenCell
}

// Collect turns a Collectible cell into Empty. It is the only mutation the
// grid supports and must happen between frames, never during a render pass.
func (g *Grid) Collect(row, col int) bool {
	if !g.InBounds(row, col) || g.cells[row][col] != CellKind_Collectible {
		return false
	}
	g.cells[row][col] = CellKind_Empty
	return true
}

// Count returns how many cells hold kind.
func (g *Grid) Count(kind CellKind) int {
	n := 0
	for _, row := range g.cells {
		for _, k := range row {
			if k == kind {
				n++
			}
		}
	}
	return n
}

// WithCellSize returns a grid over the same cells with a new cell size. The
// receiver must not be used afterwards.
func (g *Grid) WithCellSize(cellSize float64) (*Grid, error) {
	return NewGrid(g.cells, cellSize)
}

// Snapshot deep-copies the grid so concurrent readers can share it for the
// duration of a frame while the original stays writable.
func (g *Grid) Snapshot() (*Grid, error) {
	var cells [][]CellKind
	if err := copier.CopyWithOption(&cells, g.cells, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("model: snapshot grid: %w", err)
	}
	return &Grid{cells: cells, cellSize: g.cellSize}, nil
}
