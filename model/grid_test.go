package model

import (
	"errors"
	"testing"
)

func TestNewGrid(t *testing.T) {
	cases := []struct {
		name     string
		cells    [][]CellKind
		cellSize float64
		err      error
	}{
		{"valid", [][]CellKind{{CellKind_WallA, CellKind_Empty}, {CellKind_Goal, CellKind_Door}}, 64, nil},
		{"no_rows", nil, 64, ErrEmptyGrid},
		{"empty_row", [][]CellKind{{}}, 64, ErrEmptyGrid},
		{"ragged", [][]CellKind{{CellKind_WallA, CellKind_Empty}, {CellKind_Goal}}, 64, ErrRaggedGrid},
		{"zero_cell_size", [][]CellKind{{CellKind_Empty}}, 0, ErrCellSize},
		{"negative_cell_size", [][]CellKind{{CellKind_Empty}}, -1, ErrCellSize},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := NewGrid(c.cells, c.cellSize)
			if c.err == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if g.Rows() != len(c.cells) || g.Cols() != len(c.cells[0]) {
					t.Fatalf("expected %dx%d, got %dx%d", len(c.cells), len(c.cells[0]), g.Rows(), g.Cols())
				}
				return
			}
			if !errors.Is(err, c.err) {
				t.Fatalf("expected %v, got %v", c.err, err)
			}
		})
	}
}

func TestCellKindIsWall(t *testing.T) {
	walls := map[CellKind]bool{
		CellKind_Empty:       false,
		CellKind_WallA:       true,
		CellKind_Door:        true,
		CellKind_Goal:        true,
		CellKind_Collectible: false,
		CellKind_SpawnMarker: false,
	}
	for kind, want := range walls {
		t.Run(kind.String(), func(t *testing.T) {
			if kind.IsWall() != want {
				t.Fatalf("expected IsWall=%v", want)
			}
			back, ok := CellKindFromName(kind.String())
			if !ok || back != kind {
				t.Fatalf("name %q does not round trip", kind.String())
			}
		})
	}
	if _, ok := CellKindFromName("lava"); ok {
		t.Fatalf("expected unknown name to fail")
	}
}

func TestGridLookup(t *testing.T) {
	g, err := NewGrid([][]CellKind{
		{CellKind_WallA, CellKind_WallA, CellKind_WallA},
		{CellKind_WallA, CellKind_Collectible, CellKind_WallA},
		{CellKind_WallA, CellKind_Goal, CellKind_WallA},
	}, 10)
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}

	cases := []struct {
		name   string
		x, y   float64
		kind   CellKind
		inside bool
	}{
		{"center", 15, 15, CellKind_Collectible, true},
		{"cell_edge", 10, 20, CellKind_Goal, true},
		{"just_before_edge", 9.999, 15, CellKind_WallA, true},
		{"negative", -0.1, 5, CellKind_Empty, false},
		{"past_width", 30, 5, CellKind_Empty, false},
		{"past_height", 5, 30, CellKind_Empty, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			kind, ok := g.KindAt(c.x, c.y)
			if ok != c.inside || kind != c.kind {
				t.Fatalf("expected (%v,%v), got (%v,%v)", c.kind, c.inside, kind, ok)
			}
		})
	}

	if g.Width() != 30 || g.Height() != 30 {
		t.Fatalf("expected 30x30 world, got %fx%f", g.Width(), g.Height())
	}
	if c := g.Center(1, 1); c.X != 15 || c.Y != 15 {
		t.Fatalf("expected center (15,15), got %v", c)
	}
	if row, col, ok := g.Find(CellKind_Goal); !ok || row != 2 || col != 1 {
		t.Fatalf("expected goal at (2,1), got (%d,%d,%v)", row, col, ok)
	}
}

func TestGridCollect(t *testing.T) {
	g, err := NewGrid([][]CellKind{{CellKind_Collectible, CellKind_WallA}}, 1)
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}
	if g.Collect(0, 1) {
		t.Fatalf("collected a wall")
	}
	if g.Collect(3, 3) {
		t.Fatalf("collected out of bounds")
	}
	if !g.Collect(0, 0) {
		t.Fatalf("expected collectible to be collected")
	}
	if g.At(0, 0) != CellKind_Empty {
		t.Fatalf("expected empty after collecting, got %v", g.At(0, 0))
	}
	if g.Collect(0, 0) {
		t.Fatalf("collected twice")
	}
}

func TestGridSnapshot(t *testing.T) {
	g, err := NewGrid([][]CellKind{{CellKind_Collectible, CellKind_Empty}, {CellKind_WallA, CellKind_Goal}}, 8)
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}
	snap, err := g.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.CellSize() != 8 || snap.Rows() != 2 || snap.Cols() != 2 {
		t.Fatalf("snapshot shape differs")
	}

	g.Collect(0, 0)
	if snap.At(0, 0) != CellKind_Collectible {
		t.Fatalf("snapshot observed a later mutation")
	}
	if snap.At(1, 1) != CellKind_Goal {
		t.Fatalf("snapshot lost cell contents")
	}
	if g.Count(CellKind_Collectible) != 0 || snap.Count(CellKind_Collectible) != 1 {
		t.Fatalf("unexpected collectible counts")
	}
}
