package model

// Outcome describes what a Step did.
type Outcome int

const (
	OutcomeIdle Outcome = iota
	OutcomeMoved
	OutcomeBlocked
	OutcomeCollected
	OutcomeWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeCollected:
		return "collected"
	case OutcomeWon:
		return "won"
	}
	return "idle"
}

// World owns the grid and the viewer. It is the only writer of either, and
// Step must run in the input phase, before the frame reads them.
type World struct {
	Grid   *Grid
	Viewer *Viewer
	Score  int
	Won    bool
}

// NewWorld places the viewer at the spawn marker, or the first empty cell if
// the maze has none.
func NewWorld(grid *Grid, angle, fov float64) (*World, error) {
	pos, err := grid.Spawn()
	if err != nil {
		return nil, err
	}
	return &World{
		Grid:   grid,
		Viewer: NewViewer(pos.X, pos.Y, angle, fov),
	}, nil
}

// Step validates a move against the grid and applies it.
func (w *World) Step(m Move) Outcome {
	if w.Won || m.IsZero() {
		return OutcomeIdle
	}

	target, angle := w.Viewer.Target(m)
	row, col := w.Grid.CellOf(target.X, target.Y)
	if !w.Grid.InBounds(row, col) {
		w.Viewer.Apply(w.Viewer.Position, angle)
		return OutcomeBlocked
	}

	switch kind := w.Grid.At(row, col); {
	case kind == CellKind_Goal:
		w.Viewer.Apply(target, angle)
		w.Won = true
		return OutcomeWon
	case kind.IsWall():
		w.Viewer.Apply(w.Viewer.Position, angle)
		return OutcomeBlocked
	case kind == CellKind_Collectible:
		w.Viewer.Apply(target, angle)
		w.Grid.Collect(row, col)
		w.Score++
		return OutcomeCollected
	}

	w.Viewer.Apply(target, angle)
	if m.Forward == 0 && m.Strafe == 0 {
		return OutcomeIdle
	}
	return OutcomeMoved
}

// ReplaceGrid swaps in a reloaded maze, keeping the viewer where it is when
// that spot is still open. A maze with nowhere to stand is rejected and the
// current grid stays.
func (w *World) ReplaceGrid(grid *Grid) error {
	pos, err := grid.Spawn()
	if err != nil {
		return err
	}
	w.Grid = grid
	kind, ok := grid.KindAt(w.Viewer.Position.X, w.Viewer.Position.Y)
	if !ok || kind.IsWall() {
		w.Viewer.Apply(pos, w.Viewer.Angle)
	}
	return nil
}

// Collectibles returns a billboard at the center of every collectible cell,
// in row-major order.
func (w *World) Collectibles(texture string) []Billboard {
	var out []Billboard
	for row := 0; row < w.Grid.Rows(); row++ {
		for col := 0; col < w.Grid.Cols(); col++ {
			if w.Grid.At(row, col) == CellKind_Collectible {
				c := w.Grid.Center(row, col)
				out = append(out, NewBillboard(c.X, c.Y, texture))
			}
		}
	}
	return out
}
