package engine

import (
	"image/color"
	"math"
	"testing"

	"github.com/trvswgnr/maze-raycaster/model"
)

func TestProjectWallSymmetry(t *testing.T) {
	heights := []int{480, 481, 200, 1}
	distances := []float64{0.02, 1, 10, 64, 100.5, 999, 1e9}

	for _, h := range heights {
		for _, d := range distances {
			hit := RayHit{Hit: true, Distance: d, Kind: model.CellKind_WallA}
			s, ok := ProjectWall(hit, h, 320, testCellSize)
			if !ok {
				t.Fatalf("height %d distance %f: expected a stripe", h, d)
			}
			if s.Top+s.Bottom != h {
				t.Fatalf("height %d distance %f: top %d + bottom %d != %d", h, d, s.Top, s.Bottom, h)
			}
			if s.Top < 0 || s.Bottom > h || s.Top > s.Bottom+1 {
				t.Fatalf("height %d distance %f: stripe [%d,%d) out of range", h, d, s.Top, s.Bottom)
			}
		}
	}
}

func TestProjectWall(t *testing.T) {
	cases := []struct {
		name   string
		hit    RayHit
		ok     bool
		top    int
		bottom int
	}{
		{"exact_fit", RayHit{Hit: true, Distance: 64}, true, 80, 400},
		{"closer_than_screen", RayHit{Hit: true, Distance: 16}, true, 0, 480},
		{"far_away", RayHit{Hit: true, Distance: 1e12}, true, 240, 240},
		{"miss", RayHit{Distance: NoHitDistance}, false, 0, 0},
		{"too_close", RayHit{Hit: true, Distance: MinWallDistance}, false, 0, 0},
		{"zero", RayHit{Hit: true}, false, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, ok := ProjectWall(c.hit, 480, 320, testCellSize)
			if ok != c.ok {
				t.Fatalf("expected ok=%v, got %v", c.ok, ok)
			}
			if !ok {
				return
			}
			if s.Top != c.top || s.Bottom != c.bottom {
				t.Fatalf("expected [%d,%d), got [%d,%d)", c.top, c.bottom, s.Top, s.Bottom)
			}
		})
	}
}

func TestDrawStripe(t *testing.T) {
	t.Run("samples_across_range", func(t *testing.T) {
		rec := newRecorder(10, 100)
		s := Stripe{Top: 16, Bottom: 80, Offset: 0.5}
		DrawStripe(rec, 3, s, coordTexture{w: 64, h: 64}, 1)

		if len(rec.writes) != 64 {
			t.Fatalf("expected 64 writes, got %d", len(rec.writes))
		}
		for p, c := range rec.writes {
			if p.X != 3 {
				t.Fatalf("write outside column 3 at %v", p)
			}
			if c.R != 32 {
				t.Fatalf("expected texture column 32, got %d", c.R)
			}
			if int(c.G) != p.Y-16 {
				t.Fatalf("row %d: expected texture row %d, got %d", p.Y, p.Y-16, c.G)
			}
		}
	})

	t.Run("empty_stripe_paints_nothing", func(t *testing.T) {
		rec := newRecorder(10, 100)
		DrawStripe(rec, 3, Stripe{Top: 50, Bottom: 50}, coordTexture{w: 8, h: 8}, 1)
		if len(rec.writes) != 0 {
			t.Fatalf("expected no writes, got %d", len(rec.writes))
		}
	})

	t.Run("shaded", func(t *testing.T) {
		rec := newRecorder(1, 2)
		DrawStripe(rec, 0, Stripe{Top: 0, Bottom: 2}, Solid{200, 100, 50, 255}, 0.5)
		want := color.RGBA{100, 50, 25, 255}
		for p, c := range rec.writes {
			if c != want {
				t.Fatalf("at %v expected %v, got %v", p, want, c)
			}
		}
	})
}

func TestWallHeightFollowsDistance(t *testing.T) {
	near, _ := ProjectWall(RayHit{Hit: true, Distance: 50}, 480, 320, testCellSize)
	far, _ := ProjectWall(RayHit{Hit: true, Distance: 200}, 480, 320, testCellSize)
	if near.Bottom-near.Top <= far.Bottom-far.Top {
		t.Fatalf("expected near stripe taller than far stripe")
	}
	if math.Abs(near.Height-4*far.Height) > 1e-9 {
		t.Fatalf("expected height to scale inversely with distance")
	}
}

func TestProjectWallFarStripePaintsNothing(t *testing.T) {
	for _, h := range []int{480, 481} {
		for _, d := range []float64{1e12, math.MaxFloat64 / 2} {
			s, ok := ProjectWall(RayHit{Hit: true, Distance: d, Kind: model.CellKind_WallA}, h, 320, testCellSize)
			if !ok {
				t.Fatalf("height %d distance %g: expected a stripe", h, d)
			}
			if !s.Empty() || s.Top+s.Bottom != h {
				t.Fatalf("height %d distance %g: expected an empty symmetric stripe, got [%d,%d)", h, d, s.Top, s.Bottom)
			}
		}

		s, _ := ProjectWall(RayHit{Hit: true, Distance: 1e12, Kind: model.CellKind_WallA}, h, 320, testCellSize)

		rec := newRecorder(1, h)
		DrawStripe(rec, 0, s, coordTexture{64, 64}, 1)
		if len(rec.writes) != 0 {
			t.Fatalf("height %d: expected no pixels, got %d", h, len(rec.writes))
		}
	}
}
