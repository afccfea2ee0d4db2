package engine

import (
	"bytes"
	"image/color"
	"math"
	"testing"

	"github.com/trvswgnr/maze-raycaster/model"
)

func testRenderer(w, h int) *Renderer {
	tex := NewTextures()
	tex.SetWall(model.CellKind_WallA, coordTexture{w: 64, h: 64})
	tex.SetWall(model.CellKind_Goal, Solid{255, 255, 0, 255})
	tex.SetSprite("cat", Solid{1, 2, 3, 255})
	return NewRenderer(w, h, tex)
}

func TestRenderFrameParallelMatchesSequential(t *testing.T) {
	g := mustGrid(t,
		"+++++++++",
		"+p  +   +",
		"+ + + z +",
		"+   g   +",
		"+++++++++",
	)
	v := viewerAt(g, 1, 1, 0.4, math.Pi/3)
	sprites := []model.Billboard{model.NewBillboard(g.Center(2, 6).X, g.Center(2, 6).Y, "cat")}

	seq := testRenderer(160, 120)
	seq.Minimap = MinimapAt(160, 120, 40)
	want := NewImage(160, 120)
	seq.RenderFrame(want, g, v, sprites)

	for _, workers := range []int{2, 3, 8, 160} {
		par := testRenderer(160, 120)
		par.Workers = workers
		par.Minimap = MinimapAt(160, 120, 40)
		got := NewImage(160, 120)
		par.RenderFrame(got, g, v, sprites)
		if !bytes.Equal(want.Pix, got.Pix) {
			t.Fatalf("%d workers produced a different frame", workers)
		}
	}
}

func TestRenderFrameLayers(t *testing.T) {
	g := mustGrid(t,
		"+++++++",
		"+   + +",
		"+++++++",
	)
	v := viewerAt(g, 1, 1, 0, math.Pi/2)
	r := testRenderer(640, 480)
	img := NewImage(640, 480)

	// the billboard sits beyond the wall at col 4 and still draws over it
	sprite := model.NewBillboard(g.Center(1, 5).X, g.Center(1, 5).Y, "cat")
	r.RenderFrame(img, g, v, []model.Billboard{sprite})

	if img.RGBAAt(320, 0) != r.Sky {
		t.Fatalf("expected sky above the far wall, got %v", img.RGBAAt(320, 0))
	}
	if img.RGBAAt(320, 479) != r.Ground {
		t.Fatalf("expected ground below the far wall, got %v", img.RGBAAt(320, 479))
	}
	if got := img.RGBAAt(330, 240); got != (color.RGBA{1, 2, 3, 255}) {
		t.Fatalf("expected the sprite over the wall, got %v", got)
	}
	if got := img.RGBAAt(300, 240); got.B != 7 {
		t.Fatalf("expected the wall texture left of the sprite, got %v", got)
	}
}

func TestRenderFrameSkipsUnknownSprites(t *testing.T) {
	g := mustGrid(t,
		"+++++",
		"+   +",
		"+++++",
	)
	v := viewerAt(g, 1, 1, 0, math.Pi/2)
	r := testRenderer(64, 48)
	a, b := NewImage(64, 48), NewImage(64, 48)
	r.RenderFrame(a, g, v, nil)
	r.RenderFrame(b, g, v, []model.Billboard{model.NewBillboard(g.Center(1, 3).X, g.Center(1, 3).Y, "dog")})
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatalf("billboard without a texture changed the frame")
	}
}

func TestRenderTopDown(t *testing.T) {
	g := mustGrid(t,
		"+++++",
		"+ z +",
		"+   +",
		"+++++",
	)
	v := viewerAt(g, 2, 1, 0, math.Pi/3)
	r := testRenderer(100, 80)
	img := NewImage(100, 80)
	r.RenderTopDown(img, g, v)

	counts := map[color.RGBA]int{}
	for y := 0; y < 80; y++ {
		for x := 0; x < 100; x++ {
			counts[img.RGBAAt(x, y)]++
		}
	}
	for _, c := range []struct {
		name  string
		color color.RGBA
	}{
		{"ray", topDownRay},
		{"hit", topDownHit},
		{"viewer", DefaultMinimapPalette.Viewer},
		{"wall", DefaultMinimapPalette.Wall},
		{"collectible", topDownPickup},
	} {
		if counts[c.color] == 0 {
			t.Fatalf("expected %s pixels in the top-down view", c.name)
		}
	}
}
