package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	buttonColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	labelColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

type screenPanel struct {
	g     *Game
	face  ebtext.Face
	panel *widget.Container
}

func newScreenPanel(g *Game) *screenPanel {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(g.screenWidth/3, g.screenHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	return &screenPanel{g: g, face: face, panel: panel}
}

func (p *screenPanel) text(s string) *widget.Text {
	t := widget.NewText(
		widget.TextOpts.Text(s, &p.face, labelColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	p.panel.AddChild(t)
	return t
}

func (p *screenPanel) button(label string, onClick func()) {
	btnImg := imageui.NewNineSliceColor(buttonColor)
	p.panel.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text(label, &p.face, &widget.ButtonTextColor{Idle: labelColor}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	))
}

func (p *screenPanel) ui() *ebitenui.UI {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(p.panel)
	return &ebitenui.UI{Container: root}
}

// NewIntroUI is shown until the first key press.
func NewIntroUI(g *Game) *ebitenui.UI {
	p := newScreenPanel(g)
	p.text("MAZE")
	p.text("Find the exit. Carrots are worth a point each.")
	p.text(helpText)
	p.text("Press any key to start")
	return p.ui()
}

// NewWonUI is shown once the goal is reached.
func NewWonUI(g *Game) *ebitenui.UI {
	p := newScreenPanel(g)
	p.text("You found the exit!")
	score := p.text("")
	p.button("Play again (R)", g.restart)
	p.button("Quit (ESC)", func() { g.quit = true })

	g.wonScore = score
	return p.ui()
}

func (g *Game) updateWonScore() {
	if g.wonScore != nil {
		g.wonScore.Label = fmt.Sprintf("Score: %d", g.session.World.Score)
	}
}
