package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/eggrun/eggrun/sim"
)

// Menus holds one overlay UI per waiting state. Only the overlay matching
// the current simulation state is updated and drawn; Play has none.
type Menus struct {
	byState map[sim.State]*ebitenui.UI
}

func NewMenus(core *sim.Game) *Menus {
	return &Menus{
		byState: map[sim.State]*ebitenui.UI{
			sim.StateStart: newOverlay("Egg Run", "Collect every egg, dodge the chickens,\nand reach the house.", "Play", func() {
				core.Dispatch(sim.Start())
			}),
			sim.StateWin: newOverlay("You made it home!", "Every egg collected.", "Play again", func() {
				core.Dispatch(sim.Restart())
			}),
			sim.StateLose: newOverlay("Game over", "Press Enter to try again.", "Retry", func() {
				core.Dispatch(sim.Restart())
			}),
		},
	}
}

func (m *Menus) Update(state sim.State) {
	if ui, ok := m.byState[state]; ok {
		ui.Update()
	}
}

func (m *Menus) Draw(screen *ebiten.Image, state sim.State) {
	if ui, ok := m.byState[state]; ok {
		ui.Draw(screen)
	}
}

// newOverlay builds a centered panel with a title, a message, and a single
// button. Colored nine-slices and the built-in basic font keep it free of
// loaded theme assets.
func newOverlay(title, message, button string, onClick func()) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	titleText := widget.NewText(
		widget.TextOpts.Text(title, &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	messageText := widget.NewText(
		widget.TextOpts.Text(message, &face, color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	btn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text(button, &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/2, baseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(titleText)
	panel.AddChild(messageText)
	panel.AddChild(btn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
