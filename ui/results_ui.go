package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"golang.org/x/image/font/gofont/goregular"
)

// ResultsUI holds the ebitenui interface for the end of match screen
type ResultsUI struct {
	UI     *ebitenui.UI
	Result components.GameOverData

	// Callbacks
	OnPlayAgain func()
	OnQuit      func()

	// faces for the title, rows and hints
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewResultsUI creates the results panel for a finished match
func NewResultsUI(result components.GameOverData, onPlayAgain, onQuit func()) *ResultsUI {
	rui := &ResultsUI{
		Result:      result,
		OnPlayAgain: onPlayAgain,
		OnQuit:      onQuit,
	}

	rui.loadFonts()
	rui.buildUI()

	return rui
}

func (rui *ResultsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	rui.titleFace = &text.GoTextFace{Source: fontSource, Size: 40}
	rui.normalFace = &text.GoTextFace{Source: fontSource, Size: 22}
	rui.smallFace = &text.GoTextFace{Source: fontSource, Size: 16}
}

func (rui *ResultsUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("SHIFT OVER", &rui.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))

	scoreColor := cfg.BrightGreen
	if rui.Result.Score < 0 {
		scoreColor = cfg.LightRed
	}
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("Score: %d", rui.Result.Score), &rui.normalFace, &widget.LabelColor{
			Idle: scoreColor,
		}),
	))

	for _, z := range rui.Result.Zones {
		contentContainer.AddChild(rui.buildZoneRow(z))
	}

	contentContainer.AddChild(rui.buildButtonsContainer())

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Enter: play again   Esc: quit", &rui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 160, 170, 255},
		}),
	))

	rootContainer.AddChild(contentContainer)

	rui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (rui *ResultsUI) buildZoneRow(z components.ZoneResult) *widget.Container {
	padding := widget.Insets{Top: 2, Bottom: 2, Left: 6, Right: 6}
	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{40, 40, 50, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(12),
		)),
	)

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("%-8s", z.Agent), &rui.normalFace, &widget.LabelColor{
			Idle: z.Agent.Color(),
		}),
	))
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("%d parcels  %+d", z.Received, z.Score), &rui.normalFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))
	return row
}

func (rui *ResultsUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 36)),
		widget.ButtonOpts.Image(buttonImage(color.RGBA{60, 60, 80, 255})),
		widget.ButtonOpts.Text("Quit", &rui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if rui.OnQuit != nil {
				rui.OnQuit()
			}
		}),
	)
	container.AddChild(quitButton)

	againButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 36)),
		widget.ButtonOpts.Image(buttonImage(color.RGBA{40, 100, 40, 255})),
		widget.ButtonOpts.Text("PLAY AGAIN", &rui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if rui.OnPlayAgain != nil {
				rui.OnPlayAgain()
			}
		}),
	)
	container.AddChild(againButton)

	return container
}

// Update advances the widgets; call once per tick.
func (rui *ResultsUI) Update() {
	rui.UI.Update()
}

// buttonImage derives hover, pressed and disabled shades from idle.
func buttonImage(idle color.RGBA) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(idle),
		Hover:    image.NewNineSliceColor(tint(idle, 20)),
		Pressed:  image.NewNineSliceColor(tint(idle, -20)),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func tint(c color.RGBA, d int) color.RGBA {
	ch := func(v uint8) uint8 {
		return uint8(max(0, min(255, int(v)+d)))
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}
