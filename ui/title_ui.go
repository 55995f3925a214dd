package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TitleOptions describes what the title screen offers.
type TitleOptions struct {
	Title    string
	Subtitle string
	// Best is a one-line summary of the run history, empty when there is none.
	Best        string
	CanContinue bool
	WindowScale int
	Background  color.RGBA
	TitleColor  color.RGBA
}

type TitleUI struct {
	UI *ebitenui.UI

	OnNewGame  func()
	OnContinue func()
	// OnScale returns the scale that is now active.
	OnScale func() int
	OnQuit  func()

	opts     TitleOptions
	scaleBtn *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewTitleUI(opts TitleOptions) *TitleUI {
	ui := &TitleUI{opts: opts}
	ui.titleFace, ui.normalFace, ui.smallFace = loadFaces()
	ui.buildUI()
	return ui
}

// loadFaces returns the title, normal and small faces shared by the screens.
func loadFaces() (title, normal, small text.Face) {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatal("failed to load UI font", "err", err)
	}

	return &text.GoTextFace{Source: fontSource, Size: 28},
		&text.GoTextFace{Source: fontSource, Size: 12},
		&text.GoTextFace{Source: fontSource, Size: 9}
}

func (ui *TitleUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(ui.opts.Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(newLabel(ui.opts.Title, &ui.titleFace, ui.opts.TitleColor))
	contentContainer.AddChild(newLabel(ui.opts.Subtitle, &ui.smallFace, color.RGBA{200, 200, 200, 255}))

	contentContainer.AddChild(newMenuButton("New Game", &ui.normalFace, func() {
		if ui.OnNewGame != nil {
			ui.OnNewGame()
		}
	}))

	continueBtn := newMenuButton("Continue", &ui.normalFace, func() {
		if ui.OnContinue != nil {
			ui.OnContinue()
		}
	})
	continueBtn.GetWidget().Disabled = !ui.opts.CanContinue
	contentContainer.AddChild(continueBtn)

	ui.scaleBtn = newMenuButton(scaleLabel(ui.opts.WindowScale), &ui.normalFace, func() {
		if ui.OnScale != nil {
			ui.scaleBtn.Text().Label = scaleLabel(ui.OnScale())
		}
	})
	contentContainer.AddChild(ui.scaleBtn)

	contentContainer.AddChild(newMenuButton("Quit", &ui.normalFace, func() {
		if ui.OnQuit != nil {
			ui.OnQuit()
		}
	}))

	if ui.opts.Best != "" {
		contentContainer.AddChild(newLabel(ui.opts.Best, &ui.smallFace, color.RGBA{255, 200, 100, 255}))
	}

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func scaleLabel(scale int) string {
	return fmt.Sprintf("Window: x%d", scale)
}

func newLabel(s string, face *text.Face, clr color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{
			Idle: clr,
		}),
	)
}

func newMenuButton(label string, face *text.Face, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{60, 52, 48, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{92, 78, 66, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{40, 34, 30, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{36, 32, 32, 255}),
		}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 230, 160, 255},
			Pressed:  color.RGBA{200, 180, 120, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *TitleUI) Update() {
	ui.UI.Update()
}
