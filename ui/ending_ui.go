package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// EndingOptions carries the finished run into the ending screen.
type EndingOptions struct {
	Title      string
	Message    string
	Lines      []string // run statistics, one per line
	Background color.RGBA
	TitleColor color.RGBA
}

type EndingUI struct {
	UI *ebitenui.UI

	OnPlayAgain func()
	OnTitle     func()

	opts EndingOptions

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewEndingUI(opts EndingOptions) *EndingUI {
	ui := &EndingUI{opts: opts}
	ui.titleFace, ui.normalFace, ui.smallFace = loadFaces()
	ui.buildUI()
	return ui
}

func (ui *EndingUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(ui.opts.Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(newLabel(ui.opts.Title, &ui.titleFace, ui.opts.TitleColor))
	contentContainer.AddChild(newLabel(ui.opts.Message, &ui.normalFace, color.RGBA{60, 52, 48, 255}))

	statsPanel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{60, 52, 48, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	for _, line := range ui.opts.Lines {
		statsPanel.AddChild(newLabel(line, &ui.smallFace, color.RGBA{255, 255, 255, 255}))
	}
	contentContainer.AddChild(statsPanel)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)
	buttons.AddChild(newMenuButton("Play Again", &ui.normalFace, func() {
		if ui.OnPlayAgain != nil {
			ui.OnPlayAgain()
		}
	}))
	buttons.AddChild(newMenuButton("Title", &ui.normalFace, func() {
		if ui.OnTitle != nil {
			ui.OnTitle()
		}
	}))
	contentContainer.AddChild(buttons)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *EndingUI) Update() {
	ui.UI.Update()
}
