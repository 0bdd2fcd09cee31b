package ui

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/colornames"

	"LocalPaint/internal/paint"
)

// palette is the set of swatches offered by the toolbar.
var palette = []color.Color{
	colornames.Black,
	colornames.Red,
	colornames.Lime,
	colornames.Blue,
	colornames.Yellow,
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// toolbarState remembers the pen color and width while the eraser is on.
type toolbarState struct {
	penColor color.Color
	penWidth float64
	erasing  bool
}

// NewToolbar builds the controls that drive the board's style and shape knobs.
func NewToolbar(board *BoardWidget) fyne.CanvasObject {
	style := board.Session().Style()
	st := &toolbarState{penColor: style.StrokeColor, penWidth: style.LineWidth}

	strokeSlider := widget.NewSlider(1.0, 50.0)
	strokeSlider.SetValue(style.LineWidth)
	strokeSlider.OnChanged = func(val float64) {
		board.SetStroke(val)
	}

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			if st.erasing {
				st.erasing = false
				board.SetColor(st.penColor)
				strokeSlider.SetValue(st.penWidth)
			}
		}), // Pen
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			if !st.erasing {
				cur := board.Session().Style()
				st.penColor, st.penWidth = cur.StrokeColor, cur.LineWidth
				st.erasing = true
			}
			board.Eraser()
			strokeSlider.SetValue(20.0)
		}), // Eraser
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), board.ClearBoard),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			if err := board.SavePNG(); err != nil {
				slog.Warn("save failed", slog.Any("error", err))
				board.SetStatus(err.Error())
			}
		}),
	)

	// --- Color Palette ---
	onColorTapped := func(c color.Color) {
		st.erasing = false
		st.penColor = c
		board.SetColor(c)
	}
	colorBox := container.NewHBox()
	for _, c := range palette {
		colorBox.Add(newColorSwatch(c, onColorTapped))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	// --- Join and shape selectors ---
	joins := make([]string, 0, len(paint.LineJoins()))
	for _, j := range paint.LineJoins() {
		joins = append(joins, j.String())
	}
	joinSelect := widget.NewSelect(joins, func(name string) {
		if j, err := paint.ParseLineJoin(name); err == nil {
			board.SetJoin(j)
		}
	})
	joinSelect.SetSelected(style.LineJoin.String())

	kinds := make([]string, 0, len(paint.ShapeKinds()))
	for _, k := range paint.ShapeKinds() {
		kinds = append(kinds, k.String())
	}
	shapeSelect := widget.NewSelect(kinds, func(name string) {
		if k, err := paint.ParseShapeKind(name); err == nil {
			board.SetShapeKind(k)
		}
	})
	shapeSelect.SetSelected(board.Session().ShapeKind().String())

	// --- Assemble everything ---
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widget.NewLabel("Join:"),
		joinSelect,
		widget.NewLabel("Shape:"),
		shapeSelect,
		layout.NewSpacer(),
	)
}
