package ui

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/config"
	"LocalPaint/internal/export"
	"LocalPaint/internal/paint"
	"LocalPaint/internal/surface"
)

// BoardWidget hosts a paint session on a raster surface and feeds it the
// desktop pointer events it receives.
type BoardWidget struct {
	widget.BaseWidget

	session    *paint.Session
	raster     *surface.Raster
	pdf        *export.PDF
	background color.Color
	output     config.Output

	// origin reports the board's top-left corner in device space.
	origin func() fyne.Position

	statusBar *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

// NewBoardWidget builds a board from a validated configuration. When a PDF
// output is configured every stroke is mirrored into it.
func NewBoardWidget(cfg config.Config) (*BoardWidget, error) {
	style, err := cfg.StyleSpec()
	if err != nil {
		return nil, fmt.Errorf("board style: %w", err)
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, fmt.Errorf("board background: %w", err)
	}

	b := &BoardWidget{
		raster:     surface.NewRaster(cfg.Width, cfg.Height, bg),
		background: bg,
		output:     cfg.Output,
		statusBar:  widget.NewLabel("Ready"),
	}
	var target paint.Surface = b.raster
	if cfg.Output.PDF != "" {
		b.pdf = export.NewPDF(float64(cfg.Width), float64(cfg.Height))
		target = surface.Multi{b.raster, b.pdf}
	}
	b.session = paint.NewSession(target,
		paint.WithShapeKind(cfg.Shape),
		paint.WithStyle(style),
	)
	b.origin = b.absolutePosition
	b.ExtendBaseWidget(b)
	return b, nil
}

func (b *BoardWidget) absolutePosition() fyne.Position {
	app := fyne.CurrentApp()
	if app == nil {
		return fyne.Position{}
	}
	return app.Driver().AbsolutePositionForObject(b)
}

// Session exposes the underlying paint session.
func (b *BoardWidget) Session() *paint.Session { return b.session }

// StatusBar returns the label the board reports into.
func (b *BoardWidget) StatusBar() *widget.Label { return b.statusBar }

// SetStatus updates the status label from any goroutine.
func (b *BoardWidget) SetStatus(text string) {
	fyne.Do(func() {
		b.statusBar.SetText(text)
	})
}

func (b *BoardWidget) toLocal(abs fyne.Position) paint.Coordinate {
	o := b.origin()
	return paint.ToLocal(
		paint.Pt(float64(abs.X), float64(abs.Y)),
		paint.Pt(float64(o.X), float64(o.Y)),
	)
}

// SetColor changes the stroke color, keeping join and width.
func (b *BoardWidget) SetColor(c color.Color) {
	style := b.session.Style()
	style.StrokeColor = c
	b.configureStyle(style)
}

// SetStroke changes the stroke width.
func (b *BoardWidget) SetStroke(width float64) {
	style := b.session.Style()
	style.LineWidth = width
	b.configureStyle(style)
}

// SetJoin changes the line join.
func (b *BoardWidget) SetJoin(join paint.LineJoin) {
	style := b.session.Style()
	style.LineJoin = join
	b.configureStyle(style)
}

func (b *BoardWidget) configureStyle(style paint.StyleSpec) {
	if err := b.session.ConfigureStyle(style); err != nil {
		slog.Warn("style rejected", slog.Any("error", err))
		b.SetStatus(err.Error())
	}
}

// SetShapeKind changes the shape drawn for each step of a stroke.
func (b *BoardWidget) SetShapeKind(kind paint.ShapeKind) {
	if err := b.session.ConfigureShapeKind(kind); err != nil {
		slog.Warn("shape kind rejected", slog.Any("error", err))
		b.SetStatus(err.Error())
	}
}

// Apply pushes the knobs of a reloaded configuration into the session.
// Surface size and outputs are fixed at construction and are not changed.
func (b *BoardWidget) Apply(cfg config.Config) {
	style, err := cfg.StyleSpec()
	if err != nil {
		b.SetStatus(fmt.Sprintf("Config ignored: %v", err))
		return
	}
	b.configureStyle(style)
	b.SetShapeKind(cfg.Shape)
	b.SetStatus("Config reloaded")
}

// Eraser paints with the background color.
func (b *BoardWidget) Eraser() {
	bg := b.background
	if _, _, _, a := bg.RGBA(); a == 0 {
		bg = color.White
	}
	b.SetColor(bg)
}

// ClearBoard wipes the raster. The PDF mirror keeps what was drawn.
func (b *BoardWidget) ClearBoard() {
	b.raster.Clear()
	b.Refresh()
	b.SetStatus("Cleared")
}

// SavePNG writes the raster to the configured PNG output.
func (b *BoardWidget) SavePNG() error {
	if b.output.PNG == "" {
		return errors.New("no PNG output configured")
	}
	if err := b.raster.SavePNG(b.output.PNG); err != nil {
		return fmt.Errorf("save %s: %w", b.output.PNG, err)
	}
	slog.Info("saved PNG", slog.String("path", b.output.PNG))
	b.SetStatus("Saved " + b.output.PNG)
	return nil
}

// Close ends any stroke, writes configured outputs and detaches the
// surfaces. Later pointer events paint nothing.
func (b *BoardWidget) Close() error {
	b.session.End()
	var errs []error
	if b.output.PNG != "" {
		if err := b.SavePNG(); err != nil {
			errs = append(errs, err)
		}
	}
	if b.pdf != nil {
		if err := b.pdf.Save(b.output.PDF); err != nil && !errors.Is(err, export.ErrClosed) {
			errs = append(errs, fmt.Errorf("save %s: %w", b.output.PDF, err))
		} else if err == nil {
			slog.Info("saved PDF", slog.String("path", b.output.PDF))
		}
	}
	if err := b.raster.Detach(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.session.Start(b.toLocal(e.AbsolutePosition))
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.session.End()
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.extend(e.AbsolutePosition)
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.extend(e.AbsolutePosition)
}

func (b *BoardWidget) extend(abs fyne.Position) {
	if !b.session.Active() {
		return
	}
	p := b.toLocal(abs)
	// fyne sends no MouseOut to the object being dragged, so leaving the
	// surface is detected here.
	if w, h := b.raster.Size(); p.X < 0 || p.Y < 0 || p.X >= float64(w) || p.Y >= float64(h) {
		b.session.End()
		return
	}
	b.session.Extend(p)
	b.Refresh()
}

// DragEnd and MouseOut both end the stroke; End is a no-op when idle.
func (b *BoardWidget) DragEnd()                    { b.session.End() }
func (b *BoardWidget) MouseOut()                   { b.session.End() }
func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.image = canvas.NewRaster(func(int, int) image.Image {
		if img := b.raster.Image(); img != nil {
			return img
		}
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	})
	r.image.ScaleMode = canvas.ImageScalePixels
	return r
}

type boardWidgetRenderer struct {
	board *BoardWidget
	image *canvas.Raster
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.image}
}

// Layout pins the raster to the top-left at its native size so widget
// coordinates and surface coordinates coincide.
func (r *boardWidgetRenderer) Layout(fyne.Size) {
	r.image.Move(fyne.NewPos(0, 0))
	r.image.Resize(r.MinSize())
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	w, h := r.board.raster.Size()
	if w == 0 || h == 0 {
		return fyne.NewSize(300, 300)
	}
	return fyne.NewSize(float32(w), float32(h))
}

func (r *boardWidgetRenderer) Refresh() {
	r.image.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}
