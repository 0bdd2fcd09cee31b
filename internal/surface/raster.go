// Package surface provides drawing surfaces for the painting engine.
package surface

import (
	"errors"
	"image"
	"image/color"
	"sync"

	"github.com/gogpu/gg"

	"LocalPaint/internal/paint"
)

// ErrDetached is returned by operations that need pixels after Detach.
var ErrDetached = errors.New("surface detached")

// Raster is a software raster surface backed by a gg context. The zero
// value is a detached surface.
//
// Exports may read pixels from a goroutine other than the one painting, so
// access to the gg context is serialized.
type Raster struct {
	mu         sync.Mutex
	dc         *gg.Context
	background color.Color
}

// NewRaster returns an attached raster surface of the given size cleared to
// background. A nil background leaves the surface transparent.
func NewRaster(width, height int, background color.Color) *Raster {
	r := &Raster{
		dc:         gg.NewContext(width, height),
		background: background,
	}
	r.clear()
	return r
}

// Context returns a drawing context, or nil once the surface is detached.
func (r *Raster) Context() paint.Context {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dc == nil {
		return nil
	}
	return &rasterContext{r: r}
}

// Size returns the raster dimensions in pixels.
func (r *Raster) Size() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dc == nil {
		return 0, 0
	}
	return r.dc.Width(), r.dc.Height()
}

// Clear repaints the whole surface with the background color.
func (r *Raster) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clear()
}

func (r *Raster) clear() {
	if r.dc == nil {
		return
	}
	if r.background == nil {
		r.dc.Clear()
		return
	}
	r.dc.ClearWithColor(gg.FromColor(r.background))
}

// Image returns a copy of the current pixels, or nil when detached.
func (r *Raster) Image() image.Image {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dc == nil {
		return nil
	}
	return r.dc.Image()
}

// SavePNG writes the current pixels to path.
func (r *Raster) SavePNG(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dc == nil {
		return ErrDetached
	}
	return r.dc.SavePNG(path)
}

// Detach releases the gg context. Later renders become no-ops.
func (r *Raster) Detach() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dc == nil {
		return nil
	}
	err := r.dc.Close()
	r.dc = nil
	return err
}

// rasterContext forwards paint.Context calls to the gg context. Every call
// re-checks attachment so a context obtained before Detach stays harmless.
type rasterContext struct {
	r *Raster
}

func (c *rasterContext) do(fn func(dc *gg.Context)) {
	c.r.mu.Lock()
	defer c.r.mu.Unlock()
	if c.r.dc != nil {
		fn(c.r.dc)
	}
}

func (c *rasterContext) SetLineWidth(width float64) {
	c.do(func(dc *gg.Context) { dc.SetLineWidth(width) })
}

func (c *rasterContext) SetStrokeColor(col color.Color) {
	c.do(func(dc *gg.Context) { dc.SetColor(col) })
}

func (c *rasterContext) SetLineJoin(join paint.LineJoin) {
	c.do(func(dc *gg.Context) { dc.SetLineJoin(ggJoin(join)) })
}

func (c *rasterContext) BeginPath() {
	c.do(func(dc *gg.Context) { dc.ClearPath() })
}

func (c *rasterContext) MoveTo(x, y float64) {
	c.do(func(dc *gg.Context) { dc.MoveTo(x, y) })
}

func (c *rasterContext) LineTo(x, y float64) {
	c.do(func(dc *gg.Context) { dc.LineTo(x, y) })
}

func (c *rasterContext) Arc(x, y, radius, startAngle, endAngle float64) {
	c.do(func(dc *gg.Context) { dc.DrawArc(x, y, radius, startAngle, endAngle) })
}

func (c *rasterContext) Rect(x, y, w, h float64) {
	c.do(func(dc *gg.Context) { dc.DrawRectangle(x, y, w, h) })
}

func (c *rasterContext) Stroke() error {
	var err error
	c.do(func(dc *gg.Context) { err = dc.Stroke() })
	return err
}

func ggJoin(j paint.LineJoin) gg.LineJoin {
	switch j {
	case paint.JoinRound:
		return gg.LineJoinRound
	case paint.JoinBevel:
		return gg.LineJoinBevel
	}
	return gg.LineJoinMiter
}
