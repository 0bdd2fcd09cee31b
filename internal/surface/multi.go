package surface

import (
	"errors"
	"image/color"

	"LocalPaint/internal/paint"
)

// Multi fans every drawing call out to its members in order. Members
// without a context are skipped; Multi itself has no context only when none
// of its members has one.
type Multi []paint.Surface

// Context returns a context over the currently attached members.
func (m Multi) Context() paint.Context {
	var ctxs multiContext
	for _, s := range m {
		if s == nil {
			continue
		}
		if ctx := s.Context(); ctx != nil {
			ctxs = append(ctxs, ctx)
		}
	}
	if len(ctxs) == 0 {
		return nil
	}
	return ctxs
}

type multiContext []paint.Context

func (m multiContext) SetLineWidth(width float64) {
	for _, c := range m {
		c.SetLineWidth(width)
	}
}

func (m multiContext) SetStrokeColor(col color.Color) {
	for _, c := range m {
		c.SetStrokeColor(col)
	}
}

func (m multiContext) SetLineJoin(join paint.LineJoin) {
	for _, c := range m {
		c.SetLineJoin(join)
	}
}

func (m multiContext) BeginPath() {
	for _, c := range m {
		c.BeginPath()
	}
}

func (m multiContext) MoveTo(x, y float64) {
	for _, c := range m {
		c.MoveTo(x, y)
	}
}

func (m multiContext) LineTo(x, y float64) {
	for _, c := range m {
		c.LineTo(x, y)
	}
}

func (m multiContext) Arc(x, y, radius, startAngle, endAngle float64) {
	for _, c := range m {
		c.Arc(x, y, radius, startAngle, endAngle)
	}
}

func (m multiContext) Rect(x, y, w, h float64) {
	for _, c := range m {
		c.Rect(x, y, w, h)
	}
}

// Stroke commits on every member even if an earlier one fails.
func (m multiContext) Stroke() error {
	var errs []error
	for _, c := range m {
		if err := c.Stroke(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
