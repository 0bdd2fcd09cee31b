package paint

import (
	"errors"
	"fmt"
	"image/color"
)

// recorder is a Context that logs every call it receives.
type recorder struct {
	ops       []string
	strokeErr error
}

func (r *recorder) add(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recorder) SetLineWidth(w float64)       { r.add("width %g", w) }
func (r *recorder) SetStrokeColor(c color.Color) { r.add("color %s", FormatColor(c)) }
func (r *recorder) SetLineJoin(j LineJoin)       { r.add("join %s", j) }
func (r *recorder) BeginPath()                   { r.add("begin") }
func (r *recorder) MoveTo(x, y float64)          { r.add("move %g,%g", x, y) }
func (r *recorder) LineTo(x, y float64)          { r.add("line %g,%g", x, y) }
func (r *recorder) Arc(x, y, radius, a0, a1 float64) {
	r.add("arc %g,%g r=%g %.4f..%.4f", x, y, radius, a0, a1)
}
func (r *recorder) Rect(x, y, w, h float64) { r.add("rect %g,%g %gx%g", x, y, w, h) }
func (r *recorder) Stroke() error {
	r.add("stroke")
	return r.strokeErr
}

// recordingSurface hands out its recorder, or nothing when detached.
type recordingSurface struct {
	rec      *recorder
	detached bool
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{rec: &recorder{}}
}

func (s *recordingSurface) Context() Context {
	if s.detached {
		return nil
	}
	return s.rec
}

type renderCall struct {
	shape Shape
	style StyleSpec
}

// renderLog collects shapes passed to a RenderFunc.
type renderLog struct {
	calls []renderCall
}

func (l *renderLog) render(_ Surface, shape Shape, style StyleSpec) {
	l.calls = append(l.calls, renderCall{shape: shape, style: style})
}

var errStroke = errors.New("stroke exploded")
