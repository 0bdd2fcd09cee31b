package paint

import (
	"image/color"
	"log/slog"
	"math"
)

// Context is a 2D stroke-capable drawing context.
type Context interface {
	SetLineWidth(width float64)
	SetStrokeColor(c color.Color)
	SetLineJoin(join LineJoin)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a circular arc centred on (x, y). Angles are in radians.
	Arc(x, y, radius, startAngle, endAngle float64)
	Rect(x, y, w, h float64)
	// Stroke outlines the current path with the current style.
	Stroke() error
}

// Surface is anything that can hand out a drawing context. Context returns
// nil while the surface is not attached.
type Surface interface {
	Context() Context
}

// Render strokes the outline of shape on surface using style. A nil
// surface, a surface without a context, or a nil shape makes the call a
// no-op. Stroke failures are logged and dropped.
func Render(surface Surface, shape Shape, style StyleSpec) {
	if surface == nil || shape == nil {
		return
	}
	ctx := surface.Context()
	if ctx == nil {
		return
	}

	ctx.SetLineWidth(style.LineWidth)
	ctx.SetStrokeColor(style.StrokeColor)
	ctx.SetLineJoin(style.LineJoin)

	ctx.BeginPath()
	switch s := shape.(type) {
	case Segment:
		ctx.MoveTo(s.A.X, s.A.Y)
		ctx.LineTo(s.B.X, s.B.Y)
	case Circle:
		ctx.Arc(s.Center.X, s.Center.Y, s.Radius(), 0, 2*math.Pi)
	case Square:
		side := s.Side()
		ctx.Rect(s.A.X, s.A.Y, side, side)
	default:
		return
	}

	if err := ctx.Stroke(); err != nil {
		Logger().Warn("stroke failed", slog.String("shape", shapeName(shape)), slog.Any("error", err))
	}
}

func shapeName(s Shape) string {
	switch s.(type) {
	case Segment:
		return KindSegment.String()
	case Circle:
		return KindCircle.String()
	case Square:
		return KindSquare.String()
	}
	return "unknown"
}

// RenderFunc paints one shape. Render is the default used by a Session.
type RenderFunc func(surface Surface, shape Shape, style StyleSpec)
