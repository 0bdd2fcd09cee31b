package paint

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Session is the pointer-driven state machine behind a stroke. It is idle
// until Start, paints one shape per Extend while active, and returns to idle
// on End. A Session is owned by a single event loop and is not safe for
// concurrent use.
type Session struct {
	surface Surface
	render  RenderFunc

	kind  ShapeKind
	style StyleSpec

	active  bool
	last    Coordinate
	hasLast bool

	// strokeID tags log records of the stroke in progress. It is only
	// generated when debug logging is enabled.
	strokeID string
}

// Option configures a Session at construction.
type Option func(*Session)

// WithShapeKind sets the initial shape kind. Invalid kinds are ignored.
func WithShapeKind(kind ShapeKind) Option {
	return func(s *Session) {
		if kind.Valid() {
			s.kind = kind
		}
	}
}

// WithStyle sets the initial style. Invalid styles are ignored.
func WithStyle(style StyleSpec) Option {
	return func(s *Session) {
		if style.Validate() == nil {
			s.style = style
		}
	}
}

// WithRenderer replaces Render, mainly for tests and for hosts that want to
// observe each painted shape.
func WithRenderer(fn RenderFunc) Option {
	return func(s *Session) {
		if fn != nil {
			s.render = fn
		}
	}
}

// NewSession returns an idle session painting onto surface with segments in
// DefaultStyle unless overridden by opts.
func NewSession(surface Surface, opts ...Option) *Session {
	s := &Session{
		surface: surface,
		render:  Render,
		kind:    KindSegment,
		style:   DefaultStyle(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins a stroke at p. No shape is painted. Calling Start during a
// stroke restarts it at p.
func (s *Session) Start(p Coordinate) {
	if s.active {
		Logger().Debug("stroke restarted", slog.String("stroke", s.strokeID))
	}
	s.active = true
	s.last = p
	s.hasLast = true
	s.strokeID = ""
	if Logger().Enabled(context.Background(), slog.LevelDebug) {
		s.strokeID = uuid.NewString()
	}
	Logger().Debug("stroke started",
		slog.String("stroke", s.strokeID),
		slog.Float64("x", p.X), slog.Float64("y", p.Y))
}

// Extend paints the configured shape from the last recorded point to p and
// records p. It is ignored while idle.
func (s *Session) Extend(p Coordinate) {
	if !s.active || !s.hasLast {
		Logger().Debug("extend ignored", slog.Bool("active", s.active))
		return
	}
	s.render(s.surface, NewShape(s.kind, s.last, p), s.style)
	s.last = p
}

// End finishes the current stroke. It is ignored while idle.
func (s *Session) End() {
	if !s.active {
		Logger().Debug("end ignored")
		return
	}
	Logger().Debug("stroke ended", slog.String("stroke", s.strokeID))
	s.active = false
	s.hasLast = false
	s.last = Coordinate{}
	s.strokeID = ""
}

// ConfigureStyle sets the style for subsequent shapes, including those of
// a stroke already in progress. An invalid style is rejected and the
// current one kept.
func (s *Session) ConfigureStyle(style StyleSpec) error {
	if err := style.Validate(); err != nil {
		return err
	}
	s.style = style
	Logger().Debug("style configured",
		slog.String("color", FormatColor(style.StrokeColor)),
		slog.String("join", style.LineJoin.String()),
		slog.Float64("width", style.LineWidth))
	return nil
}

// ConfigureShapeKind sets the shape built for subsequent steps.
func (s *Session) ConfigureShapeKind(kind ShapeKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownShapeKind, kind)
	}
	s.kind = kind
	Logger().Debug("shape kind configured", slog.String("kind", kind.String()))
	return nil
}

// Active reports whether a stroke is in progress.
func (s *Session) Active() bool { return s.active }

// LastPoint returns the last recorded point, if any.
func (s *Session) LastPoint() (Coordinate, bool) { return s.last, s.hasLast }

// ShapeKind returns the configured shape kind.
func (s *Session) ShapeKind() ShapeKind { return s.kind }

// Style returns the configured style.
func (s *Session) Style() StyleSpec { return s.style }
