package paint

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// LineJoin is the shape drawn where two stroked path segments meet.
type LineJoin uint8

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

var lineJoinNames = [...]string{
	JoinMiter: "miter",
	JoinRound: "round",
	JoinBevel: "bevel",
}

// LineJoins lists every join in declaration order.
func LineJoins() []LineJoin {
	return []LineJoin{JoinMiter, JoinRound, JoinBevel}
}

func (j LineJoin) String() string {
	if j.Valid() {
		return lineJoinNames[j]
	}
	return fmt.Sprintf("LineJoin(%d)", j)
}

// Valid reports whether j is one of miter, round or bevel.
func (j LineJoin) Valid() bool {
	return int(j) < len(lineJoinNames)
}

// ParseLineJoin parses a join name case-insensitively.
func ParseLineJoin(s string) (LineJoin, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for j, n := range lineJoinNames {
		if n == name {
			return LineJoin(j), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLineJoin, s)
}

func (j LineJoin) MarshalText() ([]byte, error) {
	if !j.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLineJoin, j)
	}
	return []byte(j.String()), nil
}

func (j *LineJoin) UnmarshalText(text []byte) error {
	v, err := ParseLineJoin(string(text))
	if err != nil {
		return err
	}
	*j = v
	return nil
}

// StyleSpec is the stroke style applied when a shape is rendered. It is a
// plain value; a Session keeps its own copy.
type StyleSpec struct {
	StrokeColor color.Color
	LineJoin    LineJoin
	LineWidth   float64
}

// DefaultStyle is a yellow, bevel-joined, five unit wide stroke.
func DefaultStyle() StyleSpec {
	return StyleSpec{
		StrokeColor: colornames.Yellow,
		LineJoin:    JoinBevel,
		LineWidth:   5,
	}
}

// NewStyle builds a StyleSpec from textual color and join values.
func NewStyle(strokeColor, lineJoin string, lineWidth float64) (StyleSpec, error) {
	c, err := ParseColor(strokeColor)
	if err != nil {
		return StyleSpec{}, err
	}
	j, err := ParseLineJoin(lineJoin)
	if err != nil {
		return StyleSpec{}, err
	}
	s := StyleSpec{StrokeColor: c, LineJoin: j, LineWidth: lineWidth}
	if err := s.Validate(); err != nil {
		return StyleSpec{}, err
	}
	return s, nil
}

// Validate reports whether s can be applied to a surface.
func (s StyleSpec) Validate() error {
	switch {
	case s.StrokeColor == nil:
		return fmt.Errorf("%w: no stroke color", ErrInvalidStyle)
	case !s.LineJoin.Valid():
		return fmt.Errorf("%w: %w", ErrInvalidStyle, ErrUnknownLineJoin)
	case !(s.LineWidth > 0):
		return fmt.Errorf("%w: line width %v is not positive", ErrInvalidStyle, s.LineWidth)
	}
	return nil
}

// ParseColor accepts a CSS color name ("yellow") or a hex triplet in short
// ("#ff0") or long ("#ffff00") form.
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// FormatColor renders c as a "#rrggbb" string, ignoring alpha.
func FormatColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
