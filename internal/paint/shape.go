package paint

import (
	"fmt"
	"strings"
)

// Shape is one of Segment, Circle or Square. The set is closed: only types
// in this package implement it.
type Shape interface {
	// Endpoints returns the two points the shape was built from.
	Endpoints() (a, b Coordinate)
	shape()
}

// Segment is the straight line from A to B.
type Segment struct {
	A, B Coordinate
}

// Circle is centred on Center and passes through Edge.
type Circle struct {
	Center, Edge Coordinate
}

// Square is the axis-aligned square anchored at A whose side equals the
// distance from A to B. It does not pass through B.
type Square struct {
	A, B Coordinate
}

func (s Segment) Endpoints() (Coordinate, Coordinate) { return s.A, s.B }
func (c Circle) Endpoints() (Coordinate, Coordinate)  { return c.Center, c.Edge }
func (s Square) Endpoints() (Coordinate, Coordinate)  { return s.A, s.B }

func (Segment) shape() {}
func (Circle) shape()  {}
func (Square) shape()  {}

// Radius is the distance from Center to Edge. Zero is legal.
func (c Circle) Radius() float64 {
	return c.Center.Distance(c.Edge)
}

// Side is the distance from A to B. Zero is legal.
func (s Square) Side() float64 {
	return s.A.Distance(s.B)
}

// ShapeKind selects which Shape a Session builds for each step of a stroke.
type ShapeKind uint8

const (
	KindSegment ShapeKind = iota
	KindCircle
	KindSquare
)

var shapeKindNames = [...]string{
	KindSegment: "segment",
	KindCircle:  "circle",
	KindSquare:  "square",
}

// ShapeKinds lists every kind in declaration order.
func ShapeKinds() []ShapeKind {
	return []ShapeKind{KindSegment, KindCircle, KindSquare}
}

func (k ShapeKind) String() string {
	if int(k) < len(shapeKindNames) {
		return shapeKindNames[k]
	}
	return fmt.Sprintf("ShapeKind(%d)", k)
}

// Valid reports whether k names a known kind.
func (k ShapeKind) Valid() bool {
	return int(k) < len(shapeKindNames)
}

// ParseShapeKind parses a kind name case-insensitively. "line" is accepted
// as an alias for segment.
func ParseShapeKind(s string) (ShapeKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "line" {
		return KindSegment, nil
	}
	for k, n := range shapeKindNames {
		if n == name {
			return ShapeKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShapeKind, s)
}

func (k ShapeKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShapeKind, k)
	}
	return []byte(k.String()), nil
}

func (k *ShapeKind) UnmarshalText(text []byte) error {
	v, err := ParseShapeKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// NewShape builds the shape of the given kind spanning a to b.
// An unknown kind yields nil.
func NewShape(kind ShapeKind, a, b Coordinate) Shape {
	switch kind {
	case KindSegment:
		return Segment{A: a, B: b}
	case KindCircle:
		return Circle{Center: a, Edge: b}
	case KindSquare:
		return Square{A: a, B: b}
	}
	return nil
}
