package paint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleCenterIsFirstPoint(t *testing.T) {
	a, b := Pt(10, 10), Pt(13, 14)

	c := NewShape(KindCircle, a, b).(Circle)
	assert.Equal(t, a, c.Center)
	assert.Equal(t, 5.0, c.Radius())

	swapped := NewShape(KindCircle, b, a).(Circle)
	assert.Equal(t, b, swapped.Center)
	assert.Equal(t, c.Radius(), swapped.Radius())
}

func TestSquareSideIsDistance(t *testing.T) {
	s := NewShape(KindSquare, Pt(1, 2), Pt(4, 6)).(Square)
	assert.Equal(t, 5.0, s.Side())
	a, b := s.Endpoints()
	assert.Equal(t, Pt(1, 2), a)
	assert.Equal(t, Pt(4, 6), b)
}

func TestDegenerateShapes(t *testing.T) {
	p := Pt(3, 3)
	assert.Equal(t, 0.0, Circle{Center: p, Edge: p}.Radius())
	assert.Equal(t, 0.0, Square{A: p, B: p}.Side())
}

func TestNewShape(t *testing.T) {
	a, b := Pt(0, 0), Pt(1, 1)
	assert.Equal(t, Segment{A: a, B: b}, NewShape(KindSegment, a, b))
	assert.Equal(t, Circle{Center: a, Edge: b}, NewShape(KindCircle, a, b))
	assert.Equal(t, Square{A: a, B: b}, NewShape(KindSquare, a, b))
	assert.Nil(t, NewShape(ShapeKind(42), a, b))
}

func TestParseShapeKind(t *testing.T) {
	for _, k := range ShapeKinds() {
		got, err := ParseShapeKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseShapeKind(" Line ")
	require.NoError(t, err)
	assert.Equal(t, KindSegment, got)

	_, err = ParseShapeKind("triangle")
	assert.ErrorIs(t, err, ErrUnknownShapeKind)
	assert.False(t, ShapeKind(9).Valid())
	assert.Equal(t, "ShapeKind(9)", ShapeKind(9).String())
}

func TestShapeKindText(t *testing.T) {
	var k ShapeKind
	require.NoError(t, k.UnmarshalText([]byte("SQUARE")))
	assert.Equal(t, KindSquare, k)
	assert.Error(t, k.UnmarshalText([]byte("hexagon")))
	assert.Equal(t, KindSquare, k, "failed unmarshal must not clobber the value")

	_, err := ShapeKind(7).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownShapeKind)
}
