package surface

import (
	"errors"
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalPaint/internal/paint"
)

type countingContext struct {
	ops int
	err error
}

func (c *countingContext) SetLineWidth(float64)       { c.ops++ }
func (c *countingContext) SetStrokeColor(color.Color) { c.ops++ }
func (c *countingContext) SetLineJoin(paint.LineJoin) { c.ops++ }
func (c *countingContext) BeginPath()                 { c.ops++ }
func (c *countingContext) MoveTo(float64, float64)    { c.ops++ }
func (c *countingContext) LineTo(float64, float64)    { c.ops++ }
func (c *countingContext) Arc(_, _, _, _, _ float64)  { c.ops++ }
func (c *countingContext) Rect(_, _, _, _ float64)    { c.ops++ }
func (c *countingContext) Stroke() error              { c.ops++; return c.err }

type stubSurface struct {
	ctx *countingContext
}

func (s stubSurface) Context() paint.Context {
	if s.ctx == nil {
		return nil
	}
	return s.ctx
}

func TestMultiFansOut(t *testing.T) {
	a, b := &countingContext{}, &countingContext{}
	m := Multi{stubSurface{a}, stubSurface{}, nil, stubSurface{b}}

	paint.Render(m, paint.Segment{A: paint.Pt(0, 0), B: paint.Pt(1, 1)}, paint.DefaultStyle())
	assert.Equal(t, 7, a.ops)
	assert.Equal(t, 7, b.ops)

	paint.Render(m, paint.Square{A: paint.Pt(0, 0), B: paint.Pt(1, 1)}, paint.DefaultStyle())
	assert.Equal(t, 13, a.ops)
	assert.Equal(t, 13, b.ops)
}

func TestMultiWithoutMembers(t *testing.T) {
	assert.Nil(t, Multi{}.Context())
	assert.Nil(t, Multi{stubSurface{}}.Context())
}

func TestMultiStrokeJoinsErrors(t *testing.T) {
	errA, errB := errors.New("a"), fmt.Errorf("b")
	a := &countingContext{err: errA}
	b := &countingContext{err: errB}
	c := &countingContext{}
	ctx := Multi{stubSurface{a}, stubSurface{b}, stubSurface{c}}.Context()
	require.NotNil(t, ctx)

	err := ctx.Stroke()
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.Equal(t, 1, c.ops, "later members still stroke")
}
