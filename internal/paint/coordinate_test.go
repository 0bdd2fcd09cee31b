package paint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToLocal(t *testing.T) {
	tests := []struct {
		device, origin, want Coordinate
	}{
		{Pt(10, 10), Pt(0, 0), Pt(10, 10)},
		{Pt(110, 45), Pt(100, 40), Pt(10, 5)},
		{Pt(5, 5), Pt(10, 20), Pt(-5, -15)},
		{Pt(0.75, 1.25), Pt(0.25, 0.5), Pt(0.5, 0.75)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToLocal(tt.device, tt.origin), "ToLocal(%v, %v)", tt.device, tt.origin)
	}
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Pt(0, 0).Distance(Pt(3, 4)))
	assert.Equal(t, 5.0, Pt(3, 4).Distance(Pt(0, 0)))
	assert.Equal(t, 0.0, Pt(7, -2).Distance(Pt(7, -2)))
	assert.InDelta(t, math.Sqrt2, Pt(1, 1).Distance(Pt(2, 2)), 1e-12)
}
