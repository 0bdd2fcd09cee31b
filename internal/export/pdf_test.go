package export

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalPaint/internal/paint"
)

func TestPDFMirrorsStrokes(t *testing.T) {
	doc := NewPDF(200, 100)
	s := paint.NewSession(doc)
	for _, kind := range paint.ShapeKinds() {
		require.NoError(t, s.ConfigureShapeKind(kind))
		s.Start(paint.Pt(10, 10))
		s.Extend(paint.Pt(20, 10))
		s.Extend(paint.Pt(20, 20))
		s.End()
	}

	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestPDFDegenerateShapes(t *testing.T) {
	doc := NewPDF(50, 50)
	p := paint.Pt(5, 5)
	assert.NotPanics(t, func() {
		paint.Render(doc, paint.Circle{Center: p, Edge: p}, paint.DefaultStyle())
		paint.Render(doc, paint.Square{A: p, B: p}, paint.DefaultStyle())
	})
	var buf bytes.Buffer
	_, err := doc.WriteTo(&buf)
	assert.NoError(t, err)
}

func TestPDFSaveDetaches(t *testing.T) {
	doc := NewPDF(100, 100)
	paint.Render(doc, paint.Segment{A: paint.Pt(0, 0), B: paint.Pt(50, 50)}, paint.DefaultStyle())

	path := filepath.Join(t.TempDir(), "board.pdf")
	require.NoError(t, doc.Save(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Nil(t, doc.Context())
	assert.ErrorIs(t, doc.Save(path), ErrClosed)
	_, err = doc.WriteTo(&bytes.Buffer{})
	assert.ErrorIs(t, err, ErrClosed)

	assert.NotPanics(t, func() {
		paint.Render(doc, paint.Segment{B: paint.Pt(1, 1)}, paint.DefaultStyle())
	})
}

var pathArity = map[string]int{"m": 2, "l": 2, "c": 6, "re": 4}

type pdfOp struct {
	name string
	args []float64
}

// contentOps renders shapes onto an uncompressed page and returns the path
// operators of its content stream.
func contentOps(t *testing.T, width, height float64, shapes ...paint.Shape) []pdfOp {
	t.Helper()
	doc := NewPDF(width, height)
	doc.doc.SetCompression(false)
	for _, s := range shapes {
		paint.Render(doc, s, paint.DefaultStyle())
	}
	var buf bytes.Buffer
	_, err := doc.WriteTo(&buf)
	require.NoError(t, err)

	var ops []pdfOp
	for _, line := range strings.Split(buf.String(), "\n") {
		// An operator may be followed by a painting operator on the same
		// line, as in "x y w h re S".
		fields := strings.Fields(line)
		want, name := 0, ""
		for i, f := range fields {
			if n, ok := pathArity[f]; ok && n == i {
				want, name = n, f
				break
			}
		}
		if name == "" {
			continue
		}
		args := make([]float64, 0, want)
		for _, f := range fields[:want] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				break
			}
			args = append(args, v)
		}
		if len(args) == want {
			ops = append(ops, pdfOp{name: name, args: args})
		}
	}
	return ops
}

func TestPDFSegmentGeometry(t *testing.T) {
	ops := contentOps(t, 200, 200, paint.Segment{A: paint.Pt(10, 10), B: paint.Pt(20, 10)})
	require.Len(t, ops, 2)
	assert.Equal(t, "m", ops[0].name)
	assert.InDeltaSlice(t, []float64{10, 190}, ops[0].args, 0.01)
	assert.Equal(t, "l", ops[1].name)
	assert.InDeltaSlice(t, []float64{20, 190}, ops[1].args, 0.01)
}

func TestPDFSquareGeometry(t *testing.T) {
	ops := contentOps(t, 200, 200, paint.Square{A: paint.Pt(1, 2), B: paint.Pt(4, 6)})
	require.Len(t, ops, 1)
	assert.Equal(t, "re", ops[0].name)
	// Anchored at A with side |AB| = 5; PDF y grows upwards.
	assert.InDeltaSlice(t, []float64{1, 198, 5, -5}, ops[0].args, 0.01)
}

func TestPDFCircleGeometry(t *testing.T) {
	const cx, cy, r = 100.0, 100.0, 50.0
	ops := contentOps(t, 200, 200, paint.Circle{Center: paint.Pt(cx, cy), Edge: paint.Pt(cx+r, cy)})
	require.NotEmpty(t, ops)
	require.Equal(t, "m", ops[0].name)

	// PDF centre is (100, 200-100).
	dist := func(x, y float64) float64 { return math.Hypot(x-cx, y-(200-cy)) }
	cur := [2]float64{ops[0].args[0], ops[0].args[1]}
	assert.InDelta(t, r, dist(cur[0], cur[1]), 0.01)

	curves := 0
	for _, op := range ops[1:] {
		require.Equal(t, "c", op.name)
		a := op.args
		assert.InDelta(t, r, dist(a[4], a[5]), 0.01, "curve end")
		midX := (cur[0] + 3*a[0] + 3*a[2] + a[4]) / 8
		midY := (cur[1] + 3*a[1] + 3*a[3] + a[5]) / 8
		assert.InDelta(t, r, dist(midX, midY), 0.5, "curve midpoint")
		cur = [2]float64{a[4], a[5]}
		curves++
	}
	assert.Equal(t, 6, curves)
}
