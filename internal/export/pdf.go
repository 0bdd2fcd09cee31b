// Package export mirrors painted strokes into document formats.
package export

import (
	"image/color"
	"io"
	"math"
	"sync"

	"github.com/jung-kurt/gofpdf"

	"LocalPaint/internal/paint"
)

// PDF is a surface that records every stroke as vector graphics on a
// single page the size of the drawing surface, one PDF point per surface
// unit.
type PDF struct {
	mu  sync.Mutex
	doc *gofpdf.Fpdf
}

// NewPDF returns a PDF surface with a width x height page.
func NewPDF(width, height float64) *PDF {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	doc.SetLineCapStyle("round")
	return &PDF{doc: doc}
}

// Context returns a drawing context, or nil once the document is saved.
func (p *PDF) Context() paint.Context {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.doc == nil {
		return nil
	}
	return &pdfContext{p: p}
}

// Save writes the finished document to path. The surface is detached
// afterwards.
func (p *PDF) Save(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.doc == nil {
		return ErrClosed
	}
	doc := p.doc
	p.doc = nil
	return doc.OutputFileAndClose(path)
}

// WriteTo writes the finished document to w and detaches the surface.
func (p *PDF) WriteTo(w io.Writer) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.doc == nil {
		return 0, ErrClosed
	}
	doc := p.doc
	p.doc = nil
	cw := &countingWriter{w: w}
	err := doc.Output(cw)
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}

type pathOp struct {
	kind       byte // 'M', 'L', 'A' or 'R'
	x, y, w, h float64
	from, to   float64
}

// pdfContext buffers path commands until Stroke because gofpdf draws arcs
// and rectangles immediately rather than appending them to a path.
type pdfContext struct {
	p   *PDF
	ops []pathOp
}

func (c *pdfContext) do(fn func(doc *gofpdf.Fpdf)) {
	c.p.mu.Lock()
	defer c.p.mu.Unlock()
	if c.p.doc != nil {
		fn(c.p.doc)
	}
}

func (c *pdfContext) SetLineWidth(width float64) {
	c.do(func(doc *gofpdf.Fpdf) { doc.SetLineWidth(width) })
}

func (c *pdfContext) SetStrokeColor(col color.Color) {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	c.do(func(doc *gofpdf.Fpdf) {
		doc.SetDrawColor(int(n.R), int(n.G), int(n.B))
		doc.SetAlpha(float64(n.A)/255, "Normal")
	})
}

func (c *pdfContext) SetLineJoin(join paint.LineJoin) {
	c.do(func(doc *gofpdf.Fpdf) { doc.SetLineJoinStyle(join.String()) })
}

func (c *pdfContext) BeginPath() { c.ops = c.ops[:0] }

func (c *pdfContext) MoveTo(x, y float64) {
	c.ops = append(c.ops, pathOp{kind: 'M', x: x, y: y})
}

func (c *pdfContext) LineTo(x, y float64) {
	c.ops = append(c.ops, pathOp{kind: 'L', x: x, y: y})
}

// Arc records a circular arc. gofpdf measures angles in degrees
// counter-clockwise with y pointing up, so the sweep is mirrored. The ends
// are swapped to keep the sweep positive; gofpdf only splits a positive
// sweep into 60 degree Bezier segments.
func (c *pdfContext) Arc(x, y, radius, startAngle, endAngle float64) {
	c.ops = append(c.ops, pathOp{
		kind: 'A', x: x, y: y, w: radius, h: radius,
		from: -endAngle * 180 / math.Pi,
		to:   -startAngle * 180 / math.Pi,
	})
}

func (c *pdfContext) Rect(x, y, w, h float64) {
	c.ops = append(c.ops, pathOp{kind: 'R', x: x, y: y, w: w, h: h})
}

func (c *pdfContext) Stroke() error {
	var err error
	c.do(func(doc *gofpdf.Fpdf) {
		open := false
		for _, op := range c.ops {
			switch op.kind {
			case 'M':
				doc.MoveTo(op.x, op.y)
				open = true
			case 'L':
				if !open {
					doc.MoveTo(op.x, op.y)
					open = true
					continue
				}
				doc.LineTo(op.x, op.y)
			case 'A':
				doc.Arc(op.x, op.y, op.w, op.h, 0, op.from, op.to, "D")
			case 'R':
				doc.Rect(op.x, op.y, op.w, op.h, "D")
			}
		}
		if open {
			doc.DrawPath("D")
		}
		err = doc.Error()
	})
	c.ops = c.ops[:0]
	return err
}
