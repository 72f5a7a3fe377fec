// Implements an abstract representation of
// svg paths, which is then written as the
// `d` attribute of the output elements.
package svgpath

import (
	"strconv"
	"strings"

	"github.com/benoitkugler/svgchart/svggeom"
)

type pathCommand uint8

// Human readable path constants
const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathArcTo
	pathClose
)

// Operation groups the different SVG commands
type Operation interface {
	command() pathCommand
}

type MoveTo svggeom.Point

type LineTo svggeom.Point

// ArcTo is an elliptical arc, with no axis rotation.
type ArcTo struct {
	RX, RY   float64
	LargeArc bool
	Sweep    bool
	To       svggeom.Point
}

type Close struct{}

func (MoveTo) command() pathCommand { return pathMoveTo }
func (LineTo) command() pathCommand { return pathLineTo }
func (ArcTo) command() pathCommand  { return pathArcTo }
func (Close) command() pathCommand  { return pathClose }

// Path describes a sequence of basic SVG operations.
type Path []Operation

func formatPoint(b *strings.Builder, x, y float64) {
	b.WriteString(strconv.FormatFloat(x, 'f', 4, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(y, 'f', 4, 64))
}

func flag(b bool) byte {
	if b {
		return '1'
	}
	return '0'
}

// ToSVGPath returns a string representation of the path,
// with coordinates written with 4 decimals.
func (p Path) ToSVGPath() string {
	var b strings.Builder
	for i, op := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch op := op.(type) {
		case MoveTo:
			b.WriteString("M ")
			formatPoint(&b, op.X, op.Y)
		case LineTo:
			b.WriteString("L ")
			formatPoint(&b, op.X, op.Y)
		case ArcTo:
			b.WriteString("A ")
			formatPoint(&b, op.RX, op.RY)
			b.WriteString(" 0 ")
			b.WriteByte(flag(op.LargeArc))
			b.WriteByte(',')
			b.WriteByte(flag(op.Sweep))
			b.WriteByte(' ')
			formatPoint(&b, op.To.X, op.To.Y)
		case Close:
			b.WriteString("z")
		}
	}
	return b.String()
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a svggeom.Point) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b svggeom.Point) {
	*p = append(*p, LineTo(b))
}

// Arc adds an elliptical arc segment to the current curve,
// ending at `to`.
func (p *Path) Arc(rx, ry float64, largeArc, sweep bool, to svggeom.Point) {
	*p = append(*p, ArcTo{RX: rx, RY: ry, LargeArc: largeArc, Sweep: sweep, To: to})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// Polygon returns the closed path starting at the last point and going
// through every point.
func Polygon(points []svggeom.Point) Path {
	if len(points) == 0 {
		return nil
	}
	out := make(Path, 0, len(points)+2)
	out.Start(points[len(points)-1])
	for _, pt := range points {
		out.Line(pt)
	}
	out.Stop(true)
	return out
}

// Points returns the end points of the segments of the path,
// in order.
func (p Path) Points() []svggeom.Point {
	var out []svggeom.Point
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			out = append(out, svggeom.Point(op))
		case LineTo:
			out = append(out, svggeom.Point(op))
		case ArcTo:
			out = append(out, op.To)
		}
	}
	return out
}
