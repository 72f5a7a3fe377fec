package svgdriver

import (
	"github.com/benoitkugler/svgchart/svggeom"
	"github.com/benoitkugler/svgchart/svgpaint"
	"github.com/benoitkugler/svgchart/svgtext"
)

// Options configures a Driver.
type Options struct {
	// Size of the output canvas
	Width, Height float64
	// IDPrefix starts every generated element identifier
	IDPrefix string
	// Encoding of the output, UTF-8 if empty
	Encoding string
	// Offset is added to every coordinate
	Offset svggeom.Point

	// rendering hints of the chart group
	ColorRendering, ShapeRendering, TextRendering string

	StrokeLineCap, StrokeLineJoin string

	// Font is used by the text boxes. It may be changed between
	// two calls with Driver.SetFont.
	Font svgtext.FontSpec

	AutoShortenString bool
	AutoShortenMarker string
	// LineSpacing is relative to the font size
	LineSpacing float64

	// width of a character relative to the font size, used when Font.Path is empty
	NumericCharacterWidth, TextCharacterWidth float64

	// ShadeCircularArc is the strength of the shading of filled
	// circular arcs, 0 to disable it.
	ShadeCircularArc float64

	// TemplateDocument is an optional SVG file the chart is added to.
	TemplateDocument string
	// InsertIntoGroup is the id of an existing element receiving the chart.
	InsertIntoGroup string
}

// DefaultOptions returns the options used by the command line tool
// when no configuration is given.
func DefaultOptions() Options {
	return Options{
		Width:          400,
		Height:         300,
		IDPrefix:       "chart",
		ColorRendering: "optimizeQuality",
		ShapeRendering: "geometricPrecision",
		TextRendering:  "optimizeLegibility",
		StrokeLineCap:  "round",
		StrokeLineJoin: "round",
		Font: svgtext.FontSpec{
			Name:           "sans-serif",
			MinSize:        6,
			MaxSize:        96,
			Color:          svgpaint.Black,
			MinimizeBorder: true,
			ShadowColor:    svgpaint.NewPlainColor(0x88, 0x88, 0x88, 0xff),
			ShadowOffset:   1,
		},
		AutoShortenString:     true,
		AutoShortenMarker:     "..",
		LineSpacing:           0.1,
		NumericCharacterWidth: 0.62,
		TextCharacterWidth:    0.53,
		ShadeCircularArc:      0.5,
	}
}
