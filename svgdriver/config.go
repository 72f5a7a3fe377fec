package svgdriver

import (
	"bytes"
	"fmt"
	"os"

	"github.com/benoitkugler/svgchart/svggeom"
	"github.com/benoitkugler/svgchart/svgpaint"
	"github.com/benoitkugler/svgchart/svgtext"
	"github.com/pelletier/go-toml/v2"
)

// fileOptions is the TOML representation of Options.
type fileOptions struct {
	Width          float64    `toml:"width"`
	Height         float64    `toml:"height"`
	IDPrefix       string     `toml:"id_prefix"`
	Encoding       string     `toml:"encoding"`
	Offset         [2]float64 `toml:"offset"`
	ColorRendering string     `toml:"color_rendering"`
	ShapeRendering string     `toml:"shape_rendering"`
	TextRendering  string     `toml:"text_rendering"`
	StrokeLineCap  string     `toml:"stroke_line_cap"`
	StrokeLineJoin string     `toml:"stroke_line_join"`

	Font fileFont `toml:"font"`

	AutoShortenString     bool    `toml:"auto_shorten_string"`
	AutoShortenMarker     string  `toml:"auto_shorten_marker"`
	LineSpacing           float64 `toml:"line_spacing"`
	NumericCharacterWidth float64 `toml:"numeric_character_width"`
	TextCharacterWidth    float64 `toml:"text_character_width"`
	ShadeCircularArc      float64 `toml:"shade_circular_arc"`

	TemplateDocument string `toml:"template_document"`
	InsertIntoGroup  string `toml:"insert_into_group"`
}

type fileFont struct {
	Name           string               `toml:"name"`
	Path           string               `toml:"path"`
	MinSize        float64              `toml:"min_size"`
	MaxSize        float64              `toml:"max_size"`
	Color          svgpaint.PlainColor  `toml:"color"`
	Background     *svgpaint.PlainColor `toml:"background"`
	Border         *svgpaint.PlainColor `toml:"border"`
	BorderWidth    float64              `toml:"border_width"`
	Padding        float64              `toml:"padding"`
	MinimizeBorder bool                 `toml:"minimize_border"`
	Shadow         bool                 `toml:"shadow"`
	ShadowColor    svgpaint.PlainColor  `toml:"shadow_color"`
	ShadowOffset   float64              `toml:"shadow_offset"`
}

// plainColor returns the color of p if it is a PlainColor.
func plainColor(p svgpaint.Pattern) *svgpaint.PlainColor {
	if c, ok := p.(svgpaint.PlainColor); ok {
		return &c
	}
	return nil
}

func newFileOptions(opts Options) fileOptions {
	f := opts.Font
	return fileOptions{
		Width:          opts.Width,
		Height:         opts.Height,
		IDPrefix:       opts.IDPrefix,
		Encoding:       opts.Encoding,
		Offset:         [2]float64{opts.Offset.X, opts.Offset.Y},
		ColorRendering: opts.ColorRendering,
		ShapeRendering: opts.ShapeRendering,
		TextRendering:  opts.TextRendering,
		StrokeLineCap:  opts.StrokeLineCap,
		StrokeLineJoin: opts.StrokeLineJoin,
		Font: fileFont{
			Name:           f.Name,
			Path:           f.Path,
			MinSize:        f.MinSize,
			MaxSize:        f.MaxSize,
			Color:          f.Color,
			Background:     plainColor(f.Background),
			Border:         plainColor(f.Border),
			BorderWidth:    f.BorderWidth,
			Padding:        f.Padding,
			MinimizeBorder: f.MinimizeBorder,
			Shadow:         f.Shadow,
			ShadowColor:    f.ShadowColor,
			ShadowOffset:   f.ShadowOffset,
		},
		AutoShortenString:     opts.AutoShortenString,
		AutoShortenMarker:     opts.AutoShortenMarker,
		LineSpacing:           opts.LineSpacing,
		NumericCharacterWidth: opts.NumericCharacterWidth,
		TextCharacterWidth:    opts.TextCharacterWidth,
		ShadeCircularArc:      opts.ShadeCircularArc,
		TemplateDocument:      opts.TemplateDocument,
		InsertIntoGroup:       opts.InsertIntoGroup,
	}
}

func (fo fileOptions) options() Options {
	font := svgtext.FontSpec{
		Name:           fo.Font.Name,
		Path:           fo.Font.Path,
		MinSize:        fo.Font.MinSize,
		MaxSize:        fo.Font.MaxSize,
		Color:          fo.Font.Color,
		BorderWidth:    fo.Font.BorderWidth,
		Padding:        fo.Font.Padding,
		MinimizeBorder: fo.Font.MinimizeBorder,
		Shadow:         fo.Font.Shadow,
		ShadowColor:    fo.Font.ShadowColor,
		ShadowOffset:   fo.Font.ShadowOffset,
	}
	if fo.Font.Background != nil {
		font.Background = *fo.Font.Background
	}
	if fo.Font.Border != nil {
		font.Border = *fo.Font.Border
	}
	return Options{
		Width:                 fo.Width,
		Height:                fo.Height,
		IDPrefix:              fo.IDPrefix,
		Encoding:              fo.Encoding,
		Offset:                svggeom.Pt(fo.Offset[0], fo.Offset[1]),
		ColorRendering:        fo.ColorRendering,
		ShapeRendering:        fo.ShapeRendering,
		TextRendering:         fo.TextRendering,
		StrokeLineCap:         fo.StrokeLineCap,
		StrokeLineJoin:        fo.StrokeLineJoin,
		Font:                  font,
		AutoShortenString:     fo.AutoShortenString,
		AutoShortenMarker:     fo.AutoShortenMarker,
		LineSpacing:           fo.LineSpacing,
		NumericCharacterWidth: fo.NumericCharacterWidth,
		TextCharacterWidth:    fo.TextCharacterWidth,
		ShadeCircularArc:      fo.ShadeCircularArc,
		TemplateDocument:      fo.TemplateDocument,
		InsertIntoGroup:       fo.InsertIntoGroup,
	}
}

// ParseOptions reads TOML options. Missing keys keep
// their DefaultOptions value, unknown keys are rejected.
func ParseOptions(data []byte) (Options, error) {
	fo := newFileOptions(DefaultOptions())
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fo); err != nil {
		return Options{}, fmt.Errorf("svgdriver: invalid options: %w", err)
	}
	return fo.options(), nil
}

// LoadOptions reads the TOML options file at `path`, see ParseOptions.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	return ParseOptions(data)
}
