package svgdriver

import (
	"github.com/benoitkugler/svgchart/svggeom"
	"github.com/benoitkugler/svgchart/svgtext"
)

func (d *Driver) estimator(font *svgtext.FontSpec) (svgtext.WidthEstimator, error) {
	if font.Path == "" {
		return svgtext.Heuristic{
			NumericFactor: d.options.NumericCharacterWidth,
			TextFactor:    d.options.TextCharacterWidth,
		}, nil
	}
	f, err := d.fonts.Initialize(font.Path)
	if err != nil {
		return nil, err
	}
	if family := f.Family(); family != "" {
		font.Name = family
	}
	return svgtext.FontMetrics{Font: f}, nil
}

// DrawTextBox fits `text` in the box of top left corner `position`, using
// the current font. The text is written by Finalize, but its identifier is
// returned immediately. A text which does not fit, even shortened,
// is reported with a *svgtext.TextDoesNotFitError.
func (d *Driver) DrawTextBox(text string, position svggeom.Point, width, height float64,
	align svgtext.Alignment, rotation *svgtext.Rotation,
) (string, error) {
	if err := d.Init(); err != nil {
		return "", err
	}
	font := d.options.Font
	est, err := d.estimator(&font)
	if err != nil {
		return "", err
	}
	d.text.Estimator = est

	padding := font.BoxPadding()
	area := position.Add(svggeom.Pt(padding, padding))
	w, h := width-2*padding, height-2*padding

	layout, err := d.text.Fit(text, w, h, font)
	if err != nil {
		Logger().Warn("svgdriver: text box skipped", "text", text, "error", err)
		return "", err
	}
	if layout.Shortened {
		Logger().Debug("svgdriver: text shortened", "text", text, "written", layout.Lines[0].String())
	}

	return d.text.Enqueue(svgtext.PendingText{
		ID:        d.newID("TextBox"),
		Position:  area,
		Width:     w,
		Height:    h,
		Align:     align,
		Rotation:  rotation,
		Lines:     layout.Lines,
		Size:      layout.Size,
		Font:      font,
		Estimator: est,
	}), nil
}
