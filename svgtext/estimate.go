package svgtext

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/benoitkugler/svgchart/svgfont"
)

// WidthEstimator measures a single line of text.
type WidthEstimator interface {
	TextWidth(text string, size float64) float64
}

var (
	_ WidthEstimator = Heuristic{}
	_ WidthEstimator = FontMetrics{}
)

// Heuristic estimates widths from the character count, with
// a dedicated factor for numbers.
type Heuristic struct {
	NumericFactor, TextFactor float64
}

func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return false
	}
	// reject Inf, NaN and hexadecimal notations
	return !strings.ContainsFunc(s, func(r rune) bool { return unicode.IsLetter(r) && r != 'e' && r != 'E' })
}

func (h Heuristic) TextWidth(text string, size float64) float64 {
	factor := h.TextFactor
	if isNumeric(text) {
		factor = h.NumericFactor
	}
	return size * float64(utf8.RuneCountInString(text)) * factor
}

// FontMetrics uses the advances and kerning of a font.
type FontMetrics struct {
	Font *svgfont.Font
}

func (fm FontMetrics) TextWidth(text string, size float64) float64 {
	return fm.Font.StringWidth(text) * size
}
