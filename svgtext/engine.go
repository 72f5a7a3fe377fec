package svgtext

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/benoitkugler/svgchart/svggeom"
)

// Line is a group of words written on the same line.
type Line []string

func (l Line) String() string { return strings.Join(l, " ") }

// Layout is the result of fitting a text in a box.
type Layout struct {
	Lines []Line
	Size  float64
	// Shortened is true if the text has been cut
	Shortened bool
}

// PendingText is a fitted text waiting to be written.
type PendingText struct {
	ID string
	// Position is the top left corner of the text area,
	// that is the box without its padding.
	Position      svggeom.Point
	Width, Height float64
	Align         Alignment
	Rotation      *Rotation // optional

	Lines []Line
	Size  float64
	Font  FontSpec

	// Estimator measures the lines, the Engine one is used if nil
	Estimator WidthEstimator
}

// Engine fits texts and keeps them until Flush is called.
type Engine struct {
	Estimator WidthEstimator
	// LineSpacing is the space between lines, relative to the font size.
	LineSpacing float64
	// AutoShorten enables shortening of texts which do not fit,
	// ending them with ShortenMarker.
	AutoShorten   bool
	ShortenMarker string

	queue   []PendingText
	flushed bool
}

// BlockHeight returns the height of `lines` lines of text.
func (e *Engine) BlockHeight(lines int, size float64) float64 {
	if lines == 0 {
		return 0
	}
	return float64(lines)*size + float64(lines-1)*size*e.LineSpacing
}

// Fit finds the biggest font size in [font.MinSize, font.MaxSize] for which
// `text`, wrapped on word boundaries, fits in the box, trying smaller
// sizes as long as needed. When no size fits, the text is shortened to one
// line at the minimum size if AutoShorten is set; otherwise a
// *TextDoesNotFitError is returned.
func (e *Engine) Fit(text string, width, height float64, font FontSpec) (Layout, error) {
	words := strings.Fields(text)
	size := math.Min(height, font.MaxSize)
	for size >= font.MinSize {
		lines, ratio := e.wrap(words, width, height, size)
		if lines != nil {
			return Layout{Lines: lines, Size: size}, nil
		}
		// scale down, but always by at least one unit
		next := math.Floor(size * ratio)
		if next > size-1 || math.IsNaN(next) {
			next = size - 1
		}
		size = next
	}

	if e.AutoShorten && height >= font.MinSize && font.MinSize <= font.MaxSize {
		if line, ok := e.shorten(words, width, font.MinSize); ok {
			return Layout{Lines: []Line{{line}}, Size: font.MinSize, Shortened: true}, nil
		}
	}
	return Layout{}, &TextDoesNotFitError{Text: text, MinSize: font.MinSize, Width: width, Height: height}
}

// wrap greedily fills lines with words. On failure, it returns nil and the
// ratio by which the size should be reduced.
func (e *Engine) wrap(words []string, width, height, size float64) ([]Line, float64) {
	lines := []Line{{}}
	for _, word := range words {
		current := lines[len(lines)-1]
		candidate := append(current[:len(current):len(current)], word)
		lw := e.Estimator.TextWidth(candidate.String(), size)
		if lw <= width {
			lines[len(lines)-1] = candidate
			continue
		}
		if len(current) != 0 {
			lw = e.Estimator.TextWidth(word, size)
		}
		if lw > width { // a single word is too wide
			return nil, width / lw
		}
		lines = append(lines, Line{word})
	}
	if bh := e.BlockHeight(len(lines), size); bh > height {
		return nil, height / bh
	}
	return lines, 1
}

// shorten returns the longest prefix of the text which,
// followed by the marker, fits in `width`.
func (e *Engine) shorten(words []string, width, size float64) (string, bool) {
	text := []rune(strings.Join(words, " "))
	cut := func(n int) string {
		if n == len(text) {
			return string(text)
		}
		return strings.TrimRightFunc(string(text[:n]), unicode.IsSpace) + e.ShortenMarker
	}
	fits := func(n int) bool { return e.Estimator.TextWidth(cut(n), size) <= width }
	if !fits(0) {
		return "", false
	}
	n := sort.Search(len(text)+1, func(n int) bool { return !fits(n) }) - 1
	return cut(n), true
}

// Enqueue stores a fitted text, and returns its identifier.
func (e *Engine) Enqueue(text PendingText) string {
	e.queue = append(e.queue, text)
	return text.ID
}

// Pending returns the number of queued texts.
func (e *Engine) Pending() int { return len(e.queue) }
