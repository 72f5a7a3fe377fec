// Package svgtext fits texts into boxes, choosing the font size,
// wrapping words into lines and shortening texts which are too long.
// Fitted texts are queued and written at the end of the drawing, so that
// they appear above every shape.
package svgtext

import (
	"fmt"
	"strings"

	"github.com/benoitkugler/svgchart/svggeom"
	"github.com/benoitkugler/svgchart/svgpaint"
)

// Alignment is a set of flags positioning a text in its box.
// The default is top left.
type Alignment uint8

const (
	AlignLeft Alignment = 1 << iota
	AlignRight
	AlignCenter
	AlignBottom
	AlignTop
	AlignMiddle
)

var alignmentNames = [...]string{"left", "right", "center", "bottom", "top", "middle"}

// String returns the names of the flags, separated by spaces.
func (a Alignment) String() string {
	var names []string
	for i, name := range alignmentNames {
		if a&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, " ")
}

// ParseAlignment reads a space separated list of flags, like "center middle".
func ParseAlignment(s string) (Alignment, error) {
	var out Alignment
	for _, field := range strings.Fields(s) {
		found := false
		for i, name := range alignmentNames {
			if strings.EqualFold(field, name) {
				out |= 1 << i
				found = true
			}
		}
		if !found {
			return 0, fmt.Errorf("svgtext: unknown alignment %q", field)
		}
	}
	return out, nil
}

// Rotation rotates a text box, by Angle degrees around Center.
type Rotation struct {
	Angle  float64
	Center svggeom.Point
}

// FontSpec groups the font options of a text box.
type FontSpec struct {
	// Name is the font family written in the output
	Name string
	// Path is an optional font file (SVG or OpenType) used to measure texts
	Path string

	MinSize, MaxSize float64
	Color            svgpaint.PlainColor

	// Background and Border are optional (nil)
	Background  svgpaint.Pattern
	Border      svgpaint.Pattern
	BorderWidth float64

	Padding        float64
	MinimizeBorder bool

	Shadow       bool
	ShadowColor  svgpaint.PlainColor
	ShadowOffset float64
}

// BoxPadding is the space between the box and the text.
func (fs FontSpec) BoxPadding() float64 {
	if fs.Border != nil {
		return fs.Padding + fs.BorderWidth
	}
	return fs.Padding
}
