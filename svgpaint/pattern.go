// Package svgpaint defines the colors and gradients used to paint
// the chart elements, and their SVG definitions.
package svgpaint

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgchart/svggeom"
)

// Pattern is either a PlainColor, a LinearGradient or a RadialGradient.
type Pattern interface {
	isPattern()
}

func (PlainColor) isPattern()     {}
func (LinearGradient) isPattern() {}
func (RadialGradient) isPattern() {}

// Gradient is a Pattern requiring a definition in the document.
type Gradient interface {
	Pattern
	// Signature is a canonical representation of the gradient:
	// two gradients with the same signature are equal.
	Signature() string
	colors() (start, end PlainColor)
}

var (
	_ Gradient = LinearGradient{}
	_ Gradient = RadialGradient{}
)

// PlainColor is a non premultiplied RGBA color.
// A is the opacity: 0 is fully transparent, 0xFF opaque.
type PlainColor struct {
	R, G, B, A uint8
}

func NewPlainColor(r, g, b, a uint8) PlainColor {
	return PlainColor{R: r, G: g, B: b, A: a}
}

var (
	Black = PlainColor{0, 0, 0, 0xFF}
	White = PlainColor{0xFF, 0xFF, 0xFF, 0xFF}
)

// Hex returns the #rrggbb representation, without the opacity.
func (c PlainColor) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Opacity returns A scaled to [0, 1].
func (c PlainColor) Opacity() float64 { return float64(c.A) / 0xFF }

// Transparent returns the color made more transparent by `v`, in [0, 1]:
// 0 keeps the color unchanged, 1 makes it invisible.
func (c PlainColor) Transparent(v float64) PlainColor {
	v = math.Max(0, math.Min(1, v))
	c.A = uint8(math.Round(float64(c.A) * (1 - v)))
	return c
}

func (c PlainColor) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

var errInvalidColor = errors.New("svgpaint: invalid color")

// ParseColor reads a color in #rgb, #rrggbb or #rrggbbaa notation.
// The opacity defaults to opaque.
func ParseColor(s string) (PlainColor, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return PlainColor{}, fmt.Errorf("%w: %q", errInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return PlainColor{}, fmt.Errorf("%w: %q", errInvalidColor, s)
	}
	return PlainColor{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler, using ParseColor.
func (c *PlainColor) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c PlainColor) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// LinearGradient varies from StartColor at Start to EndColor at End.
type LinearGradient struct {
	Start, End           svggeom.Point
	StartColor, EndColor PlainColor
}

// RadialGradient varies from StartColor at Center to EndColor
// at max(Width, Height).
type RadialGradient struct {
	Center               svggeom.Point
	Width, Height        float64
	StartColor, EndColor PlainColor
}

func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func (g LinearGradient) Signature() string {
	return fmt.Sprintf("LinearGradient_%s_%s_%s_%s_%02x%02x%02x%02x_%02x%02x%02x%02x",
		num(g.Start.X), num(g.Start.Y), num(g.End.X), num(g.End.Y),
		g.StartColor.R, g.StartColor.G, g.StartColor.B, g.StartColor.A,
		g.EndColor.R, g.EndColor.G, g.EndColor.B, g.EndColor.A)
}

func (g RadialGradient) Signature() string {
	return fmt.Sprintf("RadialGradient_%s_%s_%s_%s_%02x%02x%02x%02x_%02x%02x%02x%02x",
		num(g.Center.X), num(g.Center.Y), num(g.Width), num(g.Height),
		g.StartColor.R, g.StartColor.G, g.StartColor.B, g.StartColor.A,
		g.EndColor.R, g.EndColor.G, g.EndColor.B, g.EndColor.A)
}

func (g LinearGradient) colors() (start, end PlainColor) { return g.StartColor, g.EndColor }
func (g RadialGradient) colors() (start, end PlainColor) { return g.StartColor, g.EndColor }
