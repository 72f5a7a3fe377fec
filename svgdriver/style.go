package svgdriver

import (
	"fmt"

	"github.com/benoitkugler/svgchart/svgpaint"
)

// style returns the style attribute for a shape painted with `color`,
// either filled, or stroked with the given thickness.
// Gradients are defined on first use.
func (d *Driver) style(color svgpaint.Pattern, filled bool, thickness float64) string {
	switch c := color.(type) {
	case nil:
		return "fill: none; stroke: none;"
	case svgpaint.PlainColor:
		if filled {
			return fmt.Sprintf("fill: %s; fill-opacity: %.2f; stroke: none;", c.Hex(), c.Opacity())
		}
		return fmt.Sprintf("fill: none; stroke: %s; stroke-width: %s; stroke-opacity: %.2f; stroke-linecap: %s; stroke-linejoin: %s;",
			c.Hex(), num(thickness), c.Opacity(), d.options.StrokeLineCap, d.options.StrokeLineJoin)
	case svgpaint.LinearGradient, svgpaint.RadialGradient:
		n := d.gradients.Len()
		ref, _ := d.gradients.Resolve(c)
		if d.gradients.Len() == n {
			Logger().Debug("svgdriver: gradient reused", "ref", ref)
		}
		if filled {
			return fmt.Sprintf("fill: %s; stroke: none;", ref)
		}
		return fmt.Sprintf("fill: none; stroke: %s; stroke-width: %s; stroke-linecap: %s; stroke-linejoin: %s;",
			ref, num(thickness), d.options.StrokeLineCap, d.options.StrokeLineJoin)
	default:
		panic(fmt.Sprintf("svgdriver: unsupported pattern %T", color))
	}
}
