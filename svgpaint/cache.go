package svgpaint

import (
	"fmt"
	"math"
	"strconv"

	"github.com/benoitkugler/svgchart/svgdom"
)

// GradientCache writes the gradient definitions into the <defs>
// element of a document, once per gradient signature.
type GradientCache struct {
	doc  *svgdom.Document
	defs svgdom.NodeID
	seen map[string]bool
}

func NewGradientCache(doc *svgdom.Document, defs svgdom.NodeID) *GradientCache {
	return &GradientCache{doc: doc, defs: defs, seen: make(map[string]bool)}
}

// Len returns the number of distinct gradients defined.
func (gc *GradientCache) Len() int { return len(gc.seen) }

func coord(f float64) string { return strconv.FormatFloat(f, 'f', 4, 64) }

func stopStyle(c PlainColor) string {
	return fmt.Sprintf("stop-color: %s; stop-opacity: %.2f;", c.Hex(), c.Opacity())
}

// Resolve returns the paint reference `url(#...)` for a gradient,
// adding its definition on first use. It returns false for plain colors.
func (gc *GradientCache) Resolve(p Pattern) (string, bool) {
	g, ok := p.(Gradient)
	if !ok {
		return "", false
	}
	sig := g.Signature()
	ref := "url(#" + sig + ")"
	if gc.seen[sig] {
		return ref, true
	}
	gc.seen[sig] = true

	// the color stops, shared by linear and radial definitions
	start, end := g.colors()
	stops := gc.doc.CreateElement("linearGradient", svgdom.Attr{Name: "id", Value: "Definition_" + sig})
	for i, c := range [2]PlainColor{start, end} {
		stop := gc.doc.CreateElement("stop",
			svgdom.Attr{Name: "offset", Value: strconv.Itoa(i)},
			svgdom.Attr{Name: "style", Value: stopStyle(c)})
		gc.doc.AppendChild(stops, stop)
	}
	gc.doc.AppendChild(gc.defs, stops)

	var def svgdom.NodeID
	switch g := g.(type) {
	case LinearGradient:
		def = gc.doc.CreateElement("linearGradient",
			svgdom.Attr{Name: "id", Value: sig},
			svgdom.Attr{Name: "x1", Value: coord(g.Start.X)},
			svgdom.Attr{Name: "y1", Value: coord(g.Start.Y)},
			svgdom.Attr{Name: "x2", Value: coord(g.End.X)},
			svgdom.Attr{Name: "y2", Value: coord(g.End.Y)},
		)
	case RadialGradient:
		def = gc.doc.CreateElement("radialGradient",
			svgdom.Attr{Name: "id", Value: sig},
			svgdom.Attr{Name: "cx", Value: coord(g.Center.X)},
			svgdom.Attr{Name: "cy", Value: coord(g.Center.Y)},
			svgdom.Attr{Name: "fx", Value: coord(g.Center.X)},
			svgdom.Attr{Name: "fy", Value: coord(g.Center.Y)},
			svgdom.Attr{Name: "r", Value: coord(math.Max(g.Width, g.Height))},
		)
	}
	gc.doc.SetAttr(def, "gradientUnits", "userSpaceOnUse")
	gc.doc.SetAttr(def, "xlink:href", "#Definition_"+sig)
	gc.doc.AppendChild(gc.defs, def)
	return ref, true
}
