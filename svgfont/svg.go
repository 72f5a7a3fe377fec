package svgfont

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgchart/svgdom"
)

// svgFont is a font described by an SVG <font> element.
type svgFont struct {
	doc  *svgdom.Document
	font svgdom.NodeID

	upem       float64
	familyName string

	byUnicode   map[string]Glyph
	kernNames   map[pairKey]float64 // hkern k values, by glyph names
	kernUnicode map[pairKey]float64 // hkern k values, by characters
}

func parseFloatAttr(doc *svgdom.Document, n svgdom.NodeID, name string, def float64) (float64, error) {
	v, ok := doc.Attr(n, name)
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid attribute %s: %s", name, err)
	}
	return f, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		// single space characters are valid code points
		if item != " " {
			item = strings.TrimSpace(item)
		}
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseSVGFont(data []byte) (*svgFont, error) {
	doc, err := svgdom.ReadDocumentStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	font, ok := doc.FindByTag("font")
	if !ok {
		return nil, errors.New("missing <font> element")
	}
	out := &svgFont{
		doc:         doc,
		font:        font,
		upem:        1000,
		byUnicode:   make(map[string]Glyph),
		kernNames:   make(map[pairKey]float64),
		kernUnicode: make(map[pairKey]float64),
	}
	defaultAdvance, err := parseFloatAttr(doc, font, "horiz-adv-x", 0)
	if err != nil {
		return nil, err
	}

	for _, child := range doc.Children(font) {
		switch doc.Tag(child) {
		case "font-face":
			if out.upem, err = parseFloatAttr(doc, child, "units-per-em", 1000); err != nil {
				return nil, err
			}
			if out.upem <= 0 {
				return nil, fmt.Errorf("invalid units-per-em %g", out.upem)
			}
			out.familyName, _ = doc.Attr(child, "font-family")
		case "glyph":
			uni, ok := doc.Attr(child, "unicode")
			if !ok {
				continue
			}
			adv, err := parseFloatAttr(doc, child, "horiz-adv-x", defaultAdvance)
			if err != nil {
				return nil, err
			}
			name, _ := doc.Attr(child, "glyph-name")
			if _, has := out.byUnicode[uni]; !has {
				out.byUnicode[uni] = Glyph{Name: name, Unicode: uni, Advance: adv}
			}
		case "hkern":
			k, err := parseFloatAttr(doc, child, "k", 0)
			if err != nil {
				return nil, err
			}
			addPairs(out.kernNames, doc, child, "g1", "g2", k)
			addPairs(out.kernUnicode, doc, child, "u1", "u2", k)
		}
	}
	return out, nil
}

// addPairs registers every combination of the two lists, the first
// definition of a pair winning.
func addPairs(dst map[pairKey]float64, doc *svgdom.Document, hkern svgdom.NodeID, attr1, attr2 string, k float64) {
	v1, _ := doc.Attr(hkern, attr1)
	v2, _ := doc.Attr(hkern, attr2)
	for _, left := range splitList(v1) {
		for _, right := range splitList(v2) {
			key := pairKey{left, right}
			if _, has := dst[key]; !has {
				dst[key] = k
			}
		}
	}
}

func (f *svgFont) unitsPerEm() float64 { return f.upem }

func (f *svgFont) family() string { return f.familyName }

func (f *svgFont) glyph(r rune) (Glyph, bool) {
	g, ok := f.byUnicode[string(r)]
	return g, ok
}

// kern looks for the pair by glyph names, then by characters.
// SVG kerning values reduce the advance.
func (f *svgFont) kern(left, right Glyph) (float64, bool) {
	if left.Name != "" && right.Name != "" {
		if k, ok := f.kernNames[pairKey{left.Name, right.Name}]; ok {
			return -k, k != 0
		}
	}
	if k, ok := f.kernUnicode[pairKey{left.Unicode, right.Unicode}]; ok {
		return -k, k != 0
	}
	return 0, false
}

// embed copies the whole <font> element.
func (f *svgFont) embed(doc *svgdom.Document, defs svgdom.NodeID, id string) {
	font := doc.Import(f.doc, f.font)
	doc.SetAttr(font, "id", id)
	doc.AppendChild(defs, font)
}
