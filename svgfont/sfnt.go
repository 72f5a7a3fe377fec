package svgfont

import (
	"encoding/base64"
	"fmt"

	"github.com/benoitkugler/svgchart/svgdom"
	"github.com/h2non/filetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// sfntFont is an OpenType or TrueType font.
type sfntFont struct {
	data []byte
	mime string

	font *sfnt.Font
	buf  sfnt.Buffer
	upem float64
	ppem fixed.Int26_6 // one pixel per font unit

	familyName string
}

func parseSfnt(data []byte) (*sfntFont, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	out := &sfntFont{data: data, font: f}
	out.upem = float64(f.UnitsPerEm())
	out.ppem = fixed.I(int(f.UnitsPerEm()))
	if out.familyName, err = f.Name(&out.buf, sfnt.NameIDFamily); err != nil {
		out.familyName = ""
	}
	out.mime = "font/ttf"
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		out.mime = kind.MIME.Value
	}
	return out, nil
}

func (f *sfntFont) unitsPerEm() float64 { return f.upem }

func (f *sfntFont) family() string { return f.familyName }

func (f *sfntFont) glyph(r rune) (Glyph, bool) {
	gi, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil || gi == 0 {
		return Glyph{}, false
	}
	adv, err := f.font.GlyphAdvance(&f.buf, gi, f.ppem, font.HintingNone)
	if err != nil {
		return Glyph{}, false
	}
	name, _ := f.font.GlyphName(&f.buf, gi)
	return Glyph{Name: name, Unicode: string(r), Advance: float64(adv) / 64, index: int(gi)}, true
}

// kern reads the kern table, whose values already are signed adjustments.
func (f *sfntFont) kern(left, right Glyph) (float64, bool) {
	k, err := f.font.Kern(&f.buf, sfnt.GlyphIndex(left.index), sfnt.GlyphIndex(right.index), f.ppem, font.HintingNone)
	if err != nil || k == 0 {
		return 0, false
	}
	return float64(k) / 64, true
}

// embed adds a <style> element declaring the font with a data URI.
func (f *sfntFont) embed(doc *svgdom.Document, defs svgdom.NodeID, id string) {
	style := doc.CreateElement("style",
		svgdom.Attr{Name: "id", Value: id},
		svgdom.Attr{Name: "type", Value: "text/css"})
	rule := fmt.Sprintf("@font-face { font-family: '%s'; src: url('data:%s;base64,%s'); }",
		f.familyName, f.mime, base64.StdEncoding.EncodeToString(f.data))
	doc.AppendChild(style, doc.CreateText(rule))
	doc.AppendChild(defs, style)
}
