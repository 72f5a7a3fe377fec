// Package svgfont computes text widths from font files, either SVG fonts
// (<font> elements with glyph advances and horizontal kerning pairs) or
// OpenType/TrueType fonts, and embeds the fonts used in the output
// document.
//
// Text is measured one code point at a time: there is no shaping.
package svgfont

import (
	"errors"
	"fmt"
	"os"

	"github.com/benoitkugler/svgchart/svgdom"
	"github.com/h2non/filetype"
)

// ErrFontAssetUnavailable is returned when a font file can't be read or parsed.
var ErrFontAssetUnavailable = errors.New("svgfont: font asset unavailable")

// Glyph stores the metrics of one glyph.
type Glyph struct {
	Name    string
	Unicode string
	// Advance is the horizontal advance, in font units
	Advance float64

	index int // glyph index for OpenType fonts
}

func (g Glyph) key() string { return g.Name + "\x00" + g.Unicode }

// KerningPair is a resolved kerning between two glyphs.
type KerningPair struct {
	Left, Right Glyph
	// Adjustment is added to the advance of Left, in font units
	Adjustment float64
}

type pairKey struct{ left, right string }

// source is the font format specific part of a Font.
type source interface {
	unitsPerEm() float64
	family() string
	glyph(r rune) (Glyph, bool)
	// kern returns the signed advance adjustment between two glyphs
	kern(left, right Glyph) (float64, bool)
	// embed adds the font definition to defs
	embed(doc *svgdom.Document, defs svgdom.NodeID, id string)
}

type glyphEntry struct {
	glyph Glyph
	ok    bool
}

// Font resolves glyphs and kerning pairs, caching every lookup.
// A Font is not safe for concurrent use.
type Font struct {
	path string
	src  source

	glyphs map[rune]glyphEntry
	kerns  map[pairKey]float64

	usedGlyphs []Glyph
	usedSeen   map[string]bool
	usedKerns  []KerningPair
}

func newFont(path string, src source) *Font {
	return &Font{
		path:     path,
		src:      src,
		glyphs:   make(map[rune]glyphEntry),
		kerns:    make(map[pairKey]float64),
		usedSeen: make(map[string]bool),
	}
}

// Load reads the font file at `path`, detecting its format by content:
// OpenType and TrueType files are recognized, anything else is read
// as an SVG font.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFontAssetUnavailable, err)
	}
	var src source
	if filetype.IsFont(data) {
		src, err = parseSfnt(data)
	} else {
		src, err = parseSVGFont(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrFontAssetUnavailable, path, err)
	}
	return newFont(path, src), nil
}

// FontName returns the family name of the font file at `path`.
func FontName(path string) (string, error) {
	f, err := Load(path)
	if err != nil {
		return "", err
	}
	return f.Family(), nil
}

func (f *Font) Path() string { return f.path }

// Family returns the font family as declared in the file.
func (f *Font) Family() string { return f.src.family() }

// UnitsPerEm is the size of the em square, in font units.
func (f *Font) UnitsPerEm() float64 { return f.src.unitsPerEm() }

// Glyph returns the glyph for `r`. When the font has no such glyph,
// the glyph of 'o' is used instead; false is only returned when
// 'o' is missing too.
func (f *Font) Glyph(r rune) (Glyph, bool) {
	if e, ok := f.glyphs[r]; ok {
		return e.glyph, e.ok
	}
	g, ok := f.src.glyph(r)
	if !ok && r != 'o' {
		g, ok = f.Glyph('o')
	}
	f.glyphs[r] = glyphEntry{glyph: g, ok: ok}
	if ok && !f.usedSeen[g.key()] {
		f.usedSeen[g.key()] = true
		f.usedGlyphs = append(f.usedGlyphs, g)
	}
	return g, ok
}

// Kerning returns the signed adjustment of the advance of `left` when
// followed by `right`, in font units: negative values move the glyphs
// closer. Zero is returned when the pair has no kerning.
func (f *Font) Kerning(left, right Glyph) float64 {
	key := pairKey{left.key(), right.key()}
	if adj, ok := f.kerns[key]; ok {
		return adj
	}
	adj, ok := f.src.kern(left, right)
	f.kerns[key] = adj
	if ok {
		f.usedKerns = append(f.usedKerns, KerningPair{Left: left, Right: right, Adjustment: adj})
	}
	return adj
}

// StringWidth returns the advance width of `text`, in em units.
// A character without glyph accounts for half an em, and
// no kerning is applied around it.
func (f *Font) StringWidth(text string) float64 {
	var (
		width   float64
		prev    Glyph
		hasPrev bool
	)
	upem := f.src.unitsPerEm()
	for _, r := range text {
		g, ok := f.Glyph(r)
		if !ok {
			width += 0.5 * upem
			hasPrev = false
			continue
		}
		width += g.Advance
		if hasPrev {
			width += f.Kerning(prev, g)
		}
		prev, hasPrev = g, true
	}
	return width / upem
}

// UsedGlyphs returns the glyphs resolved so far, in resolution order.
func (f *Font) UsedGlyphs() []Glyph { return f.usedGlyphs }

// UsedKernings returns the non zero kerning pairs resolved so far.
func (f *Font) UsedKernings() []KerningPair { return f.usedKerns }

// Provider loads each font file once.
type Provider struct {
	fonts map[string]*Font
	order []*Font
}

func NewProvider() *Provider {
	return &Provider{fonts: make(map[string]*Font)}
}

// Initialize returns the font stored at `path`, loading it on first use.
func (p *Provider) Initialize(path string) (*Font, error) {
	if f, ok := p.fonts[path]; ok {
		return f, nil
	}
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	p.fonts[path] = f
	p.order = append(p.order, f)
	return f, nil
}

// Fonts returns the initialized fonts, in initialization order.
func (p *Provider) Fonts() []*Font { return p.order }

// EmbedInto adds the definition of every initialized font to `defs`,
// and returns the identifiers used, {idPrefix}Font1, {idPrefix}Font2, ...
func (p *Provider) EmbedInto(doc *svgdom.Document, defs svgdom.NodeID, idPrefix string) []string {
	ids := make([]string, len(p.order))
	for i, f := range p.order {
		ids[i] = fmt.Sprintf("%sFont%d", idPrefix, i+1)
		f.src.embed(doc, defs, ids[i])
	}
	return ids
}
