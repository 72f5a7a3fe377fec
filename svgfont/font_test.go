package svgfont

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benoitkugler/svgchart/svgdom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func loadTestFont(t *testing.T) *Font {
	t.Helper()
	f, err := Load("testdata/font.svg")
	require.NoError(t, err)
	return f
}

func TestSVGFontMetrics(t *testing.T) {
	f := loadTestFont(t)
	assert.Equal(t, "Test Sans", f.Family())
	assert.Equal(t, 1000., f.UnitsPerEm())

	a, ok := f.Glyph('A')
	require.True(t, ok)
	assert.Equal(t, 600., a.Advance)
	v, _ := f.Glyph('V')
	assert.Equal(t, -50., f.Kerning(a, v))
	assert.Equal(t, 0., f.Kerning(v, a))

	// inherited advance
	tg, _ := f.Glyph('T')
	assert.Equal(t, 500., tg.Advance)

	for _, test := range []struct {
		text     string
		expected float64
	}{
		{"AV", 1.1},
		{"VA", 1.15},
		{"", 0},
		{"To", 0.94}, // kerning by characters
		{"Ty", 0.9},  // y has no glyph name
		{"AZ", 1.12}, // Z is replaced by o
		{"A V", 1.4},
	} {
		assert.InDelta(t, test.expected, f.StringWidth(test.text), 1e-9, test.text)
	}
}

func TestFallbackGlyph(t *testing.T) {
	f := loadTestFont(t)
	o, _ := f.Glyph('o')
	z, ok := f.Glyph('Z')
	require.True(t, ok)
	assert.Equal(t, o, z)

	noO, err := Load("testdata/no_o.svg")
	require.NoError(t, err)
	_, ok = noO.Glyph('Z')
	assert.False(t, ok)
	_, ok = noO.Glyph('o')
	assert.False(t, ok)

	// A + half an em + V, and no kerning across the missing glyph
	assert.InDelta(t, (1200.+1000+1100)/2000, noO.StringWidth("AZV"), 1e-9)
	assert.InDelta(t, (1200.+1100-100)/2000, noO.StringWidth("AV"), 1e-9)
}

func TestUsedGlyphs(t *testing.T) {
	f := loadTestFont(t)
	f.StringWidth("AVA")
	used := f.UsedGlyphs()
	require.Len(t, used, 2)
	assert.Equal(t, "A", used[0].Name)
	assert.Equal(t, "V", used[1].Name)

	kerns := f.UsedKernings()
	require.Len(t, kerns, 1)
	assert.Equal(t, -50., kerns[0].Adjustment)
}

func TestProvider(t *testing.T) {
	p := NewProvider()
	f1, err := p.Initialize("testdata/font.svg")
	require.NoError(t, err)
	f2, err := p.Initialize("testdata/font.svg")
	require.NoError(t, err)
	assert.Same(t, f1, f2)

	_, err = p.Initialize("testdata/no_o.svg")
	require.NoError(t, err)
	assert.Len(t, p.Fonts(), 2)

	_, err = p.Initialize("testdata/missing.svg")
	assert.ErrorIs(t, err, ErrFontAssetUnavailable)
	assert.Len(t, p.Fonts(), 2)

	doc := svgdom.NewDocument()
	root := doc.CreateElement("svg")
	doc.SetRoot(root)
	defs := doc.CreateElement("defs")
	doc.AppendChild(root, defs)

	ids := p.EmbedInto(doc, defs, "chart")
	assert.Equal(t, []string{"chartFont1", "chartFont2"}, ids)
	font, ok := doc.FindByID("chartFont1")
	require.True(t, ok)
	assert.Equal(t, "font", doc.Tag(font))
	assert.Len(t, doc.FindAll(font, "glyph"), 7)
	assert.Len(t, doc.FindAll(font, "hkern"), 2)
}

func TestInvalidFonts(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"nofont.svg":   `<svg><defs/></svg>`,
		"broken.svg":   `<svg><font>`,
		"badupem.svg":  `<svg><font><font-face units-per-em="abc"/></font></svg>`,
		"zeroupem.svg": `<svg><font><font-face units-per-em="0"/></font></svg>`,
		"badadv.svg":   `<svg><font><glyph unicode="a" horiz-adv-x="x"/></font></svg>`,
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrFontAssetUnavailable, name)
	}

	_, err := FontName("testdata/missing.svg")
	assert.ErrorIs(t, err, ErrFontAssetUnavailable)
	name, err := FontName("testdata/font.svg")
	require.NoError(t, err)
	assert.Equal(t, "Test Sans", name)
}

func TestOpenTypeFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))

	p := NewProvider()
	f, err := p.Initialize(path)
	require.NoError(t, err)
	assert.Equal(t, "Go", f.Family())
	assert.Equal(t, 2048., f.UnitsPerEm())

	var expected float64
	var prev Glyph
	for i, r := range "Hello" {
		g, ok := f.Glyph(r)
		require.True(t, ok)
		assert.Greater(t, g.Advance, 0.)
		expected += g.Advance
		if i > 0 {
			expected += f.Kerning(prev, g)
		}
		prev = g
	}
	w := f.StringWidth("Hello")
	assert.InDelta(t, expected/2048, w, 1e-9)
	assert.Greater(t, w, 1.5)
	assert.Less(t, w, 3.5)

	doc := svgdom.NewDocument()
	root := doc.CreateElement("svg")
	doc.SetRoot(root)
	defs := doc.CreateElement("defs")
	doc.AppendChild(root, defs)
	p.EmbedInto(doc, defs, "")
	style, ok := doc.FindByID("Font1")
	require.True(t, ok)
	assert.Equal(t, "style", doc.Tag(style))
	css := doc.TextContent(style)
	assert.True(t, strings.HasPrefix(css, "@font-face { font-family: 'Go'; src: url('data:"))
	assert.Contains(t, css, ";base64,")
}
