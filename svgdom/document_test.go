package svgdom

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSample() *Document {
	doc := NewDocument()
	svg := doc.CreateElement("svg", Attr{"width", "10"}, Attr{"height", "20"})
	doc.SetRoot(svg)
	defs := doc.CreateElement("defs")
	g := doc.CreateElement("g", Attr{"id", "chart"})
	doc.AppendChild(svg, g)
	doc.InsertChild(svg, 0, defs)
	text := doc.CreateElement("text", Attr{"id", "label"})
	doc.AppendChild(text, doc.CreateText(`a < b & "c"`))
	doc.AppendChild(g, text)
	return doc
}

func TestBuild(t *testing.T) {
	doc := buildSample()
	svg := doc.Root()
	require.Len(t, doc.Children(svg), 2)
	assert.Equal(t, "defs", doc.Tag(doc.Children(svg)[0]))
	assert.Equal(t, "g", doc.Tag(doc.Children(svg)[1]))

	doc.SetAttr(svg, "width", "30")
	doc.SetAttr(svg, "version", "1.0")
	assert.Equal(t, []Attr{{"width", "30"}, {"height", "20"}, {"version", "1.0"}}, doc.Attrs(svg))

	id, ok := doc.FindByID("label")
	require.True(t, ok)
	assert.Equal(t, "text", doc.Tag(id))
	assert.Equal(t, `a < b & "c"`, doc.TextContent(id))

	_, ok = doc.FindByID("missing")
	assert.False(t, ok)

	defs, ok := doc.FindByTag("defs")
	assert.True(t, ok)
	assert.Equal(t, doc.Children(svg)[0], defs)

	// detached nodes are not found
	doc.CreateElement("g", Attr{"id", "detached"})
	_, ok = doc.FindByID("detached")
	assert.False(t, ok)
}

func TestWrite(t *testing.T) {
	doc := buildSample()
	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>`+"\n"+
		`<svg width="10" height="20"><defs/><g id="chart"><text id="label">a &lt; b &amp; "c"</text></g></svg>`+"\n",
		doc.String())

	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
}

func TestWriteInvalidCharacters(t *testing.T) {
	for _, encoding := range []string{"", "latin1"} {
		for _, test := range []struct {
			text, expected string
		}{
			{"a\x01b", "a\uFFFDb"},
			{"caf\xe9", "caf\uFFFD"},
			{"\uFFFEx\x00", "\uFFFDx\uFFFD"},
			{"line\nbreak\ttab", "line\nbreak\ttab"},
		} {
			doc := NewDocument()
			root := doc.CreateElement("svg", Attr{"id", test.text})
			doc.SetRoot(root)
			doc.AppendChild(root, doc.CreateText(test.text))
			require.NoError(t, doc.SetEncoding(encoding))

			var buf bytes.Buffer
			_, err := doc.WriteTo(&buf)
			require.NoError(t, err)
			got, err := ReadDocumentStream(&buf)
			require.NoError(t, err, "%q (%s)", test.text, encoding)
			assert.Equal(t, test.expected, got.TextContent(got.Root()))
			id, _ := got.Attr(got.Root(), "id")
			assert.Equal(t, test.expected, id)
		}
	}
}

func TestImport(t *testing.T) {
	src := buildSample()
	g, _ := src.FindByID("chart")

	dst := NewDocument()
	root := dst.CreateElement("svg")
	dst.SetRoot(root)
	cp := dst.Import(src, g)
	dst.AppendChild(root, cp)

	// the copy is independent from the source
	src.SetAttr(g, "id", "changed")
	id, ok := dst.FindByID("chart")
	require.True(t, ok)
	assert.Equal(t, cp, id)
	assert.Equal(t, `a < b & "c"`, dst.TextContent(cp))
}

func TestReadTemplate(t *testing.T) {
	doc, err := ReadDocument("testdata/template.svg")
	require.NoError(t, err)

	assert.Equal(t, "svg", doc.Tag(doc.Root()))
	v, _ := doc.Attr(doc.Root(), "xmlns:xlink")
	assert.Equal(t, "http://www.w3.org/1999/xlink", v)

	g, ok := doc.FindByID("chart")
	require.True(t, ok)
	assert.Equal(t, "g", doc.Tag(g))
	assert.Len(t, doc.FindAll(doc.Root(), "stop"), 1)

	// writing back keeps the content
	out := doc.String()
	assert.Contains(t, out, `<g id="chart" transform="translate(10,10)"/>`)
	assert.Contains(t, out, `<!-- company frame -->`)
	assert.Contains(t, out, `R&amp;D &lt;2024&gt;`)

	again, err := ReadDocumentStream(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, out, again.String())
}

func TestReadCharset(t *testing.T) {
	input := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><svg><text>caf\xe9</text></svg>"
	doc, err := ReadDocumentStream(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "café", doc.TextContent(doc.Root()))
}

func TestReadInvalid(t *testing.T) {
	for _, input := range []string{
		"",
		"   ",
		"<svg><g></svg>",
		"<svg></svg><svg></svg>",
		"<svg><g>",
	} {
		_, err := ReadDocumentStream(strings.NewReader(input))
		assert.Error(t, err, input)
	}
	_, err := ReadDocument("testdata/missing.svg")
	assert.Error(t, err)
}

func TestEncoding(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("svg", Attr{"id", "é"})
	doc.SetRoot(root)
	doc.AppendChild(root, doc.CreateText("Größe €"))

	require.NoError(t, doc.SetEncoding("latin1"))
	assert.Equal(t, "WINDOWS-1252", doc.Encoding())
	out := doc.String()
	assert.Equal(t, `<?xml version="1.0" encoding="WINDOWS-1252"?>`+"\n"+
		`<svg id="&#xE9;">Gr&#xF6;&#xDF;e &#x20AC;</svg>`+"\n", out)

	// the escaped output is read back with the same content
	back, err := ReadDocumentStream(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "Größe €", back.TextContent(back.Root()))

	require.NoError(t, doc.SetEncoding("UTF-8"))
	assert.Equal(t, "UTF-8", doc.Encoding())
	assert.Contains(t, doc.String(), "Größe €")

	assert.Error(t, doc.SetEncoding("not-an-encoding"))
}
