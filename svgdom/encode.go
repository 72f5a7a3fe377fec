package svgdom

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

type encodingInfo struct {
	name string            // as written in the XML declaration, empty for UTF-8
	enc  encoding.Encoding // nil for UTF-8
}

// SetEncoding selects the character encoding used by WriteTo, given by
// any of its WHATWG labels ("latin1", "iso-8859-15", "utf-8", ...).
// An empty label selects UTF-8.
func (d *Document) SetEncoding(label string) error {
	if label == "" {
		d.encoding = encodingInfo{}
		return nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return fmt.Errorf("svgdom: unsupported output encoding %q: %w", label, err)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return fmt.Errorf("svgdom: unsupported output encoding %q: %w", label, err)
	}
	if name == "utf-8" {
		d.encoding = encodingInfo{}
		return nil
	}
	d.encoding = encodingInfo{name: strings.ToUpper(name), enc: enc}
	return nil
}

// Encoding returns the name written in the XML declaration.
func (d *Document) Encoding() string {
	if d.encoding.enc == nil {
		return "UTF-8"
	}
	return d.encoding.name
}

type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// WriteTo writes the XML declaration followed by the tree reachable from
// the root. With an encoding other than UTF-8, non ASCII characters are
// written as numeric character references.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	var (
		out io.Writer = cw
		tw  *transform.Writer
	)
	if d.encoding.enc != nil {
		tw = transform.NewWriter(cw, d.encoding.enc.NewEncoder())
		out = tw
	}

	bw := bufio.NewWriter(out)
	e := encoder{w: bw, doc: d, ascii: d.encoding.enc != nil}
	fmt.Fprintf(bw, `<?xml version="1.0" encoding="%s"?>`+"\n", d.Encoding())
	if d.root != NoNode {
		e.node(d.root)
	}
	bw.WriteByte('\n')

	err := bw.Flush()
	if tw != nil {
		if errC := tw.Close(); err == nil {
			err = errC
		}
	}
	return cw.n, err
}

// String returns the serialized document, ignoring write errors.
func (d *Document) String() string {
	var b strings.Builder
	d.WriteTo(&b)
	return b.String()
}

type encoder struct {
	w     *bufio.Writer
	doc   *Document
	ascii bool
}

func (e encoder) node(id NodeID) {
	n := e.doc.nodes[id]
	switch n.kind {
	case TextNode:
		e.escape(n.data, textEscaper)
	case CommentNode:
		e.w.WriteString("<!--")
		e.w.WriteString(n.data)
		e.w.WriteString("-->")
	case ElementNode:
		e.w.WriteByte('<')
		e.w.WriteString(n.data)
		for _, a := range n.attrs {
			e.w.WriteByte(' ')
			e.w.WriteString(a.Name)
			e.w.WriteString(`="`)
			e.escape(a.Value, attrEscaper)
			e.w.WriteByte('"')
		}
		if len(n.children) == 0 {
			e.w.WriteString("/>")
			return
		}
		e.w.WriteByte('>')
		for _, c := range n.children {
			e.node(c)
		}
		e.w.WriteString("</")
		e.w.WriteString(n.data)
		e.w.WriteByte('>')
	}
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
		"\t", "&#x9;", "\n", "&#xA;", "\r", "&#xD;")
)

// isInCharacterRange reports whether r may appear in an XML document.
func isInCharacterRange(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

// sanitize replaces invalid UTF-8 bytes and characters
// outside the XML range by U+FFFD.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if isInCharacterRange(r) {
			return r
		}
		return utf8.RuneError
	}, s)
}

func (e encoder) escape(s string, esc *strings.Replacer) {
	s = sanitize(s)
	if !e.ascii {
		esc.WriteString(e.w, s)
		return
	}
	last := 0
	for i := 0; i < len(s); {
		if s[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		esc.WriteString(e.w, s[last:i])
		fmt.Fprintf(e.w, "&#x%X;", r)
		i += size
		last = i
	}
	esc.WriteString(e.w, s[last:])
}
