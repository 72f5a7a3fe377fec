package svgdom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html/charset"
)

// ErrNoRoot is returned when parsing a stream without any element.
var ErrNoRoot = errors.New("svgdom: invalid xml document: no root element")

func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// ReadDocumentStream parses an XML document. Namespace prefixes are kept
// as written, so that the document may be written back unchanged.
// Processing instructions and directives are dropped.
func ReadDocumentStream(stream io.Reader) (*Document, error) {
	doc := NewDocument()
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel

	var stack []NodeID // open elements
	for {
		t, err := decoder.RawToken()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			attrs := make([]Attr, len(se.Attr))
			for i, a := range se.Attr {
				attrs[i] = Attr{Name: qualifiedName(a.Name), Value: a.Value}
			}
			id := doc.CreateElement(qualifiedName(se.Name), attrs...)
			if len(stack) == 0 {
				if doc.root != NoNode {
					return nil, fmt.Errorf("svgdom: invalid xml document: unexpected second root <%s>", qualifiedName(se.Name))
				}
				doc.root = id
			} else {
				doc.AppendChild(stack[len(stack)-1], id)
			}
			stack = append(stack, id)
		case xml.EndElement:
			if len(stack) == 0 || doc.Tag(stack[len(stack)-1]) != qualifiedName(se.Name) {
				return nil, fmt.Errorf("svgdom: invalid xml document: unexpected end element </%s>", qualifiedName(se.Name))
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) != 0 { // white space around the root is dropped
				doc.AppendChild(stack[len(stack)-1], doc.CreateText(string(se)))
			}
		case xml.Comment:
			if len(stack) != 0 {
				doc.AppendChild(stack[len(stack)-1], doc.createComment(string(se)))
			}
		}
	}
	if doc.root == NoNode {
		return nil, ErrNoRoot
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("svgdom: invalid xml document: unclosed element <%s>", doc.Tag(stack[len(stack)-1]))
	}
	return doc, nil
}

// ReadDocument opens and parses the given file.
func ReadDocument(file string) (*Document, error) {
	fin, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadDocumentStream(fin)
}
