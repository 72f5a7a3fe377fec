// Package svgdriver turns the drawing primitives of a chart layout engine
// (polygons, lines, circle sectors, circular arcs, images and text boxes)
// into an SVG document.
//
// Shapes are written as they are drawn; texts are fitted immediately but
// written when the document is finalized, above every shape.
package svgdriver

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/benoitkugler/svgchart/svgdom"
	"github.com/benoitkugler/svgchart/svgfont"
	"github.com/benoitkugler/svgchart/svggeom"
	"github.com/benoitkugler/svgchart/svgpaint"
	"github.com/benoitkugler/svgchart/svgtext"
)

// MimeType is the media type of the output.
const MimeType = "image/svg+xml"

const (
	svgNamespace   = "http://www.w3.org/2000/svg"
	xlinkNamespace = "http://www.w3.org/1999/xlink"
)

type state uint8

const (
	uninitialized state = iota
	active
	finalized
)

var _ svgtext.Canvas = (*Driver)(nil) // assert interface conformance

// Driver builds one SVG document. It is not safe for concurrent use.
type Driver struct {
	options Options
	state   state

	doc      *svgdom.Document
	defs     svgdom.NodeID
	elements svgdom.NodeID // the group receiving the chart

	gradients *svgpaint.GradientCache
	fonts     *svgfont.Provider
	text      svgtext.Engine

	elementID int
}

// New returns a driver, whose document is created on the first
// drawing call (or the call to Init).
func New(options Options) *Driver {
	return &Driver{
		options: options,
		fonts:   svgfont.NewProvider(),
		text: svgtext.Engine{
			LineSpacing:   options.LineSpacing,
			AutoShorten:   options.AutoShortenString,
			ShortenMarker: options.AutoShortenMarker,
		},
	}
}

// Options returns the options of the driver, with the current font.
func (d *Driver) Options() Options { return d.options }

// SetFont changes the font used by the next text boxes.
func (d *Driver) SetFont(font svgtext.FontSpec) { d.options.Font = font }

func (d *Driver) Font() svgtext.FontSpec { return d.options.Font }

// MimeType returns "image/svg+xml".
func (d *Driver) MimeType() string { return MimeType }

// Document returns the document being built, or nil before initialization.
func (d *Driver) Document() *svgdom.Document { return d.doc }

// Offset returns the translation applied to every coordinate.
func (d *Driver) Offset() svggeom.Point { return d.options.Offset }

// Init creates the document. It is called by every drawing method,
// and does nothing once the document exists.
func (d *Driver) Init() error {
	switch d.state {
	case active:
		return nil
	case finalized:
		return ErrFinalized
	}
	if err := d.createDocument(); err != nil {
		return err
	}
	d.state = active
	return nil
}

func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func coord(f float64) string { return strconv.FormatFloat(f, 'f', 4, 64) }

func (d *Driver) createDocument() error {
	opts := d.options
	var (
		doc  *svgdom.Document
		root svgdom.NodeID
	)
	if opts.TemplateDocument != "" {
		var err error
		doc, err = svgdom.ReadDocument(opts.TemplateDocument)
		if err != nil {
			return fmt.Errorf("svgdriver: loading template: %w", err)
		}
		var ok bool
		root, ok = doc.FindByTag("svg")
		if !ok {
			return fmt.Errorf("svgdriver: loading template %s: missing <svg> element", opts.TemplateDocument)
		}
		if _, ok := doc.Attr(root, "xmlns:xlink"); !ok {
			doc.SetAttr(root, "xmlns:xlink", xlinkNamespace)
		}
		defs, ok := doc.FindByTag("defs")
		if !ok {
			defs = doc.CreateElement("defs")
			doc.InsertChild(root, 0, defs)
		}
		d.defs = defs
		Logger().Info("svgdriver: template loaded", "path", opts.TemplateDocument)
	} else {
		doc = svgdom.NewDocument()
		root = doc.CreateElement("svg",
			svgdom.Attr{Name: "xmlns", Value: svgNamespace},
			svgdom.Attr{Name: "xmlns:xlink", Value: xlinkNamespace},
			svgdom.Attr{Name: "width", Value: num(opts.Width)},
			svgdom.Attr{Name: "height", Value: num(opts.Height)},
			svgdom.Attr{Name: "version", Value: "1.0"},
			svgdom.Attr{Name: "id", Value: opts.IDPrefix},
		)
		doc.SetRoot(root)
		d.defs = doc.CreateElement("defs")
		doc.AppendChild(root, d.defs)
	}

	if err := doc.SetEncoding(opts.Encoding); err != nil {
		return err
	}

	if opts.InsertIntoGroup != "" {
		g, ok := doc.FindByID(opts.InsertIntoGroup)
		if !ok {
			return &InvalidInsertionTargetError{ID: opts.InsertIntoGroup}
		}
		d.elements = g
	} else {
		d.elements = doc.CreateElement("g",
			svgdom.Attr{Name: "id", Value: opts.IDPrefix + "Chart"},
			svgdom.Attr{Name: "color-rendering", Value: opts.ColorRendering},
			svgdom.Attr{Name: "shape-rendering", Value: opts.ShapeRendering},
			svgdom.Attr{Name: "text-rendering", Value: opts.TextRendering},
		)
		doc.AppendChild(root, d.elements)
	}

	d.doc = doc
	d.gradients = svgpaint.NewGradientCache(doc, d.defs)
	return nil
}

// newID returns a new element identifier, like chartPolygon_3.
func (d *Driver) newID(kind string) string {
	d.elementID++
	return fmt.Sprintf("%s%s_%d", d.options.IDPrefix, kind, d.elementID)
}

// Finalize writes the pending texts and the font definitions.
// It must be called exactly once, before WriteTo.
func (d *Driver) Finalize() error {
	if d.state == finalized {
		return ErrAlreadyFinalized
	}
	if err := d.Init(); err != nil {
		return err
	}
	texts := d.text.Pending()
	if err := d.text.Flush(d.elements, d); err != nil {
		return err
	}
	fonts := d.fonts.EmbedInto(d.doc, d.defs, d.options.IDPrefix)
	d.state = finalized
	Logger().Info("svgdriver: document finalized", "elements", d.elementID, "texts", texts,
		"gradients", d.gradients.Len(), "fonts", len(fonts))
	return nil
}

// WriteTo writes the finalized document.
func (d *Driver) WriteTo(w io.Writer) (int64, error) {
	if d.state != finalized {
		return 0, ErrNotFinalized
	}
	return d.doc.WriteTo(w)
}

// Render finalizes the document if needed, and writes it to `file`.
func (d *Driver) Render(file string) error {
	if d.state != finalized {
		if err := d.Finalize(); err != nil {
			return err
		}
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if _, err = d.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
