package svgtext

import (
	"fmt"
	"strconv"

	"github.com/benoitkugler/svgchart/svgdom"
	"github.com/benoitkugler/svgchart/svggeom"
	"github.com/benoitkugler/svgchart/svgpaint"
)

// Canvas is the drawing surface the texts are written to.
type Canvas interface {
	Document() *svgdom.Document
	// Offset is added to every coordinate.
	Offset() svggeom.Point
	// DrawPolygonIn draws a polygon as last child of `target`.
	DrawPolygonIn(target svgdom.NodeID, points []svggeom.Point, color svgpaint.Pattern, filled bool, thickness float64) (string, error)
}

// baselineRatio places the baseline of a line relative to the font size.
const baselineRatio = 0.85

// Flush writes every queued text, in order, as a group appended to
// `target`. It may only be called once.
func (e *Engine) Flush(target svgdom.NodeID, c Canvas) error {
	if e.flushed {
		return ErrAlreadyFlushed
	}
	e.flushed = true
	queue := e.queue
	e.queue = nil
	for _, text := range queue {
		if err := e.write(target, c, text); err != nil {
			return err
		}
	}
	return nil
}

func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func coord(f float64) string { return strconv.FormatFloat(f, 'f', 4, 64) }

func (e *Engine) write(target svgdom.NodeID, c Canvas, text PendingText) error {
	doc, offset := c.Document(), c.Offset()
	font := text.Font

	group := doc.CreateElement("g", svgdom.Attr{Name: "id", Value: text.ID})
	if r := text.Rotation; r != nil && r.Angle != 0 {
		doc.SetAttr(group, "transform", fmt.Sprintf("rotate( %.2f %.4f %.4f )",
			r.Angle, r.Center.X+offset.X, r.Center.Y+offset.Y))
	}
	doc.AppendChild(target, group)

	block := e.BlockHeight(len(text.Lines), text.Size)
	var yOffset float64
	switch {
	case text.Align&AlignBottom != 0:
		yOffset = text.Height - block
	case text.Align&AlignMiddle != 0:
		yOffset = (text.Height - block) / 2
	}

	estimator := e.Estimator
	if text.Estimator != nil {
		estimator = text.Estimator
	}
	widths := make([]float64, len(text.Lines))
	for i, line := range text.Lines {
		widths[i] = estimator.TextWidth(line.String(), text.Size)
	}

	// background and border
	padding := font.BoxPadding()
	x0, y0 := text.Position.X-padding, text.Position.Y-padding
	x1, y1 := text.Position.X+text.Width+padding, text.Position.Y+text.Height+padding
	if font.MinimizeBorder {
		var width float64
		for _, w := range widths {
			width = max(width, w)
		}
		xOffset := horizontalOffset(text.Align, text.Width, width)
		x0 = text.Position.X + xOffset - padding
		y0 = text.Position.Y + yOffset - padding
		x1 = text.Position.X + xOffset + width + padding
		y1 = text.Position.Y + yOffset + block + padding
	}
	box := []svggeom.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}

	background := font.Background
	if background == nil { // an invisible box still makes the text easy to select
		background = svgpaint.White.Transparent(1)
	}
	if _, err := c.DrawPolygonIn(group, box, background, true, 0); err != nil {
		return err
	}
	if font.Border != nil && font.BorderWidth > 0 {
		if _, err := c.DrawPolygonIn(group, box, font.Border, false, font.BorderWidth); err != nil {
			return err
		}
	}

	y := text.Position.Y + yOffset + baselineRatio*text.Size
	for i, line := range text.Lines {
		x := text.Position.X + horizontalOffset(text.Align, text.Width, widths[i])
		content := line.String()
		if font.Shadow {
			writeLine(doc, group, fmt.Sprintf("%s_shadow_%d", text.ID, i), content,
				svggeom.Pt(x+font.ShadowOffset, y+font.ShadowOffset).Add(offset), text.Size, font.Name, font.ShadowColor)
		}
		writeLine(doc, group, fmt.Sprintf("%s_text_%d", text.ID, i), content,
			svggeom.Pt(x, y).Add(offset), text.Size, font.Name, font.Color)
		y += text.Size * (1 + e.LineSpacing)
	}
	return nil
}

func horizontalOffset(align Alignment, boxWidth, width float64) float64 {
	switch {
	case align&AlignRight != 0:
		return boxWidth - width
	case align&AlignCenter != 0:
		return (boxWidth - width) / 2
	default:
		return 0
	}
}

// TextStyle returns the style attribute of a text element.
func TextStyle(size float64, family string, color svgpaint.PlainColor) string {
	return fmt.Sprintf("font-size: %spx; font-family: %s; fill: %s; fill-opacity: %.2f; stroke: none;",
		num(size), family, color.Hex(), color.Opacity())
}

func writeLine(doc *svgdom.Document, group svgdom.NodeID, id, content string, pos svggeom.Point,
	size float64, family string, color svgpaint.PlainColor,
) {
	el := doc.CreateElement("text",
		svgdom.Attr{Name: "id", Value: id},
		svgdom.Attr{Name: "x", Value: coord(pos.X)},
		svgdom.Attr{Name: "y", Value: coord(pos.Y)},
		svgdom.Attr{Name: "style", Value: TextStyle(size, family, color)},
	)
	doc.AppendChild(el, doc.CreateText(content))
	doc.AppendChild(group, el)
}
