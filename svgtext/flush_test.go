package svgtext

import (
	"fmt"
	"testing"

	"github.com/benoitkugler/svgchart/svgdom"
	"github.com/benoitkugler/svgchart/svggeom"
	"github.com/benoitkugler/svgchart/svgpaint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawnPolygon struct {
	points    []svggeom.Point
	color     svgpaint.Pattern
	filled    bool
	thickness float64
}

type testCanvas struct {
	doc      *svgdom.Document
	offset   svggeom.Point
	polygons []drawnPolygon
}

func newTestCanvas() (*testCanvas, svgdom.NodeID) {
	doc := svgdom.NewDocument()
	root := doc.CreateElement("svg")
	doc.SetRoot(root)
	g := doc.CreateElement("g", svgdom.Attr{Name: "id", Value: "target"})
	doc.AppendChild(root, g)
	return &testCanvas{doc: doc, offset: svggeom.Pt(1, 2)}, g
}

func (tc *testCanvas) Document() *svgdom.Document { return tc.doc }

func (tc *testCanvas) Offset() svggeom.Point { return tc.offset }

func (tc *testCanvas) DrawPolygonIn(target svgdom.NodeID, points []svggeom.Point, color svgpaint.Pattern, filled bool, thickness float64) (string, error) {
	tc.polygons = append(tc.polygons, drawnPolygon{points, color, filled, thickness})
	id := fmt.Sprintf("Polygon_%d", len(tc.polygons))
	tc.doc.AppendChild(target, tc.doc.CreateElement("path", svgdom.Attr{Name: "id", Value: id}))
	return id, nil
}

func attr(t *testing.T, doc *svgdom.Document, id, name string) string {
	t.Helper()
	n, ok := doc.FindByID(id)
	require.True(t, ok, "missing element %s", id)
	v, _ := doc.Attr(n, name)
	return v
}

func TestFlushOrderAndOnce(t *testing.T) {
	c, target := newTestCanvas()
	e := Engine{Estimator: half}
	for i := 0; i < 3; i++ {
		e.Enqueue(PendingText{ID: fmt.Sprintf("TextBox_%d", i), Lines: []Line{{"abc"}}, Size: 10, Width: 100, Height: 10, Font: testFont()})
	}
	assert.Equal(t, 3, e.Pending())

	require.NoError(t, e.Flush(target, c))
	assert.Equal(t, 0, e.Pending())
	children := c.doc.Children(target)
	require.Len(t, children, 3)
	for i, child := range children {
		id, _ := c.doc.Attr(child, "id")
		assert.Equal(t, fmt.Sprintf("TextBox_%d", i), id)
	}

	assert.ErrorIs(t, e.Flush(target, c), ErrAlreadyFlushed)
	assert.Len(t, c.doc.Children(target), 3)
}

func TestFlushPositions(t *testing.T) {
	c, target := newTestCanvas()
	e := Engine{Estimator: half}
	font := testFont()
	e.Enqueue(PendingText{
		ID:       "TextBox_1",
		Position: svggeom.Pt(10, 20),
		Width:    100,
		Height:   50,
		Align:    AlignRight | AlignBottom,
		Lines:    []Line{{"abc"}},
		Size:     10,
		Font:     font,
	})
	require.NoError(t, e.Flush(target, c))

	assert.Equal(t, "96.0000", attr(t, c.doc, "TextBox_1_text_0", "x"))
	assert.Equal(t, "70.5000", attr(t, c.doc, "TextBox_1_text_0", "y"))
	assert.Equal(t, "font-size: 10px; font-family: sans-serif; fill: #000000; fill-opacity: 0.00; stroke: none;",
		attr(t, c.doc, "TextBox_1_text_0", "style"))
	g, _ := c.doc.FindByID("TextBox_1")
	assert.Equal(t, "abc", c.doc.TextContent(g))

	// minimized invisible background
	require.Len(t, c.polygons, 1)
	bg := c.polygons[0]
	assert.Equal(t, []svggeom.Point{{X: 95, Y: 60}, {X: 110, Y: 60}, {X: 110, Y: 70}, {X: 95, Y: 70}}, bg.points)
	assert.True(t, bg.filled)
	assert.Equal(t, svgpaint.White.Transparent(1), bg.color)
}

func TestFlushBoxAndDecorations(t *testing.T) {
	c, target := newTestCanvas()
	e := Engine{Estimator: half, LineSpacing: .5}
	font := testFont()
	font.MinimizeBorder = false
	font.Color = svgpaint.Black
	font.Background = svgpaint.White
	font.Border = svgpaint.Black
	font.BorderWidth = 2
	font.Padding = 1
	font.Shadow = true
	font.ShadowColor = svgpaint.NewPlainColor(0x80, 0x80, 0x80, 0xff)
	font.ShadowOffset = 1
	e.Enqueue(PendingText{
		ID:       "TextBox_2",
		Position: svggeom.Pt(3, 3),
		Width:    40,
		Height:   30,
		Align:    AlignCenter | AlignMiddle,
		Lines:    []Line{{"ab"}, {"abcd"}},
		Size:     10,
		Font:     font,
		Rotation: &Rotation{Angle: 90, Center: svggeom.Pt(20, 20)},
	})
	require.NoError(t, e.Flush(target, c))

	assert.Equal(t, "rotate( 90.00 21.0000 22.0000 )", attr(t, c.doc, "TextBox_2", "transform"))

	// the box grown by the padding, filled then stroked
	require.Len(t, c.polygons, 2)
	box := []svggeom.Point{{X: 0, Y: 0}, {X: 46, Y: 0}, {X: 46, Y: 36}, {X: 0, Y: 36}}
	assert.Equal(t, box, c.polygons[0].points)
	assert.Equal(t, svgpaint.White, c.polygons[0].color)
	assert.Equal(t, box, c.polygons[1].points)
	assert.False(t, c.polygons[1].filled)
	assert.Equal(t, 2., c.polygons[1].thickness)

	// block height 25, centered in 30
	assert.Equal(t, "19.0000", attr(t, c.doc, "TextBox_2_text_0", "x"))
	assert.Equal(t, "16.0000", attr(t, c.doc, "TextBox_2_text_0", "y"))
	assert.Equal(t, "14.0000", attr(t, c.doc, "TextBox_2_text_1", "x"))
	assert.Equal(t, "31.0000", attr(t, c.doc, "TextBox_2_text_1", "y"))
	assert.Equal(t, "20.0000", attr(t, c.doc, "TextBox_2_shadow_0", "x"))
	assert.Equal(t, "17.0000", attr(t, c.doc, "TextBox_2_shadow_0", "y"))
	assert.Contains(t, attr(t, c.doc, "TextBox_2_shadow_0", "style"), "fill: #808080;")

	// shadows are written below their line
	g, _ := c.doc.FindByID("TextBox_2")
	children := c.doc.Children(g)
	require.Len(t, children, 6)
	id, _ := c.doc.Attr(children[2], "id")
	assert.Equal(t, "TextBox_2_shadow_0", id)
}
