package svgdriver

import (
	"fmt"
	"math"

	"github.com/benoitkugler/svgchart/svgdom"
	"github.com/benoitkugler/svgchart/svggeom"
	"github.com/benoitkugler/svgchart/svgpaint"
	"github.com/benoitkugler/svgchart/svgpath"
)

// The drawing methods return the identifier of the element created.
// An empty identifier (with a nil error) means the shape was too small
// to be drawn and has been skipped.

func (d *Driver) shift(points []svggeom.Point) []svggeom.Point {
	out := make([]svggeom.Point, len(points))
	for i, p := range points {
		out[i] = p.Add(d.options.Offset)
	}
	return out
}

func (d *Driver) appendPath(target svgdom.NodeID, id string, path svgpath.Path, style string) {
	attrs := make([]svgdom.Attr, 0, 3)
	if id != "" {
		attrs = append(attrs, svgdom.Attr{Name: "id", Value: id})
	}
	attrs = append(attrs,
		svgdom.Attr{Name: "d", Value: path.ToSVGPath()},
		svgdom.Attr{Name: "style", Value: style})
	d.doc.AppendChild(target, d.doc.CreateElement("path", attrs...))
}

// DrawPolygon draws a closed polygon. Outlines are moved inward by half
// the thickness, so that the stroke stays inside the polygon.
func (d *Driver) DrawPolygon(points []svggeom.Point, color svgpaint.Pattern, filled bool, thickness float64) (string, error) {
	return d.DrawPolygonIn(d.elements, points, color, filled, thickness)
}

// DrawPolygonIn is the same as DrawPolygon, but adds the polygon
// to `target` instead of the chart group.
func (d *Driver) DrawPolygonIn(target svgdom.NodeID, points []svggeom.Point, color svgpaint.Pattern, filled bool, thickness float64) (string, error) {
	if err := d.Init(); err != nil {
		return "", err
	}
	if target == svgdom.NoNode { // the chart group is only known after Init
		target = d.elements
	}
	if len(points) == 0 {
		return "", nil
	}
	if !filled {
		reduced, err := svggeom.ReducePolygon(points, thickness/2)
		if err != nil {
			Logger().Debug("svgdriver: polygon too small for its outline, skipped", "points", len(points), "thickness", thickness)
			return "", nil
		}
		points = reduced
	}

	id := d.newID("Polygon")
	d.appendPath(target, id, svgpath.Polygon(d.shift(points)), d.style(color, filled, thickness))
	return id, nil
}

// DrawLine draws a straight line.
func (d *Driver) DrawLine(start, end svggeom.Point, color svgpaint.Pattern, thickness float64) (string, error) {
	if err := d.Init(); err != nil {
		return "", err
	}
	var p svgpath.Path
	p.Start(start.Add(d.options.Offset))
	p.Line(end.Add(d.options.Offset))

	id := d.newID("Line")
	d.appendPath(d.elements, id, p, d.style(color, false, thickness))
	return id, nil
}

// DrawCircle draws an ellipse fitting in width x height.
func (d *Driver) DrawCircle(center svggeom.Point, width, height float64, color svgpaint.Pattern, filled bool) (string, error) {
	if err := d.Init(); err != nil {
		return "", err
	}
	var inset float64
	if !filled {
		inset = 0.5
	}
	rx, ry := width/2-inset, height/2-inset
	if rx <= 0 || ry <= 0 {
		Logger().Debug("svgdriver: circle too small for its outline, skipped", "width", width, "height", height)
		return "", nil
	}
	c := center.Add(d.options.Offset)

	id := d.newID("Circle")
	d.doc.AppendChild(d.elements, d.doc.CreateElement("ellipse",
		svgdom.Attr{Name: "id", Value: id},
		svgdom.Attr{Name: "cx", Value: coord(c.X)},
		svgdom.Attr{Name: "cy", Value: coord(c.Y)},
		svgdom.Attr{Name: "rx", Value: coord(rx)},
		svgdom.Attr{Name: "ry", Value: coord(ry)},
		svgdom.Attr{Name: "style", Value: d.style(color, filled, 1)},
	))
	return id, nil
}

// DrawCircleSector draws a pie slice of the ellipse (center, width, height)
// between two angles, in degrees. A sweep of 360 degrees or more draws the
// whole ellipse.
func (d *Driver) DrawCircleSector(center svggeom.Point, width, height, startAngle, endAngle float64, color svgpaint.Pattern, filled bool) (string, error) {
	if err := d.Init(); err != nil {
		return "", err
	}
	if err := checkAngles(startAngle, endAngle); err != nil {
		return "", err
	}
	if endAngle < startAngle {
		startAngle, endAngle = endAngle, startAngle
	}
	if endAngle-startAngle >= 360 {
		return d.DrawCircle(center, width, height, color, filled)
	}

	c := center.Add(d.options.Offset)
	rx, ry := width/2, height/2
	large := endAngle-startAngle > 180
	var p svgpath.Path
	if filled {
		p.Start(c)
		p.Line(svggeom.EllipsePoint(c, rx, ry, startAngle))
		p.Arc(rx, ry, large, true, svggeom.EllipsePoint(c, rx, ry, endAngle))
	} else {
		r, err := svggeom.ReduceEllipseArc(c, width, height, startAngle, endAngle, 0.5)
		if err != nil {
			Logger().Debug("svgdriver: sector too small for its outline, skipped", "start", startAngle, "end", endAngle)
			return "", nil
		}
		p.Start(r.Center)
		p.Line(r.Start)
		p.Arc(r.RX, r.RY, large, true, r.End)
	}
	p.Stop(true)

	id := d.newID("CircleSector")
	d.appendPath(d.elements, id, p, d.style(color, filled, 1))
	return id, nil
}

func checkAngles(start, end float64) error {
	for _, a := range [2]float64{start, end} {
		if math.IsInf(a, 0) || math.IsNaN(a) {
			return fmt.Errorf("%w: %v", ErrInvalidAngle, a)
		}
	}
	return nil
}

// pmod is the modulo with a result in [0, m)
func pmod(a, m float64) float64 {
	r := math.Mod(a, m)
	if r < 0 {
		r += m
	}
	return r
}

// arcNeedsSplit returns true if the arc must be drawn in two parts:
// when it is larger than a half ellipse, or when it crosses the horizontal
// axis without starting or ending on it.
func arcNeedsSplit(start, end float64) bool {
	if end-start > 180 {
		return true
	}
	if pmod(start, 180) == 0 || pmod(end, 180) == 0 {
		return false
	}
	return (pmod(start, 360) > 180) != (pmod(end, 360) > 180)
}

// DrawCircularArc draws the side of a 3D pie slice: the band of height
// `size` below the arc of the ellipse between the two angles, or only the
// arc when not filled. Arcs crossing the horizontal axis are split
// in two; the identifier of the first part is returned.
func (d *Driver) DrawCircularArc(center svggeom.Point, width, height, size, startAngle, endAngle float64, color svgpaint.Pattern, filled bool) (string, error) {
	if err := d.Init(); err != nil {
		return "", err
	}
	if err := checkAngles(startAngle, endAngle); err != nil {
		return "", err
	}
	if endAngle < startAngle {
		startAngle, endAngle = endAngle, startAngle
	}

	if endAngle-startAngle > 360 {
		endAngle = startAngle + 360
	}
	// start in [0, 360) so that splitting always progresses
	turn := startAngle - pmod(startAngle, 360)
	startAngle, endAngle = startAngle-turn, endAngle-turn

	if arcNeedsSplit(startAngle, endAngle) {
		split := math.Ceil(endAngle/180)*180 - 180
		Logger().Debug("svgdriver: splitting circular arc", "start", startAngle, "end", endAngle, "at", split)
		id, err := d.DrawCircularArc(center, width, height, size, startAngle, split, color, filled)
		if err != nil {
			return "", err
		}
		if _, err := d.DrawCircularArc(center, width, height, size, split, endAngle, color, filled); err != nil {
			return "", err
		}
		return id, nil
	}

	c := center.Add(d.options.Offset)
	rx, ry := width/2, height/2
	start := svggeom.EllipsePoint(c, rx, ry, startAngle)
	end := svggeom.EllipsePoint(c, rx, ry, endAngle)
	large := endAngle-startAngle > 180

	var p svgpath.Path
	if filled {
		down := svggeom.Pt(0, size)
		p.Start(end.Add(down))
		p.Arc(rx, ry, large, false, start.Add(down))
		p.Line(start)
		p.Arc(rx, ry, large, true, end)
		p.Stop(true)
	} else {
		p.Start(start)
		p.Arc(rx, ry, large, true, end)
	}

	id := d.newID("CircularArc")
	d.appendPath(d.elements, id, p, d.style(color, filled, 1))

	if shade := d.options.ShadeCircularArc; filled && shade > 0 {
		gradient := svgpaint.LinearGradient{
			Start:      svggeom.Pt(c.X-rx, c.Y),
			End:        svggeom.Pt(c.X+rx, c.Y),
			StartColor: svgpaint.White.Transparent(shade * 1.5),
			EndColor:   svgpaint.Black.Transparent(shade),
		}
		d.appendPath(d.elements, d.newID("CircularArcShade"), p, d.style(gradient, true, 1))
	}
	return id, nil
}
