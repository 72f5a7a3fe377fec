// Package svggeom provides the plane geometry used by the SVG chart driver,
// in particular the inset of outlines so that centered strokes stay inside
// the shape they outline.
package svggeom

import "math"

// Point is a position (or a vector) in user space.
type Point struct {
	X, Y float64
}

// Pt is a shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Mul(k float64) Point { return Point{p.X * k, p.Y * k} }

// Len is the distance from the origin of the point
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Unit returns the vector scaled to length 1, or the zero vector
// when p is null.
func (p Point) Unit() Point {
	l := p.Len()
	if l == 0 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

func dot(u, v Point) float64 { return u.X*v.X + u.Y*v.Y }

func cross(u, v Point) float64 { return u.X*v.Y - u.Y*v.X }

// turnPort90 returns the vector 90 degrees toward positive angles
func turnPort90(v Point) Point { return Point{-v.Y, v.X} }

// turnStarboard90 returns the vector 90 degrees toward negative angles
func turnStarboard90(v Point) Point { return Point{v.Y, -v.X} }

// PolygonArea returns the signed (shoelace) area of the polygon.
// Its sign gives the orientation of the outline.
func PolygonArea(points []Point) float64 {
	var a float64
	for i, p := range points {
		q := points[(i+1)%len(points)]
		a += cross(p, q)
	}
	return a / 2
}

// Rad converts an angle in degrees to radians.
func Rad(deg float64) float64 { return deg * math.Pi / 180 }

// EllipsePoint returns the point at angle deg (in degrees) on the ellipse
// of the given radii. Angles grow from the positive x axis toward the
// positive y axis, which is clockwise on screen.
func EllipsePoint(center Point, rx, ry, deg float64) Point {
	a := Rad(deg)
	return Point{center.X + rx*math.Cos(a), center.Y + ry*math.Sin(a)}
}
