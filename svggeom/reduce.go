package svggeom

import (
	"errors"
	"math"
)

// ErrReductionFailed is returned when an outline is too small
// (or too degenerate) to be moved inward by the requested amount.
var ErrReductionFailed = errors.New("svggeom: outline too small to be reduced")

const epsilon = 1e-9

// ReducePolygon moves every edge of the polygon inward by inset and returns
// the intersections of consecutive moved edges, vertex i being the
// intersection of the edges ending and starting at points[i].
// The point count and the orientation are preserved.
// Polygons with less than 3 points are lines and are returned unchanged.
func ReducePolygon(points []Point, inset float64) ([]Point, error) {
	n := len(points)
	if n < 3 {
		return append([]Point(nil), points...), nil
	}
	area := PolygonArea(points)
	if math.Abs(area) < epsilon {
		return nil, ErrReductionFailed
	}

	// dirs[i] is the unit direction of the edge from points[i] to points[i+1],
	// normals[i] points toward the interior
	dirs := make([]Point, n)
	normals := make([]Point, n)
	for i, p := range points {
		e := points[(i+1)%n].Sub(p)
		l := e.Len()
		if l < epsilon || l < inset {
			return nil, ErrReductionFailed
		}
		dirs[i] = e.Mul(1 / l)
		if area > 0 {
			normals[i] = turnPort90(dirs[i])
		} else {
			normals[i] = turnStarboard90(dirs[i])
		}
	}

	reduced := make([]Point, n)
	for i, p := range points {
		prev := (i + n - 1) % n
		v, ok := intersect(points[prev].Add(normals[prev].Mul(inset)), dirs[prev],
			p.Add(normals[i].Mul(inset)), dirs[i])
		if !ok {
			if dot(dirs[prev], dirs[i]) < 0 { // spike
				return nil, ErrReductionFailed
			}
			// collinear edges: the vertex simply follows the common normal
			v = p.Add(normals[i].Mul(inset))
		}
		reduced[i] = v
	}

	// an inset larger than the polygon collapses or turns it inside out
	ra := PolygonArea(reduced)
	if math.Abs(ra) < epsilon || (ra > 0) != (area > 0) {
		return nil, ErrReductionFailed
	}
	for i, p := range reduced {
		if dot(reduced[(i+1)%n].Sub(p), dirs[i]) <= epsilon {
			return nil, ErrReductionFailed
		}
	}
	return reduced, nil
}

// intersect returns the intersection of the lines a + t*u and b + s*v,
// or false for parallel lines.
func intersect(a, u, b, v Point) (Point, bool) {
	c := cross(u, v)
	if math.Abs(c) < epsilon {
		return Point{}, false
	}
	t := cross(b.Sub(a), v) / c
	return a.Add(u.Mul(t)), true
}

// ArcReduction is the inset outline of an elliptical sector.
type ArcReduction struct {
	Center, Start, End Point
	// Radii of the reduced arc
	RX, RY float64
}

// ReduceEllipseArc computes the outline of the sector of the ellipse
// (center, width, height) between startAngle and endAngle (in degrees, see
// EllipsePoint), moved inward by inset: both radial edges are offset toward
// the inside of the sector, and the arc is shrunk by inset.
func ReduceEllipseArc(center Point, width, height, startAngle, endAngle, inset float64) (ArcReduction, error) {
	rx, ry := width/2-inset, height/2-inset
	if rx <= 0 || ry <= 0 {
		return ArcReduction{}, ErrReductionFailed
	}
	if endAngle < startAngle {
		startAngle, endAngle = endAngle, startAngle
	}
	if sweep := endAngle - startAngle; sweep <= 0 || sweep >= 360 {
		return ArcReduction{}, ErrReductionFailed
	}

	us := EllipsePoint(Point{}, width/2, height/2, startAngle).Unit()
	ue := EllipsePoint(Point{}, width/2, height/2, endAngle).Unit()
	// the inside of the sector is toward growing angles for the start edge
	// and toward decreasing angles for the end edge
	as := center.Add(turnPort90(us).Mul(inset))
	ae := center.Add(turnStarboard90(ue).Mul(inset))

	apex, ok := intersect(as, us, ae, ue)
	if !ok {
		if dot(us, ue) > 0 {
			return ArcReduction{}, ErrReductionFailed
		}
		// half ellipse: both edges lie on the same line
		apex = as
	}

	rel := apex.Sub(center)
	if (rel.X/rx)*(rel.X/rx)+(rel.Y/ry)*(rel.Y/ry) >= 1 {
		return ArcReduction{}, ErrReductionFailed
	}

	start, ok := rayEllipse(rel, us, rx, ry)
	if !ok {
		return ArcReduction{}, ErrReductionFailed
	}
	end, ok := rayEllipse(rel, ue, rx, ry)
	if !ok {
		return ArcReduction{}, ErrReductionFailed
	}
	return ArcReduction{
		Center: apex,
		Start:  center.Add(start),
		End:    center.Add(end),
		RX:     rx,
		RY:     ry,
	}, nil
}

// rayEllipse returns the point where the ray p + t*d (t >= 0) leaves the
// ellipse of radii rx, ry centered at the origin.
func rayEllipse(p, d Point, rx, ry float64) (Point, bool) {
	a := (d.X/rx)*(d.X/rx) + (d.Y/ry)*(d.Y/ry)
	b := 2 * (p.X*d.X/(rx*rx) + p.Y*d.Y/(ry*ry))
	c := (p.X/rx)*(p.X/rx) + (p.Y/ry)*(p.Y/ry) - 1
	delta := b*b - 4*a*c
	if a < epsilon || delta < 0 {
		return Point{}, false
	}
	t := (-b + math.Sqrt(delta)) / (2 * a)
	if t < 0 {
		return Point{}, false
	}
	return p.Add(d.Mul(t)), true
}
