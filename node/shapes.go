package node

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/svgattr"
)

// Circle is the attribute set of a circle element.
type Circle struct {
	Cx, Cy, R svgattr.Length
}

// Name returns "circle".
func (*Circle) Name() string { return "circle" }

// SetAttributes reads cx, cy and r. Each defaults to 0.
func (c *Circle) SetAttributes(attrs svgattr.Attributes) error {
	return parseLengths(attrs, []shapeLength{
		{"cx", svgattr.LengthHorizontal, &c.Cx},
		{"cy", svgattr.LengthVertical, &c.Cy},
		{"r", svgattr.LengthBoth, &c.R},
	})
}

// Ellipse is the attribute set of an ellipse element.
type Ellipse struct {
	Cx, Cy, Rx, Ry svgattr.Length
}

// Name returns "ellipse".
func (*Ellipse) Name() string { return "ellipse" }

// SetAttributes reads cx, cy, rx and ry. Each defaults to 0.
func (e *Ellipse) SetAttributes(attrs svgattr.Attributes) error {
	return parseLengths(attrs, []shapeLength{
		{"cx", svgattr.LengthHorizontal, &e.Cx},
		{"cy", svgattr.LengthVertical, &e.Cy},
		{"rx", svgattr.LengthHorizontal, &e.Rx},
		{"ry", svgattr.LengthVertical, &e.Ry},
	})
}

type shapeLength struct {
	key string
	dir svgattr.LengthDir
	dst *svgattr.Length
}

// parseLengths parses each attribute into dst, defaulting to 0.
func parseLengths(attrs svgattr.Attributes, list []shapeLength) error {
	for _, sl := range list {
		l, err := svgattr.OrValue(attrs, sl.key, sl.dir, zeroLength(sl.dir))
		if err != nil {
			return err
		}
		*sl.dst = l
	}
	return nil
}

// Poly is the attribute set of a polygon (Closed) or polyline element.
type Poly struct {
	Coords svgattr.NumberList
	Closed bool
}

// Name returns "polygon" or "polyline".
func (p *Poly) Name() string {
	if p.Closed {
		return "polygon"
	}
	return "polyline"
}

// SetAttributes reads the coordinate list. The pre-1.0 "verts" attribute
// takes precedence over "points".
func (p *Poly) SetAttributes(attrs svgattr.Attributes) error {
	for _, key := range []string{"verts", "points"} {
		l, err := svgattr.Optional[svgattr.NumberList](attrs, key, svgattr.NoData{})
		if err != nil {
			return err
		}
		if l != nil {
			p.Coords = *l
			return nil
		}
	}
	return nil
}

// Points pairs up the coordinates. A list with fewer than two numbers has
// no points. If the last pair is missing its y, the previous y is reused.
func (p *Poly) Points() []gg.Point {
	n := len(p.Coords)
	if n < 2 {
		return nil
	}
	pts := make([]gg.Point, 0, (n+1)/2)
	for i := 0; i < n; i += 2 {
		var y float64
		if i+1 < n {
			y = p.Coords[i+1]
		} else {
			y = p.Coords[i-1]
		}
		pts = append(pts, gg.Point{X: p.Coords[i], Y: y})
	}
	return pts
}
