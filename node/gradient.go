package node

import (
	"github.com/gogpu/svgattr"
)

// LinearGradient is the attribute set of a linearGradient element.
// Nil fields were not specified on the element.
type LinearGradient struct {
	X1, Y1, X2, Y2 *svgattr.Length
	Units          *svgattr.GradientUnits
	Spread         *svgattr.PaintServerSpread
	Href           string
}

// Name returns "linearGradient".
func (*LinearGradient) Name() string { return "linearGradient" }

// SetAttributes reads the gradient vector, gradientUnits, spreadMethod and
// href. Absent attributes stay nil.
func (g *LinearGradient) SetAttributes(attrs svgattr.Attributes) error {
	err := parseOptionalLengths(attrs, []lengthAttr{
		{"x1", svgattr.LengthHorizontal, &g.X1},
		{"y1", svgattr.LengthVertical, &g.Y1},
		{"x2", svgattr.LengthHorizontal, &g.X2},
		{"y2", svgattr.LengthVertical, &g.Y2},
	})
	if err != nil {
		return err
	}
	if err := parsePaintServerCommon(attrs, &g.Units, &g.Spread); err != nil {
		return err
	}
	g.Href = lookupHref(attrs)
	return nil
}

// Inherit fills the fields of g that are still nil from the template t.
func (g *LinearGradient) Inherit(t *LinearGradient) {
	inherit(&g.X1, t.X1)
	inherit(&g.Y1, t.Y1)
	inherit(&g.X2, t.X2)
	inherit(&g.Y2, t.Y2)
	inherit(&g.Units, t.Units)
	inherit(&g.Spread, t.Spread)
}

// ResolvedLinearGradient is a LinearGradient with every attribute set.
type ResolvedLinearGradient struct {
	X1, Y1, X2, Y2 svgattr.Length
	Units          svgattr.GradientUnits
	Spread         svgattr.PaintServerSpread
}

// Resolved applies the initial values: x1, y1 and y2 are 0%, x2 is 100%,
// gradientUnits is objectBoundingBox and spreadMethod is pad.
func (g *LinearGradient) Resolved() ResolvedLinearGradient {
	return ResolvedLinearGradient{
		X1:     orLength(g.X1, percent(0, svgattr.LengthHorizontal)),
		Y1:     orLength(g.Y1, percent(0, svgattr.LengthVertical)),
		X2:     orLength(g.X2, percent(100, svgattr.LengthHorizontal)),
		Y2:     orLength(g.Y2, percent(0, svgattr.LengthVertical)),
		Units:  orDefault(g.Units),
		Spread: orDefault(g.Spread),
	}
}

// RadialGradient is the attribute set of a radialGradient element.
// Fx and Fy stay nil when unset so that a template's focus can still be
// inherited; Resolved falls back to the center.
type RadialGradient struct {
	Cx, Cy, R, Fx, Fy *svgattr.Length
	Units             *svgattr.GradientUnits
	Spread            *svgattr.PaintServerSpread
	Href              string
}

// Name returns "radialGradient".
func (*RadialGradient) Name() string { return "radialGradient" }

// SetAttributes reads the center, radius, focus, gradientUnits,
// spreadMethod and href. Absent attributes stay nil.
func (g *RadialGradient) SetAttributes(attrs svgattr.Attributes) error {
	err := parseOptionalLengths(attrs, []lengthAttr{
		{"cx", svgattr.LengthHorizontal, &g.Cx},
		{"cy", svgattr.LengthVertical, &g.Cy},
		{"r", svgattr.LengthBoth, &g.R},
		{"fx", svgattr.LengthHorizontal, &g.Fx},
		{"fy", svgattr.LengthVertical, &g.Fy},
	})
	if err != nil {
		return err
	}
	if err := parsePaintServerCommon(attrs, &g.Units, &g.Spread); err != nil {
		return err
	}
	g.Href = lookupHref(attrs)
	return nil
}

// Inherit fills the fields of g that are still nil from the template t.
func (g *RadialGradient) Inherit(t *RadialGradient) {
	inherit(&g.Cx, t.Cx)
	inherit(&g.Cy, t.Cy)
	inherit(&g.R, t.R)
	inherit(&g.Fx, t.Fx)
	inherit(&g.Fy, t.Fy)
	inherit(&g.Units, t.Units)
	inherit(&g.Spread, t.Spread)
}

// ResolvedRadialGradient is a RadialGradient with every attribute set.
type ResolvedRadialGradient struct {
	Cx, Cy, R, Fx, Fy svgattr.Length
	Units             svgattr.GradientUnits
	Spread            svgattr.PaintServerSpread
}

// Resolved applies the initial values: cx, cy and r are 50%. A focus
// coordinate that is unset after inheritance takes the resolved center.
func (g *RadialGradient) Resolved() ResolvedRadialGradient {
	cx := orLength(g.Cx, percent(50, svgattr.LengthHorizontal))
	cy := orLength(g.Cy, percent(50, svgattr.LengthVertical))
	return ResolvedRadialGradient{
		Cx:     cx,
		Cy:     cy,
		R:      orLength(g.R, percent(50, svgattr.LengthBoth)),
		Fx:     orLength(g.Fx, cx),
		Fy:     orLength(g.Fy, cy),
		Units:  orDefault(g.Units),
		Spread: orDefault(g.Spread),
	}
}

func parsePaintServerCommon(attrs svgattr.Attributes, units **svgattr.GradientUnits, spread **svgattr.PaintServerSpread) error {
	u, err := svgattr.Optional[svgattr.GradientUnits](attrs, "gradientUnits", svgattr.NoData{})
	if err != nil {
		return err
	}
	if u != nil {
		*units = u
	}
	s, err := svgattr.Optional[svgattr.PaintServerSpread](attrs, "spreadMethod", svgattr.NoData{})
	if err != nil {
		return err
	}
	if s != nil {
		*spread = s
	}
	return nil
}

func inherit[T any](dst **T, src *T) {
	if *dst == nil && src != nil {
		v := *src
		*dst = &v
	}
}

func orDefault[T svgattr.Defaulter[T]](v *T) T {
	if v != nil {
		return *v
	}
	var zero T
	return zero.Default()
}
