package node

import "github.com/gogpu/svgattr"

// Pattern is the attribute set of a pattern element.
// Nil fields were not specified on the element.
type Pattern struct {
	X, Y, Width, Height *svgattr.Length
	Units               *svgattr.PatternUnits
	ContentUnits        *svgattr.PatternContentUnits
	Href                string
}

// Name returns "pattern".
func (*Pattern) Name() string { return "pattern" }

// SetAttributes reads the tile rectangle, patternUnits,
// patternContentUnits and href. Absent attributes stay nil.
func (p *Pattern) SetAttributes(attrs svgattr.Attributes) error {
	err := parseOptionalLengths(attrs, []lengthAttr{
		{"x", svgattr.LengthHorizontal, &p.X},
		{"y", svgattr.LengthVertical, &p.Y},
		{"width", svgattr.LengthHorizontal, &p.Width},
		{"height", svgattr.LengthVertical, &p.Height},
	})
	if err != nil {
		return err
	}
	u, err := svgattr.Optional[svgattr.PatternUnits](attrs, "patternUnits", svgattr.NoData{})
	if err != nil {
		return err
	}
	if u != nil {
		p.Units = u
	}
	cu, err := svgattr.Optional[svgattr.PatternContentUnits](attrs, "patternContentUnits", svgattr.NoData{})
	if err != nil {
		return err
	}
	if cu != nil {
		p.ContentUnits = cu
	}
	p.Href = lookupHref(attrs)
	return nil
}

// Inherit fills the fields of p that are still nil from the template t.
func (p *Pattern) Inherit(t *Pattern) {
	inherit(&p.X, t.X)
	inherit(&p.Y, t.Y)
	inherit(&p.Width, t.Width)
	inherit(&p.Height, t.Height)
	inherit(&p.Units, t.Units)
	inherit(&p.ContentUnits, t.ContentUnits)
}

// ResolvedPattern is a Pattern with every attribute set.
type ResolvedPattern struct {
	X, Y, Width, Height svgattr.Length
	Units               svgattr.PatternUnits
	ContentUnits        svgattr.PatternContentUnits
}

// Resolved applies the initial values: the tile rectangle is 0,
// patternUnits is objectBoundingBox and patternContentUnits is
// userSpaceOnUse.
func (p *Pattern) Resolved() ResolvedPattern {
	return ResolvedPattern{
		X:            orLength(p.X, zeroLength(svgattr.LengthHorizontal)),
		Y:            orLength(p.Y, zeroLength(svgattr.LengthVertical)),
		Width:        orLength(p.Width, zeroLength(svgattr.LengthHorizontal)),
		Height:       orLength(p.Height, zeroLength(svgattr.LengthVertical)),
		Units:        orDefault(p.Units),
		ContentUnits: orDefault(p.ContentUnits),
	}
}
