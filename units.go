package svgattr

// UnitsDefault is implemented by the zero-size marker types that give each
// Units instantiation its default value.
//
// Different elements default to different unit spaces for the same
// keyword set: gradientUnits defaults to objectBoundingBox while
// patternContentUnits defaults to userSpaceOnUse. Each (element,
// attribute) pair gets its own marker, so the resulting Units types are
// distinct and cannot be mixed up, while all of them share one parser.
type UnitsDefault interface {
	DefaultUnits() CoordUnits
}

// Units is a CoordUnits value whose default is supplied by D.
//
// A new attribute type takes a marker and an alias:
//
//	type markerUnitsDefault struct{}
//
//	func (markerUnitsDefault) DefaultUnits() svgattr.CoordUnits { return svgattr.UserSpaceOnUse }
//
//	type MarkerUnits = svgattr.Units[markerUnitsDefault]
type Units[D UnitsDefault] struct {
	units CoordUnits
}

// NewUnits returns the Units type U wrapping u:
//
//	svgattr.NewUnits[svgattr.GradientUnits](svgattr.UserSpaceOnUse)
func NewUnits[U ~struct{ units CoordUnits }](u CoordUnits) U {
	return U(struct{ units CoordUnits }{units: u})
}

// Default returns the wrapper around D's default unit space.
func (Units[D]) Default() Units[D] {
	var d D
	return Units[D]{units: d.DefaultUnits()}
}

// CoordUnits returns the wrapped value.
func (u Units[D]) CoordUnits() CoordUnits {
	return u.units
}

// Parse implements the Parser contract by delegating to CoordUnits.
func (u *Units[D]) Parse(raw string, data NoData) error {
	return u.units.Parse(raw, data)
}

func (u Units[D]) String() string {
	return u.units.String()
}

type (
	gradientUnitsDefault       struct{}
	patternUnitsDefault        struct{}
	patternContentUnitsDefault struct{}
	clipPathUnitsDefault       struct{}
	maskUnitsDefault           struct{}
	maskContentUnitsDefault    struct{}
	filterUnitsDefault         struct{}
	primitiveUnitsDefault      struct{}
)

func (gradientUnitsDefault) DefaultUnits() CoordUnits       { return ObjectBoundingBox }
func (patternUnitsDefault) DefaultUnits() CoordUnits        { return ObjectBoundingBox }
func (patternContentUnitsDefault) DefaultUnits() CoordUnits { return UserSpaceOnUse }
func (clipPathUnitsDefault) DefaultUnits() CoordUnits       { return UserSpaceOnUse }
func (maskUnitsDefault) DefaultUnits() CoordUnits           { return ObjectBoundingBox }
func (maskContentUnitsDefault) DefaultUnits() CoordUnits    { return UserSpaceOnUse }
func (filterUnitsDefault) DefaultUnits() CoordUnits         { return ObjectBoundingBox }
func (primitiveUnitsDefault) DefaultUnits() CoordUnits      { return UserSpaceOnUse }

// Unit-space attribute types of the SVG elements that have one.
type (
	// GradientUnits is gradientUnits of linearGradient and radialGradient.
	GradientUnits = Units[gradientUnitsDefault]
	// PatternUnits is patternUnits of pattern.
	PatternUnits = Units[patternUnitsDefault]
	// PatternContentUnits is patternContentUnits of pattern.
	PatternContentUnits = Units[patternContentUnitsDefault]
	// ClipPathUnits is clipPathUnits of clipPath.
	ClipPathUnits = Units[clipPathUnitsDefault]
	// MaskUnits is maskUnits of mask.
	MaskUnits = Units[maskUnitsDefault]
	// MaskContentUnits is maskContentUnits of mask.
	MaskContentUnits = Units[maskContentUnitsDefault]
	// FilterUnits is filterUnits of filter.
	FilterUnits = Units[filterUnitsDefault]
	// PrimitiveUnits is primitiveUnits of filter.
	PrimitiveUnits = Units[primitiveUnitsDefault]
)
