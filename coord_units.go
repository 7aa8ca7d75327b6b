package svgattr

// CoordUnits selects the coordinate system of an element's geometry
// attributes: the current user space, or the bounding box of the element
// the paint server or effect is applied to.
//
// The numeric values are stable and may be stored or passed across an API
// boundary as a plain uint8.
type CoordUnits uint8

const (
	// UserSpaceOnUse interprets coordinates in the user coordinate system
	// in place when the element is referenced.
	UserSpaceOnUse CoordUnits = 0
	// ObjectBoundingBox interprets coordinates as fractions of the
	// referencing element's bounding box.
	ObjectBoundingBox CoordUnits = 1
)

var coordUnitsKeywords = keywordTable[CoordUnits]{
	{"userSpaceOnUse", UserSpaceOnUse},
	{"objectBoundingBox", ObjectBoundingBox},
}

// ParseCoordUnits parses "userSpaceOnUse" or "objectBoundingBox".
// Matching is exact and case-sensitive.
func ParseCoordUnits(raw string) (CoordUnits, error) {
	return coordUnitsKeywords.parse(raw)
}

// Parse implements the Parser contract for CoordUnits.
func (u *CoordUnits) Parse(raw string, _ NoData) error {
	v, err := ParseCoordUnits(raw)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// String returns the attribute keyword of u.
func (u CoordUnits) String() string {
	if s := coordUnitsKeywords.name(u); s != "" {
		return s
	}
	return "CoordUnits(invalid)"
}
