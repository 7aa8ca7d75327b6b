// Package svgattr parses raw SVG attribute strings into typed values.
//
// # Overview
//
// A markup parser hands each element's attributes over as a bag of
// name/value strings (see package propbag). svgattr turns those strings
// into typed values such as CoordUnits, PaintServerSpread or Length, and
// reports invalid input as an *AttributeError that names the attribute.
//
// # Quick Start
//
//	import "github.com/gogpu/svgattr"
//
//	units, err := svgattr.OrDefault[svgattr.GradientUnits](bag, "gradientUnits", svgattr.NoData{})
//	if err != nil {
//	    return err // *svgattr.AttributeError naming "gradientUnits"
//	}
//
//	spread, err := svgattr.Optional[svgattr.PaintServerSpread](bag, "spreadMethod", svgattr.NoData{})
//	if err != nil {
//	    return err
//	}
//	if spread != nil {
//	    brush.SetExtend(spread.ExtendMode())
//	}
//
// # Resolution policies
//
//   - Optional: absent attributes yield nil.
//   - OrDefault: absent attributes yield the type's Default().
//   - OrValue: absent attributes yield a caller-supplied fallback.
//
// In all three, a present but invalid value is an error. Nothing is
// cached: every call parses the raw string again.
//
// # Value types
//
// Every value type implements [Parser] through a pointer-receiver Parse
// method taking the raw string and a context value. Keyword types take
// [NoData]; [Length] takes the [LengthDir] it is measured along.
//
// Unit-space attributes share one parser but differ in their default, so
// each (element, attribute) pair has its own instantiation of [Units]:
// [GradientUnits], [PatternUnits], [PatternContentUnits] and so on.
package svgattr
