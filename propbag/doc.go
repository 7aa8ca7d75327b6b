// Package propbag bridges to the externally owned attribute bags that a
// markup parser fills for each element.
//
// The parser owns the bag storage and exposes it through the [Store]
// interface: lookup by key, duplicate, free. This package never builds a
// bag; it wraps a [Handle] in a [Bag] that knows whether it owns the
// handle and releases owned handles exactly once:
//
//	err := propbag.With(store, h, func(b *propbag.Bag) error {
//	    u, err := svgattr.OrDefault[svgattr.PatternUnits](b, "patternUnits", svgattr.NoData{})
//	    ...
//	})
//
// To keep an element's attributes past the parser callback that lent
// them, Clone the borrowed Bag and Close the clone when done.
package propbag
