package node

import "github.com/gogpu/svgattr"

// Node is the attribute set of one SVG element.
type Node interface {
	// Name returns the element name, e.g. "linearGradient".
	Name() string
	// SetAttributes parses the element's attributes from attrs. It stops at
	// the first invalid attribute and returns its *svgattr.AttributeError;
	// attributes parsed before it are kept.
	SetAttributes(attrs svgattr.Attributes) error
}

// New returns an empty Node for the element name, or false if the element
// has no attribute set in this package.
func New(name string) (Node, bool) {
	switch name {
	case "linearGradient":
		return &LinearGradient{}, true
	case "radialGradient":
		return &RadialGradient{}, true
	case "pattern":
		return &Pattern{}, true
	case "circle":
		return &Circle{}, true
	case "ellipse":
		return &Ellipse{}, true
	case "polygon":
		return &Poly{Closed: true}, true
	case "polyline":
		return &Poly{}, true
	}
	return nil, false
}

// hrefKeys are the attribute names of a paint server's template reference,
// the SVG 2 form first.
var hrefKeys = []string{"href", "xlink:href"}

func lookupHref(attrs svgattr.Attributes) string {
	for _, k := range hrefKeys {
		if v, ok := attrs.Lookup(k); ok {
			return v
		}
	}
	return ""
}

// lengthAttr names one length attribute and the pointer it is parsed into.
type lengthAttr struct {
	key string
	dir svgattr.LengthDir
	dst **svgattr.Length
}

func parseOptionalLengths(attrs svgattr.Attributes, list []lengthAttr) error {
	for _, la := range list {
		l, err := svgattr.Optional[svgattr.Length](attrs, la.key, la.dir)
		if err != nil {
			return err
		}
		if l != nil {
			*la.dst = l
		}
	}
	return nil
}

// zeroLength is the "0" default of shape and pattern geometry.
func zeroLength(dir svgattr.LengthDir) svgattr.Length {
	return svgattr.NewLength(0, svgattr.UnitNone, dir)
}

func percent(v float64, dir svgattr.LengthDir) svgattr.Length {
	return svgattr.NewLength(v, svgattr.UnitPercent, dir)
}

func orLength(l *svgattr.Length, def svgattr.Length) svgattr.Length {
	if l != nil {
		return *l
	}
	return def
}
