package svgattr

import (
	"errors"
	"testing"
)

// mapAttrs is an Attributes backed by a map.
type mapAttrs map[string]string

func (m mapAttrs) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func TestOptional(t *testing.T) {
	attrs := mapAttrs{"gradientUnits": "userSpaceOnUse", "spreadMethod": "bogus"}

	u, err := Optional[GradientUnits](attrs, "gradientUnits", NoData{})
	if err != nil {
		t.Fatalf("Optional(gradientUnits) error: %v", err)
	}
	if u == nil || u.CoordUnits() != UserSpaceOnUse {
		t.Errorf("Optional(gradientUnits) = %v, want userSpaceOnUse", u)
	}

	missing, err := Optional[GradientUnits](attrs, "absent", NoData{})
	if err != nil {
		t.Errorf("Optional(absent) error = %v, want nil", err)
	}
	if missing != nil {
		t.Errorf("Optional(absent) = %v, want nil", missing)
	}

	s, err := Optional[PaintServerSpread](attrs, "spreadMethod", NoData{})
	if s != nil {
		t.Errorf("Optional(spreadMethod) = %v, want nil on error", s)
	}
	assertAttributeError(t, err, "spreadMethod")
}

func TestOrDefault(t *testing.T) {
	attrs := mapAttrs{"patternContentUnits": "objectBoundingBox", "patternUnits": "OBB"}

	u, err := OrDefault[PatternContentUnits](attrs, "patternContentUnits", NoData{})
	if err != nil {
		t.Fatal(err)
	}
	if u.CoordUnits() != ObjectBoundingBox {
		t.Errorf("OrDefault(present) = %v, want objectBoundingBox", u)
	}

	d, err := OrDefault[PatternContentUnits](attrs, "absent", NoData{})
	if err != nil {
		t.Fatal(err)
	}
	if d != (PatternContentUnits{}).Default() {
		t.Errorf("OrDefault(absent) = %v, want default %v", d, PatternContentUnits{}.Default())
	}

	bad, err := OrDefault[PatternUnits](attrs, "patternUnits", NoData{})
	assertAttributeError(t, err, "patternUnits")
	if bad == (PatternUnits{}).Default() {
		t.Error("OrDefault(invalid) returned the default alongside an error")
	}
}

func TestOrDefaultSpread(t *testing.T) {
	s, err := OrDefault[PaintServerSpread](mapAttrs{}, "spreadMethod", NoData{})
	if err != nil {
		t.Fatal(err)
	}
	if s.Spread != SpreadPad {
		t.Errorf("OrDefault(absent spreadMethod) = %v, want pad", s)
	}
}

func TestOrValue(t *testing.T) {
	fallback := NewUnits[GradientUnits](UserSpaceOnUse)
	if fallback == (GradientUnits{}).Default() {
		t.Fatal("fallback must differ from the type default for this test")
	}

	got, err := OrValue(mapAttrs{}, "k", NoData{}, fallback)
	if err != nil {
		t.Fatal(err)
	}
	if got != fallback {
		t.Errorf("OrValue(absent) = %v, want fallback %v", got, fallback)
	}

	got, err = OrValue(mapAttrs{"k": "objectBoundingBox"}, "k", NoData{}, fallback)
	if err != nil {
		t.Fatal(err)
	}
	if got.CoordUnits() != ObjectBoundingBox {
		t.Errorf("OrValue(present) = %v, want objectBoundingBox", got)
	}

	_, err = OrValue(mapAttrs{"k": ""}, "k", NoData{}, fallback)
	assertAttributeError(t, err, "k")
}

func TestOrValueLength(t *testing.T) {
	cx := NewLength(3, UnitPx, LengthHorizontal)

	fx, err := OrValue(mapAttrs{}, "fx", LengthHorizontal, cx)
	if err != nil {
		t.Fatal(err)
	}
	if fx != cx {
		t.Errorf("OrValue(absent fx) = %v, want %v", fx, cx)
	}

	fx, err = OrValue(mapAttrs{"fx": "10%"}, "fx", LengthHorizontal, cx)
	if err != nil {
		t.Fatal(err)
	}
	if want := NewLength(10, UnitPercent, LengthHorizontal); fx != want {
		t.Errorf("OrValue(fx=10%%) = %v, want %v", fx, want)
	}
}

func TestResolveReparsesEveryCall(t *testing.T) {
	attrs := mapAttrs{"k": "userSpaceOnUse"}
	first, _ := OrDefault[GradientUnits](attrs, "k", NoData{})
	attrs["k"] = "objectBoundingBox"
	second, _ := OrDefault[GradientUnits](attrs, "k", NoData{})
	if first == second {
		t.Errorf("second resolution returned stale value %v", second)
	}
}

func TestAttributeErrorMessage(t *testing.T) {
	_, err := OrDefault[PaintServerSpread](mapAttrs{"spreadMethod": "foobar"}, "spreadMethod", NoData{})
	want := `svgattr: attribute "spreadMethod": invalid value "foobar", expected 'pad' | 'reflect' | 'repeat'`
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %s", err, want)
	}
}

func assertAttributeError(t *testing.T, err error, key string) {
	t.Helper()
	var ae *AttributeError
	if !errors.As(err, &ae) {
		t.Fatalf("error = %v (%T), want *AttributeError", err, err)
	}
	if ae.Key != key {
		t.Errorf("AttributeError.Key = %q, want %q", ae.Key, key)
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Errorf("AttributeError does not wrap a *ParseError: %v", ae.Err)
	}
}
