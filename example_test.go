package svgattr_test

import (
	"errors"
	"fmt"

	"github.com/gogpu/svgattr"
	"github.com/gogpu/svgattr/propbag"
	"github.com/gogpu/svgattr/propbag/memstore"
)

func Example() {
	store := memstore.New()
	h := store.Insert(
		memstore.Attr{Key: "gradientUnits", Value: "userSpaceOnUse"},
		memstore.Attr{Key: "spreadMethod", Value: "sideways"},
	)

	err := propbag.With(store, h, func(b *propbag.Bag) error {
		units, err := svgattr.OrDefault[svgattr.GradientUnits](b, "gradientUnits", svgattr.NoData{})
		if err != nil {
			return err
		}
		fmt.Println("units:", units)

		_, err = svgattr.OrDefault[svgattr.PaintServerSpread](b, "spreadMethod", svgattr.NoData{})
		return err
	})

	var ae *svgattr.AttributeError
	if errors.As(err, &ae) {
		fmt.Println("bad attribute:", ae.Key)
	}
	fmt.Println("live handles:", store.Live())
	// Output:
	// units: userSpaceOnUse
	// bad attribute: spreadMethod
	// live handles: 0
}

func ExampleOrValue() {
	store := memstore.New()
	h := store.Insert(memstore.Attr{Key: "cx", Value: "25%"})
	b := propbag.Adopt(store, h)
	defer b.Close()

	center := svgattr.NewLength(50, svgattr.UnitPercent, svgattr.LengthHorizontal)
	cx, _ := svgattr.OrValue(b, "cx", svgattr.LengthHorizontal, center)
	fx, _ := svgattr.OrValue(b, "fx", svgattr.LengthHorizontal, cx)
	fmt.Println(fx)
	// Output:
	// 25%
}
