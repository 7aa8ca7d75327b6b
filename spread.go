package svgattr

import "github.com/gogpu/gg"

// Spread is a spreadMethod keyword.
type Spread uint8

const (
	// SpreadPad extends the terminal stop colors beyond the gradient vector.
	SpreadPad Spread = iota
	// SpreadReflect mirrors the gradient back and forth.
	SpreadReflect
	// SpreadRepeat restarts the gradient at each repetition.
	SpreadRepeat
)

var spreadKeywords = keywordTable[Spread]{
	{"pad", SpreadPad},
	{"reflect", SpreadReflect},
	{"repeat", SpreadRepeat},
}

func (s Spread) String() string {
	if name := spreadKeywords.name(s); name != "" {
		return name
	}
	return "Spread(invalid)"
}

// PaintServerSpread is the spreadMethod attribute of a gradient.
// The zero value is SpreadPad, which is also the default.
type PaintServerSpread struct {
	Spread Spread
}

// Default returns the spreadMethod default, pad.
func (PaintServerSpread) Default() PaintServerSpread {
	return PaintServerSpread{Spread: SpreadPad}
}

// Parse implements the Parser contract. Valid inputs are "pad",
// "reflect" and "repeat".
func (p *PaintServerSpread) Parse(raw string, _ NoData) error {
	s, err := spreadKeywords.parse(raw)
	if err != nil {
		return err
	}
	p.Spread = s
	return nil
}

// ExtendMode returns the gg tiling mode for p.
func (p PaintServerSpread) ExtendMode() gg.ExtendMode {
	switch p.Spread {
	case SpreadReflect:
		return gg.ExtendReflect
	case SpreadRepeat:
		return gg.ExtendRepeat
	default:
		return gg.ExtendPad
	}
}

// SpreadFromExtendMode is the inverse of ExtendMode. Unknown modes map to
// SpreadPad.
func SpreadFromExtendMode(m gg.ExtendMode) PaintServerSpread {
	switch m {
	case gg.ExtendReflect:
		return PaintServerSpread{Spread: SpreadReflect}
	case gg.ExtendRepeat:
		return PaintServerSpread{Spread: SpreadRepeat}
	default:
		return PaintServerSpread{Spread: SpreadPad}
	}
}

func (p PaintServerSpread) String() string {
	return p.Spread.String()
}
