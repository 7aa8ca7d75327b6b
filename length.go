package svgattr

import (
	"math"
	"strconv"
)

// LengthDir is the axis a length is measured along. Percentages of the
// viewport are taken from its width, its height, or its normalized
// diagonal respectively. It is the parse context of Length.
type LengthDir uint8

const (
	LengthHorizontal LengthDir = iota
	LengthVertical
	LengthBoth
)

func (d LengthDir) String() string {
	switch d {
	case LengthHorizontal:
		return "horizontal"
	case LengthVertical:
		return "vertical"
	case LengthBoth:
		return "both"
	}
	return "LengthDir(" + strconv.Itoa(int(d)) + ")"
}

// LengthUnit is the unit suffix of a length.
type LengthUnit uint8

const (
	UnitNone LengthUnit = iota
	UnitPx
	UnitPt
	UnitIn
	UnitCm
	UnitMm
	UnitPc
	UnitEm
	UnitEx
	UnitPercent
)

var lengthUnitKeywords = keywordTable[LengthUnit]{
	{"", UnitNone},
	{"px", UnitPx},
	{"pt", UnitPt},
	{"in", UnitIn},
	{"cm", UnitCm},
	{"mm", UnitMm},
	{"pc", UnitPc},
	{"em", UnitEm},
	{"ex", UnitEx},
	{"%", UnitPercent},
}

func (u LengthUnit) String() string {
	if u == UnitNone {
		return ""
	}
	return lengthUnitKeywords.name(u)
}

// Length is an SVG <length>: a number, an optional unit, and the axis it
// applies to. Lengths are stored as written; relative units are never
// resolved here.
type Length struct {
	Value float64
	Unit  LengthUnit
	Dir   LengthDir
}

// NewLength returns a length of v in unit u along dir.
func NewLength(v float64, u LengthUnit, dir LengthDir) Length {
	return Length{Value: v, Unit: u, Dir: dir}
}

// Parse implements the Parser contract. dir is recorded in the result.
func (l *Length) Parse(raw string, dir LengthDir) error {
	end := scanNumber(raw, 0)
	if end == 0 {
		return &ParseError{Input: raw, Expected: []string{"<length>"}}
	}
	v, err := strconv.ParseFloat(raw[:end], 64)
	if err != nil || math.IsInf(v, 0) {
		return &ParseError{Input: raw, Expected: []string{"<length>"}}
	}
	unit, err := lengthUnitKeywords.parse(raw[end:])
	if err != nil {
		return &ParseError{Input: raw, Expected: []string{"<length>"}}
	}
	*l = Length{Value: v, Unit: unit, Dir: dir}
	return nil
}

// ToPixels converts l to pixels at the given resolution. It reports false
// for em, ex and percentages, which need a font or viewport to resolve.
func (l Length) ToPixels(dpi float64) (float64, bool) {
	switch l.Unit {
	case UnitNone, UnitPx:
		return l.Value, true
	case UnitIn:
		return l.Value * dpi, true
	case UnitCm:
		return l.Value * dpi / 2.54, true
	case UnitMm:
		return l.Value * dpi / 25.4, true
	case UnitPt:
		return l.Value * dpi / 72, true
	case UnitPc:
		return l.Value * dpi / 6, true
	}
	return 0, false
}

func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'g', -1, 64) + l.Unit.String()
}

// scanNumber returns the end of the SVG number starting at s[i], or i if
// there is none. An exponent is only consumed when digits follow it, so
// "2em" scans as "2".
func scanNumber(s string, i int) int {
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if frac > 0 || digits > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return start
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
