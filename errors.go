package svgattr

import (
	"strconv"
	"strings"
)

// ParseError reports a raw attribute string that is not valid for the
// target type. It carries no attribute key; the resolution helpers wrap it
// in an AttributeError.
type ParseError struct {
	Input string

	// Expected lists the legal keywords for keyword types, or describes
	// the expected syntax (for example "length") for others.
	Expected []string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("svgattr: invalid value ")
	b.WriteString(strconv.Quote(e.Input))
	if len(e.Expected) == 0 {
		return b.String()
	}
	b.WriteString(", expected ")
	for i, kw := range e.Expected {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteByte('\'')
		b.WriteString(kw)
		b.WriteByte('\'')
	}
	return b.String()
}

// AttributeError is a parse failure annotated with the attribute that
// produced it. It is the only error type returned by Optional, OrDefault
// and OrValue.
type AttributeError struct {
	Key string
	Err error
}

func (e *AttributeError) Error() string {
	return "svgattr: attribute " + strconv.Quote(e.Key) + ": " + strings.TrimPrefix(e.Err.Error(), "svgattr: ")
}

func (e *AttributeError) Unwrap() error {
	return e.Err
}
