package svgattr

// NoData is the parse context of types whose parsing does not depend on
// any ambient state.
type NoData struct{}

// Parser is the contract every attribute value type implements.
//
// Parse interprets raw exactly as given: no trimming and no case folding.
// It assigns the receiver only on success and otherwise returns a
// *ParseError, leaving the receiver untouched. data carries whatever
// ambient state the type needs (NoData for most keyword types).
//
// The pointer constraint lets generic helpers allocate a T and call Parse
// on it:
//
//	u, err := svgattr.OrDefault[svgattr.GradientUnits](attrs, "gradientUnits", svgattr.NoData{})
type Parser[T, D any] interface {
	*T
	Parse(raw string, data D) error
}

// keyword is one entry of a keywordTable.
type keyword[T comparable] struct {
	name  string
	value T
}

// keywordTable maps the closed set of keywords of an enumeration to its
// values. The same table produces the keyword list of ParseError, so the
// matcher and the message cannot disagree.
type keywordTable[T comparable] []keyword[T]

// parse returns the value whose keyword equals raw exactly.
func (t keywordTable[T]) parse(raw string) (T, error) {
	for _, kw := range t {
		if kw.name == raw {
			return kw.value, nil
		}
	}
	var zero T
	return zero, &ParseError{Input: raw, Expected: t.names()}
}

// name returns the keyword of v, or "" if v is not in the table.
func (t keywordTable[T]) name(v T) string {
	for _, kw := range t {
		if kw.value == v {
			return kw.name
		}
	}
	return ""
}

func (t keywordTable[T]) names() []string {
	names := make([]string, len(t))
	for i, kw := range t {
		names[i] = kw.name
	}
	return names
}
