package svgattr

import "strconv"

// NumberList is a comma and/or whitespace separated list of numbers, as
// used by the points attribute of polygon and polyline.
type NumberList []float64

// Parse implements the Parser contract. Whitespace around the list and
// between numbers is part of the list syntax; an empty list is valid.
func (l *NumberList) Parse(raw string, _ NoData) error {
	var out NumberList
	i := skipSpace(raw, 0)
	for i < len(raw) {
		end := scanNumber(raw, i)
		if end == i {
			return &ParseError{Input: raw, Expected: []string{"<list-of-numbers>"}}
		}
		v, err := strconv.ParseFloat(raw[i:end], 64)
		if err != nil {
			return &ParseError{Input: raw, Expected: []string{"<list-of-numbers>"}}
		}
		out = append(out, v)

		i = skipSpace(raw, end)
		if i < len(raw) && raw[i] == ',' {
			i = skipSpace(raw, i+1)
			if i == len(raw) {
				return &ParseError{Input: raw, Expected: []string{"<list-of-numbers>"}}
			}
		}
	}
	*l = out
	return nil
}

func skipSpace(s string, i int) int {
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\n', '\r', '\f':
			i++
		default:
			return i
		}
	}
	return i
}
