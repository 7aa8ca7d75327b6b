package svgattr

// Attributes is read access to the raw attribute strings of one element.
// *propbag.Bag implements it.
type Attributes interface {
	// Lookup returns the raw value of key and whether it is present.
	Lookup(key string) (string, bool)
}

// Optional parses the attribute key of attrs into a new T.
// It returns nil, nil if the attribute is absent, and an *AttributeError
// naming key if it is present but invalid.
func Optional[T, D any, PT Parser[T, D]](attrs Attributes, key string, data D) (*T, error) {
	raw, ok := attrs.Lookup(key)
	if !ok {
		return nil, nil
	}
	v := new(T)
	if err := PT(v).Parse(raw, data); err != nil {
		return nil, &AttributeError{Key: key, Err: err}
	}
	return v, nil
}

// OrValue is like Optional, but returns fallback if the attribute is
// absent. Use it when the default depends on other attributes or on the
// document rather than on T alone.
func OrValue[T, D any, PT Parser[T, D]](attrs Attributes, key string, data D, fallback T) (T, error) {
	v, err := Optional[T, D, PT](attrs, key, data)
	if err != nil {
		var zero T
		return zero, err
	}
	if v == nil {
		return fallback, nil
	}
	return *v, nil
}

// Defaulter is implemented by attribute types with an intrinsic default.
type Defaulter[T any] interface {
	Default() T
}

// defaultParser is a Parser whose pointer type also supplies a default.
type defaultParser[T, D any] interface {
	Parser[T, D]
	Defaulter[T]
}

// OrDefault is like Optional, but returns T's Default() if the attribute
// is absent. A present but invalid value is an error, never the default.
func OrDefault[T, D any, PT defaultParser[T, D]](attrs Attributes, key string, data D) (T, error) {
	var zero T
	return OrValue[T, D, PT](attrs, key, data, PT(&zero).Default())
}
