// Package markup walks an SVG document and hands each element's
// attributes to a callback as a borrowed propbag.Bag. It plays the part of
// the markup parser that owns the attribute store.
package markup

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/gogpu/svgattr"
	"github.com/gogpu/svgattr/propbag"
	"github.com/gogpu/svgattr/propbag/memstore"
)

// svgNS is the SVG namespace. Elements in other namespaces are skipped
// unless WithForeignElements is set.
const svgNS = "http://www.w3.org/2000/svg"

// xlinkNS is the XLink namespace; its attributes are stored as "xlink:name"
// whatever prefix the document binds it to.
const xlinkNS = "http://www.w3.org/1999/xlink"

// xmlNS is the namespace encoding/xml reports for the reserved xml prefix.
const xmlNS = "http://www.w3.org/XML/1998/namespace"

// Element is one start tag of the document.
type Element struct {
	Name  string
	Depth int
	// Attrs is only valid during the callback. Clone it to keep it.
	Attrs *propbag.Bag
}

// Option configures Walk.
type Option func(*options)

type options struct {
	foreign bool
}

// WithForeignElements makes Walk report elements outside the SVG
// namespace too.
func WithForeignElements() Option {
	return func(o *options) {
		o.foreign = true
	}
}

// Walk decodes the XML document r, inserts every element's attributes into
// store and calls fn for each element in document order. The handle is
// freed after fn returns, including when fn fails or Walk aborts. An error
// from fn stops the walk and is returned as is.
func Walk(r io.Reader, store *memstore.Store, fn func(Element) error, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var ns prefixes
	depth := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("markup: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			ns.push(t.Attr)
			if !o.foreign && t.Name.Space != svgNS && t.Name.Space != "" {
				continue
			}
			if err := visit(store, t, depth, &ns, fn); err != nil {
				return err
			}
		case xml.EndElement:
			depth--
			ns.pop()
		}
	}
}

func visit(store *memstore.Store, t xml.StartElement, depth int, ns *prefixes, fn func(Element) error) error {
	h := store.Insert(attrs(t.Attr, ns)...)
	defer store.Free(h)

	svgattr.Logger().Debug("markup: element", "name", t.Name.Local, "depth", depth, "attrs", len(t.Attr))

	bag := propbag.Borrow(store, h)
	defer bag.Close()
	return fn(Element{Name: t.Name.Local, Depth: depth, Attrs: bag})
}

// attrs converts decoded attributes to bag entries keyed "prefix:local".
// Namespace declarations are dropped.
func attrs(in []xml.Attr, ns *prefixes) []memstore.Attr {
	out := make([]memstore.Attr, 0, len(in))
	for _, a := range in {
		switch a.Name.Space {
		case "":
			if a.Name.Local == "xmlns" {
				continue
			}
			out = append(out, memstore.Attr{Key: a.Name.Local, Value: a.Value})
		case "xmlns":
			continue
		default:
			// An undeclared prefix is left in Name.Space by the decoder.
			prefix, ok := ns.lookup(a.Name.Space)
			if !ok {
				prefix = a.Name.Space
			}
			out = append(out, memstore.Attr{Key: prefix + ":" + a.Name.Local, Value: a.Value})
		}
	}
	return out
}

// prefixes maps namespace URIs back to the prefixes declared for them,
// one scope per open element.
type prefixes struct {
	scopes []map[string]string
}

func (p *prefixes) push(attrs []xml.Attr) {
	var scope map[string]string
	for _, a := range attrs {
		if a.Name.Space != "xmlns" {
			continue
		}
		if scope == nil {
			scope = make(map[string]string)
		}
		scope[a.Value] = a.Name.Local
	}
	p.scopes = append(p.scopes, scope)
}

func (p *prefixes) pop() {
	if n := len(p.scopes); n > 0 {
		p.scopes = p.scopes[:n-1]
	}
}

// lookup returns the innermost prefix bound to uri.
func (p *prefixes) lookup(uri string) (string, bool) {
	switch uri {
	case xlinkNS:
		return "xlink", true
	case xmlNS:
		return "xml", true
	}
	for i := len(p.scopes) - 1; i >= 0; i-- {
		if prefix, ok := p.scopes[i][uri]; ok {
			return prefix, true
		}
	}
	return "", false
}

// charsetReader decodes documents whose XML declaration names a non-UTF-8
// encoding.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(strings.TrimSpace(label))
	if err != nil {
		return nil, fmt.Errorf("markup: unknown encoding %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("markup: unsupported encoding %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
