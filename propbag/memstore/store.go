// Package memstore is an in-memory propbag.Store.
//
// It stands in for the markup parser's attribute storage in the svgattrs
// command and in tests. Bags are immutable once inserted, so Dup shares
// the attribute table between handles instead of copying it.
package memstore

import (
	"fmt"
	"sync"

	"github.com/gogpu/svgattr"
	"github.com/gogpu/svgattr/propbag"
)

// Attr is one attribute name/value pair.
type Attr struct {
	Key   string
	Value string
}

// Store holds attribute bags keyed by handle. It is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	next    propbag.Handle
	bags    map[propbag.Handle][]Attr
	lenient bool
}

// Option configures a Store during creation.
type Option func(*Store)

// WithLenientFree makes Free of an unknown or already freed handle log a
// warning instead of panicking.
func WithLenientFree() Option {
	return func(s *Store) {
		s.lenient = true
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		bags: make(map[propbag.Handle][]Attr),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Insert stores a new bag holding attrs in order and returns its handle.
// The caller owns the handle.
func (s *Store) Insert(attrs ...Attr) propbag.Handle {
	table := make([]Attr, len(attrs))
	copy(table, attrs)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(table)
}

func (s *Store) insertLocked(table []Attr) propbag.Handle {
	s.next++
	s.bags[s.next] = table
	return s.next
}

// Lookup implements propbag.Store. The first attribute named key wins.
func (s *Store) Lookup(h propbag.Handle, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.mustGet(h) {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Dup implements propbag.Store.
func (s *Store) Dup(h propbag.Handle) propbag.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(s.mustGet(h))
}

// Free implements propbag.Store.
func (s *Store) Free(h propbag.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bags[h]; !ok {
		if s.lenient {
			svgattr.Logger().Warn("memstore: free of unknown handle", "handle", uintptr(h))
			return
		}
		panic(fmt.Sprintf("memstore: free of unknown handle %d", h))
	}
	delete(s.bags, h)
}

// Attrs returns a copy of the attributes of h in insertion order.
func (s *Store) Attrs(h propbag.Handle) []Attr {
	s.mu.Lock()
	defer s.mu.Unlock()
	table := s.mustGet(h)
	out := make([]Attr, len(table))
	copy(out, table)
	return out
}

// Live returns the number of handles that have not been freed.
func (s *Store) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bags)
}

func (s *Store) mustGet(h propbag.Handle) []Attr {
	table, ok := s.bags[h]
	if !ok {
		panic(fmt.Sprintf("memstore: unknown handle %d", h))
	}
	return table
}

var _ propbag.Store = (*Store)(nil)
