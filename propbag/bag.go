package propbag

import (
	"errors"
	"runtime"

	"github.com/gogpu/svgattr"
)

// ErrReleased is the panic value of any use of a Bag after Close.
var ErrReleased = errors.New("propbag: use of released bag")

// Handle identifies one attribute bag inside a Store. The zero Handle is
// never valid.
type Handle uintptr

// Store is the external key/value store that owns attribute bags. It is
// implemented by the markup parser; svgattr never creates bags itself.
//
// A Store that is shared between goroutines must synchronize itself.
// Free may also be called from the runtime's cleanup goroutine for bags
// that were leaked without Close.
type Store interface {
	// Lookup returns the value of key in the bag h.
	Lookup(h Handle, key string) (string, bool)
	// Dup returns a new handle to an equivalent bag that can be freed
	// independently of h.
	Dup(h Handle) Handle
	// Free releases h. h must not be used afterwards.
	Free(h Handle)
}

// Bag is a handle into a Store together with the right (or not) to
// release it.
//
// Owned bags come from Adopt or Clone and must be closed exactly once;
// Close is idempotent so `defer b.Close()` is always safe. Borrowed bags
// come from Borrow and are never freed by this package. Any use of a Bag
// after Close panics with ErrReleased.
//
// A Bag is not safe for concurrent Close.
type Bag struct {
	store    Store
	h        Handle
	owned    bool
	released bool
	cleanup  runtime.Cleanup
}

// leaked is what the cleanup of an owned Bag needs to free its handle.
type leaked struct {
	store Store
	h     Handle
}

// Adopt takes ownership of h. The returned Bag frees h on Close.
func Adopt(store Store, h Handle) *Bag {
	b := &Bag{store: store, h: h, owned: true}
	b.cleanup = runtime.AddCleanup(b, freeLeaked, leaked{store: store, h: h})
	return b
}

// Borrow wraps h without taking ownership. Close only invalidates the Bag;
// the handle stays with its owner. Use Clone to keep the attributes
// beyond the owner's lifetime.
func Borrow(store Store, h Handle) *Bag {
	return &Bag{store: store, h: h}
}

// With adopts h, calls fn with the Bag and releases h when fn returns,
// whether or not fn fails.
func With(store Store, h Handle, fn func(*Bag) error) error {
	b := Adopt(store, h)
	defer b.Close()
	return fn(b)
}

// Lookup returns the raw value of key. It does not parse or modify the bag.
func (b *Bag) Lookup(key string) (string, bool) {
	b.check()
	return b.store.Lookup(b.h, key)
}

// Clone returns an owned Bag with the same attributes. Its lifetime is
// independent of b: closing either one leaves the other readable.
func (b *Bag) Clone() *Bag {
	b.check()
	h := b.store.Dup(b.h)
	svgattr.Logger().Debug("propbag: dup", "src", uintptr(b.h), "dst", uintptr(h))
	return Adopt(b.store, h)
}

// Owned reports whether Close will free the underlying handle.
func (b *Bag) Owned() bool {
	return b.owned
}

// Close releases the handle of an owned Bag. Subsequent calls do nothing.
// The error is always nil; it exists so Bag satisfies io.Closer.
func (b *Bag) Close() error {
	if b.released {
		return nil
	}
	b.released = true
	if b.owned {
		b.cleanup.Stop()
		svgattr.Logger().Debug("propbag: free", "handle", uintptr(b.h))
		b.store.Free(b.h)
	}
	b.store = nil
	return nil
}

func (b *Bag) check() {
	if b.released {
		panic(ErrReleased)
	}
}

func freeLeaked(l leaked) {
	svgattr.Logger().Warn("propbag: bag garbage collected without Close", "handle", uintptr(l.h))
	l.store.Free(l.h)
}

var _ svgattr.Attributes = (*Bag)(nil)
