package propbag_test

import (
	"bytes"
	"errors"
	"log/slog"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/svgattr"
	"github.com/gogpu/svgattr/propbag"
	"github.com/gogpu/svgattr/propbag/memstore"
)

func newBagStore(t *testing.T) (*memstore.Store, propbag.Handle) {
	t.Helper()
	store := memstore.New()
	h := store.Insert(
		memstore.Attr{Key: "x1", Value: "0"},
		memstore.Attr{Key: "spreadMethod", Value: "reflect"},
	)
	return store, h
}

func TestBagLookup(t *testing.T) {
	store, h := newBagStore(t)
	b := propbag.Adopt(store, h)
	defer b.Close()

	for range 2 {
		v, ok := b.Lookup("spreadMethod")
		if !ok || v != "reflect" {
			t.Errorf("Lookup(spreadMethod) = %q, %v; want reflect, true", v, ok)
		}
	}
	if v, ok := b.Lookup("absent"); ok {
		t.Errorf("Lookup(absent) = %q, true; want absent", v)
	}
}

func TestBagCloseFreesOnce(t *testing.T) {
	store, h := newBagStore(t)
	b := propbag.Adopt(store, h)
	if !b.Owned() {
		t.Error("adopted bag is not owned")
	}
	if err := b.Close(); err != nil {
		t.Fatal(err)
	}
	// memstore panics on double free, so a second Close must not reach it.
	if err := b.Close(); err != nil {
		t.Fatal(err)
	}
	if n := store.Live(); n != 0 {
		t.Errorf("Live() = %d after Close, want 0", n)
	}
}

func TestBagUseAfterClosePanics(t *testing.T) {
	store, h := newBagStore(t)
	b := propbag.Adopt(store, h)
	b.Close()

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, propbag.ErrReleased) {
			t.Errorf("recover() = %v, want ErrReleased", r)
		}
	}()
	b.Lookup("x1")
}

func TestCloneOutlivesOriginal(t *testing.T) {
	store, h := newBagStore(t)
	orig := propbag.Adopt(store, h)
	dup := orig.Clone()
	defer dup.Close()

	if n := store.Live(); n != 2 {
		t.Fatalf("Live() = %d after Clone, want 2", n)
	}
	orig.Close()

	v, ok := dup.Lookup("spreadMethod")
	if !ok || v != "reflect" {
		t.Errorf("clone Lookup after original Close = %q, %v", v, ok)
	}
	s, err := svgattr.OrDefault[svgattr.PaintServerSpread](dup, "spreadMethod", svgattr.NoData{})
	if err != nil || s.Spread != svgattr.SpreadReflect {
		t.Errorf("OrDefault on clone = %v, %v", s, err)
	}
	if n := store.Live(); n != 1 {
		t.Errorf("Live() = %d, want 1", n)
	}
}

func TestBorrowDoesNotFree(t *testing.T) {
	store, h := newBagStore(t)
	b := propbag.Borrow(store, h)
	if b.Owned() {
		t.Error("borrowed bag reports ownership")
	}
	kept := b.Clone()
	b.Close()

	if n := store.Live(); n != 2 {
		t.Errorf("Live() = %d after closing borrowed bag, want 2", n)
	}
	kept.Close()
	store.Free(h)
	if n := store.Live(); n != 0 {
		t.Errorf("Live() = %d, want 0", n)
	}
}

func TestWithReleasesOnError(t *testing.T) {
	store, h := newBagStore(t)
	sentinel := errors.New("stop")

	err := propbag.With(store, h, func(b *propbag.Bag) error {
		if _, ok := b.Lookup("x1"); !ok {
			t.Error("x1 missing inside With")
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("With() = %v, want sentinel", err)
	}
	if n := store.Live(); n != 0 {
		t.Errorf("Live() = %d after With, want 0", n)
	}
}

func TestWithReleasesOnPanic(t *testing.T) {
	store, h := newBagStore(t)
	func() {
		defer func() { _ = recover() }()
		_ = propbag.With(store, h, func(*propbag.Bag) error {
			panic("boom")
		})
	}()
	if n := store.Live(); n != 0 {
		t.Errorf("Live() = %d after panicking With, want 0", n)
	}
}

func TestLeakedBagIsFreed(t *testing.T) {
	orig := svgattr.Logger()
	t.Cleanup(func() { svgattr.SetLogger(orig) })
	var buf bytes.Buffer
	svgattr.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	store, h := newBagStore(t)
	propbag.Adopt(store, h)

	deadline := time.Now().Add(5 * time.Second)
	for store.Live() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("Live() = %d, leaked bag never freed", store.Live())
		}
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}

	// The warning is logged before Free, so it is complete once Live hits 0.
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "garbage collected without Close") {
		t.Errorf("log = %q, want a leak warning", out)
	}
}

func TestClosedBagIsNotFreedAgain(t *testing.T) {
	store, h := newBagStore(t)
	propbag.Adopt(store, h).Close()

	// memstore panics on double free, which would crash the cleanup.
	for range 3 {
		runtime.GC()
	}
	if n := store.Live(); n != 0 {
		t.Errorf("Live() = %d, want 0", n)
	}
}
