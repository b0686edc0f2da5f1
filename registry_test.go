package deprecate

import (
	"slices"
	"testing"
)

func TestRegistry(t *testing.T) {
	r := newRegistry([]entry{
		{name: "x", message: "m1"},
		{name: "y", message: "m2"},
	})

	if r.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", r.Len())
	}
	if !slices.Equal(r.Names(), []string{"x", "y"}) {
		t.Fatalf("expected [x y], got %v", r.Names())
	}
	if !slices.Equal(r.Messages(), []string{"m1", "m2"}) {
		t.Fatalf("expected [m1 m2], got %v", r.Messages())
	}
	if msg, ok := r.Message("y"); !ok || msg != "m2" {
		t.Fatalf("expected (m2,true), got (%q,%v)", msg, ok)
	}
	if _, ok := r.Message("z"); ok {
		t.Fatal("unexpected entry for z")
	}
}

func TestRegistry_empty(t *testing.T) {
	r := newRegistry(nil)
	if r.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", r.Len())
	}
	if _, ok := r.Message("x"); ok {
		t.Fatal("unexpected entry in empty registry")
	}
}
