package signature

import (
	"errors"
	"testing"

	deprecateErrors "github.com/ygrebnov/deprecate/errors"
)

func TestDescribe_Build(t *testing.T) {
	tests := []struct {
		name          string
		build         func() (*Descriptor, error)
		expectedNames []string
		expectedError error
	}{
		{
			name:          "empty description",
			build:         func() (*Descriptor, error) { return Describe().Build() },
			expectedNames: []string{},
		},
		{
			name: "positional parameters in order",
			build: func() (*Descriptor, error) {
				return Describe().Param("x").Param("y").Build()
			},
			expectedNames: []string{"x", "y"},
		},
		{
			name: "all conventions",
			build: func() (*Descriptor, error) {
				return Describe().
					PositionalOnly("a").
					Param("b").
					Variadic("rest").
					NamedOnly("key", Default(nil)).
					NamedCollector("extra").
					Build()
			},
			expectedNames: []string{"a", "b", "rest", "key", "extra"},
		},
		{
			name: "empty name",
			build: func() (*Descriptor, error) {
				return Describe().Param("").Build()
			},
			expectedError: deprecateErrors.ErrInvalidParameter,
		},
		{
			name: "duplicate name",
			build: func() (*Descriptor, error) {
				return Describe().Param("x").NamedOnly("x").Build()
			},
			expectedError: deprecateErrors.ErrDuplicateParameter,
		},
		{
			name: "positional after variadic collector",
			build: func() (*Descriptor, error) {
				return Describe().Variadic("rest").Param("x").Build()
			},
			expectedError: deprecateErrors.ErrCollectorPlacement,
		},
		{
			name: "named-only after variadic collector is allowed",
			build: func() (*Descriptor, error) {
				return Describe().Param("x").Variadic("rest").NamedOnly("key", Default(nil)).Build()
			},
			expectedNames: []string{"x", "rest", "key"},
		},
		{
			name: "second variadic collector",
			build: func() (*Descriptor, error) {
				return Describe().Variadic("rest").Variadic("more").Build()
			},
			expectedError: deprecateErrors.ErrCollectorPlacement,
		},
		{
			name: "named collector not last",
			build: func() (*Descriptor, error) {
				return Describe().NamedCollector("extra").Param("x").Build()
			},
			expectedError: deprecateErrors.ErrCollectorPlacement,
		},
		{
			name: "second named collector",
			build: func() (*Descriptor, error) {
				return Describe().Param("x").NamedCollector("extra").NamedCollector("more").Build()
			},
			expectedError: deprecateErrors.ErrCollectorPlacement,
		},
		{
			name: "required positional after defaulted positional",
			build: func() (*Descriptor, error) {
				return Describe().Param("x", Default(1)).Param("y").Build()
			},
			expectedError: deprecateErrors.ErrParameterOrder,
		},
		{
			name: "required named-only after defaulted positional is allowed",
			build: func() (*Descriptor, error) {
				return Describe().Param("x", Default(1)).NamedOnly("key").Build()
			},
			expectedNames: []string{"x", "key"},
		},
		{
			name: "first error wins",
			build: func() (*Descriptor, error) {
				return Describe().Param("").Param("x").Param("x").Build()
			},
			expectedError: deprecateErrors.ErrInvalidParameter,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := test.build()
			if test.expectedError != nil {
				if !errors.Is(err, test.expectedError) {
					t.Fatalf("expected error %v, got %v", test.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Build error: %v", err)
			}
			if d.Len() != len(test.expectedNames) {
				t.Fatalf("expected %d params, got %d", len(test.expectedNames), d.Len())
			}
			for i, name := range test.expectedNames {
				if d.Param(i).Name() != name {
					t.Fatalf("at index %d, expected %s, got %s", i, name, d.Param(i).Name())
				}
				if !d.Has(name) {
					t.Fatalf("expected Has(%q)", name)
				}
			}
		})
	}
}

func TestDescriptor_accessors(t *testing.T) {
	d, err := Describe().
		PositionalOnly("a").
		Param("b", Default(0)).
		Variadic("rest").
		NamedCollector("extra").
		Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if d.VariadicPositionalIndex() != 2 {
		t.Fatalf("expected variadic index 2, got %d", d.VariadicPositionalIndex())
	}
	if d.VariadicNamedIndex() != 3 {
		t.Fatalf("expected collector index 3, got %d", d.VariadicNamedIndex())
	}
	if i, ok := d.Index("b"); !ok || i != 1 {
		t.Fatalf("expected Index(b)=(1,true), got (%d,%v)", i, ok)
	}
	if d.Has("missing") {
		t.Fatal("unexpected Has(missing)")
	}

	b := d.Param(1)
	if !b.Nameable() || !b.Positionable() {
		t.Fatal("expected b to be nameable and positionable")
	}
	if def, ok := b.Default(); !ok || def.(int) != 0 {
		t.Fatalf("expected default 0, got %v (ok=%v)", def, ok)
	}
	a := d.Param(0)
	if a.Nameable() || !a.Positionable() {
		t.Fatal("expected a to be positional-only")
	}

	// Params returns a copy; mutating it must not affect the descriptor.
	params := d.Params()
	params[0] = Param{}
	if d.Param(0).Name() != "a" {
		t.Fatal("descriptor mutated through Params copy")
	}
}

func TestConvention_String(t *testing.T) {
	tests := []struct {
		convention Convention
		expected   string
	}{
		{PositionalOnly, "positional-only"},
		{PositionalOrNamed, "positional-or-named"},
		{NamedOnly, "named-only"},
		{VariadicPositional, "variadic-positional"},
		{VariadicNamed, "variadic-named"},
		{Convention(99), "unknown"},
	}
	for _, test := range tests {
		if got := test.convention.String(); got != test.expected {
			t.Fatalf("expected %s, got %s", test.expected, got)
		}
	}
}
