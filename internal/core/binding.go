package core

import (
	"reflect"
	"slices"
)

// Binding is the per-call resolution of supplied arguments against the
// declared parameters. It is built fresh for every call and discarded after
// the call completes; nothing in it is shared between calls.
type Binding struct {
	// values holds one slot per declared parameter, ready for reflect.Call.
	values []reflect.Value
	// explicit marks slots whose value was supplied by the caller rather
	// than filled from the parameter's default.
	explicit []bool
	// extra lists names captured by the variadic-named collector, in the
	// order they were supplied in the call.
	extra []string
}

// Explicit reports whether the parameter at declaration index i was
// explicitly supplied by the caller.
func (b *Binding) Explicit(i int) bool { return b.explicit[i] }

// ExtraNames returns the names absorbed by the variadic-named collector in
// supply order.
func (b *Binding) ExtraNames() []string { return slices.Clone(b.extra) }
