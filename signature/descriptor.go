package signature

import (
	"reflect"
	"slices"
	"strconv"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/deprecate/errors"
)

// Descriptor is the read-only description of a callable's parameter list:
// ordered parameter names, passing conventions, and defaults. It is built once
// by Describe and never mutated afterwards, so it may be shared by concurrent
// calls to the same wrapped callable.
type Descriptor struct {
	params    []Param
	byName    map[string]int
	variadic  int // index of the VariadicPositional param, -1 if none
	collector int // index of the VariadicNamed param, -1 if none
}

// Len returns the number of declared parameters, collectors included.
func (d *Descriptor) Len() int { return len(d.params) }

// Param returns the parameter at index i in declaration order.
func (d *Descriptor) Param(i int) Param { return d.params[i] }

// Params returns a copy of the declared parameters in declaration order.
func (d *Descriptor) Params() []Param { return slices.Clone(d.params) }

// Has reports whether a parameter with the given name is declared.
func (d *Descriptor) Has(name string) bool {
	_, ok := d.byName[name]
	return ok
}

// Index returns the declaration index of the named parameter.
func (d *Descriptor) Index(name string) (int, bool) {
	i, ok := d.byName[name]
	return i, ok
}

// VariadicPositionalIndex returns the index of the variadic-positional
// collector, or -1 when none is declared.
func (d *Descriptor) VariadicPositionalIndex() int { return d.variadic }

// VariadicNamedIndex returns the index of the variadic-named collector, or -1
// when none is declared.
func (d *Descriptor) VariadicNamedIndex() int { return d.collector }

// Check verifies that the descriptor is structurally compatible with the
// given function type: one declared parameter per function input, collectors
// mapped to slice/map inputs, and defaults assignable to their input types.
func (d *Descriptor) Check(t reflect.Type) error {
	if t == nil || t.Kind() != reflect.Func {
		return errors.ErrUninspectableCallable
	}
	if len(d.params) != t.NumIn() {
		return errorc.With(
			errors.ErrIncompatibleDescriptor,
			errorc.String(errors.ErrorFieldArity, strconv.Itoa(len(d.params))),
			errorc.String(errors.ErrorFieldTargetType, t.String()),
		)
	}
	if t.IsVariadic() && (d.variadic < 0 || d.variadic != t.NumIn()-1) {
		return errorc.With(
			errors.ErrIncompatibleDescriptor,
			errorc.String(errors.ErrorFieldTargetType, t.String()),
			errorc.String(errors.ErrorFieldConvention, VariadicPositional.String()),
		)
	}
	for i, p := range d.params {
		in := t.In(i)
		switch p.convention {
		case VariadicPositional:
			if in.Kind() != reflect.Slice {
				return incompatibleParam(p, in)
			}
		case VariadicNamed:
			if in.Kind() != reflect.Map || in.Key().Kind() != reflect.String {
				return incompatibleParam(p, in)
			}
		default:
			if !p.hasDefault {
				continue
			}
			if p.def == nil {
				if !nilable(in) {
					return incompatibleParam(p, in)
				}
				continue
			}
			if !reflect.TypeOf(p.def).AssignableTo(in) {
				return incompatibleParam(p, in)
			}
		}
	}
	return nil
}

func incompatibleParam(p Param, in reflect.Type) error {
	return errorc.With(
		errors.ErrIncompatibleDescriptor,
		errorc.String(errors.ErrorFieldParameterName, p.name),
		errorc.String(errors.ErrorFieldConvention, p.convention.String()),
		errorc.String(errors.ErrorFieldParamType, in.String()),
	)
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
