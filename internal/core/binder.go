package core

import (
	"reflect"
	"strconv"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/deprecate/errors"
	"github.com/ygrebnov/deprecate/signature"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Arg is a single argument of one call. An empty Name means the argument is
// positional.
type Arg struct {
	Name  string
	Value any
}

// Binder pairs a target function with its signature descriptor. It is built
// once at wrap time and is read-only afterwards; Bind and Invoke may be
// called concurrently.
type Binder struct {
	fn   reflect.Value
	ft   reflect.Type
	desc *signature.Descriptor
}

// NewBinder inspects fn and verifies the descriptor against its type. fn must
// be a non-nil func value.
func NewBinder(fn any, desc *signature.Descriptor) (*Binder, error) {
	if fn == nil {
		return nil, errors.ErrUninspectableCallable
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, errorc.With(
			errors.ErrUninspectableCallable,
			errorc.String(errors.ErrorFieldTargetType, v.Type().String()),
		)
	}
	if desc == nil {
		return nil, errorc.With(
			errors.ErrIncompatibleDescriptor,
			errorc.String(errors.ErrorFieldTargetType, v.Type().String()),
		)
	}
	if err := desc.Check(v.Type()); err != nil {
		return nil, err
	}
	return &Binder{fn: v, ft: v.Type(), desc: desc}, nil
}

// Bind resolves the call's arguments against the descriptor: positional
// arguments fill positionable parameters in declaration order, named
// arguments fill nameable parameters, overflow goes to the declared
// collectors, and unsupplied optional parameters get their defaults. Any
// violation returns an error unwrapping to ErrArgumentBinding.
func (b *Binder) Bind(args []Arg) (*Binding, error) {
	n := b.desc.Len()
	bind := &Binding{
		values:   make([]reflect.Value, n),
		explicit: make([]bool, n),
	}

	var (
		overflow  []any
		extra     []Arg
		next      int
		seenNamed bool
	)

	for pos, a := range args {
		if a.Name == "" {
			if seenNamed {
				return nil, errorc.With(
					errors.ErrPositionalAfterNamed,
					errorc.String(errors.ErrorFieldPosition, strconv.Itoa(pos)),
				)
			}
			// Skip slots that cannot take a positional argument.
			for next < n {
				c := b.desc.Param(next).Convention()
				if c == signature.NamedOnly || c == signature.VariadicNamed {
					next++
					continue
				}
				break
			}
			if next < n && b.desc.Param(next).Convention() == signature.VariadicPositional {
				overflow = append(overflow, a.Value)
				continue
			}
			if next >= n {
				return nil, errorc.With(
					errors.ErrTooManyArguments,
					errorc.String(errors.ErrorFieldPosition, strconv.Itoa(pos)),
					errorc.String(errors.ErrorFieldArity, strconv.Itoa(n)),
				)
			}
			if err := b.assign(bind, next, a.Value); err != nil {
				return nil, err
			}
			next++
			continue
		}

		seenNamed = true
		if i, ok := b.desc.Index(a.Name); ok && b.desc.Param(i).Nameable() {
			if bind.explicit[i] {
				return nil, duplicateErr(a.Name)
			}
			if err := b.assign(bind, i, a.Value); err != nil {
				return nil, err
			}
			continue
		}
		if b.desc.VariadicNamedIndex() < 0 {
			return nil, errorc.With(
				errors.ErrUnknownParameter,
				errorc.String(errors.ErrorFieldParameterName, a.Name),
			)
		}
		for _, e := range extra {
			if e.Name == a.Name {
				return nil, duplicateErr(a.Name)
			}
		}
		extra = append(extra, a)
	}

	return bind, b.finish(bind, overflow, extra)
}

// finish builds the collector values and fills defaults for every slot the
// caller did not supply.
func (b *Binder) finish(bind *Binding, overflow []any, extra []Arg) error {
	for i := 0; i < b.desc.Len(); i++ {
		p := b.desc.Param(i)
		switch p.Convention() {
		case signature.VariadicPositional:
			sv := reflect.MakeSlice(b.ft.In(i), 0, len(overflow))
			for _, v := range overflow {
				ev, ok := coerce(v, b.ft.In(i).Elem())
				if !ok {
					return mismatchErr(p.Name(), v)
				}
				sv = reflect.Append(sv, ev)
			}
			bind.values[i] = sv
		case signature.VariadicNamed:
			mt := b.ft.In(i)
			mv := reflect.MakeMapWithSize(mt, len(extra))
			for _, e := range extra {
				ev, ok := coerce(e.Value, mt.Elem())
				if !ok {
					return mismatchErr(e.Name, e.Value)
				}
				mv.SetMapIndex(reflect.ValueOf(e.Name), ev)
				bind.extra = append(bind.extra, e.Name)
			}
			bind.values[i] = mv
		default:
			if bind.explicit[i] {
				continue
			}
			def, ok := p.Default()
			if !ok {
				return errorc.With(
					errors.ErrMissingArgument,
					errorc.String(errors.ErrorFieldParameterName, p.Name()),
				)
			}
			// Default compatibility was verified by Check at wrap time.
			dv, _ := coerce(def, b.ft.In(i))
			bind.values[i] = dv
		}
	}
	return nil
}

func (b *Binder) assign(bind *Binding, i int, v any) error {
	cv, ok := coerce(v, b.ft.In(i))
	if !ok {
		return mismatchErr(b.desc.Param(i).Name(), v)
	}
	bind.values[i] = cv
	bind.explicit[i] = true
	return nil
}

// Invoke calls the target with the bound argument list. If the target's last
// result is an error, it is split off and returned as the call error.
func (b *Binder) Invoke(bind *Binding) ([]any, error) {
	var out []reflect.Value
	if b.ft.IsVariadic() {
		out = b.fn.CallSlice(bind.values)
	} else {
		out = b.fn.Call(bind.values)
	}

	n := len(out)
	var callErr error
	if n > 0 && b.ft.Out(n-1) == errType {
		if !out[n-1].IsNil() {
			callErr = out[n-1].Interface().(error)
		}
		out = out[:n-1]
	}
	results := make([]any, len(out))
	for i, rv := range out {
		results[i] = rv.Interface()
	}
	return results, callErr
}

func coerce(v any, t reflect.Type) (reflect.Value, bool) {
	if v == nil {
		switch t.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
			reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
			return reflect.Zero(t), true
		default:
			return reflect.Value{}, false
		}
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, false
	}
	return rv, true
}

func duplicateErr(name string) error {
	return errorc.With(
		errors.ErrDuplicateArgument,
		errorc.String(errors.ErrorFieldParameterName, name),
	)
}

func mismatchErr(name string, v any) error {
	valueType := "nil"
	if v != nil {
		valueType = reflect.TypeOf(v).String()
	}
	return errorc.With(
		errors.ErrArgumentTypeMismatch,
		errorc.String(errors.ErrorFieldParameterName, name),
		errorc.String(errors.ErrorFieldValueType, valueType),
	)
}
