package signature

import (
	"slices"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/deprecate/errors"
)

// Builder accumulates parameter declarations for a Descriptor. The first
// invalid declaration is remembered and reported by Build; later declarations
// are ignored once an error is recorded.
type Builder struct {
	params []Param
	err    error
}

// Describe starts a new signature description. Declaration order must follow
// the target function's parameter order.
func Describe() *Builder { return &Builder{} }

// Param declares a positional-or-named parameter.
func (b *Builder) Param(name string, opts ...ParamOption) *Builder {
	return b.add(name, PositionalOrNamed, opts)
}

// PositionalOnly declares a parameter that can only be supplied by position.
func (b *Builder) PositionalOnly(name string, opts ...ParamOption) *Builder {
	return b.add(name, PositionalOnly, opts)
}

// NamedOnly declares a parameter that can only be supplied by name.
func (b *Builder) NamedOnly(name string, opts ...ParamOption) *Builder {
	return b.add(name, NamedOnly, opts)
}

// Variadic declares the collector for positional arguments beyond the
// declared parameters. At most one may be declared, and no positional
// parameter may follow it.
func (b *Builder) Variadic(name string) *Builder {
	return b.add(name, VariadicPositional, nil)
}

// NamedCollector declares the collector for named arguments matching no
// declared parameter. It must be the last declaration.
func (b *Builder) NamedCollector(name string) *Builder {
	return b.add(name, VariadicNamed, nil)
}

func (b *Builder) add(name string, c Convention, opts []ParamOption) *Builder {
	if b.err != nil {
		return b
	}
	p := Param{name: name, convention: c}
	for _, opt := range opts {
		opt(&p)
	}
	if err := b.validate(p); err != nil {
		b.err = err
		return b
	}
	b.params = append(b.params, p)
	return b
}

func (b *Builder) validate(p Param) error {
	if p.name == "" {
		return errorc.With(
			errors.ErrInvalidParameter,
			errorc.String(errors.ErrorFieldConvention, p.convention.String()),
		)
	}
	for _, existing := range b.params {
		if existing.name == p.name {
			return errorc.With(
				errors.ErrDuplicateParameter,
				errorc.String(errors.ErrorFieldParameterName, p.name),
			)
		}
	}
	if n := len(b.params); n > 0 {
		last := b.params[n-1]
		if last.convention == VariadicNamed {
			return placementErr(p, "named collector must be declared last")
		}
	}
	switch p.convention {
	case VariadicPositional:
		if b.hasConvention(VariadicPositional) {
			return placementErr(p, "second variadic collector")
		}
	case VariadicNamed:
		if b.hasConvention(VariadicNamed) {
			return placementErr(p, "second named collector")
		}
	case PositionalOnly, PositionalOrNamed:
		if b.hasConvention(VariadicPositional) {
			return placementErr(p, "positional parameter after variadic collector")
		}
		if !p.hasDefault && b.hasDefaultedPositional() {
			return errorc.With(
				errors.ErrParameterOrder,
				errorc.String(errors.ErrorFieldParameterName, p.name),
			)
		}
	}
	return nil
}

func (b *Builder) hasConvention(c Convention) bool {
	for _, p := range b.params {
		if p.convention == c {
			return true
		}
	}
	return false
}

func (b *Builder) hasDefaultedPositional() bool {
	for _, p := range b.params {
		if p.Positionable() && p.hasDefault {
			return true
		}
	}
	return false
}

func placementErr(p Param, detail string) error {
	return errorc.With(
		errors.ErrCollectorPlacement,
		errorc.String(errors.ErrorFieldParameterName, p.name),
		errorc.String(errors.ErrorFieldConvention, p.convention.String()+"; "+detail),
	)
}

// Build finalizes the description. An empty description is valid and matches
// a zero-parameter function.
func (b *Builder) Build() (*Descriptor, error) {
	if b.err != nil {
		return nil, b.err
	}
	d := &Descriptor{
		params:    slices.Clone(b.params),
		byName:    make(map[string]int, len(b.params)),
		variadic:  -1,
		collector: -1,
	}
	for i, p := range d.params {
		d.byName[p.name] = i
		switch p.convention {
		case VariadicPositional:
			d.variadic = i
		case VariadicNamed:
			d.collector = i
		}
	}
	return d, nil
}
