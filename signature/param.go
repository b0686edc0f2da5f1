package signature

// Convention constrains how an argument may be supplied for a parameter.
type Convention int

const (
	// PositionalOnly parameters accept arguments by position only.
	PositionalOnly Convention = iota
	// PositionalOrNamed parameters accept arguments by position or by name.
	PositionalOrNamed
	// NamedOnly parameters accept arguments by name only.
	NamedOnly
	// VariadicPositional collects positional arguments beyond the declared
	// parameters into a slice-typed parameter.
	VariadicPositional
	// VariadicNamed collects named arguments matching no declared parameter
	// into a string-keyed map parameter.
	VariadicNamed
)

func (c Convention) String() string {
	switch c {
	case PositionalOnly:
		return "positional-only"
	case PositionalOrNamed:
		return "positional-or-named"
	case NamedOnly:
		return "named-only"
	case VariadicPositional:
		return "variadic-positional"
	case VariadicNamed:
		return "variadic-named"
	default:
		return "unknown"
	}
}

// Param is a single declared parameter of a callable.
type Param struct {
	name       string
	convention Convention
	def        any
	hasDefault bool
}

func (p Param) Name() string { return p.name }

func (p Param) Convention() Convention { return p.convention }

// Default returns the declared default value and whether one was declared.
func (p Param) Default() (any, bool) { return p.def, p.hasDefault }

// Nameable reports whether an argument may be supplied for p by name.
func (p Param) Nameable() bool {
	return p.convention == PositionalOrNamed || p.convention == NamedOnly
}

// Positionable reports whether an argument may be supplied for p by position.
func (p Param) Positionable() bool {
	return p.convention == PositionalOnly || p.convention == PositionalOrNamed
}

// ParamOption configures a parameter declaration.
type ParamOption func(*Param)

// Default declares a default value, making the parameter optional. A caller
// that omits the parameter gets v without triggering any deprecation match.
func Default(v any) ParamOption {
	return func(p *Param) {
		p.def = v
		p.hasDefault = true
	}
}
