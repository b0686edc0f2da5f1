package deprecate

import (
	"github.com/ygrebnov/deprecate/internal/core"
	"github.com/ygrebnov/deprecate/signature"
)

// Arg is a single call argument. Use Pos and Named to construct.
type Arg struct {
	name  string
	value any
}

// Pos supplies an argument by position.
func Pos(v any) Arg { return Arg{value: v} }

// Named supplies an argument by parameter name.
func Named(name string, v any) Arg { return Arg{name: name, value: v} }

// Func is a wrapped callable. It accepts the same arguments as the target,
// returns the target's results verbatim, and additionally emits one
// diagnostic per deprecated parameter explicitly supplied in a call.
type Func struct {
	guard  *Guard
	desc   *signature.Descriptor
	binder *core.Binder
}

// originDepth is the number of stack frames between Emitter.Emit and the
// caller of Func.Call: Emit <- Guard.emit <- Func.Call <- caller.
const originDepth = 3

// Wrap inspects fn once against its descriptor and returns the wrapped
// callable. fn is not modified; the same Guard may wrap several functions,
// and the same function may be wrapped several times independently.
//
// Registry names that match no descriptor parameter are inert: they never
// fire and are not an error. Callers that want strictness can cross-check
// with Descriptor.Has before wrapping.
func (g *Guard) Wrap(fn any, desc *signature.Descriptor) (*Func, error) {
	binder, err := core.NewBinder(fn, desc)
	if err != nil {
		return nil, err
	}
	return &Func{guard: g, desc: desc, binder: binder}, nil
}

// Call binds args against the target's signature, emits a diagnostic for
// every deprecated parameter explicitly supplied, and delegates. Binding
// failures unwrap to errors.ErrArgumentBinding; in that case nothing is
// emitted and the target is not invoked. Diagnostics are emitted strictly
// before delegation and are not retracted if the target fails.
func (f *Func) Call(args ...Arg) ([]any, error) {
	coreArgs := make([]core.Arg, len(args))
	for i, a := range args {
		coreArgs[i] = core.Arg{Name: a.name, Value: a.value}
	}
	bind, err := f.binder.Bind(coreArgs)
	if err != nil {
		return nil, err
	}

	// Declared parameters first, in declaration order. A parameter filled
	// from its default is not an explicit supply and never matches; neither
	// does a positional-only parameter, which has no caller-facing name.
	for i := 0; i < f.desc.Len(); i++ {
		p := f.desc.Param(i)
		if !bind.Explicit(i) || !p.Nameable() {
			continue
		}
		if msg, ok := f.guard.registry.Message(p.Name()); ok {
			f.guard.emit(msg, originDepth)
		}
	}
	// Then names absorbed by the named collector, in supply order. The
	// positional collector is never matched: overflow has no reliable name.
	for _, name := range bind.ExtraNames() {
		if msg, ok := f.guard.registry.Message(name); ok {
			f.guard.emit(msg, originDepth)
		}
	}

	return f.binder.Invoke(bind)
}

// Descriptor returns the signature descriptor the function was wrapped with.
func (f *Func) Descriptor() *signature.Descriptor { return f.desc }
