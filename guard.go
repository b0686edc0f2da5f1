// Package deprecate wraps callables so that using a deprecated parameter
// emits a warning while the call itself proceeds unchanged.
//
// A Guard is configured once with the deprecated parameter names and their
// messages, then wraps any number of functions. Each wrapped function binds
// its arguments against a declared signature descriptor on every call, emits
// one diagnostic per deprecated parameter the caller explicitly supplied, and
// delegates to the target with the original arguments.
package deprecate

import (
	"github.com/ygrebnov/deprecate/constants"
	"github.com/ygrebnov/deprecate/errors"
)

// Guard holds the deprecation registry, the diagnostic kind, and the emitter.
// All fields are set in New and read-only afterwards, so a single Guard may
// wrap many callables and serve concurrent calls.
type Guard struct {
	registry      *Registry
	kind          string
	emitter       Emitter
	defaultReason string
}

// Option configures a Guard at construction time.
type Option func(*Guard)

// WithReason sets the message used by the single-parameter Spec form instead
// of the generated default. It has no effect on the mapping form, whose
// entries already carry explicit messages.
func WithReason(reason string) Option {
	return func(g *Guard) { g.defaultReason = reason }
}

// WithKind selects the diagnostic category attached to every emitted warning.
// See the constants package for the bundled kinds.
func WithKind(kind string) Option {
	return func(g *Guard) {
		if kind != "" {
			g.kind = kind
		}
	}
}

// WithEmitter injects the diagnostic emission collaborator. The default
// emitter writes WARN records through log/slog.
func WithEmitter(e Emitter) Option {
	return func(g *Guard) {
		if e != nil {
			g.emitter = e
		}
	}
}

// New builds a Guard from the given deprecation Spec. The resulting registry
// is immutable; a nil or empty spec fails with ErrInvalidSpecification.
func New(spec Spec, opts ...Option) (*Guard, error) {
	g := &Guard{
		kind:    constants.KindDeprecation,
		emitter: &slogEmitter{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if spec == nil {
		return nil, errors.ErrInvalidSpecification
	}
	entries, err := spec.entries(g.defaultReason)
	if err != nil {
		return nil, err
	}
	g.registry = newRegistry(entries)
	return g, nil
}

// Registry returns the guard's deprecation registry.
func (g *Guard) Registry() *Registry { return g.registry }

// Kind returns the configured diagnostic kind.
func (g *Guard) Kind() string { return g.kind }

// emit surfaces one diagnostic. Emission is best-effort: a panicking emitter
// must not prevent delegation to the target.
func (g *Guard) emit(message string, depth int) {
	defer func() {
		_ = recover()
	}()
	g.emitter.Emit(message, g.kind, depth)
}
