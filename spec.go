package deprecate

import (
	"fmt"
	"slices"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/deprecate/constants"
	"github.com/ygrebnov/deprecate/errors"
)

// Spec selects which parameters of a callable are deprecated. It is a closed
// sum with two variants: Parameter (a single name, message optional) and
// Parameters (an explicit name-to-message mapping). A Spec is resolved once,
// in New; it is never re-inspected afterwards.
type Spec interface {
	entries(defaultReason string) ([]entry, error)
}

type entry struct {
	name    string
	message string
}

type singleParameter struct {
	name string
}

// Parameter declares a single deprecated parameter. Its message defaults to
// "<name> parameter is deprecated" unless WithReason supplies one.
func Parameter(name string) Spec { return singleParameter{name: name} }

func (s singleParameter) entries(defaultReason string) ([]entry, error) {
	if s.name == "" {
		return nil, errorc.With(
			errors.ErrInvalidSpecification,
			errorc.String(errors.ErrorFieldSpecForm, "single"),
		)
	}
	msg := defaultReason
	if msg == "" {
		msg = fmt.Sprintf(constants.DefaultMessageFormat, s.name)
	}
	return []entry{{name: s.name, message: msg}}, nil
}

type parameterMap struct {
	m map[string]string
}

// Parameters declares several deprecated parameters at once. Every entry
// carries its own explicit message, copied verbatim; no default message is
// generated for the mapping form.
func Parameters(entries map[string]string) Spec { return parameterMap{m: entries} }

func (s parameterMap) entries(string) ([]entry, error) {
	if len(s.m) == 0 {
		return nil, errorc.With(
			errors.ErrInvalidSpecification,
			errorc.String(errors.ErrorFieldSpecForm, "mapping"),
		)
	}
	names := make([]string, 0, len(s.m))
	for name := range s.m {
		if name == "" {
			return nil, errorc.With(
				errors.ErrInvalidSpecification,
				errorc.String(errors.ErrorFieldSpecForm, "mapping"),
			)
		}
		names = append(names, name)
	}
	// Map iteration order is random; sort for a deterministic registry.
	slices.Sort(names)
	out := make([]entry, 0, len(names))
	for _, name := range names {
		out = append(out, entry{name: name, message: s.m[name]})
	}
	return out, nil
}
