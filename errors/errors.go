package errors

import (
	"fmt"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/deprecate/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Sentinel errors for configuration and wrap-time misuses. Use errors.Is to match.
var (
	ErrInvalidSpecification   = namespace.NewError("invalid deprecation specification")
	ErrUninspectableCallable  = namespace.NewError("callable signature cannot be inspected")
	ErrIncompatibleDescriptor = namespace.NewError("signature descriptor does not match callable")
)

// Sentinel errors for descriptor construction misuses.
var (
	ErrInvalidParameter   = namespace.NewError("parameter must have a non-empty name")
	ErrDuplicateParameter = namespace.NewError("duplicate parameter name")
	ErrCollectorPlacement = namespace.NewError("invalid collector placement")
	ErrParameterOrder     = namespace.NewError("required parameter follows a defaulted parameter")
)

// ErrArgumentBinding is the call-time family root: every binding failure
// unwraps to it, so errors.Is(err, ErrArgumentBinding) matches any of the
// specific causes below.
var ErrArgumentBinding = namespace.NewError("argument binding failed")

var (
	ErrUnknownParameter     = fmt.Errorf("%w: unknown named argument", ErrArgumentBinding)
	ErrTooManyArguments     = fmt.Errorf("%w: too many positional arguments", ErrArgumentBinding)
	ErrMissingArgument      = fmt.Errorf("%w: missing required argument", ErrArgumentBinding)
	ErrDuplicateArgument    = fmt.Errorf("%w: argument supplied more than once", ErrArgumentBinding)
	ErrPositionalAfterNamed = fmt.Errorf("%w: positional argument after named argument", ErrArgumentBinding)
	ErrArgumentTypeMismatch = fmt.Errorf("%w: argument type mismatch", ErrArgumentBinding)
)

var newKey = errorc.KeyFactory(constants.ErrorFieldNamespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentParam = "param"
	keySegmentCall  = "call"
	keySegmentSpec  = "spec"
)

// Exported structured error field keys
var (
	ErrorFieldParameterName = newKey("name", keySegmentParam)       // deprecate.param.name
	ErrorFieldConvention    = newKey("convention", keySegmentParam) // deprecate.param.convention
	ErrorFieldParamType     = newKey("type", keySegmentParam)       // deprecate.param.type
)

var (
	ErrorFieldPosition  = newKey("position", keySegmentCall)   // deprecate.call.position
	ErrorFieldValueType = newKey("value_type", keySegmentCall) // deprecate.call.value_type
	ErrorFieldArity     = newKey("arity", keySegmentCall)      // deprecate.call.arity
)

var (
	ErrorFieldSpecForm = newKey("form", keySegmentSpec) // deprecate.spec.form
)

var (
	ErrorFieldTargetType = newKey("target_type")
)
