package constants

const Namespace = "deprecate"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

// Diagnostic kinds. KindDeprecation is the default when none is configured.
const (
	KindDeprecation        = "deprecation"
	KindPendingDeprecation = "pending-deprecation"
	KindRemoval            = "removal"
)

// DefaultMessageFormat is the message generated for a deprecated parameter
// when no explicit reason is supplied.
const DefaultMessageFormat = "%s parameter is deprecated"
