package logger

// Standard field names for consistent structured logging across astgen.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"

	// Generation
	FieldFamily    = "family"
	FieldTarget    = "target"
	FieldNamespace = "namespace"
	FieldRoot      = "root"
	FieldShape     = "shape"
	FieldShapes    = "shapes"
	FieldParams    = "params"

	// Files and paths
	FieldPath  = "path"
	FieldBytes = "bytes"

	// Status
	FieldStatus = "status"

	// Errors
	FieldError = "error"
)
