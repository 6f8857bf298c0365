package logger

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings to ensure consistency.
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldQuery     = "query"
	FieldSource    = "source"
	FieldFormat    = "format"
	FieldSubject   = "subject"
	FieldPredicate = "predicate"
	FieldHop       = "hop"

	FieldCount      = "count"
	FieldTotalCount = "total_count"
	FieldDurationMS = "duration_ms"

	FieldError = "error"
)
