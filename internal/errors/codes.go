package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"

	// Catalog and navigation codes

	// CodeSourceUnavailable means no backing document exists in any configured location
	CodeSourceUnavailable Code = "SOURCE_UNAVAILABLE"
	// CodeParseFailure means a document was found but is not well-formed
	CodeParseFailure Code = "PARSE_FAILURE"
	// CodeSchemaViolation means a document parsed but failed validation
	CodeSchemaViolation Code = "SCHEMA_VIOLATION"
	// CodeInvalidToken means navigation input was malformed, stale or tampered with
	CodeInvalidToken Code = "INVALID_TOKEN"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Fatal reports whether the code aborts catalog construction. Request-scoped
// codes (invalid token, not found) are recovered inside the request.
func (c Code) Fatal() bool {
	switch c {
	case CodeSourceUnavailable, CodeParseFailure, CodeSchemaViolation:
		return true
	default:
		return false
	}
}
