package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// GetIssues returns the validation issues carried by a schema violation or
// invalid argument error, or nil
func GetIssues(err error) []Issue {
	issues, _ := GetMeta(err)[metaIssues].([]Issue)
	return issues
}

// Type checking helpers

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsPermissionDenied checks if an error is a permission denied error
func IsPermissionDenied(err error) bool {
	return GetCode(err) == CodePermissionDenied
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsSourceUnavailable checks if an error is a missing-source error
func IsSourceUnavailable(err error) bool {
	return GetCode(err) == CodeSourceUnavailable
}

// IsParseFailure checks if an error is a malformed-document error
func IsParseFailure(err error) bool {
	return GetCode(err) == CodeParseFailure
}

// IsSchemaViolation checks if an error is a schema violation error
func IsSchemaViolation(err error) bool {
	return GetCode(err) == CodeSchemaViolation
}

// IsInvalidToken checks if an error is an invalid navigation token error
func IsInvalidToken(err error) bool {
	return GetCode(err) == CodeInvalidToken
}
