package errors

import (
	"fmt"
	"strings"
)

const metaIssues = "issues"

// Issue is one validation finding. Source names the document (e.g.
// "spears.json"), Path locates the value inside it (e.g. "slot1[2].image").
type Issue struct {
	Source  string `json:"source,omitempty"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// String renders the issue as "source: path -> message"
func (i Issue) String() string {
	var b strings.Builder
	if i.Source != "" {
		b.WriteString(i.Source)
		b.WriteString(": ")
	}
	if i.Path != "" {
		b.WriteString(i.Path)
		b.WriteString(" -> ")
	}
	b.WriteString(i.Message)
	return b.String()
}

// IssueList accumulates issues in discovery order. The zero value is ready to use.
type IssueList struct {
	issues []Issue
}

// Add appends an issue
func (l *IssueList) Add(source, path, message string) {
	l.issues = append(l.issues, Issue{Source: source, Path: path, Message: message})
}

// Addf appends an issue with a formatted message
func (l *IssueList) Addf(source, path, format string, args ...interface{}) {
	l.Add(source, path, fmt.Sprintf(format, args...))
}

// Append appends already-built issues
func (l *IssueList) Append(issues ...Issue) {
	l.issues = append(l.issues, issues...)
}

// AppendError records err as an issue for source. Errors carrying their own
// issues contribute those instead of a single summary line.
func (l *IssueList) AppendError(source string, err error) {
	if err == nil {
		return
	}
	if nested := GetIssues(err); len(nested) > 0 {
		l.Append(nested...)
		return
	}
	l.Add(source, "", err.Error())
}

// Len returns the number of issues
func (l *IssueList) Len() int {
	return len(l.issues)
}

// Issues returns a copy of the accumulated issues
func (l *IssueList) Issues() []Issue {
	if len(l.issues) == 0 {
		return nil
	}
	out := make([]Issue, len(l.issues))
	copy(out, l.issues)
	return out
}

// Err returns a SchemaViolation carrying every issue, or nil when empty
func (l *IssueList) Err(message string) error {
	if len(l.issues) == 0 {
		return nil
	}
	return SchemaViolation(message, l.Issues())
}

// ValidationBuilder provides a fluent interface for validating inputs and
// configs. It returns nil when nothing was recorded, or an InvalidArgument
// error listing every field problem in the order they were added.
type ValidationBuilder struct {
	list IssueList
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.list.Add("", field, message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	vb.list.Addf("", field, format, args...)
	return vb
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns the error if there are validation errors, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if vb.list.Len() == 0 {
		return nil
	}

	parts := make([]string, 0, vb.list.Len())
	for _, issue := range vb.list.issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Path, issue.Message))
	}
	return InvalidArgument(fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))).
		WithMeta(metaIssues, vb.list.Issues())
}

// ValidateRequired checks if a string field is required
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange checks if a value is within a range
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}
