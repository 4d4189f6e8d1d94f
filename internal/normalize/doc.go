// Package normalize maps heterogeneous source documents onto the canonical
// catalog record model.
//
// Normalization is total: any JSON value yields a record. Problems that the
// catalog can live with (missing names, rules flag inconsistencies, duplicate
// ids) are reported as errors.Issue values and never repaired. Mount skill
// documents are the exception; they go through a strict schema and fail as a
// whole with a SchemaViolation.
package normalize
