// Package errors provides the structured error type shared by every layer of rpg-codex.
//
// Errors carry a Code, a user-facing message, an optional cause and metadata:
//
//	err := errors.NotFoundf("hero %s not found", id).WithMeta("domain", "hero")
//
// # Catalog taxonomy
//
// Loading and navigation failures use dedicated codes:
//   - SOURCE_UNAVAILABLE: a document is missing from every configured location.
//     Fatal for that domain's load; only an explicit reload retries.
//   - PARSE_FAILURE: a document was found but is not valid JSON.
//   - SCHEMA_VIOLATION: a document parsed but failed validation. The error
//     carries every Issue found, in discovery order (see GetIssues).
//   - INVALID_TOKEN: a navigation token was malformed, stale or tampered with.
//     Callers recover by rendering a default screen.
//   - NOT_FOUND: the input was valid but the target is gone. Callers recover
//     with a notice.
//
// Code.Fatal tells the two groups apart.
//
// # Collecting issues
//
//	var issues errors.IssueList
//	issues.Addf("spears.json", "slot1[0].image", "prefix %q != %q", got, want)
//	if err := issues.Err("spears.json failed validation"); err != nil {
//	    return err
//	}
//
// Config and input validation use ValidationBuilder, which produces an
// INVALID_ARGUMENT error with the same issue list attached.
//
// # gRPC
//
// ToGRPCError maps codes onto gRPC status codes and attaches an ErrorInfo
// detail with the precise code plus a BadRequest detail with the issues.
// FromGRPCError reverses the mapping on the client side.
package errors
