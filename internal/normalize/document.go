package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

// Result is the outcome of normalizing one domain document
type Result struct {
	// Records in document order, duplicates removed
	Records []*catalog.Record
	// Issues found while normalizing, in discovery order
	Issues []errors.Issue
}

// Decode parses a JSON document keeping numbers as json.Number. Trailing
// content after the first value is rejected.
func Decode(location string, data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.ParseFailure(err, location)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.ParseFailure(fmt.Errorf("unexpected data after top-level value"), location)
	}

	return doc, nil
}

// Entries extracts the raw record list of a domain document. A document is
// either a top-level list or an object wrapping the list under the domain key.
// Events also accept a single object under "event". The flag is false when no
// record list could be found.
func Entries(domain catalog.Domain, doc any) ([]any, bool) {
	switch t := doc.(type) {
	case []any:
		return t, true
	case map[string]any:
		if list, ok := t[domain.WrapperKey()].([]any); ok {
			return list, true
		}
		if domain == catalog.DomainEvent {
			if single, ok := t["event"].(map[string]any); ok {
				return []any{single}, true
			}
		}
	}
	return nil, false
}

// Document decodes and normalizes a whole domain document read from source.
// Only malformed JSON is an error; every other problem becomes an issue.
// When two entries derive the same id the first one wins.
func Document(domain catalog.Domain, source string, data []byte) (*Result, error) {
	doc, err := Decode(source, data)
	if err != nil {
		return nil, err
	}

	entries, found := Entries(domain, doc)
	result := &Result{Records: make([]*catalog.Record, 0, len(entries))}
	var issues errors.IssueList
	if !found {
		issues.Addf(source, "", "no record list found, expected a list or %q", domain.WrapperKey())
	}
	firstSeen := make(map[string]int, len(entries))

	for i, raw := range entries {
		rec, recIssues := Normalize(domain, raw)
		for _, issue := range recIssues {
			issues.Add(source, entryPath(i, issue.Path), issue.Message)
		}

		if j, dup := firstSeen[rec.ID]; dup {
			issues.Addf(source, entryPath(i, "id"), "duplicate id %q, first defined at [%d]", rec.ID, j)
			continue
		}
		firstSeen[rec.ID] = i
		result.Records = append(result.Records, rec)
	}

	result.Issues = issues.Issues()
	return result, nil
}

func entryPath(index int, path string) string {
	if path == "" {
		return fmt.Sprintf("[%d]", index)
	}
	return fmt.Sprintf("[%d].%s", index, path)
}
