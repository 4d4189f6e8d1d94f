package normalize

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
)

// PartSep joins the sub-parts of a structured value
const PartSep = " — "

// objectKeyOrder fixes the order sub-parts of an object are rendered in.
// Keys not listed follow in sorted order.
var objectKeyOrder = []string{"name", "title", "rarity", "type", "value", "scope", "description", "notes"}

// Text renders any JSON value as a single line of text
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case []any:
		return strings.Join(List(t), ", ")
	case map[string]any:
		return joinObject(t, objectKeys(t), PartSep)
	default:
		return ""
	}
}

// List renders a JSON value as an ordered list of non-empty strings. Scalars
// and objects become a single element.
func List(v any) []string {
	items, ok := v.([]any)
	if !ok {
		if s := Text(v); s != "" {
			return []string{s}
		}
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := Text(item); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ToField converts a raw value to a field. Lists stay lists; everything else
// becomes text. ok is false when the value carries nothing to show.
func ToField(name string, v any) (catalog.Field, bool) {
	if items, isList := v.([]any); isList {
		list := List(items)
		if list == nil {
			return catalog.Field{}, false
		}
		return catalog.Field{Name: name, List: list}, true
	}

	text := Text(v)
	if text == "" {
		return catalog.Field{}, false
	}
	return catalog.Field{Name: name, Text: text}, true
}

func objectKeys(obj map[string]any) []string {
	return orderedKeys(obj, objectKeyOrder)
}

// orderedKeys lists the keys of obj: those in order first, then the rest
// sorted. Keys in skip are left out.
func orderedKeys(obj map[string]any, order []string, skip ...string) []string {
	seen := make(map[string]bool, len(order)+len(skip))
	for _, k := range skip {
		seen[k] = true
	}

	keys := make([]string, 0, len(obj))
	for _, k := range order {
		if _, ok := obj[k]; ok && !seen[k] {
			keys = append(keys, k)
			seen[k] = true
		}
	}

	rest := make([]string, 0, len(obj))
	for k := range obj {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)

	return append(keys, rest...)
}

func joinObject(obj map[string]any, keys []string, sep string) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if s := Text(obj[k]); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, sep)
}

func firstString(obj map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := Text(obj[k]); s != "" {
			return s
		}
	}
	return ""
}

func present(obj map[string]any, key string) bool {
	v, ok := obj[key]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t) != ""
	case []any:
		return len(List(t)) > 0
	case map[string]any:
		return len(t) > 0
	}
	return true
}
