package normalize

import (
	"strings"

	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

// draft collects the pieces of a record while a domain normalizer runs
type draft struct {
	domain catalog.Domain
	id     string
	name   string
	image  string
	fields map[string]catalog.Field
	rules  bool
	issues errors.IssueList

	// exactID keeps an explicit id as written instead of slugging it
	exactID bool
}

func newDraft(domain catalog.Domain) *draft {
	return &draft{
		domain: domain,
		fields: make(map[string]catalog.Field),
	}
}

func (d *draft) set(name string, v any) {
	if f, ok := ToField(name, v); ok {
		d.fields[name] = f
	}
}

func (d *draft) setText(name, text string) {
	if text = strings.TrimSpace(text); text != "" {
		d.fields[name] = catalog.Field{Name: name, Text: text}
	}
}

func (d *draft) has(name string) bool {
	_, ok := d.fields[name]
	return ok
}

// Normalize maps one raw entry onto the canonical record of domain. Issue
// paths are relative to the entry.
func Normalize(domain catalog.Domain, raw any) (*catalog.Record, []errors.Issue) {
	d := newDraft(domain)

	obj, ok := raw.(map[string]any)
	if !ok {
		d.issues.Add("", "", "entry is not an object")
		d.name = domain.Placeholder()
		return d.record(), d.issues.Issues()
	}

	switch domain {
	case catalog.DomainEvent:
		normalizeEvent(d, obj)
	case catalog.DomainHero:
		normalizeHero(d, obj)
	case catalog.DomainSkill:
		normalizeSkill(d, obj)
	case catalog.DomainMountSkill:
		normalizeMountSkill(d, obj)
	}

	return d.record(), d.issues.Issues()
}

func (d *draft) record() *catalog.Record {
	name := d.name
	if name == "" {
		name = d.domain.Placeholder()
		d.issues.Add("", "name", "missing name")
	}

	id := d.id
	if !(d.exactID && id != "") && !TokenSafe(id) {
		id = Slug(id)
	}
	if id == "" {
		id = Slug(name)
	}
	if id == "" {
		id = Slug(d.domain.Placeholder())
	}

	rec := &catalog.Record{
		ID:       id,
		Name:     name,
		Domain:   d.domain,
		Image:    d.image,
		HasRules: d.rules,
	}

	blob := []string{strings.ToLower(name)}
	for _, fieldName := range d.domain.Schema() {
		f, ok := d.fields[fieldName]
		if !ok {
			continue
		}
		rec.Fields = append(rec.Fields, f)
		blob = append(blob, strings.ToLower(strings.Join(f.Values(), " ")))
	}
	rec.SearchBlob = strings.Join(blob, " ")

	return rec
}

func normalizeSkill(d *draft, obj map[string]any) {
	d.id = firstString(obj, "slug", "id")
	d.name = firstString(obj, "name", "title")
	d.image = firstString(obj, "image")

	for _, f := range []string{"type", "season", "probability", "frequency", "effect"} {
		d.set(f, obj[f])
	}
}

func normalizeMountSkill(d *draft, obj map[string]any) {
	d.id = firstString(obj, "id")
	d.exactID = true
	d.name = firstString(obj, "name")
	d.image = firstString(obj, "image")
	d.set("type", obj["type"])
	d.set("description", obj["description"])
}
