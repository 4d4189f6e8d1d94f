package catalog

import (
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Field is one named value of a record. Exactly one of Text or List is used.
type Field struct {
	Name string
	Text string
	List []string
}

// IsList reports whether the field holds an ordered list
func (f Field) IsList() bool {
	return f.List != nil
}

// Empty reports whether the field carries no visible content
func (f Field) Empty() bool {
	if f.IsList() {
		for _, v := range f.List {
			if v != "" {
				return false
			}
		}
		return true
	}
	return f.Text == ""
}

// Values returns the field content as a list
func (f Field) Values() []string {
	if f.IsList() {
		return f.List
	}
	if f.Text == "" {
		return nil
	}
	return []string{f.Text}
}

// Record is the canonical, normalized representation of one catalog entry.
// Records are immutable once built.
type Record struct {
	ID     string
	Name   string
	Domain Domain
	// Fields holds only schema fields, in schema order
	Fields []Field
	// Image is an asset path relative to the assets directory
	Image      string
	HasRules   bool
	SearchBlob string
}

var _ core.Entity = (*Record)(nil)

// GetID returns the record id
func (r *Record) GetID() string {
	return r.ID
}

// GetType returns the record domain
func (r *Record) GetType() string {
	return string(r.Domain)
}

// Field looks up a field by name
func (r *Record) Field(name string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Text returns the named field as a single string. Lists are joined with newlines.
func (r *Record) Text(name string) string {
	f, ok := r.Field(name)
	if !ok {
		return ""
	}
	if f.IsList() {
		return strings.Join(f.List, "\n")
	}
	return f.Text
}
