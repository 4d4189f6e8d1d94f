// Package catalog holds the canonical record model shared by the normalizers,
// the repositories and the browser.
package catalog

// Domain is one content category of the catalog
type Domain string

const (
	DomainEvent      Domain = "event"
	DomainHero       Domain = "hero"
	DomainSkill      Domain = "skill"
	DomainMountSkill Domain = "mount_skill"
)

// ListDomains are the domains backed by a single list document. Mount skills
// are stored per mount type instead.
var ListDomains = []Domain{DomainEvent, DomainHero, DomainSkill}

type domainInfo struct {
	code        string
	placeholder string
	label       string
	wrapperKey  string
	schema      []string
}

var domains = map[Domain]domainInfo{
	DomainEvent: {
		code:        "ev",
		placeholder: "Event",
		label:       "Events",
		wrapperKey:  "events",
		schema:      []string{"description", "season", "rewards", "bonus", "tips", "duration", "extra_time", "rules"},
	},
	DomainHero: {
		code:        "hr",
		placeholder: "Hero",
		label:       "Heroes",
		wrapperKey:  "heroes",
		schema:      []string{"season", "specialty", "talents", "skills", "class", "role", "rarity", "faction", "description"},
	},
	DomainSkill: {
		code:        "sk",
		placeholder: "Skill",
		label:       "Skills",
		wrapperKey:  "skills",
		schema:      []string{"type", "season", "probability", "frequency", "effect"},
	},
	DomainMountSkill: {
		code:        "ms",
		placeholder: "Mount Skill",
		label:       "Mount Skills",
		wrapperKey:  "mount_skills",
		schema:      []string{"type", "description"},
	},
}

var domainsByCode = func() map[string]Domain {
	out := make(map[string]Domain, len(domains))
	for d, info := range domains {
		out[info.code] = d
	}
	return out
}()

// Valid reports whether d is a known domain
func (d Domain) Valid() bool {
	_, ok := domains[d]
	return ok
}

// Code returns the two-letter code used inside navigation tokens
func (d Domain) Code() string {
	return domains[d].code
}

// DomainFromCode resolves a token domain code
func DomainFromCode(code string) (Domain, bool) {
	d, ok := domainsByCode[code]
	return d, ok
}

// Placeholder is the display name given to records without one
func (d Domain) Placeholder() string {
	return domains[d].placeholder
}

// Label is the plural display name of the domain
func (d Domain) Label() string {
	return domains[d].label
}

// WrapperKey is the object key a document may wrap its record list under
func (d Domain) WrapperKey() string {
	return domains[d].wrapperKey
}

// SourceName is the document name the domain is loaded from
func (d Domain) SourceName() string {
	return domains[d].wrapperKey + ".json"
}

// Schema returns the declared field names in render order
func (d Domain) Schema() []string {
	schema := domains[d].schema
	out := make([]string, len(schema))
	copy(out, schema)
	return out
}

// HasField reports whether name is declared in the domain schema
func (d Domain) HasField(name string) bool {
	for _, f := range domains[d].schema {
		if f == name {
			return true
		}
	}
	return false
}

// SupportsRules reports whether records of the domain may carry a rules screen
func (d Domain) SupportsRules() bool {
	return d == DomainEvent
}

func (d Domain) String() string {
	return string(d)
}
