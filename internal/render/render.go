// Package render turns normalized records into presenter-agnostic text.
package render

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
)

const (
	// CaptionLimit is the longest text a presenter attaches to an image
	CaptionLimit = 1024
	// ReportLimit is the number of report lines shown before truncating
	ReportLimit = 80

	Bullet   = "• "
	Empty    = "—"
	Ellipsis = "…"
)

// Cards is the default card formatter. It is safe for concurrent use.
type Cards struct {
	labels map[string]string
}

// NewCards builds a formatter with labels for every schema field
func NewCards() *Cards {
	c := &Cards{labels: make(map[string]string)}
	for _, d := range []catalog.Domain{catalog.DomainEvent, catalog.DomainHero, catalog.DomainSkill, catalog.DomainMountSkill} {
		for _, name := range d.Schema() {
			c.labels[name] = Label(name)
		}
	}
	return c
}

// Label turns a field name into a display label: "extra_time" -> "Extra Time"
func Label(name string) string {
	// a Caser carries state, so each call gets its own
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(name, "_", " "))
}

func (c *Cards) label(name string) string {
	if l, ok := c.labels[name]; ok {
		return l
	}
	return Label(name)
}

// Card renders every non-empty field of rec in schema order under its name.
// Rules are left to Rules.
func (c *Cards) Card(rec *catalog.Record) string {
	if rec == nil {
		return ""
	}

	blocks := []string{c.Caption(rec)}
	for _, f := range rec.Fields {
		if f.Empty() || f.Name == "rules" {
			continue
		}
		blocks = append(blocks, c.field(f))
	}
	return strings.Join(blocks, "\n\n")
}

func (c *Cards) field(f catalog.Field) string {
	label := c.label(f.Name)
	if f.IsList() {
		return label + ":\n" + Bullets(f.Values())
	}
	if strings.Contains(f.Text, "\n") {
		return label + ":\n" + f.Text
	}
	return label + ": " + f.Text
}

// Caption is the one-line header shown with an image: the name plus the
// record's class and role, or its type
func (c *Cards) Caption(rec *catalog.Record) string {
	if rec == nil {
		return ""
	}

	var tags []string
	for _, name := range []string{"class", "role", "type"} {
		if v := strings.TrimSpace(rec.Text(name)); v != "" && !strings.Contains(v, "\n") {
			tags = append(tags, v)
		}
	}
	if len(tags) == 0 {
		return rec.Name
	}
	return rec.Name + " " + Empty + " " + strings.Join(tags, " · ")
}

// Rules renders the rules of an event as a bullet list
func (c *Cards) Rules(rec *catalog.Record) string {
	if rec == nil {
		return ""
	}
	body := Empty
	if f, ok := rec.Field("rules"); ok && !f.Empty() {
		body = Bullets(f.Values())
	}
	return rec.Name + " " + Empty + " Rules\n\n" + body
}

// Bullets renders one bullet per non-blank line. Values holding several lines
// contribute one bullet per line.
func Bullets(values []string) string {
	var lines []string
	for _, v := range values {
		for _, line := range strings.Split(v, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, Bullet+line)
			}
		}
	}
	if len(lines) == 0 {
		return Empty
	}
	return strings.Join(lines, "\n")
}

// Clamp cuts text to at most limit characters, ending in an ellipsis when
// anything was removed
func Clamp(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= limit {
		return text
	}

	cut, n := 0, 0
	for i := range text {
		if n == limit-1 {
			cut = i
			break
		}
		n++
	}
	return strings.TrimRight(text[:cut], " \t\n") + Ellipsis
}

// Report renders a titled bullet list of at most limit lines, noting how many
// were left out
func Report(title string, lines []string, limit int) string {
	if limit <= 0 {
		limit = ReportLimit
	}

	var b strings.Builder
	b.WriteString(title)
	for i, line := range lines {
		if i == limit {
			b.WriteString("\n")
			b.WriteString(Ellipsis)
			b.WriteString(" (truncated)")
			break
		}
		b.WriteString("\n")
		b.WriteString(Bullet)
		b.WriteString(line)
	}
	return b.String()
}
