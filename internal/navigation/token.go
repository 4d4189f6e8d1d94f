package navigation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

const (
	// MaxTokenBytes bounds an encoded token
	MaxTokenBytes = 64
	// MaxSelectorBytes bounds a record id, mount type or search query
	MaxSelectorBytes = 48

	sep = ":"
	// integer fields never need more digits than this
	maxIntDigits = 9
)

// Action is what a token asks the browser to show
type Action string

const (
	ActionMenu     Action = "menu"
	ActionMounts   Action = "mounts"
	ActionList     Action = "list"
	ActionPage     Action = "page"
	ActionView     Action = "view"
	ActionRules    Action = "rules"
	ActionSearch   Action = "search"
	ActionSlotList Action = "slot_list"
	ActionSlotItem Action = "slot_item"
	ActionSlotNav  Action = "slot_nav"
)

// Direction is the step of a slot_nav token
type Direction string

const (
	DirectionPrev Direction = "prev"
	DirectionNext Direction = "next"
)

// Token is one decoded navigation position. Only the fields its action uses
// are set; every other field is the zero value.
type Token struct {
	Action Action
	Domain catalog.Domain
	// Selector is a record id, a mount type for slot actions, or the search query
	Selector  string
	Page      int
	Slot      int
	Index     int
	Direction Direction
}

type field int

const (
	fieldDomain field = iota
	fieldMountType
	fieldSelector
	fieldPage
	fieldSlot
	fieldIndex
	fieldDirection
)

type layout struct {
	code   string
	fields []field
}

var layouts = map[Action]layout{
	ActionMenu:     {code: "m"},
	ActionMounts:   {code: "t"},
	ActionList:     {code: "l", fields: []field{fieldDomain}},
	ActionPage:     {code: "p", fields: []field{fieldDomain, fieldPage}},
	ActionView:     {code: "v", fields: []field{fieldDomain, fieldSelector}},
	ActionRules:    {code: "r", fields: []field{fieldDomain, fieldSelector}},
	ActionSearch:   {code: "q", fields: []field{fieldDomain, fieldPage, fieldSelector}},
	ActionSlotList: {code: "s", fields: []field{fieldMountType, fieldSlot}},
	ActionSlotItem: {code: "i", fields: []field{fieldMountType, fieldSlot, fieldIndex}},
	ActionSlotNav:  {code: "n", fields: []field{fieldMountType, fieldSlot, fieldIndex, fieldDirection}},
}

var actionsByCode = func() map[string]Action {
	out := make(map[string]Action, len(layouts))
	for a, l := range layouts {
		out[l.code] = a
	}
	return out
}()

// impliedDomain is the domain of actions that do not carry one on the wire
func impliedDomain(a Action) catalog.Domain {
	switch a {
	case ActionMounts, ActionSlotList, ActionSlotItem, ActionSlotNav:
		return catalog.DomainMountSkill
	}
	return ""
}

func (l layout) uses(f field) bool {
	for _, have := range l.fields {
		if have == f {
			return true
		}
	}
	return false
}

// Encode renders a token. It fails with INVALID_TOKEN for any state Decode
// would not accept back.
func Encode(t Token) (string, error) {
	l, err := t.validate()
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(l.fields)+1)
	parts = append(parts, l.code)
	for _, f := range l.fields {
		switch f {
		case fieldDomain:
			parts = append(parts, t.Domain.Code())
		case fieldMountType, fieldSelector:
			parts = append(parts, t.Selector)
		case fieldPage:
			parts = append(parts, strconv.Itoa(t.Page))
		case fieldSlot:
			parts = append(parts, strconv.Itoa(t.Slot))
		case fieldIndex:
			parts = append(parts, strconv.Itoa(t.Index))
		case fieldDirection:
			parts = append(parts, string(t.Direction))
		}
	}

	out := strings.Join(parts, sep)
	if len(out) > MaxTokenBytes {
		return "", errors.InvalidTokenf("token is %d bytes, limit is %d", len(out), MaxTokenBytes)
	}
	return out, nil
}

// MustEncode is Encode for tokens known to be valid. It panics otherwise.
func MustEncode(t Token) string {
	s, err := Encode(t)
	if err != nil {
		panic(fmt.Sprintf("navigation: %v", err))
	}
	return s
}

// Decode parses a token produced by Encode
func Decode(s string) (Token, error) {
	if s == "" {
		return Token{}, errors.InvalidToken("token is empty")
	}
	if len(s) > MaxTokenBytes {
		return Token{}, errors.InvalidTokenf("token is %d bytes, limit is %d", len(s), MaxTokenBytes)
	}
	if !utf8.ValidString(s) {
		return Token{}, errors.InvalidToken("token is not valid UTF-8")
	}

	code, _, _ := strings.Cut(s, sep)
	action, ok := actionsByCode[code]
	if !ok {
		return Token{}, errors.InvalidTokenf("unknown action code %q", code)
	}
	l := layouts[action]

	var parts []string
	if action == ActionSearch {
		// the query is last and may itself contain separators
		parts = strings.SplitN(s, sep, len(l.fields)+1)
	} else {
		parts = strings.Split(s, sep)
	}
	if len(parts) != len(l.fields)+1 {
		return Token{}, errors.InvalidTokenf("action %s takes %d fields, got %d", action, len(l.fields), len(parts)-1)
	}

	t := Token{Action: action, Domain: impliedDomain(action)}
	for i, f := range l.fields {
		raw := parts[i+1]
		var err error
		switch f {
		case fieldDomain:
			d, known := catalog.DomainFromCode(raw)
			if !known {
				return Token{}, errors.InvalidTokenf("unknown domain code %q", raw)
			}
			t.Domain = d
		case fieldMountType, fieldSelector:
			t.Selector = raw
		case fieldPage:
			t.Page, err = parseCount(raw)
		case fieldSlot:
			t.Slot, err = parseCount(raw)
		case fieldIndex:
			t.Index, err = parseCount(raw)
		case fieldDirection:
			t.Direction = Direction(raw)
		}
		if err != nil {
			return Token{}, err
		}
	}

	if _, err := t.validate(); err != nil {
		return Token{}, err
	}
	return t, nil
}

// validate checks that the token holds exactly the fields its action uses
func (t Token) validate() (layout, error) {
	l, ok := layouts[t.Action]
	if !ok {
		return layout{}, errors.InvalidTokenf("unknown action %q", t.Action)
	}

	switch {
	case l.uses(fieldDomain):
		if !isListDomain(t.Domain) {
			return layout{}, errors.InvalidTokenf("domain %q cannot be browsed as a list", t.Domain)
		}
		if t.Action == ActionRules && !t.Domain.SupportsRules() {
			return layout{}, errors.InvalidTokenf("domain %s has no rules", t.Domain)
		}
	case t.Domain != impliedDomain(t.Action):
		return layout{}, errors.InvalidTokenf("action %s does not take domain %q", t.Action, t.Domain)
	}

	if l.uses(fieldMountType) {
		if !catalog.MountType(t.Selector).Valid() {
			return layout{}, errors.InvalidTokenf("unknown mount type %q", t.Selector)
		}
	} else if l.uses(fieldSelector) {
		if err := validateSelector(t.Selector, t.Action == ActionSearch); err != nil {
			return layout{}, err
		}
	} else if t.Selector != "" {
		return layout{}, errors.InvalidTokenf("action %s does not take a selector", t.Action)
	}

	if err := checkCount("page", t.Page, l.uses(fieldPage)); err != nil {
		return layout{}, err
	}
	if err := checkCount("index", t.Index, l.uses(fieldIndex)); err != nil {
		return layout{}, err
	}

	if l.uses(fieldSlot) {
		if !catalog.ValidSlot(t.Slot) {
			return layout{}, errors.InvalidTokenf("slot must be 1 or 2, got %d", t.Slot)
		}
	} else if t.Slot != 0 {
		return layout{}, errors.InvalidTokenf("action %s does not take a slot", t.Action)
	}

	if l.uses(fieldDirection) {
		if t.Direction != DirectionPrev && t.Direction != DirectionNext {
			return layout{}, errors.InvalidTokenf("direction must be prev or next, got %q", t.Direction)
		}
	} else if t.Direction != "" {
		return layout{}, errors.InvalidTokenf("action %s does not take a direction", t.Action)
	}

	return l, nil
}

func isListDomain(d catalog.Domain) bool {
	for _, have := range catalog.ListDomains {
		if have == d {
			return true
		}
	}
	return false
}

func validateSelector(s string, allowSep bool) error {
	switch {
	case s == "":
		return errors.InvalidToken("selector is empty")
	case len(s) > MaxSelectorBytes:
		return errors.InvalidTokenf("selector is %d bytes, limit is %d", len(s), MaxSelectorBytes)
	case !utf8.ValidString(s):
		return errors.InvalidToken("selector is not valid UTF-8")
	case !allowSep && strings.Contains(s, sep):
		return errors.InvalidTokenf("selector %q contains %q", s, sep)
	}
	return nil
}

func checkCount(name string, v int, used bool) error {
	if !used {
		if v != 0 {
			return errors.InvalidTokenf("%s is not used by this action", name)
		}
		return nil
	}
	if v < 0 {
		return errors.InvalidTokenf("%s must not be negative, got %d", name, v)
	}
	if len(strconv.Itoa(v)) > maxIntDigits {
		return errors.InvalidTokenf("%s %d is too large", name, v)
	}
	return nil
}

// parseCount accepts canonical non-negative integers only: no sign, no
// leading zeros, no more than maxIntDigits digits
func parseCount(s string) (int, error) {
	if s == "" || len(s) > maxIntDigits {
		return 0, errors.InvalidTokenf("bad number %q", s)
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, errors.InvalidTokenf("bad number %q", s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, errors.InvalidTokenf("bad number %q", s)
		}
	}
	return strconv.Atoi(s)
}

// ClipQuery trims a search query and cuts it to MaxSelectorBytes on a rune
// boundary so it always fits in a search token
func ClipQuery(q string) string {
	q = strings.TrimSpace(q)
	if len(q) <= MaxSelectorBytes {
		return q
	}
	cut := MaxSelectorBytes
	for cut > 0 && !utf8.RuneStart(q[cut]) {
		cut--
	}
	return strings.TrimSpace(q[:cut])
}
