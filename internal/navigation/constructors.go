package navigation

import "github.com/KirkDiggler/rpg-codex/internal/entities/catalog"

func MenuToken() Token {
	return Token{Action: ActionMenu}
}

func MountsToken() Token {
	return Token{Action: ActionMounts, Domain: catalog.DomainMountSkill}
}

func ListToken(d catalog.Domain) Token {
	return Token{Action: ActionList, Domain: d}
}

func PageToken(d catalog.Domain, page int) Token {
	return Token{Action: ActionPage, Domain: d, Page: page}
}

func ViewToken(d catalog.Domain, id string) Token {
	return Token{Action: ActionView, Domain: d, Selector: id}
}

func RulesToken(d catalog.Domain, id string) Token {
	return Token{Action: ActionRules, Domain: d, Selector: id}
}

// SearchToken clips the query with ClipQuery so the token always encodes
func SearchToken(d catalog.Domain, page int, query string) Token {
	return Token{Action: ActionSearch, Domain: d, Page: page, Selector: ClipQuery(query)}
}

func SlotListToken(m catalog.MountType, slot int) Token {
	return Token{Action: ActionSlotList, Domain: catalog.DomainMountSkill, Selector: string(m), Slot: slot}
}

func SlotItemToken(m catalog.MountType, slot, index int) Token {
	return Token{Action: ActionSlotItem, Domain: catalog.DomainMountSkill, Selector: string(m), Slot: slot, Index: index}
}

func SlotNavToken(m catalog.MountType, slot, index int, dir Direction) Token {
	return Token{
		Action:    ActionSlotNav,
		Domain:    catalog.DomainMountSkill,
		Selector:  string(m),
		Slot:      slot,
		Index:     index,
		Direction: dir,
	}
}

// MountType returns the selector of a slot token as a mount type
func (t Token) MountType() catalog.MountType {
	return catalog.MountType(t.Selector)
}

// String renders the token for logs; invalid tokens render as "<invalid>"
func (t Token) String() string {
	s, err := Encode(t)
	if err != nil {
		return "<invalid>"
	}
	return s
}
