package catalog

// MountType names a unit type that owns a mount skill set
type MountType string

const (
	MountTypeSpears   MountType = "spears"
	MountTypeInfantry MountType = "infantry"
	MountTypeArchers  MountType = "archers"
)

// MountTypes lists every mount type in menu order
var MountTypes = []MountType{MountTypeSpears, MountTypeInfantry, MountTypeArchers}

// SlotCount is the number of skill slots per mount type
const SlotCount = 2

// Valid reports whether m is a known mount type
func (m MountType) Valid() bool {
	switch m {
	case MountTypeSpears, MountTypeInfantry, MountTypeArchers:
		return true
	}
	return false
}

// SourceName is the document name the set is loaded from
func (m MountType) SourceName() string {
	return string(m) + ".json"
}

func (m MountType) String() string {
	return string(m)
}

// ValidSlot reports whether n names a slot
func ValidSlot(n int) bool {
	return n >= 1 && n <= SlotCount
}

// MountSkillSet holds the two ordered skill slots of one mount type
type MountSkillSet struct {
	MountType MountType
	Slot1     []*Record
	Slot2     []*Record
}

// Slot returns slot n (1 or 2), or nil for an unknown slot
func (s *MountSkillSet) Slot(n int) []*Record {
	switch n {
	case 1:
		return s.Slot1
	case 2:
		return s.Slot2
	}
	return nil
}
