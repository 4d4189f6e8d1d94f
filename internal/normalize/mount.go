package normalize

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

var mountImagePattern = regexp.MustCompile(`^(spears|infantry|archers)/[a-z0-9_.\-]+\.(png|jpg|jpeg)$`)

var mountSkillRequired = []string{"id", "name", "type", "description", "image"}

// MountOptions tunes mount document validation
type MountOptions struct {
	// AllowCrossSlotDuplicates permits the same id in slot1 and slot2
	AllowCrossSlotDuplicates bool
}

// MountDocument strictly validates and normalizes the skill document of one
// mount type. Every problem is collected; any problem fails the document
// with a SchemaViolation carrying all of them.
func MountDocument(mountType catalog.MountType, source string, data []byte, opts MountOptions) (*catalog.MountSkillSet, error) {
	doc, err := Decode(source, data)
	if err != nil {
		return nil, err
	}

	var issues errors.IssueList
	obj, ok := doc.(map[string]any)
	if !ok {
		issues.Add(source, "", "document must be an object")
		return nil, issues.Err(fmt.Sprintf("%s failed validation", source))
	}

	switch declared, isString := obj["mount_type"].(string); {
	case obj["mount_type"] == nil:
		issues.Add(source, "mount_type", "field required")
	case !isString:
		issues.Add(source, "mount_type", "must be a string")
	case catalog.MountType(declared) != mountType:
		issues.Addf(source, "mount_type", "expected '%s', got '%s'", mountType, declared)
	}

	set := &catalog.MountSkillSet{MountType: mountType}
	slotIDs := make([]map[string]bool, catalog.SlotCount)
	for n := 1; n <= catalog.SlotCount; n++ {
		records, ids := mountSlot(&issues, mountType, source, n, obj)
		slotIDs[n-1] = ids
		switch n {
		case 1:
			set.Slot1 = records
		case 2:
			set.Slot2 = records
		}
	}

	if !opts.AllowCrossSlotDuplicates {
		var shared []string
		for id := range slotIDs[0] {
			if slotIDs[1][id] {
				shared = append(shared, id)
			}
		}
		if len(shared) > 0 {
			sort.Strings(shared)
			issues.Addf(source, "", "duplicate ids across slots: %s", strings.Join(shared, ", "))
		}
	}

	if err := issues.Err(fmt.Sprintf("%s failed validation", source)); err != nil {
		return nil, err
	}
	return set, nil
}

func mountSlot(issues *errors.IssueList, mountType catalog.MountType, source string, n int, obj map[string]any) ([]*catalog.Record, map[string]bool) {
	slotName := fmt.Sprintf("slot%d", n)
	ids := make(map[string]bool)

	raw, ok := obj[slotName]
	if !ok || raw == nil {
		issues.Add(source, slotName, "field required")
		return nil, ids
	}
	entries, ok := raw.([]any)
	if !ok {
		issues.Add(source, slotName, "must be a list")
		return nil, ids
	}

	records := make([]*catalog.Record, 0, len(entries))
	for i, entry := range entries {
		path := fmt.Sprintf("%s[%d]", slotName, i)
		skill, isObj := entry.(map[string]any)
		if !isObj {
			issues.Add(source, path, "must be an object")
			continue
		}

		values := make(map[string]string, len(mountSkillRequired))
		for _, key := range mountSkillRequired {
			v, present := skill[key]
			s, isString := v.(string)
			switch {
			case !present || v == nil:
				issues.Add(source, path+"."+key, "field required")
			case !isString:
				issues.Add(source, path+"."+key, "must be a string")
			case s == "":
				issues.Add(source, path+"."+key, "must not be empty")
			default:
				values[key] = s
			}
		}

		id := values["id"]
		if image, hasImage := values["image"]; hasImage {
			if !mountImagePattern.MatchString(image) {
				issues.Addf(source, path+".image", "%q does not match %s", image, mountImagePattern.String())
			}
			if prefix, _, _ := strings.Cut(image, "/"); prefix != string(mountType) {
				issues.Addf(source, path+".image", "[%s:%s] prefix '%s' != '%s'", slotName, id, prefix, mountType)
			}
		}

		if id != "" {
			if ids[id] {
				issues.Addf(source, path+".id", "duplicate skill id in slot: %s", id)
			}
			ids[id] = true
		}

		rec, _ := Normalize(catalog.DomainMountSkill, skill)
		records = append(records, rec)
	}

	return records, ids
}
