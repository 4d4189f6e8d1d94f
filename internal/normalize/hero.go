package normalize

var (
	heroSkillKeys = []string{"name", "type", "description"}
	awakeningKeys = []string{"name", "description"}
)

func normalizeHero(d *draft, obj map[string]any) {
	d.id = firstString(obj, "slug", "id")
	d.name = firstString(obj, "name", "title")
	d.image = firstString(obj, "image")

	d.set("season", obj["season"])
	d.set("specialty", obj["specialty"])
	d.set("talents", obj["talents"])
	d.set("skills", heroSkills(obj["skills"]))

	if present(obj, "class") {
		d.set("class", obj["class"])
	} else {
		d.set("class", obj["type"])
	}

	for _, f := range []string{"role", "rarity", "faction", "description"} {
		d.set(f, obj[f])
	}
}

// heroSkills flattens hero skill objects to "name — type — description"
// followed by any other sub-parts, each followed by its awakening line when
// one is present.
func heroSkills(v any) any {
	items, ok := v.([]any)
	if !ok {
		return v
	}

	out := make([]any, 0, len(items))
	for _, item := range items {
		skill, isObj := item.(map[string]any)
		if !isObj {
			out = append(out, item)
			continue
		}
		out = append(out, joinObject(skill, orderedKeys(skill, heroSkillKeys, "awakening"), PartSep))
		if awakening, hasAwakening := skill["awakening"].(map[string]any); hasAwakening {
			if line := joinObject(awakening, orderedKeys(awakening, awakeningKeys), PartSep); line != "" {
				out = append(out, "Awakening: "+line)
			}
		}
	}
	return out
}
