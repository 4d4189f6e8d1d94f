package normalize

import (
	"strings"
)

// BonusSep joins the parts of a structured event bonus
const BonusSep = " | "

var bonusKeys = []string{"type", "value", "scope", "notes"}

func normalizeEvent(d *draft, obj map[string]any) {
	d.id = firstString(obj, "id", "slug")
	d.name = firstString(obj, "name", "title")
	d.image = firstString(obj, "image")

	d.set("description", obj["description"])
	d.set("season", obj["season"])

	if present(obj, "rewards") {
		d.set("rewards", obj["rewards"])
	} else {
		d.set("rewards", obj["rewards_text"])
	}

	if bonus, ok := obj["bonus"].(map[string]any); ok {
		d.setText("bonus", joinObject(bonus, orderedKeys(bonus, bonusKeys), BonusSep))
	} else {
		d.set("bonus", obj["bonus"])
	}

	switch {
	case present(obj, "tips"):
		d.set("tips", obj["tips"])
	case present(obj, "tips_text"):
		d.set("tips", obj["tips_text"])
	default:
		d.set("tips", obj["source"])
	}

	timeObj, _ := obj["time"].(map[string]any)
	d.set("duration", obj["duration"])
	if !d.has("duration") {
		if timeObj != nil {
			d.set("duration", timeObj["duration"])
		} else {
			d.set("duration", obj["time"])
		}
	}

	for _, key := range []string{"extra_time", "extra_time_text"} {
		if !d.has("extra_time") {
			d.set("extra_time", obj[key])
		}
	}
	if !d.has("extra_time") && timeObj != nil {
		d.set("extra_time", timeObj["window"])
	}

	normalizeRules(d, obj)
}

// normalizeRules checks the has_rules flag against the rules text. A rules
// list is itself a declaration; any other disagreement is reported.
func normalizeRules(d *draft, obj map[string]any) {
	var text string
	declaredByList := false
	if list, ok := obj["rules"].([]any); ok {
		text = strings.Join(List(list), "\n")
		declaredByList = text != ""
	} else {
		text = Text(obj["rules"])
	}
	if text == "" {
		text = Text(obj["rules_text"])
	}
	d.setText("rules", text)

	flag, flagSet := false, false
	if raw, ok := obj["has_rules"]; ok && raw != nil {
		b, isBool := raw.(bool)
		if !isBool {
			d.issues.Add("", "has_rules", "must be a boolean")
		}
		flag, flagSet = b, isBool
	}

	switch {
	case flagSet && flag && text == "":
		d.issues.Add("", "has_rules", "has_rules is true but no rules text is present")
	case flagSet && !flag && text != "":
		d.issues.Add("", "has_rules", "has_rules is false but rules text is present")
	case !flagSet && text != "" && !declaredByList:
		d.issues.Add("", "has_rules", "rules text is present but has_rules is not set")
	case flagSet && flag:
		d.rules = true
	case !flagSet && declaredByList:
		d.rules = true
	}
}
