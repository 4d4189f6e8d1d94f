package browser

import (
	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/navigation"
)

const (
	labelPrev  = "⭠ Prev"
	labelNext  = "Next ⭢"
	labelMenu  = "Menu"
	labelRules = "📜 Rules"
	labelBack  = "Back to list"
	labelTypes = "Mount types"
)

// add appends a choice unless its token cannot be encoded
func add(row []Choice, label string, t navigation.Token) []Choice {
	encoded, err := navigation.Encode(t)
	if err != nil {
		return row
	}
	return append(row, Choice{Label: label, Token: encoded})
}

// addRow appends row unless it is empty
func addRow(rows [][]Choice, row []Choice) [][]Choice {
	if len(row) == 0 {
		return rows
	}
	return append(rows, row)
}

func menuRow() []Choice {
	return add(nil, labelMenu, navigation.MenuToken())
}

// recordRows offers one view choice per record
func recordRows(d catalog.Domain, records []*catalog.Record) [][]Choice {
	rows := make([][]Choice, 0, len(records))
	for _, rec := range records {
		rows = addRow(rows, add(nil, rec.Name, navigation.ViewToken(d, rec.ID)))
	}
	return rows
}

// pageRow offers prev/next page choices. From a page past the end, prev
// jumps back to the last page.
func pageRow[T any](w navigation.Window[T], size int, page func(int) navigation.Token) []Choice {
	var row []Choice
	if w.HasPrev {
		prev := w.Page - 1
		if last := navigation.PageCount(w.Total, size) - 1; prev > last {
			prev = max(last, 0)
		}
		row = add(row, labelPrev, page(prev))
	}
	if w.HasNext {
		row = add(row, labelNext, page(w.Page+1))
	}
	return row
}
