package navigation

// Neighbors are the indexes next to a position in a list
type Neighbors struct {
	Prev    int
	HasPrev bool
	Next    int
	HasNext bool
}

// Adjacent reports the neighbors of index. An index outside items has none.
func Adjacent[T any](items []T, index int) Neighbors {
	if index < 0 || index >= len(items) {
		return Neighbors{}
	}

	var n Neighbors
	if index > 0 {
		n.Prev, n.HasPrev = index-1, true
	}
	if index < len(items)-1 {
		n.Next, n.HasNext = index+1, true
	}
	return n
}

// Step moves index one position in dir. It reports false at either end.
func Step[T any](items []T, index int, dir Direction) (int, bool) {
	n := Adjacent(items, index)
	switch dir {
	case DirectionPrev:
		return n.Prev, n.HasPrev
	case DirectionNext:
		return n.Next, n.HasNext
	}
	return 0, false
}

// At returns items[index] when it exists
func At[T any](items []T, index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(items) {
		return zero, false
	}
	return items[index], true
}
