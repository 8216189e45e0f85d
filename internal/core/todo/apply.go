package todo

import (
	"fmt"
	"slices"
)

// Outcome describes what Apply did to a list.
type Outcome struct {
	// Applied is false when the command targeted an ID that does not exist.
	Applied bool
	// ID is the inserted ID, or the ID the command targeted.
	ID uint64
}

// Apply returns the list that results from running cmd against l.
//
// The input list is never modified. Remove and Toggle for an ID that is not
// present are deliberate no-ops so that retried commands are harmless; the
// returned list is then equal to l and Outcome.Applied is false.
func Apply(l List, cmd Command) (List, Outcome) {
	switch c := cmd.(type) {
	case Insert:
		return insert(l, c.Content)
	case Remove:
		return remove(l, c.ID)
	case Toggle:
		return toggle(l, c.ID)
	default:
		panic(fmt.Sprintf("todo: unhandled command %T", cmd))
	}
}

func insert(l List, content string) (List, Outcome) {
	id := l.LastID + 1

	items := make([]Item, len(l.Items), len(l.Items)+1)
	copy(items, l.Items)
	items = append(items, Item{ID: id, Content: content})

	return List{Items: items, LastID: id}, Outcome{Applied: true, ID: id}
}

func remove(l List, id uint64) (List, Outcome) {
	i := l.index(id)
	if i < 0 {
		return l, Outcome{ID: id}
	}

	items := slices.Delete(slices.Clone(l.Items), i, i+1)
	return List{Items: items, LastID: l.LastID}, Outcome{Applied: true, ID: id}
}

func toggle(l List, id uint64) (List, Outcome) {
	i := l.index(id)
	if i < 0 {
		return l, Outcome{ID: id}
	}

	items := slices.Clone(l.Items)
	items[i].Completed = !items[i].Completed
	return List{Items: items, LastID: l.LastID}, Outcome{Applied: true, ID: id}
}
