// Package todo defines the task list record and the mutations that can be applied to it.
package todo

// Item is a single task stored in a List.
type Item struct {
	ID        uint64 `json:"id"`
	Content   string `json:"content"`
	Completed bool   `json:"completed"`
}

// List is the full persisted state of one storage account.
//
// Items are kept in insertion order. LastID is the highest ID ever assigned
// and never decreases, so IDs are not reused after a removal.
type List struct {
	Items  []Item `json:"items"`
	LastID uint64 `json:"last_id"`
}

// Empty returns the list a fresh storage account starts with.
func Empty() List {
	return List{Items: []Item{}}
}

// Find returns the first item with the given ID.
func (l List) Find(id uint64) (Item, bool) {
	i := l.index(id)
	if i < 0 {
		return Item{}, false
	}
	return l.Items[i], true
}

// Counts returns the number of completed and pending items.
func (l List) Counts() (done, pending int) {
	for _, it := range l.Items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return done, pending
}

func (l List) index(id uint64) int {
	for i, it := range l.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
