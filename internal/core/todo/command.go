package todo

import "fmt"

// Tag is the wire discriminant of a Command.
type Tag uint8

const (
	TagInsert Tag = 0
	TagRemove Tag = 1
	TagToggle Tag = 2
)

func (t Tag) String() string {
	switch t {
	case TagInsert:
		return "insert"
	case TagRemove:
		return "remove"
	case TagToggle:
		return "toggle"
	default:
		return fmt.Sprintf("tag(%d)", uint8(t))
	}
}

// Command is one of Insert, Remove or Toggle.
type Command interface {
	Tag() Tag
	sealed()
}

// Insert appends a new item with the next available ID.
type Insert struct {
	Content string
}

// Remove deletes the item with ID. Unknown IDs are ignored.
type Remove struct {
	ID uint64
}

// Toggle flips the completed flag of the item with ID. Unknown IDs are ignored.
type Toggle struct {
	ID uint64
}

func (Insert) Tag() Tag { return TagInsert }
func (Remove) Tag() Tag { return TagRemove }
func (Toggle) Tag() Tag { return TagToggle }

func (Insert) sealed() {}
func (Remove) sealed() {}
func (Toggle) sealed() {}
