package codec

import (
	"fmt"

	"github.com/colonyops/todoprog/internal/core/todo"
)

// DecodeCommand decodes an instruction payload. The whole buffer must be
// consumed; trailing bytes are an error.
func DecodeCommand(data []byte) (todo.Command, error) {
	r := newReader(data)

	tag, err := r.u8("tag")
	if err != nil {
		return nil, err
	}

	var cmd todo.Command
	switch todo.Tag(tag) {
	case todo.TagInsert:
		content, err := r.text("content")
		if err != nil {
			return nil, err
		}
		cmd = todo.Insert{Content: content}
	case todo.TagRemove:
		id, err := r.u64("id")
		if err != nil {
			return nil, err
		}
		cmd = todo.Remove{ID: id}
	case todo.TagToggle:
		id, err := r.u64("id")
		if err != nil {
			return nil, err
		}
		cmd = todo.Toggle{ID: id}
	default:
		return nil, fmt.Errorf("%w: unknown command tag %d", ErrDecode, tag)
	}

	if n := r.remaining(); n != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after %s command", ErrDecode, n, cmd.Tag())
	}

	return cmd, nil
}

// EncodeCommand returns the instruction payload for cmd.
func EncodeCommand(cmd todo.Command) []byte {
	switch c := cmd.(type) {
	case todo.Insert:
		w := newWriter(sizeU8 + textSize(c.Content))
		w.u8(uint8(todo.TagInsert))
		w.text(c.Content)
		return w.bytes()
	case todo.Remove:
		w := newWriter(sizeU8 + sizeU64)
		w.u8(uint8(todo.TagRemove))
		w.u64(c.ID)
		return w.bytes()
	case todo.Toggle:
		w := newWriter(sizeU8 + sizeU64)
		w.u8(uint8(todo.TagToggle))
		w.u64(c.ID)
		return w.bytes()
	default:
		panic(fmt.Sprintf("codec: unhandled command %T", cmd))
	}
}
