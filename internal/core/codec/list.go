package codec

import (
	"fmt"

	"github.com/colonyops/todoprog/internal/core/todo"
)

// DecodeList decodes the task list stored in an account.
//
// A zero-length buffer is a fresh account and decodes to the empty list.
// Bytes following the encoded list are padding and are ignored.
func DecodeList(data []byte) (todo.List, error) {
	if len(data) == 0 {
		return todo.Empty(), nil
	}

	r := newReader(data)

	count, err := r.u64("item count")
	if err != nil {
		return todo.List{}, err
	}
	if count > uint64(r.remaining()/minItemSize) {
		return todo.List{}, fmt.Errorf("%w: item count %d cannot fit in %d remaining bytes", ErrDecode, count, r.remaining())
	}

	items := make([]todo.Item, 0, count)
	for i := uint64(0); i < count; i++ {
		it, err := decodeItem(r)
		if err != nil {
			return todo.List{}, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, it)
	}

	lastID, err := r.u64("last id")
	if err != nil {
		return todo.List{}, err
	}

	return todo.List{Items: items, LastID: lastID}, nil
}

func decodeItem(r *reader) (todo.Item, error) {
	id, err := r.u64("id")
	if err != nil {
		return todo.Item{}, err
	}
	content, err := r.text("content")
	if err != nil {
		return todo.Item{}, err
	}
	completed, err := r.bool("completed")
	if err != nil {
		return todo.Item{}, err
	}
	return todo.Item{ID: id, Content: content, Completed: completed}, nil
}

// EncodedSize returns the number of bytes EncodeList produces for l.
func EncodedSize(l todo.List) int {
	n := sizeU64 + sizeU64
	for _, it := range l.Items {
		n += sizeU64 + textSize(it.Content) + sizeU8
	}
	return n
}

// EncodeList returns the encoded form of l.
func EncodeList(l todo.List) []byte {
	w := newWriter(EncodedSize(l))
	w.u64(uint64(len(l.Items)))
	for _, it := range l.Items {
		w.u64(it.ID)
		w.text(it.Content)
		w.bool(it.Completed)
	}
	w.u64(l.LastID)
	return w.bytes()
}

// WriteList overwrites dst with the encoded form of l and zeroes the rest of
// dst. When the encoding does not fit dst is left untouched and
// ErrBufferTooSmall is returned.
func WriteList(l todo.List, dst []byte) error {
	if size := EncodedSize(l); size > len(dst) {
		return fmt.Errorf("%w: list needs %d bytes, account holds %d", ErrBufferTooSmall, size, len(dst))
	}

	n := copy(dst, EncodeList(l))
	clear(dst[n:])
	return nil
}
