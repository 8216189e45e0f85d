// Package codec implements the fixed binary layout used for instructions and
// for the task list stored in an account.
//
// All integers are little-endian. Text is a u32 byte length followed by UTF-8
// bytes. Booleans are a single byte that must be 0 or 1.
//
//	command: tag u8 | payload
//	  0 insert  content text
//	  1 remove  id u64
//	  2 toggle  id u64
//
//	list:    count u64 | count * (id u64 | content text | completed u8) | last_id u64
package codec

import "errors"

var (
	// ErrDecode is returned for truncated or malformed input.
	ErrDecode = errors.New("decode error")
	// ErrBufferTooSmall is returned when an encoded list does not fit its destination.
	ErrBufferTooSmall = errors.New("buffer too small")
)

const (
	sizeU8  = 1
	sizeU32 = 4
	sizeU64 = 8

	// minItemSize is the encoded size of an item with empty content.
	minItemSize = sizeU64 + sizeU32 + sizeU8
)
