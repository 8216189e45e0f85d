package program

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// PubkeySize is the length of a Pubkey in bytes.
const PubkeySize = 32

// Pubkey identifies a program or an account.
type Pubkey [PubkeySize]byte

// ParsePubkey parses the 64 character hex form produced by Pubkey.String.
func ParsePubkey(s string) (Pubkey, error) {
	var pk Pubkey
	b, err := hex.DecodeString(s)
	if err != nil {
		return pk, fmt.Errorf("parse pubkey: %w", err)
	}
	if len(b) != PubkeySize {
		return pk, fmt.Errorf("parse pubkey: want %d bytes, got %d", PubkeySize, len(b))
	}
	copy(pk[:], b)
	return pk, nil
}

// KeyFromSeed derives a Pubkey from a human readable seed.
func KeyFromSeed(seed string) Pubkey {
	return Pubkey(sha256.Sum256([]byte(seed)))
}

func (pk Pubkey) String() string {
	return hex.EncodeToString(pk[:])
}

// Short returns the first 8 hex characters, for display.
func (pk Pubkey) Short() string {
	return pk.String()[:8]
}

func (pk Pubkey) IsZero() bool {
	return pk == Pubkey{}
}

// MarshalText implements encoding.TextMarshaler.
func (pk Pubkey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (pk *Pubkey) UnmarshalText(b []byte) error {
	parsed, err := ParsePubkey(string(b))
	if err != nil {
		return err
	}
	*pk = parsed
	return nil
}
