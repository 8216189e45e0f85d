package program

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePubkey(t *testing.T) {
	pk := KeyFromSeed("todoprog")

	got, err := ParsePubkey(pk.String())
	require.NoError(t, err)
	assert.Equal(t, pk, got)
	assert.Len(t, pk.String(), 64)
	assert.Equal(t, pk.String()[:8], pk.Short())
}

func TestParsePubkey_Errors(t *testing.T) {
	tests := []string{
		"",
		"zz",
		strings.Repeat("ab", 31),
		strings.Repeat("ab", 33),
	}

	for _, s := range tests {
		_, err := ParsePubkey(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestKeyFromSeed_Deterministic(t *testing.T) {
	assert.Equal(t, KeyFromSeed("a"), KeyFromSeed("a"))
	assert.NotEqual(t, KeyFromSeed("a"), KeyFromSeed("b"))
	assert.False(t, KeyFromSeed("a").IsZero())
	assert.True(t, Pubkey{}.IsZero())
}

func TestPubkey_JSON(t *testing.T) {
	type wrapper struct {
		Owner Pubkey `json:"owner"`
	}
	in := wrapper{Owner: KeyFromSeed("owner")}

	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"owner":"`+in.Owner.String()+`"}`, string(b))

	var out wrapper
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}
