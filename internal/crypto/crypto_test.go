package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCipher(t *testing.T) *Cipher {
	t.Helper()
	c, err := NewCipher(bytes.Repeat([]byte("s"), 32), bytes.Repeat([]byte("i"), 32))
	require.NoError(t, err)
	return c
}

func TestSealOpenRoundTrip(t *testing.T) {
	c := testCipher(t)
	sealed, err := c.Seal("a quiet day, nothing more")
	require.NoError(t, err)
	assert.NotEqual(t, "a quiet day, nothing more", sealed)

	opened, err := c.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "a quiet day, nothing more", opened)
}

func TestEmptyStringsPassThrough(t *testing.T) {
	c := testCipher(t)
	sealed, err := c.Seal("")
	require.NoError(t, err)
	assert.Empty(t, sealed)
	opened, err := c.Open("")
	require.NoError(t, err)
	assert.Empty(t, opened)
}

func TestBlindIndexIsDeterministic(t *testing.T) {
	c := testCipher(t)
	assert.Equal(t, c.BlindIndex("me@example.com"), c.BlindIndex("me@example.com"))
	assert.NotEqual(t, c.BlindIndex("me@example.com"), c.BlindIndex("you@example.com"))
}

func TestKeySizesAreEnforced(t *testing.T) {
	_, err := NewCipher([]byte("short"), bytes.Repeat([]byte("i"), 32))
	assert.Error(t, err)
	_, err = NewCipher(bytes.Repeat([]byte("s"), 32), []byte("short"))
	assert.Error(t, err)
}

func TestOpenRejectsGarbage(t *testing.T) {
	c := testCipher(t)
	_, err := c.Open("AAAA")
	assert.Error(t, err)
}
