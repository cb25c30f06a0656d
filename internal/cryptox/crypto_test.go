package cryptox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func secret() []byte {
	return bytes.Repeat([]byte{0x42}, KeySize)
}

func TestDeriveKey_Deterministic(t *testing.T) {
	k1, err := DeriveKey(secret(), "token")
	require.NoError(t, err)
	k2, err := DeriveKey(secret(), "token")
	require.NoError(t, err)

	assert.Len(t, k1, KeySize)
	assert.Equal(t, k1, k2)
}

func TestDeriveKey_InfoSeparatesKeys(t *testing.T) {
	k1, err := DeriveKey(secret(), "token")
	require.NoError(t, err)
	k2, err := DeriveKey(secret(), "other")
	require.NoError(t, err)
	assert.NotEqual(t, k1, k2)
}

func TestDeriveKey_ShortSecret(t *testing.T) {
	_, err := DeriveKey([]byte("short"), "token")
	require.ErrorIs(t, err, ErrKeySize)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key, err := DeriveKey(secret(), "token")
	require.NoError(t, err)

	ct, nonce, err := Seal(key, []byte("eyJhbGciOi..."), []byte("accessToken"))
	require.NoError(t, err)
	assert.NotContains(t, string(ct), "eyJhbGciOi")

	pt, err := Open(key, ct, nonce, []byte("accessToken"))
	require.NoError(t, err)
	assert.Equal(t, "eyJhbGciOi...", string(pt))
}

func TestOpen_WrongAADFails(t *testing.T) {
	key, _ := DeriveKey(secret(), "token")
	ct, nonce, err := Seal(key, []byte("v"), []byte("accessToken"))
	require.NoError(t, err)

	_, err = Open(key, ct, nonce, []byte("refreshToken"))
	require.Error(t, err)
}

func TestOpen_WrongKeyFails(t *testing.T) {
	key, _ := DeriveKey(secret(), "token")
	other, _ := DeriveKey(secret(), "other")
	ct, nonce, err := Seal(key, []byte("v"), nil)
	require.NoError(t, err)

	_, err = Open(other, ct, nonce, nil)
	require.Error(t, err)
}

func TestOpen_BadNonceLength(t *testing.T) {
	key, _ := DeriveKey(secret(), "token")
	_, err := Open(key, []byte("x"), []byte{1, 2}, nil)
	require.ErrorIs(t, err, ErrKeySize)
}

func TestSeal_FreshNonce(t *testing.T) {
	key, _ := DeriveKey(secret(), "token")
	_, n1, err := Seal(key, []byte("v"), nil)
	require.NoError(t, err)
	_, n2, err := Seal(key, []byte("v"), nil)
	require.NoError(t, err)
	assert.NotEqual(t, n1, n2)
}

func TestSeal_InvalidKey(t *testing.T) {
	_, _, err := Seal([]byte("short"), []byte("v"), nil)
	require.Error(t, err)
}
