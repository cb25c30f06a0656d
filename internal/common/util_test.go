package common

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 16 random bytes back every sandbox token ID.
func TestMakeRandHexString_TokenID(t *testing.T) {
	id, err := MakeRandHexString(16)
	require.NoError(t, err)
	assert.Len(t, id, 32)

	raw, err := hex.DecodeString(id)
	require.NoError(t, err)
	assert.Len(t, raw, 16)

	other, err := MakeRandHexString(16)
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestMakeRandHexString_Empty(t *testing.T) {
	id, err := MakeRandHexString(0)
	require.NoError(t, err)
	assert.Empty(t, id)
}

// The device key file holds exactly one AES-256 key.
func TestGenerateRandByteArray_DeviceKey(t *testing.T) {
	const deviceKeySize = 32

	a := GenerateRandByteArray(deviceKeySize)
	b := GenerateRandByteArray(deviceKeySize)
	require.Len(t, a, deviceKeySize)
	require.Len(t, b, deviceKeySize)
	assert.False(t, bytes.Equal(a, b))
	assert.False(t, bytes.Equal(a, make([]byte, deviceKeySize)))
}

func TestWipeByteArray(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{name: "password", in: []byte("calama2024")},
		{name: "device key", in: GenerateRandByteArray(32)},
		{name: "empty", in: []byte{}},
		{name: "nil", in: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := len(tt.in)
			WipeByteArray(tt.in)
			assert.Len(t, tt.in, n)
			assert.Equal(t, make([]byte, n), append([]byte{}, tt.in...))
		})
	}
}
