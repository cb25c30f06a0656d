// Package cryptox wraps the AES-GCM and HKDF primitives used to keep the
// session tokens encrypted at rest.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// KeySize is the length of every derived AES-256 key.
const KeySize = 32

var ErrKeySize = errors.New("invalid key size")

// DeriveKey expands a device secret into a purpose-bound AES-256 key.
// The same secret and info always yield the same key.
func DeriveKey(secret []byte, info string) ([]byte, error) {
	if len(secret) < KeySize {
		return nil, ErrKeySize
	}
	key := make([]byte, KeySize)
	r := hkdf.New(sha256.New, secret, nil, []byte(info))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("hkdf: %w", err)
	}
	return key, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext with a fresh random nonce. aad is authenticated
// but not encrypted; the storage layer passes the record key so a value
// cannot be swapped under another key.
func Seal(key, plaintext, aad []byte) (ciphertext, nonce []byte, err error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce = make([]byte, aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}

	return aesgcm.Seal(nil, nonce, plaintext, aad), nonce, nil
}

// Open reverses Seal. It fails if the key, nonce, aad or ciphertext differ.
func Open(key, ciphertext, nonce, aad []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aesgcm.NonceSize() {
		return nil, fmt.Errorf("nonce length %d: %w", len(nonce), ErrKeySize)
	}
	return aesgcm.Open(nil, nonce, ciphertext, aad)
}
