// Package cryptox seals short secrets, such as the bearer token, for storage
// at rest. Keys are derived from a passphrase with Argon2id and secrets are
// encrypted with AES-256-GCM.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	KeySize  = 32
	SaltSize = 16
)

// ErrUnsealFailed is returned when a sealed value is malformed or was sealed
// with a different key.
var ErrUnsealFailed = errors.New("unable to unseal value")

// DeriveKey stretches passphrase into a KeySize key. The same passphrase and
// salt always give the same key.
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, KeySize)
}

// NewSalt returns SaltSize random bytes.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext with key under a fresh random nonce and returns
// base64(nonce || ciphertext).
func Seal(plaintext, key []byte) (string, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	out := aesgcm.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(out), nil
}

// Open reverses Seal.
func Open(sealed string, key []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsealFailed, err)
	}
	n := aesgcm.NonceSize()
	if len(raw) < n {
		return nil, fmt.Errorf("%w: value too short", ErrUnsealFailed)
	}

	plaintext, err := aesgcm.Open(nil, raw[:n], raw[n:], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsealFailed, err)
	}
	return plaintext, nil
}
