package storage

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// Sealing errors.
var (
	ErrSecretTooShort = errors.New("storage: encryption key too short (minimum 8 characters)")
	ErrOpenFailed     = errors.New("storage: cannot open sealed value - wrong key or corrupted data")
)

const (
	// MinSecretLength is the minimum length of storage.encryption_key.
	MinSecretLength = 8

	hkdfInfo = "moneytracker/token-store/v1"
)

var hkdfSalt = []byte("moneytracker-token-store")

// Sealer encrypts token values with XChaCha20-Poly1305.
//
// The 32-byte key is derived from a user secret with HKDF-SHA256. Each
// sealed value is nonce || ciphertext || tag, and the storage key is bound
// as additional data so values cannot be swapped between keys.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer derives a sealing key from secret.
func NewSealer(secret string) (*Sealer, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrSecretTooShort
	}

	key := make([]byte, chacha20poly1305.KeySize)
	kdf := hkdf.New(sha256.New, []byte(secret), hkdfSalt, []byte(hkdfInfo))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("storage: derive key: %w", err)
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("storage: init cipher: %w", err)
	}
	return &Sealer{aead: aead}, nil
}

// Seal encrypts value for storage under key. A nil Sealer returns value unchanged.
func (s *Sealer) Seal(key string, value []byte) ([]byte, error) {
	if s == nil {
		return value, nil
	}

	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(value)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("storage: generate nonce: %w", err)
	}
	return s.aead.Seal(nonce, nonce, value, []byte(key)), nil
}

// Open decrypts a value previously sealed under key.
func (s *Sealer) Open(key string, sealed []byte) ([]byte, error) {
	if s == nil {
		return sealed, nil
	}

	ns := s.aead.NonceSize()
	if len(sealed) < ns+s.aead.Overhead() {
		return nil, ErrOpenFailed
	}
	plain, err := s.aead.Open(nil, sealed[:ns], sealed[ns:], []byte(key))
	if err != nil {
		return nil, ErrOpenFailed
	}
	return plain, nil
}
