// Package password derives and validates PBKDF2 password hashes.
//
// Derivation is PBKDF2-HMAC-SHA256 with a 32-byte output and a fixed round
// count, matching the persisted hashes this toolkit exchanges.
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the salt length in bytes.
	SaltSize = 32

	// KeySize is the derived key length in bytes.
	KeySize = 32

	// Rounds is the PBKDF2 iteration count.
	Rounds = 4096
)

// ErrRandom is returned when the system entropy source fails.
var ErrRandom = errors.New("rng failure")

// embeddedSalt is the fixed salt shipped with the toolkit for deployments
// that exchange password hashes without a per-user salt.
var embeddedSalt = Salt{
	0xd0, 0xa2, 0x40, 0x41, 0x73, 0xba, 0xc7, 0x22,
	0xb2, 0x92, 0x82, 0x65, 0x2f, 0x2c, 0x45, 0x7b,
	0x57, 0x32, 0x61, 0xe3, 0xc8, 0x70, 0x1b, 0x90,
	0x8b, 0xb0, 0xbd, 0x3a, 0xda, 0x3d, 0x7f, 0x2d,
}

// Salt seeds a password derivation.
type Salt [SaltSize]byte

// Embedded returns the fixed built-in salt.
func Embedded() Salt {
	return embeddedSalt
}

// Random generates a fresh random salt.
func Random() (Salt, error) {
	var s Salt
	if _, err := rand.Read(s[:]); err != nil {
		return s, fmt.Errorf("%w: %w", ErrRandom, err)
	}
	return s, nil
}

// FromSlice copies a salt from a slice of exactly SaltSize bytes.
func FromSlice(from []byte) (Salt, error) {
	var s Salt
	if len(from) != SaltSize {
		return s, fmt.Errorf("bad length: expected %d, got %d", SaltSize, len(from))
	}
	copy(s[:], from)
	return s, nil
}

// Zero returns the all-zero salt.
func Zero() Salt {
	return Salt{}
}

// Password is a derived password hash.
type Password struct {
	derived [KeySize]byte
}

// Derive hashes a password string with the given salt.
func Derive(secret string, salt Salt) *Password {
	var p Password
	key := pbkdf2.Key([]byte(secret), salt[:], Rounds, KeySize, sha256.New)
	copy(p.derived[:], key)
	return &p
}

// Validate reports whether secret derives to this hash under the given
// salt. The comparison is constant-time.
func (p *Password) Validate(secret string, salt Salt) bool {
	other := Derive(secret, salt)
	return subtle.ConstantTimeCompare(p.derived[:], other.derived[:]) == 1
}

// Bytes returns the derived key material.
func (p *Password) Bytes() []byte {
	return p.derived[:]
}

func (p *Password) String() string {
	return hex.EncodeToString(p.derived[:])
}
