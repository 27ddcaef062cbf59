package rsakey

import (
	"bytes"
	"crypto/rsa"
	"math/big"
)

// PublicKey is a container for the public RSA key components. It owns one
// contiguous byte buffer holding the component bytes back to back, described
// by a PublicOffsetGroup; component accessors return sub-slices of that
// buffer.
//
// The container invariant len(data) == offsets.BodyLen() holds for every
// constructed value; malformed input is rejected before construction.
type PublicKey struct {
	data    []byte
	offsets PublicOffsetGroup
	starts  PublicStarts
}

// NewPublicKey assembles a container from raw component bytes. The slices
// must hold the canonical unsigned big-endian encoding of each component
// (no leading zero padding); their contents are copied.
func NewPublicKey(n, e []byte) *PublicKey {
	data := make([]byte, 0, len(n)+len(e))
	data = append(data, n...)
	data = append(data, e...)

	offsets := PublicOffsetGroup{
		N: uint64(len(n)),
		E: uint64(len(e)),
	}
	return &PublicKey{
		data:    data,
		offsets: offsets,
		starts:  offsets.Starts(),
	}
}

// PublicKeyFromCrypto extracts the component bytes of an *rsa.PublicKey into
// a new container.
func PublicKeyFromCrypto(key *rsa.PublicKey) (*PublicKey, error) {
	if key == nil || key.N == nil {
		return nil, ErrKey
	}
	e := big.NewInt(int64(key.E))
	return NewPublicKey(key.N.Bytes(), e.Bytes()), nil
}

// Raw implements PublicComponents.
func (k *PublicKey) Raw() []byte {
	return k.data
}

// N returns the modulus bytes as a view into the container.
func (k *PublicKey) N() []byte {
	return k.data[k.starts.N : k.starts.N+k.offsets.N]
}

// E returns the public exponent bytes as a view into the container.
func (k *PublicKey) E() []byte {
	return k.data[k.starts.E : k.starts.E+k.offsets.E]
}

// Offsets returns the container's offset group.
func (k *PublicKey) Offsets() PublicOffsetGroup {
	return k.offsets
}

// Len returns the length of the component body only, excluding the header.
func (k *PublicKey) Len() int {
	return len(k.data)
}

// RSAPublic implements PublicKeySource by rebuilding the crypto/rsa key from
// the stored components.
func (k *PublicKey) RSAPublic() (*rsa.PublicKey, error) {
	e, err := exponentInt(k.E())
	if err != nil {
		return nil, err
	}
	n := bigInt(k.N())
	if n.Sign() == 0 || e == 0 {
		return nil, ErrKey
	}
	return &rsa.PublicKey{N: n, E: e}, nil
}

// CheckKey reports whether the stored components form a usable public key.
func (k *PublicKey) CheckKey() bool {
	_, err := k.RSAPublic()
	return err == nil
}

// Equal reports whether two containers hold identical component bytes and
// offsets.
func (k *PublicKey) Equal(other *PublicKey) bool {
	if other == nil {
		return false
	}
	return k.offsets == other.offsets && bytes.Equal(k.data, other.data)
}
