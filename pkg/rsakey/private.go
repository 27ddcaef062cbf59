package rsakey

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"math/big"
)

// DefaultKeyBits is the modulus size used by Generate when no explicit size
// is requested. It matches the fixed Signature size of this package.
const DefaultKeyBits = 4096

// PrivateKey is a container for the private and public RSA key components:
// modulus, exponents, primes, and CRT parameters in one contiguous buffer
// addressed through a PrivateOffsetGroup.
type PrivateKey struct {
	data    []byte
	offsets PrivateOffsetGroup
	starts  PrivateStarts
}

// NewPrivateKey assembles a container from raw component bytes in declaration
// order: n, e, d, p, q, dmp1, dmq1, iqmp. The order must match the component
// extraction order of the crypto capability exactly; the format carries no
// checksum that would catch a swap. Contents are copied.
func NewPrivateKey(n, e, d, p, q, dmp1, dmq1, iqmp []byte) *PrivateKey {
	size := len(n) + len(e) + len(d) + len(p) + len(q) + len(dmp1) + len(dmq1) + len(iqmp)
	data := make([]byte, 0, size)
	data = append(data, n...)
	data = append(data, e...)
	data = append(data, d...)
	data = append(data, p...)
	data = append(data, q...)
	data = append(data, dmp1...)
	data = append(data, dmq1...)
	data = append(data, iqmp...)

	offsets := PrivateOffsetGroup{
		N:    uint64(len(n)),
		E:    uint64(len(e)),
		D:    uint64(len(d)),
		P:    uint64(len(p)),
		Q:    uint64(len(q)),
		Dmp1: uint64(len(dmp1)),
		Dmq1: uint64(len(dmq1)),
		Iqmp: uint64(len(iqmp)),
	}
	return &PrivateKey{
		data:    data,
		offsets: offsets,
		starts:  offsets.Starts(),
	}
}

// PrivateKeyFromCrypto extracts the component bytes of an *rsa.PrivateKey
// into a new container. The key must have exactly two prime factors.
func PrivateKeyFromCrypto(key *rsa.PrivateKey) (*PrivateKey, error) {
	if key == nil || key.N == nil || key.D == nil {
		return nil, ErrKey
	}
	if len(key.Primes) != 2 {
		return nil, fmt.Errorf("%w: expected 2 prime factors, got %d", ErrKey, len(key.Primes))
	}
	key.Precompute()

	e := big.NewInt(int64(key.E))
	return NewPrivateKey(
		key.N.Bytes(),
		e.Bytes(),
		key.D.Bytes(),
		key.Primes[0].Bytes(),
		key.Primes[1].Bytes(),
		key.Precomputed.Dp.Bytes(),
		key.Precomputed.Dq.Bytes(),
		key.Precomputed.Qinv.Bytes(),
	), nil
}

// Generate creates a fresh key pair at the given modulus bit size and packs
// it into a container. Pass DefaultKeyBits for a key compatible with the
// fixed Signature size.
func Generate(bits int) (*PrivateKey, error) {
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKey, err)
	}
	return PrivateKeyFromCrypto(key)
}

// Raw implements PublicComponents.
func (k *PrivateKey) Raw() []byte {
	return k.data
}

// N returns the modulus bytes as a view into the container.
func (k *PrivateKey) N() []byte {
	return k.data[k.starts.N : k.starts.N+k.offsets.N]
}

// E returns the public exponent bytes.
func (k *PrivateKey) E() []byte {
	return k.data[k.starts.E : k.starts.E+k.offsets.E]
}

// D returns the private exponent bytes.
func (k *PrivateKey) D() []byte {
	return k.data[k.starts.D : k.starts.D+k.offsets.D]
}

// P returns the first prime factor bytes.
func (k *PrivateKey) P() []byte {
	return k.data[k.starts.P : k.starts.P+k.offsets.P]
}

// Q returns the second prime factor bytes.
func (k *PrivateKey) Q() []byte {
	return k.data[k.starts.Q : k.starts.Q+k.offsets.Q]
}

// Dmp1 returns d mod (p-1).
func (k *PrivateKey) Dmp1() []byte {
	return k.data[k.starts.Dmp1 : k.starts.Dmp1+k.offsets.Dmp1]
}

// Dmq1 returns d mod (q-1).
func (k *PrivateKey) Dmq1() []byte {
	return k.data[k.starts.Dmq1 : k.starts.Dmq1+k.offsets.Dmq1]
}

// Iqmp returns q^-1 mod p.
func (k *PrivateKey) Iqmp() []byte {
	return k.data[k.starts.Iqmp : k.starts.Iqmp+k.offsets.Iqmp]
}

// Offsets returns the container's offset group.
func (k *PrivateKey) Offsets() PrivateOffsetGroup {
	return k.offsets
}

// Len returns the length of the component body only, excluding the header.
func (k *PrivateKey) Len() int {
	return len(k.data)
}

// RSAPrivate implements PrivateKeySource by rebuilding and validating the
// crypto/rsa key from the stored components. Stored CRT parameters, when
// present, are checked against the recomputed values; a mismatch means the
// container was assembled in the wrong component order or corrupted.
func (k *PrivateKey) RSAPrivate() (*rsa.PrivateKey, error) {
	e, err := exponentInt(k.E())
	if err != nil {
		return nil, err
	}
	key := &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{N: bigInt(k.N()), E: e},
		D:         bigInt(k.D()),
		Primes:    []*big.Int{bigInt(k.P()), bigInt(k.Q())},
	}

	if err := key.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKey, err)
	}
	key.Precompute()

	if len(k.Dmp1()) > 0 && bigInt(k.Dmp1()).Cmp(key.Precomputed.Dp) != 0 {
		return nil, fmt.Errorf("%w: stored dmp1 does not match", ErrKey)
	}
	if len(k.Dmq1()) > 0 && bigInt(k.Dmq1()).Cmp(key.Precomputed.Dq) != 0 {
		return nil, fmt.Errorf("%w: stored dmq1 does not match", ErrKey)
	}
	if len(k.Iqmp()) > 0 && bigInt(k.Iqmp()).Cmp(key.Precomputed.Qinv) != 0 {
		return nil, fmt.Errorf("%w: stored iqmp does not match", ErrKey)
	}
	return key, nil
}

// RSAPublic implements PublicKeySource using the public components only.
func (k *PrivateKey) RSAPublic() (*rsa.PublicKey, error) {
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

// PublicParts extracts the public components into a standalone public
// container.
func (k *PrivateKey) PublicParts() *PublicKey {
	return NewPublicKey(k.N(), k.E())
}

// CheckKey reports whether the stored components form a consistent private
// key.
func (k *PrivateKey) CheckKey() bool {
	_, err := k.RSAPrivate()
	return err == nil
}

// Equal reports whether two containers hold identical component bytes and
// offsets.
func (k *PrivateKey) Equal(other *PrivateKey) bool {
	if other == nil {
		return false
	}
	return k.offsets == other.offsets && bytes.Equal(k.data, other.data)
}
