package rsakey

import (
	"crypto/rsa"
	"math/big"
)

// PublicComponents is implemented by any key type exposing the public RSA
// components as raw unsigned big-endian bytes. Accessors return views into
// the container's buffer, never copies.
type PublicComponents interface {
	// Raw returns the whole component body.
	Raw() []byte

	// N returns the modulus bytes.
	N() []byte

	// E returns the public exponent bytes.
	E() []byte
}

// PrivateComponents extends PublicComponents with the private exponent and
// the CRT parameters. A private-component bearer is always a public one.
type PrivateComponents interface {
	PublicComponents

	// D returns the private exponent bytes.
	D() []byte

	// P returns the first prime factor bytes.
	P() []byte

	// Q returns the second prime factor bytes.
	Q() []byte

	// Dmp1 returns d mod (p-1).
	Dmp1() []byte

	// Dmq1 returns d mod (q-1).
	Dmq1() []byte

	// Iqmp returns q^-1 mod p.
	Iqmp() []byte
}

// PublicKeySource is the capability level required by encryption and
// verification: anything that can produce an *rsa.PublicKey. Transform code
// depends on this interface, not on concrete container types.
type PublicKeySource interface {
	RSAPublic() (*rsa.PublicKey, error)
}

// PrivateKeySource is the capability level required by decryption and
// signing. Private implies public.
type PrivateKeySource interface {
	PublicKeySource
	RSAPrivate() (*rsa.PrivateKey, error)
}

// CryptoPublic adapts a bare *rsa.PublicKey to the PublicKeySource
// capability, letting externally generated keys feed the transforms without
// a container round-trip.
type CryptoPublic struct {
	Key *rsa.PublicKey
}

// RSAPublic implements PublicKeySource.
func (c CryptoPublic) RSAPublic() (*rsa.PublicKey, error) {
	if c.Key == nil {
		return nil, ErrKey
	}
	return c.Key, nil
}

// CryptoPrivate adapts a bare *rsa.PrivateKey to the PrivateKeySource
// capability.
type CryptoPrivate struct {
	Key *rsa.PrivateKey
}

// RSAPublic implements PublicKeySource.
func (c CryptoPrivate) RSAPublic() (*rsa.PublicKey, error) {
	if c.Key == nil {
		return nil, ErrKey
	}
	return &c.Key.PublicKey, nil
}

// RSAPrivate implements PrivateKeySource.
func (c CryptoPrivate) RSAPrivate() (*rsa.PrivateKey, error) {
	if c.Key == nil {
		return nil, ErrKey
	}
	return c.Key, nil
}

// bigInt interprets component bytes as an unsigned big-endian integer. An
// empty slice yields zero.
func bigInt(component []byte) *big.Int {
	return new(big.Int).SetBytes(component)
}

// exponentInt converts public exponent bytes to the int crypto/rsa expects.
func exponentInt(component []byte) (int, error) {
	e := bigInt(component)
	if !e.IsInt64() || e.Int64() > int64(maxInt) {
		return 0, ErrInteger
	}
	return int(e.Int64()), nil
}

const maxInt = int(^uint(0) >> 1)
