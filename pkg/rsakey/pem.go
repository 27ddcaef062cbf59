package rsakey

import (
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"github.com/deploymenttheory/go-cryptkit/pkg/password"
)

const (
	pemTypePublic  = "RSA PUBLIC KEY"
	pemTypePrivate = "RSA PRIVATE KEY"
)

// ToPEM renders the public key as a PKCS#1 PEM string.
func (k *PublicKey) ToPEM() (string, error) {
	pub, err := k.RSAPublic()
	if err != nil {
		return "", err
	}
	block := &pem.Block{
		Type:  pemTypePublic,
		Bytes: x509.MarshalPKCS1PublicKey(pub),
	}
	return string(pem.EncodeToMemory(block)), nil
}

// ParsePublicKeyPEM imports a PKCS#1 public key PEM string into a container.
func ParsePublicKeyPEM(data string) (*PublicKey, error) {
	block, _ := pem.Decode([]byte(data))
	if block == nil || block.Type != pemTypePublic {
		return nil, ErrPEM
	}
	pub, err := x509.ParsePKCS1PublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPEM, err)
	}
	return PublicKeyFromCrypto(pub)
}

// ToPEM renders the private key as a PKCS#1 PEM string. When pw is non-nil
// the block is passphrase-protected with AES-128-CBC.
func (k *PrivateKey) ToPEM(pw *password.Password) (string, error) {
	priv, err := k.RSAPrivate()
	if err != nil {
		return "", err
	}
	der := x509.MarshalPKCS1PrivateKey(priv)

	var block *pem.Block
	if pw != nil {
		block, err = x509.EncryptPEMBlock(rand.Reader, pemTypePrivate, der, pw.Bytes(), x509.PEMCipherAES128)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrPEM, err)
		}
	} else {
		block = &pem.Block{Type: pemTypePrivate, Bytes: der}
	}
	return string(pem.EncodeToMemory(block)), nil
}

// ParsePrivateKeyPEM imports a PKCS#1 private key PEM string. If the block
// is passphrase-protected, pw is called to supply the password; a nil
// response maps to ErrPassword rather than a generic decryption failure.
// pw may be nil when no protected input is expected.
func ParsePrivateKeyPEM(data string, pw func() *password.Password) (*PrivateKey, error) {
	block, _ := pem.Decode([]byte(data))
	if block == nil || block.Type != pemTypePrivate {
		return nil, ErrPEM
	}

	der := block.Bytes
	if x509.IsEncryptedPEMBlock(block) {
		if pw == nil {
			return nil, ErrPassword
		}
		secret := pw()
		if secret == nil {
			return nil, ErrPassword
		}
		var err error
		der, err = x509.DecryptPEMBlock(block, secret.Bytes())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPEM, err)
		}
	}

	priv, err := x509.ParsePKCS1PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPEM, err)
	}
	return PrivateKeyFromCrypto(priv)
}
