// Package aesstream encrypts and decrypts byte streams with AES-128-CBC and
// PKCS#7 padding. Each operation is a single sequential pass; keys carry
// their IV so a Key value fully determines the transform.
package aesstream

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/deploymenttheory/go-cryptkit/internal/ioctx"
)

const (
	// KeySize is the AES-128 key length in bytes.
	KeySize = 16

	// IVSize is the CBC initialization vector length in bytes.
	IVSize = 16
)

const bufferSize = 4096

var (
	// ErrDecrypt is returned when a ciphertext fails padding or structure
	// checks.
	ErrDecrypt = errors.New("decryption failed")

	// ErrRandom is returned when the system entropy source fails.
	ErrRandom = errors.New("rng failure")
)

// Key is an AES-128 key together with its IV.
type Key struct {
	key [KeySize]byte
	iv  [IVSize]byte
}

// Generate creates a random key and IV.
func Generate() (Key, error) {
	var k Key
	if _, err := rand.Read(k.key[:]); err != nil {
		return k, fmt.Errorf("%w: %w", ErrRandom, err)
	}
	if _, err := rand.Read(k.iv[:]); err != nil {
		return k, fmt.Errorf("%w: %w", ErrRandom, err)
	}
	return k, nil
}

// New builds a key from exact-size arrays.
func New(key [KeySize]byte, iv [IVSize]byte) Key {
	return Key{key: key, iv: iv}
}

// FromSlices builds a key from slices of exactly KeySize and IVSize bytes.
func FromSlices(key, iv []byte) (Key, error) {
	var k Key
	if len(key) != KeySize {
		return k, fmt.Errorf("bad key length: expected %d, got %d", KeySize, len(key))
	}
	if len(iv) != IVSize {
		return k, fmt.Errorf("bad iv length: expected %d, got %d", IVSize, len(iv))
	}
	copy(k.key[:], key)
	copy(k.iv[:], iv)
	return k, nil
}

// K returns the key bytes.
func (k *Key) K() []byte {
	return k.key[:]
}

// IV returns the initialization vector bytes.
func (k *Key) IV() []byte {
	return k.iv[:]
}

// Encrypt reads all of src, encrypts it with CBC and PKCS#7 padding, and
// writes the ciphertext to dst. It returns the number of ciphertext bytes
// written, always a multiple of the AES block size and at least one block
// larger than zero even for empty input.
func Encrypt(dst io.Writer, src io.Reader, key Key) (int, error) {
	block, err := aes.NewCipher(key.key[:])
	if err != nil {
		return 0, err
	}
	enc := cipher.NewCBCEncrypter(block, key.iv[:])

	buf := make([]byte, bufferSize)
	pending := make([]byte, 0, bufferSize+aes.BlockSize)
	written := 0
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			full := len(pending) - len(pending)%aes.BlockSize
			if full > 0 {
				enc.CryptBlocks(pending[:full], pending[:full])
				if _, werr := dst.Write(pending[:full]); werr != nil {
					return written, werr
				}
				written += full
				pending = append(pending[:0], pending[full:]...)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return written, rerr
		}
	}

	padLen := aes.BlockSize - len(pending)%aes.BlockSize
	for i := 0; i < padLen; i++ {
		pending = append(pending, byte(padLen))
	}
	enc.CryptBlocks(pending, pending)
	if _, werr := dst.Write(pending); werr != nil {
		return written, werr
	}
	return written + len(pending), nil
}

// EncryptContext is Encrypt with a cancellation check at every read/write
// boundary.
func EncryptContext(ctx context.Context, dst io.Writer, src io.Reader, key Key) (int, error) {
	return Encrypt(ioctx.Writer(ctx, dst), ioctx.Reader(ctx, src), key)
}

// Decrypt reads all of src, decrypts it with CBC, strips the PKCS#7
// padding, and writes the plaintext to dst. It returns the number of
// plaintext bytes written. The final block is withheld until end of stream
// so padding can be removed without trusting read boundaries.
func Decrypt(dst io.Writer, src io.Reader, key Key) (int, error) {
	block, err := aes.NewCipher(key.key[:])
	if err != nil {
		return 0, err
	}
	dec := cipher.NewCBCDecrypter(block, key.iv[:])

	buf := make([]byte, bufferSize)
	pending := make([]byte, 0, bufferSize+2*aes.BlockSize)
	written := 0
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			processable := len(pending) - len(pending)%aes.BlockSize
			if len(pending)%aes.BlockSize == 0 {
				// The last full block may carry the padding.
				processable -= aes.BlockSize
			}
			if processable > 0 {
				dec.CryptBlocks(pending[:processable], pending[:processable])
				if _, werr := dst.Write(pending[:processable]); werr != nil {
					return written, werr
				}
				written += processable
				pending = append(pending[:0], pending[processable:]...)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return written, rerr
		}
	}

	if len(pending) != aes.BlockSize {
		return written, fmt.Errorf("%w: ciphertext is not block aligned (%d trailing bytes)", ErrDecrypt, len(pending))
	}
	dec.CryptBlocks(pending, pending)

	padLen := int(pending[aes.BlockSize-1])
	if padLen == 0 || padLen > aes.BlockSize {
		return written, fmt.Errorf("%w: bad padding", ErrDecrypt)
	}
	for _, b := range pending[aes.BlockSize-padLen:] {
		if int(b) != padLen {
			return written, fmt.Errorf("%w: bad padding", ErrDecrypt)
		}
	}
	final := pending[:aes.BlockSize-padLen]
	if len(final) > 0 {
		if _, werr := dst.Write(final); werr != nil {
			return written, werr
		}
	}
	return written + len(final), nil
}

// DecryptContext is Decrypt with a cancellation check at every read/write
// boundary.
func DecryptContext(ctx context.Context, dst io.Writer, src io.Reader, key Key) (int, error) {
	return Decrypt(ioctx.Writer(ctx, dst), ioctx.Reader(ctx, src), key)
}
