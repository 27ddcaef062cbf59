package rsakey

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"io"

	"github.com/deploymenttheory/go-cryptkit/internal/ioctx"
)

// PaddingOverhead is the number of bytes consumed per block by PKCS#1 v1.5
// padding, reducing the usable plaintext per encrypted block.
const PaddingOverhead = 11

// Encrypt reads src in chunks of up to keySize-PaddingOverhead bytes and
// writes one keySize ciphertext block per chunk to dst. Short reads are
// allowed; only a zero-length read terminates the loop. The returned count
// is the number of plaintext bytes consumed from src, not the number of
// ciphertext bytes written.
func Encrypt(dst io.Writer, src io.Reader, key PublicKeySource) (int, error) {
	pub, err := key.RSAPublic()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrKey, err)
	}
	keySize := pub.Size()
	if keySize <= PaddingOverhead {
		return 0, fmt.Errorf("%w: block size %d leaves no room for padding", ErrKey, keySize)
	}

	buf := make([]byte, keySize-PaddingOverhead)
	done := 0
	for {
		n, err := src.Read(buf)
		if n > 0 {
			block, cerr := rsa.EncryptPKCS1v15(rand.Reader, pub, buf[:n])
			if cerr != nil {
				return done, fmt.Errorf("%w: %w", ErrEncrypt, cerr)
			}
			if _, werr := dst.Write(block); werr != nil {
				return done, werr
			}
			done += n
		}
		if err == io.EOF {
			return done, nil
		}
		if err != nil {
			return done, err
		}
	}
}

// EncryptContext is Encrypt with a cancellation check at every read/write
// boundary.
func EncryptContext(ctx context.Context, dst io.Writer, src io.Reader, key PublicKeySource) (int, error) {
	return Encrypt(ioctx.Writer(ctx, dst), ioctx.Reader(ctx, src), key)
}

// EncryptBytes encrypts a slice, returning the concatenated ciphertext
// blocks: ceil(len(data)/maxPlainChunk) blocks of exactly keySize bytes.
func EncryptBytes(data []byte, key PublicKeySource) ([]byte, error) {
	var out bytes.Buffer
	if _, err := Encrypt(&out, bytes.NewReader(data), key); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Decrypt reads src in exact keySize blocks and writes the recovered
// plaintext of each block to dst. Reads are driven through io.ReadFull, so a
// source that delivers data in arbitrary pieces is still consumed one full
// cipher block at a time; a trailing partial block is a LengthError. The
// returned count is the number of ciphertext bytes consumed from src.
func Decrypt(dst io.Writer, src io.Reader, key PrivateKeySource) (int, error) {
	priv, err := key.RSAPrivate()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrKey, err)
	}
	keySize := priv.Size()

	block := make([]byte, keySize)
	done := 0
	for {
		n, err := io.ReadFull(src, block)
		if err == io.EOF {
			return done, nil
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return done, fmt.Errorf("%w: %w", &LengthError{Expected: keySize, Got: n}, io.ErrUnexpectedEOF)
		}
		if err != nil {
			return done, err
		}

		plain, cerr := rsa.DecryptPKCS1v15(rand.Reader, priv, block)
		if cerr != nil {
			return done, fmt.Errorf("%w: %w", ErrDecrypt, cerr)
		}
		if _, werr := dst.Write(plain); werr != nil {
			return done, werr
		}
		done += n
	}
}

// DecryptContext is Decrypt with a cancellation check at every read/write
// boundary.
func DecryptContext(ctx context.Context, dst io.Writer, src io.Reader, key PrivateKeySource) (int, error) {
	return Decrypt(ioctx.Writer(ctx, dst), ioctx.Reader(ctx, src), key)
}

// DecryptBytes decrypts keySize-aligned ciphertext produced by Encrypt or
// EncryptBytes, returning the recovered plaintext.
func DecryptBytes(data []byte, key PrivateKeySource) ([]byte, error) {
	var out bytes.Buffer
	if _, err := Decrypt(&out, bytes.NewReader(data), key); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
