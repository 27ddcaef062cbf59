package rsakey

import (
	"bytes"
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/deploymenttheory/go-cryptkit/internal/ioctx"
)

// SignatureSize is the fixed signature length in bytes, a constant of the
// 4096-bit scheme this package signs with. Keys of any other modulus size
// are rejected by Sign rather than producing a differently sized signature.
const SignatureSize = 512

const signBufferSize = 4096

// Signature is an opaque fixed-size RSA signature over a SHA-256 digest.
// It has no internal structure and is compared as raw bytes.
type Signature [SignatureSize]byte

// SignatureFromSlice copies a raw signature. The slice must be exactly
// SignatureSize bytes.
func SignatureFromSlice(from []byte) (Signature, error) {
	var sig Signature
	if len(from) != SignatureSize {
		return sig, &LengthError{Expected: SignatureSize, Got: len(from)}
	}
	copy(sig[:], from)
	return sig, nil
}

// Sign digests the whole of src with a single streaming SHA-256 context and
// signs the result, independent of the cipher block size. It returns the
// signature and the number of bytes read.
func Sign(src io.Reader, key PrivateKeySource) (Signature, int, error) {
	var sig Signature

	priv, err := key.RSAPrivate()
	if err != nil {
		return sig, 0, fmt.Errorf("%w: %w", ErrKey, err)
	}
	if priv.Size() != SignatureSize {
		return sig, 0, fmt.Errorf("%w: modulus size %d does not match signature size %d",
			ErrKey, priv.Size(), SignatureSize)
	}

	digest := sha256.New()
	buf := make([]byte, signBufferSize)
	done := 0
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			digest.Write(buf[:n])
			done += n
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return sig, done, rerr
		}
	}

	raw, err := rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA256, digest.Sum(nil))
	if err != nil {
		return sig, done, fmt.Errorf("%w: %w", ErrKey, err)
	}
	copy(sig[:], raw)
	return sig, done, nil
}

// SignContext is Sign with a cancellation check at every read boundary.
func SignContext(ctx context.Context, src io.Reader, key PrivateKeySource) (Signature, int, error) {
	return Sign(ioctx.Reader(ctx, src), key)
}

// SignBytes signs a slice of data.
func SignBytes(data []byte, key PrivateKeySource) (Signature, error) {
	sig, _, err := Sign(bytes.NewReader(data), key)
	return sig, err
}

// Verify recomputes the SHA-256 digest of src and checks this signature
// against it, returning the verification result and the number of bytes
// read. A signature that simply does not match yields (false, nil); only
// key or I/O failures produce an error.
func (s Signature) Verify(src io.Reader, key PublicKeySource) (bool, int, error) {
	pub, err := key.RSAPublic()
	if err != nil {
		return false, 0, fmt.Errorf("%w: %w", ErrKey, err)
	}

	digest := sha256.New()
	buf := make([]byte, signBufferSize)
	done := 0
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			digest.Write(buf[:n])
			done += n
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return false, done, rerr
		}
	}

	err = rsa.VerifyPKCS1v15(pub, crypto.SHA256, digest.Sum(nil), s[:])
	if err == nil {
		return true, done, nil
	}
	if errors.Is(err, rsa.ErrVerification) {
		return false, done, nil
	}
	return false, done, fmt.Errorf("%w: %w", ErrKey, err)
}

// VerifyContext is Verify with a cancellation check at every read boundary.
func (s Signature) VerifyContext(ctx context.Context, src io.Reader, key PublicKeySource) (bool, int, error) {
	return s.Verify(ioctx.Reader(ctx, src), key)
}

// VerifyBytes verifies this signature over a slice of data.
func (s Signature) VerifyBytes(data []byte, key PublicKeySource) (bool, error) {
	ok, _, err := s.Verify(bytes.NewReader(data), key)
	return ok, err
}

func (s Signature) String() string {
	return "Signature(" + hex.EncodeToString(s[:]) + ")"
}
