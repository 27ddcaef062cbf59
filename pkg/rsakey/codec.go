package rsakey

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/deploymenttheory/go-cryptkit/internal/ioctx"
)

// Binary container format, header then body:
//
//	[ offset group: one uint64 little-endian field per component ]
//	[ body: BodyLen() component bytes, concatenated in field order ]
//
// There is no magic number, version tag, or payload checksum; corruption is
// detectable only as a length mismatch here or a cipher failure downstream.

// WriteTo implements io.WriterTo, emitting the header followed by the body.
// The byte count is PublicHeaderSize + Len().
func (k *PublicKey) WriteTo(w io.Writer) (int64, error) {
	var header [PublicHeaderSize]byte
	k.offsets.marshal(header[:])
	return writeContainer(w, header[:], k.data)
}

// WriteToContext is WriteTo driven through a context-checked writer.
func (k *PublicKey) WriteToContext(ctx context.Context, w io.Writer) (int64, error) {
	return k.WriteTo(ioctx.Writer(ctx, w))
}

// Bytes encodes the container to a fresh byte slice.
func (k *PublicKey) Bytes() []byte {
	out := make([]byte, PublicHeaderSize+len(k.data))
	k.offsets.marshal(out[:PublicHeaderSize])
	copy(out[PublicHeaderSize:], k.data)
	return out
}

// ReadPublicKey decodes a public key container from a stream. It reads
// exactly PublicHeaderSize header bytes, validates the declared body length,
// then reads exactly that many body bytes. A short read at either step fails
// with a LengthError wrapping io.ErrUnexpectedEOF; a truncated container is
// never returned.
func ReadPublicKey(r io.Reader) (*PublicKey, error) {
	var header [PublicHeaderSize]byte
	if err := readFull(r, header[:]); err != nil {
		return nil, err
	}
	offsets := parsePublicOffsetGroup(header[:])

	size, err := checkedBodyLen(offsets.BodyLen())
	if err != nil {
		return nil, err
	}
	data := make([]byte, size)
	if err := readFull(r, data); err != nil {
		return nil, err
	}
	return &PublicKey{
		data:    data,
		offsets: offsets,
		starts:  offsets.Starts(),
	}, nil
}

// ReadPublicKeyContext is ReadPublicKey driven through a context-checked
// reader.
func ReadPublicKeyContext(ctx context.Context, r io.Reader) (*PublicKey, error) {
	return ReadPublicKey(ioctx.Reader(ctx, r))
}

// ParsePublicKey decodes a public key container from a byte slice.
func ParsePublicKey(data []byte) (*PublicKey, error) {
	return ReadPublicKey(bytes.NewReader(data))
}

// WriteTo implements io.WriterTo, emitting the header followed by the body.
// The byte count is PrivateHeaderSize + Len().
func (k *PrivateKey) WriteTo(w io.Writer) (int64, error) {
	var header [PrivateHeaderSize]byte
	k.offsets.marshal(header[:])
	return writeContainer(w, header[:], k.data)
}

// WriteToContext is WriteTo driven through a context-checked writer.
func (k *PrivateKey) WriteToContext(ctx context.Context, w io.Writer) (int64, error) {
	return k.WriteTo(ioctx.Writer(ctx, w))
}

// Bytes encodes the container to a fresh byte slice.
func (k *PrivateKey) Bytes() []byte {
	out := make([]byte, PrivateHeaderSize+len(k.data))
	k.offsets.marshal(out[:PrivateHeaderSize])
	copy(out[PrivateHeaderSize:], k.data)
	return out
}

// ReadPrivateKey decodes a private key container from a stream with the same
// exact-read and validation rules as ReadPublicKey.
func ReadPrivateKey(r io.Reader) (*PrivateKey, error) {
	var header [PrivateHeaderSize]byte
	if err := readFull(r, header[:]); err != nil {
		return nil, err
	}
	offsets := parsePrivateOffsetGroup(header[:])

	size, err := checkedBodyLen(offsets.BodyLen())
	if err != nil {
		return nil, err
	}
	data := make([]byte, size)
	if err := readFull(r, data); err != nil {
		return nil, err
	}
	return &PrivateKey{
		data:    data,
		offsets: offsets,
		starts:  offsets.Starts(),
	}, nil
}

// ReadPrivateKeyContext is ReadPrivateKey driven through a context-checked
// reader.
func ReadPrivateKeyContext(ctx context.Context, r io.Reader) (*PrivateKey, error) {
	return ReadPrivateKey(ioctx.Reader(ctx, r))
}

// ParsePrivateKey decodes a private key container from a byte slice.
func ParsePrivateKey(data []byte) (*PrivateKey, error) {
	return ReadPrivateKey(bytes.NewReader(data))
}

func writeContainer(w io.Writer, header, body []byte) (int64, error) {
	if _, err := w.Write(header); err != nil {
		return 0, err
	}
	if _, err := w.Write(body); err != nil {
		return int64(len(header)), err
	}
	return int64(len(header) + len(body)), nil
}

// readFull wraps io.ReadFull so short reads surface as the distinct
// unexpected-end-of-input condition instead of a silent partial fill.
func readFull(r io.Reader, buf []byte) error {
	n, err := io.ReadFull(r, buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", &LengthError{Expected: len(buf), Got: n}, io.ErrUnexpectedEOF)
	}
	return err
}
