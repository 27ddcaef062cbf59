package rsakey

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeat(b byte, n int) []byte {
	return bytes.Repeat([]byte{b}, n)
}

func TestPublicKeyRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		n    []byte
		e    []byte
	}{
		{name: "typical", n: repeat(0xAA, 256), e: []byte{1, 0, 1}},
		{name: "zero-length exponent", n: repeat(0x11, 64), e: nil},
		{name: "both empty", n: nil, e: nil},
		{name: "single bytes", n: []byte{7}, e: []byte{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := NewPublicKey(tt.n, tt.e)

			encoded := original.Bytes()
			assert.Len(t, encoded, PublicHeaderSize+len(tt.n)+len(tt.e))

			decoded, err := ParsePublicKey(encoded)
			require.NoError(t, err)

			assert.True(t, original.Equal(decoded))
			assert.Equal(t, append([]byte{}, tt.n...), append([]byte{}, decoded.N()...))
			assert.Equal(t, append([]byte{}, tt.e...), append([]byte{}, decoded.E()...))
		})
	}
}

func TestPrivateKeyRoundTrip(t *testing.T) {
	// The concrete reference scenario: body 256+3+256+128*5 = 1155 bytes.
	n := repeat(0x01, 256)
	e := []byte{1, 0, 1}
	d := repeat(0x02, 256)
	p := repeat(0x03, 128)
	q := repeat(0x04, 128)
	dmp1 := repeat(0x05, 128)
	dmq1 := repeat(0x06, 128)
	iqmp := repeat(0x07, 128)

	original := NewPrivateKey(n, e, d, p, q, dmp1, dmq1, iqmp)
	require.Equal(t, 1155, original.Len())

	encoded := original.Bytes()
	require.Len(t, encoded, PrivateHeaderSize+1155)

	decoded, err := ParsePrivateKey(encoded)
	require.NoError(t, err)
	assert.True(t, original.Equal(decoded))

	assert.Equal(t, n, decoded.N())
	assert.Equal(t, e, decoded.E())
	assert.Equal(t, d, decoded.D())
	assert.Equal(t, p, decoded.P())
	assert.Equal(t, q, decoded.Q())
	assert.Equal(t, dmp1, decoded.Dmp1())
	assert.Equal(t, dmq1, decoded.Dmq1())
	assert.Equal(t, iqmp, decoded.Iqmp())
}

func TestPrivateKeyRoundTripZeroComponents(t *testing.T) {
	original := NewPrivateKey([]byte{9}, nil, nil, nil, []byte{1, 2}, nil, nil, nil)

	decoded, err := ParsePrivateKey(original.Bytes())
	require.NoError(t, err)
	assert.True(t, original.Equal(decoded))
	assert.Empty(t, decoded.E())
	assert.Equal(t, []byte{1, 2}, decoded.Q())
}

func TestWriteToByteCount(t *testing.T) {
	key := NewPublicKey(repeat(0xAB, 100), []byte{1, 0, 1})

	var buf bytes.Buffer
	written, err := key.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(PublicHeaderSize+103), written)
	assert.Equal(t, key.Bytes(), buf.Bytes())
}

func TestHeaderWireFormat(t *testing.T) {
	// Fields are fixed 64-bit little-endian, independent of platform.
	key := NewPublicKey(repeat(0xCC, 5), repeat(0xDD, 2))
	encoded := key.Bytes()

	assert.Equal(t, uint64(5), binary.LittleEndian.Uint64(encoded[0:8]))
	assert.Equal(t, uint64(2), binary.LittleEndian.Uint64(encoded[8:16]))
	assert.Equal(t, repeat(0xCC, 5), encoded[16:21])
	assert.Equal(t, repeat(0xDD, 2), encoded[21:23])
}

func TestShortReadRejection(t *testing.T) {
	full := NewPrivateKey(
		repeat(1, 32), repeat(2, 3), repeat(3, 32), repeat(4, 16),
		repeat(5, 16), repeat(6, 16), repeat(7, 16), repeat(8, 16),
	).Bytes()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty input", data: nil},
		{name: "partial header", data: full[:PrivateHeaderSize-1]},
		{name: "header only", data: full[:PrivateHeaderSize]},
		{name: "partial body", data: full[:len(full)-1]},
		{name: "one body byte", data: full[:PrivateHeaderSize+1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := ParsePrivateKey(tt.data)
			assert.Nil(t, decoded)
			assert.ErrorIs(t, err, ErrLength)

			var lengthErr *LengthError
			assert.ErrorAs(t, err, &lengthErr)
		})
	}
}

func TestOversizedHeaderRejected(t *testing.T) {
	var header [PublicHeaderSize]byte
	binary.LittleEndian.PutUint64(header[0:8], MaxBodyLen+1)

	decoded, err := ParsePublicKey(header[:])
	assert.Nil(t, decoded)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestOverflowingHeaderRejected(t *testing.T) {
	var header [PrivateHeaderSize]byte
	binary.LittleEndian.PutUint64(header[0:8], ^uint64(0))
	binary.LittleEndian.PutUint64(header[16:24], 100)

	decoded, err := ParsePrivateKey(header[:])
	assert.Nil(t, decoded)
	assert.ErrorIs(t, err, ErrInteger)
}

func TestReadPrivateKeyFromStream(t *testing.T) {
	original := testPrivateContainer(t, testKey2048(t))

	var buf bytes.Buffer
	written, err := original.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(PrivateHeaderSize+original.Len()), written)

	decoded, err := ReadPrivateKey(&buf)
	require.NoError(t, err)
	assert.True(t, original.Equal(decoded))
}
