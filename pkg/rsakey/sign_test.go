package rsakey

import (
	"bytes"
	"context"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	container := testPrivateContainer(t, testKey4096(t))
	pub := container.PublicParts()

	data := randomData(t, 10000)
	sig, err := SignBytes(data, container)
	require.NoError(t, err)

	ok, err := sig.VerifyBytes(data, pub)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyTamperedData(t *testing.T) {
	container := testPrivateContainer(t, testKey4096(t))
	pub := container.PublicParts()

	data := randomData(t, 512)
	sig, err := SignBytes(data, container)
	require.NoError(t, err)

	// A single flipped byte must yield false, not an error.
	tampered := append([]byte{}, data...)
	tampered[100] ^= 0x01

	ok, err := sig.VerifyBytes(tampered, pub)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyTamperedSignature(t *testing.T) {
	container := testPrivateContainer(t, testKey4096(t))

	data := randomData(t, 64)
	sig, err := SignBytes(data, container)
	require.NoError(t, err)

	sig[0] ^= 0xFF
	ok, err := sig.VerifyBytes(data, container.PublicParts())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSignStreamCountsBytes(t *testing.T) {
	container := testPrivateContainer(t, testKey4096(t))

	data := randomData(t, 12345)
	sig, read, err := Sign(iotest.OneByteReader(bytes.NewReader(data)), container)
	require.NoError(t, err)
	assert.Equal(t, len(data), read)

	ok, read, err := sig.Verify(bytes.NewReader(data), container.PublicParts())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, len(data), read)
}

func TestSignRequiresMatchingKeySize(t *testing.T) {
	// The Signature size is a scheme constant; a 2048-bit key cannot fill it.
	container := testPrivateContainer(t, testKey2048(t))

	_, err := SignBytes([]byte("data"), container)
	assert.ErrorIs(t, err, ErrKey)
}

func TestSignatureFromSlice(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{name: "exact size", length: SignatureSize},
		{name: "too short", length: SignatureSize - 1, wantErr: true},
		{name: "too long", length: SignatureSize + 1, wantErr: true},
		{name: "empty", length: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := SignatureFromSlice(make([]byte, tt.length))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrLength)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, Signature{}, sig)
			}
		})
	}
}

func TestSignContextCancelled(t *testing.T) {
	container := testPrivateContainer(t, testKey4096(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := SignContext(ctx, bytes.NewReader(randomData(t, 10)), container)
	assert.ErrorIs(t, err, context.Canceled)
}
