package sha256sum

import (
	"bytes"
	"context"
	"crypto/rand"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumKnownVectors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{
			name: "empty",
			data: nil,
			want: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name: "abc",
			data: []byte("abc"),
			want: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sum(tt.data).String())
		})
	}
}

func TestSumReaderMatchesSum(t *testing.T) {
	data := make([]byte, 10000)
	_, err := rand.Read(data)
	require.NoError(t, err)

	h, n, err := SumReader(iotest.OneByteReader(bytes.NewReader(data)))
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)
	assert.Equal(t, Sum(data), h)
}

func TestSumReaderEmpty(t *testing.T) {
	h, n, err := SumReader(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, Sum(nil), h)
}

func TestSumReaderContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := SumReaderContext(ctx, bytes.NewReader([]byte("data")))
	assert.ErrorIs(t, err, context.Canceled)
}
