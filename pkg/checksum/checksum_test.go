package checksum

import (
	"bytes"
	"context"
	"crypto/rand"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumBasics(t *testing.T) {
	assert.Zero(t, Sum(nil))
	assert.NotZero(t, Sum([]byte("123456789")))
	assert.Equal(t, Sum([]byte("abc")), Sum([]byte("abc")))
	assert.NotEqual(t, Sum([]byte("abc")), Sum([]byte("abd")))
}

func TestSumReaderMatchesSum(t *testing.T) {
	data := make([]byte, 9000)
	_, err := rand.Read(data)
	require.NoError(t, err)

	sum, n, err := SumReader(iotest.OneByteReader(bytes.NewReader(data)))
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)
	assert.Equal(t, Sum(data), sum)
}

func TestSumReaderContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := SumReaderContext(ctx, bytes.NewReader([]byte("data")))
	assert.ErrorIs(t, err, context.Canceled)
}
