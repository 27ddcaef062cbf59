// Package sha256sum computes SHA-256 digests of slices and streams.
package sha256sum

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/deploymenttheory/go-cryptkit/internal/ioctx"
)

// Size is the digest length in bytes.
const Size = sha256.Size

const bufferSize = 4096

// Hash is a SHA-256 digest value.
type Hash [Size]byte

// Sum computes the digest of a slice.
func Sum(data []byte) Hash {
	return Hash(sha256.Sum256(data))
}

// SumReader digests the rest of a stream, returning the hash and the number
// of bytes read.
func SumReader(r io.Reader) (Hash, int64, error) {
	var h Hash
	digest := sha256.New()
	buf := make([]byte, bufferSize)
	var done int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			digest.Write(buf[:n])
			done += int64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return h, done, err
		}
	}
	copy(h[:], digest.Sum(nil))
	return h, done, nil
}

// SumReaderContext is SumReader with a cancellation check at every read
// boundary.
func SumReaderContext(ctx context.Context, r io.Reader) (Hash, int64, error) {
	return SumReader(ioctx.Reader(ctx, r))
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}
