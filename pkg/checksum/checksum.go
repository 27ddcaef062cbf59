// Package checksum computes CRC64 checksums of slices and streams using the
// ECMA polynomial.
package checksum

import (
	"context"
	"hash/crc64"
	"io"

	"github.com/deploymenttheory/go-cryptkit/internal/ioctx"
)

const bufferSize = 4096

var ecmaTable = crc64.MakeTable(crc64.ECMA)

// Sum computes the CRC64-ECMA checksum of a slice.
func Sum(data []byte) uint64 {
	return crc64.Checksum(data, ecmaTable)
}

// SumReader reads the rest of a stream into a CRC64-ECMA checksum, returning
// the checksum and the number of bytes read.
func SumReader(r io.Reader) (uint64, int64, error) {
	digest := crc64.New(ecmaTable)
	buf := make([]byte, bufferSize)
	var done int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			digest.Write(buf[:n])
			done += int64(n)
		}
		if err == io.EOF {
			return digest.Sum64(), done, nil
		}
		if err != nil {
			return digest.Sum64(), done, err
		}
	}
}

// SumReaderContext is SumReader with a cancellation check at every read
// boundary.
func SumReaderContext(ctx context.Context, r io.Reader) (uint64, int64, error) {
	return SumReader(ioctx.Reader(ctx, r))
}
