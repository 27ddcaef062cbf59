package rsakey

import (
	"encoding/binary"
	"math"
	"math/bits"
)

// Header sizes for the binary container format. Each offset field is encoded
// as a fixed 64-bit little-endian integer regardless of platform, so the
// wire format is identical on every architecture.
const (
	PublicHeaderSize  = 16
	PrivateHeaderSize = 64
)

// MaxBodyLen caps the total body length a decoded header may declare.
// Header fields arrive from untrusted streams; without this bound a single
// malformed header could drive an arbitrarily large allocation. 1 MiB is far
// above any realistic RSA key (components are tens of kilobytes at most).
const MaxBodyLen = 1 << 20

var wire = binary.LittleEndian

// PublicOffsetGroup records the exact byte length of each public key
// component's unsigned big-endian encoding. Zero lengths are legal and
// encode an integer of value zero or an absent component.
type PublicOffsetGroup struct {
	N uint64
	E uint64
}

// PublicStarts holds cumulative byte offsets into a container body, derived
// from a PublicOffsetGroup. It is recomputed on every load, never persisted.
type PublicStarts struct {
	N uint64
	E uint64
}

// Starts computes cumulative offsets in declaration order.
func (g PublicOffsetGroup) Starts() PublicStarts {
	return PublicStarts{
		N: 0,
		E: g.N,
	}
}

// BodyLen sums all component lengths with overflow checking. Header fields
// are attacker-controlled, so a wrapping sum must be rejected rather than
// silently producing an undersized allocation.
func (g PublicOffsetGroup) BodyLen() (uint64, error) {
	return sumChecked(g.N, g.E)
}

func (g PublicOffsetGroup) marshal(dst []byte) {
	wire.PutUint64(dst[0:8], g.N)
	wire.PutUint64(dst[8:16], g.E)
}

func parsePublicOffsetGroup(data []byte) PublicOffsetGroup {
	return PublicOffsetGroup{
		N: wire.Uint64(data[0:8]),
		E: wire.Uint64(data[8:16]),
	}
}

// PrivateOffsetGroup records component byte lengths for a private key
// container: modulus, public exponent, private exponent, and the five CRT
// parameters, in declaration order.
type PrivateOffsetGroup struct {
	N    uint64
	E    uint64
	D    uint64
	P    uint64
	Q    uint64
	Dmp1 uint64
	Dmq1 uint64
	Iqmp uint64
}

// PrivateStarts holds cumulative byte offsets derived from a
// PrivateOffsetGroup.
type PrivateStarts struct {
	N    uint64
	E    uint64
	D    uint64
	P    uint64
	Q    uint64
	Dmp1 uint64
	Dmq1 uint64
	Iqmp uint64
}

// Starts computes cumulative offsets in declaration order.
func (g PrivateOffsetGroup) Starts() PrivateStarts {
	return PrivateStarts{
		N:    0,
		E:    g.N,
		D:    g.N + g.E,
		P:    g.N + g.E + g.D,
		Q:    g.N + g.E + g.D + g.P,
		Dmp1: g.N + g.E + g.D + g.P + g.Q,
		Dmq1: g.N + g.E + g.D + g.P + g.Q + g.Dmp1,
		Iqmp: g.N + g.E + g.D + g.P + g.Q + g.Dmp1 + g.Dmq1,
	}
}

// BodyLen sums all component lengths with overflow checking.
func (g PrivateOffsetGroup) BodyLen() (uint64, error) {
	return sumChecked(g.N, g.E, g.D, g.P, g.Q, g.Dmp1, g.Dmq1, g.Iqmp)
}

func (g PrivateOffsetGroup) marshal(dst []byte) {
	wire.PutUint64(dst[0:8], g.N)
	wire.PutUint64(dst[8:16], g.E)
	wire.PutUint64(dst[16:24], g.D)
	wire.PutUint64(dst[24:32], g.P)
	wire.PutUint64(dst[32:40], g.Q)
	wire.PutUint64(dst[40:48], g.Dmp1)
	wire.PutUint64(dst[48:56], g.Dmq1)
	wire.PutUint64(dst[56:64], g.Iqmp)
}

func parsePrivateOffsetGroup(data []byte) PrivateOffsetGroup {
	return PrivateOffsetGroup{
		N:    wire.Uint64(data[0:8]),
		E:    wire.Uint64(data[8:16]),
		D:    wire.Uint64(data[16:24]),
		P:    wire.Uint64(data[24:32]),
		Q:    wire.Uint64(data[32:40]),
		Dmp1: wire.Uint64(data[40:48]),
		Dmq1: wire.Uint64(data[48:56]),
		Iqmp: wire.Uint64(data[56:64]),
	}
}

func sumChecked(lengths ...uint64) (uint64, error) {
	var sum uint64
	for _, l := range lengths {
		next, carry := bits.Add64(sum, l, 0)
		if carry != 0 {
			return 0, ErrInteger
		}
		sum = next
	}
	return sum, nil
}

// checkedBodyLen validates a header-declared body length against the
// allocation cap and the platform int range.
func checkedBodyLen(length uint64, err error) (int, error) {
	if err != nil {
		return 0, err
	}
	if length > MaxBodyLen {
		return 0, ErrCorrupt
	}
	if length > math.MaxInt {
		return 0, ErrInteger
	}
	return int(length), nil
}
