package rsakey

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicOffsetGroupStarts(t *testing.T) {
	tests := []struct {
		name       string
		group      PublicOffsetGroup
		wantStarts PublicStarts
		wantBody   uint64
	}{
		{
			name:       "typical 2048-bit key",
			group:      PublicOffsetGroup{N: 256, E: 3},
			wantStarts: PublicStarts{N: 0, E: 256},
			wantBody:   259,
		},
		{
			name:       "zero-length components",
			group:      PublicOffsetGroup{},
			wantStarts: PublicStarts{},
			wantBody:   0,
		},
		{
			name:       "zero-length exponent",
			group:      PublicOffsetGroup{N: 128},
			wantStarts: PublicStarts{N: 0, E: 128},
			wantBody:   128,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStarts, tt.group.Starts())

			body, err := tt.group.BodyLen()
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestPrivateOffsetGroupStarts(t *testing.T) {
	// The reference layout: n=256, e=3, d=256, p,q=128, dmp1,dmq1,iqmp=128.
	group := PrivateOffsetGroup{N: 256, E: 3, D: 256, P: 128, Q: 128, Dmp1: 128, Dmq1: 128, Iqmp: 128}

	starts := group.Starts()
	assert.Equal(t, uint64(0), starts.N)
	assert.Equal(t, uint64(256), starts.E)
	assert.Equal(t, uint64(259), starts.D)
	assert.Equal(t, uint64(515), starts.P)
	assert.Equal(t, uint64(643), starts.Q)
	assert.Equal(t, uint64(771), starts.Dmp1)
	assert.Equal(t, uint64(899), starts.Dmq1)
	assert.Equal(t, uint64(1027), starts.Iqmp)

	body, err := group.BodyLen()
	require.NoError(t, err)
	assert.Equal(t, uint64(1155), body)

	// Adjacency and closing invariants.
	assert.Equal(t, starts.E, starts.N+group.N)
	assert.Equal(t, starts.D, starts.E+group.E)
	assert.Equal(t, starts.P, starts.D+group.D)
	assert.Equal(t, starts.Q, starts.P+group.P)
	assert.Equal(t, starts.Dmp1, starts.Q+group.Q)
	assert.Equal(t, starts.Dmq1, starts.Dmp1+group.Dmp1)
	assert.Equal(t, starts.Iqmp, starts.Dmq1+group.Dmq1)
	assert.Equal(t, body, starts.Iqmp+group.Iqmp)
}

func TestBodyLenOverflow(t *testing.T) {
	tests := []struct {
		name  string
		group PrivateOffsetGroup
	}{
		{
			name:  "two maximal fields",
			group: PrivateOffsetGroup{N: math.MaxUint64, E: 1},
		},
		{
			name:  "wrap to small value",
			group: PrivateOffsetGroup{N: math.MaxUint64 - 10, D: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.group.BodyLen()
			assert.ErrorIs(t, err, ErrInteger)
		})
	}
}

func TestCheckedBodyLen(t *testing.T) {
	size, err := checkedBodyLen(PublicOffsetGroup{N: 256, E: 3}.BodyLen())
	require.NoError(t, err)
	assert.Equal(t, 259, size)

	_, err = checkedBodyLen(PublicOffsetGroup{N: MaxBodyLen, E: 1}.BodyLen())
	assert.ErrorIs(t, err, ErrCorrupt)
}
