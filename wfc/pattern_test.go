package wfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintRoundTrip(t *testing.T) {
	c := 5
	n2 := 9
	cases := [][]int{
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{4, 3, 2, 1, 0, 1, 2, 3, 4},
		{4, 4, 4, 4, 4, 4, 4, 4, 4},
	}
	for _, p := range cases {
		fp := fingerprint(p, c)
		got := unfingerprint(fp, c, n2)
		assert.Equal(t, p, got)
	}
}

func TestCheckFingerprintWidthOverflow(t *testing.T) {
	// A palette of 2^32 colors squared over a 4x4 pattern would overflow
	// a uint64 many times over.
	err := checkFingerprintWidth(1<<32, 16)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)

	// A tiny, realistic combination must not overflow.
	assert.NoError(t, checkFingerprintWidth(4, 9))
}

func TestExtractPatternsRejectsTooSmallExemplar(t *testing.T) {
	g := Grid{{0x0, 0x1}}
	opts := Options{IW: 2, IH: 1, OW: 4, OH: 4, PatternSize: 3, PeriodicInput: false, Symmetry: 1, Heuristic: Entropy}
	_, _, err := extractPatterns(g, opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
}
