package wfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymmetrySoundness(t *testing.T) {
	// 2x2 checkerboard: B W / W B, periodic input so every 2x2 origin wraps.
	g := Grid{
		{0x000000, 0xFFFFFF},
		{0xFFFFFF, 0x000000},
	}

	t.Run("symmetry=1 sees no rotations", func(t *testing.T) {
		opts := Options{IW: 2, IH: 2, OW: 4, OH: 4, PatternSize: 2, PeriodicInput: true, Symmetry: 1, Heuristic: Entropy}
		require.NoError(t, opts.Validate())
		_, table, err := extractPatterns(g, opts)
		require.NoError(t, err)
		// Every 2x2 origin of a periodic checkerboard yields the same two
		// distinct windows (BWWB and WBBW), so symmetry=1 already sees both.
		assert.Equal(t, 2, table.Len())
	})

	t.Run("symmetry=8 unions the dihedral orbit", func(t *testing.T) {
		opts := Options{IW: 2, IH: 2, OW: 4, OH: 4, PatternSize: 2, PeriodicInput: true, Symmetry: 8, Heuristic: Entropy}
		_, table, err := extractPatterns(g, opts)
		require.NoError(t, err)
		// Every D4 transform maps each checkerboard window either to itself
		// or to the other phase, so the orbit still collapses to 2 distinct
		// patterns.
		assert.Equal(t, 2, table.Len())
	})
}

func TestWeightConservation(t *testing.T) {
	g := Grid{
		{0x000000, 0xFFFFFF, 0x000000, 0xFFFFFF},
		{0xFFFFFF, 0x000000, 0xFFFFFF, 0x000000},
		{0x000000, 0xFFFFFF, 0x000000, 0xFFFFFF},
		{0xFFFFFF, 0x000000, 0xFFFFFF, 0x000000},
	}
	opts := Options{IW: 4, IH: 4, OW: 4, OH: 4, PatternSize: 2, PeriodicInput: true, Symmetry: 4, Heuristic: Entropy}
	_, table, err := extractPatterns(g, opts)
	require.NoError(t, err)

	var total int
	for _, w := range table.Weights {
		total += w
	}
	// xmax=ymax=4 origins (periodic), times symmetry=4 variants each.
	assert.Equal(t, 4*4*4, total)
}

func TestSymmetryVariantsCoverD4(t *testing.T) {
	// An asymmetric 2x2 pattern should produce 8 distinct fingerprints
	// under the full D4 orbit (no accidental self-symmetry).
	base := []int{0, 1, 2, 3}
	seen := make(map[uint64]bool)
	for _, v := range symmetryVariants {
		fp := fingerprint(v(base, 2), 4)
		seen[fp] = true
	}
	assert.Len(t, seen, 8)
}
