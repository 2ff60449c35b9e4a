package wfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contains(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func TestCompatibilitySymmetry(t *testing.T) {
	g := Grid{
		{0x000000, 0xFFFFFF, 0x000000, 0xFFFFFF},
		{0xFFFFFF, 0x000000, 0xFFFFFF, 0x000000},
		{0x000000, 0xFFFFFF, 0x000000, 0xFFFFFF},
		{0xFFFFFF, 0x000000, 0xFFFFFF, 0x000000},
	}
	opts := Options{IW: 4, IH: 4, OW: 6, OH: 6, PatternSize: 2, PeriodicInput: true, Symmetry: 8, Heuristic: Entropy}
	_, table, err := extractPatterns(g, opts)
	require.NoError(t, err)
	ct := buildCompatTable(table)

	for d := Direction(0); d < 4; d++ {
		opp := Opposite(d)
		for p1 := 0; p1 < table.Len(); p1++ {
			for p2 := 0; p2 < table.Len(); p2++ {
				forward := contains(ct[d][p1], p2)
				backward := contains(ct[opp][p2], p1)
				assert.Equal(t, forward, backward, "d=%d p1=%d p2=%d", d, p1, p2)
			}
		}
	}
}

func TestOppositeIsInvolution(t *testing.T) {
	for d := Direction(0); d < 4; d++ {
		assert.Equal(t, d, Opposite(Opposite(d)))
	}
}

func TestDirectionOffsetsAreOpposite(t *testing.T) {
	for d := Direction(0); d < 4; d++ {
		opp := Opposite(d)
		assert.Equal(t, -DX[d], DX[opp])
		assert.Equal(t, -DY[d], DY[opp])
	}
}
