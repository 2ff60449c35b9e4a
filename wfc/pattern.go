package wfc

import (
	"fmt"
	"math"
)

// PatternTable is the ordered, deduplicated sequence of N×N patterns
// observed in an exemplar after symmetry expansion, together with their
// occurrence weights. Index i is the stable pattern identifier used by
// the compatibility table, the wave, and the decoder.
type PatternTable struct {
	N        int
	C        int
	Patterns [][]int // Patterns[i] has length N*N, palette indices, row-major
	Weights  []int
}

// Len returns P, the number of distinct patterns.
func (pt *PatternTable) Len() int { return len(pt.Patterns) }

// fingerprint encodes a length-N² palette-index sequence as a base-C
// integer via Horner's method: Σ pᵢ·C^(N²−1−i). It is the pattern's
// content-addressed identity for deduplication.
func fingerprint(p []int, c int) uint64 {
	var fp uint64
	for _, v := range p {
		fp = fp*uint64(c) + uint64(v)
	}
	return fp
}

// unfingerprint inverts fingerprint, decoding a base-C integer back into
// its N² palette-index sequence, most-significant digit first.
func unfingerprint(fp uint64, c, n2 int) []int {
	out := make([]int, n2)
	for i := n2 - 1; i >= 0; i-- {
		out[i] = int(fp % uint64(c))
		fp /= uint64(c)
	}
	return out
}

// checkFingerprintWidth validates that C^(N²) fits in a uint64, per the
// extractor's documented overflow error.
func checkFingerprintWidth(c, n2 int) error {
	if c <= 1 {
		return nil
	}
	var power uint64 = 1
	for i := 0; i < n2; i++ {
		if power > math.MaxUint64/uint64(c) {
			return fmt.Errorf("%w: fingerprint width overflow for palette size %d and pattern size^2 %d", ErrConfiguration, c, n2)
		}
		power *= uint64(c)
	}
	return nil
}

// extractPatterns builds the palette, scans every pattern origin in
// row-major, x-innermost order (fixed so the same exemplar always yields
// the same pattern indices), expands each origin under the requested
// symmetry prefix, and deduplicates by fingerprint.
func extractPatterns(g Grid, opts Options) (*Palette, *PatternTable, error) {
	pal := newPalette(g)
	c := pal.Size()
	n := opts.PatternSize
	n2 := n * n

	if err := checkFingerprintWidth(c, n2); err != nil {
		return nil, nil, err
	}

	xmax := opts.IW
	if !opts.PeriodicInput {
		xmax = opts.IW - n + 1
	}
	ymax := opts.IH
	if !opts.PeriodicInput {
		ymax = opts.IH - n + 1
	}
	if xmax <= 0 || ymax <= 0 {
		return nil, nil, fmt.Errorf("%w: exemplar %dx%d too small for pattern_size %d", ErrConfiguration, opts.IW, opts.IH, n)
	}

	counts := make(map[uint64]int)
	var ordering []uint64

	base := make([]int, n2)
	for y := 0; y < ymax; y++ {
		for x := 0; x < xmax; x++ {
			for dy := 0; dy < n; dy++ {
				for dx := 0; dx < n; dx++ {
					base[dx+dy*n] = pal.IndexOf(g.At(x+dx, y+dy))
				}
			}

			for v := 0; v < opts.Symmetry; v++ {
				variant := symmetryVariants[v](base, n)
				fp := fingerprint(variant, c)
				if counts[fp] == 0 {
					ordering = append(ordering, fp)
				}
				counts[fp]++
			}
		}
	}

	pt := &PatternTable{
		N:        n,
		C:        c,
		Patterns: make([][]int, len(ordering)),
		Weights:  make([]int, len(ordering)),
	}
	for i, fp := range ordering {
		pt.Patterns[i] = unfingerprint(fp, c, n2)
		pt.Weights[i] = counts[fp]
	}
	return pal, pt, nil
}
