package wfc

import "math"

// Session owns the read-only tables built once from an exemplar: the
// palette, the pattern table, and the compatibility table. They are
// shareable by reference across many Solver attempts with different RNG
// seeds — building them again for every retry would waste the exemplar
// scan and the O(P²) compatibility pass.
type Session struct {
	Options Options
	Palette *Palette
	Table   *PatternTable
	Compat  CompatTable

	weightLogWeight []float64 // precomputed w*log(w) per pattern
}

// NewSession validates opts, extracts the pattern table from the
// exemplar, and builds the compatibility table. It is split out from the
// per-attempt solver loop so this cost is paid once per exemplar rather
// than once per retry.
func NewSession(exemplar Grid, opts Options) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	pal, table, err := extractPatterns(exemplar, opts)
	if err != nil {
		return nil, err
	}
	compat := buildCompatTable(table)

	wlw := make([]float64, table.Len())
	for i, w := range table.Weights {
		wlw[i] = float64(w) * math.Log(float64(w))
	}

	return &Session{
		Options:         opts,
		Palette:         pal,
		Table:           table,
		Compat:          compat,
		weightLogWeight: wlw,
	}, nil
}

// NewSolver spawns a fresh per-attempt Solver sharing this Session's
// read-only tables. Each Solver gets its own uuid so a retry batch's log
// lines can be correlated back to a specific attempt.
func (s *Session) NewSolver(rng RandSource) *Solver {
	return newSolver(s, rng)
}
