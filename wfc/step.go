package wfc

// Step API. Run drives a Solver to completion in one call; a viewer
// instead wants to animate one observe/collapse/propagate cycle per
// frame and inspect the wave in between, so this file exposes the same
// loop body Run uses, one iteration at a time.

// Step performs a single observe/collapse/propagate cycle. The first call
// on a fresh Solver applies the ground constraint, if configured, before
// observing. It returns the resulting status: Continue means more steps
// remain, Done means decode is safe to call, Contradiction means the run
// has failed.
func (s *Solver) Step() (CellStatus, error) {
	if !s.cleared {
		s.cleared = true
		if err := s.clear(); err != nil {
			return Contradiction, err
		}
	}

	c, status := s.w.ObserveCell(s.sess.Options.Heuristic)
	if status != Continue {
		return status, nil
	}

	s.steps++
	s.w.Collapse(c, s.rng)
	if s.w.contradiction {
		return Contradiction, nil
	}
	if !s.w.propagate() {
		return Contradiction, nil
	}
	return Continue, nil
}

// Decode reads out the current wave as a Result, exactly as Run does on
// success. Calling it before Step reports Done is meaningful only for
// diagnostics: undecided cells fall back to their first remaining pattern.
func (s *Solver) Decode() *Result { return decode(s.sess, s.w) }

// WaveDims reports the solver's wave width and height in cells.
func (s *Solver) WaveDims() (int, int) { return s.w.mx, s.w.my }

// PatternCount reports how many distinct patterns this solver's session
// extracted.
func (s *Solver) PatternCount() int { return s.sess.Table.Len() }

// PossibleCount reports how many patterns remain possible at cell.
func (s *Solver) PossibleCount(cell int) int { return s.w.counts[cell] }

// RepresentativePattern returns the lowest-indexed pattern still possible
// at cell, or -1 if the cell has been driven to zero.
func (s *Solver) RepresentativePattern(cell int) int { return firstPossible(s.w, cell) }

// PatternTopLeftColor returns the palette color a pattern shows at its
// (0,0) offset, letting a viewer paint one representative pixel per cell
// without decoding the whole wave.
func (s *Solver) PatternTopLeftColor(pattern int) uint32 {
	return s.sess.Palette.Color(s.sess.Table.Patterns[pattern][0])
}
