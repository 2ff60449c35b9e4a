package wfc

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Solver runs one observe/propagate attempt against a Session's shared,
// read-only tables. A Solver instance owns its wave exclusively; callers
// must not touch it concurrently from another goroutine, and a Solver is
// discarded (not reused) once Run returns.
type Solver struct {
	sess *Session
	rng  RandSource
	w    *wave

	// RunID tags this attempt for log correlation across a retry batch.
	RunID uuid.UUID

	steps   int
	cleared bool
}

func newSolver(sess *Session, rng RandSource) *Solver {
	mx, my := sess.Options.WaveWidth(), sess.Options.WaveHeight()
	return &Solver{
		sess:  sess,
		rng:   rng,
		w:     newWave(sess, mx, my, rng),
		RunID: uuid.New(),
	}
}

// Steps reports how many observe/collapse iterations this attempt has
// run so far.
func (s *Solver) Steps() int { return s.steps }

// clear applies the ground constraint: pin the bottom output row to
// pattern index P-1 and ban that pattern everywhere else, before the
// first observation. If it propagates to a contradiction, the run fails
// immediately with ErrGroundFailure.
func (s *Solver) clear() error {
	if !s.sess.Options.Ground {
		return nil
	}
	p := s.sess.Table.Len()
	last := p - 1
	mx, my := s.w.mx, s.w.my

	for x := 0; x < mx; x++ {
		bottom := x + (my-1)*mx
		for pat := 0; pat < last; pat++ {
			s.w.Ban(bottom, pat)
		}
		for y := 0; y < my-1; y++ {
			s.w.Ban(x+y*mx, last)
		}
	}

	if !s.w.propagate() {
		return fmt.Errorf("%w: %w", ErrGroundFailure, ErrContradiction)
	}
	return nil
}

// Run drives the observe-propagate loop to completion: it applies the
// ground constraint (if configured), then repeatedly observes the cell
// chosen by the configured Heuristic, collapses it, and propagates until every cell
// is singleton (success), some cell is empty (ErrContradiction), or ctx
// is done (ErrCancelled). ctx is polled once per observe iteration, so
// cancellation is cooperative rather than preemptive.
func (s *Solver) Run(ctx context.Context) (*Result, error) {
	s.cleared = true
	if err := s.clear(); err != nil {
		return nil, err
	}

	for {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return nil, ErrCancelled
			default:
			}
		}

		c, status := s.w.ObserveCell(s.sess.Options.Heuristic)
		switch status {
		case Done:
			return decode(s.sess, s.w), nil
		case Contradiction:
			return nil, ErrContradiction
		}

		s.steps++
		s.w.Collapse(c, s.rng)
		if s.w.contradiction {
			return nil, ErrContradiction
		}
		if !s.w.propagate() {
			return nil, ErrContradiction
		}
	}
}
