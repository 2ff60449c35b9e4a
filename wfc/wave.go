package wfc

import "math"

// CellStatus is returned by ObserveCell.
type CellStatus int

const (
	// Continue indicates a cell was returned to collapse.
	Continue CellStatus = iota
	// Done indicates every cell is already singleton.
	Done
	// Contradiction indicates some cell has zero possible patterns.
	Contradiction
)

// wave is the dense cell×pattern boolean matrix plus per-cell entropy
// bookkeeping. It is built once per Solver run, mutated monotonically
// (bans only), and discarded when the run ends.
type wave struct {
	mx, my, p int
	periodic  bool

	possible []bool // flat mx*my*p

	counts          []int     // remaining pattern count per cell
	sumWeights      []float64 // per cell
	sumWeightLogW   []float64 // per cell
	noise           []float64 // per-cell tie-break noise, fixed at init

	weights         []int
	weightLogWeight []float64

	support []int32 // flat (cell*p+pattern)*4+direction
	compat  CompatTable

	queue []banEvent

	contradiction bool
}

type banEvent struct {
	cell    int
	pattern int
}

func newWave(sess *Session, mx, my int, rng RandSource) *wave {
	p := sess.Table.Len()
	n := mx * my

	w := &wave{
		mx: mx, my: my, p: p,
		periodic:        sess.Options.PeriodicOutput,
		possible:        make([]bool, n*p),
		counts:          make([]int, n),
		sumWeights:      make([]float64, n),
		sumWeightLogW:   make([]float64, n),
		noise:           make([]float64, n),
		weights:         sess.Table.Weights,
		weightLogWeight: sess.weightLogWeight,
		compat:          sess.Compat,
		queue:           make([]banEvent, 0, n*p),
	}

	var totalW, totalWLW float64
	for _, wt := range w.weights {
		totalW += float64(wt)
		totalWLW += float64(wt) * math.Log(float64(wt))
	}

	for c := 0; c < n; c++ {
		for pat := 0; pat < p; pat++ {
			w.possible[c*p+pat] = true
		}
		w.counts[c] = p
		w.sumWeights[c] = totalW
		w.sumWeightLogW[c] = totalWLW
		w.noise[c] = rng.Float64() * 1e-6
	}

	w.support = make([]int32, n*p*4)
	for d := Direction(0); d < 4; d++ {
		for pat := 0; pat < p; pat++ {
			degree := int32(len(w.compat[Opposite(d)][pat]))
			for c := 0; c < n; c++ {
				w.support[(c*p+pat)*4+int(d)] = degree
			}
		}
	}

	return w
}

func (w *wave) idx(cell, pattern int) int { return cell*w.p + pattern }

// Get reports whether pattern is still possible at cell.
func (w *wave) Get(cell, pattern int) bool { return w.possible[w.idx(cell, pattern)] }

// Ban marks pattern impossible at cell. It is a no-op if already banned.
// Otherwise it updates the cell's entropy bookkeeping and enqueues the
// ban for the propagator.
func (w *wave) Ban(cell, pattern int) {
	i := w.idx(cell, pattern)
	if !w.possible[i] {
		return
	}
	w.possible[i] = false
	w.counts[cell]--
	wt := float64(w.weights[pattern])
	w.sumWeights[cell] -= wt
	w.sumWeightLogW[cell] -= w.weightLogWeight[pattern]

	w.queue = append(w.queue, banEvent{cell: cell, pattern: pattern})

	if w.counts[cell] == 0 {
		w.contradiction = true
	}
}

// entropy computes the Shannon entropy of the weighted distribution of
// still-possible patterns at cell, using the log(W) - ΣwlogW/W identity
// so it never needs to re-sum the domain. A singleton or contradicted
// cell has entropy zero.
func (w *wave) entropy(cell int) float64 {
	if w.counts[cell] <= 1 {
		return 0
	}
	sw := w.sumWeights[cell]
	if sw <= 0 {
		return 0
	}
	return math.Log(sw) - w.sumWeightLogW[cell]/sw
}

// ObserveCell picks the next cell to collapse according to h: Entropy
// picks the non-singleton cell with lowest entropy (ties broken by the
// fixed per-cell noise), MRV picks fewest remaining patterns, Scanline
// picks the first non-singleton cell in row-major order.
func (w *wave) ObserveCell(h Heuristic) (int, CellStatus) {
	if w.contradiction {
		return -1, Contradiction
	}

	best := -1
	bestKey := math.Inf(1)

	for c := 0; c < w.mx*w.my; c++ {
		if w.counts[c] == 0 {
			return -1, Contradiction
		}
		if w.counts[c] == 1 {
			continue
		}

		var key float64
		switch h {
		case MRV:
			key = float64(w.counts[c])
		case Scanline:
			return c, Continue
		default: // Entropy
			key = w.entropy(c) + w.noise[c]
		}

		if key < bestKey {
			bestKey = key
			best = c
		}
	}

	if best < 0 {
		return -1, Done
	}
	return best, Continue
}

// Collapse chooses one remaining pattern at cell by weighted random draw
// and bans every other pattern still possible there.
func (w *wave) Collapse(cellIdx int, rng RandSource) {
	var total float64
	for pat := 0; pat < w.p; pat++ {
		if w.Get(cellIdx, pat) {
			total += float64(w.weights[pat])
		}
	}
	if total <= 0 {
		w.contradiction = true
		return
	}

	r := rng.Float64() * total
	chosen := -1
	for pat := 0; pat < w.p; pat++ {
		if !w.Get(cellIdx, pat) {
			continue
		}
		r -= float64(w.weights[pat])
		if r <= 0 {
			chosen = pat
			break
		}
	}
	if chosen < 0 {
		// floating point rounding landed us past the last option
		for pat := w.p - 1; pat >= 0; pat-- {
			if w.Get(cellIdx, pat) {
				chosen = pat
				break
			}
		}
	}

	for pat := 0; pat < w.p; pat++ {
		if pat != chosen && w.Get(cellIdx, pat) {
			w.Ban(cellIdx, pat)
		}
	}
}
