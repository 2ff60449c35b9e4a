package wfc

import "fmt"

// Heuristic selects which cell the solver observes next.
type Heuristic int

const (
	// Entropy picks the non-singleton cell with lowest Shannon entropy,
	// ties broken by the per-cell noise added at wave init.
	Entropy Heuristic = iota
	// MRV (minimum remaining values) picks the non-singleton cell with
	// the fewest possible patterns, ignoring weights.
	MRV
	// Scanline picks the first non-singleton cell in row-major order.
	// Deterministic regardless of RNG; useful for step-debugging.
	Scanline
)

func (h Heuristic) String() string {
	switch h {
	case Entropy:
		return "entropy"
	case MRV:
		return "mrv"
	case Scanline:
		return "scanline"
	default:
		return fmt.Sprintf("heuristic(%d)", int(h))
	}
}

// Options is the populated configuration record the core consumes. Every
// field is required; Validate checks them before a Session is built from
// them.
type Options struct {
	IW, IH int // exemplar dimensions in pixels
	OW, OH int // output dimensions in pixels

	PatternSize int // N, edge length of N×N patterns; typical 2-4

	PeriodicInput  bool // exemplar wraps during pattern extraction
	PeriodicOutput bool // output wave wraps during solving

	Symmetry int // 1..8, prefix length of the D4 variant list

	Heuristic Heuristic

	Ground bool // pin the bottom output row to the last pattern in the table (index P-1)
}

// WaveWidth returns the derived wave width (MX) for these options.
func (o Options) WaveWidth() int {
	if o.PeriodicOutput {
		return o.OW
	}
	return o.OW - o.PatternSize + 1
}

// WaveHeight returns the derived wave height (MY) for these options.
func (o Options) WaveHeight() int {
	if o.PeriodicOutput {
		return o.OH
	}
	return o.OH - o.PatternSize + 1
}

// Validate reports ErrConfiguration-wrapped errors for any option that
// would make pattern extraction or solving ill-defined. It does not know
// the palette size yet, so the fingerprint-overflow check happens
// separately in the extractor once C is known.
func (o Options) Validate() error {
	if o.PatternSize <= 0 {
		return fmt.Errorf("%w: pattern_size must be positive, got %d", ErrConfiguration, o.PatternSize)
	}
	if o.IW <= 0 || o.IH <= 0 {
		return fmt.Errorf("%w: exemplar dimensions must be positive, got %dx%d", ErrConfiguration, o.IW, o.IH)
	}
	if !o.PeriodicInput && (o.IW < o.PatternSize || o.IH < o.PatternSize) {
		return fmt.Errorf("%w: non-periodic exemplar %dx%d is smaller than pattern_size %d", ErrConfiguration, o.IW, o.IH, o.PatternSize)
	}
	if o.OW < o.PatternSize || o.OH < o.PatternSize {
		return fmt.Errorf("%w: output %dx%d is smaller than pattern_size %d", ErrConfiguration, o.OW, o.OH, o.PatternSize)
	}
	if o.Symmetry < 1 || o.Symmetry > 8 {
		return fmt.Errorf("%w: symmetry must be in [1,8], got %d", ErrConfiguration, o.Symmetry)
	}
	if o.Heuristic != Entropy && o.Heuristic != MRV && o.Heuristic != Scanline {
		return fmt.Errorf("%w: unknown heuristic %d", ErrConfiguration, int(o.Heuristic))
	}
	if o.WaveWidth() <= 0 || o.WaveHeight() <= 0 {
		return fmt.Errorf("%w: derived wave dimensions %dx%d are non-positive", ErrConfiguration, o.WaveWidth(), o.WaveHeight())
	}
	return nil
}
