package wfcconfig

import (
	"flag"
	"fmt"

	"github.com/MyUsernamee/go-wfc/wfc"
)

// FlagOptions binds wfc.Options fields to a flag.FlagSet. Call fs.Parse
// followed by Resolve to populate Options from the command line.
type FlagOptions struct {
	Options   wfc.Options
	heuristic string
}

// FromFlags registers wfc.Options fields on fs, seeded from defaults.
// Options is only valid after fs.Parse and Resolve have both run, since the
// heuristic flag is a string until then.
func FromFlags(fs *flag.FlagSet, defaults wfc.Options) *FlagOptions {
	fo := &FlagOptions{Options: defaults, heuristic: defaults.Heuristic.String()}
	o := &fo.Options

	fs.IntVar(&o.OW, "output-width", o.OW, "output image width in pixels")
	fs.IntVar(&o.OH, "output-height", o.OH, "output image height in pixels")
	fs.IntVar(&o.PatternSize, "pattern-size", o.PatternSize, "N: edge length of extracted N×N patterns")
	fs.IntVar(&o.Symmetry, "symmetry", o.Symmetry, "1-8: how many D4 orientations to extract per pattern")
	fs.BoolVar(&o.PeriodicInput, "periodic-input", o.PeriodicInput, "treat the exemplar as wrapping")
	fs.BoolVar(&o.PeriodicOutput, "periodic-output", o.PeriodicOutput, "wrap the output wave")
	fs.BoolVar(&o.Ground, "ground", o.Ground, "pin the bottom output row to the last pattern in the table")
	fs.StringVar(&fo.heuristic, "heuristic", fo.heuristic, "entropy | mrv | scanline")

	return fo
}

// Resolve finalizes the string-typed heuristic flag into an
// wfc.Heuristic, and must be called after fs.Parse.
func (fo *FlagOptions) Resolve() error {
	h, err := parseHeuristic(fo.heuristic)
	if err != nil {
		return fmt.Errorf("%w: %v", wfc.ErrConfiguration, err)
	}
	fo.Options.Heuristic = h
	return nil
}
