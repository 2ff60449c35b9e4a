// Command wfc-gen runs the overlapping wave function collapse solver
// against an exemplar image and writes a solved output image, retrying
// with fresh RNG seeds on contradiction.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/MyUsernamee/go-wfc/wfc"
	"github.com/MyUsernamee/go-wfc/wfcconfig"
	"github.com/MyUsernamee/go-wfc/wfcimage"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("wfc-gen: ")

	var (
		exemplarPath = flag.String("exemplar", "", "path to the exemplar PNG/GIF (required)")
		outputPath   = flag.String("output", "out.png", "path to write the solved PNG")
		settingsPath = flag.String("config", "", "optional key=value settings file, overridden by flags")
		scale        = flag.Int("scale", 4, "nearest-neighbor upscale factor for the saved image")
		maxAttempts  = flag.Int("max-attempts", 10, "retry budget before giving up on contradiction")
		seed         = flag.Int64("seed", 0, "RNG seed; 0 picks one from the current time")
		timeout      = flag.Duration("timeout", 30*time.Second, "per-attempt time budget")
	)

	defaults := wfc.Options{OW: 48, OH: 48, PatternSize: 3, Symmetry: 8, Heuristic: wfc.Entropy}
	fo := wfcconfig.FromFlags(flag.CommandLine, defaults)
	flag.Parse()
	if *settingsPath != "" {
		loaded, err := wfcconfig.Load(*settingsPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		// Rebind onto the loaded settings and replay the flags given on the
		// command line, so they still override the file.
		fs := flag.NewFlagSet("config", flag.ContinueOnError)
		fo = wfcconfig.FromFlags(fs, loaded)
		flag.Visit(func(f *flag.Flag) {
			if fs.Lookup(f.Name) != nil {
				fs.Set(f.Name, f.Value.String())
			}
		})
	}
	if err := fo.Resolve(); err != nil {
		log.Fatalf("resolving flags: %v", err)
	}

	if *exemplarPath == "" {
		fmt.Fprintln(os.Stderr, "wfc-gen: -exemplar is required")
		flag.Usage()
		os.Exit(2)
	}

	exemplar, err := wfcimage.LoadExemplar(*exemplarPath)
	if err != nil {
		log.Fatalf("loading exemplar: %v", err)
	}

	opts := fo.Options
	opts.IW = exemplar.Width()
	opts.IH = exemplar.Height()

	sess, err := wfc.NewSession(exemplar, opts)
	if err != nil {
		log.Fatalf("building session: %v", err)
	}
	log.Printf("extracted %d patterns from %dx%d exemplar", sess.Table.Len(), opts.IW, opts.IH)

	batchID := uuid.New()
	baseSeed := *seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	var result *wfc.Result
	for attempt := 1; attempt <= *maxAttempts; attempt++ {
		rng := rand.New(rand.NewSource(baseSeed + int64(attempt)))
		solver := sess.NewSolver(rng)

		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		res, runErr := solver.Run(ctx)
		cancel()

		if runErr == nil {
			log.Printf("batch=%s attempt=%d run=%s steps=%d succeeded", batchID, attempt, solver.RunID, solver.Steps())
			result = res
			break
		}

		log.Printf("batch=%s attempt=%d run=%s steps=%d failed: %v", batchID, attempt, solver.RunID, solver.Steps(), runErr)
		if !errors.Is(runErr, wfc.ErrContradiction) {
			log.Fatalf("unrecoverable error: %v", runErr)
		}
	}

	if result == nil {
		log.Fatalf("exhausted %d attempts without a solution", *maxAttempts)
	}
	if result.Contradicted {
		for _, d := range result.Diagnostics {
			log.Printf("diagnostic: %s", d)
		}
	}

	if err := wfcimage.SaveOutput(*outputPath, result, *scale); err != nil {
		log.Fatalf("saving output: %v", err)
	}
	log.Printf("wrote %s", *outputPath)
}
