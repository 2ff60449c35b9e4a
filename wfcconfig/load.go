package wfcconfig

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/MyUsernamee/go-wfc/wfc"
)

// Load reads a key=value settings file into an Options record. Blank lines
// and lines starting with '#' are ignored. Unknown keys are an error, since
// a silently-ignored typo in pattern_size or ground is exactly the kind of
// mistake this format exists to catch.
func Load(path string) (wfc.Options, error) {
	var opts wfc.Options

	f, err := os.Open(path)
	if err != nil {
		return opts, fmt.Errorf("wfcconfig: open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			return opts, fmt.Errorf("%w: %s:%d: expected key=value, got %q", wfc.ErrConfiguration, path, lineNo, line)
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		if err := setField(&opts, key, val); err != nil {
			return opts, fmt.Errorf("%w: %s:%d: %v", wfc.ErrConfiguration, path, lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return opts, fmt.Errorf("wfcconfig: read %s: %w", path, err)
	}
	return opts, nil
}

func setField(o *wfc.Options, key, val string) error {
	switch key {
	case "input_width":
		return setInt(&o.IW, val)
	case "input_height":
		return setInt(&o.IH, val)
	case "output_width":
		return setInt(&o.OW, val)
	case "output_height":
		return setInt(&o.OH, val)
	case "pattern_size":
		return setInt(&o.PatternSize, val)
	case "symmetry":
		return setInt(&o.Symmetry, val)
	case "periodic_input":
		return setBool(&o.PeriodicInput, val)
	case "periodic_output":
		return setBool(&o.PeriodicOutput, val)
	case "ground":
		return setBool(&o.Ground, val)
	case "heuristic":
		h, err := parseHeuristic(val)
		if err != nil {
			return err
		}
		o.Heuristic = h
		return nil
	default:
		return fmt.Errorf("unknown key %q", key)
	}
}

func setInt(dst *int, val string) error {
	v, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("expected integer, got %q", val)
	}
	*dst = v
	return nil
}

func setBool(dst *bool, val string) error {
	v, err := strconv.ParseBool(val)
	if err != nil {
		return fmt.Errorf("expected boolean, got %q", val)
	}
	*dst = v
	return nil
}

func parseHeuristic(val string) (wfc.Heuristic, error) {
	switch strings.ToLower(val) {
	case "entropy":
		return wfc.Entropy, nil
	case "mrv":
		return wfc.MRV, nil
	case "scanline":
		return wfc.Scanline, nil
	default:
		return 0, fmt.Errorf("unknown heuristic %q", val)
	}
}
