package wfc

// Result is what a successful (or optimistically-decoded) Run produces:
// the solved color grid plus a diagnostic channel for the rare case
// where decode is invoked against a wave that isn't actually solved.
type Result struct {
	Width, Height int
	Pixels        [][][3]byte // Pixels[y][x], row-major

	// Contradicted is set when decode found a cell with zero possible
	// patterns and substituted pattern 0 to still produce an image.
	Contradicted bool
	Diagnostics  []string
}

// decode walks every output pixel, maps it back to the wave cell and
// internal pattern offset that owns it, and reads the palette color at
// that offset of whichever pattern the cell resolved to. If a cell
// unexpectedly has zero possibilities, it substitutes pattern 0 and flags
// the result rather than panicking, so a caller that decodes after a
// contradiction (for diagnostics or a viewer) still gets a color grid
// back.
func decode(sess *Session, w *wave) *Result {
	opts := sess.Options
	n := sess.Table.N
	mx, my := w.mx, w.my

	res := &Result{
		Width:  opts.OW,
		Height: opts.OH,
		Pixels: make([][][3]byte, opts.OH),
	}

	for y := 0; y < opts.OH; y++ {
		res.Pixels[y] = make([][3]byte, opts.OW)

		dy := 0
		if !opts.PeriodicOutput && y >= my {
			dy = n - 1
		}
		yCell := y - dy

		for x := 0; x < opts.OW; x++ {
			dx := 0
			if !opts.PeriodicOutput && x >= mx {
				dx = n - 1
			}
			xCell := x - dx

			cellIdx := xCell + yCell*mx

			pattern := firstPossible(w, cellIdx)
			if pattern < 0 {
				pattern = 0
				res.Contradicted = true
				res.Diagnostics = append(res.Diagnostics, fmtDiagnostic(cellIdx, xCell, yCell))
			}

			colorIdx := sess.Table.Patterns[pattern][dx+dy*n]
			color := sess.Palette.Color(colorIdx)
			res.Pixels[y][x] = [3]byte{
				byte(color >> 16),
				byte(color >> 8),
				byte(color),
			}
		}
	}

	return res
}

// firstPossible returns the lowest-indexed still-possible pattern at
// cell, or -1 if none remain. When more than one pattern remains
// (unexpected at success) the first is chosen; this has no semantic
// meaning but keeps decode output stable for tests.
func firstPossible(w *wave, cell int) int {
	for p := 0; p < w.p; p++ {
		if w.Get(cell, p) {
			return p
		}
	}
	return -1
}

func fmtDiagnostic(cell, x, y int) string {
	return "wfc: cell " + itoa(cell) + " (x=" + itoa(x) + ", y=" + itoa(y) + ") had zero possible patterns at decode"
}

// itoa avoids pulling in fmt for a single-value append onto Diagnostics;
// the teacher's own HUD code does the same trick to stay allocation-thin
// on a hot path.
func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
