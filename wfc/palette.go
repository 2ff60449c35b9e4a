package wfc

// Palette is the ordered, deduplicated list of 24-bit colors encountered
// in an exemplar, in first-appearance order. Its length is the base of
// the pattern fingerprint encoding.
type Palette struct {
	colors []uint32
	index  map[uint32]int
}

// newPalette builds a palette by a single pass over the exemplar,
// assigning each newly-seen color the next integer index.
func newPalette(g Grid) *Palette {
	p := &Palette{index: make(map[uint32]int)}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p.add(g.At(x, y))
		}
	}
	return p
}

func (p *Palette) add(c uint32) int {
	if i, ok := p.index[c]; ok {
		return i
	}
	i := len(p.colors)
	p.colors = append(p.colors, c)
	p.index[c] = i
	return i
}

// IndexOf returns the palette index of a color that must already have
// been added during extraction.
func (p *Palette) IndexOf(c uint32) int { return p.index[c] }

// Color returns the packed 24-bit color for a palette index.
func (p *Palette) Color(i int) uint32 { return p.colors[i] }

// Size returns C, the number of distinct colors in the palette.
func (p *Palette) Size() int { return len(p.colors) }
