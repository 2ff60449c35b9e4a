package wfc

// Grid is a 2D array of packed 24-bit RGB color values, indexed Grid[y][x].
// It is the sole exemplar input the core accepts; decoding an image file
// into a Grid is wfcimage's job, not this package's.
type Grid [][]uint32

// At samples the grid at (x, y), wrapping modularly. This is how the
// pattern extractor handles both periodic and non-periodic exemplars with
// one loop: callers restrict the origin range, and At does the wrap when
// periodic_input allows an origin near the edge to read past it.
func (g Grid) At(x, y int) uint32 {
	h := len(g)
	w := len(g[0])
	return g[((y%h)+h)%h][((x%w)+w)%w]
}

// Width and Height report the grid's pixel dimensions.
func (g Grid) Width() int  { return len(g[0]) }
func (g Grid) Height() int { return len(g) }
