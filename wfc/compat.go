package wfc

// Direction indexes the four cardinal propagation offsets. DX/DY are
// chosen so that Opposite(d) == 3-d holds, per the canonical convention
// the propagator relies on for symmetric compatibility.
type Direction int

const (
	West Direction = iota
	North
	South
	East
)

// DX and DY give the (dx, dy) offset for each Direction: the cell at
// offset (DX[d], DY[d]) from a cell holding p1 is checked for p2
// compatibility in that direction.
var (
	DX = [4]int{-1, 0, 0, 1}
	DY = [4]int{0, -1, 1, 0}
)

// Opposite returns the reverse direction: West<->East, North<->South.
func Opposite(d Direction) Direction { return 3 - d }

// CompatTable is the propagator: for each direction and pattern p1, the
// sequence of patterns p2 that may legally sit at the cell offset by
// (DX[d], DY[d]) from a cell holding p1.
type CompatTable [4][][]int

// buildCompatTable computes, for every ordered pattern pair and every
// direction, whether the two patterns agree on their overlap region —
// the sole definition of adjacency constraint in overlapping WFC.
func buildCompatTable(pt *PatternTable) CompatTable {
	var ct CompatTable
	p := pt.Len()
	for d := Direction(0); d < 4; d++ {
		ct[d] = make([][]int, p)
		for p1 := 0; p1 < p; p1++ {
			var list []int
			for p2 := 0; p2 < p; p2++ {
				if agrees(pt.Patterns[p1], pt.Patterns[p2], DX[d], DY[d], pt.N) {
					list = append(list, p2)
				}
			}
			ct[d][p1] = list
		}
	}
	return ct
}

// agrees tests whether p1 and p2, two N×N patterns, agree pixel-by-pixel
// on the overlap induced by offset (dx, dy): placing p1 at a cell and p2
// at the cell offset by (dx, dy) is legal iff every overlapping index
// matches.
func agrees(p1, p2 []int, dx, dy, n int) bool {
	xmin, xmax := 0, n
	if dx < 0 {
		xmax = dx + n
	} else {
		xmin = dx
	}
	ymin, ymax := 0, n
	if dy < 0 {
		ymax = dy + n
	} else {
		ymin = dy
	}
	for y := ymin; y < ymax; y++ {
		for x := xmin; x < xmax; x++ {
			if p1[x+n*y] != p2[(x-dx)+n*(y-dy)] {
				return false
			}
		}
	}
	return true
}
