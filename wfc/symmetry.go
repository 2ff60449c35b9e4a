package wfc

// symmetryVariants is the canonical D4 variant list: identity, rotate90,
// rotate180, rotate270, reflect, reflect·rotate90, reflect·rotate180,
// reflect·rotate270. The symmetry option selects a prefix of this slice —
// it is built once, not per pattern, precisely so extraction can just
// range over variants[:symmetry].
var symmetryVariants = [8]func(q []int, n int) []int{
	identity,
	rotate90,
	rotate180,
	rotate270,
	reflect,
	func(q []int, n int) []int { return rotate90(reflect(q, n), n) },
	func(q []int, n int) []int { return rotate180(reflect(q, n), n) },
	func(q []int, n int) []int { return rotate270(reflect(q, n), n) },
}

func identity(q []int, n int) []int {
	out := make([]int, len(q))
	copy(out, q)
	return out
}

// rotate90 rotates the N×N buffer 90° counter-clockwise (row 0 at the top).
func rotate90(q []int, n int) []int {
	out := make([]int, len(q))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[x+y*n] = q[(n-1-y)+x*n]
		}
	}
	return out
}

func rotate180(q []int, n int) []int {
	return rotate90(rotate90(q, n), n)
}

func rotate270(q []int, n int) []int {
	return rotate90(rotate180(q, n), n)
}

// reflect flips the N×N buffer horizontally.
func reflect(q []int, n int) []int {
	out := make([]int, len(q))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[x+y*n] = q[(n-1-x)+y*n]
		}
	}
	return out
}
