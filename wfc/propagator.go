package wfc

// propagate drains the ban queue built up by Collapse/Ban calls: for
// every banned (cell, pattern), each neighbor loses one unit of support
// for every pattern that relied on the banned one, and any neighbor
// pattern whose support hits zero is banned in turn, cascading further
// events onto the same queue.
//
// Returns false the moment any cell is left with zero possibilities.
func (w *wave) propagate() bool {
	for head := 0; head < len(w.queue); head++ {
		ev := w.queue[head]
		x := ev.cell % w.mx
		y := ev.cell / w.mx

		for d := Direction(0); d < 4; d++ {
			nx, ny := x+DX[d], y+DY[d]
			if w.periodic {
				nx = ((nx % w.mx) + w.mx) % w.mx
				ny = ((ny % w.my) + w.my) % w.my
			} else if nx < 0 || nx >= w.mx || ny < 0 || ny >= w.my {
				continue
			}
			neighbor := ny*w.mx + nx

			for _, p2 := range w.compat[d][ev.pattern] {
				si := (neighbor*w.p+p2)*4 + int(d)
				w.support[si]--
				if w.support[si] < 0 {
					panic("wfc: support counter went negative")
				}
				if w.support[si] == 0 {
					w.Ban(neighbor, p2)
					if w.contradiction {
						return false
					}
				}
			}
		}
	}

	// truncate so a Solver reused for ground-then-run doesn't replay
	// events (the queue is only ever drained forward, never rewound).
	w.queue = w.queue[:0]
	return !w.contradiction
}
