package world

// MinRunLength is the shortest run of pieces of the same kind that counts as
// a match.
const MinRunLength = 3

// Run is a maximal sequence of at least MinRunLength neighboring cells in a
// row or a column whose pieces have the same kind.
type Run struct {
	Cells      []Pt
	Horizontal bool
}

// FindRuns does one full pass over the grid: all rows, top to bottom, then
// all columns, left to right. From each line it only takes the first run it
// finds. Whatever else is in that line is found by the next pass, after the
// first batch has been resolved and the grid has settled.
func (g *Grid) FindRuns() (runs []Run) {
	nRows, nCols := g.Dimensions()
	for y := int64(0); y < nRows; y++ {
		if r, ok := g.firstRun(Pt{0, y}, Pt{1, 0}, nCols); ok {
			r.Horizontal = true
			runs = append(runs, r)
		}
	}
	for x := int64(0); x < nCols; x++ {
		if r, ok := g.firstRun(Pt{x, 0}, Pt{0, 1}, nRows); ok {
			runs = append(runs, r)
		}
	}
	return
}

// firstRun walks n cells from start, in the direction of step.
func (g *Grid) firstRun(start Pt, step Pt, n int64) (r Run, found bool) {
	runStart := int64(0)
	for i := int64(1); i <= n; i++ {
		if i < n {
			prev := g.Get(start.Plus(step.Times(i - 1)))
			cur := g.Get(start.Plus(step.Times(i)))
			if cur.Kind == prev.Kind {
				continue
			}
		}

		// The run [runStart, i) just ended.
		if i-runStart >= MinRunLength {
			for j := runStart; j < i; j++ {
				r.Cells = append(r.Cells, start.Plus(step.Times(j)))
			}
			return r, true
		}
		runStart = i
	}
	return r, false
}

// MatchedCells merges the cells of runs. A cell where a row run crosses a
// column run is only listed once. The order is the order in which the cells
// were found.
func MatchedCells(runs []Run) (cells []Pt) {
	seen := map[Pt]bool{}
	for _, r := range runs {
		for _, c := range r.Cells {
			if !seen[c] {
				seen[c] = true
				cells = append(cells, c)
			}
		}
	}
	return
}
