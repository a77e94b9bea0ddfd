package world

import (
	"slices"

	"go.uber.org/zap"
)

// ColumnAggregate is what a batch of matches removes from one column.
type ColumnAggregate struct {
	Col    int64
	Count  int64
	TopRow int64
}

// Aggregate groups matched cells by column, in ascending column order.
func Aggregate(cells []Pt) (aggs []ColumnAggregate) {
	byCol := map[int64]*ColumnAggregate{}
	for _, c := range cells {
		a, ok := byCol[c.X]
		if !ok {
			a = &ColumnAggregate{Col: c.X, TopRow: c.Y}
			byCol[c.X] = a
		}
		a.Count++
		a.TopRow = min(a.TopRow, c.Y)
	}
	for _, a := range byCol {
		aggs = append(aggs, *a)
	}
	slices.SortFunc(aggs, func(a, b ColumnAggregate) int {
		return int(a.Col - b.Col)
	})
	return
}

// startBatch shrinks the matched pieces, then resolves them.
func (w *World) startBatch(runs []Run) {
	w.state = Animating
	w.nBatches++
	cells := MatchedCells(runs)
	pieces := make([]*Piece, len(cells))
	for i, c := range cells {
		pieces[i] = w.Grid.Get(c)
	}

	w.Log.Debug("cascade batch",
		zap.Int64("batch", w.nBatches),
		zap.Int("runs", len(runs)),
		zap.Int("removed", len(cells)))

	shrink := &ShrinkJob{
		Pieces:    pieces,
		Factor:    w.Params.ShrinkFactor,
		Threshold: w.Params.ShrinkThreshold,
	}
	w.scheduler.Add(shrink, func() { w.resolveBatch(cells) })
}

func (w *World) resolveBatch(cells []Pt) {
	states := w.Resolve(cells)
	w.Score += int64(len(cells))
	if w.OnScore != nil {
		w.OnScore(int64(len(cells)))
	}
	w.scheduler.Add(&FallJob{States: states, Log: w.Log}, w.settle)
}

// settle runs when everything has landed. The board is scanned again from
// scratch and the next batch starts, until a whole pass finds nothing.
func (w *World) settle() {
	runs := w.Grid.FindRuns()
	if len(runs) > 0 {
		w.startBatch(runs)
		return
	}
	w.state = Idle
}

// Resolve removes the pieces in cells from the grid, moves the pieces above
// them down and puts new pieces on top, all at once. Only the grid changes,
// the transforms of the moved and new pieces stay where the pieces were before
// the fall. The returned states animate them to their new cells.
//
// In a column, each surviving piece moves down by the number of removed cells
// below it. Pieces that move by the same distance fall together. When the
// removed cells of a column are contiguous, which is the usual case, that is a
// single group per column: the pieces above the removed ones plus the new
// ones. Otherwise each group rests on the one below it while they fall.
func (w *World) Resolve(cells []Pt) (states []*FallState) {
	removed := map[Pt]bool{}
	for _, c := range cells {
		removed[c] = true
	}

	nRows, _ := w.Grid.Dimensions()
	spacing := w.Layout.Spacing()
	for _, agg := range Aggregate(cells) {
		col := agg.Col
		column := make([]*Piece, nRows)
		shiftOf := map[*Piece]int64{}

		// Compact the survivors towards the bottom.
		shift := int64(0)
		for y := nRows - 1; y >= 0; y-- {
			pos := Pt{col, y}
			if removed[pos] {
				shift++
				continue
			}
			p := w.Grid.Get(pos)
			column[y+shift] = p
			if shift > 0 {
				shiftOf[p] = shift
			}
		}

		// Spawn new pieces above the grid, bottom one first so that it can
		// look at what ends up below it.
		for y := agg.Count - 1; y >= 0; y-- {
			var below *Piece
			if y+1 < nRows {
				below = column[y+1]
			}
			t := w.Layout.RestTransform(Pt{col, y})
			t.Translate(0, -float64(agg.Count)*spacing)
			p := w.newPiece(w.spawnAsset(below), t)
			column[y] = p
			shiftOf[p] = agg.Count
		}

		// Group the pieces by distance, keeping them in top to bottom order.
		var groups [][]*Piece
		var distances []int64
		for y := int64(0); y < nRows; y++ {
			p := column[y]
			w.Grid.Set(Pt{col, y}, p)
			d, ok := shiftOf[p]
			if !ok {
				continue
			}
			i := slices.Index(distances, d)
			if i < 0 {
				distances = append(distances, d)
				groups = append(groups, nil)
				i = len(groups) - 1
			}
			groups[i] = append(groups[i], p)
		}

		var above *FallState
		for i := range groups {
			s := NewFallState(groups[i], float64(distances[i])*spacing,
				w.Layout.Margin, w.Params.Bounces, w.Params.Physics(), w.now)
			if above != nil {
				above.Below = s
				above.Gap = 2 * w.Layout.Radius
			}
			above = s
			states = append(states, s)
		}
	}
	return
}

func (w *World) spawnAsset(below *Piece) Asset {
	for {
		a := w.randomAsset()
		if !w.Params.SpawnDistinctFromBelow || below == nil ||
			a.Kind != below.Kind {
			return a
		}
	}
}
