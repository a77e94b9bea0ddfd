package world

import "math"

type drag struct {
	start   Pt
	origin  Vec
	preview *PreviewJob
}

// Dominant reduces a displacement to the axis it mostly goes along. dir is
// one of the four unit steps, or zero if there is no displacement. When both
// components are equal the horizontal axis wins.
func Dominant(d Vec) (dir Pt, magnitude float64) {
	ax, ay := math.Abs(d.X), math.Abs(d.Y)
	if ax == 0 && ay == 0 {
		return Pt{}, 0
	}
	if ax >= ay {
		if d.X > 0 {
			return Pt{1, 0}, ax
		}
		return Pt{-1, 0}, ax
	}
	if d.Y > 0 {
		return Pt{0, 1}, ay
	}
	return Pt{0, -1}, ay
}

// PreviewJob shows a swap in progress: the dragged piece follows the pointer
// along the dominant axis, for at most one cell, and the neighbor it is
// dragged towards moves the opposite way. It never ends by itself, the end of
// the gesture cancels it.
type PreviewJob struct {
	Start        Pt
	Displacement Vec

	w        *World
	saved    map[*Piece]Affine
	order    []*Piece
	neighbor *Piece
}

func newPreviewJob(w *World, start Pt) *PreviewJob {
	j := &PreviewJob{Start: start, w: w, saved: map[*Piece]Affine{}}
	j.save(w.Grid.Get(start))
	return j
}

func (j *PreviewJob) save(p *Piece) {
	if _, ok := j.saved[p]; !ok {
		j.saved[p] = p.Transform
		j.order = append(j.order, p)
	}
}

func (j *PreviewJob) Step(now int64) bool {
	dir, magnitude := Dominant(j.Displacement)
	magnitude = math.Min(magnitude, j.w.Layout.Spacing())

	target := j.Start.Plus(dir)
	var neighbor *Piece
	if dir != (Pt{}) && j.w.Grid.InBounds(target) {
		neighbor = j.w.Grid.Get(target)
		j.save(neighbor)
	} else {
		magnitude = 0
	}

	// The pointer moved to another neighbor, put the old one back.
	if j.neighbor != nil && j.neighbor != neighbor {
		j.neighbor.Transform = j.saved[j.neighbor]
	}
	j.neighbor = neighbor

	dx := float64(dir.X) * magnitude
	dy := float64(dir.Y) * magnitude
	dragged := j.w.Grid.Get(j.Start)
	dragged.Transform = j.saved[dragged]
	dragged.Transform.Translate(dx, dy)
	if neighbor != nil {
		neighbor.Transform = j.saved[neighbor]
		neighbor.Transform.Translate(-dx, -dy)
	}
	return false
}

// Rest returns the transform p had when the gesture started.
func (j *PreviewJob) Rest(p *Piece) Affine {
	if t, ok := j.saved[p]; ok {
		return t
	}
	// The preview never moved it.
	return p.Transform
}

// Pieces returns the pieces the preview moved and the transforms they had
// when the gesture started.
func (j *PreviewJob) Pieces() ([]*Piece, []Affine) {
	rest := make([]Affine, len(j.order))
	for i, p := range j.order {
		rest[i] = j.saved[p]
	}
	return j.order, rest
}

func (w *World) gestureStart(pos Vec) {
	if w.state != Idle {
		return
	}
	cell := w.Layout.PixelToCell(pos)
	if !w.Grid.InBounds(cell) {
		return
	}
	w.state = Dragging
	w.drag = &drag{start: cell, origin: pos}
	w.drag.preview = newPreviewJob(w, cell)
	w.scheduler.Add(w.drag.preview, nil)
}

func (w *World) gestureMove(pos Vec) {
	w.drag.preview.Displacement = pos.Minus(w.drag.origin)
}

func (w *World) gestureEnd(pos Vec) {
	if w.state != Dragging {
		return
	}
	d := w.drag
	w.drag = nil
	w.scheduler.Cancel(d.preview)
	pieces, rest := d.preview.Pieces()

	dir, magnitude := Dominant(pos.Minus(d.origin))
	target := d.start.Plus(dir)
	if dir == (Pt{}) || !w.Grid.InBounds(target) ||
		magnitude <= w.Layout.Spacing()/2 {
		w.animateBack(pieces, rest)
		return
	}

	// The preview hasn't seen the last position, it may have moved a
	// neighbor other than the target.
	for i, p := range pieces {
		p.Transform = rest[i]
	}
	a := w.Grid.Get(d.start)
	b := w.Grid.Get(target)
	w.commitSwap(d.start, target, d.preview.Rest(a), d.preview.Rest(b))
}

// TrySwap swaps the pieces in two neighboring cells, as if the player dragged
// one onto the other. It does nothing and returns false if the World is busy
// or the cells are not neighbors inside the grid.
func (w *World) TrySwap(a, b Pt) bool {
	if w.state != Idle {
		return false
	}
	if !w.Grid.InBounds(a) || !w.Grid.InBounds(b) || !w.Grid.Adjacent(a, b) {
		return false
	}
	w.commitSwap(a, b, w.Grid.Get(a).Transform, w.Grid.Get(b).Transform)
	return true
}

// commitSwap exchanges the pieces in a and b. restA and restB are the
// transforms the pieces had before the gesture started, each piece takes the
// other's.
func (w *World) commitSwap(a, b Pt, restA, restB Affine) {
	pa := w.Grid.Get(a)
	pb := w.Grid.Get(b)
	w.Grid.Set(a, pb)
	w.Grid.Set(b, pa)
	pa.Transform = restB
	pb.Transform = restA
	if w.OnSwap != nil {
		w.OnSwap(a, b)
	}

	runs := w.Grid.FindRuns()
	if len(runs) > 0 {
		w.startBatch(runs)
		return
	}

	if w.Params.RevertUnmatchedSwap {
		w.Grid.Set(a, pa)
		w.Grid.Set(b, pb)
		w.animateBack([]*Piece{pa, pb}, []Affine{restA, restB})
		return
	}
	w.state = Idle
}

func (w *World) animateBack(pieces []*Piece, rest []Affine) {
	w.state = Animating
	job := NewReturnJob(pieces, rest, w.Params.ReturnTicks)
	w.scheduler.Add(job, func() { w.state = Idle })
}
