package world

import (
	"go.uber.org/zap"
)

// ShrinkJob scales matched pieces down a bit every frame. Once they are small
// enough they are erased.
type ShrinkJob struct {
	Pieces    []*Piece
	Factor    float64
	Threshold float64
}

func (j *ShrinkJob) Step(now int64) bool {
	done := true
	for _, p := range j.Pieces {
		if p.Transform.ScaleFactor() > j.Threshold {
			done = false
		}
	}
	if done {
		for _, p := range j.Pieces {
			p.Erased = true
		}
		return true
	}

	for _, p := range j.Pieces {
		p.Transform.Scale(j.Factor)
	}
	return false
}

// FallJob steps every falling group of a cascade batch in the same frame, so
// columns that start together stay in sync on screen. A group never goes
// through the group below it in its column.
type FallJob struct {
	States []*FallState
	Log    *zap.Logger
}

func (j *FallJob) Step(now int64) bool {
	done := true
	for _, s := range j.States {
		if s.Finished {
			continue
		}
		if s.Step(now) && s.Anomaly {
			j.Log.Warn("fall: bounces exhausted past the surface, "+
				"column snapped to its final position",
				zap.Int("pieces", len(s.Pieces)),
				zap.Float64("distanceToSurface", s.DistanceToSurface),
				zap.Float64("distanceToFinish", s.DistanceToFinish),
				zap.Float64("velocity", s.Velocity))
		}
	}

	// Groups of a column come top to bottom, settle the lowest ones first.
	for i := len(j.States) - 1; i >= 0; i-- {
		j.States[i].RestOn(now)
	}
	for _, s := range j.States {
		if !s.Finished {
			done = false
		}
	}
	return done
}

// ReturnJob moves pieces in a straight line from one transform to another
// over a fixed number of frames, then snaps them to the destination.
type ReturnJob struct {
	Pieces []*Piece
	From   []Affine
	To     []Affine
	Ticks  int64
	tick   int64
}

func NewReturnJob(pieces []*Piece, to []Affine, ticks int64) *ReturnJob {
	j := &ReturnJob{
		Pieces: pieces,
		From:   make([]Affine, len(pieces)),
		To:     to,
		Ticks:  ticks,
	}
	for i, p := range pieces {
		j.From[i] = p.Transform
	}
	return j
}

func (j *ReturnJob) Step(now int64) bool {
	j.tick++
	if j.tick >= j.Ticks {
		for i, p := range j.Pieces {
			p.Transform = j.To[i]
		}
		return true
	}

	t := float64(j.tick) / float64(j.Ticks)
	for i, p := range j.Pieces {
		p.Transform = Lerp(j.From[i], j.To[i], t)
	}
	return false
}

// Lerp interpolates every component of the two transforms.
func Lerp(a, b Affine, t float64) Affine {
	f := func(x, y float64) float64 { return x + (y-x)*t }
	return Affine{
		A: f(a.A, b.A),
		B: f(a.B, b.B),
		C: f(a.C, b.C),
		D: f(a.D, b.D),
		E: f(a.E, b.E),
		F: f(a.F, b.F),
	}
}
