package world

import "math"

// Physics holds the constants used to integrate a falling column.
type Physics struct {
	Gravity     float64
	ScaleFactor float64
	Restitution float64
}

func (p Params) Physics() Physics {
	return Physics{
		Gravity:     p.Gravity,
		ScaleFactor: p.ScaleFactor,
		Restitution: p.Restitution,
	}
}

// FallState moves a group of pieces down together, as if they were one
// object dropped onto the piece below it. Distances and velocities are in
// meters and meters per second, transforms are in pixels.
//
// The simulation uses the real time between frames, so it accumulates
// floating point error. This doesn't matter because when the column arrives
// the pieces are snapped to Saved + Total, which is exact.
type FallState struct {
	Pieces []*Piece
	Saved  []Affine
	// Total is how many pixels the pieces must travel.
	Total float64

	// DistanceToSurface is how far the column still has to go until it
	// touches the piece below it. DistanceToFinish is how far it still has to
	// go until it reaches its final position. The surface is one margin past
	// the final position, so the column overshoots, bounces and settles.
	DistanceToSurface float64
	DistanceToFinish  float64
	Velocity          float64
	BouncesLeft       int64
	LastUpdate        int64
	Finished          bool
	// Anomaly is set if the column had to be finished without running out of
	// distance, which should not happen for sane parameters.
	Anomaly bool

	// Below is the group that lands right under this one in the same column,
	// if it falls too. Gap is the distance in pixels between the centers of
	// the bottom piece of this group and the top piece of Below when they
	// touch.
	Below *FallState
	Gap   float64

	physics Physics
}

// NewFallState records the current transforms of pieces, which must already
// be at their pre-fall positions.
func NewFallState(pieces []*Piece, total float64, margin float64, bounces int64,
	physics Physics, now int64) *FallState {
	s := &FallState{
		Pieces:            pieces,
		Saved:             make([]Affine, len(pieces)),
		Total:             total,
		DistanceToSurface: (total + margin) / physics.ScaleFactor,
		DistanceToFinish:  total / physics.ScaleFactor,
		BouncesLeft:       bounces,
		LastUpdate:        now,
		physics:           physics,
	}
	for i, p := range pieces {
		s.Saved[i] = p.Transform
	}
	return s
}

// Rebound returns the velocity right after a bounce. The sign flips and a
// part of the speed is lost.
func Rebound(impactVelocity float64, restitution float64) float64 {
	return -restitution * impactVelocity
}

// Step advances the column to the moment now (in nanoseconds) and returns
// true once the column has reached its final position.
func (s *FallState) Step(now int64) bool {
	if s.Finished {
		return true
	}

	g := s.physics.Gravity
	dt := float64(now-s.LastUpdate) / 1e9
	s.LastUpdate = now
	v := s.Velocity

	// s = ut + 0.5at^2
	distance := v*dt + 0.5*g*dt*dt
	if distance <= s.DistanceToSurface {
		s.move(distance)
		s.Velocity = v + g*dt
		s.DistanceToSurface -= distance
		s.DistanceToFinish -= distance

		goingDown := distance > 0
		if s.BouncesLeft == 0 && goingDown && s.DistanceToFinish <= 0 {
			s.finish()
		}
		return s.Finished
	}

	if s.BouncesLeft == 0 {
		// The column went through the surface with no bounces left. Put it
		// where it belongs.
		s.Anomaly = true
		s.finish()
		return true
	}

	s.BouncesLeft--
	surface := math.Max(s.DistanceToSurface, 0)
	// v^2 = u^2 + 2as
	vImpact := math.Sqrt(v*v + 2*g*surface)
	// v = u + at
	tImpact := (vImpact - v) / g
	vRebound := Rebound(vImpact, s.physics.Restitution)
	tAfter := dt - tImpact
	// Negative, the column is above the surface again.
	aboveSurface := vRebound*tAfter + 0.5*g*tAfter*tAfter
	s.Velocity = vRebound + g*tAfter

	// Down to the surface, then up again.
	traveled := surface + aboveSurface
	s.move(traveled)
	s.DistanceToSurface -= traveled
	s.DistanceToFinish -= traveled
	return false
}

// overlapTolerance ignores the rounding error of two groups that just touch.
const overlapTolerance = 1e-6

// RestOn pushes the group back up if it went into the group below it. A
// pushed group moves with the one below until that one falls away from it,
// then it falls again and settles on its own.
func (s *FallState) RestOn(now int64) {
	if s.Below == nil || len(s.Pieces) == 0 || len(s.Below.Pieces) == 0 {
		return
	}
	bottom := s.Pieces[len(s.Pieces)-1].Transform.F
	top := s.Below.Pieces[0].Transform.F
	overlap := bottom - (top - s.Gap)
	if overlap <= overlapTolerance {
		return
	}

	meters := overlap / s.physics.ScaleFactor
	s.move(-meters)
	s.DistanceToSurface += meters
	s.DistanceToFinish += meters
	belowVelocity := 0.0
	if !s.Below.Finished {
		belowVelocity = s.Below.Velocity
	}
	s.Velocity = math.Min(s.Velocity, belowVelocity)
	s.LastUpdate = now
	s.Finished = false
}

func (s *FallState) move(meters float64) {
	dy := meters * s.physics.ScaleFactor
	for _, p := range s.Pieces {
		p.Transform.Translate(0, dy)
	}
}

func (s *FallState) finish() {
	for i, p := range s.Pieces {
		p.Transform = s.Saved[i]
		p.Transform.Translate(0, s.Total)
	}
	s.Finished = true
}
