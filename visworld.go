package main

import (
	"image/color"

	"github.com/marisvali/counters/world"
)

// RingSteps is how long the ring of a popped counter lasts.
const RingSteps = 8

// Ring is an effect that appears where a counter starts to shrink away,
// grows and fades. It doesn't represent an entity of the World, it is a
// standalone effect, like a splash.
type Ring struct {
	Center    world.Vec
	Radius    float64
	Color     color.NRGBA
	Animation Animation
}

// VisWorld is a world parallel to World that holds "visual logic". Its role is
// to store data and execute logic for ongoing visual effects. Draw() relies on
// the information in VisWorld to draw things, just like it relies on World.
//
// VisWorld runs parallel to World and is updated alongside World, in the
// Update() function. It only looks at what the World shows, so it works the
// same during playback.
type VisWorld struct {
	Rings  []*Ring
	popped map[int64]bool
}

func NewVisWorld() VisWorld {
	return VisWorld{popped: map[int64]bool{}}
}

// Step advances the effects and starts a ring for every counter that
// started shrinking in this frame. colorOf gives the color of a visual.
func (v *VisWorld) Step(sprites []world.Sprite, radius float64,
	colorOf func(visual int64) color.NRGBA) {
	// Step existing rings.
	for _, r := range v.Rings {
		r.Animation.Step()
	}

	// Filter out finished rings.
	n := 0
	for i := range v.Rings {
		if !v.Rings[i].Animation.Done() {
			v.Rings[n] = v.Rings[i]
			n++
		}
	}
	v.Rings = v.Rings[:n]

	// Only matched counters are ever scaled down.
	for _, s := range sprites {
		if s.Transform.ScaleFactor() >= 1 || v.popped[s.Id] {
			continue
		}
		v.popped[s.Id] = true
		v.Rings = append(v.Rings, &Ring{
			Center:    s.Transform.Center(),
			Radius:    radius,
			Color:     colorOf(s.Visual),
			Animation: NewAnimation(RingSteps),
		})
	}

	// Forget counters that are gone from the grid.
	if len(v.popped) > 0 {
		onGrid := make(map[int64]bool, len(sprites))
		for _, s := range sprites {
			onGrid[s.Id] = true
		}
		for id := range v.popped {
			if !onGrid[id] {
				delete(v.popped, id)
			}
		}
	}
}

// RingRadius and RingAlpha say how a ring looks at its current step.
func (r *Ring) RingRadius() float64 {
	return r.Radius * (1 + r.Animation.Progress())
}

func (r *Ring) RingAlpha() uint8 {
	return uint8(255 * (1 - r.Animation.Progress()))
}
