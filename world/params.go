package world

import "fmt"

// Params are the numbers that define how a World behaves. They stay the same
// for the lifetime of a World and they are part of a Playthrough, so every
// field must have a fixed size. The config file sets them under Simulation.
type Params struct {
	// The area in pixels available for the grid. The number of rows and
	// columns is derived from it once, see NewLayout.
	AreaWidth      float64 `yaml:"AreaWidth"`
	AreaHeight     float64 `yaml:"AreaHeight"`
	TargetDiameter float64 `yaml:"TargetDiameter"`
	Margin         float64 `yaml:"Margin"`

	// Gravity is in meters per second squared, ScaleFactor is pixels per
	// meter. Increasing ScaleFactor increases the apparent speed of the
	// falling pieces.
	Gravity     float64 `yaml:"Gravity"`
	ScaleFactor float64 `yaml:"ScaleFactor"`
	// Restitution is the fraction of the speed a column keeps after it
	// bounces on the piece below it.
	Restitution float64 `yaml:"Restitution"`
	Bounces     int64   `yaml:"Bounces"`

	ShrinkFactor    float64 `yaml:"ShrinkFactor"`
	ShrinkThreshold float64 `yaml:"ShrinkThreshold"`
	// ReturnTicks is how many frames a reverted gesture takes to bring the
	// pieces back to where they were.
	ReturnTicks int64 `yaml:"ReturnTicks"`

	RevertUnmatchedSwap    bool `yaml:"RevertUnmatchedSwap"`
	SpawnDistinctFromBelow bool `yaml:"SpawnDistinctFromBelow"`
}

func DefaultParams() Params {
	return Params{
		AreaWidth:       540,
		AreaHeight:      960,
		TargetDiameter:  50,
		Margin:          7,
		Gravity:         9.8,
		ScaleFactor:     800,
		Restitution:     0.5,
		Bounces:         1,
		ShrinkFactor:    0.8,
		ShrinkThreshold: 0.25,
		ReturnTicks:     8,
	}
}

func (p Params) Validate() error {
	if p.AreaWidth <= 0 || p.AreaHeight <= 0 {
		return fmt.Errorf("invalid area %vx%v", p.AreaWidth, p.AreaHeight)
	}
	if p.TargetDiameter <= 0 || p.Margin < 0 {
		return fmt.Errorf("invalid diameter %v or margin %v",
			p.TargetDiameter, p.Margin)
	}
	if p.Gravity <= 0 || p.ScaleFactor <= 0 {
		return fmt.Errorf("gravity %v and scale factor %v must be positive",
			p.Gravity, p.ScaleFactor)
	}
	if p.Restitution < 0 || p.Restitution > 1 {
		return fmt.Errorf("restitution must be in [0, 1], got %v", p.Restitution)
	}
	if p.Bounces < 0 {
		return fmt.Errorf("bounces must not be negative, got %d", p.Bounces)
	}
	if p.ShrinkFactor <= 0 || p.ShrinkFactor >= 1 {
		return fmt.Errorf("shrink factor must be in (0, 1), got %v",
			p.ShrinkFactor)
	}
	if p.ShrinkThreshold <= 0 || p.ShrinkThreshold >= 1 {
		return fmt.Errorf("shrink threshold must be in (0, 1), got %v",
			p.ShrinkThreshold)
	}
	if p.ReturnTicks < 1 {
		return fmt.Errorf("return ticks must be at least 1, got %d",
			p.ReturnTicks)
	}
	return nil
}
