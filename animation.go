package main

// AnimationFps is the global number that says how fast visual effects run.
// The Update() method runs at 60 FPS (ebitengine's default), effects don't
// need to be as detailed.
const AnimationFps = 30

// AnimationFramesPerStep is the number of Update() calls between two steps of
// an effect.
const AnimationFramesPerStep = 60 / AnimationFps

// Animation counts the steps of an effect. It is cheap to copy, make a copy
// for every instance of an effect.
type Animation struct {
	NSteps   int64
	StepIdx  int64
	FrameIdx int64
}

func NewAnimation(nSteps int64) Animation {
	return Animation{NSteps: nSteps}
}

func (a *Animation) Step() {
	a.FrameIdx++
	if a.FrameIdx == AnimationFramesPerStep {
		a.FrameIdx = 0
		a.StepIdx++
	}
}

// Progress goes from 0 when the animation starts to 1 when it is done.
func (a *Animation) Progress() float64 {
	if a.NSteps <= 0 {
		return 1
	}
	return min(float64(a.StepIdx)/float64(a.NSteps), 1)
}

func (a *Animation) Done() bool {
	return a.StepIdx >= a.NSteps
}

func (a *Animation) TotalNFrames() int64 {
	return AnimationFramesPerStep * a.NSteps
}
