package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDominant(t *testing.T) {
	dir, m := Dominant(Vec{12, -5})
	assert.Equal(t, Pt{1, 0}, dir)
	assert.Equal(t, 12.0, m)

	dir, m = Dominant(Vec{3, -40})
	assert.Equal(t, Pt{0, -1}, dir)
	assert.Equal(t, 40.0, m)

	dir, _ = Dominant(Vec{-7, 7})
	assert.Equal(t, Pt{-1, 0}, dir)

	dir, m = Dominant(Vec{})
	assert.Equal(t, Pt{}, dir)
	assert.Equal(t, 0.0, m)
}

func TestTrySwap_NonAdjacentIsNoOp(t *testing.T) {
	w := newTestWorld(t, 3)
	before := snapshot(w)
	state := w.StateBytes()

	assert.False(t, w.TrySwap(Pt{1, 1}, Pt{3, 1}))
	assert.False(t, w.TrySwap(Pt{1, 1}, Pt{2, 2}))
	assert.False(t, w.TrySwap(Pt{1, 1}, Pt{1, 1}))
	assert.False(t, w.TrySwap(Pt{5, 7}, Pt{6, 7}))
	assert.False(t, w.TrySwap(Pt{0, 0}, Pt{0, -1}))

	assert.Equal(t, before, snapshot(w))
	assert.Equal(t, state, w.StateBytes())
	assert.Equal(t, Idle, w.State())
}

func TestTrySwap_WithoutMatchStaysSwapped(t *testing.T) {
	w := newTestWorld(t, 0)
	setBase(w)
	a := w.Grid.Get(Pt{0, 0})
	b := w.Grid.Get(Pt{1, 0})

	require.True(t, w.TrySwap(Pt{0, 0}, Pt{1, 0}))
	runUntilRest(t, w, 0)

	assert.Same(t, b, w.Grid.Get(Pt{0, 0}))
	assert.Same(t, a, w.Grid.Get(Pt{1, 0}))
	assert.Equal(t, w.Layout.RestTransform(Pt{0, 0}), b.Transform)
	assert.Equal(t, w.Layout.RestTransform(Pt{1, 0}), a.Transform)
	assert.Equal(t, int64(0), w.Score)
}

func TestTrySwap_WithoutMatchRevertsIfConfigured(t *testing.T) {
	w := newTestWorld(t, 0)
	w.Params.RevertUnmatchedSwap = true
	setBase(w)
	before := snapshot(w)

	require.True(t, w.TrySwap(Pt{0, 0}, Pt{1, 0}))
	assert.Equal(t, Animating, w.State())
	// A gesture during the animation is ignored.
	assert.False(t, w.TrySwap(Pt{2, 0}, Pt{3, 0}))
	runUntilRest(t, w, 0)

	assert.Equal(t, before, snapshot(w))
	assert.Equal(t, w.Layout.RestTransform(Pt{0, 0}), before[0].Transform)
	assert.Equal(t, w.Layout.RestTransform(Pt{1, 0}), before[1].Transform)
}

// plantSwapMatch prepares row 2 so that swapping (2, 2) and (3, 2) makes
// 4 4 4 in columns 0 to 2.
func plantSwapMatch(w *World) {
	setBase(w)
	setKind(w, Pt{0, 2}, 4)
	setKind(w, Pt{1, 2}, 4)
	setKind(w, Pt{3, 2}, 4)
}

func TestTrySwap_MatchCascades(t *testing.T) {
	w := newTestWorld(t, 11)
	plantSwapMatch(w)
	var removed []int64
	w.OnScore = func(n int64) { removed = append(removed, n) }

	require.True(t, w.TrySwap(Pt{2, 2}, Pt{3, 2}))
	assert.Equal(t, Animating, w.State())
	matched := []*Piece{w.Grid.Get(Pt{0, 2}), w.Grid.Get(Pt{1, 2}),
		w.Grid.Get(Pt{2, 2})}

	runUntilRest(t, w, 0)

	require.NotEmpty(t, removed)
	assert.Equal(t, int64(3), removed[0])
	sum := int64(0)
	for _, n := range removed {
		sum += n
	}
	assert.Equal(t, sum, w.Score)
	for _, p := range matched {
		assert.True(t, p.Erased)
	}
	requireNoRuns(t, w)
	assert.Equal(t, int64(8*6), w.CountPieces())
	expectAllAtRest(t, w)
}

func TestGesture_BelowThresholdReverts(t *testing.T) {
	w := newTestWorld(t, 0)
	setBase(w)
	before := snapshot(w)
	start := w.Layout.CellCenter(Pt{3, 2})

	now := frame
	w.Step(PlayerInput{Pos: start, Pressed: true, JustPressed: true, Now: now})
	assert.Equal(t, Dragging, w.State())

	// 20 pixels to the right, the threshold is 30.
	now += frame
	w.Step(PlayerInput{Pos: start.Plus(Vec{20, 3}), Pressed: true, Now: now})
	// The preview shows the pieces moving towards each other.
	assert.InDelta(t, start.X+20, w.Grid.Get(Pt{3, 2}).Transform.E, 1e-9)
	assert.InDelta(t, start.X+60-20, w.Grid.Get(Pt{4, 2}).Transform.E, 1e-9)

	now += frame
	w.Step(PlayerInput{Pos: start.Plus(Vec{20, 3}), JustReleased: true, Now: now})
	assert.Equal(t, Animating, w.State())
	runUntilRest(t, w, now)

	assert.Equal(t, before, snapshot(w))
	expectAllAtRest(t, w)
}

func TestGesture_CommitsAboveThreshold(t *testing.T) {
	w := newTestWorld(t, 0)
	setBase(w)
	a := w.Grid.Get(Pt{3, 2})
	b := w.Grid.Get(Pt{3, 3})
	var swaps [][2]Pt
	w.OnSwap = func(a, b Pt) { swaps = append(swaps, [2]Pt{a, b}) }

	for _, in := range dragInputs(w, Pt{3, 2}, Pt{3, 3}, 0) {
		w.Step(in)
	}
	assert.Equal(t, [][2]Pt{{{3, 2}, {3, 3}}}, swaps)

	assert.Same(t, b, w.Grid.Get(Pt{3, 2}))
	assert.Same(t, a, w.Grid.Get(Pt{3, 3}))
	assert.Equal(t, Idle, w.State())
	expectAllAtRest(t, w)
}

func TestGesture_ChangesDirectionWhenReleased(t *testing.T) {
	w := newTestWorld(t, 0)
	setBase(w)
	a := w.Grid.Get(Pt{2, 2})
	b := w.Grid.Get(Pt{2, 3})
	right := w.Grid.Get(Pt{3, 2})
	start := w.Layout.CellCenter(Pt{2, 2})

	// The preview pulls the right neighbor towards the dragged piece.
	w.Step(PlayerInput{Pos: start, Pressed: true, JustPressed: true, Now: frame})
	w.Step(PlayerInput{Pos: start.Plus(Vec{25, 0}), Pressed: true,
		Now: 2 * frame})
	require.NotEqual(t, w.Layout.RestTransform(Pt{3, 2}), right.Transform)

	// The release goes down instead.
	w.Step(PlayerInput{Pos: start.Plus(Vec{0, 45}), JustReleased: true,
		Now: 3 * frame})
	runUntilRest(t, w, 3*frame)

	assert.Same(t, b, w.Grid.Get(Pt{2, 2}))
	assert.Same(t, a, w.Grid.Get(Pt{2, 3}))
	assert.Same(t, right, w.Grid.Get(Pt{3, 2}))
	assert.Equal(t, w.Layout.RestTransform(Pt{3, 2}), right.Transform)
	expectAllAtRest(t, w)
}

func TestGesture_TargetOutsideGridReverts(t *testing.T) {
	w := newTestWorld(t, 0)
	setBase(w)
	before := snapshot(w)
	start := w.Layout.CellCenter(Pt{0, 4})

	w.Step(PlayerInput{Pos: start, Pressed: true, JustPressed: true, Now: frame})
	w.Step(PlayerInput{Pos: start.Plus(Vec{-50, 0}), Pressed: true, Now: 2 * frame})
	// Nothing to swap with on the left, so nothing moves.
	assert.Equal(t, w.Layout.RestTransform(Pt{0, 4}), before[4*6].Transform)
	w.Step(PlayerInput{Pos: start.Plus(Vec{-50, 0}), JustReleased: true,
		Now: 3 * frame})
	runUntilRest(t, w, 3*frame)

	assert.Equal(t, before, snapshot(w))
}

func TestGesture_IgnoredWhileAnimating(t *testing.T) {
	w := newTestWorld(t, 0)
	plantSwapMatch(w)
	require.True(t, w.TrySwap(Pt{2, 2}, Pt{3, 2}))
	before := snapshot(w)

	start := w.Layout.CellCenter(Pt{0, 7})
	w.Step(PlayerInput{Pos: start, Pressed: true, JustPressed: true, Now: frame})
	assert.Equal(t, Animating, w.State())
	assert.Equal(t, before, snapshot(w))
}

func TestGesture_StartOutsideGridIgnored(t *testing.T) {
	w := newTestWorld(t, 0)
	w.Step(PlayerInput{Pos: Vec{2, 2}, Pressed: true, JustPressed: true, Now: frame})
	assert.Equal(t, Idle, w.State())
}

func expectAllAtRest(t *testing.T, w *World) {
	nRows, nCols := w.Grid.Dimensions()
	for y := int64(0); y < nRows; y++ {
		for x := int64(0); x < nCols; x++ {
			require.Equal(t, w.Layout.RestTransform(Pt{x, y}),
				w.Grid.Get(Pt{x, y}).Transform)
		}
	}
}
