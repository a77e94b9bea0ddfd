package world

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// frame is the time between two frames, 60 frames per second.
const frame = int64(16_666_667)

// testParams give a 8 rows x 6 columns grid with a radius of 25 and a
// spacing of 60 pixels.
func testParams() Params {
	p := DefaultParams()
	p.AreaWidth = 370
	p.AreaHeight = 490
	p.TargetDiameter = 50
	p.Margin = 10
	return p
}

func testCatalog() (c []Asset) {
	for i := int64(0); i < 6; i++ {
		c = append(c, Asset{Kind: i, Visual: i})
	}
	return
}

func newTestWorld(t *testing.T, seed int64) *World {
	w, err := NewWorld(seed, testParams(), testCatalog())
	require.NoError(t, err)
	return w
}

// baseKind is a pattern with no two equal neighbors in any row or column.
// Kinds 4 and 5 are never used by it, so tests can plant them.
func baseKind(pos Pt) int64 {
	return (pos.X + 2*pos.Y) % 4
}

// setBase puts the base pattern on the grid, with every piece at rest.
func setBase(w *World) {
	nRows, nCols := w.Grid.Dimensions()
	for y := int64(0); y < nRows; y++ {
		for x := int64(0); x < nCols; x++ {
			setKind(w, Pt{x, y}, baseKind(Pt{x, y}))
		}
	}
}

func setKind(w *World, pos Pt, kind int64) {
	w.Grid.Set(pos, w.newPiece(Asset{Kind: kind, Visual: kind},
		w.Layout.RestTransform(pos)))
}

func snapshot(w *World) (pieces []*Piece) {
	nRows, nCols := w.Grid.Dimensions()
	for y := int64(0); y < nRows; y++ {
		for x := int64(0); x < nCols; x++ {
			pieces = append(pieces, w.Grid.Get(Pt{x, y}))
		}
	}
	return
}

// runUntilRest steps the World without input until it is at rest and
// returns the time of the last frame.
func runUntilRest(t *testing.T, w *World, now int64) int64 {
	for range 100000 {
		if w.AtRest() {
			return now
		}
		now += frame
		w.Step(PlayerInput{Now: now})
	}
	require.FailNow(t, "world never came to rest")
	return now
}

// dragInputs presses on the center of from, moves towards the center of to
// in a few frames and releases there.
func dragInputs(w *World, from Pt, to Pt, now int64) (inputs []PlayerInput) {
	start := w.Layout.CellCenter(from)
	end := w.Layout.CellCenter(to)
	const nMoves = 5
	for i := int64(0); i <= nMoves; i++ {
		now += frame
		pos := start.Plus(end.Minus(start).Times(float64(i) / nMoves))
		inputs = append(inputs, PlayerInput{
			Pos:          pos,
			Pressed:      true,
			JustPressed:  i == 0,
			JustReleased: false,
			Now:          now,
		})
	}
	now += frame
	inputs = append(inputs, PlayerInput{Pos: end, JustReleased: true, Now: now})
	return
}

func requireNoRuns(t *testing.T, w *World) {
	require.Empty(t, w.Grid.FindRuns())
}
