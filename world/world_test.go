package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorld_FullAndWithoutRuns(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		w := newTestWorld(t, seed)
		requireNoRuns(t, w)
		require.Equal(t, int64(8*6), w.CountPieces())
		require.True(t, w.AtRest())
		expectAllAtRest(t, w)
	}
}

func TestNewWorld_Errors(t *testing.T) {
	_, err := NewWorld(0, testParams(), testCatalog()[:2])
	assert.Error(t, err)

	// Many visuals but only two kinds.
	catalog := []Asset{{0, 0}, {0, 1}, {1, 2}, {1, 3}}
	_, err = NewWorld(0, testParams(), catalog)
	assert.Error(t, err)

	p := testParams()
	p.AreaWidth = 40
	_, err = NewWorld(0, p, testCatalog())
	assert.Error(t, err)

	p = testParams()
	p.Restitution = 1.5
	_, err = NewWorld(0, p, testCatalog())
	assert.Error(t, err)

	p = testParams()
	p.ShrinkFactor = 1
	_, err = NewWorld(0, p, testCatalog())
	assert.Error(t, err)
}

func TestWorld_SameSeedSameWorld(t *testing.T) {
	w1 := newTestWorld(t, 42)
	w2 := newTestWorld(t, 42)
	w3 := newTestWorld(t, 43)
	assert.Equal(t, w1.StateBytes(), w2.StateBytes())
	assert.NotEqual(t, w1.StateBytes(), w3.StateBytes())
}

func TestWorld_Sprites(t *testing.T) {
	w := newTestWorld(t, 0)
	setBase(w)
	sprites := w.Sprites()
	require.Len(t, sprites, 8*6)
	for i, s := range sprites {
		pos := Pt{int64(i % 6), int64(i / 6)}
		assert.Equal(t, baseKind(pos), s.Kind)
		assert.Equal(t, w.Layout.CellCenter(pos), s.Transform.Center())
		assert.False(t, s.Erased)
	}
}

func TestSessionState_String(t *testing.T) {
	assert.Equal(t, "Idle", Idle.String())
	assert.Equal(t, "Dragging", Dragging.String())
	assert.Equal(t, "Animating", Animating.String())
	assert.Equal(t, "SessionState(7)", SessionState(7).String())
}

// Random gestures on random boards. Whenever the World is back at rest, every
// cell holds a piece at its rest transform and there are no runs left.
func TestWorld_RestInvariant(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		w := newTestWorld(t, seed)
		w.Params.SpawnDistinctFromBelow = seed%2 == 0
		r := NewRand(seed + 1000)
		dirs := []Pt{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
		now := int64(0)
		score := int64(0)
		w.OnScore = func(n int64) { score += n }

		for range 30 {
			from := Pt{r.RInt(0, 5), r.RInt(0, 7)}
			to := from.Plus(dirs[r.RInt(0, 3)])
			for _, in := range dragInputs(w, from, to, now) {
				w.Step(in)
				now = in.Now
			}
			now = runUntilRest(t, w, now)

			requireNoRuns(t, w)
			require.Equal(t, int64(8*6), w.CountPieces())
			expectAllAtRest(t, w)
		}
		assert.Equal(t, score, w.Score)
	}
}

func TestWorld_CascadeRemovesEveryMatchedPiece(t *testing.T) {
	w := newTestWorld(t, 5)
	setBase(w)
	// An L: row 4 columns 1 to 3 and column 3 rows 2 to 4.
	for _, c := range []Pt{{1, 4}, {2, 4}, {3, 4}, {3, 2}, {3, 3}} {
		setKind(w, c, 5)
	}
	runs := w.Grid.FindRuns()
	require.Len(t, runs, 2)
	w.startBatch(runs)

	var removed []int64
	w.OnScore = func(n int64) { removed = append(removed, n) }
	runUntilRest(t, w, 0)
	require.NotEmpty(t, removed)
	assert.Equal(t, int64(5), removed[0])
	requireNoRuns(t, w)
	expectAllAtRest(t, w)
}
