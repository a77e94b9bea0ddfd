package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordSession plays a few gestures and keeps every frame's input.
func recordSession(tb testing.TB, seed int64) Playthrough {
	p := NewPlaythrough(3, seed, testParams(), testCatalog())
	w, err := NewWorldFromPlaythrough(p)
	require.NoError(tb, err)

	gestures := [][2]Pt{{{2, 2}, {3, 2}}, {{0, 0}, {0, 1}}, {{5, 7}, {4, 7}},
		{{1, 3}, {1, 2}}}
	now := int64(0)
	for _, g := range gestures {
		for _, in := range dragInputs(w, g[0], g[1], now) {
			w.Step(in)
			p.History = append(p.History, in)
			now = in.Now
		}
		for !w.AtRest() {
			now += frame
			in := PlayerInput{Now: now}
			w.Step(in)
			p.History = append(p.History, in)
		}
	}
	return p
}

func TestPlaythrough_SerializeRoundTrip(t *testing.T) {
	p := recordSession(t, 8)
	q, err := DeserializePlaythrough(p.Serialize())
	require.NoError(t, err)
	assert.Equal(t, p, q)
}

func TestPlaythrough_ReplayIsIdentical(t *testing.T) {
	p := recordSession(t, 8)
	data := p.Serialize()
	q, err := DeserializePlaythrough(data)
	require.NoError(t, err)

	id1, err := RegressionId(&p)
	require.NoError(t, err)
	id2, err := RegressionId(&q)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	// Dropping the last frame changes what was seen.
	r := q.Clone()
	r.History = r.History[:len(r.History)-1]
	id3, err := RegressionId(r)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id3)
}

func TestPlaythrough_CloneIsIndependent(t *testing.T) {
	p := recordSession(t, 1)
	c := p.Clone()
	c.History[0].Pos.X = -1
	c.Catalog[0].Kind = 100
	assert.NotEqual(t, c.History[0], p.History[0])
	assert.NotEqual(t, c.Catalog[0], p.Catalog[0])
}

func TestPlaythrough_VersionMismatch(t *testing.T) {
	p := NewPlaythrough(1, 0, testParams(), testCatalog())
	p.InputVersion = InputVersion + 1
	_, err := DeserializePlaythrough(p.Serialize())
	assert.Error(t, err)

	p = NewPlaythrough(1, 0, testParams(), testCatalog())
	p.SimulationVersion = SimulationVersion + 1
	q, err := DeserializePlaythrough(p.Serialize())
	require.NoError(t, err)
	_, err = NewWorldFromPlaythrough(q)
	assert.Error(t, err)
	_, err = RegressionId(&q)
	assert.Error(t, err)
}

func TestPlaythrough_Corrupted(t *testing.T) {
	p := recordSession(t, 2)
	data := p.Serialize()
	_, err := DeserializePlaythrough(data[:len(data)/2])
	assert.Error(t, err)
	_, err = DeserializePlaythrough([]byte("not a playthrough"))
	assert.Error(t, err)
}

func BenchmarkReplay(b *testing.B) {
	p := recordSession(b, 8)
	b.Logf("%d frames", len(p.History))
	for b.Loop() {
		w, err := NewWorldFromPlaythrough(p)
		Check(err)
		for i := range p.History {
			w.Step(p.History[i])
		}
	}
}
