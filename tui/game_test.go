package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/marisvali/counters/gamedata"
	"github.com/marisvali/counters/sound"
	"github.com/marisvali/counters/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testLevel() gamedata.Level {
	return gamedata.Level{
		Name: "test",
		Groups: []gamedata.ColorGroup{
			{Name: "half", Color: "#ff0000", Counters: []gamedata.Counter{
				{Label: "1/2", Description: "Equal to 0.5"},
				{Label: "2/4", Description: "Equal to 0.5"}}},
			{Name: "third", Color: "#00ff00", Counters: []gamedata.Counter{
				{Label: "1/3", Description: "Equal to 0.33"}}},
			{Name: "quarter", Color: "#0000ff", Counters: []gamedata.Counter{
				{Label: "1/4", Description: "Equal to 0.25"}}},
		},
	}
}

func newTestGame(t *testing.T) (*Game, tcell.SimulationScreen) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	config := gamedata.DefaultConfig()
	config.Simulation.AreaWidth = 370
	config.Simulation.AreaHeight = 490
	config.Simulation.TargetDiameter = 50
	config.Simulation.Margin = 10
	log := zap.NewNop()
	g := NewGame(screen, config, testLevel(), log, sound.NewPlayer(log))

	// Frames are 16ms apart.
	var now int64
	g.now = func() int64 {
		now += 16_000_000
		return now
	}
	require.NoError(t, g.Reset(42))
	return g, screen
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestGame_CursorStaysOnTheGrid(t *testing.T) {
	g, _ := newTestGame(t)
	assert.True(t, g.HandleKey(key(tcell.KeyLeft)))
	assert.True(t, g.HandleKey(key(tcell.KeyUp)))
	assert.Equal(t, world.Pt{}, g.cursor)

	g.HandleKey(key(tcell.KeyRight))
	g.HandleKey(key(tcell.KeyDown))
	g.HandleKey(key(tcell.KeyDown))
	assert.Equal(t, world.Pt{X: 1, Y: 2}, g.cursor)

	for range 20 {
		g.HandleKey(key(tcell.KeyRight))
	}
	assert.Equal(t, world.Pt{X: g.world.Layout.NCols - 1, Y: 2}, g.cursor)
	assert.Empty(t, g.pending)
}

func TestGame_Quit(t *testing.T) {
	g, _ := newTestGame(t)
	assert.False(t, g.HandleKey(runeKey('q')))
	assert.False(t, g.HandleKey(key(tcell.KeyEscape)))
	assert.True(t, g.HandleKey(runeKey('x')))
}

func TestGame_SelectAndMoveSwaps(t *testing.T) {
	g, _ := newTestGame(t)
	var swaps [][2]world.Pt
	g.world.OnSwap = func(a, b world.Pt) {
		swaps = append(swaps, [2]world.Pt{a, b})
	}
	var recorded []byte
	g.record = func(data []byte) error {
		recorded = data
		return nil
	}

	g.HandleKey(runeKey(' '))
	assert.True(t, g.selected)
	g.HandleKey(key(tcell.KeyRight))
	assert.False(t, g.selected)
	assert.Equal(t, world.Pt{X: 1}, g.cursor)
	require.Len(t, g.pending, 3)

	for range 3 {
		g.Tick()
	}
	assert.Empty(t, g.pending)
	assert.Equal(t, [][2]world.Pt{{{X: 0, Y: 0}, {X: 1, Y: 0}}}, swaps)

	// The recording replays the same swap.
	p, err := world.DeserializePlaythrough(recorded)
	require.NoError(t, err)
	require.Len(t, p.History, 3)
	replayed, err := world.NewWorldFromPlaythrough(p)
	require.NoError(t, err)
	var replayedSwaps [][2]world.Pt
	replayed.OnSwap = func(a, b world.Pt) {
		replayedSwaps = append(replayedSwaps, [2]world.Pt{a, b})
	}
	for _, input := range p.History {
		replayed.Step(input)
	}
	assert.Equal(t, swaps, replayedSwaps)
}

func TestGame_Reset(t *testing.T) {
	g, _ := newTestGame(t)
	g.Tick()
	g.HandleKey(key(tcell.KeyDown))
	old := g.playthrough.Id
	assert.True(t, g.HandleKey(runeKey('r')))
	assert.NotEqual(t, old, g.playthrough.Id)
	assert.Empty(t, g.playthrough.History)
	assert.Equal(t, world.Pt{}, g.cursor)
}

func TestGame_Draw(t *testing.T) {
	g, screen := newTestGame(t)
	g.Draw()

	r, _, _, _ := screen.GetContent(2, 0)
	assert.Equal(t, 'S', r)
	r, _, _, _ = screen.GetContent(2, 2)
	assert.Equal(t, '[', r)
	r, _, style, _ := screen.GetContent(3, 2)
	assert.Equal(t, '●', r)
	_, _, attrs := style.Decompose()
	assert.NotZero(t, attrs&tcell.AttrReverse)

	g.HandleKey(runeKey(' '))
	g.Draw()
	r, _, _, _ = screen.GetContent(2, 2)
	assert.Equal(t, '<', r)
}

func TestCellOf(t *testing.T) {
	l, err := world.NewLayout(370, 490, 50, 10)
	require.NoError(t, err)
	for _, pt := range []world.Pt{{X: 0, Y: 0}, {X: 5, Y: 7}, {X: 2, Y: 3}} {
		assert.Equal(t, pt, CellOf(l, l.CellCenter(pt)))
	}
	// Halfway through a fall, a counter shows in the nearest cell.
	c := l.CellCenter(world.Pt{X: 1, Y: 1})
	c.Y += l.Spacing() * 0.4
	assert.Equal(t, world.Pt{X: 1, Y: 1}, CellOf(l, c))
	c.Y -= l.Spacing()
	assert.Equal(t, world.Pt{X: 1, Y: 0}, CellOf(l, c))
}
