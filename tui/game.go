package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/marisvali/counters/gamedata"
	"github.com/marisvali/counters/sound"
	"github.com/marisvali/counters/world"
	"go.uber.org/zap"
)

// CellWidth is the number of terminal columns of a counter. Terminal cells
// are about twice as tall as they are wide.
const CellWidth = 3

// Game plays the World in a terminal. The keyboard moves a cursor over the
// grid, a swap is sent to the World as the drag gesture a mouse would make,
// so the playthrough replays the same in the graphical front end.
type Game struct {
	screen      tcell.Screen
	config      gamedata.Config
	visuals     []gamedata.Visual
	catalog     []world.Asset
	world       *world.World
	playthrough world.Playthrough
	log         *zap.Logger
	sound       *sound.Player
	record      func(data []byte) error

	// now returns the time of the current frame in nanoseconds.
	now   func() int64
	start time.Time

	cursor   world.Pt
	selected bool
	// pending holds the inputs of a gesture that is being sent, one per
	// frame.
	pending []world.PlayerInput
	lastPos world.Vec
}

func NewGame(screen tcell.Screen, config gamedata.Config, level gamedata.Level,
	log *zap.Logger, player *sound.Player) *Game {
	g := &Game{
		screen:  screen,
		config:  config,
		visuals: level.Visuals(),
		catalog: level.Catalog(),
		log:     log,
		sound:   player,
	}
	g.now = func() int64 { return time.Since(g.start).Nanoseconds() }
	return g
}

// Reset starts a new board and a new playthrough.
func (g *Game) Reset(seed int64) error {
	g.playthrough = world.NewPlaythrough(ReleaseVersion, seed,
		g.config.Simulation, g.catalog)
	w, err := world.NewWorldFromPlaythrough(g.playthrough)
	if err != nil {
		return err
	}
	w.Log = g.log.With(zap.String("playthrough", g.playthrough.Id.String()))
	w.OnScore = g.sound.Pop
	w.OnSwap = func(a, b world.Pt) { g.sound.Swish() }
	g.world = w
	g.start = time.Now()
	g.pending = nil
	g.selected = false
	g.cursor = world.Pt{}
	g.lastPos = w.Layout.CellCenter(g.cursor)
	return nil
}

// HandleKey reacts to a key and returns false when the player wants to quit.
func (g *Game) HandleKey(ev *tcell.EventKey) bool {
	var dir world.Pt
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		dir = world.Pt{Y: -1}
	case tcell.KeyDown:
		dir = world.Pt{Y: 1}
	case tcell.KeyLeft:
		dir = world.Pt{X: -1}
	case tcell.KeyRight:
		dir = world.Pt{X: 1}
	case tcell.KeyEnter:
		g.selected = !g.selected
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			g.selected = !g.selected
		case 'r':
			g.log.Info("board reset", zap.Int64("score", g.world.Score))
			if err := g.Reset(time.Now().UnixNano()); err != nil {
				g.log.Error("reset failed", zap.Error(err))
				return false
			}
		}
		return true
	default:
		return true
	}

	target := g.cursor.Plus(dir)
	if !g.world.Grid.InBounds(target) {
		return true
	}
	if g.selected {
		g.selected = false
		g.swipe(g.cursor, target)
	}
	g.cursor = target
	return true
}

// swipe queues a drag from the center of a to the center of b.
func (g *Game) swipe(a, b world.Pt) {
	if len(g.pending) > 0 || !g.world.AtRest() {
		return
	}
	from := g.world.Layout.CellCenter(a)
	to := g.world.Layout.CellCenter(b)
	g.pending = append(g.pending,
		world.PlayerInput{Pos: from, Pressed: true, JustPressed: true},
		world.PlayerInput{Pos: to, Pressed: true},
		world.PlayerInput{Pos: to, JustReleased: true})
}

// Tick runs one frame of the World.
func (g *Game) Tick() {
	input := world.PlayerInput{Pos: g.lastPos}
	if len(g.pending) > 0 {
		input = g.pending[0]
		g.pending = g.pending[1:]
	}
	input.Now = g.now()
	g.lastPos = input.Pos

	g.playthrough.History = append(g.playthrough.History, input)
	if g.record != nil {
		// Save before stepping so that a crash leaves the input that
		// caused it in the file.
		if err := g.record(g.playthrough.Serialize()); err != nil {
			g.log.Warn("recording failed", zap.Error(err))
			g.record = nil
		}
	}
	g.world.Step(input)
}

func (g *Game) colorOf(visual int64) tcell.Color {
	if visual < 0 || visual >= int64(len(g.visuals)) {
		return tcell.ColorGray
	}
	c := g.visuals[visual].Color
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// CellOf returns the cell of the terminal grid a sprite is drawn in. Sprites
// are snapped to the nearest cell, those that are still above the grid have
// a negative row.
func CellOf(l world.Layout, center world.Vec) world.Pt {
	return world.Pt{
		X: int64(math.Round((center.X - l.Margin - l.Radius) / l.Spacing())),
		Y: int64(math.Round((center.Y - l.Margin - l.Radius) / l.Spacing())),
	}
}

func (g *Game) Draw() {
	g.screen.Clear()
	l := g.world.Layout
	originX, originY := 2, 2

	status := fmt.Sprintf("Score: %d", g.world.Score)
	if p := g.world.Grid.Get(g.cursor); p != nil && !p.Erased &&
		p.Visual < int64(len(g.visuals)) {
		v := g.visuals[p.Visual]
		status = fmt.Sprintf("%s   %s (%s)", status, v.Label, v.Description)
	}
	drawString(g.screen, originX, 0, status, tcell.StyleDefault.Bold(true))

	for _, s := range g.world.Sprites() {
		if s.Erased {
			continue
		}
		cell := CellOf(l, s.Transform.Center())
		if cell.Y < 0 || cell.Y >= l.NRows {
			continue
		}
		r := '●'
		if s.Transform.ScaleFactor() < 1 {
			r = '·'
		}
		style := tcell.StyleDefault.Foreground(g.colorOf(s.Visual))
		if cell == g.cursor {
			style = style.Reverse(true)
		}
		x := originX + int(cell.X)*CellWidth
		y := originY + int(cell.Y)
		g.screen.SetContent(x+CellWidth/2, y, r, nil, style)
	}

	// Brackets around the cursor, filled in when a counter is selected.
	left, right := '[', ']'
	if g.selected {
		left, right = '<', '>'
	}
	x := originX + int(g.cursor.X)*CellWidth
	y := originY + int(g.cursor.Y)
	cursorStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	g.screen.SetContent(x, y, left, nil, cursorStyle)
	g.screen.SetContent(x+CellWidth-1, y, right, nil, cursorStyle)

	help := "arrows: move   space: select   r: new board   q: quit"
	drawString(g.screen, originX, originY+int(l.NRows)+1, help,
		tcell.StyleDefault.Dim(true))
	g.screen.Show()
}

func drawString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// Run plays until the player quits. Events are read in their own goroutine
// and the World is stepped at about 60 frames per second.
func (g *Game) Run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// The screen was finalized.
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !g.HandleKey(ev) {
					return
				}
			case *tcell.EventResize:
				g.screen.Sync()
			}
		case <-ticker.C:
			g.Tick()
			g.Draw()
		}
	}
}
