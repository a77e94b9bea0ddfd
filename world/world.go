package world

import (
	"fmt"

	"go.uber.org/zap"
)

// World rules
// - Every cell of the grid holds exactly one piece, except for the short
// moment inside Resolve when matched pieces are replaced.
// - The player drags a piece towards one of its neighbors. If the drag is long
// enough, the two pieces swap places.
// - Three or more neighboring pieces of the same kind in a row or a column
// shrink and disappear. The pieces above them fall down and new pieces fall in
// from above the grid.
// - Falling pieces accelerate and bounce on the piece below before they come
// to rest.
// - While anything is animating, the player's gestures are ignored.

type SessionState int64

const (
	Idle SessionState = iota
	Dragging
	Animating
)

func (s SessionState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	case Animating:
		return "Animating"
	default:
		return fmt.Sprintf("SessionState(%d)", int64(s))
	}
}

// PlayerInput is everything the World needs from the outside during a frame.
// Pos is in pixels, already adjusted for the device scale factor. Now is the
// time of the frame in nanoseconds, it drives the fall simulation.
type PlayerInput struct {
	Pos          Vec
	Pressed      bool
	JustPressed  bool
	JustReleased bool
	Now          int64
}

type World struct {
	Params  Params
	Layout  Layout
	Catalog []Asset
	Grid    Grid
	Score   int64
	// OnScore is called with the number of removed pieces every time a batch
	// of matches is resolved.
	OnScore func(removed int64)
	// OnSwap is called when two pieces exchange cells, before the grid is
	// scanned for matches.
	OnSwap func(a, b Pt)
	Log    *zap.Logger

	state     SessionState
	rand      Rand
	scheduler Scheduler
	drag      *drag
	now       int64
	nextId    int64
	nBatches  int64
}

// NewWorld creates a grid full of random pieces with no matches on it.
func NewWorld(seed int64, params Params, catalog []Asset) (*World, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	if err := ValidateCatalog(catalog); err != nil {
		return nil, err
	}
	layout, err := NewLayout(params.AreaWidth, params.AreaHeight,
		params.TargetDiameter, params.Margin)
	if err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}

	w := &World{
		Params:  params,
		Layout:  layout,
		Catalog: catalog,
		Grid:    NewGrid(layout.NRows, layout.NCols),
		Log:     zap.NewNop(),
		rand:    NewRand(seed),
	}
	w.fill()
	return w, nil
}

// ValidateCatalog checks that a grid can be filled with the catalog without
// creating matches, which requires three different kinds.
func ValidateCatalog(catalog []Asset) error {
	kinds := map[int64]bool{}
	for _, a := range catalog {
		kinds[a.Kind] = true
	}
	if len(kinds) < 3 {
		return fmt.Errorf("catalog must have at least 3 different kinds, "+
			"got %d", len(kinds))
	}
	return nil
}

// fill populates the grid top to bottom, left to right. A piece that would
// complete a run with the two pieces to its left or the two pieces above it
// gets a different kind.
func (w *World) fill() {
	nRows, nCols := w.Grid.Dimensions()
	for y := int64(0); y < nRows; y++ {
		for x := int64(0); x < nCols; x++ {
			pos := Pt{x, y}
			var a Asset
			for {
				a = w.randomAsset()
				if !w.completesRun(pos, a.Kind, Pt{-1, 0}) &&
					!w.completesRun(pos, a.Kind, Pt{0, -1}) {
					break
				}
			}
			w.Grid.Set(pos, w.newPiece(a, w.Layout.RestTransform(pos)))
		}
	}
}

func (w *World) completesRun(pos Pt, kind int64, step Pt) bool {
	for i := int64(1); i < MinRunLength; i++ {
		p := pos.Plus(step.Times(i))
		if !w.Grid.InBounds(p) || w.Grid.Get(p).Kind != kind {
			return false
		}
	}
	return true
}

func (w *World) randomAsset() Asset {
	return w.Catalog[w.rand.RInt(0, int64(len(w.Catalog))-1)]
}

func (w *World) newPiece(a Asset, t Affine) *Piece {
	w.nextId++
	return &Piece{
		Id:        w.nextId,
		Kind:      a.Kind,
		Visual:    a.Visual,
		Transform: t,
	}
}

func (w *World) State() SessionState {
	return w.state
}

// AtRest is true when nothing is moving and the World waits for a gesture.
func (w *World) AtRest() bool {
	return w.state == Idle && w.scheduler.Len() == 0
}

func (w *World) Step(input PlayerInput) {
	w.now = input.Now

	if input.JustPressed {
		w.gestureStart(input.Pos)
	}
	if w.state == Dragging && (input.Pressed || input.JustReleased) {
		w.gestureMove(input.Pos)
	}
	if input.JustReleased {
		w.gestureEnd(input.Pos)
	}

	w.scheduler.Step(w.now)
}

// Sprites lists every piece on the grid, in row-major order, as the renderer
// should draw it in this frame.
func (w *World) Sprites() []Sprite {
	nRows, nCols := w.Grid.Dimensions()
	sprites := make([]Sprite, 0, nRows*nCols)
	for y := int64(0); y < nRows; y++ {
		for x := int64(0); x < nCols; x++ {
			p := w.Grid.Get(Pt{x, y})
			sprites = append(sprites, Sprite{
				Id:        p.Id,
				Transform: p.Transform,
				Kind:      p.Kind,
				Visual:    p.Visual,
				Erased:    p.Erased,
			})
		}
	}
	return sprites
}

// CountPieces counts the cells holding a piece that is not erased.
func (w *World) CountPieces() int64 {
	n := int64(0)
	nRows, nCols := w.Grid.Dimensions()
	for y := int64(0); y < nRows; y++ {
		for x := int64(0); x < nCols; x++ {
			if p := w.Grid.Get(Pt{x, y}); p != nil && !p.Erased {
				n++
			}
		}
	}
	return n
}
