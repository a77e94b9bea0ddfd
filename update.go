package main

import (
	"image"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/marisvali/counters/world"
	"go.uber.org/zap"
)

func (g *Gui) Update() error {
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys[:0])
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys[:0])

	if g.folderWatcher.FolderContentsChanged() {
		g.LoadGuiData()
		if g.state == Play {
			g.resetWorld(time.Now().UnixNano())
		}
		g.log.Info("data reloaded")
	}

	switch g.state {
	case Play:
		g.UpdatePlay()
	case Playback:
		g.UpdatePlayback()
	case DebugCrash:
		g.UpdateDebugCrash()
	default:
		panic("unhandled default case")
	}
	return nil
}

// pointer returns the pointer of this frame, from the first finger on the
// screen or the mouse.
func (g *Gui) pointer() (pos image.Point, pressed, justPressed,
	justReleased bool) {
	if g.touching && inpututil.IsTouchJustReleased(g.activeTouch) {
		g.touching = false
		x, y := inpututil.TouchPositionInPreviousTick(g.activeTouch)
		return image.Pt(x, y), false, false, true
	}
	if !g.touching {
		g.touchIds = inpututil.AppendJustPressedTouchIDs(g.touchIds[:0])
		if len(g.touchIds) > 0 {
			g.touching = true
			g.activeTouch = g.touchIds[0]
			x, y := ebiten.TouchPosition(g.activeTouch)
			return image.Pt(x, y), true, true, false
		}
	}
	if g.touching {
		x, y := ebiten.TouchPosition(g.activeTouch)
		return image.Pt(x, y), true, false, false
	}

	x, y := ebiten.CursorPosition()
	return image.Pt(x, y),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func (g *Gui) UpdatePlay() {
	if g.JustPressed(ebiten.KeyR) {
		g.log.Info("board reset", zap.Int64("score", g.world.Score))
		g.upload()
		g.resetWorld(time.Now().UnixNano())
		return
	}

	// Get the player input.
	var input world.PlayerInput
	pos, pressed, justPressed, justReleased := g.pointer()
	input.Pos = g.ScreenToWorld(pos)
	input.Pressed = pressed
	input.JustPressed = justPressed
	input.JustReleased = justReleased
	input.Now = time.Since(g.start).Nanoseconds()

	// Save the input in the playthrough.
	g.playthrough.History = append(g.playthrough.History, input)
	if g.RecordToFile {
		// IMPORTANT: save the playthrough before stepping the World. If
		// a bug in the World causes it to crash, we want to save the input
		// that caused the bug before the program crashes.
		WriteFile(g.RecordingFile, g.playthrough.Serialize())
	}

	g.cursorPos = input.Pos
	g.world.Step(input)
	g.stepVisWorld()
	g.frameIdx++

	// Send the playthrough every time the board settles after a gesture.
	atRest := g.world.AtRest()
	if atRest && !g.wasAtRest {
		g.upload()
	}
	g.wasAtRest = atRest
}

func (g *Gui) stepVisWorld() {
	g.visWorld.Step(g.world.Sprites(), g.world.Layout.Radius, g.visualColor)
}

func (g *Gui) upload() {
	select {
	case g.uploadChannel <- g.playthrough.Clone():
	default:
		g.log.Warn("upload queue is full, playthrough not sent",
			zap.String("playthrough", g.playthrough.Id.String()))
	}
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

func (g *Gui) JustClicked(button image.Rectangle) bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y).In(button)
}

func (g *Gui) LeftClickPressedOn(button image.Rectangle) bool {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y).In(button)
}

// replayTo rebuilds the world and steps it through the first n inputs of the
// playthrough.
func (g *Gui) replayTo(n int64) {
	g.world = g.newWorld(g.playthrough)
	for i := int64(0); i < n; i++ {
		g.world.Step(g.playthrough.History[i])
	}
	g.frameIdx = n
}

func (g *Gui) UpdatePlayback() {
	nFrames := int64(len(g.playthrough.History))
	if nFrames == 0 {
		return
	}

	if g.JustPressed(ebiten.KeySpace) || g.JustClicked(g.buttonPlaybackPlay) {
		g.playbackPaused = !g.playbackPaused
	}

	// Choose target frame.
	targetFrameIdx := g.frameIdx

	// Compute the target frame index based on where on the play bar the user
	// clicked.
	if g.LeftClickPressedOn(g.buttonPlaybackBar) {
		x, _ := ebiten.CursorPosition()
		dx := int64(x - g.buttonPlaybackBar.Min.X)
		targetFrameIdx = dx * nFrames / int64(g.buttonPlaybackBar.Dx())
	}

	if g.JustPressed(ebiten.KeyLeft) && g.Pressed(ebiten.KeyAlt) {
		targetFrameIdx -= g.FrameSkipAltArrow
	}
	if g.JustPressed(ebiten.KeyRight) && g.Pressed(ebiten.KeyAlt) {
		targetFrameIdx += g.FrameSkipAltArrow
	}
	if g.Pressed(ebiten.KeyLeft) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx -= g.FrameSkipShiftArrow
	}
	if g.Pressed(ebiten.KeyRight) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipShiftArrow
	}
	noModifier := !g.Pressed(ebiten.KeyShift) && !g.Pressed(ebiten.KeyAlt)
	if g.Pressed(ebiten.KeyLeft) && noModifier {
		if g.playbackPaused {
			targetFrameIdx -= g.FrameSkipArrow
		} else {
			// Playback moves forward by one frame, go back two to actually
			// go back.
			targetFrameIdx -= g.FrameSkipArrow * 2
		}
	}
	if g.Pressed(ebiten.KeyRight) && noModifier {
		targetFrameIdx += g.FrameSkipArrow
	}

	// frameIdx is the number of inputs the world has been stepped with.
	targetFrameIdx = max(0, min(targetFrameIdx, nFrames))
	if targetFrameIdx != g.frameIdx {
		g.replayTo(targetFrameIdx)
	}
	Assert(g.frameIdx <= nFrames)

	// Get input from recording.
	input := g.playthrough.History[min(g.frameIdx, nFrames-1)]
	g.cursorPos = input.Pos

	if !g.playbackPaused && g.frameIdx < nFrames {
		g.world.Step(input)
		g.stepVisWorld()
		g.frameIdx++
	}
}

func (g *Gui) UpdateDebugCrash() {
	nFrames := int64(len(g.playthrough.History))
	var input world.PlayerInput
	if g.frameIdx < nFrames {
		input = g.playthrough.History[g.frameIdx]
		g.cursorPos = input.Pos
	}

	// Go to the next frame.
	goToNextFrame := g.JustPressed(ebiten.KeyD) || g.JustPressed(ebiten.KeyRight)
	if goToNextFrame && g.frameIdx < nFrames {
		g.stepAndReport(input)
		g.frameIdx++
	}

	// Go to the previous frame. There is no better way than redoing all the
	// frames from the beginning.
	goToPreviousFrame := g.JustPressed(ebiten.KeyA) || g.JustPressed(ebiten.KeyLeft)
	if goToPreviousFrame && g.frameIdx > 0 {
		g.replayTo(g.frameIdx - 1)
	}
}

// stepAndReport steps the world and logs a crash instead of exiting, so the
// state the crash left behind can be looked at.
func (g *Gui) stepAndReport(input world.PlayerInput) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Error("world crashed", zap.Int64("frame", g.frameIdx),
				zap.Any("panic", r))
		}
	}()
	g.world.Step(input)
	g.stepVisWorld()
}
