package main

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/marisvali/counters/world"
)

// Visual areas
// ------------
//
// - The play area: the space the World is aware of. Its size comes from the
// layout of the World.
// - The top bar: above the play area, shows the score.
// - The game area: the top bar and the play area.
// - The debug area: below the game area, shows the playback controls. It is
// only displayed during playback.
// - The screen: contains the game area, the debug area if it is displayed
// and any margins necessary to fill in the application window on the OS. Its
// size is known only at run time.

const TopBarHeight = int64(100)
const DebugHeight = int64(80)

// GameSize returns the size of the game area for a World with layout l.
func GameSize(l world.Layout) (width, height int64) {
	size := l.PixelSize()
	return int64(math.Ceil(size.X)), int64(math.Ceil(size.Y)) + TopBarHeight
}

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// I receive the application window's actual width and height, via
	// outsideWidth, outsideHeight. I have to return the size I want, in pixels,
	// for the bitmap that will be drawn in the window. Ebitengine scales that
	// bitmap to fit the window and keeps its aspect ratio.
	//
	// What I want:
	// - Cover the entire window with some background.
	// - Have a game area of fixed size in pixels, no matter the aspect ratio
	// or the resolution of the user's screen. The World and the input all
	// work in these pixels.
	//
	// Solution: return a bitmap with the aspect ratio of the window, just
	// large enough that the game area (plus the debug area) fits inside it.
	gameWidth, gameHeight := GameSize(g.world.Layout)
	totalHeight := gameHeight
	if g.enableDebugAreas {
		totalHeight += DebugHeight
	}
	screenWidth, screenHeight = FitAspectRatio(gameWidth, totalHeight,
		outsideWidth, outsideHeight)

	// Center the game area horizontally and vertically.
	minX := (int64(screenWidth) - gameWidth) / 2
	minY := (int64(screenHeight) - totalHeight) / 2
	g.gameArea = image.Rect(int(minX), int(minY), int(minX+gameWidth),
		int(minY+gameHeight))
	g.playArea = image.Rect(g.gameArea.Min.X,
		g.gameArea.Min.Y+int(TopBarHeight), g.gameArea.Max.X,
		g.gameArea.Max.Y)
	g.debugArea = image.Rect(g.gameArea.Min.X, g.gameArea.Max.Y,
		g.gameArea.Max.X, g.gameArea.Max.Y+int(DebugHeight))
	return
}

// FitAspectRatio returns the smallest size with the aspect ratio of the
// outside size that contains width x height.
func FitAspectRatio(width, height int64, outsideWidth, outsideHeight int) (
	screenWidth, screenHeight int) {
	// The aspect ratio of a rectangle is width / height. If the outside is
	// thinner than the game, the game fills the width and there is space
	// left at the top and the bottom. Otherwise it fills the height.
	outsideAspectRatio := float64(outsideWidth) / float64(outsideHeight)
	gameAspectRatio := float64(width) / float64(height)
	if outsideAspectRatio < gameAspectRatio {
		screenWidth = int(width)
		screenHeight = int(math.Ceil(float64(screenWidth) / outsideAspectRatio))
	} else {
		screenHeight = int(height)
		screenWidth = int(math.Ceil(float64(screenHeight) * outsideAspectRatio))
	}
	return
}

// ScreenToWorld converts a position on the screen bitmap into a position in
// the play area, in the pixels of the World.
func (g *Gui) ScreenToWorld(pt image.Point) world.Vec {
	p := pt.Sub(g.playArea.Min)
	return world.Vec{X: float64(p.X), Y: float64(p.Y)}
}

func (g *Gui) UpdateWindowSize() {
	width, height := ebiten.ScreenSizeInFullscreen()
	gameWidth, gameHeight := GameSize(g.world.Layout)
	// The game area is in device pixels, the window size is in logical
	// pixels.
	scale := ebiten.Monitor().DeviceScaleFactor()
	h := min(float64(height)*0.9, float64(gameHeight)/scale)
	w := h * float64(gameWidth) / float64(gameHeight)
	if w > float64(width)*0.9 {
		w = float64(width) * 0.9
		h = w * float64(gameHeight) / float64(gameWidth)
	}
	ebiten.SetWindowSize(int(w), int(h))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Counters")
}
