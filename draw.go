package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var colorBackground = color.NRGBA{R: 180, G: 180, B: 180, A: 255}
var colorPlayArea = color.NRGBA{R: 230, G: 237, B: 240, A: 255}
var colorTopBar = color.NRGBA{R: 40, G: 44, B: 52, A: 255}
var colorScore = color.NRGBA{R: 250, G: 250, B: 250, A: 255}
var colorDebug = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
var colorPlayBar = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
var colorControls = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
var colorCursor = color.NRGBA{R: 255, G: 0, B: 0, A: 160}

func (g *Gui) Draw(screen *ebiten.Image) {
	// The screen bitmap has the aspect ratio of the application window. Fill
	// it with some background, then draw the game in the areas computed by
	// Layout.
	screen.Fill(colorBackground)
	g.DrawTopBar(SubImage(screen, image.Rect(g.gameArea.Min.X,
		g.gameArea.Min.Y, g.gameArea.Max.X, g.playArea.Min.Y)))
	g.DrawPlayArea(SubImage(screen, g.playArea))
	if g.enableDebugAreas {
		g.DrawDebugControls(SubImage(screen, g.debugArea))
	}
}

func (g *Gui) DrawTopBar(screen *ebiten.Image) {
	screen.Fill(colorTopBar)
	msg := fmt.Sprintf("Score: %d", g.world.Score)
	if g.state != Play {
		msg = fmt.Sprintf("%s  %d/%d", msg, g.frameIdx,
			len(g.playthrough.History))
	}
	DrawText(screen, g.defaultFont, msg, true, true, colorScore)
}

func (g *Gui) DrawPlayArea(screen *ebiten.Image) {
	screen.Fill(colorPlayArea)

	// New counters start above the play area and slide in, the sub-image
	// clips them until then.
	diameter := 2 * g.world.Layout.Radius
	for _, s := range g.world.Sprites() {
		if s.Erased {
			continue
		}
		DrawAffine(screen, g.visualImage(s.Visual), s.Transform, diameter)
	}

	b := screen.Bounds()
	for _, r := range g.visWorld.Rings {
		c := r.Color
		c.A = r.RingAlpha()
		vector.StrokeCircle(screen,
			float32(float64(b.Min.X)+r.Center.X),
			float32(float64(b.Min.Y)+r.Center.Y),
			float32(r.RingRadius()), 3, c, true)
	}

	if g.state != Play {
		vector.DrawFilledCircle(screen,
			float32(float64(b.Min.X)+g.cursorPos.X),
			float32(float64(b.Min.Y)+g.cursorPos.Y),
			float32(g.world.Layout.Radius/3), colorCursor, true)
	}
}

func (g *Gui) DrawDebugControls(screen *ebiten.Image) {
	screen.Fill(colorDebug)

	// Play/pause button.
	height := screen.Bounds().Dy()
	button := image.Rect(0, 0, height, height)
	if g.playbackPaused {
		// Triangle pointing right.
		var path vector.Path
		b := screen.Bounds()
		x0 := float32(b.Min.X + height/4)
		y0 := float32(b.Min.Y + height/4)
		side := float32(height / 2)
		path.MoveTo(x0, y0)
		path.LineTo(x0+side, y0+side/2)
		path.LineTo(x0, y0+side)
		path.Close()
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		for i := range vs {
			vs[i].SrcX = 1
			vs[i].SrcY = 1
			vs[i].ColorR = float32(colorControls.R) / 255
			vs[i].ColorG = float32(colorControls.G) / 255
			vs[i].ColorB = float32(colorControls.B) / 255
			vs[i].ColorA = 1
		}
		screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
			AntiAlias: true,
		})
	} else {
		// Two bars.
		w := height / 6
		FillRect(screen, image.Rect(height/4, height/4, height/4+w,
			height*3/4), colorControls)
		FillRect(screen, image.Rect(height*3/4-w, height/4, height*3/4,
			height*3/4), colorControls)
	}
	// Remember the region so that Update() can react when it's clicked.
	g.buttonPlaybackPlay = button.Add(screen.Bounds().Min)

	// Play bar.
	barXMargin := 10
	bar := image.Rect(height+barXMargin, height/3,
		screen.Bounds().Dx()-barXMargin, height*2/3)
	FillRect(screen, bar, colorPlayBar)
	// The whole height is clickable.
	g.buttonPlaybackBar = image.Rect(bar.Min.X, 0, bar.Max.X, height).
		Add(screen.Bounds().Min)

	// Playback bar cursor.
	nFrames := max(len(g.playthrough.History), 1)
	factor := float64(g.frameIdx) / float64(nFrames)
	cursorX := float64(bar.Min.X) + factor*float64(bar.Dx())
	b := screen.Bounds()
	vector.DrawFilledCircle(screen, float32(float64(b.Min.X)+cursorX),
		float32(b.Min.Y+height/2), float32(height/4), colorControls, true)
}
