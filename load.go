package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/marisvali/counters/gamedata"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// VisualSize is the diameter in pixels of the pre-rendered counter images.
// They are scaled to the size of the counters when drawn.
const VisualSize = 128

func (g *Gui) LoadGuiData() {
	// Read from the disk over and over until a full read is possible.
	// This repetition is meant to avoid crashes due to reading files
	// while they are still being written.
	// This repeated reading is only useful when we're not reading from the
	// embedded filesystem. When we're reading from the embedded filesystem we
	// want to crash as soon as possible. We might be in the browser, in which
	// case we want to see an error in the developer console instead of a page
	// that keeps trying to load and reports nothing.
	previousVal := CheckCrashes
	if g.folderWatcher.Folder != "" {
		CheckCrashes = false
	}
	for {
		CheckFailed = nil
		configFile := gamedata.ConfigFile
		if g.devModeEnabled {
			configFile = gamedata.DevConfigFile
		}
		var err error
		g.Config, err = gamedata.LoadConfig(g.FSys, configFile)
		Check(err)
		if err == nil {
			g.level, err = gamedata.LoadLevel(g.FSys, g.LevelFile)
			Check(err)
		}

		if CheckFailed == nil {
			break
		}
	}
	CheckCrashes = previousVal

	fontData, err := opentype.Parse(goregular.TTF)
	Check(err)
	g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    44,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)
	labelFont, err := opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    VisualSize * 0.3,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)

	g.visuals = g.level.Visuals()
	g.imgVisuals = make([]*ebiten.Image, len(g.visuals))
	for i, v := range g.visuals {
		var texture *ebiten.Image
		if v.Texture != "" {
			texture = LoadImage(g.FSys, v.Texture)
		}
		g.imgVisuals[i] = NewVisualImage(v, texture, labelFont)
	}
	g.imgUnknown = NewVisualImage(gamedata.Visual{
		Counter: gamedata.Counter{Label: "?"},
		Color:   colorUnknown,
	}, nil, labelFont)
}

// visualImage returns the image for a visual of the world. A playthrough
// recorded with another level may have visuals the current level doesn't.
func (g *Gui) visualImage(visual int64) *ebiten.Image {
	if visual < 0 || visual >= int64(len(g.imgVisuals)) {
		return g.imgUnknown
	}
	return g.imgVisuals[visual]
}

func (g *Gui) visualColor(visual int64) color.NRGBA {
	if visual < 0 || visual >= int64(len(g.visuals)) {
		return colorUnknown
	}
	return g.visuals[visual].Color
}
