package main

import (
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/marisvali/counters/gamedata"
	"github.com/marisvali/counters/sound"
	"github.com/marisvali/counters/world"
	"go.uber.org/zap"
	"golang.org/x/image/font"
)

// ReleaseVersion is the version of an executable built and given to someone
// to play, either as a desktop executable or a .wasm in the browser. It is a
// unique label for what the player was presented with.
// ReleaseVersion must change when SimulationVersion or InputVersion change.
// It also changes when only the front end changes:
// - upload of playthroughs is enabled or disabled
// - asserts are enabled or disabled
// - graphics or sounds change
// Each variation is a separate executable with its own ReleaseVersion, so
// that every recorded playthrough says exactly what the player saw.
const ReleaseVersion = 2

//go:embed data/*
var embeddedFiles embed.FS

type GameState int64

const (
	Play GameState = iota
	Playback
	DebugCrash
)

type Gui struct {
	gamedata.Config
	FSys                gamedata.FS
	level               gamedata.Level
	visuals             []gamedata.Visual
	imgVisuals          []*ebiten.Image
	imgUnknown          *ebiten.Image
	defaultFont         font.Face
	world               *world.World
	visWorld            VisWorld
	playthrough         world.Playthrough
	frameIdx            int64
	state               GameState
	log                 *zap.Logger
	sound               *sound.Player
	folderWatcher       FolderWatcher
	username            string
	uploadChannel       chan *world.Playthrough
	devModeEnabled      bool
	enableDebugAreas    bool
	playbackPaused      bool
	pressedKeys         []ebiten.Key
	justPressedKeys     []ebiten.Key // keys pressed in this frame
	touchIds            []ebiten.TouchID
	activeTouch         ebiten.TouchID
	touching            bool
	cursorPos           world.Vec
	wasAtRest           bool
	start               time.Time
	FrameSkipAltArrow   int64
	FrameSkipShiftArrow int64
	FrameSkipArrow      int64
	gameArea            image.Rectangle
	playArea            image.Rectangle
	debugArea           image.Rectangle
	buttonPlaybackPlay  image.Rectangle
	buttonPlaybackBar   image.Rectangle
}

func main() {
	var g Gui
	g.username = getUsername()
	g.FrameSkipAltArrow = 1
	g.FrameSkipShiftArrow = 10
	g.FrameSkipArrow = 1
	// Uploads happen in the background, a few playthroughs can wait while
	// the previous one is being sent.
	g.uploadChannel = make(chan *world.Playthrough, 10)

	var onDisk bool
	g.FSys, onDisk = gamedata.Open(&embeddedFiles)
	if onDisk {
		g.folderWatcher.Folder = "data"
		// Record the current timestamps so that the first check doesn't
		// reload everything.
		g.folderWatcher.FolderContentsChanged()
	}

	filePassedForPlayback := false
	if len(os.Args) == 2 {
		if os.Args[1] == "developer-mode-enabled" {
			g.devModeEnabled = true
		} else {
			filePassedForPlayback = true
		}
	}

	g.LoadGuiData()

	var err error
	g.log, err = gamedata.NewLogger(g.LogLevel)
	Check(err)
	defer func() { _ = g.log.Sync() }()
	go UploadPlaythroughs(g.username, g.uploadChannel, g.log)

	g.sound = sound.NewPlayer(g.log)
	if g.SoundEnabled {
		if err = g.sound.Init(); err != nil {
			// The game works without sound.
			g.log.Warn("audio initialization failed", zap.Error(err))
		}
	}
	defer g.sound.Close()

	if filePassedForPlayback {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	switch g.StartState {
	case "Play":
		g.state = Play
		g.resetWorld(time.Now().UnixNano())
	case "Playback":
		g.state = Playback
		g.enableDebugAreas = true
		g.loadPlaythrough(g.PlaybackFile)
	case "DebugCrash":
		g.state = DebugCrash
		g.enableDebugAreas = true
		// Don't crash when we are debugging the crash. The last frame of the
		// playthrough is the one that crashed, let it run and look at the
		// result instead.
		CheckCrashes = false
		g.loadPlaythrough(g.PlaybackFile)
		// Run the whole playthrough except the last input. This gives a
		// chance to see the state of the world, place a breakpoint and then
		// trigger the bug.
		g.frameIdx = int64(len(g.playthrough.History)) - 1
		for i := range g.frameIdx {
			g.world.Step(g.playthrough.History[i])
		}
	default:
		Check(fmt.Errorf("invalid StartState: %s", g.StartState))
	}

	g.UpdateWindowSize()
	g.log.Info("started",
		zap.String("state", g.StartState),
		zap.String("level", g.level.Name),
		zap.Int64("release", ReleaseVersion),
		zap.Int64("rows", g.world.Layout.NRows),
		zap.Int64("cols", g.world.Layout.NCols))

	err = ebiten.RunGame(&g)
	Check(err)
}

// resetWorld starts a new board and a new playthrough.
func (g *Gui) resetWorld(seed int64) {
	g.playthrough = world.NewPlaythrough(ReleaseVersion, seed, g.Simulation,
		g.level.Catalog())
	g.world = g.newWorld(g.playthrough)
	g.frameIdx = 0
	g.start = time.Now()
	g.wasAtRest = true
}

func (g *Gui) loadPlaythrough(name string) {
	var err error
	g.playthrough, err = world.DeserializePlaythrough(ReadFile(name))
	Check(err)
	g.world = g.newWorld(g.playthrough)
	g.frameIdx = 0
}

// newWorld creates the world the playthrough starts with and connects it to
// the sound and the log. Visual effects start over with it.
func (g *Gui) newWorld(p world.Playthrough) *world.World {
	w, err := world.NewWorldFromPlaythrough(p)
	Check(err)
	g.visWorld = NewVisWorld()
	w.Log = g.log.With(zap.String("playthrough", p.Id.String()))
	w.OnScore = func(removed int64) {
		if g.state == Play {
			g.sound.Pop(removed)
		}
	}
	w.OnSwap = func(a, b world.Pt) {
		if g.state == Play {
			g.sound.Swish()
		}
	}
	return w
}
