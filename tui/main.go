// Command tui plays Counters in a terminal. It reads the same data folder as
// the graphical game and its recordings can be replayed there.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/marisvali/counters/gamedata"
	"github.com/marisvali/counters/sound"
	"go.uber.org/zap"
)

// ReleaseVersion is the version of this front end, it is stored in the
// playthroughs it records.
const ReleaseVersion = 2

func main() {
	root := flag.String("root", ".", "folder that contains the data folder")
	configFile := flag.String("config", gamedata.ConfigFile,
		"config file, relative to root")
	levelFile := flag.String("level", "",
		"level file, relative to root, overrides the config")
	listLevels := flag.Bool("list-levels", false, "list the levels and exit")
	flag.Parse()

	fsys := os.DirFS(*root).(gamedata.FS)
	if *listLevels {
		exitOnError(ListLevels(fsys, os.Stdout))
		return
	}

	config, err := gamedata.LoadConfig(fsys, *configFile)
	exitOnError(err)
	if *levelFile != "" {
		config.LevelFile = *levelFile
	}
	level, err := gamedata.LoadLevel(fsys, config.LevelFile)
	exitOnError(err)

	// The terminal belongs to the game, log to a file.
	log, err := gamedata.NewLogger(config.LogLevel, config.LogFile)
	exitOnError(err)
	defer func() { _ = log.Sync() }()

	player := sound.NewPlayer(log)
	if config.SoundEnabled {
		if err = player.Init(); err != nil {
			// The game works without sound.
			log.Warn("audio initialization failed", zap.Error(err))
		}
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	exitOnError(err)
	exitOnError(screen.Init())
	defer screen.Fini()

	g := NewGame(screen, config, level, log, player)
	if config.RecordToFile {
		g.record = func(data []byte) error {
			return os.WriteFile(config.RecordingFile, data, 0644)
		}
	}
	if err = g.Reset(time.Now().UnixNano()); err != nil {
		screen.Fini()
		exitOnError(err)
	}
	log.Info("started", zap.String("level", level.Name),
		zap.Int64("rows", g.world.Layout.NRows),
		zap.Int64("cols", g.world.Layout.NCols))
	g.Run()
	log.Info("quit", zap.Int64("score", g.world.Score),
		zap.Int("frames", len(g.playthrough.History)))
}

// LevelsDir holds the levels, every yaml file in it is one.
const LevelsDir = "data/levels"

// ListLevels writes the levels of fsys one per line, as paths that can be
// passed to -level.
func ListLevels(fsys gamedata.FS, w io.Writer) error {
	levels, err := gamedata.GetFiles(fsys, LevelsDir, "*.yaml")
	if err != nil {
		return err
	}
	for _, l := range levels {
		if _, err = fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "counters: %v\n", err)
		os.Exit(1)
	}
}
