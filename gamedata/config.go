package gamedata

import (
	"errors"
	"fmt"
	"slices"

	"github.com/marisvali/counters/world"
	"go.uber.org/zap/zapcore"
)

const (
	ConfigFile    = "data/config.yaml"
	DevConfigFile = "data/config-dev.yaml"
)

var StartStates = []string{"Play", "Playback", "DebugCrash"}

type Config struct {
	// StartState is one of StartStates. Playback and DebugCrash replay
	// PlaybackFile.
	StartState    string `yaml:"StartState"`
	PlaybackFile  string `yaml:"PlaybackFile"`
	RecordToFile  bool   `yaml:"RecordToFile"`
	RecordingFile string `yaml:"RecordingFile"`
	LevelFile     string `yaml:"LevelFile"`
	SoundEnabled  bool   `yaml:"SoundEnabled"`
	// LogLevel is a zap level: debug, info, warn or error.
	LogLevel string `yaml:"LogLevel"`
	// LogFile is where the terminal front end writes its log, the screen
	// belongs to the game.
	LogFile    string       `yaml:"LogFile"`
	Simulation world.Params `yaml:"Simulation"`
}

func DefaultConfig() Config {
	return Config{
		StartState:    "Play",
		RecordingFile: "last-recording.counters",
		LevelFile:     "data/levels/basic.yaml",
		SoundEnabled:  true,
		LogLevel:      "info",
		LogFile:       "counters.log",
		Simulation:    world.DefaultParams(),
	}
}

// LoadConfig reads path over the default config.
func LoadConfig(fsys FS, path string) (Config, error) {
	cfg := DefaultConfig()
	if err := LoadYAML(fsys, path, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(StartStates, c.StartState) {
		errs = append(errs, fmt.Errorf("invalid StartState %q, expected "+
			"one of %v", c.StartState, StartStates))
	}
	if c.StartState != "Play" && c.PlaybackFile == "" {
		errs = append(errs, fmt.Errorf("StartState %s needs a PlaybackFile",
			c.StartState))
	}
	if c.RecordToFile && c.RecordingFile == "" {
		errs = append(errs, errors.New("RecordToFile needs a RecordingFile"))
	}
	if c.LevelFile == "" {
		errs = append(errs, errors.New("missing LevelFile"))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if err := c.Simulation.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("simulation: %w", err))
	}
	return errors.Join(errs...)
}
