// Package sound plays the short tones of the game. It works the same in every
// front end and it stays silent if there is no audio device.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const sampleRate = beep.SampleRate(44100)

const (
	popDuration   = 60 * time.Millisecond
	baseFreq      = 660.0
	stepFreq      = 110.0
	maxFreq       = 1320.0
	popVolume     = -1.5
	swishDuration = 30 * time.Millisecond
	swishFreq     = 330.0
	swishVolume   = -3.0
)

// Player is safe to use from several goroutines. Until Init succeeds every
// method is a no-op.
type Player struct {
	Log *zap.Logger

	mu          sync.Mutex
	initialized bool
}

func NewPlayer(log *zap.Logger) *Player {
	return &Player{Log: log}
}

func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	p.initialized = true
	return nil
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Close()
	p.initialized = false
}

// Frequency is the pitch of the pop for a batch of removed counters. Bigger
// batches sound higher.
func Frequency(removed int64) float64 {
	f := baseFreq + stepFreq*float64(max(removed-3, 0))
	return min(f, maxFreq)
}

// Pop is played every time a batch of counters disappears.
func (p *Player) Pop(removed int64) {
	p.play(Frequency(removed), popDuration, popVolume)
}

// Swish is played when a swap commits.
func (p *Player) Swish() {
	p.play(swishFreq, swishDuration, swishVolume)
}

func (p *Player) play(freq float64, d time.Duration, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		p.Log.Warn("sound: cannot generate tone", zap.Float64("freq", freq),
			zap.Error(err))
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: beep.Take(sampleRate.N(d), sine),
		Base:     2,
		Volume:   volume,
	})
}
