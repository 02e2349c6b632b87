// Package audio plays the game's sound effects through the system speaker.
// Sounds are synthesized, so no asset files are needed. When no audio device
// is available the player stays silent.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-rtype/internal/config"
)

// Submitter runs fire-and-forget work. *ants.Pool satisfies it.
type Submitter interface {
	Submit(task func()) error
}

// Player mixes short sound effects into a single speaker stream.
// A nil *Player is valid and silent.
type Player struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	volume  float64
	enabled bool
	started bool
	seed    int64

	mixer   *beep.Mixer
	workers Submitter
}

// NewPlayer creates a player. Work is handed to workers so synthesis never
// runs on the frame loop.
func NewPlayer(cfg config.AudioConfig, workers Submitter) *Player {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	return &Player{
		rate:    beep.SampleRate(rate),
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
		seed:    1,
		mixer:   &beep.Mixer{},
		workers: workers,
	}
}

// Start opens the speaker. On error the player stays silent.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.started {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Active reports whether sounds will be heard.
func (p *Player) Active() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.started
}

// Play queues a named sound. It reports false when the sound is unknown, the
// player is silent or the worker pool refused the task.
func (p *Player) Play(name string) bool {
	if p == nil {
		return false
	}

	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return false
	}
	p.seed++
	seed := p.seed
	p.mu.Unlock()

	build, ok := sounds[name]
	if !ok {
		return false
	}

	task := func() {
		s := withVolume(build(p.rate, seed), p.volume)
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	if p.workers == nil {
		task()
		return true
	}
	return p.workers.Submit(task) == nil
}

// Close silences playback and releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.started = false
}

// withVolume scales a stream linearly. Zero volume is silent; log2 of zero
// is -Inf.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
