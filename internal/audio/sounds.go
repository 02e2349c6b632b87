package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SoundExplosion is the shared explosion effect.
const SoundExplosion = "explosion"

const explosionLength = 450 * time.Millisecond

var sounds = map[string]func(rate beep.SampleRate, seed int64) beep.Streamer{
	SoundExplosion: func(rate beep.SampleRate, seed int64) beep.Streamer {
		return beep.Take(rate.N(explosionLength), NewExplosion(rate, seed))
	},
}

// Known reports whether name is a playable sound.
func Known(name string) bool {
	_, ok := sounds[name]
	return ok
}

// Explosion is a noise burst over a falling low rumble with an exponential
// decay. It streams forever; callers bound it with beep.Take.
type Explosion struct {
	rate  beep.SampleRate
	pos   int
	seed  int64
	state float64 // one-pole low-pass memory
}

// NewExplosion creates an explosion generator. The seed varies the noise.
func NewExplosion(rate beep.SampleRate, seed int64) *Explosion {
	return &Explosion{rate: rate, seed: seed & 0x7fffffff}
}

func (e *Explosion) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(e.pos) / float64(e.rate)
		env := math.Exp(-t * 7)

		e.seed = (e.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(e.seed)/float64(0x7fffffff)*2 - 1
		e.state += 0.25 * (noise - e.state)

		freq := 90 - 50*math.Min(t/0.45, 1)
		rumble := 0.5 * math.Sin(2*math.Pi*freq*t)

		v := env * (0.7*e.state + rumble) * 0.6
		samples[i][0] = v
		samples[i][1] = v
		e.pos++
	}
	return len(samples), true
}

func (e *Explosion) Err() error { return nil }
