package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-rtype/internal/config"
)

func peak(samples [][2]float64) float64 {
	m := 0.0
	for _, s := range samples {
		m = math.Max(m, math.Abs(s[0]))
	}
	return m
}

func TestExplosionDecays(t *testing.T) {
	rate := beep.SampleRate(44100)
	e := NewExplosion(rate, 7)

	head := make([][2]float64, 2000)
	if n, ok := e.Stream(head); n != len(head) || !ok {
		t.Fatalf("Stream() = %d, %v", n, ok)
	}
	skip := make([][2]float64, rate.N(explosionLength)-4000)
	e.Stream(skip)
	tail := make([][2]float64, 2000)
	e.Stream(tail)

	if peak(head) <= 0 {
		t.Fatal("explosion is silent")
	}
	if peak(tail) >= peak(head)/5 {
		t.Errorf("tail peak %.3f not well below head peak %.3f", peak(tail), peak(head))
	}
	if peak(head) > 1 {
		t.Errorf("explosion clips: peak %.3f", peak(head))
	}
}

func TestExplosionIsBounded(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := sounds[SoundExplosion](rate, 1)

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != rate.N(explosionLength) {
		t.Errorf("streamed %d samples, expected %d", total, rate.N(explosionLength))
	}
}

type recordingPool struct {
	tasks int
	err   error
}

func (r *recordingPool) Submit(func()) error {
	r.tasks++
	return r.err
}

func TestPlayWhenSilent(t *testing.T) {
	var nilPlayer *Player
	if nilPlayer.Play(SoundExplosion) || nilPlayer.Active() {
		t.Error("nil player should be silent")
	}
	nilPlayer.Close()

	pool := &recordingPool{}
	p := NewPlayer(config.AudioConfig{Enabled: false, Volume: 0.5}, pool)
	if err := p.Start(); err != nil {
		t.Fatalf("Start() of disabled player: %v", err)
	}
	if p.Active() {
		t.Error("disabled player reported active")
	}
	if p.Play(SoundExplosion) {
		t.Error("disabled player played")
	}
	if pool.tasks != 0 {
		t.Errorf("submitted %d tasks while silent", pool.tasks)
	}
}

func TestPlaySubmits(t *testing.T) {
	pool := &recordingPool{}
	p := NewPlayer(config.AudioConfig{Enabled: true, Volume: 0.5}, pool)
	p.started = true // skip the device

	if !p.Play(SoundExplosion) {
		t.Error("Play() refused a known sound")
	}
	if p.Play("kazoo") {
		t.Error("Play() accepted an unknown sound")
	}
	if pool.tasks != 1 {
		t.Errorf("tasks = %d, expected 1", pool.tasks)
	}

	pool.err = errors.New("pool overloaded")
	if p.Play(SoundExplosion) {
		t.Error("Play() reported success when the pool refused")
	}
	if !Known(SoundExplosion) || Known("kazoo") {
		t.Error("Known() wrong")
	}
}
