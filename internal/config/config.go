// Package config provides YAML-based game configuration loading, validation
// and difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// RTypeConfig contains all tunables of the side-scroller. Distances are world
// pixels, speeds are pixels per second, durations are milliseconds.
type RTypeConfig struct {
	World   WorldConfig   `yaml:"world"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Missile MissileConfig `yaml:"missile"`
	Turret  TurretConfig  `yaml:"turret"`
	Boss    BossConfig    `yaml:"boss"`
	Effects EffectsConfig `yaml:"effects"`
	Score   ScoreConfig   `yaml:"score"`
	Audio   AudioConfig   `yaml:"audio"`
}

// WorldConfig defines the viewport and camera scroll.
type WorldConfig struct {
	ViewWidth     int     `yaml:"view_width"`
	ViewHeight    int     `yaml:"view_height"`
	ScrollStep    float64 `yaml:"scroll_step"`    // camera advance per tick
	ScrollLimit   float64 `yaml:"scroll_limit"`   // boss section starts here
	RecycleMargin float64 `yaml:"recycle_margin"` // projectiles further outside the view are released
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	StartX    float64 `yaml:"start_x"`
	StartY    float64 `yaml:"start_y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Speed     float64 `yaml:"speed"`
	ExitSpeed float64 `yaml:"exit_speed"` // horizontal speed after the boss is destroyed
}

// EnemyConfig defines the roaming enemy.
type EnemyConfig struct {
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	RespawnMinY int     `yaml:"respawn_min_y"`
	RespawnMaxY int     `yaml:"respawn_max_y"`
	SpinMillis  int     `yaml:"spin_ms"` // one full rotation
}

// MissileConfig defines player missiles. Speed is added to the ship speed.
type MissileConfig struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Pool   int     `yaml:"pool"`
}

// TurretConfig defines the ground turret and its bullets.
type TurretConfig struct {
	X              float64 `yaml:"x"`
	Y              float64 `yaml:"y"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	MuzzleOffset   float64 `yaml:"muzzle_offset"`
	BulletSpeed    float64 `yaml:"bullet_speed"`
	BulletSize     float64 `yaml:"bullet_size"`
	Shots          int     `yaml:"shots"`
	IntervalMillis int     `yaml:"interval_ms"`
	Pool           int     `yaml:"pool"`
}

// BossConfig defines the boss.
type BossConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Lives  int     `yaml:"lives"`
}

// EffectsConfig defines the explosion animation.
type EffectsConfig struct {
	ExplosionFrames int `yaml:"explosion_frames"`
	ExplosionFPS    int `yaml:"explosion_fps"`
}

// ScoreConfig defines points awarded.
type ScoreConfig struct {
	Enemy    int `yaml:"enemy"`
	BossHit  int `yaml:"boss_hit"`
	BossKill int `yaml:"boss_kill"`
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
}

// Validate checks that the config describes a playable game.
func (c RTypeConfig) Validate() error {
	checks := []struct {
		ok    bool
		field string
	}{
		{c.World.ViewWidth > 0, "world.view_width"},
		{c.World.ViewHeight > 0, "world.view_height"},
		{c.World.ScrollStep > 0, "world.scroll_step"},
		{c.World.ScrollLimit > 0, "world.scroll_limit"},
		{c.World.RecycleMargin >= 0, "world.recycle_margin"},
		{c.Player.Width > 0 && c.Player.Height > 0, "player size"},
		{c.Player.Speed > 0, "player.speed"},
		{c.Enemy.Width > 0 && c.Enemy.Height > 0, "enemy size"},
		{c.Enemy.Speed > 0, "enemy.speed"},
		{c.Enemy.RespawnMinY <= c.Enemy.RespawnMaxY, "enemy respawn band"},
		{c.Missile.Width > 0 && c.Missile.Height > 0, "missile size"},
		{c.Missile.Pool > 0, "missile.pool"},
		{c.Turret.BulletSpeed > 0, "turret.bullet_speed"},
		{c.Turret.BulletSize > 0, "turret.bullet_size"},
		{c.Turret.Shots >= 0, "turret.shots"},
		{c.Turret.IntervalMillis > 0, "turret.interval_ms"},
		{c.Turret.Pool > 0, "turret.pool"},
		{c.Boss.Width > 0 && c.Boss.Height > 0, "boss size"},
		{c.Boss.Lives > 0, "boss.lives"},
		{c.Effects.ExplosionFrames > 0, "effects.explosion_frames"},
		{c.Effects.ExplosionFPS > 0, "effects.explosion_fps"},
		{c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s out of range", ErrInvalid, chk.field)
		}
	}
	// enemy wrap picks y in [h, view-h]
	if 2*c.Enemy.Height > float64(c.World.ViewHeight) {
		return fmt.Errorf("%w: enemy taller than half the view", ErrInvalid)
	}
	return nil
}
