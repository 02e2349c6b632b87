package config

import (
	_ "embed"
)

//go:embed defaults/rtype.yaml
var defaultRTypeYAML []byte

// DefaultRTypeConfig returns the hardcoded configuration, used when even the
// embedded YAML cannot be parsed.
func DefaultRTypeConfig() RTypeConfig {
	return RTypeConfig{
		World: WorldConfig{
			ViewWidth:     800,
			ViewHeight:    320,
			ScrollStep:    2,
			ScrollLimit:   2400,
			RecycleMargin: 64,
		},
		Player: PlayerConfig{
			StartX:    200,
			StartY:    160,
			Width:     32,
			Height:    16,
			Speed:     150,
			ExitSpeed: 100,
		},
		Enemy: EnemyConfig{
			StartX:      900,
			StartY:      200,
			Width:       32,
			Height:      32,
			Speed:       100,
			RespawnMinY: 120,
			RespawnMaxY: 240,
			SpinMillis:  2000,
		},
		Missile: MissileConfig{
			Speed:  100,
			Width:  16,
			Height: 4,
			Pool:   50,
		},
		Turret: TurretConfig{
			X:              375,
			Y:              275,
			Width:          24,
			Height:         16,
			MuzzleOffset:   6,
			BulletSpeed:    120,
			BulletSize:     8,
			Shots:          5,
			IntervalMillis: 1000,
			Pool:           50,
		},
		Boss: BossConfig{
			X:      3130,
			Y:      160,
			Width:  128,
			Height: 160,
			Lives:  5,
		},
		Effects: EffectsConfig{
			ExplosionFrames: 8,
			ExplosionFPS:    20,
		},
		Score: ScoreConfig{
			Enemy:    100,
			BossHit:  50,
			BossKill: 1000,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.6,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRTypeYAML
}
