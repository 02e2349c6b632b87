package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultRTypeConfig() {
		t.Errorf("embedded defaults differ from DefaultRTypeConfig():\n%+v\n%+v", cfg, DefaultRTypeConfig())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("boss:\n  lives: 9\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.Boss.Lives != 9 {
		t.Errorf("Boss.Lives = %d, expected 9", cfg.Boss.Lives)
	}
	if cfg.Player.Speed != 150 {
		t.Errorf("Player.Speed = %v, expected default 150", cfg.Player.Speed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RTypeConfig)
	}{
		{"zero missile pool", func(c *RTypeConfig) { c.Missile.Pool = 0 }},
		{"negative player speed", func(c *RTypeConfig) { c.Player.Speed = -1 }},
		{"zero scroll limit", func(c *RTypeConfig) { c.World.ScrollLimit = 0 }},
		{"inverted respawn band", func(c *RTypeConfig) { c.Enemy.RespawnMinY = 300 }},
		{"enemy taller than half view", func(c *RTypeConfig) { c.Enemy.Height = 200 }},
		{"volume above one", func(c *RTypeConfig) { c.Audio.Volume = 2 }},
	}

	if err := DefaultRTypeConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRTypeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadRTypeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("turret:\n  shots: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadRType(path)
	if err != nil {
		t.Fatalf("LoadRType() error: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Turret.Shots != 2 {
		t.Errorf("Turret.Shots = %d, expected 2", cfg.Turret.Shots)
	}

	if _, _, err := LoadRType(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("missile:\n  pool: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadRType(bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid custom config error = %v, expected ErrInvalid", err)
	}
}

func TestPresets(t *testing.T) {
	base := DefaultRTypeConfig()

	tests := []struct {
		preset    DifficultyPreset
		lives     int
		shots     int
		faster    bool
		unchanged bool
	}{
		{DifficultyEasy, 3, 3, false, false},
		{DifficultyHard, 8, 8, true, false},
		{DifficultyNormal, 5, 5, false, true},
		{DifficultyFixed, 5, 5, false, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := base
			ApplyPreset(&cfg, tc.preset)
			if cfg.Boss.Lives != tc.lives || cfg.Turret.Shots != tc.shots {
				t.Errorf("lives/shots = %d/%d, expected %d/%d", cfg.Boss.Lives, cfg.Turret.Shots, tc.lives, tc.shots)
			}
			if tc.unchanged && cfg != base {
				t.Error("preset changed the config")
			}
			if tc.faster && cfg.Turret.BulletSpeed <= base.Turret.BulletSpeed {
				t.Error("hard preset should speed up bullets")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParsePreset(nightmare) error = %v", err)
	}
}
