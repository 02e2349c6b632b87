package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // config values as loaded
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, s)
	}
}

// ApplyPreset adjusts boss toughness and turret aggression for a preset.
// Normal and fixed leave the loaded values untouched.
func ApplyPreset(cfg *RTypeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Boss.Lives = max(1, cfg.Boss.Lives-2)
		cfg.Turret.Shots = max(0, cfg.Turret.Shots-2)
		cfg.Turret.BulletSpeed *= 0.75
	case DifficultyHard:
		cfg.Boss.Lives += 3
		cfg.Turret.Shots += 3
		cfg.Turret.BulletSpeed *= 1.35
	}
}
