package rtype

import (
	"fmt"
	"hash/fnv"
)

// Snapshot is a flat copy of the observable world state.
type Snapshot struct {
	Tick   int
	Phase  string
	Scroll float64
	Score  int

	PlayerX, PlayerY   float64
	PlayerVX, PlayerVY float64
	PlayerAlive        bool
	PlayerVisible      bool

	EnemyX, EnemyY float64
	EnemyActive    bool

	BossHP     int
	BossActive bool

	Missiles    int
	Bullets     int
	TurretShots int
	Explosions  int
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	if w == nil {
		return Snapshot{Phase: PhaseStart.String()}
	}
	return Snapshot{
		Tick:          w.tick,
		Phase:         w.phase.String(),
		Scroll:        w.scroll,
		Score:         w.score,
		PlayerX:       w.player.Pos.X,
		PlayerY:       w.player.Pos.Y,
		PlayerVX:      w.player.Vel.X,
		PlayerVY:      w.player.Vel.Y,
		PlayerAlive:   w.player.Alive,
		PlayerVisible: w.player.Visible,
		EnemyX:        w.enemy.Pos.X,
		EnemyY:        w.enemy.Pos.Y,
		EnemyActive:   w.enemy.Active,
		BossHP:        w.boss.HP,
		BossActive:    w.boss.Active,
		Missiles:      w.missiles.Len(),
		Bullets:       w.bullets.Len(),
		TurretShots:   w.turretTimer.Fired(),
		Explosions:    len(w.explosions),
	}
}

// Hash returns an FNV-1a hash of the snapshot for determinism tests.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%+v", s)
	return h.Sum64()
}
