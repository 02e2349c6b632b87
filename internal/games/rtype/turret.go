package rtype

import "github.com/vovakirdan/tui-rtype/internal/core"

// armTurret starts the turret volley: Shots fires, one every IntervalMillis.
func (w *World) armTurret() {
	t := w.cfg.Turret
	w.turretTimer.Arm(t.IntervalMillis*w.tickRate/1000, t.Shots)
}

// fireTurret launches one bullet from the muzzle toward the player's current
// position. The bullet does not re-aim afterwards.
func (w *World) fireTurret() {
	h, ok := w.bullets.Acquire()
	if !ok {
		return
	}
	b, _ := w.bullets.Get(h)

	t := w.cfg.Turret
	origin := core.V(w.turret.Pos.X, w.turret.Pos.Y-t.MuzzleOffset)
	dir, ok := w.player.Pos.Sub(origin).Normalize()
	if !ok {
		dir = core.V(-1, 0)
	}

	b.Body = core.Body{
		Pos: origin,
		Vel: dir.Scale(t.BulletSpeed),
		W:   t.BulletSize,
		H:   t.BulletSize,
	}
}
