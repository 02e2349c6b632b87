package rtype

import "github.com/vovakirdan/tui-rtype/internal/core"

// Kind identifies what an entity is for collision dispatch.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindMissile
	KindBullet
	KindTerrain
	KindBoss
)

// collider names one collidable entity. Pooled kinds carry their handle.
type collider struct {
	kind   Kind
	handle core.Handle
}

type kindPair struct {
	a, b Kind
}

type collisionHandler func(w *World, a, b collider)

// collisionOrder is the order in which pairs are tested each tick.
var collisionOrder = []kindPair{
	{KindPlayer, KindEnemy},
	{KindEnemy, KindMissile},
	{KindPlayer, KindBullet},
	{KindPlayer, KindTerrain},
	{KindBoss, KindMissile},
	{KindPlayer, KindBoss},
}

var collisionTable = map[kindPair]collisionHandler{
	{KindPlayer, KindEnemy}:   (*World).playerHitEnemy,
	{KindEnemy, KindMissile}:  (*World).missileHitEnemy,
	{KindPlayer, KindBullet}:  (*World).bulletHitPlayer,
	{KindPlayer, KindTerrain}: (*World).playerHitTerrain,
	{KindBoss, KindMissile}:   (*World).missileHitBoss,
	{KindPlayer, KindBoss}:    (*World).playerHitBoss,
}

// resolveCollisions tests every registered pair and dispatches overlaps.
// Boxes are re-read before each test, so an entity removed by one handler
// takes no part in later ones. Dispatch stops once the game is over.
func (w *World) resolveCollisions() {
	for _, p := range collisionOrder {
		for _, a := range w.colliders(p.a) {
			for _, b := range w.colliders(p.b) {
				if w.phase.Terminal() {
					return
				}
				if w.overlapping(a, b) {
					w.dispatch(a, b)
				}
			}
		}
	}
}

// dispatch runs the handler registered for the pair, in either order.
func (w *World) dispatch(a, b collider) bool {
	if fn, ok := collisionTable[kindPair{a.kind, b.kind}]; ok {
		fn(w, a, b)
		return true
	}
	if fn, ok := collisionTable[kindPair{b.kind, a.kind}]; ok {
		fn(w, b, a)
		return true
	}
	return false
}

func (w *World) colliders(k Kind) []collider {
	switch k {
	case KindPlayer:
		if w.player.Alive {
			return []collider{{kind: k}}
		}
	case KindEnemy:
		if w.enemy.Active {
			return []collider{{kind: k}}
		}
	case KindBoss:
		if w.boss.Active {
			return []collider{{kind: k}}
		}
	case KindTerrain:
		return []collider{{kind: k}}
	case KindMissile:
		return poolColliders(k, w.missiles)
	case KindBullet:
		return poolColliders(k, w.bullets)
	}
	return nil
}

func poolColliders(k Kind, pool *core.Pool[Projectile]) []collider {
	hs := pool.Handles()
	out := make([]collider, len(hs))
	for i, h := range hs {
		out[i] = collider{kind: k, handle: h}
	}
	return out
}

// bounds returns the current box of a live collider.
func (w *World) bounds(c collider) (core.Box, bool) {
	switch c.kind {
	case KindPlayer:
		return w.player.Bounds(), w.player.Alive
	case KindEnemy:
		return w.enemy.Bounds(), w.enemy.Active
	case KindBoss:
		return w.boss.Bounds(), w.boss.Active
	case KindMissile:
		if m, ok := w.missiles.Get(c.handle); ok {
			return m.Bounds(), true
		}
	case KindBullet:
		if b, ok := w.bullets.Get(c.handle); ok {
			return b.Bounds(), true
		}
	}
	return core.Box{}, false
}

func (w *World) overlapping(a, b collider) bool {
	if a.kind == KindTerrain {
		a, b = b, a
	}
	ab, ok := w.bounds(a)
	if !ok {
		return false
	}
	if b.kind == KindTerrain {
		return w.level != nil && w.level.Overlaps(ab)
	}
	bb, ok := w.bounds(b)
	return ok && ab.Intersects(bb)
}

func (w *World) playerHitEnemy(_, _ collider) {
	w.enemy.Active = false
	w.explode(w.player.Pos)
	w.fire(EventPlayerDestroyed)
}

func (w *World) missileHitEnemy(_, missile collider) {
	w.explode(w.enemy.Pos)
	if w.phase == PhaseScroll {
		y := w.between(w.cfg.Enemy.RespawnMinY, w.cfg.Enemy.RespawnMaxY)
		w.enemy.Pos = core.V(w.scroll, float64(y))
		w.enemy.Vel = core.V(-w.cfg.Enemy.Speed, 0)
	} else {
		w.enemy.Active = false
	}
	w.missiles.Release(missile.handle)
	w.score += w.cfg.Score.Enemy
}

func (w *World) bulletHitPlayer(_, bullet collider) {
	w.explode(w.player.Pos)
	w.bullets.Release(bullet.handle)
	w.fire(EventPlayerDestroyed)
}

func (w *World) playerHitTerrain(_, _ collider) {
	w.explode(w.player.Pos)
	w.fire(EventPlayerDestroyed)
}

func (w *World) playerHitBoss(_, _ collider) {
	w.explode(w.player.Pos)
	w.fire(EventPlayerDestroyed)
}

// missileHitBoss costs the boss one hit point. The boss is destroyed on the
// tick its HP first reaches zero.
func (w *World) missileHitBoss(_, missile collider) {
	w.explode(w.boss.Pos)
	w.missiles.Release(missile.handle)
	w.boss.HP--
	w.score += w.cfg.Score.BossHit
	if w.boss.HP <= 0 {
		w.boss.HP = 0
		w.score += w.cfg.Score.BossKill
		w.fire(EventBossDestroyed)
	}
}
