package rtype

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-rtype/internal/config"
	"github.com/vovakirdan/tui-rtype/internal/core"
)

// offWorld is where a destroyed player is parked.
var offWorld = core.V(-1000, -1000)

// SoundExplosion is the name of the sound event emitted with every explosion.
const SoundExplosion = "explosion"

// Player is the player ship.
type Player struct {
	core.Body
	Visible bool
	Alive   bool
}

// Enemy is the roaming enemy. Angle is its spin in degrees.
type Enemy struct {
	core.Body
	Angle  float64
	Active bool
}

// Turret is the stationary ground turret.
type Turret struct {
	Pos  core.Vec
	W, H float64
}

// Bounds returns the turret's box.
func (t Turret) Bounds() core.Box {
	return core.BoxAround(t.Pos, t.W, t.H)
}

// Boss is the end-of-level boss.
type Boss struct {
	core.Body
	HP     int
	Active bool
}

// Projectile is a missile or a turret bullet.
type Projectile struct {
	core.Body
}

// Explosion is a short-lived animation. Age counts ticks.
type Explosion struct {
	Pos core.Vec
	Age int
}

// Overlay holds the placement of the screen texts.
type Overlay struct {
	Start       bool // title and start prompt
	GameOver    bool
	GameOverPos core.Vec
	RestartPos  core.Vec
}

// World is the complete simulation state, advanced one tick at a time.
type World struct {
	cfg      config.RTypeConfig
	level    *Level
	rng      *rand.Rand
	tickRate int
	dt       float64

	phase  Phase
	scroll float64
	tick   int
	score  int

	player   Player
	enemy    Enemy
	turret   Turret
	boss     Boss
	missiles *core.Pool[Projectile]
	bullets  *core.Pool[Projectile]

	lastMissile core.Handle
	turretTimer core.Timer
	explosions  []Explosion
	overlay     Overlay

	events []core.Event
}

// NewWorld builds a world in the start phase.
func NewWorld(cfg config.RTypeConfig, level *Level, tickRate int, seed int64) *World {
	if tickRate <= 0 {
		tickRate = 60
	}
	w := &World{
		cfg:      cfg,
		level:    level,
		rng:      rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay randomness
		tickRate: tickRate,
		dt:       1 / float64(tickRate),
		phase:    PhaseStart,
		missiles: core.NewPool[Projectile](cfg.Missile.Pool),
		bullets:  core.NewPool[Projectile](cfg.Turret.Pool),
	}

	w.player = Player{
		Body:  core.Body{Pos: core.V(cfg.Player.StartX, cfg.Player.StartY), W: cfg.Player.Width, H: cfg.Player.Height},
		Alive: true,
	}
	w.enemy = Enemy{
		Body:   core.Body{Pos: core.V(cfg.Enemy.StartX, cfg.Enemy.StartY), W: cfg.Enemy.Width, H: cfg.Enemy.Height},
		Active: true,
	}
	w.turret = Turret{
		Pos: core.V(cfg.Turret.X, cfg.Turret.Y),
		W:   cfg.Turret.Width,
		H:   cfg.Turret.Height,
	}
	w.boss = Boss{
		Body:   core.Body{Pos: core.V(cfg.Boss.X, cfg.Boss.Y), W: cfg.Boss.Width, H: cfg.Boss.Height},
		HP:     cfg.Boss.Lives,
		Active: true,
	}
	w.overlay.Start = true
	return w
}

// Phase returns the current phase.
func (w *World) Phase() Phase { return w.phase }

// Step advances the world by one tick and returns the events it produced.
func (w *World) Step(in core.InputFrame) []core.Event {
	w.events = nil
	w.tick++

	switch w.phase {
	case PhaseStart:
		if in.Has(core.ActionStart) {
			w.fire(EventStart)
		}
	case PhaseScroll:
		w.advanceCamera()
		w.steer(in)
	case PhaseBoss:
		w.checkBossHit()
		w.steer(in)
	}

	w.integrate()

	if !w.phase.Terminal() {
		w.constrain()
	}
	if !w.phase.Terminal() {
		w.resolveCollisions()
	}
	if !w.phase.Terminal() && w.turretTimer.Tick() {
		w.fireTurret()
	}

	w.recycle()
	w.ageExplosions()
	return w.events
}

// fire applies a phase event. Side effects run only when the transition is
// accepted.
func (w *World) fire(e Event) bool {
	next, ok := Transition(w.phase, e)
	if !ok {
		return false
	}
	w.phase = next

	switch e {
	case EventStart:
		w.player.Visible = true
		w.overlay.Start = false
		w.player.Vel = core.V(w.cfg.Player.Speed, 0)
		w.enemy.Vel = core.V(-w.cfg.Enemy.Speed, 0)
		w.armTurret()
	case EventBossDestroyed:
		w.boss.Active = false
		w.player.Vel.X = w.cfg.Player.ExitSpeed
	case EventPlayerDestroyed:
		w.player.Pos = offWorld
		w.player.Stop()
		w.player.Alive = false
		center := w.scroll + float64(w.cfg.World.ViewWidth)/2
		w.overlay.GameOver = true
		w.overlay.GameOverPos = core.V(center, float64(w.cfg.World.ViewHeight)/2)
		w.overlay.RestartPos = core.V(center, float64(w.cfg.World.ViewHeight)*0.8)
	}

	w.emit(core.Event{Kind: core.EventPhase, Name: next.String()})
	return true
}

func (w *World) emit(e core.Event) {
	w.events = append(w.events, e)
}

func (w *World) advanceCamera() {
	if w.scroll < w.cfg.World.ScrollLimit {
		w.scroll = math.Min(w.scroll+w.cfg.World.ScrollStep, w.cfg.World.ScrollLimit)
	}
}

// steer sets the ship velocity from held directions and fires on a press.
func (w *World) steer(in core.InputFrame) {
	speed := w.cfg.Player.Speed
	var v core.Vec

	switch {
	case in.Holding(core.ActionLeft):
		v.X = -speed
	case in.Holding(core.ActionRight):
		v.X = speed
	}
	switch {
	case in.Holding(core.ActionUp):
		v.Y = -speed
	case in.Holding(core.ActionDown):
		v.Y = speed
	}
	w.player.Vel = v

	if in.Has(core.ActionFire) {
		w.fireMissile()
	}
}

// fireMissile launches a missile from the ship. An exhausted pool is a no-op.
func (w *World) fireMissile() {
	h, ok := w.missiles.Acquire()
	if !ok {
		return
	}
	m, _ := w.missiles.Get(h)
	p := w.player
	m.Body = core.Body{
		Pos: core.V(p.Pos.X+p.W/2, p.Pos.Y+p.H/2),
		Vel: core.V(w.cfg.Player.Speed+w.cfg.Missile.Speed, 0),
		W:   w.cfg.Missile.Width,
		H:   w.cfg.Missile.Height,
	}
	w.lastMissile = h
}

// checkBossHit plays the hit effect while the last missile overlaps the boss.
// Damage is dealt by the collision table.
func (w *World) checkBossHit() {
	if !w.boss.Active {
		return
	}
	m, ok := w.missiles.Get(w.lastMissile)
	if !ok {
		return
	}
	if m.Bounds().Intersects(w.boss.Bounds()) {
		w.explode(w.boss.Pos)
	}
}

func (w *World) integrate() {
	w.player.Integrate(w.dt)
	if w.enemy.Active {
		w.enemy.Integrate(w.dt)
		if w.cfg.Enemy.SpinMillis > 0 {
			w.enemy.Angle = math.Mod(w.enemy.Angle+360*w.dt*1000/float64(w.cfg.Enemy.SpinMillis), 360)
		}
	}
	w.missiles.Each(func(_ core.Handle, m *Projectile) { m.Integrate(w.dt) })
	w.bullets.Each(func(_ core.Handle, b *Projectile) { b.Integrate(w.dt) })
}

// constrain applies the per-phase bounds after movement.
func (w *World) constrain() {
	view := float64(w.cfg.World.ViewWidth)

	switch w.phase {
	case PhaseScroll:
		if w.player.Alive {
			w.player.Pos.X = core.ClampF(w.player.Pos.X, w.scroll, w.scroll+view)
		}
		if w.enemy.Active && w.enemy.Pos.X < w.scroll {
			w.wrapEnemy()
		}
		if w.scroll >= w.cfg.World.ScrollLimit {
			w.fire(EventScrollLimit)
		}
	case PhaseBoss:
		if w.player.Alive && w.player.Pos.X < w.scroll {
			w.player.Pos.X = w.scroll
		}
	}
}

// wrapEnemy moves an enemy that left the view back in beyond the right edge.
func (w *World) wrapEnemy() {
	h := w.cfg.Enemy.Height
	y := w.between(int(h), w.cfg.World.ViewHeight-int(h))
	w.enemy.Pos = core.V(w.scroll+float64(w.cfg.World.ViewWidth)+w.cfg.Enemy.Width, float64(y))
}

// between returns a uniform integer in [lo, hi].
func (w *World) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Intn(hi-lo+1)
}

// recycle releases projectiles that left the view by more than the margin.
func (w *World) recycle() {
	m := w.cfg.World.RecycleMargin
	view := core.Box{
		X: w.scroll - m,
		Y: -m,
		W: float64(w.cfg.World.ViewWidth) + 2*m,
		H: float64(w.cfg.World.ViewHeight) + 2*m,
	}
	for _, pool := range []*core.Pool[Projectile]{w.missiles, w.bullets} {
		pool.Each(func(h core.Handle, p *Projectile) {
			if !p.Bounds().Intersects(view) {
				pool.Release(h)
			}
		})
	}
}

// explode starts an explosion animation and its sound.
func (w *World) explode(at core.Vec) {
	w.explosions = append(w.explosions, Explosion{Pos: at})
	w.emit(core.Event{Kind: core.EventSound, Name: SoundExplosion})
}

// explosionTicks is the animation length in ticks.
func (w *World) explosionTicks() int {
	fx := w.cfg.Effects
	return max(1, fx.ExplosionFrames*w.tickRate/fx.ExplosionFPS)
}

// explosionFrame returns the animation frame shown at a given age.
func (w *World) explosionFrame(age int) int {
	return min(age*w.cfg.Effects.ExplosionFPS/w.tickRate, w.cfg.Effects.ExplosionFrames-1)
}

func (w *World) ageExplosions() {
	limit := w.explosionTicks()
	kept := w.explosions[:0]
	for _, e := range w.explosions {
		e.Age++
		if e.Age < limit {
			kept = append(kept, e)
		}
	}
	w.explosions = kept
}
