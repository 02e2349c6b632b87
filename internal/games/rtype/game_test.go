package rtype

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-rtype/internal/config"
	"github.com/vovakirdan/tui-rtype/internal/core"
	"github.com/vovakirdan/tui-rtype/internal/registry"
)

const eps = 1e-9

func testLevel(t *testing.T) *Level {
	t.Helper()
	lvl, err := LoadLevel("", DefaultLevel)
	if err != nil {
		t.Fatalf("LoadLevel() error: %v", err)
	}
	return lvl
}

func newTestWorld(t *testing.T, mutate ...func(*config.RTypeConfig)) *World {
	t.Helper()
	cfg := config.DefaultRTypeConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	return NewWorld(cfg, testLevel(t), 60, 1)
}

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func hold(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Hold(a)
	}
	return f
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func phaseEvents(events []core.Event, name string) int {
	n := 0
	for _, e := range events {
		if e.Kind == core.EventPhase && e.Name == name {
			n++
		}
	}
	return n
}

// addProjectile places a projectile directly into a pool.
func addProjectile(t *testing.T, pool *core.Pool[Projectile], pos, vel core.Vec, w, h float64) core.Handle {
	t.Helper()
	hd, ok := pool.Acquire()
	if !ok {
		t.Fatal("pool exhausted")
	}
	p, _ := pool.Get(hd)
	p.Body = core.Body{Pos: pos, Vel: vel, W: w, H: h}
	return hd
}

func TestStartScreenWaitsForStart(t *testing.T) {
	w := newTestWorld(t)

	for i := 0; i < 120; i++ {
		w.Step(hold(core.ActionRight, core.ActionFire))
	}

	if w.phase != PhaseStart {
		t.Fatalf("phase = %v, expected startScreen", w.phase)
	}
	if w.scroll != 0 {
		t.Errorf("scroll = %v, expected 0", w.scroll)
	}
	if w.missiles.Len() != 0 {
		t.Error("missile fired on the title screen")
	}
	if w.player.Visible {
		t.Error("player visible before start")
	}
}

func TestStartEntersScrollGame(t *testing.T) {
	w := newTestWorld(t)
	events := w.Step(press(core.ActionStart))

	if w.phase != PhaseScroll {
		t.Fatalf("phase = %v, expected scrollGame", w.phase)
	}
	if phaseEvents(events, "scrollGame") != 1 {
		t.Errorf("events = %+v, expected one scrollGame phase event", events)
	}
	if !w.player.Visible || w.overlay.Start {
		t.Error("start should reveal the player and hide the title")
	}
	if w.player.Vel != core.V(150, 0) {
		t.Errorf("player velocity = %+v, expected (150, 0)", w.player.Vel)
	}
	if w.enemy.Vel != core.V(-100, 0) {
		t.Errorf("enemy velocity = %+v, expected (-100, 0)", w.enemy.Vel)
	}
	if !w.turretTimer.Armed() {
		t.Error("turret timer not armed")
	}
}

func TestScrollAdvancesCamera(t *testing.T) {
	w := newTestWorld(t)
	w.Step(press(core.ActionStart))

	for i := 0; i < 10; i++ {
		w.Step(idle())
	}
	if w.scroll != 20 {
		t.Errorf("scroll = %v, expected 20", w.scroll)
	}
}

func TestScrollLimitEntersBossGame(t *testing.T) {
	w := newTestWorld(t)
	w.phase = PhaseScroll
	w.scroll = 2398

	events := w.Step(idle())

	if w.scroll != 2400 {
		t.Errorf("scroll = %v, expected 2400", w.scroll)
	}
	if w.phase != PhaseBoss {
		t.Fatalf("phase = %v, expected bossGame", w.phase)
	}
	if phaseEvents(events, "bossGame") != 1 {
		t.Errorf("expected one bossGame phase event, got %+v", events)
	}

	w.Step(idle())
	if w.scroll != 2400 {
		t.Errorf("camera moved in boss phase: scroll = %v", w.scroll)
	}
}

func TestSteeringSnapsVelocity(t *testing.T) {
	tests := []struct {
		name string
		in   core.InputFrame
		vel  core.Vec
	}{
		{"none", idle(), core.V(0, 0)},
		{"left up", hold(core.ActionLeft, core.ActionUp), core.V(-150, -150)},
		{"right", hold(core.ActionRight), core.V(150, 0)},
		{"down pressed this tick", press(core.ActionDown), core.V(0, 150)},
		{"left wins over right", hold(core.ActionLeft, core.ActionRight), core.V(-150, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.phase = PhaseScroll
			w.player.Pos = core.V(400, 160)
			w.Step(tc.in)
			if w.player.Vel != tc.vel {
				t.Errorf("velocity = %+v, expected %+v", w.player.Vel, tc.vel)
			}
		})
	}
}

func TestPlayerClampedToView(t *testing.T) {
	w := newTestWorld(t)
	w.phase = PhaseScroll
	w.scroll = 100
	w.player.Pos = core.V(1000, 160)

	w.Step(idle())
	if w.player.Pos.X != w.scroll+800 {
		t.Errorf("x = %v, expected right bound %v", w.player.Pos.X, w.scroll+800)
	}

	w.player.Pos = core.V(50, 160)
	w.Step(idle())
	if w.player.Pos.X != w.scroll {
		t.Errorf("x = %v, expected left bound %v", w.player.Pos.X, w.scroll)
	}
}

func TestBossPhaseClampsLeftOnly(t *testing.T) {
	w := newTestWorld(t)
	w.phase = PhaseBoss
	w.scroll = 2400
	w.player.Pos = core.V(2300, 160)

	w.Step(idle())
	if w.player.Pos.X != 2400 {
		t.Errorf("x = %v, expected 2400", w.player.Pos.X)
	}

	w.player.Pos = core.V(3250, 40)
	w.Step(idle())
	if w.player.Pos.X != 3250 {
		t.Errorf("right bound applied in boss phase: x = %v", w.player.Pos.X)
	}
}

func TestFireMissile(t *testing.T) {
	w := newTestWorld(t)
	w.phase = PhaseScroll

	w.Step(press(core.ActionFire))

	if w.missiles.Len() != 1 {
		t.Fatalf("missiles = %d, expected 1", w.missiles.Len())
	}
	m, ok := w.missiles.Get(w.lastMissile)
	if !ok {
		t.Fatal("last missile handle does not resolve")
	}
	if m.Vel != core.V(250, 0) {
		t.Errorf("missile velocity = %+v, expected (250, 0)", m.Vel)
	}
	wantX := 200 + 16 + 250.0/60
	if math.Abs(m.Pos.X-wantX) > eps || m.Pos.Y != 168 {
		t.Errorf("missile position = %+v, expected (%v, 168)", m.Pos, wantX)
	}

	// held fire does not repeat
	w.Step(hold(core.ActionFire))
	if w.missiles.Len() != 1 {
		t.Errorf("held fire spawned another missile: %d", w.missiles.Len())
	}
}

func TestMissilePoolExhaustion(t *testing.T) {
	w := newTestWorld(t, func(c *config.RTypeConfig) { c.Missile.Pool = 2 })
	w.phase = PhaseScroll

	for i := 0; i < 3; i++ {
		w.Step(press(core.ActionFire))
	}
	if w.missiles.Len() != 2 {
		t.Errorf("missiles = %d, expected pool capacity 2", w.missiles.Len())
	}
	if w.phase != PhaseScroll {
		t.Errorf("exhausted pool changed phase to %v", w.phase)
	}
}

func TestEnemyWrapsAtLeftEdge(t *testing.T) {
	w := newTestWorld(t)
	w.phase = PhaseScroll
	w.scroll = 100
	w.enemy.Pos = core.V(100, 200)
	w.enemy.Vel = core.V(-100, 0)

	w.Step(idle())

	if w.enemy.Pos.X != w.scroll+800+32 {
		t.Errorf("enemy x = %v, expected %v", w.enemy.Pos.X, w.scroll+800+32)
	}
	if w.enemy.Pos.Y < 32 || w.enemy.Pos.Y > 288 {
		t.Errorf("enemy y = %v outside [32, 288]", w.enemy.Pos.Y)
	}
	if w.enemy.Vel != core.V(-100, 0) {
		t.Errorf("wrap changed velocity to %+v", w.enemy.Vel)
	}
}

func TestEnemySpins(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 60; i++ {
		w.Step(idle())
	}
	if math.Abs(w.enemy.Angle-180) > 1e-6 {
		t.Errorf("angle after one second = %v, expected 180", w.enemy.Angle)
	}
}

func TestTurretVolley(t *testing.T) {
	w := newTestWorld(t, func(c *config.RTypeConfig) { c.Turret.BulletSpeed = 1 })
	w.Step(press(core.ActionStart))
	w.enemy.Active = false

	for i := 1; i < 60; i++ {
		w.Step(idle())
	}
	if w.bullets.Len() != 1 {
		t.Fatalf("bullets after one second = %d, expected 1", w.bullets.Len())
	}

	for i := 0; i < 400; i++ {
		w.Step(idle())
	}
	if w.phase != PhaseScroll {
		t.Fatalf("phase = %v, expected scrollGame", w.phase)
	}
	if w.turretTimer.Fired() != 5 {
		t.Errorf("turret fired %d times, expected 5", w.turretTimer.Fired())
	}
	if w.turretTimer.Armed() {
		t.Error("turret timer re-armed")
	}
}

func TestTurretAimsAtPlayer(t *testing.T) {
	w := newTestWorld(t)
	w.player.Pos = core.V(375, 169)

	w.fireTurret()
	var b *Projectile
	w.bullets.Each(func(_ core.Handle, p *Projectile) { b = p })
	if b == nil {
		t.Fatal("no bullet fired")
	}
	if b.Pos != core.V(375, 269) {
		t.Errorf("muzzle = %+v, expected (375, 269)", b.Pos)
	}
	if math.Abs(b.Vel.X) > eps || math.Abs(b.Vel.Y+120) > eps {
		t.Errorf("velocity = %+v, expected (0, -120)", b.Vel)
	}
}

func TestTurretZeroAimFiresLeft(t *testing.T) {
	w := newTestWorld(t)
	w.player.Pos = core.V(375, 269)

	w.fireTurret()
	w.bullets.Each(func(_ core.Handle, p *Projectile) {
		if p.Vel != core.V(-120, 0) {
			t.Errorf("velocity = %+v, expected (-120, 0)", p.Vel)
		}
	})
	if w.bullets.Len() != 1 {
		t.Errorf("bullets = %d, expected 1", w.bullets.Len())
	}
}

func TestProjectilesRecycled(t *testing.T) {
	w := newTestWorld(t)
	w.phase = PhaseScroll
	addProjectile(t, w.missiles, core.V(1100, 160), core.V(250, 0), 16, 4)
	addProjectile(t, w.missiles, core.V(600, 160), core.V(250, 0), 16, 4)
	addProjectile(t, w.bullets, core.V(500, 500), core.V(0, 120), 8, 8)

	w.Step(idle())

	if w.missiles.Len() != 1 {
		t.Errorf("missiles = %d, expected 1 (offscreen one released)", w.missiles.Len())
	}
	if w.bullets.Len() != 0 {
		t.Errorf("bullets = %d, expected 0", w.bullets.Len())
	}
}

func TestTerminalPhaseIgnoresInput(t *testing.T) {
	w := newTestWorld(t)
	w.phase = PhaseScroll
	w.enemy.Pos = w.player.Pos
	w.Step(idle())
	if w.phase != PhaseLose {
		t.Fatalf("phase = %v, expected loseGame", w.phase)
	}

	scroll := w.scroll
	w.Step(press(core.ActionFire, core.ActionStart))
	if w.missiles.Len() != 0 {
		t.Error("fire accepted after game over")
	}
	if w.scroll != scroll {
		t.Error("camera advanced after game over")
	}
	if w.fire(EventStart) || w.fire(EventBossDestroyed) {
		t.Error("terminal phase accepted an event")
	}
	if w.phase != PhaseLose {
		t.Errorf("phase changed to %v", w.phase)
	}
}

func TestWinningShipFliesOff(t *testing.T) {
	w := newTestWorld(t)
	w.phase = PhaseBoss
	w.scroll = 2400
	w.boss.HP = 1
	addProjectile(t, w.missiles, w.boss.Pos, core.V(250, 0), 16, 4)

	w.Step(idle())
	if w.phase != PhaseWin {
		t.Fatalf("phase = %v, expected winGame", w.phase)
	}

	x := w.player.Pos.X
	for i := 0; i < 60; i++ {
		w.Step(hold(core.ActionLeft))
	}
	if math.Abs(w.player.Pos.X-(x+100)) > 1e-6 {
		t.Errorf("x = %v, expected %v", w.player.Pos.X, x+100)
	}
}

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create("rtype")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "rtype" || g.Title() != "R-Type" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultRTypeConfig(), testLevel(t))
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func scriptedInput(tick int) core.InputFrame {
	switch {
	case tick == 0:
		return press(core.ActionStart)
	case tick%15 == 0:
		return press(core.ActionFire)
	case tick%200 < 60:
		return hold(core.ActionUp)
	case tick%200 < 120:
		return hold(core.ActionDown, core.ActionRight)
	default:
		return idle()
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, 42)
		for i := 0; i < 600; i++ {
			g.Step(scriptedInput(i))
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("hashes differ:\n%+v\n%+v", a, b)
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(press(core.ActionStart))

	res := g.Step(press(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause not reported")
	}
	tick := g.world.tick
	for i := 0; i < 10; i++ {
		g.Step(idle())
	}
	if g.world.tick != tick {
		t.Errorf("world advanced while paused: %d -> %d", tick, g.world.tick)
	}

	res = g.Step(press(core.ActionPause))
	if res.State.Paused || g.world.tick != tick+1 {
		t.Errorf("unpause: paused=%v tick=%d", res.State.Paused, g.world.tick)
	}
	if g.Phase() != PhaseScroll {
		t.Errorf("pause changed phase to %v", g.Phase())
	}
}

func TestRunSummaryAndState(t *testing.T) {
	g := newTestGame(t, 1)
	if s := g.RunSummary(); s.Outcome != "abandoned" || s.BossHP != 5 {
		t.Errorf("fresh summary = %+v", s)
	}

	g.Step(press(core.ActionStart))
	g.world.player.Pos = core.V(g.world.scroll+400, 300)
	res := g.Step(idle())

	if !res.State.GameOver {
		t.Fatal("terrain crash should end the game")
	}
	if s := g.RunSummary(); s.Outcome != "lose" || s.Ticks != 2 {
		t.Errorf("summary = %+v", s)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "R - T Y P E") || !strings.Contains(out, "SCORE 000000") {
		t.Errorf("title screen missing text:\n%s", out)
	}
	if !strings.Contains(screen.Row(23), "█") {
		t.Error("ground not drawn on bottom row")
	}

	g.Step(press(core.ActionStart))
	g.world.player.Pos = core.V(200, 300)
	g.Step(idle())

	screen.Clear()
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "RESTART") {
		t.Errorf("game over screen missing text:\n%s", out)
	}
}
