package icy

import (
	"testing"

	"github.com/vovakirdan/icy-tower/internal/config"
	"github.com/vovakirdan/icy-tower/internal/core"
)

func minPlatformY(g *Game) float64 {
	lowest := g.platforms[0].Y
	for _, p := range g.platforms {
		lowest = min(lowest, p.Y)
	}
	return lowest
}

func TestInitialWorld(t *testing.T) {
	g := newTestGame(t, calm)

	ground := g.platforms[0]
	if ground.Index != 0 || ground.Y != 550 {
		t.Errorf("ground = index %d y %v, want index 0 y 550", ground.Index, ground.Y)
	}
	if ground.X != 0 || ground.W != 400 {
		t.Errorf("ground should span the world, got x=%v w=%v", ground.X, ground.W)
	}
	if len(g.platforms) < g.cfg.Platforms.InitialCount {
		t.Errorf("got %d platforms, want at least %d", len(g.platforms), g.cfg.Platforms.InitialCount)
	}
	if g.lastY > -g.cfg.World.Height {
		t.Errorf("lastY = %v, want a full screen generated above the top", g.lastY)
	}
}

func TestPlatformSpacing(t *testing.T) {
	g := newTestGame(t, calm)

	for i := 1; i < len(g.platforms); i++ {
		gap := g.platforms[i-1].Y - g.platforms[i].Y
		if gap != 50 {
			t.Fatalf("gap between %d and %d = %v, want 50", i-1, i, gap)
		}
	}

	jittery := newTestGame(t, fixedSource{f: 0.99, n: 49})
	for i := 1; i < len(jittery.platforms); i++ {
		gap := jittery.platforms[i-1].Y - jittery.platforms[i].Y
		if gap != 99 {
			t.Fatalf("gap = %v, want 99", gap)
		}
	}
}

func TestFullWidthPlatforms(t *testing.T) {
	cfg := config.DefaultIcyConfig()
	cfg.Platforms.FullWidthEvery = 3
	g := New(WithConfig(cfg), WithSource(calm))
	g.Reset(core.DefaultConfig())

	for _, p := range g.platforms {
		full := p.W == cfg.World.Width
		if want := p.Index%3 == 0; full != want {
			t.Errorf("platform %d full width = %v, want %v", p.Index, full, want)
		}
		if !full && p.X != 0.99*(cfg.World.Width-cfg.Platforms.Width) {
			t.Errorf("platform %d x = %v", p.Index, p.X)
		}
	}
}

func TestHazardRolls(t *testing.T) {
	g := newTestGame(t, busy)

	ground := g.platforms[0]
	if ground.Enemy != nil || ground.Star || ground.Teleport || ground.Moving {
		t.Error("ground platform must not carry hazards or pickups")
	}

	for _, p := range g.platforms[1:] {
		if p.Enemy == nil || !p.Star || !p.Teleport || !p.Moving {
			t.Fatalf("platform %d missing a rolled feature: %+v", p.Index, p)
		}
		if p.Enemy.Kind != EnemyGuard {
			t.Errorf("platform %d enemy = %v, want guard", p.Index, p.Enemy.Kind)
		}
		if p.Speed != g.cfg.Hazards.OscillationSpeed || p.HomeY != p.Y {
			t.Errorf("platform %d motion not initialised", p.Index)
		}
	}

	patrols := newTestGame(t, fixedSource{f: 0, n: 1})
	if k := patrols.platforms[1].Enemy.Kind; k != EnemyPatrol {
		t.Errorf("enemy = %v, want patrol", k)
	}

	quiet := newTestGame(t, calm)
	for _, p := range quiet.platforms {
		if p.Enemy != nil || p.Star || p.Teleport || p.Moving {
			t.Fatalf("platform %d rolled a feature with a high roll", p.Index)
		}
	}
}

func TestScrollShiftsWorld(t *testing.T) {
	g := newTestGame(t, calm)

	before := make([]float64, len(g.platforms))
	for i, p := range g.platforms {
		before[i] = p.Y
	}
	lastY := g.lastY

	// Below the quarter line: nothing moves
	g.player.Y = 200
	g.player.VelY = -8
	g.scroll()
	if g.player.Y != 200 || g.platforms[0].Y != before[0] {
		t.Fatal("scroll should not happen below the threshold")
	}

	g.player.Y = 100
	g.scroll()

	if g.player.Y != 108 {
		t.Errorf("player y = %v, want 108", g.player.Y)
	}
	for i := range before {
		if g.platforms[i].Y != before[i]+8 {
			t.Fatalf("platform %d y = %v, want %v", i, g.platforms[i].Y, before[i]+8)
		}
	}
	if len(g.platforms) <= len(before) {
		t.Error("scroll should generate new platforms")
	}
	if g.lastY > -g.cfg.World.Height {
		t.Errorf("lastY = %v, want the gap closed (was %v before scrolling)", g.lastY, lastY)
	}
}

func TestScrollCullsPassedPlatforms(t *testing.T) {
	g := newTestGame(t, calm)
	clearWorld(g)
	low := addPlatform(g, 1, 50, 695, 100)
	edge := addPlatform(g, 2, 50, 690, 100)
	high := addPlatform(g, 3, 50, 300, 100)

	g.player.Y = 100
	g.player.VelY = -8
	g.scroll()

	if low.Visible {
		t.Error("platform scrolled below the cull line is still in play")
	}
	if low.State() != StateGone {
		t.Errorf("state = %v, want gone", low.State())
	}
	if !edge.Visible || !high.Visible {
		t.Error("platforms at or above the cull line should stay in play")
	}
	if _, ok := g.byIndex[1]; ok {
		t.Error("culled platform still indexed")
	}
	for _, p := range g.platforms {
		if p == low {
			t.Fatal("culled platform still tracked")
		}
	}
	for _, v := range g.Snapshot().Platforms {
		if v.Index == 1 {
			t.Error("culled platform still drawn")
		}
	}
}

func TestGenerationInvariant(t *testing.T) {
	g := newTestGame(t, rngFor(7))

	for range 500 {
		g.player.Y = 10
		g.player.VelY = -30
		g.scroll()

		if g.lastY > -g.cfg.World.Height {
			t.Fatalf("gap left above the screen: lastY=%v", g.lastY)
		}
		if minPlatformY(g) != g.lastY {
			t.Fatalf("lastY %v is not the topmost platform %v", g.lastY, minPlatformY(g))
		}
	}
}

func TestIndicesUniqueAndIncreasing(t *testing.T) {
	g := newTestGame(t, rngFor(99))

	for i := range 500 {
		g.player.Y = 10
		g.player.VelY = -float64(i%40 + 1)
		g.scroll()
	}

	seen := make(map[int]bool)
	for i, p := range g.platforms {
		if seen[p.Index] {
			t.Fatalf("index %d reused", p.Index)
		}
		seen[p.Index] = true
		if i > 0 && p.Index <= g.platforms[i-1].Index {
			t.Fatalf("index %d not above %d", p.Index, g.platforms[i-1].Index)
		}
		if g.byIndex[p.Index] != p {
			t.Fatalf("index %d missing from lookup", p.Index)
		}
	}
}

func TestGenerationDeterministic(t *testing.T) {
	a := newTestGame(t, rngFor(2024))
	b := newTestGame(t, rngFor(2024))

	if len(a.platforms) != len(b.platforms) {
		t.Fatalf("platform counts differ: %d vs %d", len(a.platforms), len(b.platforms))
	}
	for i := range a.platforms {
		pa, pb := a.platforms[i], b.platforms[i]
		if pa.X != pb.X || pa.Y != pb.Y || pa.Star != pb.Star || (pa.Enemy == nil) != (pb.Enemy == nil) {
			t.Fatalf("platform %d differs", i)
		}
	}
}
