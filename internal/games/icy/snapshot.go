package icy

import (
	"math"
	"time"

	"github.com/vovakirdan/icy-tower/internal/core"
)

// PlayerView is a read-only copy of the player.
type PlayerView struct {
	Box     core.Box
	VelX    float64
	VelY    float64
	Jumping bool
}

// EnemyView is a read-only copy of an enemy.
type EnemyView struct {
	Kind EnemyKind
	Box  core.Box
}

// PlatformView is a read-only copy of a platform in play.
type PlatformView struct {
	Box      core.Box
	Index    int
	State    PlatformState
	Star     bool
	Teleport bool
	Moving   bool
	Enemy    *EnemyView
}

// Snapshot contains everything a render sink needs for one frame.
// Platforms are in draw order: ascending y.
type Snapshot struct {
	Tick           uint64
	Now            time.Duration
	WorldW         float64
	WorldH         float64
	Player         PlayerView
	Platforms      []PlatformView
	Score          int
	Highest        int
	Best           int
	Invincible     bool
	InvincibleLeft time.Duration
	GameOver       bool
	Paused         bool
	OverTicks      int
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   g.tick,
		Now:    g.now,
		WorldW: g.cfg.World.Width,
		WorldH: g.cfg.World.Height,
		Player: PlayerView{
			Box:     g.player.Box(),
			VelX:    g.player.VelX,
			VelY:    g.player.VelY,
			Jumping: g.player.Jumping,
		},
		Score:      g.score,
		Highest:    g.highest,
		Best:       g.best,
		Invincible: g.invincible,
		GameOver:   g.gameOver,
		Paused:     g.paused,
		OverTicks:  g.overTicks,
	}
	if g.invincible {
		left := g.cfg.Timers.Invincibility - (g.now - g.invincibleSince)
		snap.InvincibleLeft = max(left, 0)
	}

	visible := g.visibleSorted()
	snap.Platforms = make([]PlatformView, 0, len(visible))
	for _, p := range visible {
		view := PlatformView{
			Box:      p.Box(),
			Index:    p.Index,
			State:    p.State(),
			Star:     p.Star,
			Teleport: p.Teleport,
			Moving:   p.Moving,
		}
		if p.Enemy != nil {
			view.Enemy = &EnemyView{Kind: p.Enemy.Kind, Box: p.Enemy.Box()}
		}
		snap.Platforms = append(snap.Platforms, view)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v float64) {
		h = h*31 + math.Float64bits(v)
	}
	mixInt := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	mix(snap.Player.Box.X)
	mix(snap.Player.Box.Y)
	mix(snap.Player.VelX)
	mix(snap.Player.VelY)
	mixInt(snap.Score)
	mixInt(snap.Highest)
	for _, p := range snap.Platforms {
		mixInt(p.Index)
		mix(p.Box.X)
		mix(p.Box.Y)
		mix(p.Box.W)
		mixInt(int(p.State))
		if p.Enemy != nil {
			mix(p.Enemy.Box.X)
		}
	}
	return h
}
