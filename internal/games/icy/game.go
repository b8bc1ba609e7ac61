// Package icy implements the vertical platform climber.
//
// The simulation is pure: it consumes core.InputFrame values carrying an
// injected run clock and reports what happened through core.Event values.
// Rendering, audio and persistence belong to the hosts.
package icy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/icy-tower/internal/config"
	"github.com/vovakirdan/icy-tower/internal/core"
)

// GameID is the leaderboard key of the climber.
const GameID = "icy"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithConfig uses cfg instead of loading the configuration on Reset.
func WithConfig(cfg config.IcyConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.cfgFixed = true
	}
}

// WithSource injects the random source used for world generation.
// The source survives Reset; without it every Reset seeds a fresh one
// from RuntimeConfig.Seed.
func WithSource(src Source) Option {
	return func(g *Game) {
		g.rng = src
		g.rngFixed = true
	}
}

// Game implements the climber.
type Game struct {
	// Configuration
	runtime  core.RuntimeConfig
	cfg      config.IcyConfig
	cfgFixed bool
	rng      Source
	rngFixed bool

	// World
	player    Player
	platforms []*Platform // Creation order; invisible platforms stay for index lookups
	byIndex   map[int]*Platform
	nextIndex int
	lastY     float64 // Top of the most recently generated platform

	// Scoring
	score   int
	highest int // Highest platform index landed on
	best    int // Best stored score, shown in the HUD

	// Invincibility window
	invincible      bool
	invincibleSince time.Duration

	// Run state
	gameOver  bool
	paused    bool
	started   bool
	tick      uint64
	overTicks int // Frames since game over, drives the banner animation
	clock     runClock
	now       time.Duration

	events []core.Event
}

// New creates a new climber.
func New(opts ...Option) *Game {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Icy Tower"
}

// Reset initializes or restarts the run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.cfgFixed {
		cfg, err := config.LoadIcy(configPath)
		if err != nil {
			cfg = config.DefaultIcyConfig()
		}
		g.cfg = cfg
	}
	if !g.rngFixed {
		g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness
	}

	g.platforms = make([]*Platform, 0, 32)
	g.byIndex = make(map[int]*Platform)
	g.nextIndex = 0

	g.score = 0
	g.highest = 0
	g.invincible = false
	g.invincibleSince = 0
	g.gameOver = false
	g.paused = false
	g.started = false
	g.tick = 0
	g.overTicks = 0
	g.clock = runClock{}
	g.now = 0
	g.events = nil

	g.seedPlatforms()
	g.player = newPlayer(g.cfg.World, g.cfg.Player)
}

// SetBestScore sets the stored best score shown in the HUD.
func (g *Game) SetBestScore(score int) {
	g.best = score
}

// LeaderboardSize returns how many scores the leaderboard keeps.
func (g *Game) LeaderboardSize() int {
	return g.cfg.Scoring.LeaderboardSize
}

// Config returns the configuration of the current run.
func (g *Game) Config() config.IcyConfig {
	return g.cfg
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	// Frozen after game over; only the banner animates
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.runtime.Seed++
			g.Reset(g.runtime)
			return g.result()
		}
		g.overTicks++
		return g.result()
	}

	reading := g.reading(in)

	if in.Has(core.ActionPause) {
		// Pauses before the first step never reach the run clock
		if g.started {
			if g.paused {
				g.clock.resume(reading)
			} else {
				g.clock.pause(reading)
			}
		}
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	if !g.started {
		g.started = true
		g.clock.start(reading)
		g.emit(core.Event{Kind: core.EventMusicStart})
	}
	g.now = g.clock.elapsed(reading)
	g.tick++

	// Player kinematics
	if in.Has(core.ActionJump) {
		g.player.jump(g.cfg.Physics.BaseJump)
	}
	left := in.IsHeld(core.ActionLeft) || in.Has(core.ActionLeft)
	right := in.IsHeld(core.ActionRight) || in.Has(core.ActionRight)
	g.player.integrate(left, right, g.cfg.Physics, g.cfg.World.Width)

	// World
	g.scroll()
	g.advanceFalls()
	g.updateEntities()

	// Collisions, scoring and pickups
	g.resolvePlatforms()
	g.expireInvincibility()
	if g.hitEnemy() || g.fellOff() {
		g.endRun()
	}

	return g.result()
}

// reading returns the clock reading carried by the frame. Frames without one
// fall back to the tick count at the runtime tick rate.
func (g *Game) reading(in core.InputFrame) time.Duration {
	if in.Now > 0 {
		return in.Now
	}
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Duration(g.tick) * time.Second / time.Duration(rate)
}

// endRun enters the terminal state. It runs at most once per run.
func (g *Game) endRun() {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.emit(core.Event{Kind: core.EventGameOver, Value: g.score})
	g.emit(core.Event{Kind: core.EventMusicStop})
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func eventFalling(index int) core.Event {
	return core.Event{Kind: core.EventPlatformFalling, Index: index}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Now returns the run clock: time since the first step, pauses excluded.
func (g *Game) Now() time.Duration {
	return g.now
}

// runClock turns host clock readings into run time.
type runClock struct {
	origin      time.Duration
	pausedAt    time.Duration
	pausedTotal time.Duration
}

func (c *runClock) start(reading time.Duration) {
	c.origin = reading
}

func (c *runClock) pause(reading time.Duration) {
	c.pausedAt = reading
}

func (c *runClock) resume(reading time.Duration) {
	if reading > c.pausedAt {
		c.pausedTotal += reading - c.pausedAt
	}
}

func (c *runClock) elapsed(reading time.Duration) time.Duration {
	return reading - c.origin - c.pausedTotal
}
