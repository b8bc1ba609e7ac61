package icy

import (
	"time"

	"github.com/vovakirdan/icy-tower/internal/config"
	"github.com/vovakirdan/icy-tower/internal/core"
)

// PlatformState is the lifecycle phase of a platform.
type PlatformState int

const (
	StateResting    PlatformState = iota // Never stood on, or stood on and returned to
	StateStanding                        // Player is on it
	StateDecaying                        // Player left; leave timer running
	StateFalling                         // Collapsing off the bottom of the screen
	StateGone                            // Out of play for good
)

// String returns the name of the state.
func (s PlatformState) String() string {
	switch s {
	case StateResting:
		return "resting"
	case StateStanding:
		return "standing"
	case StateDecaying:
		return "decaying"
	case StateFalling:
		return "falling"
	case StateGone:
		return "gone"
	default:
		return "unknown"
	}
}

// Platform is one ledge of the tower.
type Platform struct {
	X, Y    float64
	W, H    float64
	Index   int // Creation order; the altitude unit
	Visible bool

	Enemy    *Enemy
	Star     bool // One-shot invincibility pickup
	Teleport bool // One-shot forward teleport pad

	Moving    bool
	Direction float64 // +1 down, -1 up
	Speed     float64
	HomeY     float64 // Centre of the oscillation

	PlayerWasOn bool
	ShouldFall  bool
	Falling     bool

	occupied      bool          // Player stood on it during the last resolve pass
	standingSince time.Duration // Clock reading at first contact
	departed      bool
	leftAt        time.Duration // Clock reading at departure
}

// Box returns the collision box of the platform.
func (p *Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// State derives the lifecycle phase from the platform's flags.
func (p *Platform) State() PlatformState {
	switch {
	case !p.Visible:
		return StateGone
	case p.Falling:
		return StateFalling
	case p.occupied:
		return StateStanding
	case p.departed:
		return StateDecaying
	default:
		return StateResting
	}
}

// track updates the occupancy timers for one resolve pass.
// landed reports whether the player came to rest on the platform this tick.
func (p *Platform) track(landed bool, now time.Duration, timers config.TimersConfig) {
	if landed {
		if !p.occupied {
			p.occupied = true
			p.standingSince = now
			p.departed = false
		}
		p.PlayerWasOn = true
		if now-p.standingSince > timers.StandLimit {
			p.ShouldFall = true
		}
		return
	}

	if !p.PlayerWasOn {
		return
	}
	if !p.departed {
		p.departed = true
		p.occupied = false
		p.leftAt = now
		return
	}
	if now-p.leftAt > timers.LeaveLimit {
		p.ShouldFall = true
	}
}

// advanceFall starts and animates the collapse. It returns true on the tick
// the platform starts falling.
func (p *Platform) advanceFall(speed, limit float64) bool {
	started := false
	if p.ShouldFall && !p.Falling {
		p.Falling = true
		started = true
	}
	if !p.Falling {
		return started
	}

	p.Y += speed
	if p.Enemy != nil {
		p.Enemy.anchor(p)
	}
	if p.Y > limit {
		p.retire()
	}
	return started
}

// retire takes the platform out of play for good.
func (p *Platform) retire() {
	p.Visible = false
	p.Falling = false
	p.ShouldFall = false
	p.occupied = false
}

// oscillate moves a moving platform vertically within rng of its origin.
func (p *Platform) oscillate(rng float64) {
	if !p.Moving || p.Falling {
		return
	}
	p.Y += p.Direction * p.Speed
	if core.AbsF(p.Y-p.HomeY) >= rng {
		p.Y = core.ClampF(p.Y, p.HomeY-rng, p.HomeY+rng)
		p.Direction = -p.Direction
	}
}

// shift translates the platform and everything attached to it.
func (p *Platform) shift(dy float64) {
	p.Y += dy
	p.HomeY += dy
	if p.Enemy != nil {
		p.Enemy.Y += dy
	}
}
