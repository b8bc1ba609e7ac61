package icy

import (
	"github.com/vovakirdan/icy-tower/internal/config"
	"github.com/vovakirdan/icy-tower/internal/core"
)

// Player is the climber.
type Player struct {
	X, Y    float64
	W, H    float64
	VelX    float64
	VelY    float64
	Speed   float64 // Horizontal velocity cap
	Jumping bool
}

// newPlayer spawns the climber horizontally centred above the ground platform.
func newPlayer(world config.WorldConfig, cfg config.PlayerConfig) Player {
	return Player{
		X:     world.Width / 2,
		Y:     world.Height - cfg.StartOffset,
		W:     cfg.Width,
		H:     cfg.Height,
		Speed: cfg.Speed,
	}
}

// Box returns the collision box of the player.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// jump applies the jump impulse unless the player is already airborne from a jump.
// Running speed converts into extra height.
func (p *Player) jump(baseJump float64) bool {
	if p.Jumping {
		return false
	}
	p.Jumping = true
	p.VelY = baseJump - core.AbsF(p.VelX)
	return true
}

// integrate advances the player by one tick of held input, friction and gravity.
func (p *Player) integrate(left, right bool, phys config.PhysicsConfig, worldW float64) {
	if right && p.VelX < p.Speed {
		p.VelX++
	}
	if left && p.VelX > -p.Speed {
		p.VelX--
	}

	p.VelX *= phys.Friction
	p.VelY += phys.Gravity

	p.X += p.VelX
	p.Y += p.VelY

	// Screen edges are hard walls; velocity is left alone
	p.X = core.ClampF(p.X, 0, worldW-p.W)
}

// land puts the player's feet on top of a surface at y.
func (p *Player) land(y float64) {
	p.Y = y - p.H
	p.VelY = 0
	p.Jumping = false
}
