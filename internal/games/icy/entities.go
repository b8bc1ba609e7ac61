package icy

import "github.com/vovakirdan/icy-tower/internal/core"

// EnemyKind selects one of the enemy variants.
type EnemyKind int

const (
	EnemyGuard  EnemyKind = iota // Sits still on its platform
	EnemyPatrol                  // Walks back and forth across its platform
	enemyKindCount
)

// String returns the name of the enemy kind.
func (k EnemyKind) String() string {
	switch k {
	case EnemyGuard:
		return "guard"
	case EnemyPatrol:
		return "patrol"
	default:
		return "unknown"
	}
}

// enemyBehavior is the per-variant table consulted once per tick.
type enemyBehavior struct {
	width, height float64
	patrols       bool
	centered      bool // Spawns at the platform's midpoint instead of its left edge
	glyph         rune
	color         core.Color
}

var enemyBehaviors = [enemyKindCount]enemyBehavior{
	EnemyGuard: {
		width:    20,
		height:   20,
		centered: true,
		glyph:    '▲',
		color:    core.ColorRed,
	},
	EnemyPatrol: {
		width:   15,
		height:  15,
		patrols: true,
		glyph:   '◆',
		color:   core.ColorMagenta,
	},
}

// Enemy is a hazard owned by exactly one platform.
type Enemy struct {
	Kind      EnemyKind
	X, Y      float64 // Top-left corner
	Direction float64 // +1 right, -1 left; patrols only
}

func (e *Enemy) behavior() enemyBehavior {
	return enemyBehaviors[e.Kind]
}

// Box returns the collision box of the enemy.
func (e *Enemy) Box() core.Box {
	b := e.behavior()
	return core.NewBox(e.X, e.Y, b.width, b.height)
}

// newEnemy places an enemy of the given kind on top of the platform.
func newEnemy(kind EnemyKind, p *Platform) *Enemy {
	e := &Enemy{Kind: kind, X: p.X, Direction: 1}
	if b := e.behavior(); b.centered {
		e.X = p.X + p.W/2 - b.width/2
	}
	e.anchor(p)
	return e
}

// anchor keeps the enemy standing on its platform's top edge.
func (e *Enemy) anchor(p *Platform) {
	e.Y = p.Y - e.behavior().height
}

// update advances the enemy by one tick.
func (e *Enemy) update(p *Platform, speed float64) {
	b := e.behavior()
	if b.patrols {
		e.X += e.Direction * speed
		if e.X <= p.X {
			e.X = p.X
			e.Direction = 1
		} else if e.X+b.width >= p.X+p.W {
			e.X = p.X + p.W - b.width
			e.Direction = -1
		}
	}
	e.anchor(p)
}
