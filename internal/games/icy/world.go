package icy

import "github.com/vovakirdan/icy-tower/internal/core"

// Source is the random number source used for world generation.
// *rand.Rand satisfies it; tests inject scripted sources.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// chance returns true with probability p.
func chance(rng Source, p float64) bool {
	return p > 0 && rng.Float64() < p
}

// seedPlatforms builds the ground platform and the opening climb.
func (g *Game) seedPlatforms() {
	pc := g.cfg.Platforms
	ground := g.spawnPlatform(g.cfg.World.Height - pc.FirstOffset)
	g.lastY = ground.Y

	for len(g.platforms) < pc.InitialCount {
		g.spawnNext()
	}
	g.fillAbove()
}

// fillAbove keeps one full screen of platforms generated above the viewport.
// It loops until the gap is closed, so it never depends on how far the last
// scroll moved.
func (g *Game) fillAbove() {
	for g.lastY > -g.cfg.World.Height {
		g.spawnNext()
	}
}

// spawnNext creates the next platform one random gap above the previous one.
func (g *Game) spawnNext() {
	pc := g.cfg.Platforms
	gap := pc.Spacing
	if pc.SpacingJitter > 0 {
		gap += float64(g.rng.Intn(pc.SpacingJitter))
	}
	g.lastY -= gap
	g.spawnPlatform(g.lastY)
}

// spawnPlatform synthesizes a platform at y with the next index.
// Hazards and pickups are rolled independently; the ground platform gets none.
func (g *Game) spawnPlatform(y float64) *Platform {
	pc := g.cfg.Platforms
	hz := g.cfg.Hazards
	worldW := g.cfg.World.Width

	index := g.nextIndex
	g.nextIndex++

	p := &Platform{
		Y:       y,
		W:       pc.Width,
		H:       pc.Height,
		Index:   index,
		Visible: true,
		HomeY:   y,
	}
	if index%pc.FullWidthEvery == 0 {
		p.W = worldW
	} else {
		p.X = g.rng.Float64() * (worldW - p.W)
	}

	if index > 0 {
		if chance(g.rng, hz.EnemyChance) {
			kind := EnemyGuard
			if g.rng.Intn(2) == 1 {
				kind = EnemyPatrol
			}
			p.Enemy = newEnemy(kind, p)
		}
		if chance(g.rng, hz.MovingChance) {
			p.Moving = true
			p.Direction = 1
			p.Speed = hz.OscillationSpeed
		}
		p.Star = chance(g.rng, hz.StarChance)
		p.Teleport = chance(g.rng, hz.TeleportChance)
	}

	g.platforms = append(g.platforms, p)
	g.byIndex[index] = p
	return p
}

// scroll moves the world down when the player climbs above the threshold line,
// drops platforms pushed below the cull line, then tops the tower up.
func (g *Game) scroll() {
	line := g.cfg.World.Height * g.cfg.World.ScrollThreshold
	if g.player.Y >= line {
		return
	}

	dy := core.AbsF(g.player.VelY)
	g.player.Y += dy
	limit := g.cfg.World.Height + 100
	for _, p := range g.platforms {
		p.shift(dy)
		if p.Visible && p.Y > limit {
			p.retire()
		}
	}
	g.prune()
	g.lastY += dy
	g.fillAbove()
}

// prune forgets platforms that have left play.
func (g *Game) prune() {
	kept := g.platforms[:0]
	for _, p := range g.platforms {
		if p.Visible {
			kept = append(kept, p)
			continue
		}
		delete(g.byIndex, p.Index)
	}
	clear(g.platforms[len(kept):])
	g.platforms = kept
}

// updateEntities advances moving platforms and their enemies. A player
// standing on a moving platform rides along with it.
func (g *Game) updateEntities() {
	hz := g.cfg.Hazards
	for _, p := range g.platforms {
		if !p.Visible {
			continue
		}
		before := p.Y
		p.oscillate(hz.OscillationRange)
		if p.occupied && !g.player.Jumping {
			g.player.Y += p.Y - before
		}
		if p.Enemy != nil {
			p.Enemy.update(p, hz.PatrolSpeed)
		}
	}
}

// advanceFalls runs the collapse animation of every marked platform.
func (g *Game) advanceFalls() {
	limit := g.cfg.World.Height + 100
	for _, p := range g.platforms {
		if !p.Visible {
			continue
		}
		if p.advanceFall(g.cfg.Physics.FallSpeed, limit) {
			g.emit(eventFalling(p.Index))
		}
	}
}
