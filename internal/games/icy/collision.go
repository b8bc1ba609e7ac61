package icy

import (
	"sort"

	"github.com/vovakirdan/icy-tower/internal/core"
)

// visibleSorted returns the platforms still in play ordered by ascending y.
// Ties keep creation order.
func (g *Game) visibleSorted() []*Platform {
	out := make([]*Platform, 0, len(g.platforms))
	for _, p := range g.platforms {
		if p.Visible {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Y < out[j].Y
	})
	return out
}

// landsOn is the landing test: horizontal overlap, feet inside the
// platform's thickness, and moving down.
func (g *Game) landsOn(p *Platform) bool {
	pb := g.player.Box()
	bottom := pb.Bottom()
	return pb.OverlapsX(p.Box()) &&
		bottom > p.Y &&
		bottom < p.Y+p.H &&
		g.player.VelY >= 0
}

// resolvePlatforms runs landing, scoring, lifecycle timers and pickups for
// every platform in play.
func (g *Game) resolvePlatforms() {
	var pad *Platform

	for _, p := range g.visibleSorted() {
		landed := g.landsOn(p)
		if landed {
			if !p.occupied {
				g.emit(core.Event{Kind: core.EventLanded, Index: p.Index})
			}
			g.player.land(p.Y)
			g.award(p.Index)

			if p.Teleport && pad == nil {
				p.Teleport = false
				pad = p
			}
		}
		p.track(landed, g.now, g.cfg.Timers)
		g.collectStar(p)
	}

	if pad != nil {
		g.teleport(pad)
	}
}

// award credits a landing on index. Only a new high-water mark scores.
func (g *Game) award(index int) {
	if index <= g.highest {
		return
	}
	sc := g.cfg.Scoring
	delta := index - g.highest
	pts := delta * sc.PointsPerPlatform
	if delta > sc.SkipThreshold {
		pts += sc.SkipBonus
	}
	g.score += pts
	g.highest = index
	g.emit(core.Event{Kind: core.EventScored, Index: index, Value: pts})
}

// starBand is the pickup region directly above a platform.
func (g *Game) starBand(p *Platform) core.Box {
	band := g.cfg.Hazards.StarBand
	return core.NewBox(p.X, p.Y-band, p.W, band)
}

// collectStar consumes the platform's star on player contact.
func (g *Game) collectStar(p *Platform) {
	if !p.Star || !g.player.Box().Intersects(g.starBand(p)) {
		return
	}
	p.Star = false
	g.invincible = true
	g.invincibleSince = g.now
	g.emit(core.Event{Kind: core.EventStarCollected, Index: p.Index})
}

// teleport moves the player atop the platform a fixed number of indices
// above the pad. The pad is already consumed; a missing or gone target
// leaves the player where it is.
func (g *Game) teleport(pad *Platform) {
	target, ok := g.byIndex[pad.Index+g.cfg.Hazards.TeleportOffset]
	if !ok || !target.Visible {
		return
	}
	g.player.X = target.X + target.W/2 - g.player.W/2
	g.player.Y = target.Y - g.player.H
	g.player.VelY = 0
	g.emit(core.Event{Kind: core.EventTeleported, Index: target.Index})
}

func (g *Game) expireInvincibility() {
	if g.invincible && g.now-g.invincibleSince > g.cfg.Timers.Invincibility {
		g.invincible = false
	}
}

// hitEnemy reports a fatal enemy contact.
func (g *Game) hitEnemy() bool {
	if g.invincible {
		return false
	}
	pb := g.player.Box()
	for _, p := range g.platforms {
		if p.Visible && p.Enemy != nil && p.Enemy.Box().Intersects(pb) {
			return true
		}
	}
	return false
}

// fellOff reports the player reaching the bottom edge.
func (g *Game) fellOff() bool {
	return g.player.Y+g.player.H >= g.cfg.World.Height
}
