package icy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/icy-tower/internal/config"
	"github.com/vovakirdan/icy-tower/internal/core"
)

// fixedSource returns the same values forever.
type fixedSource struct {
	f float64
	n int
}

func (s fixedSource) Float64() float64 { return s.f }
func (s fixedSource) Intn(n int) int   { return s.n % n }

// calm never rolls a hazard and always uses the base spacing.
var calm = fixedSource{f: 0.99}

// busy rolls every hazard and pickup.
var busy = fixedSource{f: 0}

func newTestGame(t *testing.T, src Source) *Game {
	t.Helper()
	g := New(WithConfig(config.DefaultIcyConfig()), WithSource(src))
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

// clearWorld removes every generated platform so a test can place its own.
func clearWorld(g *Game) {
	g.platforms = nil
	g.byIndex = make(map[int]*Platform)
}

func addPlatform(g *Game, index int, x, y, w float64) *Platform {
	p := &Platform{
		X:       x,
		Y:       y,
		W:       w,
		H:       g.cfg.Platforms.Height,
		Index:   index,
		Visible: true,
		HomeY:   y,
	}
	g.platforms = append(g.platforms, p)
	g.byIndex[index] = p
	return p
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func rngFor(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
