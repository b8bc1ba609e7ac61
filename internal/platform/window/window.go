// Package window hosts the climber in a desktop window using Ebitengine.
// It shares the simulation, audio sink and score store with the terminal
// host and draws straight from the game's snapshot.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/icy-tower/internal/audio"
	"github.com/vovakirdan/icy-tower/internal/core"
	"github.com/vovakirdan/icy-tower/internal/games/icy"
	"github.com/vovakirdan/icy-tower/internal/storage"
)

// Window scale applied to the world size.
const scale = 1

// keyBinding maps physical keys to one action.
type keyBinding struct {
	action core.Action
	keys   []ebiten.Key
}

// Held actions are read every frame, edge actions only on press.
var (
	heldBindings = []keyBinding{
		{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
		{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	}
	edgeBindings = []keyBinding{
		{core.ActionJump, []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}},
		{core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
		{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
		{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
	}
)

// keyState reports key presses. It lets tests drive the host without a window.
type keyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// readFrame builds one input frame from the keyboard.
func readFrame(keys keyState, now time.Duration) core.InputFrame {
	frame := core.At(now)
	for _, b := range heldBindings {
		for _, k := range b.keys {
			if keys.Pressed(k) {
				frame.Hold(b.action)
				break
			}
		}
	}
	for _, b := range edgeBindings {
		for _, k := range b.keys {
			if keys.JustPressed(k) {
				frame.Set(b.action)
				break
			}
		}
	}
	return frame
}

// Host implements ebiten.Game around the climber.
type Host struct {
	game    *icy.Game
	store   *storage.Store
	sink    *audio.Sink
	config  core.RuntimeConfig
	keys    keyState
	start   time.Time
	now     func() time.Time
	state   core.GameState
	rank    int
	saveErr error
	face    *text.GoXFace
}

// NewHost creates a window host. store and sink may be nil.
func NewHost(game *icy.Game, store *storage.Store, sink *audio.Sink, cfg core.RuntimeConfig) *Host {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	h := &Host{
		game:   game,
		store:  store,
		sink:   sink,
		config: cfg,
		keys:   ebitenKeys{},
		now:    time.Now,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
	h.game.Reset(cfg)
	h.refreshBest()
	h.start = h.now()
	return h
}

// Update advances the simulation by one tick.
func (h *Host) Update() error {
	frame := readFrame(h.keys, h.now().Sub(h.start))
	if frame.Has(core.ActionQuit) {
		h.sink.Handle([]core.Event{{Kind: core.EventMusicStop}})
		return ebiten.Termination
	}
	h.step(frame)
	return nil
}

// step runs the game and forwards what happened to the sinks.
func (h *Host) step(frame core.InputFrame) {
	wasOver := h.state.GameOver
	result := h.game.Step(frame)

	h.sink.Handle(result.Events)

	if result.Has(core.EventGameOver) {
		h.rank, h.saveErr = h.saveScore(result.State.Score)
	}
	if wasOver && !result.State.GameOver {
		h.rank = 0
		h.saveErr = nil
		h.refreshBest()
	}
	h.state = result.State
}

func (h *Host) saveScore(score int) (int, error) {
	if h.store == nil {
		return 0, nil
	}
	return h.store.RecordScore(h.game.ID(), score, h.game.LeaderboardSize())
}

func (h *Host) refreshBest() {
	if h.store == nil {
		return
	}
	if best, err := h.store.HighScore(h.game.ID()); err == nil {
		h.game.SetBestScore(best)
	}
}

// Layout keeps the logical screen at the world size.
func (h *Host) Layout(_, _ int) (int, int) {
	cfg := h.game.Config()
	return int(cfg.World.Width), int(cfg.World.Height)
}

// Draw renders the current snapshot.
func (h *Host) Draw(screen *ebiten.Image) {
	snap := h.game.Snapshot()
	screen.Fill(color.RGBA{12, 16, 28, 255})

	for _, p := range snap.Platforms {
		fillBox(screen, p.Box, rgba(p.Color()))
		if p.Star {
			fillBox(screen, markerAbove(p.Box, p.Box.CenterX()), rgba(core.ColorYellow))
		}
		if p.Teleport {
			fillBox(screen, markerAbove(p.Box, p.Box.X+4), rgba(core.ColorMagenta))
		}
		if p.Enemy != nil {
			fillBox(screen, p.Enemy.Box, rgba(p.Enemy.Kind.Color()))
		}
	}

	if !snap.Invincible || (snap.Tick/4)%2 == 0 {
		fillBox(screen, snap.Player.Box, rgba(core.ColorBrightRed))
	}

	h.drawHUD(screen, &snap)
	h.drawOverlay(screen, &snap)
}

func (h *Host) drawHUD(screen *ebiten.Image, snap *icy.Snapshot) {
	w := screen.Bounds().Dx()
	h.drawText(screen, fmt.Sprintf("Score: %04d", snap.Score), 8, 6, rgba(core.ColorWhite))
	h.drawCentered(screen, fmt.Sprintf("Best: %04d", max(snap.Best, snap.Score)), 6, rgba(core.ColorWhite))

	right := fmt.Sprintf("Floor %d", snap.Highest)
	clr := rgba(core.ColorWhite)
	if snap.Invincible {
		right = fmt.Sprintf("Star %.1fs", snap.InvincibleLeft.Seconds())
		clr = rgba(core.ColorBrightYellow)
	}
	h.drawText(screen, right, w-8-textWidth(right), 6, clr)
}

func (h *Host) drawOverlay(screen *ebiten.Image, snap *icy.Snapshot) {
	mid := screen.Bounds().Dy() / 2
	switch {
	case snap.GameOver:
		if (snap.OverTicks/15)%2 == 0 {
			h.drawCentered(screen, "GAME OVER", mid-20, rgba(core.ColorBrightRed))
		}
		h.drawCentered(screen, fmt.Sprintf("Score: %04d  |  R to restart", snap.Score), mid, rgba(core.ColorWhite))
		if line, c := h.resultLine(); line != "" {
			h.drawCentered(screen, line, mid+20, rgba(c))
		}
	case snap.Paused:
		h.drawCentered(screen, "PAUSED", mid-10, rgba(core.ColorWhite))
		h.drawCentered(screen, "Press P to resume", mid+10, rgba(core.ColorGray))
	case snap.Tick == 0:
		h.drawCentered(screen, "Arrows move  SPACE jump  Q quit", screen.Bounds().Dy()-20, rgba(core.ColorGray))
	}
}

// resultLine describes the leaderboard outcome of the finished run.
func (h *Host) resultLine() (string, core.Color) {
	switch {
	case h.saveErr != nil:
		return "Score not saved", core.ColorRed
	case h.rank == 1:
		return "New high score!", core.ColorBrightYellow
	case h.rank > 1:
		return fmt.Sprintf("Leaderboard #%d", h.rank), core.ColorYellow
	}
	return "", core.ColorDefault
}

func (h *Host) drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, h.face, op)
}

func (h *Host) drawCentered(screen *ebiten.Image, s string, y int, clr color.Color) {
	h.drawText(screen, s, (screen.Bounds().Dx()-textWidth(s))/2, y, clr)
}

// textWidth measures s in the fixed 7px basic font.
func textWidth(s string) int {
	return len([]rune(s)) * 7
}

// markerAbove is a small square sitting on top of a platform.
func markerAbove(p core.Box, x float64) core.Box {
	const size = 8
	return core.NewBox(x-size/2, p.Y-size-2, size, size)
}

// pixelRect converts a world box to a clipped image rectangle.
func pixelRect(b core.Box) image.Rectangle {
	return image.Rect(int(b.X*scale), int(b.Y*scale), int(b.Right()*scale), int(b.Bottom()*scale))
}

func fillBox(screen *ebiten.Image, b core.Box, clr color.Color) {
	r := pixelRect(b).Intersect(screen.Bounds())
	if r.Empty() {
		return
	}
	sub, ok := screen.SubImage(r).(*ebiten.Image)
	if !ok {
		return
	}
	sub.Fill(clr)
}

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{r, g, b, 255}
}

// Run opens the window and blocks until it is closed.
func Run(game *icy.Game, store *storage.Store, sink *audio.Sink, cfg core.RuntimeConfig) error {
	host := NewHost(game, store, sink, cfg)
	w, hgt := host.Layout(0, 0)

	ebiten.SetWindowSize(w*scale, hgt*scale)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(host.config.TickRate)

	err := ebiten.RunGame(host)
	sink.Handle([]core.Event{{Kind: core.EventMusicStop}})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
