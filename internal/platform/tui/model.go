package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/icy-tower/internal/audio"
	"github.com/vovakirdan/icy-tower/internal/core"
	"github.com/vovakirdan/icy-tower/internal/storage"
)

// bestScorer is implemented by games that show the stored best score.
type bestScorer interface {
	SetBestScore(score int)
}

// leaderboardSizer is implemented by games with a configured leaderboard size.
type leaderboardSizer interface {
	LeaderboardSize() int
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	sink       *audio.Sink
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	held       *HeldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	start      time.Time // Origin of the run clock handed to the game
	rank       int       // Leaderboard rank of the last finished run
	saveErr    error
	quitting   bool
	backToMenu bool
	embedded   bool // Inside an SSH session: back returns to the menu
}

// NewModel creates a new Bubble Tea model for the given game.
// store and sink may be nil.
func NewModel(game core.Game, store *storage.Store, sink *audio.Sink, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		sink:       sink,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		held:       NewHeldKeys(),
		inputFrame: core.NewInputFrame(),
		start:      time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.refreshBest()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.sink.Handle([]core.Event{{Kind: core.EventMusicStop}})
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionLeft, core.ActionRight:
		m.held.Press(action, now)
	case core.ActionBack:
		if m.embedded && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
			m.sink.Handle([]core.Event{{Kind: core.EventMusicStop}})
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize adapts the screen buffer. The run keeps going: the game
// scales its world to whatever screen it is given.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	m.held.Apply(&m.inputFrame, now)
	m.inputFrame.Now = now.Sub(m.start)

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)

	m.sink.Handle(result.Events)

	if result.Has(core.EventGameOver) {
		m.rank, m.saveErr = m.saveScore(result.State.Score)
	}
	if wasOver && !result.State.GameOver {
		// Restarted
		m.rank = 0
		m.saveErr = nil
		m.refreshBest()
	}
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScore records a finished run on the leaderboard.
func (m Model) saveScore(score int) (int, error) {
	if m.store == nil {
		return 0, nil
	}
	keep := storage.DefaultLeaderboardSize
	if s, ok := m.game.(leaderboardSizer); ok {
		keep = s.LeaderboardSize()
	}
	return m.store.RecordScore(m.game.ID(), score, keep)
}

// refreshBest pushes the stored best score into the game's HUD.
func (m Model) refreshBest() {
	g, ok := m.game.(bestScorer)
	if !ok || m.store == nil {
		return
	}
	if best, err := m.store.HighScore(m.game.ID()); err == nil {
		g.SetBestScore(best)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".icytower", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.renderResult()

	return RenderScreen(m.screen)
}

// renderResult adds the leaderboard outcome under the game over box.
func (m Model) renderResult() {
	if !m.gameState.GameOver {
		return
	}

	row := m.screen.Height()/2 + 3
	switch {
	case m.saveErr != nil:
		m.screen.DrawTextColored(centerCol(m.screen, "Score not saved"), row, "Score not saved", core.ColorRed)
	case m.rank == 1:
		m.screen.DrawTextColored(centerCol(m.screen, "New high score!"), row, "New high score!", core.ColorBrightYellow)
	case m.rank > 1:
		msg := fmt.Sprintf("Leaderboard #%d", m.rank)
		m.screen.DrawTextColored(centerCol(m.screen, msg), row, msg, core.ColorYellow)
	}
	if m.embedded {
		m.screen.DrawTextCentered(row+1, "B: menu")
	}
}

func centerCol(s *core.Screen, text string) int {
	return (s.Width() - len([]rune(text))) / 2
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game core.Game, store *storage.Store, sink *audio.Sink, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, sink, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	sink.Handle([]core.Event{{Kind: core.EventMusicStop}})
	return err
}
