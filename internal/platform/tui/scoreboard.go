package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/icy-tower/internal/core"
	"github.com/vovakirdan/icy-tower/internal/storage"
)

const (
	statsWidth      = 22 // Stats panel width
	sideBySideWidth = 70 // Below this the stats panel goes under the table
	latestMark      = "●"
)

// scoreboardKeys implements help.KeyMap for the leaderboard.
type scoreboardKeys struct {
	Up, Down, Top, Bottom key.Binding
	Reload, Back, Quit    key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Reload, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Reload, k.Back, k.Quit},
	}
}

var defaultScoreboardKeys = scoreboardKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
	Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
	Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("b", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	panelStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	emptyStyle = mutedStyle.Italic(true).Padding(1, 2)
)

// ScoreboardModel shows the leaderboard and run statistics of one game.
type ScoreboardModel struct {
	gameID   string
	title    string
	store    *storage.Store
	scores   []storage.ScoreEntry
	stats    *storage.GameStats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     scoreboardKeys
	width    int
	height   int
	quitting bool
	back     bool
	embedded bool // Inside a session: back and quit don't end the program
}

// NewScoreboardModel creates a leaderboard view sized to the terminal.
func NewScoreboardModel(store *storage.Store, gameID, title string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		gameID: gameID,
		title:  title,
		store:  store,
		keys:   defaultScoreboardKeys,
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = newScoreTable(m.tableWidth(), height)
	m.reload()
	return m
}

// newScoreTable builds an empty table filling width.
func newScoreTable(width, height int) table.Model {
	dateW := core.Clamp(width-24, 12, 20)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Date", Width: dateW},
			{Title: "", Width: 2},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-8, 3)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)
	return t
}

func (m ScoreboardModel) sideBySide() bool {
	return m.width >= sideBySideWidth
}

func (m ScoreboardModel) tableWidth() int {
	if m.sideBySide() {
		return m.width - statsWidth - 8
	}
	return m.width - 4
}

// reload reads the board and statistics from the store.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.scores, m.loadErr = m.store.TopScores(m.gameID, storage.DefaultLeaderboardSize)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetGameStats(m.gameID)
		}
	}
	m.table.SetRows(scoreRows(m.scores))
	m.table.GotoTop()
}

// scoreRows formats entries, marking the most recent run.
func scoreRows(scores []storage.ScoreEntry) []table.Row {
	var latest int64
	for _, s := range scores {
		latest = max(latest, s.ID)
	}

	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		mark := ""
		if s.ID == latest {
			mark = latestMark
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%04d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
			mark,
		}
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = newScoreTable(m.tableWidth(), m.height)
		m.table.SetRows(scoreRows(m.scores))
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, m.exit()
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, m.exit()
		case key.Matches(msg, m.keys.Reload):
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.table.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// exit ends a standalone program; sessions watch the flags instead.
func (m ScoreboardModel) exit() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	board := panelStyle.Render(m.boardView())
	stats := panelStyle.Width(statsWidth).Render(m.statsView())

	var body string
	if m.sideBySide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, stats, "  ", board)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, board, stats)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		centerText(scoreTitleStyle.Render("HIGH SCORES - "+m.title), m.width),
		"",
		body,
		mutedStyle.Render(m.help.View(m.keys)),
	)
}

func (m ScoreboardModel) boardView() string {
	switch {
	case m.store == nil:
		return emptyStyle.Render("Scores are unavailable.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load scores.")
	case len(m.scores) == 0:
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

func (m ScoreboardModel) statsView() string {
	var b strings.Builder
	b.WriteString("Stats\n")
	b.WriteString(strings.Repeat("─", statsWidth-4))
	b.WriteString("\n")

	if m.stats == nil || m.stats.GamesCount == 0 {
		b.WriteString("No runs yet")
		return b.String()
	}
	fmt.Fprintf(&b, "Runs:    %d\n", m.stats.GamesCount)
	fmt.Fprintf(&b, "Best:    %d\n", m.stats.HighScore)
	fmt.Fprintf(&b, "Average: %.0f\n", m.stats.AvgScore)
	fmt.Fprintf(&b, "Last:    %s", m.stats.LastPlayed.Format("Jan 02"))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the leaderboard as a standalone program.
func RunScoreboard(store *storage.Store, gameID, title string, width, height int) error {
	_, err := tea.NewProgram(
		NewScoreboardModel(store, gameID, title, width, height),
		tea.WithAltScreen(),
	).Run()
	return err
}
