package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sprite-arcade/internal/registry"
	"github.com/vovakirdan/sprite-arcade/internal/storage"
)

const maxScores = 100

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// scoreboardKeys are the scoreboard bindings, shown in the help bar.
type scoreboardKeys struct {
	Scroll key.Binding
	Game   key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Game, k.Filter, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Game:   key.NewBinding(key.WithKeys("tab", "right", "l", "shift+tab", "left", "h"), key.WithHelp("←/→", "game")),
		Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "difficulty")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the best runs per game. Runs can be narrowed to
// one difficulty preset.
type ScoreboardModel struct {
	games  []registry.GameInfo
	game   int
	filter int // index into difficultyChoices; 0 shows every run
	store  *storage.Store

	all    []storage.ScoreEntry
	scores []storage.ScoreEntry
	stats  *storage.GameStats

	table table.Model
	help  help.Model
	keys  scoreboardKeys

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard for every game that records
// scores. Modes such as practice are left out.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	var games []registry.GameInfo
	for _, g := range registry.List() {
		if !g.IsVariant() {
			games = append(games, g)
		}
	}

	m := ScoreboardModel{
		games:  games,
		store:  store,
		help:   help.New(),
		keys:   newScoreboardKeys(),
		width:  width,
		height: height,
	}
	m.table = newScoreTable(height)
	m.load()
	return m
}

func newScoreTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 7},
			{Title: "Level", Width: 8},
			{Title: "Time", Width: 8},
			{Title: "Date", Width: 13},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the selected game's runs and stats.
func (m *ScoreboardModel) load() {
	m.all, m.stats = nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.game].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.all = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil && stats.GamesCount > 0 {
			m.stats = stats
		}
	}
	m.applyFilter()
}

// applyFilter rebuilds the table rows for the current difficulty filter.
func (m *ScoreboardModel) applyFilter() {
	want := difficultyChoices[m.filter].Preset

	m.scores = m.scores[:0]
	rows := make([]table.Row, 0, len(m.all))
	for _, s := range m.all {
		if m.filter != 0 && s.Difficulty != want {
			continue
		}
		m.scores = append(m.scores, s)

		level := s.Difficulty
		if level == "" {
			level = "-"
		}
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(len(m.scores)),
			strconv.Itoa(s.Score),
			level,
			formatDuration(s.Duration),
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) switchGame(step int) {
	if len(m.games) == 0 {
		return
	}
	m.game = (m.game + step + len(m.games)) % len(m.games)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Filter):
			m.filter = (m.filter + 1) % len(difficultyChoices)
			m.applyFilter()
			return m, nil
		case key.Matches(msg, m.keys.Game):
			switch msg.String() {
			case "shift+tab", "left", "h":
				m.switchGame(-1)
			default:
				m.switchGame(1)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(max(m.height-9, 3))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(boardDimStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n")

	var body string
	if len(m.scores) == 0 {
		body = boardDimStyle.Italic(true).Padding(1, 4).
			Render("No runs recorded yet.\nFinish a run to set a high score!")
	} else {
		body = m.table.View()
	}
	b.WriteString(centerText(boardFrameStyle.Render(body), m.width))
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders the game names with the current one highlighted, followed
// by the difficulty filter.
func (m ScoreboardModel) tabs() string {
	parts := make([]string, 0, len(m.games)+1)
	for i, g := range m.games {
		if i == m.game {
			parts = append(parts, boardTabStyle.Render(g.Title))
		} else {
			parts = append(parts, boardDimStyle.Render(" "+g.Title+" "))
		}
	}
	level := "all levels"
	if m.filter != 0 {
		level = difficultyChoices[m.filter].Label
	}
	parts = append(parts, boardDimStyle.Render("["+level+"]"))
	return strings.Join(parts, " ")
}

// statsLine summarizes the selected game's runs.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil {
		return ""
	}
	return fmt.Sprintf("%d runs  |  best %d  |  avg %.1f  |  played %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, formatDuration(m.stats.PlayTime))
}

// formatDuration renders a duration as m:ss, or h:mm:ss past an hour.
func formatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())
	if secs >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", secs/3600, secs/60%60, secs%60)
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen. It reports whether the user
// went back to the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
