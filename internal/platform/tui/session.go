package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sprite-arcade/internal/core"
	"github.com/vovakirdan/sprite-arcade/internal/registry"
	"github.com/vovakirdan/sprite-arcade/internal/storage"
)

type sessionState int

const (
	stateMenu sessionState = iota
	stateModes
	stateGame
	stateScores
)

// SessionModel manages the full arcade session flow inside one program:
// menu -> mode selector -> game -> menu, with the scoreboard reachable
// from the menu. This is the top-level model used for SSH sessions.
type SessionModel struct {
	store  *storage.Store
	config core.RuntimeConfig
	logger *log.Logger
	state  sessionState

	menu   MenuModel
	modes  ModeModel
	game   Model
	scores ScoreboardModel

	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		logger: logger,
		menu:   NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen. Sub-models signal they are
// done by returning tea.Quit; the session swallows that and switches
// screens instead.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case stateModes:
		return m.updateModes(msg)
	case stateGame:
		return m.updateGame(msg)
	case stateScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.state = stateScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		item := *m.menu.Selected()
		if item.HasModes() {
			m.modes = NewModeModel(item, m.config.ScreenW, m.config.ScreenH)
			m.state = stateModes
			return m, m.modes.Init()
		}
		return m.startGame(ModeSelection{GameID: item.GameID})
	}

	return m, cmd
}

func (m SessionModel) updateModes(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.modes.Update(msg)
	if modes, ok := next.(ModeModel); ok {
		m.modes = modes
	}

	switch {
	case m.modes.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.modes.WantsBack():
		return m.backToMenu()
	case m.modes.Selected() != nil:
		return m.startGame(*m.modes.Selected())
	}

	return m, cmd
}

func (m SessionModel) startGame(sel ModeSelection) (tea.Model, tea.Cmd) {
	game, err := registry.Create(sel.GameID)
	if err != nil {
		m.logger.Error("cannot start game", "game", sel.GameID, "err", err)
		return m.backToMenu()
	}

	m.logger.Info("game started", "game", sel.GameID, "difficulty", sel.Difficulty)
	cfg := m.config
	cfg.Seed = time.Now().UnixNano()
	m.game = NewModel(game, m.store, cfg,
		WithDifficulty(sel.Difficulty),
		WithLogger(m.logger.WithPrefix(sel.GameID)),
	)
	m.state = stateGame
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.backToMenu()
	}

	return m, cmd
}

// backToMenu rebuilds the menu so high scores are current. Ticks still
// in flight from a finished game are dropped by the menu.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.store, m.config)
	m.state = stateMenu
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateModes:
		return m.modes.View()
	case stateGame:
		return m.game.View()
	case stateScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}
