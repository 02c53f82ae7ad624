// Package tui runs arcade games in a terminal with Bubble Tea. It maps
// keys and the mouse to game input, drives the fixed tick loop, and hosts
// the menu, mode selector, scoreboard and SSH server.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sprite-arcade/internal/core"
	"github.com/vovakirdan/sprite-arcade/internal/engine"
	"github.com/vovakirdan/sprite-arcade/internal/registry"
	"github.com/vovakirdan/sprite-arcade/internal/storage"
)

// Resizer is implemented by games that can adapt to a new screen size
// without restarting.
type Resizer interface {
	Resize(w, h int)
}

// TickMsg advances the simulation by one step.
type TickMsg time.Time

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the Bubble Tea model for running one arcade game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	difficulty string
	logger     *log.Logger

	keyMapper  *KeyMapper
	holds      *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	ticks      int

	quitting   bool
	backToMenu bool
	scoreSaved bool
	newBest    bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithDifficulty records the difficulty preset name with saved runs.
func WithDifficulty(name string) ModelOption {
	return func(m *Model) {
		m.difficulty = name
	}
}

// WithLogger sets the logger for audio cues and score saves.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		m.logger = l
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		holds:      NewHoldTracker(cfg.TickRate * 3 / 10),
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.logger == nil {
		m.logger = log.Default().WithPrefix("play")
	}

	if ds, ok := game.(registry.DifficultySetter); ok && m.difficulty != "" {
		ds.SetDifficulty(m.difficulty)
	}

	// Reset here rather than in Init: Init has a value receiver and
	// anything it sets on m is lost.
	game.Reset(cfg)
	m.gameState = game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	case action == core.ActionRestart && !m.gameState.GameOver:
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
		m.holds.Press(action)
	}

	return m, nil
}

// handleResize adapts the screen and the game to a new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	m.holds.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if !m.gameState.Paused && !m.gameState.GameOver {
		m.ticks++
	}

	m.playAudio()

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.ticks = 0
	m.scoreSaved = false
	m.newBest = false
	m.holds.Reset()
	m.inputFrame.Clear()
}

// playAudio hands queued cues to the log. Terminals have no mixer.
func (m *Model) playAudio() {
	src, ok := m.game.(registry.AudioSource)
	if !ok {
		return
	}
	for _, ev := range src.DrainAudio() {
		switch ev.Kind {
		case engine.AudioMusicStart:
			m.logger.Debug("music", "track", ev.Music, "volume", ev.Volume)
		case engine.AudioMusicStop:
			m.logger.Debug("music stopped", "track", ev.Music)
		case engine.AudioSfx:
			m.logger.Debug("sfx", "effect", ev.Sfx, "volume", ev.Volume)
		}
	}
}

// saveRun stores a finished run once. Saving is best effort.
func (m *Model) saveRun() {
	m.scoreSaved = true
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	best, err := m.store.HighScore(m.game.ID())
	if err == nil && m.gameState.Score > best {
		m.newBest = true
	}

	_, err = m.store.SaveRun(storage.Run{
		GameID:     m.game.ID(),
		Score:      m.gameState.Score,
		Difficulty: m.difficulty,
		Duration:   time.Duration(m.ticks) * time.Second / time.Duration(m.config.TickRate),
	})
	if err != nil {
		m.logger.Error("could not save score", "game", m.game.ID(), "err", err)
		return
	}
	m.logger.Info("run saved", "game", m.game.ID(), "score", m.gameState.Score, "best", m.newBest)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	if m.newBest {
		m.screen.DrawTextCentered(0, " NEW HIGH SCORE ")
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game. It reports
// whether the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
