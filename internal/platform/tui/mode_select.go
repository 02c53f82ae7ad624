package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sprite-arcade/internal/core"
	"github.com/vovakirdan/sprite-arcade/internal/registry"
)

// difficultyChoices are the presets offered after picking a mode. The
// empty preset keeps the config file as is.
var difficultyChoices = []struct {
	Preset string
	Label  string
}{
	{"", "Default"},
	{"easy", "Easy"},
	{"normal", "Normal"},
	{"hard", "Hard"},
	{"fixed", "Fixed (no progression)"},
}

// ModeSelection is what the player picked in the mode selector.
type ModeSelection struct {
	GameID     string
	Difficulty string
}

// ModeModel lets users choose a game mode, then a difficulty.
type ModeModel struct {
	item      MenuItem
	modes     []registry.GameInfo
	cursor    int
	diffStep  bool
	diffCur   int
	width     int
	height    int
	keyMapper *KeyMapper
	selection ModeSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewModeModel creates a mode selector for a menu item.
func NewModeModel(item MenuItem, width, height int) ModeModel {
	return ModeModel{
		item:      item,
		modes:     item.Modes(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m ModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m ModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if action == MenuActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.diffStep {
		return m.handleDifficultyKey(action)
	}

	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.modes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selection.GameID = m.modes[m.cursor].ID
		m.diffStep = true
		m.diffCur = 0
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

func (m ModeModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		if m.diffCur > 0 {
			m.diffCur--
		}
	case MenuActionDown:
		if m.diffCur < len(difficultyChoices)-1 {
			m.diffCur++
		}
	case MenuActionSelect:
		m.selection.Difficulty = difficultyChoices[m.diffCur].Preset
		m.choosing = false
		return m, tea.Quit
	case MenuActionBack:
		m.diffStep = false
	}
	return m, nil
}

// View renders the mode or difficulty list.
func (m ModeModel) View() string {
	if m.quitting || !m.choosing || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(spaced(strings.ToUpper(m.item.Title)), m.width))
	b.WriteString("\n\n")

	if m.diffStep {
		b.WriteString(centerText("Select difficulty:", m.width))
		b.WriteString("\n\n")
		for i, d := range difficultyChoices {
			b.WriteString(centerText(menuLine(i == m.diffCur, d.Label), m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText("Select game mode:", m.width))
		b.WriteString("\n\n")
		for i, mode := range m.modes {
			b.WriteString(centerText(menuLine(i == m.cursor, mode.Title), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

func menuLine(selected bool, label string) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	return fmt.Sprintf("%s%s", cursor, label)
}

// spaced puts a space between letters, "ROAD" -> "R O A D".
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

// Selected returns the selection, or nil if still choosing.
func (m ModeModel) Selected() *ModeSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m ModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ModeModel) WantsBack() bool {
	return m.back
}

// RunModeSelector runs the mode and difficulty selection for item. A nil
// selection means the player backed out or quit.
func RunModeSelector(item MenuItem, cfg core.RuntimeConfig) (*ModeSelection, bool, error) {
	model := NewModeModel(item, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := finalModel.(ModeModel)
	if !ok {
		return nil, true, nil
	}
	if m.IsQuitting() {
		return nil, true, nil
	}
	return m.Selected(), false, nil
}
