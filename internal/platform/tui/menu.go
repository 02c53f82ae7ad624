package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sprite-arcade/internal/core"
	"github.com/vovakirdan/sprite-arcade/internal/registry"
	"github.com/vovakirdan/sprite-arcade/internal/storage"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem is a game in the main menu together with its modes.
type MenuItem struct {
	GameID    string
	Title     string
	Hint      string
	Variants  []registry.GameInfo // alternate modes, offered by the mode selector
	HighScore int
}

// HasModes reports whether the game needs a mode selector.
func (i MenuItem) HasModes() bool {
	return len(i.Variants) > 0
}

// Modes returns the game itself followed by its variants.
func (i MenuItem) Modes() []registry.GameInfo {
	self := registry.GameInfo{ID: i.GameID, Title: i.Title, Hint: i.Hint}
	return append([]registry.GameInfo{self}, i.Variants...)
}

// menuItems groups registered games with their variants. A variant
// "x_y" belongs to game "x".
func menuItems(store *storage.Store) []MenuItem {
	var items []MenuItem
	byID := make(map[string]int)

	games := registry.List()
	for _, g := range games {
		if g.IsVariant() {
			continue
		}
		item := MenuItem{GameID: g.ID, Title: g.Title, Hint: g.Hint}
		if store != nil {
			if best, err := store.HighScore(g.ID); err == nil {
				item.HighScore = best
			}
		}
		byID[g.ID] = len(items)
		items = append(items, item)
	}

	for _, v := range games {
		if !v.IsVariant() {
			continue
		}
		parent, _, _ := strings.Cut(v.ID, "_")
		if i, ok := byID[parent]; ok {
			items[i].Variants = append(items[i].Variants, v)
		}
	}
	return items
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	selected       *MenuItem
	openScoreboard bool
	quitting       bool
}

// NewMenuModel creates a menu listing every registered game.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     menuItems(store),
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = max(min(m.cursor+1, len(m.items)-1), 0)
	case MenuActionSelect:
		if len(m.items) > 0 {
			item := m.items[m.cursor]
			m.selected = &item
			return m, tea.Quit
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	width := m.config.ScreenW

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S P R I T E   A R C A D E"), width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := item.Title
		if item.HasModes() {
			line += "  +" + strconv.Itoa(len(item.Variants)) + " mode"
		}
		if item.HighScore > 0 {
			line += "  (best " + strconv.Itoa(item.HighScore) + ")"
		}

		if i == m.cursor {
			b.WriteString(centerText(menuActiveStyle.Render("> "+line+" <"), width))
		} else {
			b.WriteString(centerText("  "+line+"  ", width))
		}
		b.WriteString("\n")
		if item.Hint != "" {
			b.WriteString(centerText(menuHintStyle.Render(item.Hint), width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(centerText(menuHintStyle.Render("↑/↓ choose  •  enter play  •  tab scores  •  q quit"), width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen item, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Item            MenuItem
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the menu until the player picks something.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config(), WantsScoreboard: m.WantsScoreboard()}
	switch {
	case result.WantsScoreboard:
	case m.Selected() != nil:
		result.Item = *m.Selected()
	default:
		result.Quit = true
	}
	return result, nil
}
