package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sprite-arcade/internal/core"
	"github.com/vovakirdan/sprite-arcade/internal/registry"
	"github.com/vovakirdan/sprite-arcade/internal/storage"
)

type stubGame struct {
	id     string
	steps  int
	overAt int
	score  int
	preset string
}

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.steps = 0 }
func (g *stubGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, g.id) }
func (g *stubGame) SetDifficulty(p string)   { g.preset = p }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *stubGame) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.overAt > 0 && g.steps >= g.overAt,
	}
}

func init() {
	for _, id := range []string{"zzgame", "zzgame_variant", "zzsolo"} {
		registry.Register(id, func() registry.Game { return &stubGame{id: id} })
	}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func findItem(items []MenuItem, id string) (MenuItem, bool) {
	for _, it := range items {
		if it.GameID == id {
			return it, true
		}
	}
	return MenuItem{}, false
}

func TestMenuItemsGroupVariants(t *testing.T) {
	items := menuItems(nil)

	if _, ok := findItem(items, "zzgame_variant"); ok {
		t.Error("variants should not be listed in the main menu")
	}

	game, ok := findItem(items, "zzgame")
	if !ok {
		t.Fatal("zzgame should be listed")
	}
	if !game.HasModes() || len(game.Variants) != 1 || game.Variants[0].ID != "zzgame_variant" {
		t.Errorf("zzgame variants = %v", game.Variants)
	}
	modes := game.Modes()
	if len(modes) != 2 || modes[0].ID != "zzgame" {
		t.Errorf("Modes() = %v", modes)
	}

	solo, ok := findItem(items, "zzsolo")
	if !ok || solo.HasModes() {
		t.Errorf("zzsolo should have no modes: %+v", solo)
	}
}

func TestModeModelSelection(t *testing.T) {
	item, _ := findItem(menuItems(nil), "zzgame")
	var model tea.Model = NewModeModel(item, 80, 24)

	steps := []tea.KeyMsg{
		keyType(tea.KeyDown),  // variant
		keyType(tea.KeyEnter), // to difficulty
		keyType(tea.KeyDown),  // easy
		keyType(tea.KeyDown),  // normal
		keyType(tea.KeyEnter),
	}
	for _, msg := range steps {
		model, _ = model.Update(msg)
	}

	sel := model.(ModeModel).Selected()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	if sel.GameID != "zzgame_variant" || sel.Difficulty != "normal" {
		t.Errorf("selection = %+v", sel)
	}
}

func TestModeModelBack(t *testing.T) {
	item, _ := findItem(menuItems(nil), "zzgame")
	var model tea.Model = NewModeModel(item, 80, 24)

	// Esc on the difficulty step returns to the mode list.
	model, _ = model.Update(keyType(tea.KeyEnter))
	model, _ = model.Update(keyType(tea.KeyEsc))
	if model.(ModeModel).WantsBack() {
		t.Fatal("first back should only leave the difficulty step")
	}

	model, _ = model.Update(keyType(tea.KeyEsc))
	if !model.(ModeModel).WantsBack() {
		t.Error("back on the mode list should leave the selector")
	}
	if model.(ModeModel).Selected() != nil {
		t.Error("backing out should not select anything")
	}
}

func TestModelBackToMenu(t *testing.T) {
	m := NewModel(&stubGame{id: "zzsolo"}, nil, testRuntime(), WithLogger(quietLogger()))

	next, _ := m.Update(keyType(tea.KeyEsc))
	if !next.(Model).BackToMenu() {
		t.Error("esc should go back to the menu")
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &stubGame{id: "zzsolo", overAt: 3, score: 5}
	var model tea.Model = NewModel(game, store, testRuntime(),
		WithDifficulty("hard"),
		WithLogger(quietLogger()),
	)
	if game.preset != "hard" {
		t.Errorf("difficulty should reach the game, got %q", game.preset)
	}

	for i := 0; i < 6; i++ {
		model, _ = model.Update(TickMsg(time.Now()))
	}

	if !model.(Model).State().GameOver {
		t.Fatal("stub game should be over")
	}

	scores, err := store.AllScores("zzsolo")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("run should be saved once, got %d", len(scores))
	}
	if scores[0].Score != 5 || scores[0].Difficulty != "hard" {
		t.Errorf("unexpected run: %+v", scores[0])
	}
	// Two ticks ran before the game ended.
	if want := 2 * time.Second / 60; scores[0].Duration != want.Truncate(time.Millisecond) {
		t.Errorf("duration = %v, want %v", scores[0].Duration, want.Truncate(time.Millisecond))
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	game := &stubGame{id: "zzsolo", overAt: 2}
	var model tea.Model = NewModel(game, nil, testRuntime(), WithLogger(quietLogger()))

	restart := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}
	model, _ = model.Update(restart)
	model, _ = model.Update(TickMsg(time.Now()))
	if game.steps != 1 {
		t.Fatalf("restart while playing should be ignored, steps = %d", game.steps)
	}

	model, _ = model.Update(TickMsg(time.Now()))
	if !model.(Model).State().GameOver {
		t.Fatal("stub game should be over")
	}

	model, _ = model.Update(restart)
	model, _ = model.Update(TickMsg(time.Now()))
	if model.(Model).State().GameOver || game.steps != 0 {
		t.Errorf("restart should reset the game: %+v steps=%d", model.(Model).State(), game.steps)
	}
}

func TestSessionModelFlow(t *testing.T) {
	var model tea.Model = NewSessionModel(nil, testRuntime(), quietLogger())

	// zzgame sorts first and has a variant, so Enter opens the mode selector.
	model, _ = model.Update(keyType(tea.KeyEnter))
	if s := model.(SessionModel).state; s != stateModes {
		t.Fatalf("state = %v, want mode selector", s)
	}

	model, _ = model.Update(keyType(tea.KeyEnter)) // classic mode
	model, _ = model.Update(keyType(tea.KeyEnter)) // default difficulty
	if s := model.(SessionModel).state; s != stateGame {
		t.Fatalf("state = %v, want game", s)
	}
	if !strings.Contains(model.View(), "zzgame") {
		t.Error("game view should render the stub")
	}

	model, _ = model.Update(keyType(tea.KeyEsc))
	if s := model.(SessionModel).state; s != stateMenu {
		t.Errorf("state = %v, want menu after back", s)
	}

	model, _ = model.Update(keyType(tea.KeyTab))
	if s := model.(SessionModel).state; s != stateScores {
		t.Errorf("state = %v, want scoreboard", s)
	}
	model, _ = model.Update(keyType(tea.KeyEsc))
	if s := model.(SessionModel).state; s != stateMenu {
		t.Errorf("state = %v, want menu after leaving scores", s)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{90 * time.Second, "1:30"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestScoreboardFilterByDifficulty(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runs := []storage.Run{
		{GameID: "zzgame", Score: 30, Difficulty: "hard"},
		{GameID: "zzgame", Score: 20, Difficulty: "easy"},
		{GameID: "zzgame", Score: 10, Difficulty: "hard"},
		{GameID: "zzsolo", Score: 99},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	var model tea.Model = NewScoreboardModel(store, 100, 30)
	board := model.(ScoreboardModel)
	for _, g := range board.games {
		if g.IsVariant() {
			t.Errorf("scoreboard should skip variant %s", g.ID)
		}
	}
	if len(board.scores) != 3 {
		t.Fatalf("expected 3 zzgame runs, got %d", len(board.scores))
	}
	if !strings.Contains(board.statsLine(), "3 runs") {
		t.Errorf("statsLine() = %q", board.statsLine())
	}

	// Cycle the filter to "hard": Default -> Easy -> Normal -> Hard.
	f := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}}
	for i := 0; i < 3; i++ {
		model, _ = model.Update(f)
	}
	board = model.(ScoreboardModel)
	if len(board.scores) != 2 || board.scores[0].Score != 30 || board.scores[1].Score != 10 {
		t.Errorf("hard filter = %+v", board.scores)
	}

	model, _ = model.Update(keyType(tea.KeyTab))
	board = model.(ScoreboardModel)
	if board.games[board.game].ID != "zzsolo" {
		t.Fatalf("tab should move to the next game, at %s", board.games[board.game].ID)
	}
	if len(board.scores) != 0 {
		t.Errorf("zzsolo has no hard runs, got %d", len(board.scores))
	}
}
