package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blaster/internal/core"
	"github.com/vovakirdan/tui-blaster/internal/storage"
)

// scriptedGame replays a fixed list of states, one per Step.
type scriptedGame struct {
	states []core.GameState
	steps  int
	resets int
	inputs []core.InputFrame
	logger *log.Logger
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			frame.Set(a)
		}
	}
	g.inputs = append(g.inputs, frame)

	st := g.State()
	g.steps++
	return core.StepResult{State: st}
}

func (g *scriptedGame) State() core.GameState {
	if len(g.states) == 0 {
		return core.GameState{Level: 1, Health: 3}
	}
	return g.states[min(g.steps, len(g.states)-1)]
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) AttachLogger(l *log.Logger) { g.logger = l }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 20, ScreenH: 6, TickRate: 60, Seed: 1}
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	return next.(Model)
}

func TestModelAttachesLogger(t *testing.T) {
	game := &scriptedGame{}
	var buf bytes.Buffer
	logger := log.New(&buf)

	m := NewModel(game, testConfig(), Options{Logger: logger})
	if game.logger != logger {
		t.Error("game did not receive the session logger")
	}

	m.Init()
	if game.resets != 1 {
		t.Errorf("Init() reset the game %d times, want 1", game.resets)
	}
	if !strings.Contains(buf.String(), "game started") {
		t.Errorf("log output missing start event: %q", buf.String())
	}
}

func TestModelSavesScoreOncePerGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{states: []core.GameState{
		{Score: 10, Level: 1, Health: 1},
		{Score: 40, Level: 3, GameOver: true},
		{Score: 40, Level: 3, GameOver: true},
		{Score: 40, Level: 3, GameOver: true},
		{Score: 0, Level: 1, Health: 3},
		{Score: 25, Level: 2, GameOver: true},
		{Score: 25, Level: 2, GameOver: true},
	}}

	m := NewModel(game, testConfig(), Options{Store: store, Player: "alice"})
	m.Init()
	for range 7 {
		m = tick(t, m)
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("saved %d scores, want 2: %+v", len(scores), scores)
	}
	if scores[0].Score != 40 || scores[0].Level != 3 || scores[0].Player != "alice" {
		t.Errorf("first run saved as %+v", scores[0])
	}
	if scores[1].Score != 25 || scores[1].Level != 2 {
		t.Errorf("second run saved as %+v", scores[1])
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{states: []core.GameState{{Level: 1, GameOver: true}}}
	m := NewModel(game, testConfig(), Options{Store: store})
	m.Init()
	m = tick(t, m)

	if !m.State().GameOver {
		t.Fatal("model should report game over")
	}
	if high, _ := store.HighScore("scripted"); high != 0 {
		t.Errorf("zero score should not be saved, high score is %d", high)
	}
}

func TestModelInputFrameClearedEachTick(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, testConfig(), Options{})
	m.Init()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	m = tick(t, m)
	m = tick(t, m)

	if len(game.inputs) != 2 {
		t.Fatalf("game stepped %d times, want 2", len(game.inputs))
	}
	if !game.inputs[0].Has(core.ActionFire) || !game.inputs[0].Has(core.ActionUp) {
		t.Errorf("first step should see fire and up, got %v", game.inputs[0].Actions)
	}
	if game.inputs[1].Has(core.ActionFire) || game.inputs[1].Has(core.ActionUp) {
		t.Errorf("second step should see no input, got %v", game.inputs[1].Actions)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&scriptedGame{}, testConfig(), Options{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should produce tea.QuitMsg")
	}
	if view := next.(Model).View(); view != "" {
		t.Errorf("View() after quit = %q, want empty", view)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, testConfig(), Options{})
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	m = next.(Model)

	if game.resets != 1 {
		t.Errorf("resize reset the game, resets = %d", game.resets)
	}
	if m.screen.Width() != 40 || m.screen.Height() != 12-helpRows {
		t.Errorf("screen is %dx%d, want 40x%d", m.screen.Width(), m.screen.Height(), 12-helpRows)
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&scriptedGame{}, testConfig(), Options{})
	m.Init()

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != testConfig().ScreenH {
		t.Fatalf("view has %d lines, want %d", len(lines), testConfig().ScreenH)
	}
	if !strings.HasPrefix(lines[0], "scripted") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[len(lines)-1], "fire") {
		t.Errorf("help footer = %q, want key help", lines[len(lines)-1])
	}
}
