package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-spacewar/internal/core"
	"github.com/vovakirdan/tui-spacewar/internal/storage"
)

// fakeGame finishes a round on chosen ticks and records the inputs it saw.
type fakeGame struct {
	tick     int
	roundAt  map[int]int // tick -> delta
	state    core.GameState
	fires    int
	resets   int
	closed   bool
	rendered int
}

func (g *fakeGame) ID() string    { return "classic" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.tick = 0
	g.state = core.GameState{Round: 1, Phase: "Active"}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	g.fires += in.Count(core.ActionFire)
	g.tick++

	var rounds []core.RoundSummary
	if delta, ok := g.roundAt[g.tick]; ok {
		g.state.Score += delta
		rounds = append(rounds, core.RoundSummary{
			Round: g.state.Round, Delta: delta, Score: g.state.Score, Ticks: uint64(g.tick),
		})
		g.state.Round++
	}
	return core.StepResult{State: g.state, Rounds: rounds}
}

func (g *fakeGame) Render(dst *core.Screen) {
	g.rendered++
	dst.Clear()
	dst.DrawText(0, 0, "ARENA")
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) Close() error {
	g.closed = true
	return nil
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelRecordsRounds(t *testing.T) {
	ledger, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer ledger.Close()

	game := &fakeGame{roundAt: map[int]int{2: 1, 4: -1}}
	m := NewModel(game, ledger, "local", testRuntime())
	m.Init()

	for range 5 {
		m = update(t, m, TickMsg{})
	}

	if m.Recorded() != 2 {
		t.Fatalf("Expected 2 recorded rounds, got %d", m.Recorded())
	}
	rounds, err := ledger.Rounds("local", 10)
	if err != nil {
		t.Fatalf("Rounds() failed: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("Expected 2 ledger rows, got %d", len(rounds))
	}
	if rounds[0].Outcome != "loss" || rounds[1].Outcome != "win" {
		t.Errorf("Unexpected outcomes %q, %q", rounds[0].Outcome, rounds[1].Outcome)
	}
	if rounds[0].Variant != "classic" || rounds[0].Ticks != 4 {
		t.Errorf("Unexpected record %+v", rounds[0])
	}
}

func TestModelWithoutLedger(t *testing.T) {
	game := &fakeGame{roundAt: map[int]int{1: 1}}
	m := NewModel(game, nil, "local", testRuntime())
	m.Init()
	m = update(t, m, TickMsg{})

	if m.Recorded() != 1 {
		t.Errorf("Expected the round to be counted, got %d", m.Recorded())
	}
}

func TestModelFirePressesReachGame(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, "local", testRuntime())
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	if game.fires != 2 {
		t.Errorf("Expected 2 fires, got %d", game.fires)
	}
}

func TestModelBackOnlyWhenPaused(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, "local", testRuntime())
	m.Init()
	m = update(t, m, TickMsg{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("Back should be ignored during play")
	}

	m = update(t, m, runeKey("p"))
	m = update(t, m, TickMsg{})
	if !game.state.Paused {
		t.Fatal("Expected game to be paused")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("Expected back to menu while paused")
	}
	if m.View() != "" {
		t.Error("View should be empty after leaving")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, "local", testRuntime())
	m.Init()

	next, cmd := m.Update(runeKey("q"))
	if !next.(Model).IsQuitting() {
		t.Error("Expected quitting")
	}
	if cmd == nil {
		t.Error("Expected a quit command")
	}
}

func TestModelResizeKeepsMatch(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, "local", testRuntime())
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if game.resets != 1 {
		t.Errorf("Resize should not reset the match, resets = %d", game.resets)
	}
	if m.Config().ScreenW != 100 || m.Config().ScreenH != 30 {
		t.Errorf("Unexpected config after resize %+v", m.Config())
	}
	if !strings.Contains(m.View(), "ARENA") {
		t.Error("Expected rendered arena in view")
	}
}

func TestCloseGame(t *testing.T) {
	game := &fakeGame{}
	closeGame(game)
	if !game.closed {
		t.Error("Expected game to be closed")
	}
}
