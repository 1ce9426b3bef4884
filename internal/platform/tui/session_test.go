package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/tui-spacewar/internal/games/spacewar"
	"github.com/vovakirdan/tui-spacewar/internal/registry"
	"github.com/vovakirdan/tui-spacewar/internal/storage"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(testRuntime())

	if len(m.items) != len(registry.List()) {
		t.Fatalf("Expected %d items, got %d", len(registry.List()), len(m.items))
	}
	for _, item := range m.items {
		if item.Description == "" {
			t.Errorf("Variant %q has no description", item.GameID)
		}
	}

	m.width = 80
	if !strings.Contains(m.View(), "S P A C E W A R") {
		t.Error("Expected title in menu view")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(testRuntime())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if m.Selected() == nil || m.Selected().GameID != m.items[1].GameID {
		t.Errorf("Expected second variant selected, got %+v", m.Selected())
	}
}

func TestSessionFlow(t *testing.T) {
	ledger, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer ledger.Close()

	m := NewSessionModel(ledger, testRuntime(), "alice-1")

	// Menu -> match
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.game == nil {
		t.Fatalf("Expected game screen, got %v", m.screen)
	}
	for range 3 {
		m = updateSession(t, m, TickMsg{})
	}
	if m.game.gameState.Round != 1 {
		t.Errorf("Expected round 1, got %d", m.game.gameState.Round)
	}

	// Pause, then back to menu
	m = updateSession(t, m, runeKey("p"))
	m = updateSession(t, m, TickMsg{})
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.game != nil {
		t.Fatalf("Expected menu screen after back, got %v", m.screen)
	}

	// Menu -> history -> menu
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenHistory {
		t.Fatalf("Expected history screen, got %v", m.screen)
	}
	if !strings.Contains(m.View(), "ROUND HISTORY") {
		t.Error("Expected history title")
	}
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("Expected menu screen after history, got %v", m.screen)
	}

	// Quit from menu
	next, cmd := m.Update(runeKey("q"))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("Expected session to quit")
	}
}
