package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-spacewar/internal/storage"
)

func TestHistoryScopes(t *testing.T) {
	ledger, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer ledger.Close()

	ledger.RecordRound(storage.RoundRecord{Session: "me", Variant: "classic", Round: 1, Outcome: "win", Delta: 1, Score: 1, Ticks: 600})
	ledger.RecordRound(storage.RoundRecord{Session: "other", Variant: "lethal", Round: 1, Outcome: "loss", Delta: -1, Score: -1, Ticks: 120})

	m := NewHistoryModel(ledger, "me", 100, 30)
	if len(m.rounds) != 1 {
		t.Fatalf("Expected 1 session round, got %d", len(m.rounds))
	}
	if m.summary == nil || m.summary.Wins != 1 {
		t.Errorf("Unexpected summary %+v", m.summary)
	}
	if len(m.stats) != 2 || m.stats[0].Variant != "classic" {
		t.Errorf("Expected sorted stats for 2 variants, got %d", len(m.stats))
	}

	view := m.View()
	if !strings.Contains(view, "This session") || !strings.Contains(view, "W 1") {
		t.Errorf("Unexpected view:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if m.scope != ScopeAll || len(m.rounds) != 2 {
		t.Errorf("Expected all sessions with 2 rounds, got %v with %d", m.scope, len(m.rounds))
	}
}

func TestHistoryRow(t *testing.T) {
	row := historyRow(storage.RoundRecord{Round: 3, Variant: "wrap", Outcome: "loss", Delta: -1, Score: 2, Ticks: 90})
	want := []string{"#3", "wrap", "loss", "-1", "2", "1.5"}
	for i, w := range want {
		if row[i] != w {
			t.Errorf("column %d = %q, want %q", i, row[i], w)
		}
	}
}

func TestHistoryWithoutLedger(t *testing.T) {
	m := NewHistoryModel(nil, "me", 60, 20)
	if !strings.Contains(m.View(), "No rounds played yet") {
		t.Error("Expected empty message")
	}
}
