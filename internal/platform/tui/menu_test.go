package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quadbreak/internal/storage"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, want MenuModel", next)
	}
	return mm, cmd
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel("Breakout", nil, "breakout", testRuntime())

	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 at the top", m.cursor)
	}

	for range 5 {
		m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, want %d at the bottom", m.cursor, len(m.items)-1)
	}
}

func TestMenuSelect(t *testing.T) {
	tests := []struct {
		downs int
		want  MenuChoice
		quit  bool
	}{
		{0, ChoicePlay, false},
		{1, ChoiceScores, false},
		{2, ChoiceQuit, true},
	}

	for _, tt := range tests {
		m := NewMenuModel("Breakout", nil, "breakout", testRuntime())
		for range tt.downs {
			m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
		}
		m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

		if m.Selected() != tt.want {
			t.Errorf("downs=%d: Selected() = %v, want %v", tt.downs, m.Selected(), tt.want)
		}
		if m.IsQuitting() != tt.quit || (cmd != nil) != tt.quit {
			t.Errorf("downs=%d: quitting = %v, want %v", tt.downs, m.IsQuitting(), tt.quit)
		}
	}
}

func TestMenuShowsBest(t *testing.T) {
	store := testStore(t)
	if _, err := store.SaveRun(storage.Run{GameID: "breakout", Score: 740}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewMenuModel("Breakout", store, "breakout", testRuntime())
	view := m.View()

	if !strings.Contains(view, "Best: 740") {
		t.Errorf("menu should show the high score:\n%s", view)
	}
	if !strings.Contains(view, "> Play Breakout") {
		t.Errorf("cursor should start on Play:\n%s", view)
	}
}

func TestSpaced(t *testing.T) {
	if got := spaced("Go"); got != "G O" {
		t.Errorf("spaced(Go) = %q, want %q", got, "G O")
	}
}
