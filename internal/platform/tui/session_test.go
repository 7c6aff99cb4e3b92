package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm, cmd
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	return NewSessionModel("breakout", testRuntime(), testStore(t), nil, "bob", NewPalette(nil))
}

func TestSessionStartsAtMenu(t *testing.T) {
	m := newTestSession(t)

	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", m.screen)
	}
	if !strings.Contains(m.View(), "B R E A K O U T") {
		t.Errorf("menu should show the game title:\n%s", m.View())
	}
}

func TestSessionPlayAndBack(t *testing.T) {
	m := newTestSession(t)

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.game == nil {
		t.Fatal("enter on Play should start a game")
	}
	if cmd == nil {
		t.Error("starting a game should start its frame loop")
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Errorf("game view should show the HUD:\n%s", m.View())
	}

	// Pause, let a frame apply it, then leave
	m, _ = updateSession(t, m, runeKey('p'))
	m, _ = updateSession(t, m, TickMsg{At: time.Now(), Loop: m.game.loop})
	if !m.game.State().Paused {
		t.Fatal("game should be paused")
	}

	m, cmd = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.game != nil {
		t.Fatal("back from a paused game should return to the menu")
	}
	if cmd != nil {
		t.Error("returning to the menu should not quit the program")
	}
	if m.quitting {
		t.Error("session should keep running")
	}
}

func TestSessionScoresAndBack(t *testing.T) {
	m := newTestSession(t)

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenScores || m.scores == nil {
		t.Fatal("enter on High Scores should open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Errorf("scoreboard view missing heading:\n%s", m.View())
	}

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || cmd != nil {
		t.Error("back from the scoreboard should return to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
	}{
		{"from menu", []tea.KeyMsg{runeKey('q')}},
		{"menu entry", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}},
		{"from game", []tea.KeyMsg{{Type: tea.KeyEnter}, runeKey('q')}},
		{"from scores", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}, runeKey('q')}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestSession(t)
			var cmd tea.Cmd
			for _, k := range tt.keys {
				m, cmd = updateSession(t, m, k)
			}
			if !m.quitting || cmd == nil {
				t.Error("session should quit")
			}
			if m.View() != "" {
				t.Error("View should be empty after quitting")
			}
		})
	}
}

func TestSessionResizeTracked(t *testing.T) {
	m := newTestSession(t)

	m, _ = updateSession(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.game.config.ScreenW != 100 || m.game.config.ScreenH != 30 {
		t.Errorf("game started at %dx%d, want 100x30", m.game.config.ScreenW, m.game.config.ScreenH)
	}
}

func TestSessionIgnoresTicksOutsideGame(t *testing.T) {
	m := newTestSession(t)

	m, cmd := updateSession(t, m, TickMsg{At: time.Now(), Loop: 1})
	if cmd != nil || m.screen != screenMenu {
		t.Error("a tick at the menu should do nothing")
	}
}
