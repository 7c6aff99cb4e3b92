// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per host frame. Loop identifies the frame loop that
// scheduled it, so a model ignores ticks left over from an earlier game.
type TickMsg struct {
	At   time.Time
	Loop uint64
}

var loopSeq atomic.Uint64

// nextLoop returns a new frame loop identifier.
func nextLoop() uint64 {
	return loopSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends a tick message after one
// frame interval at the given rate.
func tickCmd(fps int, loop uint64) tea.Cmd {
	return tea.Tick(frameInterval(fps), func(t time.Time) tea.Msg {
		return TickMsg{At: t, Loop: loop}
	})
}

// frameInterval converts a frame rate into a tick interval.
// Non-positive rates fall back to 30 FPS.
func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 30
	}
	return time.Second / time.Duration(fps)
}

// frameElapsed returns the time between two host frames. The first frame
// and clock steps backwards count as zero.
func frameElapsed(last, now time.Time) time.Duration {
	if last.IsZero() {
		return 0
	}
	d := now.Sub(last)
	if d < 0 {
		return 0
	}
	return d
}
