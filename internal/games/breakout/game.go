package breakout

import (
	"fmt"
	"time"

	"github.com/vovakirdan/quadbreak/internal/core"
	"github.com/vovakirdan/quadbreak/internal/registry"
)

// Game states
const (
	StatePlaying = "playing" // Ball in play
	StatePaused  = "paused"  // Clock not fed
	StateCleared = "cleared" // Every brick destroyed
)

// Scoring
const (
	PointsPerHit   = 10
	PointsPerBrick = 50
)

// DirectionHold is how long a movement key keeps steering the paddle after
// its last press. Terminals only report presses, so held keys arrive as a
// stream of repeats with gaps between them.
const DirectionHold = 150 * time.Millisecond

// Game adapts a Simulation to the platform's frame loop: it turns input
// frames into a paddle direction, feeds elapsed host time into the tick
// scheduler and keeps the score.
type Game struct {
	sim     *Simulation
	runtime core.RuntimeConfig
	state   string
	score   int

	dir     core.Vec2
	dirIdle time.Duration // Time since the last movement key

	events []core.Event

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{
		minScreenW: 40,
		minScreenH: 15,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.sim = NewSimulation(runtime.Seed)
	g.state = StatePlaying
	g.score = 0
	g.dir = core.Vec2{}
	g.dirIdle = 0
	g.events = g.events[:0]
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
}

// Resize updates the screen dimensions without restarting the run.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < g.minScreenW || height < g.minScreenH
}

// Advance consumes one host frame: elapsed is the real time since the
// previous frame.
func (g *Game) Advance(elapsed time.Duration, in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if in.Has(core.ActionRestart) && g.state == StateCleared {
		g.Reset(g.runtime)
		return g.result(0)
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying || g.screenTooSmall {
		return g.result(0)
	}

	g.steer(elapsed, in)

	reports := g.sim.Advance(float32(elapsed.Seconds()))
	for _, r := range reports {
		g.apply(r)
	}

	if g.sim.Cleared() {
		g.state = StateCleared
		g.emit("field cleared", "score", g.score, "ticks", g.sim.Stats().Ticks)
	}
	return g.result(len(reports))
}

// steer updates the paddle direction from this frame's movement keys.
func (g *Game) steer(elapsed time.Duration, in core.InputFrame) {
	if d := in.Direction(); !d.IsZero() {
		g.dir = d
		g.dirIdle = 0
	} else if in.Has(core.ActionLeft) && in.Has(core.ActionRight) {
		g.dir = core.Vec2{}
	} else {
		g.dirIdle += elapsed
		if g.dirIdle >= DirectionHold {
			g.dir = core.Vec2{}
		}
	}
	g.sim.SetPaddleDirection(g.dir)
}

// apply scores a tick and turns it into log events.
func (g *Game) apply(r StepReport) {
	if r.Brick != nil {
		g.score += PointsPerHit
		if r.Brick.Destroyed {
			g.score += PointsPerBrick
			g.emit("brick destroyed", "tick", r.Tick, "id", r.Brick.ID, "face", r.Brick.Face, "remaining", g.sim.BrickCount())
		} else {
			g.emit("brick hit", "tick", r.Tick, "id", r.Brick.ID, "face", r.Brick.Face, "health", r.Brick.Health)
		}
	}
	if r.Reset {
		g.emit("ball reset", "tick", r.Tick, "resets", g.sim.Stats().Resets)
	}
}

func (g *Game) emit(name string, fields ...any) {
	g.events = append(g.events, core.Event{Name: name, Fields: fields})
}

func (g *Game) result(steps int) core.StepResult {
	return core.StepResult{
		State:  g.State(),
		Steps:  steps,
		Events: g.events,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateCleared,
		Paused:   g.state == StatePaused,
	}
}

// Summary returns the run statistics for score storage.
func (g *Game) Summary() core.RunSummary {
	stats := g.sim.Stats()
	return core.RunSummary{
		Score:           g.score,
		BricksDestroyed: stats.BricksDestroyed,
		BallsLost:       stats.Resets,
		Ticks:           stats.Ticks,
		Cleared:         g.state == StateCleared,
	}
}

// Frame returns a render snapshot of the simulation.
func (g *Game) Frame() Frame {
	return g.sim.Frame()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)

	box := arenaBox(dst.Width(), dst.Height())
	dst.DrawBox(box, core.ColorGray)
	view := NewViewport(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2))
	view.Draw(dst, g.sim.Frame())

	g.renderOverlay(dst)
}

// arenaBox sizes the bordered arena below the HUD row. Terminal cells are
// about twice as tall as wide, so the square arena uses twice as many
// columns as rows.
func arenaBox(width, height int) core.Rect {
	rows := height - 3
	cols := width - 2
	if cols/2 < rows {
		rows = cols / 2
	}
	cols = rows * 2
	x := (width - cols - 2) / 2
	return core.NewRect(x, 1, cols+2, rows+2)
}

// renderHUD draws the score, remaining bricks and lost balls.
func (g *Game) renderHUD(dst *core.Screen) {
	stats := g.sim.Stats()

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Bricks: %d/%d", g.sim.BrickCount(), LayoutSize))

	lost := fmt.Sprintf("Lost: %d", stats.Resets)
	dst.DrawText(dst.Width()-len(lost)-1, 0, lost)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateCleared:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "CLEARED!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
