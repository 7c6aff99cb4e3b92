package breakout

import (
	"slices"

	"github.com/vovakirdan/quadbreak/internal/core"
)

// Stats are running counters kept by the simulation.
type Stats struct {
	Ticks           uint64
	PaddleHits      int
	BrickHits       int
	BricksDestroyed int
	Resets          int
	DroppedTicks    uint64
}

// BrickHit describes the brick struck during a tick.
type BrickHit struct {
	ID        int
	Face      Face
	Health    uint8 // Health after the hit
	Destroyed bool
}

// StepReport describes what happened during one fixed tick.
type StepReport struct {
	Tick      uint64
	Walls     Walls
	PaddleHit bool
	Brick     *BrickHit
	Reset     bool
	Source    Source // Response that set the ball's direction this tick
}

// Simulation owns the paddle, the ball and the brick field and advances
// them in fixed ticks. It is not safe for concurrent use; readers on other
// goroutines should work from a Frame.
type Simulation struct {
	paddle  Paddle
	ball    Ball
	bricks  []Brick
	clock   Clock
	stats   Stats
	reports []StepReport
}

// NewSimulation creates a simulation with the standard layout. Brick health
// is drawn from a generator seeded with seed.
func NewSimulation(seed int64) *Simulation {
	return newSimulation(newBricks(newRNG(seed)))
}

func newSimulation(bricks []Brick) *Simulation {
	return &Simulation{
		paddle: Paddle{
			Quad: core.NewQuad(paddleStart, PaddleSize()),
		},
		ball: Ball{
			Quad: core.NewQuad(ballStart, BallSize()),
			Dir:  ballLaunch,
		},
		bricks:  bricks,
		reports: make([]StepReport, 0, MaxCatchUpSteps),
	}
}

// SetPaddleDirection sets the paddle's movement for subsequent ticks.
// Expected values are (-1,0), (1,0) and (0,0).
func (s *Simulation) SetPaddleDirection(dir core.Vec2) {
	s.paddle.Dir = dir
}

// Advance feeds elapsed seconds into the tick scheduler and runs every tick
// that is due, up to MaxCatchUpSteps. The returned reports are reused by the
// next call.
func (s *Simulation) Advance(elapsed float32) []StepReport {
	s.reports = s.reports[:0]
	steps := s.clock.Accumulate(elapsed)
	for range steps {
		s.reports = append(s.reports, s.Step())
	}
	s.stats.DroppedTicks = s.clock.Dropped()
	return s.reports
}

// Step runs exactly one tick: paddle movement, bounce resolution, then the
// respawn check.
func (s *Simulation) Step() StepReport {
	s.stats.Ticks++
	s.paddle.move()

	report := s.resolveBounce()
	report.Tick = s.stats.Ticks

	if s.ball.fellOut() {
		s.ball.respawn()
		s.stats.Resets++
		report.Reset = true
	}
	return report
}

// resolveBounce applies wall, paddle and brick responses in that order, each
// overwriting the ball direction set by the previous one, then moves the
// ball once.
func (s *Simulation) resolveBounce() StepReport {
	var report StepReport
	dir := s.ball.Dir

	if walls := wallContacts(s.ball.Quad); walls != 0 {
		dir = reflectWalls(dir, walls)
		report.Walls = walls
		report.Source = SourceWall
	}

	if s.paddle.Quad.Intersects(s.ball.Quad) {
		dir = paddleBounceDir(s.paddle.Quad, s.ball.Quad)
		s.stats.PaddleHits++
		report.PaddleHit = true
		report.Source = SourcePaddle
	}

	if i := firstBrickHit(s.bricks, s.ball.Quad); i >= 0 {
		hit := s.hitBrick(i)
		if hit.Face != FaceNone {
			dir = reflectFace(dir, hit.Face)
			report.Source = SourceBrick
		}
		report.Brick = &hit
	}

	s.ball.Dir = dir
	s.ball.Quad.Pos.AddInPlace(dir.Scale(BallSpeed))
	return report
}

// hitBrick damages the brick at index i and removes it once its health is
// gone. i must come from a scan of the current collection.
func (s *Simulation) hitBrick(i int) BrickHit {
	brick := &s.bricks[i]
	hit := BrickHit{
		ID:   brick.ID,
		Face: brickFace(brick.Quad, s.ball.Quad),
	}

	hit.Destroyed = brick.Hit()
	hit.Health = brick.Health
	s.stats.BrickHits++

	if hit.Destroyed {
		s.bricks = slices.Delete(s.bricks, i, i+1)
		s.stats.BricksDestroyed++
	}
	return hit
}

// Paddle returns a copy of the paddle.
func (s *Simulation) Paddle() Paddle {
	return s.paddle
}

// Ball returns a copy of the ball.
func (s *Simulation) Ball() Ball {
	return s.ball
}

// Bricks returns a copy of the remaining bricks in collection order.
func (s *Simulation) Bricks() []Brick {
	return slices.Clone(s.bricks)
}

// BrickCount returns the number of remaining bricks.
func (s *Simulation) BrickCount() int {
	return len(s.bricks)
}

// Cleared reports whether every brick has been destroyed.
func (s *Simulation) Cleared() bool {
	return len(s.bricks) == 0
}

// Stats returns the running counters.
func (s *Simulation) Stats() Stats {
	return s.stats
}
