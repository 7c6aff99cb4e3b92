package breakout

import "github.com/vovakirdan/quadbreak/internal/core"

// Arena geometry. The arena is the square [-ArenaHalf, ArenaHalf] on both
// axes with y growing upward.
const (
	ArenaHalf float32 = 800
)

// Timing.
const (
	TicksPerSecond         = 60
	TickSeconds    float32 = 1.0 / TicksPerSecond

	// MaxCatchUpSteps bounds how many ticks a single Advance call may run.
	// Backlog beyond this is dropped rather than simulated.
	MaxCatchUpSteps = 5
)

// Entity dimensions (full width/height in arena units).
const (
	PaddleW float32 = 250
	PaddleH float32 = 50
	BallW   float32 = 50
	BallH   float32 = 50
	BrickW  float32 = 150
	BrickH  float32 = 75
)

// Speeds in arena units per tick.
const (
	PaddleSpeed float32 = 12
	BallSpeed   float32 = 25
)

// Paddle clamp range. Y follows the arena's vertical extent, X keeps the
// paddle fully inside the side walls.
const (
	PaddleBoundsMin  = -ArenaHalf + PaddleH/2
	PaddleBoundsMax  = ArenaHalf - PaddleH/2
	PaddleBoundsMinX = -ArenaHalf + PaddleW/2
	PaddleBoundsMaxX = ArenaHalf - PaddleW/2
)

// Brick health range for freshly laid out bricks.
const (
	MinBrickHealth uint8 = 3
	MaxBrickHealth uint8 = 5
)

// MaxBounceAngle is the largest deflection from vertical a paddle hit produces (45°).
const MaxBounceAngle = 0.7853981633974483

// Fixed render colors.
const (
	PaddleColor = core.ColorOrange
	BallColor   = core.ColorOlive
)

// BrickPalette is indexed by health-1.
var BrickPalette = [MaxBrickHealth]core.Color{
	core.ColorRed,
	core.ColorAmber,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorCyan,
}

// Starting positions.
var (
	paddleStart = core.V2(-130, -700)
	ballStart   = core.V2(0, 0)
	ballLaunch  = core.V2(0, -1)
)

// PaddleSize returns the paddle dimensions as a vector.
func PaddleSize() core.Vec2 { return core.V2(PaddleW, PaddleH) }

// BallSize returns the ball dimensions as a vector.
func BallSize() core.Vec2 { return core.V2(BallW, BallH) }

// BrickSize returns the brick dimensions as a vector.
func BrickSize() core.Vec2 { return core.V2(BrickW, BrickH) }
