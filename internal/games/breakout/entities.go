package breakout

import "github.com/vovakirdan/quadbreak/internal/core"

// Paddle is the player-controlled bar. Dir is set by input and holds
// axis-aligned values (-1, 0 or 1 per axis).
type Paddle struct {
	Quad core.Quad
	Dir  core.Vec2
}

// move advances the paddle one tick and clamps it inside the arena.
func (p *Paddle) move() {
	p.Quad.Pos.AddInPlace(p.Dir.Scale(PaddleSpeed))
	p.Quad.Pos.X = core.ClampF32(p.Quad.Pos.X, PaddleBoundsMinX, PaddleBoundsMaxX)
	p.Quad.Pos.Y = core.ClampF32(p.Quad.Pos.Y, PaddleBoundsMin, PaddleBoundsMax)
}

// Ball is the bouncing projectile. Dir is a unit vector once any bounce
// has been resolved.
type Ball struct {
	Quad core.Quad
	Dir  core.Vec2
}

// fellOut reports whether the ball's bottom edge is below the arena floor.
func (b *Ball) fellOut() bool {
	return b.Quad.Bottom() < -ArenaHalf
}

// respawn puts the ball back at the arena center heading down.
func (b *Ball) respawn() {
	b.Quad.Pos = ballStart
	b.Dir = ballLaunch
}

// Brick is a destructible block. ID is its slot in the layout and does not
// change when other bricks are removed.
type Brick struct {
	ID     int
	Quad   core.Quad
	Health uint8
}

// NewBrick creates a brick of the standard size centered at (x, y).
func NewBrick(id int, x, y float32, health uint8) Brick {
	return Brick{
		ID:     id,
		Quad:   core.NewQuad(core.V2(x, y), BrickSize()),
		Health: health,
	}
}

// Hit removes one point of health and reports whether the brick is destroyed.
// Health never wraps below zero.
func (b *Brick) Hit() bool {
	if b.Health > 0 {
		b.Health--
	}
	return b.Health == 0
}

// Color returns the palette color for the brick's current health.
func (b Brick) Color() core.Color {
	return BrickColor(b.Health)
}

// BrickColor maps a health value to its palette color. Out-of-range values
// are clamped to the nearest palette entry.
func BrickColor(health uint8) core.Color {
	idx := core.Clamp(int(health)-1, 0, len(BrickPalette)-1)
	return BrickPalette[idx]
}
