package breakout

import (
	"math"

	"github.com/vovakirdan/quadbreak/internal/core"
)

// Face indicates which side of a brick the ball struck.
type Face int

const (
	FaceNone Face = iota
	FaceTop
	FaceBottom
	FaceLeft
	FaceRight
)

// String returns the face name.
func (f Face) String() string {
	switch f {
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	default:
		return "none"
	}
}

// Walls is a set of arena walls the ball is pressing against.
type Walls uint8

const (
	WallLeft Walls = 1 << iota
	WallRight
	WallTop
)

// Has reports whether w contains wall.
func (w Walls) Has(wall Walls) bool {
	return w&wall != 0
}

// Source names the collision response that decided the ball's direction in a
// tick. Responses run wall, paddle, brick and each later one overwrites the
// earlier, so the highest-ranked source present wins.
type Source int

const (
	SourceNone Source = iota
	SourceWall
	SourcePaddle
	SourceBrick
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceWall:
		return "wall"
	case SourcePaddle:
		return "paddle"
	case SourceBrick:
		return "brick"
	default:
		return "none"
	}
}

// wallContacts returns the walls the ball's edges have crossed. There is no
// floor: falling out is handled by the respawn rule.
func wallContacts(ball core.Quad) Walls {
	var w Walls
	if ball.Right() > ArenaHalf {
		w |= WallRight
	}
	if ball.Left() < -ArenaHalf {
		w |= WallLeft
	}
	if ball.Top() > ArenaHalf {
		w |= WallTop
	}
	return w
}

// reflectWalls forces the direction away from every wall in w.
func reflectWalls(dir core.Vec2, w Walls) core.Vec2 {
	if w.Has(WallRight) {
		dir.X = -core.AbsF32(dir.X)
	}
	if w.Has(WallLeft) {
		dir.X = core.AbsF32(dir.X)
	}
	if w.Has(WallTop) {
		dir.Y = -core.AbsF32(dir.Y)
	}
	return dir
}

// paddleBounceDir computes the ball direction after a paddle hit. The angle
// from vertical grows linearly with the horizontal offset from the paddle
// center, up to MaxBounceAngle at the paddle's edge. The ball always leaves
// on the side of the paddle it came from.
func paddleBounceDir(paddle, ball core.Quad) core.Vec2 {
	dist := paddle.Pos.X - ball.Pos.X
	offset := core.ClampF32(dist/(paddle.Size.X/2), -1, 1)
	angle := float64(offset) * MaxBounceAngle

	bounce := core.V2(
		BallSpeed*float32(-math.Sin(angle)),
		BallSpeed*float32(math.Cos(angle)),
	)
	if paddle.Pos.Y > ball.Pos.Y {
		bounce.Y = -bounce.Y
	}
	return bounce.Normalize()
}

// firstBrickHit returns the index of the first brick in collection order
// that overlaps the ball, or -1. Nearest-hit resolution is deliberately not
// attempted.
func firstBrickHit(bricks []Brick, ball core.Quad) int {
	for i := range bricks {
		if bricks[i].Quad.Intersects(ball) {
			return i
		}
	}
	return -1
}

// brickFace picks the face of brick the ball struck. The axis with the
// smaller distance from the ball center to the nearer edge wins; ties go to
// the horizontal faces. FaceNone is returned when the ball center is inside
// the brick's span on the chosen axis.
func brickFace(brick, ball core.Quad) Face {
	var yDist, xDist float32
	if ball.Pos.Y > brick.Pos.Y {
		yDist = ball.Pos.Y - brick.Top()
	} else {
		yDist = ball.Pos.Y - brick.Bottom()
	}
	if ball.Pos.X > brick.Pos.X {
		xDist = ball.Pos.X - brick.Right()
	} else {
		xDist = ball.Pos.X - brick.Left()
	}

	if core.AbsF32(yDist) < core.AbsF32(xDist) {
		switch {
		case ball.Pos.Y >= brick.Top():
			return FaceTop
		case ball.Pos.Y <= brick.Bottom():
			return FaceBottom
		}
		return FaceNone
	}

	switch {
	case ball.Pos.X >= brick.Right():
		return FaceRight
	case ball.Pos.X <= brick.Left():
		return FaceLeft
	}
	return FaceNone
}

// reflectFace forces exactly one axis of dir away from the struck face.
func reflectFace(dir core.Vec2, f Face) core.Vec2 {
	switch f {
	case FaceTop:
		dir.Y = core.AbsF32(dir.Y)
	case FaceBottom:
		dir.Y = -core.AbsF32(dir.Y)
	case FaceRight:
		dir.X = core.AbsF32(dir.X)
	case FaceLeft:
		dir.X = -core.AbsF32(dir.X)
	}
	return dir
}
