package breakout

import (
	"math"

	"github.com/vovakirdan/quadbreak/internal/core"
)

// Glyphs used for the terminal projection.
const (
	PaddleChar = '▀'
	BallChar   = '●'
	BrickChar  = '█'
)

// Viewport maps arena coordinates onto a block of screen cells.
type Viewport struct {
	Area core.Rect // Screen cells covered by the arena
}

// NewViewport fits the arena inside area.
func NewViewport(area core.Rect) Viewport {
	return Viewport{Area: area}
}

// Project returns the screen cells covered by q. Every visible quad covers
// at least one cell. The result may extend outside the viewport.
func (v Viewport) Project(q core.Quad) core.Rect {
	span := 2 * float64(ArenaHalf)
	w, h := float64(v.Area.W), float64(v.Area.H)

	x0 := int(math.Floor((float64(q.Left()) + float64(ArenaHalf)) / span * w))
	x1 := int(math.Ceil((float64(q.Right()) + float64(ArenaHalf)) / span * w))
	y0 := int(math.Floor((float64(ArenaHalf) - float64(q.Top())) / span * h))
	y1 := int(math.Ceil((float64(ArenaHalf) - float64(q.Bottom())) / span * h))

	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(v.Area.X+x0, v.Area.Y+y0, x1-x0, y1-y0)
}

// Draw renders the frame into dst, clipped to the viewport.
func (v Viewport) Draw(dst *core.Screen, f Frame) {
	for _, b := range f.Bricks {
		v.fill(dst, v.Project(b.Quad), BrickChar, b.Color)
	}
	v.fill(dst, v.Project(f.Paddle.Quad), PaddleChar, f.Paddle.Color)

	ball := v.Project(f.Ball.Quad)
	if ball.W <= 1 && ball.H <= 1 {
		v.fill(dst, ball, BallChar, f.Ball.Color)
	} else {
		v.fill(dst, ball, BrickChar, f.Ball.Color)
	}
}

func (v Viewport) fill(dst *core.Screen, r core.Rect, glyph rune, c core.Color) {
	x0 := core.Max(r.X, v.Area.X)
	y0 := core.Max(r.Y, v.Area.Y)
	x1 := core.Min(r.Right(), v.Area.Right())
	y1 := core.Min(r.Bottom(), v.Area.Bottom())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, glyph, c)
		}
	}
}
