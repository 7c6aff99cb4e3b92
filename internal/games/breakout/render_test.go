package breakout

import (
	"testing"

	"github.com/vovakirdan/quadbreak/internal/core"
)

func TestViewportProject(t *testing.T) {
	v := NewViewport(core.NewRect(0, 0, 80, 40))

	tests := []struct {
		name   string
		quad   core.Quad
		expect core.Rect
	}{
		{"whole arena", core.NewQuad(core.V2(0, 0), core.V2(1600, 1600)), core.NewRect(0, 0, 80, 40)},
		{"ball at center", core.NewQuad(core.V2(0, 0), BallSize()), core.NewRect(38, 19, 4, 2)},
		{"top left corner", core.NewQuad(core.V2(-780, 780), core.V2(40, 40)), core.NewRect(0, 0, 2, 1)},
		{"tiny quad still covers a cell", core.NewQuad(core.V2(0, 0), core.V2(1, 1)), core.NewRect(39, 19, 2, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.Project(tc.quad); got != tc.expect {
				t.Errorf("Project = %+v, expected %+v", got, tc.expect)
			}
		})
	}
}

func TestViewportProjectOffset(t *testing.T) {
	v := NewViewport(core.NewRect(10, 5, 80, 40))
	got := v.Project(core.NewQuad(core.V2(0, 0), core.V2(1600, 1600)))
	if got != core.NewRect(10, 5, 80, 40) {
		t.Errorf("Project = %+v, expected the viewport area", got)
	}
}

func TestViewportDrawClips(t *testing.T) {
	screen := core.NewScreen(30, 20)
	area := core.NewRect(5, 5, 20, 10)
	v := NewViewport(area)

	f := Frame{
		Paddle: Sprite{Quad: core.NewQuad(core.V2(0, -700), PaddleSize()), Color: PaddleColor},
		// Ball partly outside the arena must not spill past the viewport
		Ball: Sprite{Quad: core.NewQuad(core.V2(0, -820), BallSize()), Color: BallColor},
		Bricks: []BrickSprite{
			{ID: 0, Quad: core.NewQuad(core.V2(0, 200), BrickSize()), Health: 3, Color: BrickColor(3)},
		},
	}
	v.Draw(screen, f)

	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			inside := x >= area.X && x < area.Right() && y >= area.Y && y < area.Bottom()
			if !inside && screen.Get(x, y) != ' ' {
				t.Fatalf("cell (%d,%d) = %q drawn outside the viewport", x, y, screen.Get(x, y))
			}
		}
	}

	brick := v.Project(f.Bricks[0].Quad)
	cell := screen.GetCell(brick.X, brick.Y)
	if cell.Rune != BrickChar || cell.Color != core.ColorGreen {
		t.Errorf("brick cell = %+v, expected green brick", cell)
	}

	paddle := v.Project(f.Paddle.Quad)
	if screen.Get(paddle.X, paddle.Y) != PaddleChar {
		t.Errorf("expected paddle glyph at %d,%d", paddle.X, paddle.Y)
	}
}
