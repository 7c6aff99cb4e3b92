package breakout

import (
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/quadbreak/internal/core"
)

// Sprite is a colored quad as seen by a renderer.
type Sprite struct {
	Quad  core.Quad  `msgpack:"quad"`
	Color core.Color `msgpack:"color"`
}

// BrickSprite is a brick as seen by a renderer.
type BrickSprite struct {
	ID     int        `msgpack:"id"`
	Quad   core.Quad  `msgpack:"quad"`
	Health uint8      `msgpack:"health"`
	Color  core.Color `msgpack:"color"`
}

// Frame is a deep copy of the simulation taken between ticks. It shares no
// memory with the simulation, so it may be handed to another goroutine.
type Frame struct {
	Tick    uint64        `msgpack:"tick"`
	Paddle  Sprite        `msgpack:"paddle"`
	Ball    Sprite        `msgpack:"ball"`
	BallDir core.Vec2     `msgpack:"ball_dir"`
	Bricks  []BrickSprite `msgpack:"bricks"`
	Stats   Stats         `msgpack:"stats"`
}

// Frame captures the current state for rendering.
func (s *Simulation) Frame() Frame {
	bricks := make([]BrickSprite, len(s.bricks))
	for i, b := range s.bricks {
		bricks[i] = BrickSprite{
			ID:     b.ID,
			Quad:   b.Quad,
			Health: b.Health,
			Color:  b.Color(),
		}
	}

	return Frame{
		Tick:    s.stats.Ticks,
		Paddle:  Sprite{Quad: s.paddle.Quad, Color: PaddleColor},
		Ball:    Sprite{Quad: s.ball.Quad, Color: BallColor},
		BallDir: s.ball.Dir,
		Bricks:  bricks,
		Stats:   s.stats,
	}
}

// frameWire has Frame's fields and none of its methods, so msgpack encodes
// the struct instead of calling back into MarshalBinary.
type frameWire Frame

// MarshalBinary encodes the frame with msgpack.
func (f Frame) MarshalBinary() ([]byte, error) {
	data, err := msgpack.Marshal(frameWire(f))
	if err != nil {
		return nil, fmt.Errorf("breakout: cannot encode frame: %w", err)
	}
	return data, nil
}

// UnmarshalFrame decodes a frame produced by MarshalBinary.
func UnmarshalFrame(data []byte) (Frame, error) {
	var w frameWire
	if err := msgpack.Unmarshal(data, &w); err != nil {
		return Frame{}, fmt.Errorf("breakout: cannot decode frame: %w", err)
	}
	return Frame(w), nil
}

// Hash returns an FNV-1a hash of the encoded frame for determinism checks.
// Frame holds only plain values, so an encoding failure is a bug and panics.
func (f Frame) Hash() uint64 {
	data, err := f.MarshalBinary()
	if err != nil {
		panic(err)
	}
	h := fnv.New64a()
	h.Write(data) //nolint:errcheck // hash writes never fail
	return h.Sum64()
}
