// Package breakout implements a fixed-timestep brick breaker: a paddle and a
// ball inside a square arena, with a static wall of multi-hit bricks.
package breakout

import (
	"math/rand/v2"

	"github.com/vovakirdan/quadbreak/internal/core"
)

// brickLayout lists brick centers in insertion order. Collision scans follow
// this order, so it is part of the game's observable behavior.
var brickLayout = [...]core.Vec2{
	// Center block
	{X: 0, Y: 200}, {X: 150, Y: 200}, {X: -150, Y: 200},
	{X: 0, Y: 275}, {X: 150, Y: 275}, {X: -150, Y: 275},
	{X: 0, Y: 125}, {X: -150, Y: 125}, {X: 150, Y: 125},

	// Right column
	{X: 500, Y: 350}, {X: 500, Y: 275}, {X: 500, Y: 200}, {X: 500, Y: 125}, {X: 500, Y: 50},

	// Left column
	{X: -500, Y: 350}, {X: -500, Y: 275}, {X: -500, Y: 200}, {X: -500, Y: 125}, {X: -500, Y: 50},

	// Top arms
	{X: -500, Y: 425}, {X: -350, Y: 425}, {X: -200, Y: 425},
	{X: 500, Y: 425}, {X: 350, Y: 425}, {X: 200, Y: 425},

	// Bottom arms
	{X: -500, Y: -25}, {X: -350, Y: -25}, {X: -200, Y: -25},
	{X: 500, Y: -25}, {X: 350, Y: -25}, {X: 200, Y: -25},
}

// LayoutSize is the number of bricks in a fresh field.
const LayoutSize = len(brickLayout)

// newRNG returns the deterministic generator used for brick health.
func newRNG(seed int64) *rand.Rand {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// newBricks lays out the fixed field with health drawn from
// [MinBrickHealth, MaxBrickHealth].
func newBricks(rng *rand.Rand) []Brick {
	span := int(MaxBrickHealth-MinBrickHealth) + 1
	bricks := make([]Brick, 0, LayoutSize)
	for i, pos := range brickLayout {
		health := MinBrickHealth + uint8(rng.IntN(span)) //#nosec G115 -- span is at most 3
		bricks = append(bricks, NewBrick(i, pos.X, pos.Y, health))
	}
	return bricks
}
