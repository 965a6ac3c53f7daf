package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepIncrementsTurnAndTracksHealth(t *testing.T) {
	g := NewGame(11, 11, []Snake{
		{ID: "a", Health: 100, Body: []Vec2D{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 3}}},
	}, nil, nil)

	preLen := g.Snakes[0].Length()
	g.Step(Move{Up})

	assert.Equal(t, 1, g.Turn)
	assert.Equal(t, preLen, g.Snakes[0].Length())
	assert.Equal(t, 99, g.Snakes[0].Health)
	assert.True(t, g.Snakes[0].Health >= 0 && g.Snakes[0].Health <= 100)
}

func TestStepGrowsOnFood(t *testing.T) {
	g := NewGame(11, 11, []Snake{
		{ID: "a", Health: 50, Body: []Vec2D{{X: 5, Y: 5}, {X: 5, Y: 4}}},
	}, []Vec2D{{X: 5, Y: 6}}, nil)

	preLen := g.Snakes[0].Length()
	g.Step(Move{Up})

	assert.Equal(t, preLen+1, g.Snakes[0].Length())
	assert.Equal(t, 100, g.Snakes[0].Health)
	assert.Empty(t, g.Food)
}

func TestValidMovesExcludesNeckAndLethal(t *testing.T) {
	g := NewGame(5, 5, []Snake{
		{ID: "a", Health: 100, Body: []Vec2D{{X: 0, Y: 0}, {X: 0, Y: 1}}},
	}, nil, nil)

	moves := g.ValidMoves(0)
	assert.NotContains(t, moves, Up) // neck direction
	// Down and Left leave the board from the corner; only Right survives.
	assert.Equal(t, []Direction{Right}, moves)
	assert.LessOrEqual(t, len(moves), 3)
	for _, d := range moves {
		assert.NotEqual(t, Up, d)
	}
}

func TestOutcomeMonotonicity(t *testing.T) {
	g := NewGame(5, 5, []Snake{
		{ID: "a", Health: 1, Body: []Vec2D{{X: 2, Y: 2}}},
	}, nil, nil)

	g.Step(Move{Left}) // health hits 0, dies
	outcome := g.Outcome()
	require.Equal(t, OutcomeMatch, outcome.Kind)

	g.Step(Move{Unset})
	assert.Equal(t, outcome, g.Outcome())
}

func TestLoopInOpenSpace(t *testing.T) {
	g := NewGame(11, 11, []Snake{
		{ID: "a", Health: 100, Body: []Vec2D{
			{X: 6, Y: 2}, {X: 5, Y: 2}, {X: 4, Y: 2},
			{X: 4, Y: 3}, {X: 4, Y: 4}, {X: 5, Y: 4}, {X: 6, Y: 4},
		}},
	}, nil, nil)
	before := g.Render()

	moves := []Direction{Up, Up, Left, Left, Down, Down, Right, Right}
	for _, d := range moves {
		g.Step(Move{d})
		require.False(t, g.Snakes[0].Dead(), "snake died mid-loop on move %v", d)
	}

	assert.Equal(t, before, g.Render())
}

func TestHeadToHeadTie(t *testing.T) {
	g := NewGame(11, 11, []Snake{
		{ID: "a", Health: 100, Body: []Vec2D{{X: 4, Y: 5}, {X: 3, Y: 5}, {X: 2, Y: 5}}},
		{ID: "b", Health: 100, Body: []Vec2D{{X: 6, Y: 5}, {X: 7, Y: 5}, {X: 8, Y: 5}}},
	}, nil, nil)

	g.Step(Move{Right, Left})

	assert.True(t, g.Snakes[0].Dead())
	assert.True(t, g.Snakes[1].Dead())
	assert.Equal(t, OutcomeMatch, g.Outcome().Kind)
}

func TestHeadToHeadMismatch(t *testing.T) {
	g := NewGame(11, 11, []Snake{
		{ID: "a", Health: 100, Body: []Vec2D{
			{X: 4, Y: 5}, {X: 3, Y: 5}, {X: 2, Y: 5}, {X: 1, Y: 5}, {X: 0, Y: 5},
		}},
		{ID: "b", Health: 100, Body: []Vec2D{{X: 6, Y: 5}, {X: 7, Y: 5}, {X: 8, Y: 5}}},
	}, nil, nil)

	g.Step(Move{Right, Left})

	assert.False(t, g.Snakes[0].Dead())
	assert.True(t, g.Snakes[1].Dead())
	assert.Equal(t, 5, g.Snakes[0].Length())
	assert.Equal(t, WinnerOutcome(0), g.Outcome())
}

// A snake boxed into a corner, with its only non-neck escape blocked by
// another snake's non-tail body cell (not its own tail, which vacates and
// would otherwise make the corner survivable): every direction is lethal.
func TestForcedCornerHasNoSafeMove(t *testing.T) {
	g := NewGame(11, 11, []Snake{
		{ID: "a", Health: 100, Body: []Vec2D{{X: 0, Y: 0}, {X: 0, Y: 1}}},
		{ID: "b", Health: 100, Body: []Vec2D{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}},
	}, nil, nil)

	assert.Empty(t, g.ValidMoves(0))
}

// A curled snake that turns its head into its own still-occupied body (not
// the segment that vacates as the tail this tick) must die, the same as if
// that cell belonged to another snake.
func TestStepKillsOnSelfCollision(t *testing.T) {
	g := NewGame(11, 11, []Snake{
		{ID: "a", Health: 100, Body: []Vec2D{
			{X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2},
		}},
	}, nil, nil)

	g.Step(Move{Left})

	assert.True(t, g.Snakes[0].Dead())
}

func TestFoodGrabHeading(t *testing.T) {
	g := NewGame(11, 11, []Snake{
		{ID: "a", Health: 80, Body: []Vec2D{{X: 7, Y: 8}, {X: 7, Y: 7}}},
	}, []Vec2D{{X: 7, Y: 9}}, nil)

	preLen := g.Snakes[0].Length()
	g.Step(Move{Up})

	assert.Equal(t, Vec2D{X: 7, Y: 9}, g.Snakes[0].Head())
	assert.Equal(t, preLen+1, g.Snakes[0].Length())
	assert.Equal(t, 100, g.Snakes[0].Health)
}

func TestSnapshotOccupiedCount(t *testing.T) {
	g := NewGame(5, 5, []Snake{
		{ID: "a", Health: 100, Body: []Vec2D{{X: 0, Y: 0}, {X: 0, Y: 1}}},
	}, []Vec2D{{X: 2, Y: 2}}, []Vec2D{{X: 4, Y: 4}})

	snap := g.Snapshot()
	assert.Equal(t, 4, snap.OccupiedCount())
}
