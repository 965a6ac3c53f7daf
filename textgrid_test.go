package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTextGridSingleSnake(t *testing.T) {
	text := "" +
		"o....\n" +
		".....\n" +
		"..A..\n" +
		"..a..\n" +
		".H...\n"
	g, err := ParseTextGrid(text)
	require.NoError(t, err)

	assert.Equal(t, 5, g.Width)
	assert.Equal(t, 5, g.Height)
	require.Len(t, g.Snakes, 1)
	assert.Equal(t, []Vec2D{{X: 2, Y: 2}, {X: 2, Y: 1}}, g.Snakes[0].Body)
	assert.Equal(t, []Vec2D{{X: 1, Y: 0}}, g.Hazards)
	assert.Equal(t, []Vec2D{{X: 0, Y: 4}}, g.Food)
}

func TestParseTextGridTwoSnakes(t *testing.T) {
	text := "" +
		"B....\n" +
		"b....\n" +
		".....\n" +
		"....a\n" +
		"....A\n"
	g, err := ParseTextGrid(text)
	require.NoError(t, err)
	require.Len(t, g.Snakes, 2)
	assert.Equal(t, "A", g.Snakes[0].ID)
	assert.Equal(t, "B", g.Snakes[1].ID)
}

func TestParseTextGridRejectsEmpty(t *testing.T) {
	_, err := ParseTextGrid("\n\n")
	require.Error(t, err)
	assert.IsType(t, &ParseError{}, err)
}

func TestRenderRoundTripsSnakePosition(t *testing.T) {
	g := NewGame(5, 5, []Snake{
		{ID: "a", Health: 100, Body: []Vec2D{{X: 2, Y: 2}, {X: 2, Y: 1}}},
	}, []Vec2D{{X: 0, Y: 4}}, []Vec2D{{X: 1, Y: 0}})

	rendered := g.Render()
	reparsed, err := ParseTextGrid(rendered)
	require.NoError(t, err)

	assert.Equal(t, g.Snakes[0].Body, reparsed.Snakes[0].Body)
	assert.Equal(t, g.Food, reparsed.Food)
	assert.Equal(t, g.Hazards, reparsed.Hazards)
}
