package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequest() *TurnRequest {
	return &TurnRequest{
		Game: GameMeta{ID: "g1", Timeout: 500},
		Turn: 3,
		Board: BoardJSON{
			Width:  11,
			Height: 11,
			Food:   []Vec2D{{X: 1, Y: 1}},
			Snakes: []SnakeJSON{
				{ID: "you", Health: 90, Body: []Vec2D{{X: 5, Y: 5}, {X: 5, Y: 4}}},
				{ID: "other", Health: 80, Body: []Vec2D{{X: 2, Y: 2}, {X: 2, Y: 3}}},
			},
		},
		You: SnakeJSON{ID: "you", Health: 90, Body: []Vec2D{{X: 5, Y: 5}, {X: 5, Y: 4}}},
	}
}

func TestParseRequestPlacesYouFirst(t *testing.T) {
	g, err := ParseRequest(sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "you", g.Snakes[0].ID)
	assert.Equal(t, "other", g.Snakes[1].ID)
	assert.Equal(t, 3, g.Turn)
	assert.Equal(t, 15, g.HazardDamage)
}

func TestParseRequestHonorsHazardDamageSetting(t *testing.T) {
	req := sampleRequest()
	req.Game.Ruleset.Settings.HazardDamagePerTurn = 20
	g, err := ParseRequest(req)
	require.NoError(t, err)
	assert.Equal(t, 20, g.HazardDamage)
}

func TestParseRequestRejectsMissingYou(t *testing.T) {
	req := sampleRequest()
	req.You.ID = "nope"
	_, err := ParseRequest(req)
	require.Error(t, err)
	assert.IsType(t, &ParseError{}, err)
}

func TestParseRequestRejectsDuplicateIDs(t *testing.T) {
	req := sampleRequest()
	req.Board.Snakes[1].ID = "you"
	_, err := ParseRequest(req)
	require.Error(t, err)
}

func TestParseRequestRejectsEmptyBody(t *testing.T) {
	req := sampleRequest()
	req.Board.Snakes[1].Body = nil
	_, err := ParseRequest(req)
	require.Error(t, err)
}

func TestParseRequestAcceptsOversizedBoard(t *testing.T) {
	req := sampleRequest()
	req.Board.Width = 25
	req.Board.Height = 25
	g, err := ParseRequest(req)
	require.NoError(t, err)
	assert.Equal(t, 25, g.Width)
}
