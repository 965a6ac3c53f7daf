package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridFillBodies(t *testing.T) {
	snakes := []Snake{
		{ID: "a", Health: 100, Body: []Vec2D{{X: 0, Y: 0}, {X: 0, Y: 1}}},
		{ID: "b", Health: 0, Body: nil}, // dead, must not be painted
	}
	grid := NewGrid(5, 5)
	grid.FillBodies(snakes, []Vec2D{{X: 2, Y: 2}}, []Vec2D{{X: 4, Y: 4}})

	assert.Equal(t, 0, grid.At(Vec2D{X: 0, Y: 0}))
	assert.Equal(t, 0, grid.At(Vec2D{X: 0, Y: 1}))
	assert.Equal(t, CellFood, grid.At(Vec2D{X: 2, Y: 2}))
	assert.Equal(t, CellHazard, grid.At(Vec2D{X: 4, Y: 4}))
	assert.Equal(t, CellFree, grid.At(Vec2D{X: 3, Y: 3}))
	assert.Equal(t, 4, grid.OccupiedCount())
}

func TestGridResetClearsToFree(t *testing.T) {
	grid := NewGrid(3, 3)
	grid.Set(Vec2D{X: 1, Y: 1}, 0)
	grid.Reset()
	assert.Equal(t, 0, grid.OccupiedCount())
}
