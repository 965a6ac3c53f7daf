package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeadlineDriverReturnsWithinBudget(t *testing.T) {
	start := time.Now()
	deadline := start.Add(50 * time.Millisecond)
	ctx, cancel := context.WithDeadline(context.Background(), deadline)
	defer cancel()

	dir, depth, ok := runDeadlineDriver(ctx, deadline, 1, func(depth int, abort *int32) deadlineResult {
		time.Sleep(5 * time.Millisecond)
		return deadlineResult{dir: Up, ok: true}
	})

	elapsed := time.Since(start)
	require.True(t, ok)
	assert.Equal(t, Up, dir)
	assert.GreaterOrEqual(t, depth, 1)
	assert.Less(t, elapsed, 75*time.Millisecond)
}

func TestDeadlineDriverFallsBackWhenNeverSafe(t *testing.T) {
	deadline := time.Now().Add(20 * time.Millisecond)
	ctx, cancel := context.WithDeadline(context.Background(), deadline)
	defer cancel()

	_, _, ok := runDeadlineDriver(ctx, deadline, 1, func(depth int, abort *int32) deadlineResult {
		return deadlineResult{ok: false}
	})
	assert.False(t, ok)
}

func TestDeadlineDriverStopsOnOverrunEstimate(t *testing.T) {
	deadline := time.Now().Add(30 * time.Millisecond)
	ctx, cancel := context.WithDeadline(context.Background(), deadline)
	defer cancel()

	calls := 0
	dir, _, ok := runDeadlineDriver(ctx, deadline, 4, func(depth int, abort *int32) deadlineResult {
		calls++
		time.Sleep(15 * time.Millisecond) // 15*3*4 = 180ms, far over a 30ms budget
		return deadlineResult{dir: Right, ok: true}
	})

	require.True(t, ok)
	assert.Equal(t, Right, dir)
	assert.LessOrEqual(t, calls, 2)
}
