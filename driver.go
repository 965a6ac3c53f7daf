package main

import (
	"context"
	"sync/atomic"
	"time"
)

// deadlineResult is one iterative-deepening probe's outcome: the direction
// chosen at that depth, or ok=false if the depth produced no safe move.
type deadlineResult struct {
	dir   Direction
	ok    bool
	depth int
}

// runDeadlineDriver performs iterative deepening from depth 1, calling
// searchAtDepth for increasing depths on a background goroutine and keeping
// the best (deepest completed) result, the way the teacher's TreeAgent.step
// raced a worker goroutine against an mpsc channel with a recv_timeout. Go's
// context.Context plus a buffered channel and an atomic abort flag replace
// the channel-drop idiom: the worker checks abort before starting each new
// depth, and searchAtDepth receives the flag so it can return early from a
// depth in progress, since Go has no way to force-kill a goroutine. The
// worker closes the channel when it stops, so the driver returns as soon as
// deepening ends rather than waiting out the deadline.
//
// It stops deepening once a depth's own search time, times 3, times the
// live snake count, would exceed the remaining budget -- the same overrun
// estimate the teacher used to decide whether one more ply is affordable.
func runDeadlineDriver(ctx context.Context, deadline time.Time, liveSnakes int, searchAtDepth func(depth int, abort *int32) deadlineResult) (Direction, int, bool) {
	results := make(chan deadlineResult, 1)
	var abort int32

	go func() {
		defer close(results)
		for depth := 1; depth < 64; depth++ {
			if atomic.LoadInt32(&abort) != 0 {
				return
			}
			moveStart := time.Now()
			r := searchAtDepth(depth, &abort)
			r.depth = depth
			moveTime := time.Since(moveStart)

			select {
			case results <- r:
			default:
				// drain the stale result so the freshest one is visible
				select {
				case <-results:
				default:
				}
				results <- r
			}

			if !r.ok {
				return
			}
			remaining := time.Until(deadline)
			if moveTime*3*time.Duration(liveSnakes) > remaining {
				return
			}
		}
	}()

	deadlineTimer := time.NewTimer(time.Until(deadline))
	defer deadlineTimer.Stop()

	var best deadlineResult
	haveBest := false
loop:
	for {
		select {
		case r, open := <-results:
			if !open {
				break loop
			}
			best, haveBest = r, true
		case <-deadlineTimer.C:
			break loop
		case <-ctx.Done():
			break loop
		}
	}
	atomic.StoreInt32(&abort, 1)

	if !haveBest || !best.ok {
		return Unset, 0, false
	}
	return best.dir, best.depth, true
}
