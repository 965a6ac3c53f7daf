package main

import "golang.org/x/sync/errgroup"

// Evaluator scores a terminal or depth-exhausted Game from snake 0's
// perspective. TreeEvaluator satisfies it; FloodEvaluator, which returns a
// plain float64, does not.
type Evaluator interface {
	Evaluate(g *Game, depth int) HeuristicResult
}

// MaxN runs a simultaneous-move Max-N search from the root position to the
// given ply depth, returning one HeuristicResult per direction snake 0 could
// take at the root: unreachable directions (the neck, or a provably lethal
// move) are min-sentineled so they are never chosen ahead of a legal one.
//
// Every joint move of the live snakes is expanded at each node, and each
// node keeps the child result that is best for snake 0. Unlike the
// teacher's MaxNSearch, which tracked a full per-snake utility vector
// through the whole tree, only snake 0's HeuristicResult is computed, so
// enemy snakes are not modelled as maximizing scores of their own: a root
// direction's value is the best outcome for snake 0 over every combination
// of enemy replies.
func MaxN(root *Game, depth int, eval Evaluator) [4]HeuristicResult {
	var out [4]HeuristicResult
	rootTurn := root.Turn

	rootMoves := root.ValidMoves(0)
	validAtRoot := make(map[Direction]bool, len(rootMoves))
	for _, d := range rootMoves {
		validAtRoot[d] = true
	}

	for i, dir := range AllDirections {
		if !validAtRoot[dir] {
			out[i] = minHeuristicResult()
			continue
		}
		moves := rootJointMoves(root, dir)
		best := minHeuristicResult()
		for _, m := range moves {
			child := root.Clone()
			child.Step(m)
			v := search(child, depth-1, rootTurn, eval)
			if best.Less(v) {
				best = v
			}
		}
		out[i] = best
	}
	return out
}

// MaxNAsync behaves like MaxN but fans the four root branches out across
// goroutines, each against its own Game clone so no mutable state is shared.
// eval must be a factory so each goroutine gets a FloodFill buffer it does
// not contend over.
func MaxNAsync(root *Game, depth int, newEval func() Evaluator) [4]HeuristicResult {
	var out [4]HeuristicResult
	rootTurn := root.Turn

	rootMoves := root.ValidMoves(0)
	validAtRoot := make(map[Direction]bool, len(rootMoves))
	for _, d := range rootMoves {
		validAtRoot[d] = true
	}

	var g errgroup.Group
	for i, dir := range AllDirections {
		i, dir := i, dir
		if !validAtRoot[dir] {
			out[i] = minHeuristicResult()
			continue
		}
		g.Go(func() error {
			eval := newEval()
			moves := rootJointMoves(root, dir)
			best := minHeuristicResult()
			for _, m := range moves {
				child := root.Clone()
				child.Step(m)
				v := search(child, depth-1, rootTurn, eval)
				if best.Less(v) {
					best = v
				}
			}
			out[i] = best
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// search explores the tree below one root branch, generating the cartesian
// product of every live snake's candidate moves at each node (the
// teacher's generateJointMoves/cartesianProduct pattern) and, for each
// resulting child, keeping only the outcome that is best for snake 0.
// Every legal enemy reply is explored, but the node keeps the maximum over
// them for snake 0; no enemy is treated as a minimizer or as maximizing a
// score of its own. Leaves are evaluated at their game turn.
func search(g *Game, depth int, rootTurn int, eval Evaluator) HeuristicResult {
	if depth <= 0 {
		return eval.Evaluate(g, g.Turn)
	}
	if outcome := g.Outcome(); outcome.Kind != OutcomeNone {
		return eval.Evaluate(g, g.Turn)
	}

	jointMoves := jointMovesFor(g)
	best := minHeuristicResult()
	for _, m := range jointMoves {
		child := g.Clone()
		child.Step(m)
		v := search(child, depth-1, rootTurn, eval)
		if best.Less(v) {
			best = v
		}
	}
	if len(jointMoves) == 0 {
		return eval.Evaluate(g, g.Turn)
	}
	return best
}

// jointMovesFor generates the cartesian product of every live snake's legal
// moves at g, falling back to every direction for a snake with no safe
// move (a forced death still has to pick something to step with).
func jointMovesFor(g *Game) []Move {
	perSnake := make([][]Direction, len(g.Snakes))
	for i, s := range g.Snakes {
		if s.Dead() {
			perSnake[i] = []Direction{Unset}
			continue
		}
		moves := g.ValidMoves(i)
		if len(moves) == 0 {
			moves = AllDirections
		}
		perSnake[i] = moves
	}
	return cartesianMoves(perSnake)
}

// rootJointMoves generates the cartesian product of every live snake's
// moves at the root, with snake 0 fixed to dir.
func rootJointMoves(g *Game, dir Direction) []Move {
	perSnake := make([][]Direction, len(g.Snakes))
	for i, s := range g.Snakes {
		if i == 0 {
			perSnake[i] = []Direction{dir}
			continue
		}
		if s.Dead() {
			perSnake[i] = []Direction{Unset}
			continue
		}
		moves := g.ValidMoves(i)
		if len(moves) == 0 {
			moves = AllDirections
		}
		perSnake[i] = moves
	}
	return cartesianMoves(perSnake)
}

func cartesianMoves(perSnake [][]Direction) []Move {
	result := []Move{{}}
	for _, options := range perSnake {
		next := make([]Move, 0, len(result)*len(options))
		for _, prefix := range result {
			for _, d := range options {
				m := make(Move, len(prefix), len(prefix)+1)
				copy(m, prefix)
				next = append(next, append(m, d))
			}
		}
		result = next
	}
	return result
}

// ArgMax returns the index of the largest HeuristicResult by Total, and
// false if every entry ties at the minimum sentinel (no safe root move).
func ArgMax(results [4]HeuristicResult) (Direction, bool) {
	best := -1
	for i, r := range results {
		if best == -1 || results[best].Less(r) {
			best = i
		}
	}
	if best == -1 || results[best].Total() == minHeuristicResult().Total() {
		return Unset, false
	}
	return AllDirections[best], true
}
