package main

// Snake is identified by a stable index in Game.Snakes (its id in [0,N)) and
// an external string ID carried through from the Battlesnake protocol.
type Snake struct {
	ID     string
	Health int
	Body   []Vec2D // head-first
}

// Head returns the snake's head cell. Body is never empty for a live snake.
func (s Snake) Head() Vec2D {
	return s.Body[0]
}

// Neck returns the cell behind the head, or the head itself for a
// length-1 snake (no neck to avoid).
func (s Snake) Neck() Vec2D {
	if len(s.Body) < 2 {
		return s.Body[0]
	}
	return s.Body[1]
}

// Dead reports whether the snake has been eliminated. Dead snakes keep their
// slot (and id) so indices stay stable across a step, per the spec's
// lifecycle rule.
func (s Snake) Dead() bool {
	return s.Health <= 0 || len(s.Body) == 0
}

// Length is the live body length, 0 for a dead snake.
func (s Snake) Length() int {
	return len(s.Body)
}

func (s Snake) clone() Snake {
	body := make([]Vec2D, len(s.Body))
	copy(body, s.Body)
	return Snake{ID: s.ID, Health: s.Health, Body: body}
}

// Outcome classifies a Game's terminal status.
type Outcome struct {
	Kind   OutcomeKind
	Winner int // valid only when Kind == OutcomeWinner
}

type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeWinner
	OutcomeMatch
)

var NoneOutcome = Outcome{Kind: OutcomeNone}
var MatchOutcome = Outcome{Kind: OutcomeMatch}

func WinnerOutcome(id int) Outcome {
	return Outcome{Kind: OutcomeWinner, Winner: id}
}

// Game is a complete, deterministic board state: snakes indexed by stable
// id, food, hazards, and a turn counter. It is cloned freely by the search;
// clones share no backing arrays between Game instances.
type Game struct {
	Width, Height int
	Snakes        []Snake
	Food          []Vec2D
	Hazards       []Vec2D
	Turn          int

	// HazardDamage is the extra per-tick health loss for a head on a hazard
	// cell, configurable per ruleset (default 15, the "royale" rate).
	HazardDamage int
}

// NewGame constructs a Game from explicit components, as the constructor
// named in the spec (`new(w, h, snakes, food, hazards)`).
func NewGame(width, height int, snakes []Snake, food, hazards []Vec2D) *Game {
	return &Game{
		Width:        width,
		Height:       height,
		Snakes:       snakes,
		Food:         food,
		Hazards:      hazards,
		HazardDamage: 15,
	}
}

// Clone returns a deep copy of g. Bodies, food, and hazards are copied into
// fresh backing arrays so a clone can be mutated without aliasing g.
func (g *Game) Clone() *Game {
	snakes := make([]Snake, len(g.Snakes))
	for i, s := range g.Snakes {
		snakes[i] = s.clone()
	}
	return &Game{
		Width:        g.Width,
		Height:       g.Height,
		Snakes:       snakes,
		Food:         append([]Vec2D(nil), g.Food...),
		Hazards:      append([]Vec2D(nil), g.Hazards...),
		Turn:         g.Turn,
		HazardDamage: g.HazardDamage,
	}
}

// SnakeIsAlive reports whether the snake at id is alive; out-of-range ids
// are treated as dead.
func (g *Game) SnakeIsAlive(id int) bool {
	if id < 0 || id >= len(g.Snakes) {
		return false
	}
	return !g.Snakes[id].Dead()
}

func (g *Game) liveCount() int {
	n := 0
	for _, s := range g.Snakes {
		if !s.Dead() {
			n++
		}
	}
	return n
}

// Outcome classifies the current state. Snake 0 winning solo is reported as
// Winner(0) like any other winner; the spec calls this out explicitly
// because snake 0 is always "you".
func (g *Game) Outcome() Outcome {
	var soleSurvivor = -1
	alive := 0
	for i, s := range g.Snakes {
		if !s.Dead() {
			alive++
			soleSurvivor = i
		}
	}
	switch alive {
	case 0:
		return MatchOutcome
	case 1:
		return WinnerOutcome(soleSurvivor)
	default:
		return NoneOutcome
	}
}

// isLethalMove reports whether moving snake i in direction d is provably
// lethal given the *pre-tick* board: off-board, or onto a non-tail body cell
// of any currently-live snake. It is a conservative, cheap oracle used for
// pruning; it is never required to be exhaustive; the simulator still
// handles an illegal move by killing the snake in step().
func (g *Game) isLethalMove(i int, d Direction) bool {
	s := g.Snakes[i]
	head := s.Head()
	if len(s.Body) > 1 {
		d = clampNeck(d, directionTo(head, s.Neck()))
	}
	next := head.Apply(d)
	if next.X < 0 || next.X >= g.Width || next.Y < 0 || next.Y >= g.Height {
		return true
	}
	for _, other := range g.Snakes {
		if other.Dead() {
			continue
		}
		body := other.Body
		for k, part := range body {
			if part != next {
				continue
			}
			isTail := k == len(body)-1
			if isTail {
				continue // tail is vacating; not provably lethal
			}
			return true
		}
	}
	return false
}

// Snapshot builds a compact Grid view of g: every live body cell labeled
// with its snake id, food and hazard cells labeled accordingly. Used for
// debug logging and as the cheap reference occupancy count the flood-fill
// partition invariant is checked against.
func (g *Game) Snapshot() *Grid {
	grid := NewGrid(g.Width, g.Height)
	grid.FillBodies(g.Snakes, g.Food, g.Hazards)
	return grid
}

func directionTo(from, to Vec2D) Direction {
	for _, d := range AllDirections {
		if from.Apply(d) == to {
			return d
		}
	}
	return Unset
}

// ValidMoves returns the directions for snake i that are not the neck
// direction and are not provably lethal against the current snapshot. It
// never returns more than the 3 non-neck directions, and may return an
// empty slice if every move is lethal (a forced death).
func (g *Game) ValidMoves(i int) []Direction {
	s := g.Snakes[i]
	var neckDir Direction = Unset
	if len(s.Body) > 1 {
		neckDir = directionTo(s.Head(), s.Neck())
	}
	var out []Direction
	for _, d := range AllDirections {
		if d == neckDir {
			continue
		}
		if !g.isLethalMove(i, d) {
			out = append(out, d)
		}
	}
	return out
}

// Move is one Direction per snake, indexed in Game.Snakes order. Dead
// snakes' entries are ignored.
type Move []Direction

// Step advances the game by exactly one tick under the official
// simultaneous-move rules. moves must have one entry per snake in
// Game.Snakes (including dead ones, whose entries are ignored) -- a
// mismatched length is a ProgrammerError, never a recoverable condition.
func (g *Game) Step(moves Move) {
	if len(moves) != len(g.Snakes) {
		panic(&ProgrammerError{Msg: "step: move count does not match snake count"})
	}

	// 1. Resolve neck-clamping and move every live snake's head, simultaneously,
	// off the pre-tick snapshot.
	for i := range g.Snakes {
		s := &g.Snakes[i]
		if s.Dead() {
			continue
		}
		move := moves[i]
		if len(s.Body) > 1 {
			neckDir := directionTo(s.Head(), s.Neck())
			move = clampNeck(move, neckDir)
		}
		newHead := s.Head().Apply(move)
		s.Body = append([]Vec2D{newHead}, s.Body...)
	}

	// 2/3. Health, hazard damage, food.
	hazardSet := make(map[Vec2D]bool, len(g.Hazards))
	for _, h := range g.Hazards {
		hazardSet[h] = true
	}
	eaten := make(map[int]bool)
	for i := range g.Snakes {
		s := &g.Snakes[i]
		if s.Dead() {
			continue
		}
		s.Health -= 1
		if hazardSet[s.Head()] {
			s.Health -= g.HazardDamage
		}
		if s.Health < 0 {
			s.Health = 0
		}

		ateIdx := -1
		for j, f := range g.Food {
			if !eaten[j] && f == s.Head() {
				ateIdx = j
				break
			}
		}
		if ateIdx >= 0 {
			eaten[ateIdx] = true
			s.Health = 100
			// tail stays; snake grows by 1.
		} else {
			s.Body = s.Body[:len(s.Body)-1]
		}
	}
	if len(eaten) > 0 {
		remaining := g.Food[:0:0]
		for j, f := range g.Food {
			if !eaten[j] {
				remaining = append(remaining, f)
			}
		}
		g.Food = remaining
	}

	// 4. Reconcile collisions against the post-move bodies.
	dead := make([]bool, len(g.Snakes))
	for i, s := range g.Snakes {
		if s.Dead() {
			dead[i] = true
			continue
		}
		head := s.Head()
		if head.X < 0 || head.X >= g.Width || head.Y < 0 || head.Y >= g.Height {
			dead[i] = true
		}
		if s.Health <= 0 {
			dead[i] = true
		}
	}
	// Head-to-head collisions (same cell, two distinct snakes).
	for i := range g.Snakes {
		if dead[i] {
			continue
		}
		for j := i + 1; j < len(g.Snakes); j++ {
			if dead[j] || g.Snakes[j].Dead() {
				continue
			}
			if g.Snakes[i].Head() != g.Snakes[j].Head() {
				continue
			}
			li, lj := g.Snakes[i].Length(), g.Snakes[j].Length()
			switch {
			case li > lj:
				dead[j] = true
			case lj > li:
				dead[i] = true
			default:
				dead[i] = true
				dead[j] = true
			}
		}
	}
	// Head into any living snake's body cell, including the mover's own --
	// a snake that turns back into its own non-tail segment dies same as it
	// would against another snake's body, matching isLethalMove.
	for i, s := range g.Snakes {
		if dead[i] || s.Dead() {
			continue
		}
		head := s.Head()
		for _, other := range g.Snakes {
			if other.Dead() {
				continue
			}
			for k := 1; k < len(other.Body); k++ {
				if other.Body[k] == head {
					dead[i] = true
					break
				}
			}
			if dead[i] {
				break
			}
		}
	}
	for i := range g.Snakes {
		if dead[i] {
			g.Snakes[i].Health = 0
			g.Snakes[i].Body = nil
		}
	}

	g.Turn++
}
