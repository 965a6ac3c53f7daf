package main

import (
	"context"
	"encoding/json"
	"time"
)

// Agent answers one turn's move given a deadline.
type Agent interface {
	Step(ctx context.Context, g *Game, deadline time.Time) MoveResponse
}

// MobilityConfig weights a one-ply agent that always takes the direction
// maximizing post-move reachable space (space_after_move), with no search
// below it. It exists as the cheapest non-random option, a stepping stone
// below the Tree and Flood agents.
type MobilityConfig struct {
	Weight float64 `json:"weight"`
}

func DefaultMobilityConfig() MobilityConfig {
	return MobilityConfig{Weight: 1.0}
}

// AgentConfig is a tagged union selecting which agent answers a turn,
// serialized the way the original Config enum was: a single JSON object
// with exactly one of the "mobility", "tree" or "flood" keys present, or the
// bare string "random" for the random agent.
type AgentConfig struct {
	Mobility *MobilityConfig `json:"mobility,omitempty"`
	Tree     *TreeConfig     `json:"tree,omitempty"`
	Flood    *FloodConfig    `json:"flood,omitempty"`
	Random   bool            `json:"random,omitempty"`
}

// DefaultAgentConfig mirrors the original default: a Tree agent with the
// tuned coefficients.
func DefaultAgentConfig() AgentConfig {
	cfg := DefaultTreeConfig()
	return AgentConfig{Tree: &cfg}
}

func (c AgentConfig) MarshalJSON() ([]byte, error) {
	switch {
	case c.Tree != nil:
		return json.Marshal(struct {
			Tree *TreeConfig `json:"tree"`
		}{c.Tree})
	case c.Flood != nil:
		return json.Marshal(struct {
			Flood *FloodConfig `json:"flood"`
		}{c.Flood})
	case c.Mobility != nil:
		return json.Marshal(struct {
			Mobility *MobilityConfig `json:"mobility"`
		}{c.Mobility})
	default:
		return []byte(`"random"`), nil
	}
}

func (c *AgentConfig) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		if asString == "random" || asString == "Random" {
			*c = AgentConfig{Random: true}
			return nil
		}
	}
	var raw struct {
		Mobility *MobilityConfig `json:"mobility"`
		Tree     *TreeConfig     `json:"tree"`
		Flood    *FloodConfig    `json:"flood"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return &ParseError{Reason: "invalid agent config: " + err.Error()}
	}
	*c = AgentConfig{Mobility: raw.Mobility, Tree: raw.Tree, Flood: raw.Flood}
	return nil
}

// CreateAgent builds the concrete Agent this config selects for a board of
// the given dimensions. A board wider or taller than MaxBoardDim always
// routes to the random agent regardless of the configured variant, since
// Grid and FloodFill are physically capped at MaxBoardDim and neither Tree
// nor Flood nor Mobility can run on a bigger board.
func (c AgentConfig) CreateAgent(width, height int) Agent {
	if width > MaxBoardDim || height > MaxBoardDim {
		return &randomStepAgent{}
	}
	switch {
	case c.Tree != nil:
		return &TreeAgent{Config: *c.Tree}
	case c.Flood != nil:
		return &FloodAgent{Config: *c.Flood}
	case c.Mobility != nil:
		return &MobilityAgent{Config: *c.Mobility}
	default:
		return &randomStepAgent{}
	}
}

type randomStepAgent struct{}

func (a *randomStepAgent) Step(ctx context.Context, g *Game, deadline time.Time) MoveResponse {
	return MoveResponse{Move: NewRandomAgent().Step(g).String()}
}

// TreeAgent runs the deadline-bounded iterative-deepening Max-N search with
// the five-component tree heuristic.
type TreeAgent struct {
	Config TreeConfig
}

func (a *TreeAgent) Step(ctx context.Context, g *Game, deadline time.Time) MoveResponse {
	dir, depth, ok := runDeadlineDriver(ctx, deadline, g.liveCount(), func(depth int, abort *int32) deadlineResult {
		eval := NewTreeEvaluator(g.Width, g.Height, g.Food, a.Config)
		results := MaxN(g, depth, eval)
		d, ok := ArgMax(results)
		return deadlineResult{dir: d, ok: ok}
	})
	if !ok {
		dir = NewRandomAgent().Step(g)
		depth = 0
	}
	return MoveResponse{Move: dir.String(), Depth: depth}
}

// FloodAgent picks the non-lethal direction with the most reachable space
// one ply out (SpaceAfterMove), with no deeper search -- the agent to reach
// for when Tree's iterative deepening can't be afforded. Config is not
// consulted: the flood heuristic's space weight and food bonus
// (FloodEvaluator) do not enter the choice.
type FloodAgent struct {
	Config FloodConfig
}

func (a *FloodAgent) Step(ctx context.Context, g *Game, deadline time.Time) MoveResponse {
	space := SpaceAfterMove(g)
	best := Unset
	bestScore := -1
	for i, dir := range AllDirections {
		if g.isLethalMove(0, dir) {
			continue
		}
		score := space[i]
		if score > bestScore {
			bestScore = score
			best = dir
		}
	}
	if best == Unset {
		return MoveResponse{Move: NewRandomAgent().Step(g).String()}
	}
	return MoveResponse{Move: best.String(), Depth: 1}
}

// MobilityAgent is the cheapest non-random option: it picks whichever valid
// direction leaves the most space one ply out, weighted by Config.Weight
// (kept for parity with the original tunable MobilityConfig; a single free
// parameter has nothing else to scale against at depth 1).
type MobilityAgent struct {
	Config MobilityConfig
}

func (a *MobilityAgent) Step(ctx context.Context, g *Game, deadline time.Time) MoveResponse {
	space := SpaceAfterMove(g)
	best := Unset
	bestScore := -1.0
	for _, dir := range g.ValidMoves(0) {
		score := float64(space[dir]) * a.Config.Weight
		if score > bestScore {
			bestScore = score
			best = dir
		}
	}
	if best == Unset {
		return MoveResponse{Move: NewRandomAgent().Step(g).String()}
	}
	return MoveResponse{Move: best.String(), Depth: 1}
}
