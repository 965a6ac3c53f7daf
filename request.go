package main

// TurnRequest is the external Battlesnake-protocol JSON shape, adapted from
// the teacher's api.go (BattleSnakeGame/Board/Snake/Point) and renamed to
// this module's vocabulary.
type TurnRequest struct {
	Game  GameMeta  `json:"game"`
	Turn  int       `json:"turn"`
	Board BoardJSON `json:"board"`
	You   SnakeJSON `json:"you"`
}

type GameMeta struct {
	ID      string      `json:"id"`
	Ruleset RulesetJSON `json:"ruleset"`
	Timeout int         `json:"timeout"`
}

type RulesetJSON struct {
	Name     string       `json:"name"`
	Version  string       `json:"version"`
	Settings SettingsJSON `json:"settings"`
}

type SettingsJSON struct {
	FoodSpawnChance     int `json:"foodSpawnChance"`
	MinimumFood         int `json:"minimumFood"`
	HazardDamagePerTurn int `json:"hazardDamagePerTurn"`
}

type BoardJSON struct {
	Height  int         `json:"height"`
	Width   int         `json:"width"`
	Food    []Vec2D     `json:"food"`
	Hazards []Vec2D     `json:"hazards"`
	Snakes  []SnakeJSON `json:"snakes"`
}

type SnakeJSON struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Health int     `json:"health"`
	Body   []Vec2D `json:"body"`
	Head   Vec2D   `json:"head"`
	Shout  string  `json:"shout"`
}

// MoveResponse is the Battlesnake move reply. Depth is the search ply the
// answering agent actually reached (0 for agents that don't search); it is
// internal-only observability, never part of the wire contract.
type MoveResponse struct {
	Move  string `json:"move"`
	Shout string `json:"shout,omitempty"`
	Depth int    `json:"-"`
}

// ParseRequest adapts a decoded TurnRequest into a Game, placing `you` at
// index 0 and preserving the relative order of every other snake, per the
// spec's external-interface contract. It is a ParseError, not a panic, on a
// structurally invalid request: `you` absent from board.snakes, a duplicate
// snake id, or an empty body for any snake.
//
// Boards larger than MaxBoardDim are accepted here: Game carries no fixed-size
// array, so parsing a large board is perfectly well-defined. The oversize
// guard lives at AgentConfig.CreateAgent instead, which routes such a board
// to the random agent before any Grid or FloodFill (both MaxBoardDim-capped)
// ever gets constructed from it.
func ParseRequest(req *TurnRequest) (*Game, error) {
	if req.Board.Width <= 0 || req.Board.Height <= 0 {
		return nil, &ParseError{Reason: "board has non-positive dimensions"}
	}

	seen := make(map[string]bool, len(req.Board.Snakes))
	youIdx := -1
	for i, s := range req.Board.Snakes {
		if len(s.Body) == 0 {
			return nil, &ParseError{Reason: "snake " + s.ID + " has an empty body"}
		}
		if seen[s.ID] {
			return nil, &ParseError{Reason: "duplicate snake id " + s.ID}
		}
		seen[s.ID] = true
		if s.ID == req.You.ID {
			youIdx = i
		}
	}
	if youIdx == -1 {
		return nil, &ParseError{Reason: "you id not present in board.snakes"}
	}

	ordered := make([]SnakeJSON, 0, len(req.Board.Snakes))
	ordered = append(ordered, req.Board.Snakes[youIdx])
	for i, s := range req.Board.Snakes {
		if i != youIdx {
			ordered = append(ordered, s)
		}
	}

	snakes := make([]Snake, len(ordered))
	for i, s := range ordered {
		body := make([]Vec2D, len(s.Body))
		copy(body, s.Body)
		snakes[i] = Snake{ID: s.ID, Health: s.Health, Body: body}
	}

	hazardDamage := 15
	if req.Game.Ruleset.Settings.HazardDamagePerTurn > 0 {
		hazardDamage = req.Game.Ruleset.Settings.HazardDamagePerTurn
	}

	game := NewGame(req.Board.Width, req.Board.Height, snakes,
		append([]Vec2D(nil), req.Board.Food...),
		append([]Vec2D(nil), req.Board.Hazards...))
	game.Turn = req.Turn
	game.HazardDamage = hazardDamage
	return game, nil
}
