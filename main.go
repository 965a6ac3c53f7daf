package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"time"
)

func main() {
	handler := NewGoogleCloudHandler(os.Stdout, slog.LevelInfo)
	slog.SetDefault(slog.New(handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	config := DefaultAgentConfig()
	if raw := os.Getenv("AGENT_CONFIG"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &config); err != nil {
			slog.Error("invalid AGENT_CONFIG, falling back to default", "error", err.Error())
			config = DefaultAgentConfig()
		}
	}

	srv := &server{config: config}

	http.HandleFunc("/", srv.handleIndex)
	http.HandleFunc("/start", srv.handleStart)
	http.HandleFunc("/move", srv.handleMove)
	http.HandleFunc("/end", srv.handleEnd)

	slog.Info("starting maxnsnake", "port", port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}

// server holds the agent configuration every handler shares. It carries no
// per-game state: each /move request is decoded into a fresh Game, so the
// search never depends on anything the process remembers between turns.
type server struct {
	config AgentConfig
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"apiversion": "1",
		"author":     "maxnsnake",
		"color":      "#205070",
		"head":       "default",
		"tail":       "default",
		"version":    "0.1.0",
	})
}

func (s *server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	slog.Info("game started", "game_id", req.Game.ID, "you", req.You.ID)
	writeJSON(w, map[string]string{})
}

func (s *server) handleMove(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("malformed move request", "error", err.Error())
		writeJSON(w, MoveResponse{Move: AllDirections[rand.Intn(len(AllDirections))].String()})
		return
	}

	g, err := ParseRequest(&req)
	if err != nil {
		slog.Error("failed to parse turn request", "error", err.Error(), "game_id", req.Game.ID)
		writeJSON(w, MoveResponse{Move: AllDirections[rand.Intn(len(AllDirections))].String()})
		return
	}

	timeoutMS := req.Game.Timeout
	if timeoutMS <= 0 {
		timeoutMS = 500
	}
	// 100ms safety margin for network/serialization overhead, as the
	// teacher's handleMove reserved.
	budget := time.Duration(timeoutMS-100) * time.Millisecond
	if budget <= 0 {
		budget = 10 * time.Millisecond
	}
	deadline := start.Add(budget)

	ctx, cancel := context.WithDeadline(context.Background(), deadline)
	defer cancel()

	agent := s.config.CreateAgent(g.Width, g.Height)
	resp := agent.Step(ctx, g, deadline)
	writeJSON(w, resp)

	slog.Info("move processed",
		"snake_id", req.You.ID,
		moveLogGroup(req.Game.ID, req.Turn, resp.Move, resp.Depth, time.Since(start)),
	)
	if g.Width <= MaxBoardDim && g.Height <= MaxBoardDim {
		slog.Debug("board snapshot", "game_id", req.Game.ID, "occupied", g.Snapshot().OccupiedCount())
	}
}

func (s *server) handleEnd(w http.ResponseWriter, r *http.Request) {
	var req TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	slog.Info("game ended", "game_id", req.Game.ID, "outcome", describeGameOutcome(&req))
	writeJSON(w, map[string]string{})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err.Error())
	}
}

// describeGameOutcome gives the /end log line a human-readable summary,
// adapted from the teacher's describeGameOutcome.
func describeGameOutcome(req *TurnRequest) string {
	you := req.You
	if you.Body[0].X < 0 || you.Body[0].X >= req.Board.Width ||
		you.Body[0].Y < 0 || you.Body[0].Y >= req.Board.Height {
		return "lost by crashing into a wall"
	}
	for _, snake := range req.Board.Snakes {
		if snake.ID == you.ID {
			continue
		}
		for _, segment := range snake.Body {
			if you.Body[0] == segment {
				return "lost by colliding with " + snake.Name
			}
		}
	}
	if you.Health <= 0 {
		return "lost by starving"
	}
	livingOthers := 0
	for _, snake := range req.Board.Snakes {
		if snake.ID != you.ID && snake.Health > 0 {
			livingOthers++
		}
	}
	if livingOthers == 0 {
		return "won"
	}
	return "game ended"
}
