package main

// WallModel selects how the flood-fill analyzer treats a snake body cell as
// it ages: the spec requires both to be parameterizable (§4.3), while the
// search hot path defaults to the cheaper static model.
type WallModel int

const (
	// WallStatic treats every current body cell as a permanent wall for the
	// whole flood fill. Cheaper, and what the Max-N search uses.
	WallStatic WallModel = iota
	// WallDissolving treats a body cell as a wall only until the tick on
	// which that segment will have left the board: a segment at index k
	// from the head dissolves after (length-k) ticks, so the tail goes first.
	WallDissolving
)

const (
	ownerUnowned   = -1
	ownerContested = -2
	ownerWall      = -3
)

// FloodFill is a reusable multi-source BFS analyzer. Buffers are owned by
// the evaluator that creates one and reused across leaves, per the spec's
// ownership rule.
type FloodFill struct {
	width, height int
	owner         [MaxBoardDim][MaxBoardDim]int
	dist          [MaxBoardDim][MaxBoardDim]int
	Model         WallModel
}

// NewFloodFill allocates an analyzer for a board of the given size.
func NewFloodFill(width, height int) *FloodFill {
	return &FloodFill{width: width, height: height}
}

type floodSeed struct {
	owner  int
	length int
	p      Vec2D
}

// isWall reports whether cell p, occupied by a body segment `tailDist` steps
// from that snake's tail (0 = tail itself), blocks a BFS frontier arriving
// at `distance` ticks from its source head.
func (f *FloodFill) isWall(model WallModel, tailDist, distance int) bool {
	if model == WallStatic {
		return true
	}
	return distance < tailDist+1
}

// FloodSnakes runs the multi-source BFS from every live snake's head,
// labeling each reachable cell with the id of the first (and, on a
// same-step tie, longest) snake to reach it. youID identifies which snake's
// cells CountSpace(true) will later count; the flood fill itself treats all
// snakes symmetrically.
func (f *FloodFill) FloodSnakes(g *Game, youID int) {
	f.width, f.height = g.Width, g.Height
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			f.owner[y][x] = ownerUnowned
			f.dist[y][x] = -1
		}
	}

	// Precompute, for every occupied cell, which tick it stops being a wall
	// under the dissolving model: tailDist = distance from the tail (0 for
	// the tail segment itself). Under the static model every body cell is a
	// permanent wall. Mark walls before seeding heads, so a wall-marked head
	// cell gets overwritten by its own seed below.
	tailDist := map[Vec2D]int{}
	for _, s := range g.Snakes {
		if s.Dead() {
			continue
		}
		n := len(s.Body)
		for k, p := range s.Body {
			d := n - 1 - k
			if f.Model == WallStatic {
				d = 1 << 30
			}
			if existing, ok := tailDist[p]; !ok || d < existing {
				tailDist[p] = d
			}
			f.owner[p.Y][p.X] = ownerWall
		}
	}

	queue := make([]floodSeed, 0, f.width*f.height)
	for i, s := range g.Snakes {
		if s.Dead() {
			continue
		}
		head := s.Head()
		queue = append(queue, floodSeed{owner: i, length: s.Length(), p: head})
		f.owner[head.Y][head.X] = i
		f.dist[head.Y][head.X] = 0
	}

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		d := f.dist[cur.p.Y][cur.p.X]
		for _, dir := range AllDirections {
			next := cur.p.Apply(dir)
			if next.X < 0 || next.X >= f.width || next.Y < 0 || next.Y >= f.height {
				continue
			}
			nd := d + 1
			if td, occupied := tailDist[next]; occupied && f.isWall(f.Model, td, nd) {
				continue
			}
			existingDist := f.dist[next.Y][next.X]
			if existingDist == -1 {
				f.owner[next.Y][next.X] = cur.owner
				f.dist[next.Y][next.X] = nd
				queue = append(queue, floodSeed{owner: cur.owner, length: cur.length, p: next})
				continue
			}
			if existingDist != nd {
				continue // already settled at a strictly shorter distance
			}
			// Tie at the same distance: longer snake wins, equal length is
			// contested.
			existingOwner := f.owner[next.Y][next.X]
			if existingOwner == cur.owner || existingOwner == ownerContested {
				continue
			}
			existingLength := f.ownerLengthAt(g, existingOwner)
			switch {
			case cur.length > existingLength:
				f.owner[next.Y][next.X] = cur.owner
				queue = append(queue, floodSeed{owner: cur.owner, length: cur.length, p: next})
			case cur.length == existingLength:
				f.owner[next.Y][next.X] = ownerContested
			}
		}
	}

	// Heads are body cells too: once the BFS no longer needs them as seeds,
	// label them as walls so CountSpace counts free cells only.
	for _, s := range g.Snakes {
		if s.Dead() {
			continue
		}
		head := s.Head()
		f.owner[head.Y][head.X] = ownerWall
	}
}

func (f *FloodFill) ownerLengthAt(g *Game, owner int) int {
	if owner < 0 || owner >= len(g.Snakes) {
		return 0
	}
	return g.Snakes[owner].Length()
}

// IsYou reports whether cell p is owned by youID.
func (f *FloodFill) IsYou(p Vec2D, youID int) bool {
	return f.owner[p.Y][p.X] == youID
}

// CountSpace counts the cells owned by id.
func (f *FloodFill) CountSpace(id int) int {
	n := 0
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if f.owner[y][x] == id {
				n++
			}
		}
	}
	return n
}

// CountContested counts cells reached simultaneously by two or more
// equal-length snakes.
func (f *FloodFill) CountContested() int {
	return f.CountSpace(ownerContested)
}

// CountUnowned counts free cells that no BFS frontier reached at all. Wall
// (body) cells are not counted.
func (f *FloodFill) CountUnowned() int {
	return f.CountSpace(ownerUnowned)
}
