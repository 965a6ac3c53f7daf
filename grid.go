package main

// MaxBoardDim bounds the compact grid representation. Boards larger than
// this fall back to the random agent (the board-size guard in config.go).
const MaxBoardDim = 19

// Cell sentinel values for the compact grid, mirroring the teacher's
// i8-sentinel scheme (BOARD_FREE/BOARD_OBSTACLE/BOARD_FOOD) but widened to
// also record which snake id occupies a cell.
// Non-negative cell values are a live snake's index into Game.Snakes.
const (
	CellFree   = -1
	CellFood   = -2
	CellHazard = -3
)

// Grid is a fixed-capacity, O(1)-access board, built by Game.Snapshot for
// debug logging and occupancy counts; the simulator and the flood-fill
// analyzer do not use it. It is a plain array so cloning it is a memcpy.
type Grid struct {
	Width, Height int
	cells         [MaxBoardDim][MaxBoardDim]int
}

// NewGrid allocates a grid of the given dimensions, all cells Free.
func NewGrid(width, height int) *Grid {
	g := &Grid{Width: width, Height: height}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[y][x] = CellFree
		}
	}
	return g
}

// Has reports whether p lies within the board bounds.
func (g *Grid) Has(p Vec2D) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At reads the cell at p. Callers must check Has first for out-of-board
// points.
func (g *Grid) At(p Vec2D) int {
	return g.cells[p.Y][p.X]
}

// Set writes the cell at p.
func (g *Grid) Set(p Vec2D, v int) {
	g.cells[p.Y][p.X] = v
}

// Reset clears every cell back to Free without reallocating.
func (g *Grid) Reset() {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.cells[y][x] = CellFree
		}
	}
}

// FillBodies marks every live snake's body cell with its snake id, food
// cells with CellFood, and hazard cells with CellHazard. Tail cells are
// included; callers that want the "tail about to move" model should pop the
// tail segment before calling FillBodies.
func (g *Grid) FillBodies(snakes []Snake, food, hazards []Vec2D) {
	g.Reset()
	for _, h := range hazards {
		if g.Has(h) {
			g.Set(h, CellHazard)
		}
	}
	for _, f := range food {
		if g.Has(f) {
			g.Set(f, CellFood)
		}
	}
	for i, s := range snakes {
		if s.Dead() {
			continue
		}
		for _, part := range s.Body {
			if g.Has(part) {
				g.Set(part, i)
			}
		}
	}
}

// Count returns the number of cells equal to v.
func (g *Grid) Count(v int) int {
	n := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x] == v {
				n++
			}
		}
	}
	return n
}

// OccupiedCount returns the number of non-free cells (bodies, food, and
// hazards combined). On a board with no food or hazards this is the
// body-cell count the flood-fill partition invariant checks against.
func (g *Grid) OccupiedCount() int {
	return g.Width*g.Height - g.Count(CellFree)
}
