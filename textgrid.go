package main

import (
	"strings"
	"unicode"
)

// ParseTextGrid builds a Game from an ASCII board fixture, the reverse of
// Render below. Conventions follow the teacher's visualizeBoard (visuals.go):
// one lowercase letter per snake body ('a' for snake 0, 'b' for snake 1...),
// the matching uppercase letter for that snake's head, '.' for an empty
// cell, 'H' for a hazard, and any other non-space, non-'.' rune ('o', '*')
// for food. Rows are given top-to-bottom (highest Y first), matching the
// on-screen layout; columns are left-to-right (X ascending). Snake bodies
// are reconstructed by walking outward from each head through adjacent
// same-letter cells, which is unambiguous for the straight-line and
// non-self-overlapping fixtures used in tests.
func ParseTextGrid(text string) (*Game, error) {
	lines := trimEmptyLines(strings.Split(text, "\n"))
	if len(lines) == 0 {
		return nil, &ParseError{Reason: "empty text grid"}
	}
	height := len(lines)
	width := 0
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}

	var food, hazards []Vec2D
	heads := map[rune]Vec2D{}
	bodyCells := map[rune][]Vec2D{}

	for row, line := range lines {
		y := height - 1 - row
		for x, r := range []rune(padRight(line, width)) {
			if r == ' ' || r == '.' {
				continue
			}
			p := Vec2D{X: x, Y: y}
			switch {
			case r == 'H':
				hazards = append(hazards, p)
			case unicode.IsUpper(r) && unicode.IsLetter(r):
				lower := unicode.ToLower(r)
				heads[lower] = p
				bodyCells[lower] = append(bodyCells[lower], p)
			case unicode.IsLower(r) && unicode.IsLetter(r):
				bodyCells[r] = append(bodyCells[r], p)
			default:
				food = append(food, p)
			}
		}
	}

	if len(heads) == 0 {
		return nil, &ParseError{Reason: "text grid has no snake head"}
	}

	var letters []rune
	for r := range heads {
		letters = append(letters, r)
	}
	sortRunes(letters)

	snakes := make([]Snake, len(letters))
	for i, r := range letters {
		body, err := orderBody(heads[r], bodyCells[r])
		if err != nil {
			return nil, err
		}
		snakes[i] = Snake{ID: string(unicode.ToUpper(r)), Health: 100, Body: body}
	}

	return NewGame(width, height, snakes, food, hazards), nil
}

// orderBody walks the body cells of one snake from its head outward through
// orthogonally-adjacent same-letter cells, producing a head-first ordering.
func orderBody(head Vec2D, cells []Vec2D) ([]Vec2D, error) {
	remaining := map[Vec2D]bool{}
	for _, c := range cells {
		remaining[c] = true
	}
	if !remaining[head] {
		return nil, &ParseError{Reason: "snake head missing from its own body cells"}
	}
	delete(remaining, head)
	ordered := []Vec2D{head}
	cur := head
	for len(remaining) > 0 {
		found := false
		for _, d := range AllDirections {
			n := cur.Apply(d)
			if remaining[n] {
				ordered = append(ordered, n)
				delete(remaining, n)
				cur = n
				found = true
				break
			}
		}
		if !found {
			// Disconnected body segment (e.g. ambiguous overlap); append in
			// any stable order rather than failing the fixture.
			for c := range remaining {
				ordered = append(ordered, c)
				delete(remaining, c)
				break
			}
		}
	}
	return ordered, nil
}

// Render prints a Game back to the ASCII convention ParseTextGrid reads,
// useful for debugging test failures.
func (g *Game) Render() string {
	var sb strings.Builder
	cell := make([][]rune, g.Height)
	for y := range cell {
		cell[y] = make([]rune, g.Width)
		for x := range cell[y] {
			cell[y][x] = '.'
		}
	}
	for _, h := range g.Hazards {
		if g.inBounds(h) {
			cell[h.Y][h.X] = 'H'
		}
	}
	for _, f := range g.Food {
		if g.inBounds(f) {
			cell[f.Y][f.X] = 'o'
		}
	}
	for i, s := range g.Snakes {
		if s.Dead() {
			continue
		}
		letter := rune('a' + i)
		for k, p := range s.Body {
			if !g.inBounds(p) {
				continue
			}
			if k == 0 {
				cell[p.Y][p.X] = unicode.ToUpper(letter)
			} else {
				cell[p.Y][p.X] = letter
			}
		}
	}
	for row := g.Height - 1; row >= 0; row-- {
		sb.WriteString(string(cell[row]))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Game) inBounds(p Vec2D) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

func trimEmptyLines(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

func sortRunes(rs []rune) {
	for i := 1; i < len(rs); i++ {
		for j := i; j > 0 && rs[j] < rs[j-1]; j-- {
			rs[j], rs[j-1] = rs[j-1], rs[j]
		}
	}
}
