package generator

import (
	"math/rand"

	"deepdelve/pkg/engine/world"
)

// Maze carves a perfect maze with a recursive backtracker at half resolution
type Maze struct{}

// NewMaze returns a maze generator
func NewMaze() *Maze {
	return &Maze{}
}

// Cell wall flags
const (
	wallTop = iota
	wallRight
	wallBottom
	wallLeft
)

type mazeCell struct {
	row, col int
	walls    [4]bool
	visited  bool
}

type mazeGrid struct {
	rows, cols int
	cells      []mazeCell
}

func newMazeGrid(rows, cols int) *mazeGrid {
	m := &mazeGrid{rows: rows, cols: cols, cells: make([]mazeCell, rows*cols)}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			m.cells[row*cols+col] = mazeCell{row: row, col: col, walls: [4]bool{true, true, true, true}}
		}
	}
	return m
}

func (m *mazeGrid) index(row, col int) int {
	if row < 0 || col < 0 || row >= m.rows || col >= m.cols {
		return -1
	}
	return row*m.cols + col
}

// unvisitedNeighbour returns a random unvisited neighbour of cell i, or -1
func (m *mazeGrid) unvisitedNeighbour(rng *rand.Rand, i int) int {
	c := m.cells[i]
	var candidates []int
	for _, n := range []int{
		m.index(c.row-1, c.col),
		m.index(c.row, c.col+1),
		m.index(c.row+1, c.col),
		m.index(c.row, c.col-1),
	} {
		if n >= 0 && !m.cells[n].visited {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) == 0 {
		return -1
	}
	return candidates[rng.Intn(len(candidates))]
}

func (m *mazeGrid) removeWalls(a, b int) {
	ca, cb := &m.cells[a], &m.cells[b]
	switch {
	case cb.col == ca.col+1:
		ca.walls[wallRight], cb.walls[wallLeft] = false, false
	case cb.col == ca.col-1:
		ca.walls[wallLeft], cb.walls[wallRight] = false, false
	case cb.row == ca.row+1:
		ca.walls[wallBottom], cb.walls[wallTop] = false, false
	case cb.row == ca.row-1:
		ca.walls[wallTop], cb.walls[wallBottom] = false, false
	}
}

// BuildInitial carves the maze and copies it into the tile grid at 2x scale
func (mz *Maze) BuildInitial(rng *rand.Rand, data *BuildData) {
	g := data.Grid
	m := newMazeGrid(g.Height/2-2, g.Width/2-2)
	if m.rows <= 0 || m.cols <= 0 {
		panic("Maze: grid too small")
	}

	current := 0
	m.cells[current].visited = true
	stack := []int{current}
	steps := 0

	for len(stack) > 0 {
		next := m.unvisitedNeighbour(rng, current)
		if next < 0 {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				current = stack[len(stack)-1]
			}
			continue
		}

		m.removeWalls(current, next)
		m.cells[next].visited = true
		stack = append(stack, next)
		current = next

		steps++
		if steps%50 == 0 {
			m.copyTo(g)
			data.TakeSnapshot()
		}
	}

	m.copyTo(g)
}

func (m *mazeGrid) copyTo(g *world.Grid) {
	for _, c := range m.cells {
		x, y := (c.col+1)*2, (c.row+1)*2
		g.SetSurface(x, y, world.Floor)
		if !c.walls[wallTop] {
			g.SetSurface(x, y-1, world.Floor)
		}
		if !c.walls[wallRight] {
			g.SetSurface(x+1, y, world.Floor)
		}
		if !c.walls[wallBottom] {
			g.SetSurface(x, y+1, world.Floor)
		}
		if !c.walls[wallLeft] {
			g.SetSurface(x-1, y, world.Floor)
		}
	}
}
