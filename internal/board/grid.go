package board

import "github.com/robalobadob/wordle/apps/duel-client/internal/game"

// Cell is one slot of a Grid. The zero value is empty and unclassified.
type Cell struct {
	Letter rune
	Mark   game.Mark
}

// Filled reports whether a letter has been written to the cell.
func (c Cell) Filled() bool { return c.Letter != 0 }

// Grid is the in-memory Surface used by the terminal front ends.
type Grid struct {
	cells      [game.Rows][game.Cols]Cell
	visibility Visibility
}

// NewGrid returns an empty, obscured grid.
func NewGrid() *Grid { return &Grid{} }

func (g *Grid) Reset(row, col int) { g.cells[row][col] = Cell{} }

func (g *Grid) Write(row, col int, letter rune, mark game.Mark) {
	g.cells[row][col] = Cell{Letter: letter, Mark: mark}
}

func (g *Grid) SetVisibility(v Visibility) { g.visibility = v }

// Cell returns the slot at (row, col).
func (g *Grid) Cell(row, col int) Cell { return g.cells[row][col] }

// Row returns a copy of one grid row.
func (g *Grid) Row(row int) [game.Cols]Cell { return g.cells[row] }

func (g *Grid) Visibility() Visibility { return g.visibility }

// FilledRows counts rows holding at least one letter.
func (g *Grid) FilledRows() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c.Filled() {
				n++
				break
			}
		}
	}
	return n
}
