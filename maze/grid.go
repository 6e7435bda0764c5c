/*
Package maze provides tools for creating and solving square perfect mazes.

It defines the `Grid` structure, a flat row-major slice of `Cell` objects that
store their right and bottom walls together with the indices of the cells they
are connected to.

The package includes random maze generation with an iterative backtracker,
breadth-first path finding from the entry cell to the exit cell, spanning tree
validation and ASCII visualization of the maze.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

// MaxWidth is the largest number of cells a grid side may have.
const MaxWidth = 1024

var (
	ErrInvalidDimension = errors.New("invalid maze dimension")
	ErrInvalidCellIndex = errors.New("cell index out of range")
)

// Grid represents a square maze of width*width cells stored in row-major order.
type Grid struct {
	width     int    // Number of cells on each side
	cells     []Cell // Cells indexed by row*width + col
	generated bool   // Set once a generator carved the grid
}

// NewGrid creates a grid with every wall present and no connections.
func NewGrid(width int) (*Grid, error) {
	if width < 1 || width > MaxWidth {
		return nil, fmt.Errorf("%w: width must be between 1 and %d, got %d", ErrInvalidDimension, MaxWidth, width)
	}

	cells := make([]Cell, width*width)
	for i := range cells {
		cells[i] = newWalledCell()
	}

	return &Grid{
		width: width,
		cells: cells,
	}, nil
}

// Width returns the number of cells on each side of the grid.
func (g *Grid) Width() int {
	return g.width
}

// Len returns the total number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Entry returns the index of the cell where the maze starts.
func (g *Grid) Entry() int {
	return 0
}

// Exit returns the index of the cell where the maze ends.
func (g *Grid) Exit() int {
	return len(g.cells) - 1
}

// Generated reports whether the grid has already been carved.
func (g *Grid) Generated() bool {
	return g.generated
}

// Cell returns a copy of the cell at the given index.
func (g *Grid) Cell(index int) (Cell, error) {
	if !g.inBound(index) {
		return Cell{}, fmt.Errorf("%w: %d", ErrInvalidCellIndex, index)
	}
	return g.cells[index].clone(), nil
}

// Cells returns a copy of every cell in row-major order.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, len(g.cells))
	for i, c := range g.cells {
		cells[i] = c.clone()
	}
	return cells
}

// Position converts a linear index into its row and column.
func (g *Grid) Position(index int) (row, col int) {
	return index / g.width, index % g.width
}

// Index converts a row and column into a linear index.
func (g *Grid) Index(row, col int) int {
	return row*g.width + col
}

// EdgeCount returns the number of undirected connections between cells.
func (g *Grid) EdgeCount() int {
	total := 0
	for _, c := range g.cells {
		total += len(c.Neighbours)
	}
	return total / 2
}

func (g *Grid) inBound(index int) bool {
	return index >= 0 && index < len(g.cells)
}

// NeighborOffsetIsValid reports whether candidate is a 4-connected neighbour
// of index on a grid of the given width. Offsets of one are rejected when
// they would wrap onto another row.
func NeighborOffsetIsValid(index, candidate, width int) bool {
	if width < 1 || candidate < 0 || candidate >= width*width {
		return false
	}

	switch candidate - index {
	case 1:
		return index%width+1 < width
	case -1:
		return index%width > 0
	case width, -width:
		return true
	default:
		return false
	}
}

// UpdateBorders removes the wall between two adjacent cells.
// The wall is cleared on the cell that owns it, which is the left cell for a
// horizontal move and the upper cell for a vertical move. Non-adjacent or
// out-of-range pairs leave the grid untouched.
func (g *Grid) UpdateBorders(from, to int) {
	if !g.inBound(from) || !g.inBound(to) {
		return
	}

	switch from - to {
	case -g.width:
		// Moved down.
		g.cells[from].HasBorderBottom = false
	case g.width:
		// Moved up.
		g.cells[to].HasBorderBottom = false
	case -1:
		// Moved right.
		g.cells[from].HasBorderRight = false
	case 1:
		// Moved left.
		g.cells[to].HasBorderRight = false
	}
}

// connect records a tree edge between two cells and removes the wall between them.
func (g *Grid) connect(from, to int) {
	g.UpdateBorders(from, to)
	g.cells[from].Neighbours = append(g.cells[from].Neighbours, to)
	g.cells[to].Neighbours = append(g.cells[to].Neighbours, from)
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", g.width) + "\n")

	for row := 0; row < g.width; row++ {
		cellRow := "|"
		wallRow := "+"
		for col := 0; col < g.width; col++ {
			cell := g.cells[g.Index(row, col)]

			if cell.HasBorderRight {
				cellRow += "   |"
			} else {
				cellRow += "    "
			}

			if cell.HasBorderBottom {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output.WriteString(cellRow + "\n")
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}
