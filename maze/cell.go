package maze

import "slices"

// Cell represents a single cell in a maze grid.
// Only the right and bottom walls are stored on a cell. Its left and top
// walls are owned by the neighbouring cells, so every wall exists once.
type Cell struct {
	// HasBorderRight indicates whether there is a wall on the right side of the cell.
	HasBorderRight bool
	// HasBorderBottom indicates whether there is a wall on the bottom side of the cell.
	HasBorderBottom bool
	// Neighbours lists the indices of the cells reachable from this cell
	// through a removed wall.
	Neighbours []int
}

// newWalledCell returns a cell with both owned walls present.
func newWalledCell() Cell {
	return Cell{
		HasBorderRight:  true,
		HasBorderBottom: true,
	}
}

// clone returns a copy of the cell that does not share its neighbour list.
func (c Cell) clone() Cell {
	c.Neighbours = slices.Clone(c.Neighbours)
	return c
}
