package maze

import (
	"errors"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

var ErrPathNotFound = errors.New("no path found")

// FindPath runs a breadth-first search over the cells' neighbour lists and
// returns the cell indices leading from entry to goal, both included.
// It returns ErrPathNotFound when goal is not reachable from entry.
func FindPath(cells []Cell, entry, goal int) ([]int, error) {
	inBound := func(i int) bool { return i >= 0 && i < len(cells) }
	if !inBound(entry) || !inBound(goal) {
		return nil, fmt.Errorf("%w: entry %d, goal %d, %d cells", ErrInvalidCellIndex, entry, goal, len(cells))
	}

	predecessors := make([]int, len(cells))
	for i := range predecessors {
		predecessors[i] = -1
	}

	visited := mapset.New[int]()
	frontier := queue.New[int]()
	visited.Put(entry)
	frontier.Enqueue(entry)

	found := false
	for !frontier.Empty() {
		current := frontier.Dequeue()
		if current == goal {
			found = true
			break
		}

		for _, next := range cells[current].Neighbours {
			if !inBound(next) {
				return nil, fmt.Errorf("%w: cell %d lists neighbour %d", ErrInvalidCellIndex, current, next)
			}
			if visited.Has(next) {
				continue
			}
			visited.Put(next)
			predecessors[next] = current
			frontier.Enqueue(next)
		}
	}

	if !found {
		return nil, ErrPathNotFound
	}

	path := []int{goal}
	for at := goal; at != entry; {
		at = predecessors[at]
		path = append(path, at)
	}
	slices.Reverse(path)
	return path, nil
}

// Solve returns the path from the entry cell to the exit cell.
func (g *Grid) Solve() ([]int, error) {
	return FindPath(g.cells, g.Entry(), g.Exit())
}
