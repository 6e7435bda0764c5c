package maze

import (
	"errors"
	"fmt"
	"slices"
)

var ErrNotATree = errors.New("maze is not a spanning tree")

// disjointSet is an array-backed union-find over cell indices.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(size int) *disjointSet {
	s := &disjointSet{
		parent: make([]int, size),
		rank:   make([]int, size),
	}
	for i := range s.parent {
		s.parent[i] = i
	}
	return s
}

// find returns the root of the set containing i, compressing the path on the way.
func (s *disjointSet) find(i int) int {
	for s.parent[i] != i {
		s.parent[i] = s.parent[s.parent[i]]
		i = s.parent[i]
	}
	return i
}

// union merges the sets containing a and b. It returns false when they were
// already the same set.
func (s *disjointSet) union(a, b int) bool {
	x, y := s.find(a), s.find(b)
	if x == y {
		return false
	}
	if s.rank[x] > s.rank[y] {
		x, y = y, x
	}
	s.parent[x] = y
	if s.rank[x] == s.rank[y] {
		s.rank[y]++
	}
	return true
}

// ValidateTree checks that the neighbour lists describe an undirected
// spanning tree: every connection is listed on both cells, there are exactly
// len(cells)-1 connections and none of them closes a cycle.
func ValidateTree(cells []Cell) error {
	n := len(cells)
	if n == 0 {
		return fmt.Errorf("%w: no cells", ErrNotATree)
	}

	sets := newDisjointSet(n)
	edges := 0
	for i, cell := range cells {
		for _, j := range cell.Neighbours {
			if j < 0 || j >= n {
				return fmt.Errorf("%w: cell %d lists neighbour %d outside the grid", ErrNotATree, i, j)
			}
			if !slices.Contains(cells[j].Neighbours, i) {
				return fmt.Errorf("%w: cell %d lists %d but not the other way around", ErrNotATree, i, j)
			}
			if j < i {
				continue
			}
			if !sets.union(i, j) {
				return fmt.Errorf("%w: connection %d-%d closes a cycle", ErrNotATree, i, j)
			}
			edges++
		}
	}

	if edges != n-1 {
		return fmt.Errorf("%w: %d connections for %d cells", ErrNotATree, edges, n)
	}
	return nil
}

// Validate checks the spanning tree property and that every connection
// matches a removed wall.
func (g *Grid) Validate() error {
	if err := ValidateTree(g.cells); err != nil {
		return err
	}

	for i, cell := range g.cells {
		for _, j := range cell.Neighbours {
			if !NeighborOffsetIsValid(i, j, g.width) {
				return fmt.Errorf("%w: cells %d and %d are not adjacent", ErrNotATree, i, j)
			}
			if j < i {
				continue
			}
			if j == i+1 && cell.HasBorderRight {
				return fmt.Errorf("%w: wall between %d and %d still present", ErrNotATree, i, j)
			}
			if j == i+g.width && cell.HasBorderBottom {
				return fmt.Errorf("%w: wall between %d and %d still present", ErrNotATree, i, j)
			}
		}
	}
	return nil
}
