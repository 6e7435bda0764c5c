package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linked builds cells from undirected connections.
func linked(size int, edges ...[2]int) []Cell {
	cells := make([]Cell, size)
	for _, e := range edges {
		cells[e[0]].Neighbours = append(cells[e[0]].Neighbours, e[1])
		cells[e[1]].Neighbours = append(cells[e[1]].Neighbours, e[0])
	}
	return cells
}

func TestFindPath(t *testing.T) {
	// 0 - 1   2
	//     |   |
	// 3 - 4 - 5
	cells := linked(6, [2]int{0, 1}, [2]int{1, 4}, [2]int{3, 4}, [2]int{4, 5}, [2]int{2, 5})

	t.Run("Entry to goal", func(t *testing.T) {
		path, err := FindPath(cells, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 4, 5, 2}, path)
	})

	t.Run("Reverse direction", func(t *testing.T) {
		path, err := FindPath(cells, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 5, 4, 3}, path)
	})

	t.Run("Entry equals goal", func(t *testing.T) {
		path, err := FindPath(cells, 4, 4)
		require.NoError(t, err)
		assert.Equal(t, []int{4}, path)
	})

	t.Run("Shortest on graphs with cycles", func(t *testing.T) {
		// 0 - 1 - 2
		// |       |
		// 3 ----- 4
		looped := linked(5, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 3}, [2]int{3, 4}, [2]int{2, 4})
		path, err := FindPath(looped, 0, 4)
		require.NoError(t, err)
		assert.Len(t, path, 3)
	})
}

func TestFindPathNotFound(t *testing.T) {
	// Two components: {0, 1} and {2, 3}.
	cells := linked(4, [2]int{0, 1}, [2]int{2, 3})

	path, err := FindPath(cells, 0, 3)
	assert.ErrorIs(t, err, ErrPathNotFound)
	assert.Nil(t, path)
}

func TestFindPathInvalidIndices(t *testing.T) {
	cells := linked(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})

	_, err := FindPath(cells, -1, 3)
	assert.ErrorIs(t, err, ErrInvalidCellIndex)

	_, err = FindPath(cells, 0, 4)
	assert.ErrorIs(t, err, ErrInvalidCellIndex)

	_, err = FindPath(nil, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidCellIndex)

	cells[1].Neighbours = append(cells[1].Neighbours, 10)
	_, err = FindPath(cells, 0, 3)
	assert.ErrorIs(t, err, ErrInvalidCellIndex)
}

func TestFindPathIsIdempotent(t *testing.T) {
	g, err := Generate(10)
	require.NoError(t, err)
	before := g.Cells()

	first, err := g.Solve()
	require.NoError(t, err)
	second, err := g.Solve()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, g.Cells())
}

func TestSolveMatchesTreeDistance(t *testing.T) {
	for _, width := range []int{2, 3, 5, 16} {
		g, err := Generate(width)
		require.NoError(t, err)

		path, err := g.Solve()
		require.NoError(t, err)
		assert.Equal(t, treeDistances(g.Cells(), g.Entry())[g.Exit()], len(path)-1, "width %d", width)

		// Consecutive cells are connected.
		cells := g.Cells()
		for k := 1; k < len(path); k++ {
			assert.Contains(t, cells[path[k-1]].Neighbours, path[k])
		}
	}
}
