package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWidth = 3

func TestNewGrid(t *testing.T) {
	t.Run("Creates walled cells", func(t *testing.T) {
		g, err := NewGrid(testWidth)
		require.NoError(t, err)

		assert.Equal(t, testWidth, g.Width())
		assert.Equal(t, testWidth*testWidth, g.Len())
		assert.False(t, g.Generated())
		for _, c := range g.Cells() {
			assert.True(t, c.HasBorderRight)
			assert.True(t, c.HasBorderBottom)
			assert.Empty(t, c.Neighbours)
		}
	})

	t.Run("Rejects invalid widths", func(t *testing.T) {
		for _, width := range []int{0, -1, MaxWidth + 1} {
			g, err := NewGrid(width)
			assert.ErrorIs(t, err, ErrInvalidDimension)
			assert.Nil(t, g)
		}
	})

	t.Run("Entry and exit", func(t *testing.T) {
		g, err := NewGrid(testWidth)
		require.NoError(t, err)
		assert.Equal(t, 0, g.Entry())
		assert.Equal(t, 8, g.Exit())
	})
}

func TestPositionAndIndex(t *testing.T) {
	g, err := NewGrid(testWidth)
	require.NoError(t, err)

	for i := 0; i < g.Len(); i++ {
		row, col := g.Position(i)
		assert.Equal(t, i/testWidth, row)
		assert.Equal(t, i%testWidth, col)
		assert.Equal(t, i, g.Index(row, col))
	}
}

func TestCellReturnsCopy(t *testing.T) {
	g, err := NewGrid(testWidth)
	require.NoError(t, err)
	g.connect(0, 1)

	c, err := g.Cell(0)
	require.NoError(t, err)
	c.Neighbours[0] = 7
	c.HasBorderBottom = false

	original, err := g.Cell(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, original.Neighbours)
	assert.True(t, original.HasBorderBottom)

	_, err = g.Cell(9)
	assert.ErrorIs(t, err, ErrInvalidCellIndex)
}

// Moving right or down clears a wall of the cell we leave, moving left or up
// clears a wall of the cell we enter.
func TestUpdateBorders(t *testing.T) {
	tests := []struct {
		name          string
		from, to      int
		owner         int
		rightCleared  bool
		bottomCleared bool
	}{
		{name: "Moving right", from: 1, to: 2, owner: 1, rightCleared: true},
		{name: "Moving left", from: 1, to: 0, owner: 0, rightCleared: true},
		{name: "Moving down", from: 1, to: 4, owner: 1, bottomCleared: true},
		{name: "Moving up", from: 7, to: 4, owner: 4, bottomCleared: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(testWidth)
			require.NoError(t, err)

			g.UpdateBorders(tc.from, tc.to)

			for i, c := range g.Cells() {
				if i == tc.owner {
					assert.Equal(t, !tc.rightCleared, c.HasBorderRight)
					assert.Equal(t, !tc.bottomCleared, c.HasBorderBottom)
					continue
				}
				assert.True(t, c.HasBorderRight, "cell %d right wall", i)
				assert.True(t, c.HasBorderBottom, "cell %d bottom wall", i)
			}
		})
	}

	t.Run("Ignores non adjacent cells", func(t *testing.T) {
		g, err := NewGrid(testWidth)
		require.NoError(t, err)

		g.UpdateBorders(0, 8)
		g.UpdateBorders(0, 42)
		g.UpdateBorders(-1, 0)

		for _, c := range g.Cells() {
			assert.True(t, c.HasBorderRight)
			assert.True(t, c.HasBorderBottom)
		}
	})
}

func TestNeighborOffsetIsValid(t *testing.T) {
	// 0 1 2
	// 3 4 5
	// 6 7 8
	tests := []struct {
		index, candidate int
		valid            bool
	}{
		{5, 6, false}, // row wrap
		{5, 4, true},
		{5, 2, true},
		{5, 8, true},
		{3, 2, false}, // row wrap
		{7, 8, true},
		{0, -1, false},
		{0, -3, false},
		{8, 9, false},
		{6, 9, false},
		{4, 0, false}, // diagonal
		{4, 6, false},
		{0, 2, false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.valid, NeighborOffsetIsValid(tc.index, tc.candidate, testWidth), "(%d, %d)", tc.index, tc.candidate)
	}

	assert.False(t, NeighborOffsetIsValid(0, 0, 0))
}

func TestString(t *testing.T) {
	g, err := NewGrid(2)
	require.NoError(t, err)
	g.connect(0, 1)
	g.connect(1, 3)

	expected := "" +
		"+---+---+\n" +
		"|       |\n" +
		"+---+   +\n" +
		"|   |   |\n" +
		"+---+---+\n"
	assert.Equal(t, expected, g.String())
}

func TestEdgeCount(t *testing.T) {
	g, err := NewGrid(testWidth)
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount())

	g.connect(0, 1)
	g.connect(1, 4)
	assert.Equal(t, 2, g.EdgeCount())
}
