package render

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImage(t *testing.T) {
	t.Run("Rejects mismatched layout", func(t *testing.T) {
		_, err := NewImage(3, make([]maze.Cell, 4), nil)
		assert.ErrorIs(t, err, ErrInvalidLayout)

		_, err = NewImage(0, nil, nil)
		assert.ErrorIs(t, err, ErrInvalidLayout)
	})

	t.Run("Bounds", func(t *testing.T) {
		img, err := NewImage(2, make([]maze.Cell, 4), nil)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 2*cellPixels+1, 2*cellPixels+1), img.Bounds())
	})
}

func TestImageWalls(t *testing.T) {
	// Two cells side by side; the wall between them is open.
	cells := []maze.Cell{
		{HasBorderRight: false, HasBorderBottom: true},
		{HasBorderRight: true, HasBorderBottom: true},
		{HasBorderRight: true, HasBorderBottom: true},
		{HasBorderRight: true, HasBorderBottom: true},
	}
	img, err := NewImage(2, cells, []int{0})
	require.NoError(t, err)

	last := cellPixels - 1
	mid := 1 + cellPixels/2

	assert.Equal(t, wallColor, img.At(0, mid), "outer left wall")
	assert.Equal(t, wallColor, img.At(mid, 0), "outer top wall")
	assert.Equal(t, floorColor, img.At(1+last, mid), "open wall between 0 and 1")
	assert.Equal(t, wallColor, img.At(1+cellPixels+last, mid), "right wall of cell 1")
	assert.Equal(t, wallColor, img.At(mid, 1+last), "bottom wall of cell 0")
	assert.Equal(t, wallColor, img.At(1+last, 1+last), "corner post")
	assert.Equal(t, pathColor, img.At(mid, mid), "path marker in cell 0")
	assert.Equal(t, floorColor, img.At(1+cellPixels+cellPixels/2, mid), "cell 1 is not on the path")
	assert.Equal(t, floorColor, img.At(2, 2), "margin around path marker")
}

func TestImageEncodesGeneratedMaze(t *testing.T) {
	g, err := maze.Generate(6)
	require.NoError(t, err)
	path, err := g.Solve()
	require.NoError(t, err)

	img, err := NewImage(g.Width(), g.Cells(), path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}
