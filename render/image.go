// Package render draws finished mazes as images.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/zyedidia/generic/mapset"
)

// The number of pixels across a square cell, including its right or bottom
// wall line. Must be at least 5.
const cellPixels = 9

var (
	ErrInvalidLayout = errors.New("cell count does not match maze width")

	floorColor = color.RGBA{R: 154, G: 205, B: 50, A: 255}
	wallColor  = color.RGBA{R: 25, G: 25, B: 112, A: 255}
	pathColor  = color.RGBA{R: 230, G: 20, B: 20, A: 255}
)

// mazeImage satisfies image.Image. Only the wall flags of the cells are used.
type mazeImage struct {
	width int
	cells []maze.Cell
	path  mapset.Set[int]
}

// NewImage returns an image of the maze. Cells listed in path are marked.
func NewImage(width int, cells []maze.Cell, path []int) (image.Image, error) {
	if width < 1 || len(cells) != width*width {
		return nil, fmt.Errorf("%w: width %d, %d cells", ErrInvalidLayout, width, len(cells))
	}

	onPath := mapset.New[int]()
	for _, index := range path {
		onPath.Put(index)
	}

	return &mazeImage{
		width: width,
		cells: cells,
		path:  onPath,
	}, nil
}

func (m *mazeImage) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds leaves one extra pixel row and column for the outer top and left walls.
func (m *mazeImage) Bounds() image.Rectangle {
	side := m.width*cellPixels + 1
	return image.Rect(0, 0, side, side)
}

func (m *mazeImage) At(x, y int) color.Color {
	side := m.width*cellPixels + 1
	if x < 0 || y < 0 || x >= side || y >= side {
		return color.Transparent
	}
	if x == 0 || y == 0 {
		return wallColor
	}

	col, offsetX := (x-1)/cellPixels, (x-1)%cellPixels
	row, offsetY := (y-1)/cellPixels, (y-1)%cellPixels
	index := row*m.width + col
	cell := m.cells[index]

	last := cellPixels - 1
	switch {
	case offsetX == last && offsetY == last:
		// Corner posts are always drawn.
		return wallColor
	case offsetX == last && cell.HasBorderRight:
		return wallColor
	case offsetY == last && cell.HasBorderBottom:
		return wallColor
	}

	// Path cells get a marker two pixels away from every edge.
	if m.path.Has(index) && offsetX >= 2 && offsetX < last-2 && offsetY >= 2 && offsetY < last-2 {
		return pathColor
	}
	return floorColor
}
