package maze

import (
	"errors"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"
)

var (
	ErrNoNeighbourAvailable = errors.New("no unvisited neighbour available")
	ErrAlreadyGenerated     = errors.New("maze grid already generated")
	ErrFrontierExhausted    = errors.New("frontier exhausted before every cell was visited")
)

// Picker chooses an index uniformly in [0, n). *rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithPicker sets the source used to choose among candidate neighbours.
func WithPicker(p Picker) GeneratorOption {
	return func(g *Generator) {
		g.picker = p
	}
}

// WithSeed makes generation reproducible for the given seed.
func WithSeed(seed int64) GeneratorOption {
	return WithPicker(rand.New(rand.NewSource(seed)))
}

// Generator carves perfect mazes with a randomized iterative backtracker.
type Generator struct {
	picker Picker
}

// NewGenerator returns a Generator. Without options the picker is seeded
// from the current time.
func NewGenerator(options ...GeneratorOption) *Generator {
	g := &Generator{}
	for _, opt := range options {
		opt(g)
	}

	if g.picker == nil {
		g.picker = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g
}

// Generate builds a new grid of the given width and carves it.
func Generate(width int, options ...GeneratorOption) (*Grid, error) {
	grid, err := NewGrid(width)
	if err != nil {
		return nil, err
	}

	if err := NewGenerator(options...).Generate(grid); err != nil {
		return nil, err
	}
	return grid, nil
}

// Generate turns the grid into a spanning tree rooted at cell 0.
// The top of the frontier stack is the active cell: it advances into a random
// unvisited neighbour when one exists and is popped otherwise.
func (gen *Generator) Generate(g *Grid) error {
	if g.generated {
		return ErrAlreadyGenerated
	}

	total := g.Len()
	visited := mapset.New[int]()
	frontier := stack.New[int]()

	visited.Put(g.Entry())
	frontier.Push(g.Entry())

	for visited.Size() < total {
		if frontier.Size() == 0 {
			return ErrFrontierExhausted
		}

		current := frontier.Peek()
		next, err := gen.nextCell(g, current, visited)
		if err != nil {
			// Dead end, backtrack.
			frontier.Pop()
			continue
		}

		frontier.Push(next)
		visited.Put(next)
		g.connect(current, next)
	}

	g.generated = true
	return nil
}

// candidates returns the unvisited neighbours of index in scan order
// right, up, left, down.
func (gen *Generator) candidates(g *Grid, index int, visited mapset.Set[int]) []int {
	result := make([]int, 0, 4)
	for _, offset := range [...]int{1, -g.width, -1, g.width} {
		candidate := index + offset
		if NeighborOffsetIsValid(index, candidate, g.width) && !visited.Has(candidate) {
			result = append(result, candidate)
		}
	}
	return result
}

// nextCell picks the cell to advance into from index.
func (gen *Generator) nextCell(g *Grid, index int, visited mapset.Set[int]) (int, error) {
	candidates := gen.candidates(g, index, visited)
	switch len(candidates) {
	case 0:
		return -1, ErrNoNeighbourAvailable
	case 1:
		return candidates[0], nil
	default:
		return candidates[gen.picker.Intn(len(candidates))], nil
	}
}
