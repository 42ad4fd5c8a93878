package display

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/oliverbestmann/voxelcast/gm"
)

var ErrOutOfBounds = errors.New("out of bounds")

// DefaultGridSize is the size of the grid of a Display, if not configured otherwise.
var DefaultGridSize = gm.IVecOf(100, 100, 100)

// MaxGridCells limits the number of cells of a Grid.
const MaxGridCells = 1 << 27

// Grid is a dense 3d grid of occluded cells. The cell (0, 0, 0) is the origin
// of the grid, there are no cells at negative coordinates.
type Grid struct {
	size  gm.IVec3
	cells []bool
	count int
}

func NewGrid(size gm.IVec3) *Grid {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		panic(fmt.Sprintf("grid size must be positive, got %s", size))
	}

	cellCount := CellCount(size)
	if cellCount > MaxGridCells {
		panic(fmt.Sprintf("grid of size %s has %d cells, at most %d are allowed", size, cellCount, MaxGridCells))
	}

	return &Grid{
		size:  size,
		cells: make([]bool, cellCount),
	}
}

// CellCount returns the number of cells of a grid with the given size, saturating
// at math.MaxInt64. Sizes with a non positive component have no cells.
func CellCount(size gm.IVec3) int64 {
	count := int64(1)

	for _, value := range [...]int32{size.X, size.Y, size.Z} {
		if value <= 0 {
			return 0
		}

		if count > math.MaxInt64/int64(value) {
			return math.MaxInt64
		}

		count *= int64(value)
	}

	return count
}

func (g *Grid) Size() gm.IVec3 {
	return g.size
}

// Contains returns true if the position is a cell within the grid.
func (g *Grid) Contains(pos gm.IVec3) bool {
	return g.contains(int(pos.X), int(pos.Y), int(pos.Z))
}

func (g *Grid) contains(x, y, z int) bool {
	return x >= 0 && x < int(g.size.X) &&
		y >= 0 && y < int(g.size.Y) &&
		z >= 0 && z < int(g.size.Z)
}

func (g *Grid) index(x, y, z int) int {
	return (x*int(g.size.Y)+y)*int(g.size.Z) + z
}

// Set marks the cell at the given position as occluded.
func (g *Grid) Set(pos gm.IVec3) error {
	if !g.Contains(pos) {
		return fmt.Errorf("set occluded %s in grid of size %s: %w", pos, g.size, ErrOutOfBounds)
	}

	idx := g.index(int(pos.X), int(pos.Y), int(pos.Z))
	if !g.cells[idx] {
		g.cells[idx] = true
		g.count += 1
	}

	return nil
}

// Occluded returns true if the cell is occluded. Cells outside
// of the grid are never occluded.
func (g *Grid) Occluded(x, y, z int) bool {
	if !g.contains(x, y, z) {
		return false
	}

	return g.cells[g.index(x, y, z)]
}

// Count returns the number of occluded cells.
func (g *Grid) Count() int {
	return g.count
}

// Cells iterates over all occluded cells in x, y, z order.
func (g *Grid) Cells() iter.Seq[gm.IVec3] {
	return func(yield func(gm.IVec3) bool) {
		for idx, occluded := range g.cells {
			if !occluded {
				continue
			}

			z := idx % int(g.size.Z)
			y := idx / int(g.size.Z) % int(g.size.Y)
			x := idx / int(g.size.Z) / int(g.size.Y)

			if !yield(gm.IVecOf(int32(x), int32(y), int32(z))) {
				return
			}
		}
	}
}
