// Package termview renders the result of a cast as XY slices into a terminal.
package termview

import (
	"github.com/oliverbestmann/voxelcast/display"
	"github.com/oliverbestmann/voxelcast/gm"
)

type CellKind uint8

const (
	Unseen CellKind = iota
	Visible
	Blocking

	// Hidden marks occluded cells that do not cast a shadow onto the view.
	Hidden
)

// Rune returns the character used to print a cell of this kind.
func (k CellKind) Rune() rune {
	switch k {
	case Visible:
		return '.'
	case Blocking:
		return '#'
	case Hidden:
		return '+'
	default:
		return ' '
	}
}

// Slice is the XY plane of the grid at a given depth.
type Slice struct {
	Depth  int
	Width  int
	Height int
	Cells  []CellKind
}

func (s *Slice) At(x, y int) CellKind {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return Unseen
	}

	return s.Cells[y*s.Width+x]
}

// BuildSlices classifies the cells of the first depths of the grid. Slices are limited to the
// area the light can reach until maxDepth, cells further away can never be visible.
func BuildSlices(grid *display.Grid, result *display.Result, maxDepth int) []Slice {
	size := grid.Size()

	depths := min(maxDepth, int(size.Z)-1)
	width := min(maxDepth+1, int(size.X))
	height := min(maxDepth+1, int(size.Y))

	var slices []Slice

	for depth := 1; depth <= depths; depth++ {
		slice := Slice{
			Depth:  depth,
			Width:  width,
			Height: height,
			Cells:  make([]CellKind, width*height),
		}

		for y := range height {
			for x := range width {
				pos := gm.IVecOf(int32(x), int32(y), int32(depth))

				var kind CellKind

				switch {
				case result.Blocking.Has(pos):
					kind = Blocking
				case grid.Occluded(x, y, depth):
					kind = Hidden
				case result.Visible.Has(pos):
					kind = Visible
				}

				slice.Cells[y*width+x] = kind
			}
		}

		slices = append(slices, slice)
	}

	return slices
}
