package rooms

import (
	"errors"
	"fmt"
	"slices"
)

const (
	// Size is the number of cells along each side of a room.
	Size = 10
	// TileSize is the edge length of one cell in world units.
	TileSize = 32
	// Extent is the edge length of a room in world units.
	Extent = Size * TileSize

	// BackgroundTileSize is the edge length of one decorative backdrop tile.
	BackgroundTileSize = 64
	// BackgroundSize is the number of backdrop tiles along each side.
	BackgroundSize = Extent / BackgroundTileSize
	// BackgroundVariants is the number of backdrop tile variants; indices
	// run from 1 to BackgroundVariants inclusive.
	BackgroundVariants = 10
)

// Grid is a square tile matrix indexed [row][col].
type Grid [Size][Size]TileType

// Catalog is the ordered table of canonical (unrotated) rooms.
type Catalog []Grid

var builtin = Catalog{
	{
		{1, 2, 2, 1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{3, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{3, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	},
	{
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 2},
		{1, 0, 1, 1, 1, 1, 1, 0, 0, 2},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 3, 3, 1, 1, 1, 1, 1, 1, 1},
	},
	{
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 5, 5, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 6, 6, 6, 0, 0, 0, 0, 0, 1},
		{3, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{3, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 4, 4, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1, 2, 2, 1},
	},
}

// DefaultCatalog returns a copy of the rooms compiled into the game.
func DefaultCatalog() Catalog {
	return slices.Clone(builtin)
}

// Len returns the number of rooms.
func (c Catalog) Len() int {
	return len(c)
}

// Clamp saturates index into [0, Len()-1].
func (c Catalog) Clamp(index int) int {
	if index < 0 {
		return 0
	}
	if index >= len(c) {
		return len(c) - 1
	}
	return index
}

// Next returns the index that follows index, wrapping to 0 after the last room.
func (c Catalog) Next(index int) int {
	if index+1 < len(c) {
		return index + 1
	}
	return 0
}

// Validate checks every room for unknown tile values and for exactly one
// Start doorway: a single straight, contiguous run of Start cells.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return errors.New("catalog is empty")
	}
	var errs []error
	for i := range c {
		if err := c[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("room %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Validate checks a single grid, see Catalog.Validate.
func (g *Grid) Validate() error {
	var starts []Cell
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			t := g[row][col]
			if !t.Valid() {
				return fmt.Errorf("unknown tile value %d at (%d, %d)", t, col, row)
			}
			if t == Start {
				starts = append(starts, Cell{Col: col, Row: row})
			}
		}
	}
	if len(starts) == 0 {
		return errors.New("no start tile")
	}
	if !isDoorway(starts) {
		return fmt.Errorf("start tiles %v do not form a single doorway", starts)
	}
	return nil
}

// isDoorway reports whether cells, in row-major order, form one straight
// contiguous run.
func isDoorway(cells []Cell) bool {
	first := cells[0]
	sameRow, sameCol := true, true
	for i, c := range cells {
		if c.Row != first.Row || c.Col != first.Col+i {
			sameRow = false
		}
		if c.Col != first.Col || c.Row != first.Row+i {
			sameCol = false
		}
	}
	return sameRow || sameCol
}
