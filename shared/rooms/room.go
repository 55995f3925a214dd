// Package rooms holds the rotatable tile grid the player moves through and
// the catalog of canonical rooms it is loaded from.
//
// It has no dependencies on ebitengine, donburi or resolv.
package rooms

import (
	"math"
	"math/rand"
)

// Cell is a grid coordinate.
type Cell struct {
	Col, Row int
}

// Room is the live, rotatable copy of one catalog entry. A Room is reusable
// storage: LoadRoom overwrites it in place.
type Room struct {
	tiles      Grid
	start      Cell
	rotations  int
	background [BackgroundSize][BackgroundSize]int

	catalog  Catalog
	index    int
	next     int
	revision uint64
	rng      *rand.Rand
}

// New returns an empty room backed by catalog. The room holds no tiles until
// LoadRoom is called. rng drives the decorative backdrop only; nil seeds one
// from the clock.
func New(catalog Catalog, rng *rand.Rand) *Room {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Room{catalog: catalog, rng: rng}
}

// LoadRoom copies catalog entry index into the room, re-applies the current
// rotation count and regenerates the backdrop. Out-of-range indices are
// clamped. It returns the index of the room that follows.
func (r *Room) LoadRoom(index int) int {
	index = r.catalog.Clamp(index)
	src := &r.catalog[index]

	found := false
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			r.tiles[row][col] = src[row][col]
			if !found && src[row][col] == Start {
				r.start = Cell{Col: col, Row: row}
				found = true
			}
		}
	}

	// Bring the canonical layout into the orientation the player left.
	for i := 0; i < r.rotations; i++ {
		r.rotateTiles()
	}
	if r.rotations > 0 {
		r.locateStart()
	}

	for i := range r.background {
		for j := range r.background[i] {
			r.background[i][j] = r.rng.Intn(BackgroundVariants) + 1
		}
	}

	r.index = index
	r.next = r.catalog.Next(index)
	r.revision++
	return r.next
}

// RotateRoom turns the grid 90 degrees clockwise in place: the cell at
// (row, col) moves to (col, Size-1-row).
func (r *Room) RotateRoom() {
	r.rotateTiles()
	r.locateStart()
	r.rotations = (r.rotations + 1) % 4
	r.revision++
}

// rotateTiles performs the clockwise rotation as a four-way swap around each
// concentric ring.
func (r *Room) rotateTiles() {
	t := &r.tiles
	const n = Size
	for i := 0; i < (n+1)/2; i++ {
		for j := 0; j < n/2; j++ {
			tmp := t[n-1-j][i]
			t[n-1-j][i] = t[n-1-i][n-1-j]
			t[n-1-i][n-1-j] = t[j][n-1-i]
			t[j][n-1-i] = t[i][j]
			t[i][j] = tmp
		}
	}
}

// locateStart points start at the first Start cell in row-major order.
func (r *Room) locateStart() {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if r.tiles[row][col] == Start {
				r.start = Cell{Col: col, Row: row}
				return
			}
		}
	}
}

// Tile returns the tile at (col, row), clamping both into [0, Size-1].
func (r *Room) Tile(col, row int) TileType {
	return r.tiles[ClampCoord(row)][ClampCoord(col)]
}

// Start returns the cell the player enters the room at.
func (r *Room) Start() Cell { return r.start }

// StartPosition returns the world top-left of the start cell.
func (r *Room) StartPosition() (x, y float64) {
	return CellOrigin(r.start)
}

// Rotations returns the number of clockwise turns applied since the
// canonical orientation, in [0, 3].
func (r *Room) Rotations() int { return r.rotations }

// SetRotations sets the rotation count the next LoadRoom applies. Used when
// restoring saved progress.
func (r *Room) SetRotations(n int) {
	r.rotations = ((n % 4) + 4) % 4
}

// Index returns the catalog index currently loaded.
func (r *Room) Index() int { return r.index }

// Next returns the index returned by the last LoadRoom.
func (r *Room) Next() int { return r.next }

// Count returns the number of rooms in the backing catalog.
func (r *Room) Count() int { return r.catalog.Len() }

// Revision changes every time the grid is loaded or rotated.
func (r *Room) Revision() uint64 { return r.revision }

// Tiles returns a copy of the grid.
func (r *Room) Tiles() Grid { return r.tiles }

// Background returns the decorative backdrop index at (col, row).
func (r *Room) Background(col, row int) int {
	return r.background[row][col]
}

// ClampCoord saturates a tile coordinate into [0, Size-1].
func ClampCoord(v int) int {
	if v < 0 {
		return 0
	}
	if v > Size-1 {
		return Size - 1
	}
	return v
}

// TileCoord converts a world coordinate to a tile coordinate, unclamped.
func TileCoord(v float64) int {
	return int(math.Floor(v / TileSize))
}

// CellAt returns the clamped cell containing world position (x, y).
func CellAt(x, y float64) Cell {
	return Cell{Col: ClampCoord(TileCoord(x)), Row: ClampCoord(TileCoord(y))}
}

// CellOrigin returns the world top-left corner of c.
func CellOrigin(c Cell) (x, y float64) {
	return float64(c.Col * TileSize), float64(c.Row * TileSize)
}
