// Package leveldata reads and writes rooms as Tiled TMX maps.
// It has no dependencies on ebitengine, donburi or resolv.
package leveldata

import "github.com/automoto/cavefall/shared/rooms"

// LayerName is the tile layer a room map keeps its grid in.
const LayerName = "room"

// TypeProperty is the tileset tile property naming the tile type, for
// example "ground" or "stalactite".
const TypeProperty = "type"

// RoomFile is one room loaded from disk.
type RoomFile struct {
	Name string
	Path string
	Grid rooms.Grid
}

// Catalog returns the grids of files in order.
func Catalog(files []RoomFile) rooms.Catalog {
	c := make(rooms.Catalog, len(files))
	for i, f := range files {
		c[i] = f.Grid
	}
	return c
}
