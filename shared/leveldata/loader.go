package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/cavefall/shared/rooms"
	"github.com/lafriks/go-tiled"
)

// LoadRoom parses a TMX file into a room grid. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS. Each tile's type comes from its tileset
// "type" property; tiles without one map their local ID n to tile type n+1.
// The grid is validated before it is returned.
func LoadRoom(fsys fs.FS, tmxPath string) (rooms.Grid, error) {
	var grid rooms.Grid

	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return grid, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.Width != rooms.Size || levelMap.Height != rooms.Size {
		return grid, fmt.Errorf("%s: map is %dx%d, rooms are %dx%d",
			tmxPath, levelMap.Width, levelMap.Height, rooms.Size, rooms.Size)
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == LayerName {
			layer = l
			break
		}
	}
	if layer == nil {
		return grid, fmt.Errorf("%s: no %q tile layer", tmxPath, LayerName)
	}

	for y := 0; y < rooms.Size; y++ {
		for x := 0; x < rooms.Size; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}
			t, err := tileType(tile)
			if err != nil {
				return grid, fmt.Errorf("%s: tile (%d, %d): %w", tmxPath, x, y, err)
			}
			grid[y][x] = t
		}
	}

	if err := grid.Validate(); err != nil {
		return grid, fmt.Errorf("%s: %w", tmxPath, err)
	}
	return grid, nil
}

func tileType(tile *tiled.LayerTile) (rooms.TileType, error) {
	if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
		if name := tilesetTile.Properties.GetString(TypeProperty); name != "" {
			t, ok := rooms.ParseTileType(name)
			if !ok {
				return rooms.Air, fmt.Errorf("unknown tile type %q", name)
			}
			return t, nil
		}
	}

	if tile.ID >= uint32(rooms.Rail) {
		return rooms.Air, fmt.Errorf("tile ID %d has no type", tile.ID)
	}
	return rooms.TileType(tile.ID + 1), nil
}

// LoadAllRooms discovers all .tmx files in roomsDir within fsys and loads
// each one. Rooms are ordered by file name, so a "00-", "01-" prefix fixes
// the catalog order.
func LoadAllRooms(fsys fs.FS, roomsDir string) ([]RoomFile, error) {
	pattern := path.Join(roomsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", roomsDir)
	}
	sort.Strings(matches)

	files := make([]RoomFile, 0, len(matches))
	for _, p := range matches {
		grid, err := LoadRoom(fsys, p)
		if err != nil {
			return nil, err
		}
		files = append(files, RoomFile{
			Name: strings.TrimSuffix(path.Base(p), ".tmx"),
			Path: p,
			Grid: grid,
		})
	}
	return files, nil
}
