package rooms

// TileType identifies what occupies one grid cell. The numeric values match
// the catalog data.
type TileType uint8

const (
	Air TileType = iota
	Ground
	Exit
	Start
	Stalagmite
	Stalactite
	Rail
)

var tileNames = [...]string{
	Air:        "air",
	Ground:     "ground",
	Exit:       "exit",
	Start:      "start",
	Stalagmite: "stalagmite",
	Stalactite: "stalactite",
	Rail:       "rail",
}

func (t TileType) String() string {
	if int(t) < len(tileNames) {
		return tileNames[t]
	}
	return "unknown"
}

// Valid reports whether t is one of the known tile types.
func (t TileType) Valid() bool {
	return int(t) < len(tileNames)
}

// ParseTileType returns the tile type with the given name.
func ParseTileType(name string) (TileType, bool) {
	for i, n := range tileNames {
		if n == name {
			return TileType(i), true
		}
	}
	return Air, false
}

// IsSolid reports whether the tile blocks movement. Only ground does.
func IsSolid(t TileType) bool {
	return t == Ground
}

// IsDeath reports whether touching the tile kills the player.
func IsDeath(t TileType) bool {
	switch t {
	case Stalagmite, Stalactite:
		return true
	}
	return false
}

// IsExit reports whether touching t moves the player to the next room.
func IsExit(t TileType) bool { return t == Exit }

// IsStart reports whether t is part of a room's entry doorway.
func IsStart(t TileType) bool { return t == Start }
