package leveldata

import (
	"fmt"
	"io"
	"strings"

	"github.com/automoto/cavefall/shared/rooms"
)

// TilesetName is the name of the inline tileset WriteRoom emits.
const TilesetName = "cave"

// WriteRoom writes g as a TMX map Tiled can open. The inline tileset holds
// one tile per non-air tile type, tagged with its "type" property, so the
// gid of every cell equals its tile type value.
func WriteRoom(w io.Writer, g rooms.Grid) error {
	var b strings.Builder
	count := int(rooms.Rail)

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<map version="1.10" orientation="orthogonal" renderorder="right-down" width="%d" height="%d" tilewidth="%d" tileheight="%d" infinite="0" nextlayerid="2" nextobjectid="1">`+"\n",
		rooms.Size, rooms.Size, rooms.TileSize, rooms.TileSize)
	fmt.Fprintf(&b, ` <tileset firstgid="1" name="%s" tilewidth="%d" tileheight="%d" tilecount="%d" columns="%d">`+"\n",
		TilesetName, rooms.TileSize, rooms.TileSize, count, count)
	fmt.Fprintf(&b, `  <image source="%s.png" width="%d" height="%d"/>`+"\n",
		TilesetName, count*rooms.TileSize, rooms.TileSize)
	for t := rooms.Ground; t <= rooms.Rail; t++ {
		fmt.Fprintf(&b, `  <tile id="%d">`+"\n", int(t)-1)
		b.WriteString("   <properties>\n")
		fmt.Fprintf(&b, `    <property name="%s" value="%s"/>`+"\n", TypeProperty, t)
		b.WriteString("   </properties>\n")
		b.WriteString("  </tile>\n")
	}
	b.WriteString(" </tileset>\n")

	fmt.Fprintf(&b, ` <layer id="1" name="%s" width="%d" height="%d">`+"\n", LayerName, rooms.Size, rooms.Size)
	b.WriteString(`  <data encoding="csv">` + "\n")
	for row := 0; row < rooms.Size; row++ {
		for col := 0; col < rooms.Size; col++ {
			fmt.Fprintf(&b, "%d", g[row][col])
			if row != rooms.Size-1 || col != rooms.Size-1 {
				b.WriteByte(',')
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("</data>\n")
	b.WriteString(" </layer>\n")
	b.WriteString("</map>\n")

	_, err := io.WriteString(w, b.String())
	return err
}
