package main

import (
	"strings"

	"github.com/automoto/cavefall/shared/rooms"
	"github.com/charmbracelet/lipgloss"
)

// Every cell is drawn two columns wide so rooms keep their square shape in
// a terminal.
var glyphs = map[rooms.TileType]string{
	rooms.Air:        "  ",
	rooms.Ground:     "██",
	rooms.Exit:       "<>",
	rooms.Start:      "[]",
	rooms.Stalagmite: "/\\",
	rooms.Stalactite: "\\/",
	rooms.Rail:       "==",
}

const (
	playerGlyph  = "@@"
	unknownGlyph = "??"
)

// glyphKey lets the player marker share the style map with tiles.
type glyphKey int

const playerKey glyphKey = -1

var tileStyles = map[glyphKey]lipgloss.Style{
	glyphKey(rooms.Air):        lipgloss.NewStyle(),
	glyphKey(rooms.Ground):     lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	glyphKey(rooms.Exit):       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	glyphKey(rooms.Start):      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	glyphKey(rooms.Stalagmite): lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	glyphKey(rooms.Stalactite): lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	glyphKey(rooms.Rail):       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	playerKey:                  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
}

var frameStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240"))

var titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)

func glyph(t rooms.TileType) string {
	if g, ok := glyphs[t]; ok {
		return g
	}
	return unknownGlyph
}

// renderGrid draws g one row per line. marker, when not nil, is drawn as the
// player. Adjacent cells sharing a style are emitted as one run.
func renderGrid(g rooms.Grid, marker *rooms.Cell, styled bool) string {
	var sb strings.Builder
	sb.Grow(rooms.Size * (rooms.Size*2 + 1))

	for row := 0; row < rooms.Size; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		col := 0
		for col < rooms.Size {
			start := cellKey(g, marker, col, row)
			var run strings.Builder
			for col < rooms.Size && cellKey(g, marker, col, row) == start {
				if start == playerKey {
					run.WriteString(playerGlyph)
				} else {
					run.WriteString(glyph(g[row][col]))
				}
				col++
			}
			if styled {
				sb.WriteString(tileStyles[start].Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}

func cellKey(g rooms.Grid, marker *rooms.Cell, col, row int) glyphKey {
	if marker != nil && marker.Col == col && marker.Row == row {
		return playerKey
	}
	return glyphKey(g[row][col])
}

// legend lists every tile glyph with its name.
func legend() string {
	parts := make([]string, 0, len(glyphs))
	for t := rooms.Air + 1; t <= rooms.Rail; t++ {
		parts = append(parts, tileStyles[glyphKey(t)].Render(glyph(t))+" "+t.String())
	}
	parts = append(parts, tileStyles[playerKey].Render(playerGlyph)+" miner")
	return strings.Join(parts, "  ")
}
