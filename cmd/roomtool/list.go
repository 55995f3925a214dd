package main

import (
	"fmt"

	"github.com/automoto/cavefall/shared/rooms"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	flagRotations int
	flagColumns   int
	flagPlain     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every room of the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		cat := mustCatalog()
		room := rooms.New(cat, newRNG())
		room.SetRotations(flagRotations)

		cards := make([]string, 0, len(cat))
		for i := range cat {
			room.LoadRoom(i)
			cards = append(cards, roomCard(room, nil, !flagPlain))
		}

		fmt.Printf("%d rooms, %d clockwise turns\n\n", len(cat), room.Rotations())
		for _, row := range chunk(cards, flagColumns) {
			fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		}
		if !flagPlain {
			fmt.Println(legend())
		}
	},
}

func init() {
	listCmd.Flags().IntVarP(&flagRotations, "rotations", "r", 0, "Clockwise turns applied to every room")
	listCmd.Flags().IntVar(&flagColumns, "columns", 3, "Rooms per line")
	listCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print without colors or frames")
}

// roomCard renders the loaded room with a title line.
func roomCard(room *rooms.Room, marker *rooms.Cell, styled bool) string {
	title := fmt.Sprintf("room %d/%d", room.Index()+1, room.Count())
	grid := renderGrid(room.Tiles(), marker, styled)
	if !styled {
		return title + "\n" + grid + "\n"
	}
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), frameStyle.Render(grid))
}

// chunk splits items into lines of at most n.
func chunk(items []string, n int) [][]string {
	if n < 1 {
		n = 1
	}
	var out [][]string
	for len(items) > n {
		out = append(out, items[:n])
		items = items[n:]
	}
	if len(items) > 0 {
		out = append(out, items)
	}
	return out
}
