package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/automoto/cavefall/config"
	"github.com/automoto/cavefall/shared/physics"
	"github.com/automoto/cavefall/shared/rooms"
	"github.com/spf13/cobra"
)

var (
	flagSimRoom  int
	flagSimQuiet bool
	flagSimShow  bool
)

var simCmd = &cobra.Command{
	Use:   "sim <script>",
	Short: "Run the simulation without a window and print its events",
	Long: `sim plays an input script against a room and prints every event the
simulation raises, one per line with the tick it happened on.

Script instructions, separated by spaces or commas:
  R<n>  walk right for n ticks
  L<n>  walk left for n ticks
  W<n>  stand still for n ticks
  T     turn the room clockwise
  X     restart the room`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ops, err := parseScript(strings.Join(args, " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing script: %v\n", err)
			os.Exit(1)
		}

		cat := mustCatalog()
		sim := physics.New(rooms.New(cat, newRNG()), config.Kernel())
		sim.Start(flagSimRoom)
		logger.Debug("Simulating", "room", sim.Room.Index(), "ops", len(ops), "step", sim.Config.TimeStep)

		events := runScript(sim, ops)
		for _, ev := range events {
			if flagSimQuiet && (ev.Kind == physics.EventGrounded || ev.Kind == physics.EventFalling) {
				continue
			}
			fmt.Printf("%6d  %-10s  %s\n", ev.Tick, ev.Kind, describeEvent(ev.Event))
		}

		p := sim.Player
		fmt.Println()
		fmt.Printf("room %d/%d, turns %d, %s at (%.1f, %.1f), oxygen %.1f\n",
			sim.Room.Index()+1, sim.Room.Count(), sim.Room.Rotations(),
			p.State, p.Position.X, p.Position.Y, p.Oxygen)

		if flagSimShow {
			marker := rooms.CellAt(p.Position.X+p.Width/2, p.Position.Y+p.Height/2)
			fmt.Println(renderGrid(sim.Room.Tiles(), &marker, false))
		}
	},
}

func init() {
	simCmd.Flags().IntVar(&flagSimRoom, "room", 0, "Catalog index to start in")
	simCmd.Flags().BoolVarP(&flagSimQuiet, "quiet", "q", false, "Hide landing and falling events")
	simCmd.Flags().BoolVar(&flagSimShow, "show", false, "Print the final room")
}
