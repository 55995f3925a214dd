// roomtool inspects, simulates and converts cavefall rooms from the terminal.
//
// Usage:
//
//	roomtool list                 - Print every room of the catalog
//	roomtool view                 - Browse rooms interactively and turn them
//	roomtool sim <script>         - Run the simulation headless and print events
//	roomtool import <dir>         - Validate a directory of .tmx rooms
//	roomtool export <dir>         - Write the catalog as .tmx rooms
//	roomtool runs                 - Show the history of finished runs
//
// Global flags:
//
//	--rooms <dir>     - Load the catalog from .tmx files instead of the built-in rooms
//	--config <path>   - Overlay a cavefall.yaml on the tunables
//	--db <path>       - Set database path (default: ~/.cavefall/runs.db)
//	--seed <value>    - Set RNG seed for the backdrop
//	--verbose         - Log at debug level
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/automoto/cavefall/config"
	"github.com/automoto/cavefall/shared/leveldata"
	"github.com/automoto/cavefall/shared/rooms"
	"github.com/automoto/cavefall/storage"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagRoomsDir   string
	flagConfigPath string
	flagDBPath     string
	flagSeed       int64
	flagVerbose    bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "roomtool",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roomtool",
	Short: "Inspect and convert cavefall rooms",
	Long: `roomtool works with the rooms the cavefall kernel plays: it prints
and browses the catalog, runs the simulation without a window, converts
rooms to and from Tiled maps and shows the history of finished runs.

Examples:
  roomtool list --rotations 1
  roomtool view --rooms ./rooms
  roomtool sim "R40 T W30 L20" --room 2
  roomtool export ./rooms
  roomtool runs --limit 5`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
		path, err := config.Load(flagConfigPath)
		if err != nil {
			return err
		}
		if path != "" {
			logger.Debug("Loaded config", "path", path)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRoomsDir, "rooms", "", "Directory of .tmx rooms (default: built-in catalog)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to cavefall.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to runs database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(runsCmd)
}

// loadCatalog returns the catalog named by --rooms, or the built-in one.
func loadCatalog() (rooms.Catalog, error) {
	dir := flagRoomsDir
	if dir == "" {
		dir = config.Room.Dir
	}
	if dir == "" {
		return rooms.DefaultCatalog(), nil
	}

	files, err := leveldata.LoadAllRooms(os.DirFS(dir), ".")
	if err != nil {
		return nil, err
	}
	cat := leveldata.Catalog(files)
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("Loaded rooms", "dir", dir, "count", len(cat))
	return cat, nil
}

func newRNG() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// mustCatalog loads the catalog or exits.
func mustCatalog() rooms.Catalog {
	cat, err := loadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rooms: %v\n", err)
		os.Exit(1)
	}
	return cat
}
