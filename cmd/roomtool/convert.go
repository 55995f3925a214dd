package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/cavefall/shared/leveldata"
	"github.com/automoto/cavefall/shared/rooms"
	"github.com/spf13/cobra"
)

var flagEmitGo bool

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Validate a directory of .tmx rooms",
	Long: `import loads every .tmx file in dir in name order, checks each room and
prints the result. With --go it prints the rooms as a Go catalog literal.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := args[0]
		files, err := leveldata.LoadAllRooms(os.DirFS(dir), ".")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading rooms: %v\n", err)
			os.Exit(1)
		}

		failed := 0
		for i, f := range files {
			if err := f.Grid.Validate(); err != nil {
				failed++
				logger.Error("Invalid room", "index", i, "file", f.Path, "err", err)
				continue
			}
			logger.Info("Room ok", "index", i, "file", f.Path)
		}
		if failed > 0 {
			fmt.Fprintf(os.Stderr, "Error: %d of %d rooms are invalid\n", failed, len(files))
			os.Exit(1)
		}

		if flagEmitGo {
			fmt.Print(catalogLiteral(files))
		}
	},
}

var flagOverwrite bool

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Write the catalog as .tmx rooms",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := args[0]
		cat := mustCatalog()
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", dir, err)
			os.Exit(1)
		}

		for i, g := range cat {
			path := filepath.Join(dir, roomFileName(i))
			if err := writeRoomFile(path, g, flagOverwrite); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
				os.Exit(1)
			}
			logger.Info("Wrote room", "index", i, "file", path)
		}
	},
}

func init() {
	importCmd.Flags().BoolVar(&flagEmitGo, "go", false, "Print the rooms as a Go catalog literal")
	exportCmd.Flags().BoolVarP(&flagOverwrite, "force", "f", false, "Overwrite existing files")
}

// roomFileName keeps files in catalog order when sorted by name.
func roomFileName(index int) string {
	return fmt.Sprintf("%02d-room.tmx", index)
}

func writeRoomFile(path string, g rooms.Grid, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return err
	}
	if err := leveldata.WriteRoom(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// catalogLiteral renders files as Go source for a rooms.Catalog.
func catalogLiteral(files []leveldata.RoomFile) string {
	var sb strings.Builder
	sb.WriteString("rooms.Catalog{\n")
	for _, f := range files {
		fmt.Fprintf(&sb, "\t// %s\n\t{\n", f.Name)
		for row := 0; row < rooms.Size; row++ {
			sb.WriteString("\t\t{")
			for col := 0; col < rooms.Size; col++ {
				if col > 0 {
					sb.WriteString(", ")
				}
				fmt.Fprintf(&sb, "%d", f.Grid[row][col])
			}
			sb.WriteString("},\n")
		}
		sb.WriteString("\t},\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}
