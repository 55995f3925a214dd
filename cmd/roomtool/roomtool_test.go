package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/automoto/cavefall/shared/leveldata"
	"github.com/automoto/cavefall/shared/physics"
	"github.com/automoto/cavefall/shared/rooms"
)

func TestRenderGridPlain(t *testing.T) {
	g := rooms.DefaultCatalog()[0]

	lines := strings.Split(renderGrid(g, nil, false), "\n")
	if len(lines) != rooms.Size {
		t.Fatalf("got %d lines, expected %d", len(lines), rooms.Size)
	}
	if want := "██<><>" + strings.Repeat("██", 7); lines[0] != want {
		t.Errorf("line 0 = %q, expected %q", lines[0], want)
	}
	if want := "[]" + strings.Repeat("  ", 8) + "██"; lines[4] != want {
		t.Errorf("line 4 = %q, expected %q", lines[4], want)
	}

	marker := rooms.Cell{Col: 1, Row: 1}
	lines = strings.Split(renderGrid(g, &marker, false), "\n")
	if want := "██@@" + strings.Repeat("  ", 7) + "██"; lines[1] != want {
		t.Errorf("marked line 1 = %q, expected %q", lines[1], want)
	}
}

func TestGlyphUnknownTile(t *testing.T) {
	if got := glyph(rooms.TileType(42)); got != unknownGlyph {
		t.Errorf("glyph(42) = %q, expected %q", got, unknownGlyph)
	}
	for ty := rooms.Air; ty <= rooms.Rail; ty++ {
		if got := glyph(ty); len([]rune(got)) != 2 {
			t.Errorf("glyph(%v) = %q, expected two columns", ty, got)
		}
	}
}

func TestChunk(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		n     int
		want  []int
	}{
		{"even", []string{"a", "b", "c", "d"}, 2, []int{2, 2}},
		{"remainder", []string{"a", "b", "c"}, 2, []int{2, 1}},
		{"zero width", []string{"a", "b"}, 0, []int{1, 1}},
		{"empty", nil, 3, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chunk(tt.items, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("chunk() gave %d lines, expected %d", len(got), len(tt.want))
			}
			for i := range got {
				if len(got[i]) != tt.want[i] {
					t.Errorf("line %d has %d items, expected %d", i, len(got[i]), tt.want[i])
				}
			}
		})
	}
}

func TestParseScript(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    []scriptOp
		wantErr bool
	}{
		{
			name: "mixed separators",
			src:  "R40, T w3\tl",
			want: []scriptOp{{opRight, 40}, {opRotate, 1}, {opWait, 3}, {opLeft, 1}},
		},
		{
			name: "respawn",
			src:  "X",
			want: []scriptOp{{opRespawn, 1}},
		},
		{name: "empty", src: "  ", want: []scriptOp{}},
		{name: "unknown instruction", src: "J5", wantErr: true},
		{name: "zero count", src: "R0", wantErr: true},
		{name: "bad count", src: "Wx", wantErr: true},
		{name: "count on rotate", src: "T2", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScript(tt.src)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseScript(%q) succeeded, expected an error", tt.src)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseScript(%q) failed: %v", tt.src, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d ops, expected %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("op %d = %+v, expected %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRunScriptStampsEvents(t *testing.T) {
	room := rooms.New(rooms.DefaultCatalog(), rand.New(rand.NewSource(1)))
	sim := physics.New(room, physics.DefaultConfig())
	sim.Start(0)

	ops, err := parseScript("T X W5")
	if err != nil {
		t.Fatalf("parseScript() failed: %v", err)
	}
	events := runScript(sim, ops)
	if len(events) < 2 {
		t.Fatalf("got %d events, expected at least 2", len(events))
	}
	if events[0].Kind != physics.EventRotated || events[0].Tick != 0 {
		t.Errorf("first event = %v at tick %d, expected rotated at tick 0", events[0].Kind, events[0].Tick)
	}
	if events[1].Kind != physics.EventRespawn || events[1].Tick != 0 {
		t.Errorf("second event = %v at tick %d, expected respawn at tick 0", events[1].Kind, events[1].Tick)
	}
	for _, ev := range events[2:] {
		if ev.Tick < 1 || ev.Tick > 5 {
			t.Errorf("event %v stamped with tick %d, expected 1..5", ev.Kind, ev.Tick)
		}
	}
	if sim.Now <= 0 {
		t.Error("script did not advance the simulation")
	}
}

func TestDescribeEvent(t *testing.T) {
	tests := []struct {
		ev   physics.Event
		want string
	}{
		{physics.Event{Kind: physics.EventExit, Room: 2}, "reached the exit, now in room 3"},
		{physics.Event{Kind: physics.EventExit, Wrapped: true}, "left the last room, back to room 1"},
		{physics.Event{Kind: physics.EventDeath, Cell: rooms.Cell{Col: 3, Row: 8}}, "died on a spike at (3, 8)"},
		{physics.Event{Kind: physics.EventSuffocated}, "ran out of air"},
	}
	for _, tt := range tests {
		t.Run(tt.ev.Kind.String(), func(t *testing.T) {
			if got := describeEvent(tt.ev); got != tt.want {
				t.Errorf("describeEvent() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestExportThenImport(t *testing.T) {
	dir := t.TempDir()
	cat := rooms.DefaultCatalog()
	for i, g := range cat {
		if err := writeRoomFile(filepath.Join(dir, roomFileName(i)), g, false); err != nil {
			t.Fatalf("writeRoomFile(%d) failed: %v", i, err)
		}
	}

	// Existing files are kept unless overwriting.
	if err := writeRoomFile(filepath.Join(dir, roomFileName(0)), cat[0], false); err == nil {
		t.Error("writeRoomFile() replaced an existing file without overwrite")
	}
	if err := writeRoomFile(filepath.Join(dir, roomFileName(0)), cat[0], true); err != nil {
		t.Errorf("writeRoomFile() with overwrite failed: %v", err)
	}

	files, err := leveldata.LoadAllRooms(os.DirFS(dir), ".")
	if err != nil {
		t.Fatalf("LoadAllRooms() failed: %v", err)
	}
	got := leveldata.Catalog(files)
	if got.Len() != cat.Len() {
		t.Fatalf("loaded %d rooms, expected %d", got.Len(), cat.Len())
	}
	for i := range cat {
		if got[i] != cat[i] {
			t.Errorf("room %d changed on the way through TMX", i)
		}
	}

	src := catalogLiteral(files)
	if !strings.HasPrefix(src, "rooms.Catalog{\n") {
		t.Errorf("literal starts with %q", src[:20])
	}
	if !strings.Contains(src, "\t\t{1, 2, 2, 1, 1, 1, 1, 1, 1, 1},\n") {
		t.Error("literal is missing the first row of room 0")
	}
	if !strings.Contains(src, "// 00-room") {
		t.Error("literal is missing the room name comment")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{5 * time.Second, "0:05.0"},
		{83240 * time.Millisecond, "1:23.2"},
		{10 * time.Minute, "10:00.0"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatDuration(tt.d); got != tt.want {
				t.Errorf("formatDuration(%v) = %q, expected %q", tt.d, got, tt.want)
			}
		})
	}
}
