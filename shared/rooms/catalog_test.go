package rooms

import "testing"

func TestDefaultCatalogIsValid(t *testing.T) {
	if err := DefaultCatalog().Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestDefaultCatalogIsACopy(t *testing.T) {
	c := DefaultCatalog()
	c[0][0][0] = Exit
	if DefaultCatalog()[0][0][0] != Ground {
		t.Error("mutating a returned catalog changed the built-in rooms")
	}
}

func TestGridValidate(t *testing.T) {
	base := func() Grid {
		var g Grid
		for i := 0; i < Size; i++ {
			g[0][i], g[Size-1][i], g[i][0], g[i][Size-1] = Ground, Ground, Ground, Ground
		}
		return g
	}

	tests := []struct {
		name    string
		edit    func(g *Grid)
		wantErr bool
	}{
		{"single start", func(g *Grid) { g[4][0] = Start }, false},
		{"vertical doorway", func(g *Grid) { g[4][0], g[5][0] = Start, Start }, false},
		{"horizontal doorway", func(g *Grid) { g[9][1], g[9][2] = Start, Start }, false},
		{"no start", func(g *Grid) {}, true},
		{"split doorway", func(g *Grid) { g[2][0], g[5][0] = Start, Start }, true},
		{"diagonal doorway", func(g *Grid) { g[4][0], g[5][1] = Start, Start }, true},
		{"unknown tile", func(g *Grid) { g[4][0], g[3][3] = Start, TileType(42) }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := base()
			tc.edit(&g)
			err := g.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestCatalogValidateEmpty(t *testing.T) {
	if err := (Catalog{}).Validate(); err == nil {
		t.Error("expected an error for an empty catalog")
	}
}

func TestTileClassification(t *testing.T) {
	tests := []struct {
		tile                      TileType
		solid, death, exit, start bool
	}{
		{Air, false, false, false, false},
		{Ground, true, false, false, false},
		{Exit, false, false, true, false},
		{Start, false, false, false, true},
		{Stalagmite, false, true, false, false},
		{Stalactite, false, true, false, false},
		{Rail, false, false, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.tile.String(), func(t *testing.T) {
			if IsSolid(tc.tile) != tc.solid {
				t.Errorf("IsSolid(%v) = %v", tc.tile, !tc.solid)
			}
			if IsDeath(tc.tile) != tc.death {
				t.Errorf("IsDeath(%v) = %v", tc.tile, !tc.death)
			}
			if IsExit(tc.tile) != tc.exit {
				t.Errorf("IsExit(%v) = %v", tc.tile, !tc.exit)
			}
			if IsStart(tc.tile) != tc.start {
				t.Errorf("IsStart(%v) = %v", tc.tile, !tc.start)
			}
		})
	}
}

func TestParseTileType(t *testing.T) {
	for tile := Air; tile <= Rail; tile++ {
		got, ok := ParseTileType(tile.String())
		if !ok || got != tile {
			t.Errorf("ParseTileType(%q) = %v, %v", tile.String(), got, ok)
		}
	}
	if _, ok := ParseTileType("lava"); ok {
		t.Error("ParseTileType(\"lava\") should fail")
	}
}
