package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults() failed: %v", err)
	}
	for _, name := range []FontName{Regular, Small, Bold, Title} {
		t.Run(string(name), func(t *testing.T) {
			if name.Get() == nil {
				t.Errorf("%s face is nil", name)
			}
		})
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Error("expected an error for invalid TTF data")
	}
}

func TestGetUnknownFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown font")
		}
	}()
	FontName("missing").Get()
}
