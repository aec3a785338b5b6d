package gamedata

import (
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"
)

func TestLoadSettings(t *testing.T) {
	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}

	if s.Width != 25 || s.Height != 25 {
		t.Errorf("board = %dx%d, want 25x25", s.Width, s.Height)
	}
	if s.Start.X != 10 || s.Start.Y != 10 || s.Start.Direction != "up" {
		t.Errorf("start = %+v, want (10, 10) up", s.Start)
	}
	if s.TickIntervalMs != 300 {
		t.Errorf("TickIntervalMs = %d, want 300", s.TickIntervalMs)
	}
	if s.FoodMinDistanceSq != 10 {
		t.Errorf("FoodMinDistanceSq = %d, want 10", s.FoodMinDistanceSq)
	}
	if s.FoodMaxAttempts <= 0 {
		t.Errorf("FoodMaxAttempts = %d, want > 0", s.FoodMaxAttempts)
	}
}

func TestLoadTheme(t *testing.T) {
	theme, err := LoadTheme()
	if err != nil {
		t.Fatalf("Failed to load theme: %v", err)
	}

	if theme.Background != tcell.NewRGBColor(0xff, 0xe4, 0xc4) {
		t.Errorf("Background = %v, want bisque", theme.Background)
	}
	if theme.Body != tcell.NewRGBColor(0x00, 0x80, 0x00) {
		t.Errorf("Body = %v, want green", theme.Body)
	}
	if theme.FoodGlyph != '●' {
		t.Errorf("FoodGlyph = %q, want '●'", theme.FoodGlyph)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		want    tcell.Color
		wantErr bool
	}{
		{"#FF0000", tcell.NewRGBColor(255, 0, 0), false},
		{"#00ff7f", tcell.NewRGBColor(0, 255, 127), false},
		{"#fff", tcell.NewRGBColor(255, 255, 255), false},
		{"#GG0000", tcell.ColorDefault, true},
		{"", tcell.ColorDefault, true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.hex)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tt.hex, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestThemeResolveRejectsBadColor(t *testing.T) {
	def := ThemeDef{
		Background: "#000000",
		Head:       "#000000",
		Body:       "not-a-color",
		Tail:       "#000000",
		Food:       "#000000",
		Text:       "#000000",
		Border:     "#000000",
	}

	if _, err := def.Resolve(); err == nil {
		t.Error("Resolve() should fail on an invalid body color")
	}
}

func TestLoadFSRejectsUnknownFields(t *testing.T) {
	fsys := fstest.MapFS{
		"settings.json": &fstest.MapFile{Data: []byte(`{"width": 10, "bogus": true}`)},
	}

	if _, err := LoadFS[Settings](fsys, "settings.json"); err == nil {
		t.Error("LoadFS() should reject unknown fields")
	}
	if _, err := LoadFS[Settings](fsys, "missing.json"); err == nil {
		t.Error("LoadFS() should fail on a missing file")
	}
}
