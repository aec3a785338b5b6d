package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ThemeDef is the color theme as stored in JSON.
type ThemeDef struct {
	Background string `json:"background"`
	Head       string `json:"head"`
	Body       string `json:"body"`
	Tail       string `json:"tail"`
	Food       string `json:"food"`
	Text       string `json:"text"`
	Border     string `json:"border"`
	FoodGlyph  string `json:"foodGlyph"`
}

// Theme is a resolved theme ready for rendering.
type Theme struct {
	Background tcell.Color
	Head       tcell.Color
	Body       tcell.Color
	Tail       tcell.Color
	Food       tcell.Color
	Text       tcell.Color
	Border     tcell.Color
	FoodGlyph  rune
}

// Resolve parses every color in the definition.
func (d ThemeDef) Resolve() (Theme, error) {
	var t Theme

	fields := []struct {
		name string
		hex  string
		dst  *tcell.Color
	}{
		{"background", d.Background, &t.Background},
		{"head", d.Head, &t.Head},
		{"body", d.Body, &t.Body},
		{"tail", d.Tail, &t.Tail},
		{"food", d.Food, &t.Food},
		{"text", d.Text, &t.Text},
		{"border", d.Border, &t.Border},
	}
	for _, f := range fields {
		c, err := ParseHexColor(f.hex)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %s: %w", f.name, err)
		}
		*f.dst = c
	}

	t.FoodGlyph = ' '
	for _, r := range d.FoodGlyph {
		t.FoodGlyph = r
		break
	}

	return t, nil
}

// LoadTheme loads and resolves the embedded theme.json file.
func LoadTheme() (Theme, error) {
	def, err := Load[ThemeDef]("theme.json")
	if err != nil {
		return Theme{}, err
	}
	return def.Resolve()
}
