package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// PresetDef defines one of the four default table seats loaded from JSON.
type PresetDef struct {
	Name        string `json:"name"`        // Display name (e.g., "Red")
	Color       string `json:"color"`       // Color tag shown on the board (e.g., "RED")
	Hex         string `json:"hex"`         // Hex color code for rendering (e.g., "#FF3B30")
	StartOffset int    `json:"startOffset"` // Where this seat's 0 maps on a shared loop
}

// TokenRune returns the single-character glyph used for this seat's token.
func (p *PresetDef) TokenRune() rune {
	if len(p.Name) == 0 {
		return '?'
	}
	return rune(p.Name[0])
}

// TCellColor returns the seat color as a tcell.Color.
func (p *PresetDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(p.Hex)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// PresetsFile represents the structure of players.json.
type PresetsFile struct {
	Players []PresetDef `json:"players"`
}

// LoadPresets loads the seat presets from the embedded players.json file.
func LoadPresets() ([]PresetDef, error) {
	file, err := Load[PresetsFile]("players.json")
	if err != nil {
		return nil, err
	}
	return file.Players, nil
}

// MustLoadPresets loads the seat presets, panicking on error.
func MustLoadPresets() []PresetDef {
	presets, err := LoadPresets()
	if err != nil {
		panic(err)
	}
	return presets
}

// PresetsForCount returns the first count seats from the preset table.
// Count must be within the range a game accepts.
func PresetsForCount(count int) ([]PresetDef, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	if count < 2 || count > len(presets) {
		return nil, fmt.Errorf("player count %d not in [2,%d]", count, len(presets))
	}
	return presets[:count], nil
}
