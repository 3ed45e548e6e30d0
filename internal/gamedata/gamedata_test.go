package gamedata

import "testing"

func TestLoadPresets(t *testing.T) {
	presets, err := LoadPresets()
	if err != nil {
		t.Fatalf("Failed to load presets: %v", err)
	}

	if len(presets) != 4 {
		t.Fatalf("Expected 4 seat presets, got %d", len(presets))
	}

	expected := []struct {
		name   string
		color  string
		offset int
	}{
		{"Red", "RED", 0},
		{"Blue", "BLUE", 14},
		{"Green", "GREEN", 28},
		{"Yellow", "YELLOW", 42},
	}

	for i, want := range expected {
		p := presets[i]
		if p.Name != want.name || p.Color != want.color || p.StartOffset != want.offset {
			t.Errorf("Preset %d = %s/%s/%d, want %s/%s/%d",
				i, p.Name, p.Color, p.StartOffset, want.name, want.color, want.offset)
		}
		if p.Hex == "" {
			t.Errorf("Preset %d has no hex color", i)
		}
	}
}

func TestPresetsForCount(t *testing.T) {
	for _, count := range []int{2, 3, 4} {
		presets, err := PresetsForCount(count)
		if err != nil {
			t.Errorf("PresetsForCount(%d) returned error: %v", count, err)
			continue
		}
		if len(presets) != count {
			t.Errorf("PresetsForCount(%d) returned %d seats", count, len(presets))
		}
	}

	for _, count := range []int{0, 1, 5} {
		if _, err := PresetsForCount(count); err == nil {
			t.Errorf("PresetsForCount(%d) should fail", count)
		}
	}
}

func TestPresetDefMethods(t *testing.T) {
	def := PresetDef{
		Name:        "Red",
		Color:       "RED",
		Hex:         "#FF0000",
		StartOffset: 0,
	}

	if def.TokenRune() != 'R' {
		t.Errorf("Expected token 'R', got %c", def.TokenRune())
	}

	if color := def.TCellColor(); color == 0 {
		t.Error("TCellColor returned zero color")
	}

	empty := PresetDef{}
	if empty.TokenRune() != '?' {
		t.Errorf("Empty preset token = %c, want '?'", empty.TokenRune())
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#34C759", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}
