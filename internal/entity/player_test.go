package entity

import "testing"

func TestNewPlayerStartsInBase(t *testing.T) {
	p := NewPlayer("Red", "RED", 0)

	if p.Position != -1 {
		t.Errorf("Position = %d, want -1", p.Position)
	}
	if p.Finished {
		t.Error("New player should not be finished")
	}
	if !p.InBase() {
		t.Error("New player should be in base")
	}
}

func TestPlayerStatus(t *testing.T) {
	tests := []struct {
		name     string
		position int
		finished bool
		expected string
	}{
		{"in base", -1, false, "BASE"},
		{"at start", 0, false, "00"},
		{"single digit", 7, false, "07"},
		{"double digit", 42, false, "42"},
		{"finished", 57, true, "HOME"},
	}

	for _, tt := range tests {
		p := NewPlayer("Red", "RED", 0)
		p.Position = tt.position
		p.Finished = tt.finished

		if got := p.Status(); got != tt.expected {
			t.Errorf("%s: Status() = %q, want %q", tt.name, got, tt.expected)
		}
	}
}

func TestPlayerString(t *testing.T) {
	p := NewPlayer("Blue", "BLUE", 14)
	if got := p.String(); got != "Blue(BLUE): BASE" {
		t.Errorf("String() = %q, want %q", got, "Blue(BLUE): BASE")
	}

	p.Position = 5
	if got := p.String(); got != "Blue(BLUE): 05" {
		t.Errorf("String() = %q, want %q", got, "Blue(BLUE): 05")
	}

	p.Finished = true
	if got := p.String(); got != "Blue(BLUE): FINISHED" {
		t.Errorf("String() = %q, want %q", got, "Blue(BLUE): FINISHED")
	}
}

func TestStartOffsetIsCosmetic(t *testing.T) {
	a := NewPlayer("Red", "RED", 0)
	b := NewPlayer("Yellow", "YELLOW", 42)

	if a.Position != b.Position {
		t.Error("Start offset must not affect the starting position")
	}
}
