// Package entity provides the game entities: players and their tokens.
package entity

import "fmt"

// Player represents one participant and their single token.
type Player struct {
	Name        string // Identifying label, unique within a game
	Color       string // Cosmetic tag (e.g. "RED"), no gameplay effect
	StartOffset int    // Where this seat's 0 maps on a shared loop; cosmetic here
	Position    int    // -1 while in base, otherwise steps taken along the track
	Finished    bool   // Set once the token reaches the final home position
}

// NewPlayer creates a player whose token is still in base.
func NewPlayer(name, color string, startOffset int) *Player {
	return &Player{
		Name:        name,
		Color:       color,
		StartOffset: startOffset,
		Position:    -1,
	}
}

// InBase reports whether the token has not yet entered the track.
func (p *Player) InBase() bool {
	return p.Position < 0
}

// Status returns the board label for the token: "BASE" before entering,
// the zero-padded track position while racing, and "HOME" once finished.
func (p *Player) Status() string {
	switch {
	case p.Finished:
		return "HOME"
	case p.InBase():
		return "BASE"
	default:
		return fmt.Sprintf("%02d", p.Position)
	}
}

// String renders the player in a compact debug form.
func (p *Player) String() string {
	state := p.Status()
	if p.Finished {
		state = "FINISHED"
	}
	return fmt.Sprintf("%s(%s): %s", p.Name, p.Color, state)
}
