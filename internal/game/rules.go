package game

import (
	"github.com/sirisha-rokkam/python-ludo/internal/dice"
	"github.com/sirisha-rokkam/python-ludo/internal/entity"
)

// TrackLength is the number of steps from entering the track to home.
// Positions 0..56 are on-track; reaching exactly 57 finishes the token.
const TrackLength = 57

// CanEnter reports whether a token still in base may enter the track.
// Entering requires the maximum die face.
func CanEnter(roll, position int) bool {
	return position < 0 && roll == dice.Sides
}

// CanAdvance reports whether an on-track token may move forward by roll.
// A move that would overshoot home is forfeited entirely; there is no
// partial move and no bounce-back.
func CanAdvance(position, roll int) bool {
	if position < 0 {
		return false
	}
	return position+roll <= TrackLength
}

// ApplyMove resolves a single roll for a player and reports what happened.
//
// Entering consumes the whole roll; a token never enters and advances in
// the same turn. Blocked rolls leave the player untouched. The call is
// atomic and total: it either applies the one legal move or none.
func ApplyMove(p *entity.Player, roll int) Outcome {
	if p.Finished {
		return OutcomeNoOpFinished
	}

	if CanEnter(roll, p.Position) {
		p.Position = 0
		return OutcomeEntered
	}

	if CanAdvance(p.Position, roll) {
		p.Position += roll
		if p.Position == TrackLength {
			p.Finished = true
		}
		return OutcomeAdvanced
	}

	if p.InBase() {
		return OutcomeBlockedNeedSix
	}
	return OutcomeBlockedOvershoot
}

// EveryoneFinished reports whether all players have brought their token home.
func EveryoneFinished(players []*entity.Player) bool {
	for _, p := range players {
		if !p.Finished {
			return false
		}
	}
	return true
}

// NextTurnIndex cycles the turn to the next seat, wrapping around.
// Skipping finished players is the caller's job.
func NextTurnIndex(current, playerCount int) int {
	return (current + 1) % playerCount
}
