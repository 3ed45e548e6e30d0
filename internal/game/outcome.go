package game

// Outcome classifies what a single roll did for the acting player.
// Blocked rolls are expected, frequent game states, not errors.
type Outcome int

const (
	// OutcomeEntered - rolled the entry face and left base for position 0
	OutcomeEntered Outcome = iota
	// OutcomeAdvanced - moved forward on the track (possibly finishing)
	OutcomeAdvanced
	// OutcomeBlockedNeedSix - still in base, roll was not a six
	OutcomeBlockedNeedSix
	// OutcomeBlockedOvershoot - the move would have run past home
	OutcomeBlockedOvershoot
	// OutcomeNoOpFinished - the player had already finished
	OutcomeNoOpFinished
)

// String returns a machine-friendly outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeEntered:
		return "entered"
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeBlockedNeedSix:
		return "blocked_need_six"
	case OutcomeBlockedOvershoot:
		return "blocked_overshoot"
	case OutcomeNoOpFinished:
		return "no_op_finished"
	default:
		return "unknown"
	}
}

// Blocked reports whether the roll produced no movement for an
// unfinished player.
func (o Outcome) Blocked() bool {
	return o == OutcomeBlockedNeedSix || o == OutcomeBlockedOvershoot
}
