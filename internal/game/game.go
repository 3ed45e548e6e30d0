// Package game provides the turn engine: movement rules, turn
// sequencing, and end-of-game detection for a single-token race.
package game

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"github.com/sirisha-rokkam/python-ludo/internal/dice"
	"github.com/sirisha-rokkam/python-ludo/internal/entity"
	"github.com/sirisha-rokkam/python-ludo/internal/telemetry"
)

// ErrInvalidPlayerCount is returned by New when the player count is
// outside [2,4]. It is the only hard failure in the engine.
var ErrInvalidPlayerCount = errors.New("player count must be between 2 and 4")

// Game owns the player collection and the turn index. All engine
// operations act on an explicit Game; there are no package-level
// singletons.
type Game struct {
	players []*entity.Player
	turn    int
	roller  dice.Roller
	winner  *entity.Player
	over    bool
}

// StepResult describes one resolved decision point for the presentation
// layer to render.
type StepResult struct {
	Player    *entity.Player // Who acted; nil if the game was already over
	Roll      int
	Outcome   Outcome
	Position  int  // Player position after the move
	Finished  bool // Player finished state after the move
	ExtraTurn bool // Same player rolls again (rolled a six, did not finish)
	GameOver  bool
}

// New creates a game for the given players. The roller supplies die
// rolls for StepRoll; tests typically pass a dice.Script.
func New(players []*entity.Player, roller dice.Roller) (*Game, error) {
	if len(players) < 2 || len(players) > 4 {
		return nil, ErrInvalidPlayerCount
	}
	return &Game{players: players, roller: roller}, nil
}

// Players returns the seated players in turn order.
func (g *Game) Players() []*entity.Player {
	return g.players
}

// TurnIndex returns the current seat index.
func (g *Game) TurnIndex() int {
	return g.turn
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	return g.over
}

// Winner returns the first player to finish, or nil while the race is on.
func (g *Game) Winner() *entity.Player {
	return g.winner
}

// CurrentPlayer returns the player who holds the turn, skipping finished
// players without consuming a roll. Returns nil once everyone is
// finished, marking the game over.
func (g *Game) CurrentPlayer() *entity.Player {
	for range g.players {
		p := g.players[g.turn]
		if !p.Finished {
			return p
		}
		g.turn = NextTurnIndex(g.turn, len(g.players))
	}
	g.over = true
	return nil
}

// Step resolves exactly one decision point with the given roll: apply
// the move for the current player, detect the end of the game, and
// either grant an extra turn or pass the turn on. Callers drive the
// game one Step at a time; the engine never owns a loop.
func (g *Game) Step(roll int) StepResult {
	if g.over {
		return StepResult{Roll: roll, Outcome: OutcomeNoOpFinished, GameOver: true}
	}

	p := g.CurrentPlayer()
	if p == nil {
		return StepResult{Roll: roll, Outcome: OutcomeNoOpFinished, GameOver: true}
	}

	outcome := ApplyMove(p, roll)
	res := StepResult{
		Player:   p,
		Roll:     roll,
		Outcome:  outcome,
		Position: p.Position,
		Finished: p.Finished,
	}

	// First finisher wins and the game ends immediately. A six that
	// finishes grants no extra turn.
	if p.Finished {
		if g.winner == nil {
			g.winner = p
		}
		g.over = true
		res.GameOver = true
		return res
	}

	// Secondary end condition, reachable only if a caller keeps issuing
	// turns past the winner check.
	if EveryoneFinished(g.players) {
		g.over = true
		res.GameOver = true
		return res
	}

	if roll == dice.Sides {
		res.ExtraTurn = true
		return res
	}

	g.turn = NextTurnIndex(g.turn, len(g.players))
	return res
}

// StepRoll draws a roll from the injected roller and resolves it,
// recording a trace span for the turn.
func (g *Game) StepRoll(ctx context.Context) StepResult {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.turn")
	defer span.End()

	res := g.Step(g.roller.Roll())

	span.SetAttributes(
		attribute.Int("roll", res.Roll),
		attribute.String("outcome", res.Outcome.String()),
		attribute.Bool("extra_turn", res.ExtraTurn),
		attribute.Bool("game_over", res.GameOver),
	)
	if res.Player != nil {
		span.SetAttributes(
			attribute.String("player", res.Player.Name),
			attribute.Int("position", res.Position),
		)
	}
	return res
}

// Standing pairs a player with their final status label.
type Standing struct {
	Player *entity.Player
	Status string // "WINNER", "POS n", or "BASE"
}

// Standings returns the final standings in seat order.
func (g *Game) Standings() []Standing {
	standings := make([]Standing, 0, len(g.players))
	for _, p := range g.players {
		standings = append(standings, Standing{Player: p, Status: standingStatus(p)})
	}
	return standings
}

func standingStatus(p *entity.Player) string {
	switch {
	case p.Finished:
		return "WINNER"
	case p.Position >= 0:
		return "POS " + itoa(p.Position)
	default:
		return "BASE"
	}
}

// itoa is a simple int to string helper.
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	if i < 0 {
		return "-" + itoa(-i)
	}
	digits := ""
	for i > 0 {
		digits = string(rune('0'+i%10)) + digits
		i /= 10
	}
	return digits
}
