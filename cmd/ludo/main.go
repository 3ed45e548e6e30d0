// Package main is the entry point for the Ludo terminal game.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"github.com/sirisha-rokkam/python-ludo/internal/dice"
	"github.com/sirisha-rokkam/python-ludo/internal/entity"
	"github.com/sirisha-rokkam/python-ludo/internal/game"
	"github.com/sirisha-rokkam/python-ludo/internal/gamedata"
	"github.com/sirisha-rokkam/python-ludo/internal/telemetry"
	"github.com/sirisha-rokkam/python-ludo/internal/ui"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_LUDO_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed, err = dice.NewSeed()
		if err != nil {
			log.Fatalf("Failed to seed dice: %v", err)
		}
	}

	presets, err := gamedata.PresetsForCount(cfg.PlayerCount)
	if err != nil {
		log.Fatalf("Invalid LUDO_PLAYERS: %v", err)
	}

	players := make([]*entity.Player, 0, len(presets))
	for _, p := range presets {
		players = append(players, entity.NewPlayer(p.Name, p.Color, p.StartOffset))
	}

	g, err := game.New(players, dice.New(seed))
	if err != nil {
		log.Fatalf("Failed to set up game: %v", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Close()

	a := &app{
		screen:   screen,
		renderer: ui.NewRenderer(screen, presets),
		game:     g,
	}
	a.run(ctx)
}

// app drives the turn engine one step per keypress.
type app struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	game     *game.Game
	running  bool
	lastRoll int
	message  string
}

// run executes the main event loop.
func (a *app) run(ctx context.Context) {
	a.running = true
	a.message = "Need a 6 to leave base. Roll 6 for an extra turn. Reach 57 to win."

	for a.running {
		if a.game.Over() {
			a.showStandings()
			return
		}

		// Normalize the turn index past finished seats before drawing
		a.game.CurrentPlayer()
		a.renderer.RenderBoard(a.game.Players(), a.game.TurnIndex(), a.lastRoll, a.message)

		a.handleInput(ctx)
	}
}

// handleInput processes a single input event.
func (a *app) handleInput(ctx context.Context) {
	ev := a.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (a *app) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.running = false

	case tcell.KeyEnter:
		a.takeTurn(ctx)

	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			a.takeTurn(ctx)
		case 'q', 'Q':
			a.running = false
		}
	}
}

// takeTurn resolves one roll for the current player.
func (a *app) takeTurn(ctx context.Context) {
	res := a.game.StepRoll(ctx)
	a.lastRoll = res.Roll
	a.message = describe(res)
}

// showStandings renders the final standings and waits for a key.
func (a *app) showStandings() {
	a.renderer.RenderStandings(a.game.Standings())
	for {
		switch a.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return
		case *tcell.EventResize:
			a.screen.Sync()
			a.renderer.RenderStandings(a.game.Standings())
		}
	}
}

// describe turns a step result into the message line shown to players.
func describe(res game.StepResult) string {
	if res.Player == nil {
		return "Game over."
	}

	name := res.Player.Name
	var msg string
	switch res.Outcome {
	case game.OutcomeEntered:
		msg = fmt.Sprintf("%s rolled a 6 and enters the track!", name)
	case game.OutcomeAdvanced:
		if res.Finished {
			return fmt.Sprintf("%s reached HOME! They WIN!", name)
		}
		msg = fmt.Sprintf("%s moved from %d to %d.", name, res.Position-res.Roll, res.Position)
	case game.OutcomeBlockedNeedSix:
		msg = fmt.Sprintf("%s is in base and needs a 6 to enter. No move.", name)
	case game.OutcomeBlockedOvershoot:
		msg = fmt.Sprintf("%s would overshoot HOME. No move.", name)
	default:
		msg = fmt.Sprintf("%s has already finished.", name)
	}

	if res.ExtraTurn {
		msg += " Extra turn!"
	}
	return msg
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Construct the headers from our API key here - the .env file may have
	// an unexpanded variable reference that doesn't work
	apiKey := os.Getenv("HONEYCOMB_LUDO_API_KEY")
	dataset := os.Getenv("HONEYCOMB_LUDO_DATASET")
	if dataset == "" {
		dataset = "ludo" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
