package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/sirisha-rokkam/python-ludo/internal/entity"
	"github.com/sirisha-rokkam/python-ludo/internal/game"
	"github.com/sirisha-rokkam/python-ludo/internal/gamedata"
)

// Layout rows for the board view.
const (
	titleRow   = 0
	seatRow    = 2 // first player row
	trackPad   = 2 // blank rows between seats and the track strip
	rollPad    = 2 // blank rows between the track strip and the roll line
	messageGap = 1
)

// Renderer draws the board state to the screen.
type Renderer struct {
	screen *Screen
	colors map[string]tcell.Color // seat color tag -> render color
	glyphs map[string]rune        // seat color tag -> token glyph
}

// NewRenderer creates a renderer, resolving seat colors and token
// glyphs from the preset table.
func NewRenderer(screen *Screen, presets []gamedata.PresetDef) *Renderer {
	colors := make(map[string]tcell.Color, len(presets))
	glyphs := make(map[string]rune, len(presets))
	for i := range presets {
		colors[presets[i].Color] = presets[i].TCellColor()
		glyphs[presets[i].Color] = presets[i].TokenRune()
	}
	return &Renderer{screen: screen, colors: colors, glyphs: glyphs}
}

// RenderBoard draws the full board: one row per seat, the track strip,
// the last roll, and a message line. lastRoll <= 0 means no roll yet.
func (r *Renderer) RenderBoard(players []*entity.Player, turn int, lastRoll int, msg string) {
	r.screen.Clear()

	r.drawText(0, titleRow, tcell.StyleDefault.Bold(true), "Simple Ludo - One Token Each")

	for i, p := range players {
		r.drawSeat(seatRow+i, p, i == turn)
	}

	trackRow := seatRow + len(players) + trackPad
	r.drawTrack(trackRow, players)

	rollRow := trackRow + rollPad
	if lastRoll > 0 {
		r.drawText(0, rollRow, tcell.StyleDefault, fmt.Sprintf("Last roll: %d", lastRoll))
	}
	if msg != "" {
		r.drawText(0, rollRow+messageGap, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true), msg)
	}
	r.drawText(0, rollRow+messageGap+2, dimStyle(), "ENTER/SPACE roll   q quit")

	r.screen.Show()
}

// RenderStandings draws the final standings screen.
func (r *Renderer) RenderStandings(standings []game.Standing) {
	r.screen.Clear()

	r.drawText(0, titleRow, tcell.StyleDefault.Bold(true), "Final standings")

	for i, s := range standings {
		style := r.seatStyle(s.Player)
		if s.Status == "WINNER" {
			style = style.Bold(true)
		}
		line := fmt.Sprintf("%-10s %s", s.Player.Name, s.Status)
		r.drawText(2, seatRow+i, style, line)
	}

	r.drawText(0, seatRow+len(standings)+2, dimStyle(), "press any key to exit")

	r.screen.Show()
}

// drawSeat renders one player row: turn marker, name, color tag, status.
func (r *Renderer) drawSeat(y int, p *entity.Player, hasTurn bool) {
	marker := ' '
	if hasTurn {
		marker = '>'
	}
	r.screen.SetContent(0, y, marker, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))

	style := r.seatStyle(p)
	line := fmt.Sprintf("%-10s [%-6s] %s", p.Name, p.Color, p.Status())
	r.drawText(2, y, style, line)
}

// drawTrack renders the linear 57-cell strip with token glyphs overlaid.
// Base and finished tokens do not appear on the strip.
func (r *Renderer) drawTrack(y int, players []*entity.Player) {
	for x := 0; x < game.TrackLength; x++ {
		r.screen.SetContent(x, y, '.', dimStyle())
	}
	r.screen.SetContent(game.TrackLength, y, '#', tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	for _, p := range players {
		if p.InBase() || p.Finished {
			continue
		}
		r.screen.SetContent(p.Position, y, r.tokenGlyph(p), r.seatStyle(p).Bold(true))
	}
}

func (r *Renderer) seatStyle(p *entity.Player) tcell.Style {
	if c, ok := r.colors[p.Color]; ok {
		return tcell.StyleDefault.Foreground(c)
	}
	return tcell.StyleDefault
}

func (r *Renderer) tokenGlyph(p *entity.Player) rune {
	if g, ok := r.glyphs[p.Color]; ok {
		return g
	}
	return '@'
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, style)
	}
}

func dimStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.ColorGray)
}
