package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"ballpit/internal/assets"
	"ballpit/internal/config"
	"ballpit/internal/entity"
	"ballpit/internal/gamemode"
	"ballpit/internal/input"
	"ballpit/internal/palette"
	"ballpit/internal/sound"
	"ballpit/internal/ui"
)

// Overlay layout
const (
	FontSize       = 20
	CursorSize     = 30
	ExitMargin     = 60 // EXIT sits this far left of the right edge
	PanelRoundness = 0.025
)

// Game holds global state
type Game struct {
	arena  *gamemode.Arena
	exit   *ui.Button
	cursor ui.Cursor
	face   *text.GoTextFace
	sound  *sound.Player // nil when disabled
	mouse  input.Pointer
}

func NewGame(cfg config.Config, rng entity.Rand) *Game {
	face := assets.LoadFace(FontSize)

	g := &Game{
		arena: gamemode.NewArena(rng, ScreenWidth, ScreenHeight, gamemode.ArenaOptions{
			Collide: cfg.Collision,
			Cap:     cfg.Cap,
		}),
		exit: ui.NewButton(ScreenWidth-ExitMargin, 5, "EXIT", face, palette.FG),
		cursor: ui.Cursor{
			Face:       face,
			ShadowFace: assets.LoadFace(CursorSize),
			Color:      palette.FG,
		},
		face: face,
	}

	if cfg.Sound {
		p, err := sound.NewPlayer()
		if err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			g.sound = p
		}
	}
	return g
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	return g.step(1/float64(ebiten.TPS()), input.Poll())
}

func (g *Game) step(dt float64, in input.Frame) error {
	if err := g.arena.Update(dt, in.Pointer); err != nil {
		return err
	}
	if g.sound != nil && g.arena.Bounced() > 0 {
		g.sound.Blip()
	}

	g.mouse = in.Pointer
	if g.exit.Update(dt, in.Pointer) || in.Escape {
		return ebiten.Termination
	}
	return nil
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	// 1. Transparent clear, rounded panel as the visible window
	screen.Clear()
	ui.FillRoundedRect(screen, ui.Rect{W: ScreenWidth, H: ScreenHeight}, PanelRoundness, palette.BG)

	// 2. Balls
	g.arena.Draw(screen)

	// 3. Overlay
	ui.DrawText(screen, fmt.Sprintf("Time: %.2f", g.arena.TimeElapsed), g.face, 5, 5, palette.FG)
	ui.DrawText(screen, fmt.Sprintf("Balls: %d", len(g.arena.Balls)), g.face, 5, 25, palette.FG)
	g.exit.Draw(screen)
	g.cursor.Draw(screen, g.mouse.X, g.mouse.Y)
}

// Layout: fixed logical size, the window is not resizable
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
