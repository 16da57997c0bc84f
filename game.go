package main

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"agario/internal/assets"
	"agario/internal/config"
	"agario/internal/gamemode"
)

// Game adapts a play session to ebiten.Game.
type Game struct {
	cfg  *config.Config
	play *gamemode.PlayMode
}

func NewGame(cfg *config.Config) *Game {
	seed := cfg.ResolveSeed()
	log.Printf("[Game] Seed %d, %d cells", seed, cfg.Cells)

	fonts := assets.LoadFonts(cfg.Font)

	var sound *assets.Sound
	if !cfg.Mute {
		s, err := assets.NewSound()
		if err != nil {
			log.Printf("[Audio] Disabled: %v", err)
		} else {
			sound = s
		}
	}

	return &Game{
		cfg:  cfg,
		play: gamemode.NewPlayMode(cfg, rand.New(rand.NewSource(seed)), fonts, sound),
	}
}

// Update: Logic (fixed TPS)
func (g *Game) Update() error {
	return g.play.Update()
}

// Draw: Rendering
func (g *Game) Draw(screen *ebiten.Image) {
	g.play.Draw(screen)
}

// Layout: the logical canvas is fixed; Ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
