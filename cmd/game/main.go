package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Pitch-Sense/internal/game"
)

func main() {
	g := game.New()
	ebiten.SetWindowTitle("Pitch Sense - " + g.Describe())
	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
