package main

import (
	"log"

	"pacman/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	app := ui.New()
	ebiten.SetWindowTitle("Pacman (Go + Ebiten)")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowSize(app.ScreenWidth(), app.ScreenHeight())
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
