package ui

import (
	"pacman/internal/entities"
	"pacman/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (a *App) handleInput() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		a.session.RequestDirection(entities.DirUp)
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		a.session.RequestDirection(entities.DirDown)
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		a.session.RequestDirection(entities.DirLeft)
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		a.session.RequestDirection(entities.DirRight)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		switch a.session.Status() {
		case game.StatusReady:
			a.session.Start()
		case game.StatusGameOver, game.StatusGameComplete:
			a.session.Restart()
			a.session.Start()
		default:
			a.session.TogglePause()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.session.Restart()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		a.fullscreen = !a.fullscreen
		ebiten.SetFullscreen(a.fullscreen)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.quit = true
	}
}
