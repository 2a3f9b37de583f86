package ui

import (
	"math"
	"time"

	"pacman/internal/game"
	"pacman/internal/maze"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	tileSize         = 16
	updatesPerSecond = 60
	frameDuration    = time.Second / updatesPerSecond
)

// App adapts a game.Session to ebiten's loop: it forwards input, advances
// the simulation by one frame's worth of time, and draws the published
// state. It reads the core; it never writes grid state.
type App struct {
	session *game.Session
	audio   *AudioManager

	scale      float64
	fullscreen bool
	frame      int
	quit       bool
}

func New() *App {
	s := game.NewSession(maze.Default())
	a := &App{
		session: s,
		audio:   NewAudioManager("assets/sounds"),
	}
	a.audio.Attach(s.Bus())

	// Fit the window into ~75% of the display.
	m := s.Maze()
	nativeW := m.Width * tileSize
	nativeH := m.Height * tileSize
	sw, sh := ebiten.ScreenSizeInFullscreen()
	scaleW := 0.75 * float64(sw) / float64(nativeW)
	scaleH := 0.75 * float64(sh) / float64(nativeH)
	a.scale = math.Min(scaleW, scaleH)
	if a.scale <= 0 || math.IsNaN(a.scale) || math.IsInf(a.scale, 0) {
		a.scale = 1.0
	}
	return a
}

func (a *App) ScreenWidth() int {
	return int(float64(a.session.Maze().Width*tileSize) * a.scale)
}

func (a *App) ScreenHeight() int {
	return int(float64(a.session.Maze().Height*tileSize) * a.scale)
}

func (a *App) Update() error {
	a.frame++
	a.handleInput()
	if a.quit {
		return ebiten.Termination
	}
	a.session.Advance(frameDuration)
	return nil
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.ScreenWidth(), a.ScreenHeight()
}
