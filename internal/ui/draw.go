package ui

import (
	"fmt"
	"image/color"

	"pacman/internal/entities"
	"pacman/internal/game"
	"pacman/internal/maze"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	wallColor   = color.RGBA{R: 33, G: 33, B: 255, A: 255}
	houseColor  = color.RGBA{R: 255, G: 184, B: 222, A: 255}
	pelletColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	pacmanColor = color.RGBA{R: 255, G: 221, B: 0, A: 255}
	fleeColor   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	flashColor  = color.RGBA{R: 240, G: 240, B: 255, A: 255}

	ghostColors = map[string]color.RGBA{
		"blinky": {R: 255, G: 0, B: 0, A: 255},
		"pinky":  {R: 255, G: 128, B: 255, A: 255},
		"inky":   {R: 0, G: 191, B: 255, A: 255},
		"clyde":  {R: 255, G: 128, B: 0, A: 255},
	}
)

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	m := a.session.Maze()
	nativeW := m.Width * tileSize
	nativeH := m.Height * tileSize
	off := ebiten.NewImage(nativeW, nativeH)

	a.drawMaze(off)
	a.drawCollectibles(off)
	a.drawPlayer(off)
	a.drawGhosts(off)
	a.drawHUD(off, nativeW, nativeH)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(a.scale, a.scale)
	screen.DrawImage(off, op)
}

func (a *App) drawMaze(dst *ebiten.Image) {
	m := a.session.Maze()
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			px := float32(x * tileSize)
			py := float32(y * tileSize)
			switch m.At(x, y) {
			case maze.Wall:
				vector.DrawFilledRect(dst, px, py, tileSize, tileSize, wallColor, false)
			case maze.GhostHouse:
				vector.DrawFilledRect(dst, px+6, py+6, 4, 4, houseColor, false)
			}
		}
	}
}

func (a *App) drawCollectibles(dst *ebiten.Image) {
	m := a.session.Maze()
	store := a.session.Collectibles()
	// Power pellets blink on a slow frame cycle.
	showPellets := a.frame%30 < 20
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := entities.Point{X: x, Y: y}
			cx := float32(x*tileSize + tileSize/2)
			cy := float32(y*tileSize + tileSize/2)
			if store.HasDot(p) {
				vector.DrawFilledCircle(dst, cx, cy, tileSize/8, pelletColor, true)
			} else if store.HasPowerPellet(p) && showPellets {
				vector.DrawFilledCircle(dst, cx, cy, tileSize/4, pelletColor, true)
			}
		}
	}
}

func (a *App) drawPlayer(dst *ebiten.Image) {
	// Blink while invincible after a respawn.
	if a.session.Invincible() && a.frame%10 < 4 {
		return
	}
	p := a.session.Player().Pos
	cx := float32(p.X*tileSize + tileSize/2)
	cy := float32(p.Y*tileSize + tileSize/2)
	vector.DrawFilledCircle(dst, cx, cy, tileSize/2-2, pacmanColor, true)
}

func (a *App) drawGhosts(dst *ebiten.Image) {
	for _, g := range a.session.Ghosts() {
		cx := float32(g.Pos.X*tileSize + tileSize/2)
		cy := float32(g.Pos.Y*tileSize + tileSize/2)
		if g.Mode == entities.ModeEaten {
			// Eyes only on the way home.
			vector.DrawFilledCircle(dst, cx-3, cy, 2, pelletColor, true)
			vector.DrawFilledCircle(dst, cx+3, cy, 2, pelletColor, true)
			continue
		}
		c, ok := ghostColors[g.Name]
		if !ok {
			c = fleeColor
		}
		if g.Vulnerable {
			c = fleeColor
			if g.Flashing && a.frame%16 < 8 {
				c = flashColor
			}
		}
		vector.DrawFilledCircle(dst, cx, cy, tileSize/2-2, c, true)
	}
}

func (a *App) drawHUD(dst *ebiten.Image, nativeW, nativeH int) {
	s := a.session
	hud := fmt.Sprintf("Score: %d  High: %d  Lives: %d  Round: %d/%d  FPS: %0.0f",
		s.Score(), s.HighScore(), s.Lives(), s.Round(), s.MaxRounds(), ebiten.ActualFPS())
	text.Draw(dst, hud, basicfont.Face7x13, 4, 12, color.White)

	if s.PowerActive() {
		timer := fmt.Sprintf("Power: %.1fs", s.PowerRemaining().Seconds())
		tw := len(timer) * 7
		text.Draw(dst, timer, basicfont.Face7x13, nativeW-tw-4, nativeH-4, color.RGBA{R: 0, G: 255, B: 255, A: 255})
	}

	var banner string
	switch s.Status() {
	case game.StatusReady:
		banner = "READY - PRESS SPACE"
	case game.StatusPaused:
		banner = "PAUSED"
	case game.StatusRoundComplete:
		banner = fmt.Sprintf("ROUND %d CLEARED", s.Round())
	case game.StatusGameComplete:
		banner = "YOU WIN - PRESS SPACE"
	case game.StatusGameOver:
		banner = "GAME OVER - PRESS SPACE"
	}
	if banner != "" {
		bw := len(banner) * 7
		text.Draw(dst, banner, basicfont.Face7x13, (nativeW-bw)/2, nativeH/2, color.White)
	}
}
