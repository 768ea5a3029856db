package render

import (
	"fmt"

	"github.com/tomz197/skyguard/internal/config"
	"github.com/tomz197/skyguard/internal/draw"
	"github.com/tomz197/skyguard/internal/game"
)

// titleArt is the start screen banner (figlet "small" font).
var titleArt = []string{
	` ___ _  ____   _____ _   _  _   ___ ___  `,
	`/ __| |/ /\ \ / / __| | | |/_\ | _ \   \ `,
	`\__ \ ' <  \ V / (_ | |_| / _ \|   / |) |`,
	`|___/_|\_\  |_| \___|\___/_/ \_\_|_\___/ `,
}

// drawUI draws the text overlay for the current phase.
func (r *Renderer) drawUI(snap game.Snapshot, ov Overlay) {
	termWidth := r.canvas.TerminalWidth()
	termHeight := r.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if ov.IdleWarning {
		r.drawInactivityScreen(centerX, centerY, ov)
		return
	}

	switch snap.Phase {
	case game.PhaseNotStarted:
		r.drawStartScreen(centerX, centerY)
	case game.PhaseRunning:
		r.drawPlayingHUD(snap, termWidth, termHeight)
		if snap.LevelMessageVisible {
			r.drawLevelBanner(snap, centerX, centerY)
		}
	case game.PhaseGameOver:
		r.drawPlayingHUD(snap, termWidth, termHeight)
		r.drawGameOverScreen(snap, centerX, centerY)
	case game.PhaseGameClear:
		r.drawGameClearScreen(snap, centerX, centerY)
	}
}

// drawStartScreen draws the title screen.
func (r *Renderer) drawStartScreen(centerX, centerY int) {
	titleWidth := 0
	for _, line := range titleArt {
		titleWidth = max(titleWidth, len(line))
	}

	titleStartY := centerY - 7
	for i, line := range titleArt {
		r.text(centerX-titleWidth/2, titleStartY+i, line, draw.ColorCyan)
	}

	row := titleStartY + len(titleArt) + 1
	r.centered(centerX, row, "~ Defend the sky for five levels ~", draw.ColorNone)

	controls := []string{
		"A/D or Arrows  Move",
		"SPACE/W/Up     Fire",
		"Q              Quit",
	}
	for i, line := range controls {
		r.centered(centerX, row+2+i, line, draw.ColorGray)
	}

	r.centered(centerX, row+3+len(controls), "Press SPACE or ENTER to start", draw.ColorYellow)
}

// drawPlayingHUD draws level, score, health, shield and power in the corners.
func (r *Renderer) drawPlayingHUD(snap game.Snapshot, termWidth, termHeight int) {
	p := snap.Player

	r.text(2, 1, fmt.Sprintf("Level %d ", snap.Level), draw.ColorWhite)

	score := fmt.Sprintf(" Score: %d", snap.Score)
	r.text(termWidth-len(score), 1, score, draw.ColorWhite)

	r.text(2, termHeight, fmt.Sprintf("HP: %d ", p.Health), draw.ColorGreen)

	status := fmt.Sprintf(" Shield: %d  Power: x%.1f", p.ShieldHealth, p.Power)
	r.text(termWidth-len(status), termHeight, status, draw.ColorCyan)
}

// drawLevelBanner announces a new level.
func (r *Renderer) drawLevelBanner(snap game.Snapshot, centerX, centerY int) {
	r.centered(centerX, centerY-1, "LEVEL UP!", draw.ColorYellow)
	r.centered(centerX, centerY+1, fmt.Sprintf("Level %d", snap.Level), draw.ColorWhite)
}

// drawGameOverScreen draws the game over screen.
func (r *Renderer) drawGameOverScreen(snap game.Snapshot, centerX, centerY int) {
	r.centered(centerX, centerY-2, "GAME OVER", draw.ColorRed)
	r.centered(centerX, centerY, fmt.Sprintf("Score: %d", snap.Score), draw.ColorWhite)
	r.centered(centerX, centerY+2, "Returning to title...", draw.ColorGray)
}

// drawGameClearScreen draws the victory screen.
func (r *Renderer) drawGameClearScreen(snap game.Snapshot, centerX, centerY int) {
	r.centered(centerX, centerY-2, "GAME CLEAR", draw.ColorGreen)
	r.centered(centerX, centerY, fmt.Sprintf("Final score: %d", snap.Score), draw.ColorWhite)
	r.centered(centerX, centerY+2, fmt.Sprintf("All %d levels cleared", config.MaxLevel), draw.ColorGray)
}

// drawInactivityScreen draws the inactivity warning screen.
func (r *Renderer) drawInactivityScreen(centerX, centerY int, ov Overlay) {
	r.centered(centerX, centerY-2, "INACTIVITY WARNING", draw.ColorYellow)

	msg := fmt.Sprintf("You will be disconnected in %d seconds.", int(ov.Disconnect.Seconds()))
	r.centered(centerX, centerY, msg, draw.ColorWhite)

	r.centered(centerX, centerY+2, "Press any key to continue", draw.ColorGray)
}
