package client

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/earthdefense/internal/draw"
	"github.com/tomz197/earthdefense/internal/loop"
	"github.com/tomz197/earthdefense/internal/loop/config"
	"github.com/tomz197/earthdefense/internal/object"
)

// Palette
var (
	shipColor   = colorful.Hsv(190, 0.7, 1)
	bulletColor = colorful.Hsv(55, 0.9, 1)
	alienColors = []colorful.Color{
		colorful.Hsv(120, 0.8, 0.9), // scout
		colorful.Hsv(300, 0.7, 0.9), // tank
	}
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	c.state.frames++
	snap := c.session.Snapshot()

	// On phase, inactivity or shutdown transitions, do a full terminal clear
	// so UI elements from the previous screen don't persist.
	if snap.State != c.state.prevGameState ||
		c.state.isInactive != c.state.wasInactive ||
		c.state.shutdown != c.state.wasShutdown {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.state.prevGameState = snap.State
		c.state.wasInactive = c.state.isInactive
		c.state.wasShutdown = c.state.shutdown
	}

	c.canvas.Clear()
	c.drawStars(snap)
	if snap.State != loop.GameStateStart {
		c.drawEntities(snap)
	}

	c.canvas.Render(c.chunkWriter)
	c.canvas.RenderBorder(c.chunkWriter)
	c.drawUI(snap)

	if c.state.bell {
		c.chunkWriter.WriteString("\a")
		c.state.bell = false
	}

	return c.chunkWriter.Flush()
}

// drawStars draws the scrolling star field.
func (c *Client) drawStars(snap loop.Snapshot) {
	h := snap.Screen.Height
	for _, s := range c.stars {
		y := math.Mod(s.Y+snap.Background, h)
		c.canvas.SetFloat(s.X, y, colorful.Hsv(220, 0.15, s.Shade))
	}
}

// drawEntities draws particles, aliens, bullets and the ship, back to front.
func (c *Client) drawEntities(snap loop.Snapshot) {
	for _, p := range snap.Particles {
		c.canvas.FillCircle(p.X, p.Y, p.Radius, p.Color)
	}
	for _, a := range snap.Aliens {
		c.drawAlien(a)
	}
	for _, b := range snap.Bullets {
		c.canvas.FillRect(b.X, b.Y, b.Width, b.Height, bulletColor)
	}
	c.drawShip(snap.Player)
}

// drawAlien draws an alien pulsing slightly with its animation phase.
func (c *Client) drawAlien(a object.Alien) {
	scale := 1 + math.Sin(a.Phase)*0.05
	w, h := a.Width*scale, a.Height*scale
	cx, cy := a.X+a.Width/2, a.Y+a.Height/2
	col := alienColors[a.Tier%len(alienColors)]

	switch a.Pattern {
	case object.PatternZigzag:
		c.canvas.FillCircle(cx, cy, w/2, col)
	default:
		c.canvas.FillRect(cx-w/2, cy-h/2, w, h, col)
	}
}

// drawShip draws the player as an upward-pointing triangle.
func (c *Client) drawShip(p object.Player) {
	c.canvas.DrawPolygon([]draw.Point{
		{X: p.X + p.Width/2, Y: p.Y},
		{X: p.X + p.Width, Y: p.Y + p.Height},
		{X: p.X, Y: p.Y + p.Height},
	}, true, shipColor)
}

// drawUI draws the text overlay for the current screen.
func (c *Client) drawUI(snap loop.Snapshot) {
	width := c.canvas.TerminalWidth()
	centerY := c.canvas.TerminalHeight() / 2

	if c.state.shutdown {
		c.drawShutdownScreen(width, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(width, centerY)
		return
	}

	switch snap.State {
	case loop.GameStateStart:
		c.drawStartScreen(width, centerY)
	case loop.GameStatePlaying:
		c.drawPlayingHUD(width, snap)
	case loop.GameStateGameOver:
		c.drawPlayingHUD(width, snap)
		c.drawGameOverScreen(width, centerY, snap)
	}
}

// blinkOn toggles roughly every 0.6s at the target frame rate.
func (c *Client) blinkOn() bool {
	return c.state.frames/36%2 == 0
}

// boxed frames lines in a double-line border, padding them to equal width.
func boxed(lines []string) []string {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	out := make([]string, 0, len(lines)+2)
	out = append(out, "╔"+strings.Repeat("═", width+4)+"╗")
	for _, l := range lines {
		pad := width - utf8.RuneCountInString(l)
		out = append(out, "║  "+strings.Repeat(" ", pad/2)+l+strings.Repeat(" ", pad-pad/2)+"  ║")
	}
	out = append(out, "╚"+strings.Repeat("═", width+4)+"╝")
	return out
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(width, centerY int) {
	cw := c.chunkWriter
	title := boxed([]string{
		"A L I E N   I N V A S I O N",
		"",
		"~ Earth Defense ~",
	})
	top := centerY - 8
	for i, line := range title {
		cw.WriteCentered(width, top+i, draw.ColorBrightGreen, line)
	}

	controlsY := top + len(title) + 2
	cw.WriteCentered(width, controlsY, draw.ColorBold, "Controls")
	controlLines := []string{
		"A D / < >  . . .  Move",
		"SPACE  . . . . . Shoot",
		"Q  . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		cw.WriteCentered(width, controlsY+1+i, "", line)
	}

	rules := c.session.Rules().Name
	cw.WriteCentered(width, controlsY+len(controlLines)+2, draw.ColorDim, "Rules: "+rules)

	if c.blinkOn() {
		cw.WriteCentered(width, controlsY+len(controlLines)+4, draw.ColorYellow, ">>  Press SPACE to Start  <<")
	}
}

// drawPlayingHUD draws the in-game HUD. Fields are fixed width so shrinking
// values don't leave residual characters on screen.
func (c *Client) drawPlayingHUD(width int, snap loop.Snapshot) {
	cw := c.chunkWriter
	cw.WriteAt(2, 1, fmt.Sprintf("Score: %-6d | Wave: %-3d", snap.Score, snap.Wave))

	floor := fmt.Sprintf("Floor: %d", c.session.Rules().ScoreFloor)
	if width > len(floor)+30 {
		cw.WriteAt(width-len(floor), 1, draw.ColorDim+floor+draw.ColorReset)
	}
}

// drawGameOverScreen draws the game over box with the final score and the
// host's best scores.
func (c *Client) drawGameOverScreen(width, centerY int, snap loop.Snapshot) {
	cw := c.chunkWriter
	lines := []string{
		"G A M E   O V E R",
		"",
		fmt.Sprintf("Score: %d   Wave: %d", snap.Score, snap.Wave),
	}
	if c.registry != nil {
		if top := c.registry.TopScores(); len(top) > 0 {
			lines = append(lines, "", "Best scores")
			for i, e := range top {
				name := e.Username
				if name == "" {
					name = "anonymous"
				}
				lines = append(lines, fmt.Sprintf("%d. %-12s %6d  wave %d", i+1, name, e.Score, e.Wave))
			}
		}
	}

	box := boxed(lines)
	top := centerY - len(box)/2 - 1
	for i, line := range box {
		cw.WriteCentered(width, top+i, draw.ColorBrightRed, line)
	}

	if c.state.gameOverTicks >= config.RestartDelayTicks && c.blinkOn() {
		cw.WriteCentered(width, top+len(box)+1, draw.ColorYellow, ">>  Press SPACE to Restart  <<")
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(width, centerY int) {
	cw := c.chunkWriter
	cw.WriteCentered(width, centerY-2, draw.ColorYellow, "INACTIVITY WARNING")
	cw.WriteCentered(width, centerY, "", fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		c.state.inactiveRemaining,
	))
	cw.WriteCentered(width, centerY+2, "", "Press any key to continue")
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(width, centerY int) {
	cw := c.chunkWriter
	cw.WriteCentered(width, centerY-3, draw.ColorBrightRed, "SERVER SHUTTING DOWN")
	cw.WriteCentered(width, centerY-1, "", "The server is restarting for maintenance.")
	cw.WriteCentered(width, centerY, "", "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	cw.WriteCentered(width, centerY+2, "", fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	cw.WriteCentered(width, centerY+4, draw.ColorDim, "Press Q to disconnect now")
}
