package blaster

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-blaster/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar      = '█'
	PlayerNoseChar  = '▶'
	BulletChar      = '━'
	ObstacleChar    = '▓'
	SpeedPowerChar  = '»'
	HealthPowerChar = '+'
)

// Entity colors
const (
	PlayerColor      = core.ColorBlue
	BulletColor      = core.ColorRed
	ObstacleColor    = core.ColorGreen
	SpeedPowerColor  = core.ColorYellow
	HealthPowerColor = core.ColorMagenta
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// viewport maps playfield pixels to screen cells.
type viewport struct {
	top    int
	scaleX float64
	scaleY float64
}

func newViewport(dst *core.Screen, field fieldSize) viewport {
	rows := max(dst.Height()-hudRows, 1)
	return viewport{
		top:    hudRows,
		scaleX: float64(dst.Width()) / field.w,
		scaleY: float64(rows) / field.h,
	}
}

// fieldSize is the playfield size in pixels.
type fieldSize struct{ w, h float64 }

// cells converts a pixel box to the screen cells it covers.
// Every visible entity covers at least one cell.
func (v viewport) cells(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.scaleX))
	y0 := int(math.Floor(b.Y * v.scaleY))
	x1 := max(int(math.Ceil(b.Right()*v.scaleX)), x0+1)
	y1 := max(int(math.Ceil(b.Bottom()*v.scaleY)), y0+1)
	return core.NewRect(x0, y0+v.top, x1-x0, y1-y0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	RenderSession(g.session, dst)
}

// RenderSession draws a session: entities, HUD line, and the game-over box.
func RenderSession(s *Session, dst *core.Screen) {
	cfg := s.Config()
	vp := newViewport(dst, fieldSize{w: cfg.Playfield.Width, h: cfg.Playfield.Height})

	for _, p := range s.PowerUps() {
		glyph, color := rune(SpeedPowerChar), SpeedPowerColor
		if p.Type == PowerUpHealth {
			glyph, color = HealthPowerChar, HealthPowerColor
		}
		dst.DrawRectColored(vp.cells(p.Box()), glyph, color)
	}

	for _, o := range s.Obstacles() {
		dst.DrawRectColored(vp.cells(o.Box()), ObstacleChar, ObstacleColor)
	}

	for _, b := range s.Bullets() {
		dst.DrawRectColored(vp.cells(b.Box()), BulletChar, BulletColor)
	}

	player := s.Player()
	pr := vp.cells(player.Box())
	dst.DrawRectColored(pr, PlayerChar, PlayerColor)
	dst.SetColored(pr.Right()-1, pr.Y+pr.H/2, PlayerNoseChar, PlayerColor)

	drawHUD(s, dst)

	if s.GameOver() {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Level: %d", s.Score(), s.Level()),
			"Press R to restart")
	}
}

// drawHUD draws score on the left, level centered, and health on the right.
func drawHUD(s *Session, dst *core.Screen) {
	w := dst.Width()

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.Score()))
	dst.DrawTextCentered(0, fmt.Sprintf("Level %d", s.Level()))

	health := fmt.Sprintf("Health: %d", s.Player().Health)
	dst.DrawText(w-len(health)-1, 0, health)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	// Keep the box on screen and below the HUD when the terminal is small
	boxX := core.Clamp((w-boxW)/2, 0, max(w-boxW, 0))
	boxY := core.Clamp((h-boxH)/2, hudRows, max(h-boxH, hudRows))
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawText(x, boxY+1+i, l)
	}
}
