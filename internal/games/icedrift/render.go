package icedrift

import (
	"fmt"
	"strings"

	"github.com/nordvik/icedrift/internal/engine"
)

// Scene layout constants. The platform measures geometry from these so the
// engine's lane axis and the drawn scene agree.
const (
	ShipCol   = 8 // Fixed horizontal position of the ship's bow
	ShipWidth = 5
	hudRows   = 3 // Top rows reserved for the HUD
)

// Visual characters for rendering
const (
	waterChar = '~'
	iceChar   = '▓'
	sinkChar  = '░'
)

// MeasureGeometry derives the engine geometry from the screen width. This
// is the readiness payload the platform sends once the lane is measured.
func MeasureGeometry(screenW int) engine.Geometry {
	return engine.Geometry{
		ShipLeft:  ShipCol,
		ShipRight: ShipCol + ShipWidth,
		LaneWidth: float64(screenW),
	}
}

// Measure implements the platform's geometry probe. Height does not affect
// the lane axis; only the width matters.
func (g *Game) Measure(screenW, _ int) engine.Geometry {
	return MeasureGeometry(screenW)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *engine.Screen) {
	dst.Clear()

	snap := g.Snapshot()
	w := dst.Width()
	h := dst.Height()
	waterY := h - 2 // Waterline row; ship and ice sit on top of it

	g.drawHUD(dst, snap, w)

	// Water
	dst.DrawHLine(0, waterY, w, waterChar, engine.ColorBlue)
	dst.DrawHLine(0, waterY+1, w, waterChar, engine.ColorBlue)

	// Obstacles drift in from the right
	for _, ob := range snap.Obstacles {
		g.drawObstacle(dst, ob, waterY)
	}

	g.drawShip(dst, waterY)

	switch snap.Phase {
	case engine.PhaseIdle:
		dst.DrawTextCentered(h/2, "measuring the lane...")
	case engine.PhaseBetting:
		g.drawBettingWindow(dst, snap, w, h)
	case engine.PhaseCrashed:
		g.drawBanner(dst, "ICEBERG", g.message)
	case engine.PhaseLifeboat:
		g.drawBanner(dst, "LIFEBOAT", g.message)
	}
}

// drawHUD paints the top status rows.
func (g *Game) drawHUD(dst *engine.Screen, snap Snapshot, w int) {
	balance := fmt.Sprintf(" Balance: %.2f ", snap.Balance)
	dst.DrawTextColored(1, 0, balance, engine.ColorBrightWhite)

	bet := "no bet"
	if snap.Joined {
		bet = fmt.Sprintf("bet %.2f", snap.PendingBet)
	}
	if snap.Phase == engine.PhaseRunning && snap.Stake > 0 {
		bet = fmt.Sprintf("stake %.2f", snap.Stake)
	}
	dst.DrawTextColored(1, 1, bet, engine.ColorGray)

	mult := fmt.Sprintf("%.2fx", snap.Multiplier)
	color := engine.ColorBrightGreen
	if snap.CashedOut {
		mult += " (collected)"
		color = engine.ColorYellow
	}
	dst.DrawTextColored(w-len(mult)-2, 0, mult, color)

	hits := fmt.Sprintf("safe hits: %d", snap.SafeHits)
	dst.DrawTextColored(w-len(hits)-2, 1, hits, engine.ColorGray)

	if g.message != "" {
		dst.DrawTextColored(1, 2, g.message, engine.ColorCyan)
	}
}

// drawShip paints the ship at its fixed position on the waterline.
func (g *Game) drawShip(dst *engine.Screen, waterY int) {
	hull := waterY - 1
	dst.DrawTextColored(ShipCol, hull-2, "  |\\", engine.ColorWhite)
	dst.DrawTextColored(ShipCol, hull-1, "  |_\\", engine.ColorWhite)
	dst.DrawTextColored(ShipCol, hull, "\\____/", engine.ColorBrightWhite)
}

// drawObstacle paints one floe with its planned multiplier label. Safe and
// hazard floes render identically; resolving floes fade as they settle.
func (g *Game) drawObstacle(dst *engine.Screen, ob ObstacleView, waterY int) {
	x := int(ob.ScreenX)
	width := int(ob.Width)
	top := waterY - int(g.cfg.Field.ObstacleHeight)

	ice := iceChar
	color := engine.ColorBrightCyan
	if ob.Resolving {
		ice = sinkChar
		color = engine.ColorGray
	}

	for row := top; row < waterY; row++ {
		dst.DrawHLine(x, row, width, ice, color)
	}

	label := fmt.Sprintf("%.2fx", ob.Multiplier)
	labelX := x + (width-len(label))/2
	dst.DrawTextColored(labelX, top-1, label, engine.ColorBrightYellow)
}

// drawBettingWindow paints the countdown and key hints during betting.
func (g *Game) drawBettingWindow(dst *engine.Screen, snap Snapshot, w, h int) {
	y := h / 2

	title := fmt.Sprintf("BETTING OPEN  %.1fs", snap.Countdown)
	dst.DrawTextCentered(y-1, title)

	// Simple countdown bar scaled to the window length
	total := g.cfg.Betting.WindowSeconds
	filled := int(float64(w-20) * engine.ClampF(snap.Countdown/total, 0, 1))
	bar := strings.Repeat("█", filled)
	dst.DrawTextColored(10, y, bar, engine.ColorBrightBlue)

	hint := "↑/↓ adjust · enter bet · c cancel · s sail now"
	dst.DrawTextCentered(y+2, hint)
}

// drawBanner draws a centered outcome box.
func (g *Game) drawBanner(dst *engine.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		dst.DrawHLine(boxX, y, boxW, ' ', engine.ColorDefault)
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, engine.ColorBrightRed)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
