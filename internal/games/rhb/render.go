package rhb

import (
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Render draws the current scene into the screen buffer. World coordinates
// are projected onto the buffer, so the scene scales with the terminal.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if !g.initialized {
		dst.DrawTextCentered(dst.Height()/2, "loading...")
		return
	}

	worldW := g.cfg.World.Width
	worldH := g.cfg.World.Height

	for _, req := range g.walk.drawRequests() {
		g.renderRequest(dst, req, worldW, worldH)
	}

	// Ground line along the bottom of the world.
	gy := projectY(worldH-1, worldH, dst.Height())
	dst.DrawHLine(0, gy, dst.Width(), '━', core.ColorYellow)

	switch g.phase {
	case phaseReady:
		dst.DrawTextCentered(2, "Press → to run")
	case phaseGameOver:
		drawNewGamePrompt(dst)
	}
}

// renderRequest rasterizes one draw request as a filled cell block.
func (g *Game) renderRequest(dst *core.Screen, req DrawRequest, worldW, worldH int) {
	area := projectRect(req.Dest, worldW, worldH, dst.Width(), dst.Height())

	switch req.Image {
	case ImageBackground:
		// Sparse scenery so the scroll reads without drowning the scene.
		for y := area.Y; y < area.Bottom(); y++ {
			for x := area.X; x < area.Right(); x++ {
				if (x*7+y*13)%29 == 0 {
					dst.SetColored(x, y, '·', core.ColorGray)
				}
			}
		}
	case ImageBoy:
		glyph, color := boyAppearance(req.Phase)
		dst.DrawRect(area, glyph, color)
	case ImageStone:
		dst.DrawRect(area, '▓', core.ColorGray)
	case ImageTiles:
		dst.DrawRect(area, '▒', core.ColorGreen)
		// Walkable top edge.
		dst.DrawHLine(area.X, area.Y, area.W, '▔', core.ColorBrightGreen)
	default:
		dst.DrawRect(area, '?', core.ColorDefault)
	}
}

// boyAppearance picks the character's glyph and color per pose.
func boyAppearance(phase Phase) (rune, core.Color) {
	switch phase {
	case PhaseSliding:
		return '▄', core.ColorBrightRed
	case PhaseJumping:
		return '◆', core.ColorBrightRed
	case PhaseFalling, PhaseKnockedOut:
		return '▒', core.ColorRed
	default:
		return '█', core.ColorBrightRed
	}
}

// drawNewGamePrompt draws the centered game-over box.
func drawNewGamePrompt(dst *core.Screen) {
	lines := []string{
		"Knocked out!",
		"Press Enter for a new game",
	}
	boxW := 0
	for _, l := range lines {
		if len(l)+4 > boxW {
			boxW = len(l) + 4
		}
	}
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l)
	}
}

// projectRect maps a world-space rectangle onto the screen buffer,
// guaranteeing at least one cell for anything still inside the world.
func projectRect(r core.Rect, worldW, worldH, screenW, screenH int) core.Rect {
	x0 := projectX(r.X, worldW, screenW)
	y0 := projectY(r.Y, worldH, screenH)
	x1 := projectX(r.Right(), worldW, screenW)
	y1 := projectY(r.Bottom(), worldH, screenH)
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func projectX(wx, worldW, screenW int) int {
	return wx * screenW / worldW
}

func projectY(wy, worldH, screenH int) int {
	return wy * screenH / worldH
}
