package rhb

import (
	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// World-space placement constants for segment templates.
const (
	stoneOnGround      = 550
	firstPlatform      = 370
	lowPlatform        = 420
	highPlatform       = 375
	initialStoneOffset = 150

	stoneWidth  = 90
	stoneHeight = 50
)

// Platform tile selections in the obstacle atlas.
var (
	floatingPlatformSprites = []string{"13.png", "14.png", "15.png"}
	cliffPlatformSprites    = []string{"1.png", "1.png", "3.png"}
)

// platformBoundingBoxes are the cap/span/cap collision boxes shared by all
// platform shapes, relative to the platform origin. The caps are thinner
// than the span so the character can clip past a platform's rounded edges.
var platformBoundingBoxes = []core.Rect{
	core.NewRect(0, 0, 60, 54),
	core.NewRect(60, 0, 264, 93),
	core.NewRect(324, 0, 60, 54),
}

// stoneAndPlatform builds the "stone hazard plus low floating platform"
// segment, shifted right by offsetX.
func stoneAndPlatform(sheet *assets.Sheet, offsetX int) []Obstacle {
	return []Obstacle{
		NewBarrier(NewImage(
			ImageStone,
			core.Point{X: offsetX + initialStoneOffset, Y: stoneOnGround},
			stoneWidth,
			stoneHeight,
		)),
		NewPlatform(
			sheet,
			core.Point{X: offsetX + firstPlatform, Y: lowPlatform},
			floatingPlatformSprites,
			platformBoundingBoxes,
		),
	}
}

// platformHigh builds the "high cliff platform alone" segment, shifted
// right by offsetX.
func platformHigh(sheet *assets.Sheet, offsetX int) []Obstacle {
	return []Obstacle{
		NewPlatform(
			sheet,
			core.Point{X: offsetX + firstPlatform, Y: highPlatform},
			cliffPlatformSprites,
			platformBoundingBoxes,
		),
	}
}

// validateTileSheet checks that every tile the segment templates use
// exists in the atlas. Called once at initialization.
func validateTileSheet(sheet *assets.Sheet) error {
	names := append([]string{}, floatingPlatformSprites...)
	names = append(names, cliffPlatformSprites...)
	return sheet.Validate(names)
}

// rightmost returns the largest right edge among the obstacles, or 0 for
// an empty list. Insertion order carries no meaning here; every entry is
// scanned.
func rightmost(obstacles []Obstacle) int {
	right := 0
	for i := range obstacles {
		if r := obstacles[i].Right(); r > right {
			right = r
		}
	}
	return right
}
