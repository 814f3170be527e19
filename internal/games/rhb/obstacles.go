package rhb

import (
	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// obstacleKind discriminates the obstacle variants.
type obstacleKind uint8

const (
	kindBarrier obstacleKind = iota
	kindPlatform
)

// Obstacle is a horizontal-scroll-affected entity with one or more
// collision rectangles. It is a closed variant over {barrier, platform}
// with one dispatch method per operation.
//
// A barrier is a single solid rectangle that knocks the character out on
// any overlap. A platform is a row of sprites with cap/span/cap collision
// boxes that can be landed on from above but is solid from every other
// direction.
type Obstacle struct {
	kind obstacleKind

	// Barrier fields.
	image Image

	// Platform fields. Sprites are resolved from the shared sheet at
	// construction; only the position and boxes are per-instance.
	sprites  []assets.Cell
	position core.Point
	boxes    []core.Rect
}

// NewBarrier creates a single-rectangle hazard from a positioned image.
func NewBarrier(image Image) Obstacle {
	return Obstacle{
		kind:  kindBarrier,
		image: image,
	}
}

// NewPlatform creates a platform at the given position from atlas sprites.
// The sprite names select the tiles drawn left to right; the bounding
// boxes are given relative to the platform origin and fixed in world space
// here, once, so later scrolling is pure translation.
func NewPlatform(sheet *assets.Sheet, position core.Point, spriteNames []string, boxes []core.Rect) Obstacle {
	sprites := make([]assets.Cell, 0, len(spriteNames))
	for _, name := range spriteNames {
		if cell, ok := sheet.Cell(name); ok {
			sprites = append(sprites, cell)
		}
	}

	worldBoxes := make([]core.Rect, len(boxes))
	for i, box := range boxes {
		worldBoxes[i] = box.Translated(position.X, position.Y)
	}

	return Obstacle{
		kind:     kindPlatform,
		sprites:  sprites,
		position: position,
		boxes:    worldBoxes,
	}
}

// CheckIntersection tests the obstacle against the character's collision
// box and applies the outcome directly to the character: a barrier overlap
// is always a knockout; a platform overlap is a landing only when the
// character is moving downward from above the platform, and a knockout
// otherwise.
func (o *Obstacle) CheckIntersection(boy *Boy) {
	switch o.kind {
	case kindBarrier:
		if boy.BoundingBox().Intersects(o.image.BoundingBox()) {
			boy.KnockOut()
		}

	case kindPlatform:
		for _, box := range o.boxes {
			if !boy.BoundingBox().Intersects(box) {
				continue
			}
			if boy.VelocityY() > 0 && boy.PosY() < o.position.Y {
				boy.LandOn(box.Y)
			} else {
				boy.KnockOut()
			}
			return
		}
	}
}

// MoveHorizontally shifts the obstacle by dx.
func (o *Obstacle) MoveHorizontally(dx int) {
	switch o.kind {
	case kindBarrier:
		o.image.MoveHorizontally(dx)
	case kindPlatform:
		o.position.X += dx
		for i := range o.boxes {
			o.boxes[i].X += dx
		}
	}
}

// Right returns the obstacle's rightmost collision edge. For a platform
// this is the last bounding box, not the sprite's nominal width, so
// scroll-pruning stays accurate even if the boxes don't exactly match the
// sprite frame.
func (o *Obstacle) Right() int {
	switch o.kind {
	case kindBarrier:
		return o.image.Right()
	case kindPlatform:
		if len(o.boxes) == 0 {
			return 0
		}
		return o.boxes[len(o.boxes)-1].Right()
	}
	return 0
}

// DrawRequests returns the render instructions for the obstacle.
func (o *Obstacle) DrawRequests() []DrawRequest {
	switch o.kind {
	case kindBarrier:
		return []DrawRequest{o.image.DrawRequest()}

	case kindPlatform:
		reqs := make([]DrawRequest, 0, len(o.sprites))
		x := 0
		for _, sprite := range o.sprites {
			reqs = append(reqs, DrawRequest{
				Image:  ImageTiles,
				Source: sprite.Frame.Rect(),
				Dest: core.NewRect(
					o.position.X+x,
					o.position.Y,
					sprite.Frame.W,
					sprite.Frame.H,
				),
			})
			x += sprite.Frame.W
		}
		return reqs
	}
	return nil
}
