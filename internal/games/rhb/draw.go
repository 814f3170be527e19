package rhb

import (
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Image handle names known to the renderer.
const (
	ImageBoy        = "boy"
	ImageStone      = "stone"
	ImageTiles      = "tiles"
	ImageBackground = "background"
)

// DrawRequest is one render instruction: copy Source (a rectangle within
// the named image or atlas) to Dest (a rectangle in world space). The
// simulation computes both; the renderer does the actual drawing.
type DrawRequest struct {
	Image  string
	Source core.Rect
	Dest   core.Rect
	Phase  Phase // Set for the character only; lets the renderer style poses
}

// Image is a positioned world-space image with intrinsic bounds.
// Backgrounds and the stone hazard use it directly.
type Image struct {
	name   string
	bounds core.Rect
}

// NewImage creates an image of the given intrinsic size at a position.
func NewImage(name string, position core.Point, w, h int) Image {
	return Image{
		name:   name,
		bounds: core.NewRect(position.X, position.Y, w, h),
	}
}

// BoundingBox returns the image's world-space rectangle.
func (i Image) BoundingBox() core.Rect {
	return i.bounds
}

// Right returns the x-coordinate of the image's right edge.
func (i Image) Right() int {
	return i.bounds.Right()
}

// MoveHorizontally shifts the image by dx.
func (i *Image) MoveHorizontally(dx int) {
	i.bounds.X += dx
}

// SetX places the image's left edge at x.
func (i *Image) SetX(x int) {
	i.bounds.X = x
}

// DrawRequest returns the render instruction for the whole image.
func (i Image) DrawRequest() DrawRequest {
	return DrawRequest{
		Image:  i.name,
		Source: core.NewRect(0, 0, i.bounds.W, i.bounds.H),
		Dest:   i.bounds,
	}
}
