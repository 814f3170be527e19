package rhb

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Collision box insets: the gameplay box is a sub-rectangle of the sprite
// bounds, approximating the visible body.
const (
	boundingBoxXOffset     = 18
	boundingBoxYOffset     = 14
	boundingBoxWidthOffset = 28
)

// animationSprites lists how many sprites each animation has in the atlas.
// Used to validate the sheet once at initialization.
var animationSprites = map[string]int{
	idleFrameName:    10,
	runFrameName:     8,
	slideFrameName:   5,
	jumpFrameName:    12,
	fallingFrameName: 10,
}

// Boy is the player character: the state machine plus its sprite atlas.
type Boy struct {
	machine BoyStateMachine
	sheet   *assets.Sheet
}

// NewBoy creates the character in its idle starting pose. The atlas is
// validated up front so per-tick sprite lookups cannot fail.
func NewBoy(sheet *assets.Sheet, tuning *Tuning, audio Audio) (*Boy, error) {
	if err := validateBoySheet(sheet); err != nil {
		return nil, err
	}
	return &Boy{
		machine: NewBoyStateMachine(tuning, audio),
		sheet:   sheet,
	}, nil
}

// validateBoySheet checks that every frame key the machine can ever
// request exists in the atlas.
func validateBoySheet(sheet *assets.Sheet) error {
	var names []string
	for anim, count := range animationSprites {
		for i := 1; i <= count; i++ {
			names = append(names, fmt.Sprintf("%s (%d).png", anim, i))
		}
	}
	return sheet.Validate(names)
}

// Update advances one tick of animation and physics.
func (b *Boy) Update() {
	b.machine = b.machine.Update()
}

// RunRight adds one increment of running speed.
func (b *Boy) RunRight() {
	b.machine = b.machine.Transition(Run)
}

// Slide ducks into a slide.
func (b *Boy) Slide() {
	b.machine = b.machine.Transition(Slide)
}

// Jump launches the character upward.
func (b *Boy) Jump() {
	b.machine = b.machine.Transition(Jump)
}

// KnockOut puts the character into its death fall.
func (b *Boy) KnockOut() {
	b.machine = b.machine.Transition(KnockOut)
}

// LandOn rests the character on a surface whose top edge is at y.
func (b *Boy) LandOn(y int) {
	b.machine = b.machine.Transition(Land(y))
}

// KnockedOut reports whether the character reached its terminal state.
func (b *Boy) KnockedOut() bool {
	return b.machine.KnockedOut()
}

// Phase returns the live state machine phase.
func (b *Boy) Phase() Phase {
	return b.machine.Phase()
}

// WalkingSpeed returns the character's horizontal speed. The world scrolls
// by its negation.
func (b *Boy) WalkingSpeed() int {
	return b.machine.Context().Velocity.X
}

// VelocityY returns the vertical velocity, positive downward.
func (b *Boy) VelocityY() int {
	return b.machine.Context().Velocity.Y
}

// PosY returns the character's current top y in world space.
func (b *Boy) PosY() int {
	return b.machine.Context().Position.Y
}

// FrameName returns the atlas key of the sprite to show this tick.
func (b *Boy) FrameName() string {
	return fmt.Sprintf("%s (%d).png",
		b.machine.FrameName(),
		b.machine.Context().Frame/ticksPerSprite+1,
	)
}

func (b *Boy) currentSprite() assets.Cell {
	return b.sheet.MustCell(b.FrameName())
}

// DestinationBox returns the sprite's on-world rectangle: the machine
// position shifted by the sprite's trim offset.
func (b *Boy) DestinationBox() core.Rect {
	sprite := b.currentSprite()
	ctx := b.machine.Context()
	return core.NewRect(
		ctx.Position.X+sprite.SpriteSourceSize.X,
		ctx.Position.Y+sprite.SpriteSourceSize.Y,
		sprite.Frame.W,
		sprite.Frame.H,
	)
}

// BoundingBox returns the gameplay collision box, inset from the sprite
// bounds by the fixed offsets.
func (b *Boy) BoundingBox() core.Rect {
	box := b.DestinationBox()
	return core.NewRect(
		box.X+boundingBoxXOffset,
		box.Y+boundingBoxYOffset,
		box.W-boundingBoxWidthOffset,
		box.H-boundingBoxYOffset,
	)
}

// DrawRequest returns the render instruction for the current sprite.
func (b *Boy) DrawRequest() DrawRequest {
	sprite := b.currentSprite()
	return DrawRequest{
		Image:  ImageBoy,
		Source: sprite.Frame.Rect(),
		Dest:   b.DestinationBox(),
		Phase:  b.machine.Phase(),
	}
}

// reset puts the character back at its starting pose, reusing the loaded
// atlas and the ambient resources carried by the context.
func (b *Boy) reset() {
	ctx := b.machine.Context()
	b.machine = NewBoyStateMachine(ctx.tuning, ctx.audio)
}
