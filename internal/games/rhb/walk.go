package rhb

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Walk owns everything that exists during a run: the character, the two
// looping parallax backgrounds, the obstacle collection, and the timeline,
// the world x-coordinate up to which obstacles have already been
// generated.
type Walk struct {
	boy           *Boy
	backgrounds   [2]Image
	obstacleSheet *assets.Sheet
	obstacles     []Obstacle
	timeline      int
	rng           *rand.Rand
	gen           config.GenerationConfig
}

// newWalk builds a fresh walk with the initial segment placed at offset 0.
// The RNG drives segment selection; passing it in keeps runs reproducible
// under a fixed seed.
func newWalk(boy *Boy, sheet *assets.Sheet, world config.WorldConfig, gen config.GenerationConfig, rng *rand.Rand) *Walk {
	obstacles := stoneAndPlatform(sheet, 0)
	return &Walk{
		boy: boy,
		backgrounds: [2]Image{
			NewImage(ImageBackground, core.Point{X: 0, Y: 0}, world.Width, world.Height),
			NewImage(ImageBackground, core.Point{X: world.Width, Y: 0}, world.Width, world.Height),
		},
		obstacleSheet: sheet,
		obstacles:     obstacles,
		timeline:      rightmost(obstacles),
		rng:           rng,
		gen:           gen,
	}
}

// velocity returns the world scroll delta for this tick: the negation of
// the character's forward speed.
func (w *Walk) velocity() int {
	return -w.boy.WalkingSpeed()
}

// update advances one tick of the run. Order matters:
// input, character physics, background scroll, obstacle prune/move/check,
// segment generation.
func (w *Walk) update(in core.InputFrame) {
	// Inputs are polled, not edge-triggered; holding the run key adds
	// running speed every tick, so forward speed accumulates while held.
	if in.Has(core.ActionSlide) {
		w.boy.Slide()
	}
	if in.Has(core.ActionRight) {
		w.boy.RunRight()
	}
	if in.Has(core.ActionJump) {
		w.boy.Jump()
	}

	w.boy.Update()

	velocity := w.velocity()

	// Two-tile infinite background loop: the tile that scrolls fully off
	// the left edge wraps to follow the other.
	first, second := &w.backgrounds[0], &w.backgrounds[1]
	first.MoveHorizontally(velocity)
	second.MoveHorizontally(velocity)
	if first.Right() < 0 {
		first.SetX(second.Right())
	}
	if second.Right() < 0 {
		second.SetX(first.Right())
	}

	// Drop obstacles that scrolled off-screen, keeping order.
	kept := w.obstacles[:0]
	for i := range w.obstacles {
		if w.obstacles[i].Right() > 0 {
			kept = append(kept, w.obstacles[i])
		}
	}
	w.obstacles = kept

	// Scroll the rest and resolve collisions against the character.
	for i := range w.obstacles {
		w.obstacles[i].MoveHorizontally(velocity)
		w.obstacles[i].CheckIntersection(w.boy)
	}

	// Keep the lookahead window populated. The timeline tracks world
	// position, so outside generation it shrinks with the scroll.
	if w.timeline < w.gen.TimelineMinimum {
		w.generateNextSegment()
	} else {
		w.timeline += velocity
	}
}

// generateNextSegment appends one randomly chosen segment template a fixed
// gap past the current timeline, then advances the timeline to the new
// rightmost edge.
func (w *Walk) generateNextSegment() {
	offset := w.timeline + w.gen.ObstacleBuffer

	var next []Obstacle
	switch w.rng.Intn(2) {
	case 0:
		next = stoneAndPlatform(w.obstacleSheet, offset)
	case 1:
		next = platformHigh(w.obstacleSheet, offset)
	}

	w.timeline = rightmost(next)
	w.obstacles = append(w.obstacles, next...)
}

// knockedOut reports whether the character reached its terminal state.
func (w *Walk) knockedOut() bool {
	return w.boy.KnockedOut()
}

// reset restores the walk to its starting configuration: the character at
// its initial pose and a fresh initial segment at offset 0. Loaded assets
// and the RNG are reused.
func (w *Walk) reset() {
	w.boy.reset()
	w.obstacles = stoneAndPlatform(w.obstacleSheet, 0)
	w.timeline = rightmost(w.obstacles)
	w.backgrounds[0].SetX(0)
	w.backgrounds[1].SetX(w.backgrounds[0].bounds.W)
}

// drawRequests collects render instructions for the whole scene, painter's
// order: backgrounds, character, obstacles.
func (w *Walk) drawRequests() []DrawRequest {
	reqs := make([]DrawRequest, 0, 3+2*len(w.obstacles))
	for i := range w.backgrounds {
		reqs = append(reqs, w.backgrounds[i].DrawRequest())
	}
	reqs = append(reqs, w.boy.DrawRequest())
	for i := range w.obstacles {
		reqs = append(reqs, w.obstacles[i].DrawRequests()...)
	}
	return reqs
}
