// Package rhb implements an endless side-scrolling runner. The player
// character runs right through a procedurally generated obstacle course,
// jumping over stones and sliding under or landing on floating platforms.
//
// The package contains pure simulation logic with no external dependencies
// (especially no Bubble Tea); the platform handles input mapping, timing,
// and terminal rendering.
package rhb

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Animation key prefixes in the character atlas.
const (
	idleFrameName    = "Idle"
	runFrameName     = "Run"
	slideFrameName   = "Slide"
	jumpFrameName    = "Jump"
	fallingFrameName = "Dead"
)

// Ticks per animation cycle. Each atlas sprite is shown for three ticks,
// so a budget of 29 covers the ten Idle sprites.
const (
	idleFrames    = 29
	runningFrames = 23
	slidingFrames = 15
	jumpingFrames = 35
	fallingFrames = 29
)

// ticksPerSprite maps the tick-level frame counter to atlas sprite indices.
const ticksPerSprite = 3

// Phase identifies which state the character machine is in.
// Exactly one phase is live at a time.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseSliding
	PhaseJumping
	PhaseFalling
	PhaseKnockedOut
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseSliding:
		return "Sliding"
	case PhaseJumping:
		return "Jumping"
	case PhaseFalling:
		return "Falling"
	case PhaseKnockedOut:
		return "KnockedOut"
	default:
		return "Unknown"
	}
}

// Tuning bundles the world and physics parameters every state shares.
// It is read-only after construction and referenced, not copied, by the
// machine context.
type Tuning struct {
	Gravity       int
	RunningSpeed  int
	JumpSpeed     int // Negative, upward
	MaxVelocity   int // Terminal fall speed
	Floor         int // Y the character rests on
	Height        int // World height
	StartingPoint int // Initial character x
	PlayerHeight  int // Height minus Floor
}

// NewTuning derives machine tuning from a runner configuration.
func NewTuning(cfg config.RunnerConfig) *Tuning {
	return &Tuning{
		Gravity:       cfg.Physics.Gravity,
		RunningSpeed:  cfg.Physics.RunningSpeed,
		JumpSpeed:     cfg.Physics.JumpSpeed,
		MaxVelocity:   cfg.Physics.MaxVelocity,
		Floor:         cfg.World.Floor,
		Height:        cfg.World.Height,
		StartingPoint: cfg.World.StartingPoint,
		PlayerHeight:  cfg.World.Height - cfg.World.Floor,
	}
}

// DefaultTuning returns tuning derived from the default configuration.
func DefaultTuning() *Tuning {
	return NewTuning(config.DefaultRunnerConfig())
}

// Context is the character's physical state: the animation frame counter,
// position, and velocity, plus the shared tuning and audio hook it carries
// through every transition. It is owned exclusively by the live phase and
// moves wholesale on every transition.
type Context struct {
	Frame    int
	Position core.Point
	Velocity core.Point

	tuning *Tuning
	audio  Audio
}

// update advances the frame counter against the given budget, wrapping to
// zero, and then integrates physics.
func (c Context) update(frameCount int) Context {
	if c.Frame < frameCount {
		c.Frame++
	} else {
		c.Frame = 0
	}
	return c.applyVelocity()
}

// applyVelocity integrates one tick of vertical physics: position first,
// then gravity, clamped to terminal velocity and the floor.
func (c Context) applyVelocity() Context {
	c.Position.Y += c.Velocity.Y
	c.Velocity.Y = core.Min(c.Velocity.Y+c.tuning.Gravity, c.tuning.MaxVelocity)
	c.Position.Y = core.Min(c.Position.Y, c.tuning.Floor)
	return c
}

func (c Context) resetFrame() Context {
	c.Frame = 0
	return c
}

// runRight adds one increment of running speed. Called once per tick the
// run key is held, so horizontal speed accumulates while held.
func (c Context) runRight() Context {
	c.Velocity.X += c.tuning.RunningSpeed
	return c
}

func (c Context) setVerticalVelocity(speed int) Context {
	c.Velocity.Y = speed
	return c
}

func (c Context) stop() Context {
	c.Velocity.X = 0
	return c
}

// setOn rests the character on a surface whose top edge is at the given y.
func (c Context) setOn(position int) Context {
	c.Position.Y = position - c.tuning.PlayerHeight
	return c
}

func (c Context) playJumpSound() Context {
	c.audio.Play(ClipJump)
	return c
}

// eventKind discriminates character machine events.
type eventKind uint8

const (
	eventRun eventKind = iota
	eventSlide
	eventJump
	eventKnockOut
	eventLand
	eventUpdate
)

// Event is a character state machine input. Use the package-level event
// values and Land to construct one.
type Event struct {
	kind     eventKind
	position int // Land only: top edge of the surface landed on
}

// Character machine events without a payload.
var (
	Run      = Event{kind: eventRun}
	Slide    = Event{kind: eventSlide}
	Jump     = Event{kind: eventJump}
	KnockOut = Event{kind: eventKnockOut}
	Update   = Event{kind: eventUpdate}
)

// Land produces a landing event for a surface whose top edge is at y.
func Land(y int) Event {
	return Event{kind: eventLand, position: y}
}

// BoyStateMachine is the character state machine: the live phase tag plus
// the context it owns. The machine is a value; every transition consumes
// the old value and returns a new one, so there is never more than one
// live state.
type BoyStateMachine struct {
	phase Phase
	ctx   Context
}

// NewBoyStateMachine creates the machine in the Idle phase at the starting
// position.
func NewBoyStateMachine(tuning *Tuning, audio Audio) BoyStateMachine {
	if audio == nil {
		audio = NopAudio{}
	}
	return BoyStateMachine{
		phase: PhaseIdle,
		ctx: Context{
			Frame:    0,
			Position: core.Point{X: tuning.StartingPoint, Y: tuning.Floor},
			Velocity: core.Point{},
			tuning:   tuning,
			audio:    audio,
		},
	}
}

// Transition applies an event to the machine. The match is total: any
// (phase, event) pair not in the transition table returns the machine
// unchanged.
func (m BoyStateMachine) Transition(ev Event) BoyStateMachine {
	switch ev.kind {
	case eventRun:
		switch m.phase {
		case PhaseIdle:
			return m.run()
		case PhaseRunning:
			// Run is polled, not edge-triggered: each tick the key is
			// held adds another increment of running speed.
			m.ctx = m.ctx.runRight()
			return m
		}
	case eventSlide:
		if m.phase == PhaseRunning {
			return m.slide()
		}
	case eventJump:
		if m.phase == PhaseRunning {
			return m.jump()
		}
	case eventKnockOut:
		if m.phase == PhaseRunning || m.phase == PhaseSliding || m.phase == PhaseJumping {
			return m.knockOut()
		}
	case eventLand:
		if m.phase == PhaseRunning || m.phase == PhaseSliding ||
			m.phase == PhaseJumping || m.phase == PhaseKnockedOut {
			return m.landOn(ev.position)
		}
	case eventUpdate:
		return m.update()
	}
	return m
}

// Update advances one tick of animation and physics.
func (m BoyStateMachine) Update() BoyStateMachine {
	return m.Transition(Update)
}

// Phase returns the live phase tag.
func (m BoyStateMachine) Phase() Phase {
	return m.phase
}

// Context returns the character's physical state.
func (m BoyStateMachine) Context() Context {
	return m.ctx
}

// KnockedOut reports whether the machine reached its terminal phase.
func (m BoyStateMachine) KnockedOut() bool {
	return m.phase == PhaseKnockedOut
}

// FrameName returns the atlas animation prefix for the live phase.
func (m BoyStateMachine) FrameName() string {
	switch m.phase {
	case PhaseIdle:
		return idleFrameName
	case PhaseRunning:
		return runFrameName
	case PhaseSliding:
		return slideFrameName
	case PhaseJumping:
		return jumpFrameName
	default:
		// Falling and KnockedOut share the death animation.
		return fallingFrameName
	}
}

func (m BoyStateMachine) run() BoyStateMachine {
	return BoyStateMachine{
		phase: PhaseRunning,
		ctx:   m.ctx.resetFrame().runRight(),
	}
}

func (m BoyStateMachine) slide() BoyStateMachine {
	return BoyStateMachine{
		phase: PhaseSliding,
		ctx:   m.ctx.resetFrame(),
	}
}

func (m BoyStateMachine) jump() BoyStateMachine {
	return BoyStateMachine{
		phase: PhaseJumping,
		ctx:   m.ctx.setVerticalVelocity(m.ctx.tuning.JumpSpeed).resetFrame().playJumpSound(),
	}
}

func (m BoyStateMachine) knockOut() BoyStateMachine {
	return BoyStateMachine{
		phase: PhaseFalling,
		ctx:   m.ctx.resetFrame().stop(),
	}
}

func (m BoyStateMachine) landOn(position int) BoyStateMachine {
	switch m.phase {
	case PhaseJumping:
		// Landing completes the jump.
		return BoyStateMachine{
			phase: PhaseRunning,
			ctx:   m.ctx.resetFrame().setOn(position),
		}
	default:
		// Running, Sliding, and KnockedOut keep their phase but rest on
		// the surface; KnockedOut still lands so the body stays on
		// platform geometry.
		return BoyStateMachine{
			phase: m.phase,
			ctx:   m.ctx.setOn(position),
		}
	}
}

func (m BoyStateMachine) update() BoyStateMachine {
	switch m.phase {
	case PhaseIdle:
		m.ctx = m.ctx.update(idleFrames)
		return m

	case PhaseRunning:
		m.ctx = m.ctx.update(runningFrames)
		return m

	case PhaseSliding:
		m.ctx = m.ctx.update(slidingFrames)
		if m.ctx.Frame >= slidingFrames {
			// Slide complete: stand back up.
			return BoyStateMachine{
				phase: PhaseRunning,
				ctx:   m.ctx.resetFrame(),
			}
		}
		return m

	case PhaseJumping:
		m.ctx = m.ctx.update(jumpingFrames)
		if m.ctx.Position.Y >= m.ctx.tuning.Floor {
			// Ground reached: land at screen height regardless of
			// obstacle geometry. Platform landings go through the
			// separate Land event instead.
			return m.landOn(m.ctx.tuning.Height)
		}
		return m

	case PhaseFalling:
		m.ctx = m.ctx.update(fallingFrames)
		if m.ctx.Frame >= fallingFrames {
			// Death animation finished; context retained as-is.
			return BoyStateMachine{
				phase: PhaseKnockedOut,
				ctx:   m.ctx,
			}
		}
		return m

	case PhaseKnockedOut:
		// Terminal for control, but gravity still applies so the body
		// settles onto whatever is below it.
		m.ctx = m.ctx.applyVelocity()
		return m
	}
	return m
}
