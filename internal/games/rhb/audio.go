package rhb

// Clip names a sound effect the simulation can request.
type Clip string

// Clips triggered by the simulation.
const (
	ClipJump  Clip = "jump"
	ClipMusic Clip = "music"
)

// Audio is the fire-and-forget sound contract. Implementations must never
// block or fail loudly; playback errors are the collaborator's problem and
// never reach the simulation's control flow.
type Audio interface {
	// Play plays a clip once.
	Play(clip Clip)

	// PlayLooping plays a clip on an endless loop.
	PlayLooping(clip Clip)
}

// NopAudio discards all playback requests. Used when sound is disabled and
// in tests.
type NopAudio struct{}

func (NopAudio) Play(Clip)        {}
func (NopAudio) PlayLooping(Clip) {}
