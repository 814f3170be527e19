// Package audio provides sound output for the runner using the beep
// library. All clips are synthesized, so no sound assets ship with the
// binary.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-runner/internal/games/rhb"
)

const sampleRate = beep.SampleRate(44100)

// Player routes game sound clips to the speaker. The zero value is silent
// until Initialize succeeds.
type Player struct {
	mu    sync.Mutex
	ready bool
}

// New creates an uninitialized player.
func New() *Player {
	return &Player{}
}

// Initialize opens the audio device. On headless hosts this fails; callers
// should treat a failure as "run without sound", not as fatal.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	p.ready = true
	return nil
}

// Play starts a one-shot clip. Unknown clips are logged and dropped.
func (p *Player) Play(clip rhb.Clip) {
	if !p.isReady() {
		return
	}
	switch clip {
	case rhb.ClipJump:
		speaker.Play(newSweep(300, 700, 150*time.Millisecond, 0.4))
	default:
		log.Debug("unknown audio clip", "clip", clip)
	}
}

// PlayLooping starts a clip that repeats until Cleanup.
func (p *Player) PlayLooping(clip rhb.Clip) {
	if !p.isReady() {
		return
	}
	switch clip {
	case rhb.ClipMusic:
		speaker.Play(newArpeggio(0.12))
	default:
		log.Debug("unknown looping audio clip", "clip", clip)
	}
}

// Cleanup stops all playback and releases the device.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}

func (p *Player) isReady() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// sweep is a finite sine streamer whose frequency glides from start to end
// with a linear fade-out envelope.
type sweep struct {
	startFreq float64
	endFreq   float64
	vol       float64
	phase     float64
	pos       int
	total     int
}

func newSweep(startFreq, endFreq float64, d time.Duration, vol float64) *sweep {
	return &sweep{
		startFreq: startFreq,
		endFreq:   endFreq,
		vol:       vol,
		total:     sampleRate.N(d),
	}
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if s.pos >= s.total {
			break
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.startFreq + (s.endFreq-s.startFreq)*progress
		s.phase += 2 * math.Pi * freq / float64(sampleRate)
		v := math.Sin(s.phase) * s.vol * (1 - progress)
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *sweep) Err() error { return nil }

// arpeggio is an infinite streamer cycling through a fixed note loop.
// It loops by construction, so it never needs a seekable source.
type arpeggio struct {
	vol   float64
	phase float64
	pos   int
}

// Note frequencies for the loop, a gentle A-minor figure.
var arpeggioNotes = []float64{220.00, 261.63, 329.63, 261.63}

const arpeggioNoteLen = 300 * time.Millisecond

func newArpeggio(vol float64) *arpeggio {
	return &arpeggio{vol: vol}
}

func (a *arpeggio) Stream(samples [][2]float64) (int, bool) {
	noteSamples := sampleRate.N(arpeggioNoteLen)
	loopSamples := noteSamples * len(arpeggioNotes)
	for i := range samples {
		within := a.pos % loopSamples
		note := within / noteSamples
		freq := arpeggioNotes[note]
		a.phase += 2 * math.Pi * freq / float64(sampleRate)

		// Short attack and release inside each note to avoid clicks.
		notePos := float64(within%noteSamples) / float64(noteSamples)
		env := 1.0
		if notePos < 0.05 {
			env = notePos / 0.05
		} else if notePos > 0.85 {
			env = (1 - notePos) / 0.15
		}

		v := math.Sin(a.phase) * a.vol * env
		samples[i][0] = v
		samples[i][1] = v
		a.pos++
	}
	return len(samples), true
}

func (a *arpeggio) Err() error { return nil }
