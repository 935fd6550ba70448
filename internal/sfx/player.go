// Package sfx plays short synthesized cues through the system speaker.
package sfx

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	tapRingSize  = 4096
	chimeLength  = 400 * time.Millisecond
	levelSamples = 1024
)

// Player mixes cues into a single speaker stream. A Player that failed to
// open the speaker stays usable and silent.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	tap     *levelTap
	volume  float64
	started bool
}

func NewPlayer(volume float64) *Player {
	mixer := &beep.Mixer{}
	return &Player{
		mixer:  mixer,
		tap:    newLevelTap(mixer, tapRingSize),
		volume: volume,
	}
}

// Start opens the speaker. Calling it twice is a no-op.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(p.tap)
	p.started = true
	log.Printf("[Audio] Speaker started at %d Hz", sampleRate)
	return nil
}

func (p *Player) Started() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.started
}

// Chime queues a short tone at freq Hz.
func (p *Player) Chime(freq float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started || p.volume == 0 {
		return
	}
	speaker.Lock()
	p.mixer.Add(newChime(sampleRate, freq, p.volume, chimeLength))
	speaker.Unlock()
}

// Level is the RMS of the most recently played samples, in [0, 1].
func (p *Player) Level() float64 {
	return p.tap.rms(levelSamples)
}

// Close silences everything still queued.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.started = false
}
