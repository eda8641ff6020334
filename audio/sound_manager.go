// Package audio plays the game's effect tones through the beep speaker.
// Audio is strictly optional: when Initialize fails or Play* is called
// before it, every effect is a no-op and the game runs silently.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Effect tone lengths
const (
	blipDuration = 50 * time.Millisecond
	toneDuration = 150 * time.Millisecond
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{}
}

// Initialize opens the speaker. Safe to call more than once.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

// Close shuts the speaker down
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Close()
		sm.initialized = false
	}
}

// SetMuted silences all effects without closing the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// PlayEat plays the short food blip.
func (sm *SoundManager) PlayEat() {
	sm.playTones(blipDuration, 880)
}

// PlayGameOver plays a falling two-tone figure.
func (sm *SoundManager) PlayGameOver() {
	sm.playTones(toneDuration, 392, 262)
}

// PlayVictory plays a rising arpeggio.
func (sm *SoundManager) PlayVictory() {
	sm.playTones(toneDuration, 523, 659, 784)
}

// playTones queues sine tones of the given frequencies back to back.
func (sm *SoundManager) playTones(each time.Duration, freqs ...float64) {
	sm.mu.Lock()
	ready := sm.initialized && !sm.muted
	sm.mu.Unlock()
	if !ready {
		return
	}

	parts := make([]beep.Streamer, 0, len(freqs))
	for _, freq := range freqs {
		tone, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			return
		}
		parts = append(parts, beep.Take(sampleRate.N(each), tone))
	}
	speaker.Play(beep.Seq(parts...))
}
