package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Tempo of the background loop in beats per minute.
const defaultTempo = 150

// Music is the background loop. It starts paused; Play, Pause and Rewind
// only flip state on the streamer chain and never block on the device.
// Without Open it stays silent, which keeps it usable in tests.
type Music struct {
	mu     sync.Mutex
	track  *Track
	volume *effects.Volume
	ctrl   *beep.Ctrl
	open   bool
}

// NewMusic creates a paused loop. volume is in halvings (0 is unchanged,
// -1 is half amplitude); values at or below -10 mute it.
func NewMusic(volume float64) *Music {
	track := NewTrack(sampleRate, defaultTempo, theme)
	vol := &effects.Volume{
		Streamer: track,
		Base:     2,
		Volume:   volume,
		Silent:   volume <= -10,
	}
	return &Music{
		track:  track,
		volume: vol,
		ctrl:   &beep.Ctrl{Streamer: vol, Paused: true},
	}
}

// Open initializes the speaker and attaches the loop to it.
// Calling Open more than once is a no-op.
func (m *Music) Open() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.open {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: failed to initialize speaker: %w", err)
	}
	speaker.Play(m.ctrl)
	m.open = true
	return nil
}

// Close detaches the loop from the speaker.
func (m *Music) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.open {
		return
	}
	m.ctrl.Paused = true
	speaker.Clear()
	m.open = false
}

// Play resumes the loop from its current position.
func (m *Music) Play() {
	m.update(func() { m.ctrl.Paused = false })
}

// Pause stops the loop, keeping its position.
func (m *Music) Pause() {
	m.update(func() { m.ctrl.Paused = true })
}

// Rewind moves the loop back to its first note.
func (m *Music) Rewind() {
	// Seek(0) is always in range
	m.update(func() { _ = m.track.Seek(0) })
}

// Playing reports whether the loop is unpaused.
func (m *Music) Playing() bool {
	var playing bool
	m.update(func() { playing = !m.ctrl.Paused })
	return playing
}

// Position returns the current sample offset in the loop.
func (m *Music) Position() int {
	var pos int
	m.update(func() { pos = m.track.Position() })
	return pos
}

// update runs fn while holding the speaker lock when the device is active,
// since the speaker goroutine reads the streamer chain concurrently.
func (m *Music) update(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.open {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}
