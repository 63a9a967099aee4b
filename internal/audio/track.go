// Package audio provides the background music loop played during a game.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	sampleRate = beep.SampleRate(44100)

	// Share of each note that is sounded before the gap to the next one
	noteGate = 0.85
	amp      = 0.12
)

// theme is the looping melody in Hz. Zero is a rest.
var theme = []float64{
	220.00, 261.63, 329.63, 261.63, // A3 C4 E4 C4
	196.00, 246.94, 293.66, 246.94, // G3 B3 D4 B3
	174.61, 220.00, 261.63, 220.00, // F3 A3 C4 A3
	164.81, 207.65, 246.94, 329.63, // E3 G#3 B3 E4
}

// Track is an endlessly repeating synthesized melody.
// It implements beep.StreamSeeker so a restart can rewind it to the first note.
type Track struct {
	sr      beep.SampleRate
	notes   []float64
	noteLen int // samples per note
	pos     int
}

// NewTrack creates a track playing notes at bpm quarter notes per minute.
func NewTrack(sr beep.SampleRate, bpm int, notes []float64) *Track {
	if bpm <= 0 {
		bpm = 120
	}
	return &Track{
		sr:      sr,
		notes:   notes,
		noteLen: sr.N(time.Minute / time.Duration(bpm)),
	}
}

// Stream fills samples with the melody, wrapping at the end of the loop.
func (t *Track) Stream(samples [][2]float64) (n int, ok bool) {
	length := t.Len()
	if length == 0 {
		return 0, false
	}

	for i := range samples {
		idx := t.pos / t.noteLen
		offset := t.pos % t.noteLen
		freq := t.notes[idx]

		sample := 0.0
		if freq > 0 && float64(offset) < noteGate*float64(t.noteLen) {
			tm := float64(offset) / float64(t.sr)
			// Short linear attack avoids clicks at note boundaries
			env := math.Min(float64(offset)/float64(t.sr.N(5*time.Millisecond)), 1)
			sample = amp * env * (math.Sin(2*math.Pi*freq*tm) + 0.3*math.Sin(4*math.Pi*freq*tm))
		}

		samples[i][0] = sample
		samples[i][1] = sample

		t.pos++
		if t.pos >= length {
			t.pos = 0
		}
	}
	return len(samples), true
}

// Err always returns nil; the track is generated in memory.
func (t *Track) Err() error {
	return nil
}

// Len returns the length of one pass through the melody in samples.
func (t *Track) Len() int {
	return len(t.notes) * t.noteLen
}

// Position returns the current sample offset within the loop.
func (t *Track) Position() int {
	return t.pos
}

// Seek moves to sample offset p.
func (t *Track) Seek(p int) error {
	if p < 0 || p > t.Len() {
		return fmt.Errorf("audio: seek position %d out of range [0, %d]", p, t.Len())
	}
	t.pos = p
	if t.pos == t.Len() {
		t.pos = 0
	}
	return nil
}
