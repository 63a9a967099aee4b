package audio

import (
	"math"
	"testing"
	"time"
)

func TestTrackLoops(t *testing.T) {
	tr := NewTrack(sampleRate, 600, []float64{440, 0})
	length := tr.Len()
	if length != 2*sampleRate.N(100*time.Millisecond) {
		t.Fatalf("Len() = %d, expected two 100ms notes", length)
	}

	buf := make([][2]float64, length+10)
	n, ok := tr.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("Stream() = %d, %v", n, ok)
	}
	if tr.Position() != 10 {
		t.Errorf("Position() = %d after wrapping, expected 10", tr.Position())
	}

	for i, s := range buf {
		if math.Abs(s[0]) > 1 || s[0] != s[1] {
			t.Fatalf("sample %d = %v, expected mono in [-1,1]", i, s)
		}
	}

	// The second note is a rest
	for i := length/2 + 1; i < length; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("sample %d = %v during rest", i, buf[i][0])
		}
	}
}

func TestTrackSeek(t *testing.T) {
	tr := NewTrack(sampleRate, 120, theme)

	tests := []struct {
		pos     int
		wantErr bool
		wantPos int
	}{
		{pos: 0, wantPos: 0},
		{pos: 100, wantPos: 100},
		{pos: tr.Len(), wantPos: 0},
		{pos: -1, wantErr: true},
		{pos: tr.Len() + 1, wantErr: true},
	}

	for _, tc := range tests {
		err := tr.Seek(tc.pos)
		if (err != nil) != tc.wantErr {
			t.Errorf("Seek(%d) error = %v, wantErr %v", tc.pos, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && tr.Position() != tc.wantPos {
			t.Errorf("Seek(%d): Position() = %d, expected %d", tc.pos, tr.Position(), tc.wantPos)
		}
	}
}

func TestEmptyTrackStops(t *testing.T) {
	tr := NewTrack(sampleRate, 120, nil)
	n, ok := tr.Stream(make([][2]float64, 8))
	if n != 0 || ok {
		t.Errorf("Stream() = %d, %v, expected 0, false", n, ok)
	}
}

// Music is exercised without Open so no audio device is needed.
func TestMusicStateWithoutDevice(t *testing.T) {
	m := NewMusic(0)

	if m.Playing() {
		t.Fatal("music should start paused")
	}

	m.Play()
	if !m.Playing() {
		t.Error("Play() did not unpause")
	}

	buf := make([][2]float64, 512)
	m.ctrl.Stream(buf)
	if m.Position() != 512 {
		t.Errorf("Position() = %d, expected 512", m.Position())
	}

	m.Pause()
	if m.Playing() {
		t.Error("Pause() did not pause")
	}
	m.ctrl.Stream(buf)
	if m.Position() != 512 {
		t.Errorf("paused stream advanced to %d", m.Position())
	}

	m.Rewind()
	if m.Position() != 0 {
		t.Errorf("Rewind(): Position() = %d, expected 0", m.Position())
	}

	// Close without Open is a no-op
	m.Close()
}

func TestMusicMuted(t *testing.T) {
	m := NewMusic(-10)
	m.Play()

	buf := make([][2]float64, 2048)
	m.ctrl.Stream(buf)
	for i, s := range buf {
		if s[0] != 0 {
			t.Fatalf("sample %d = %v while muted", i, s[0])
		}
	}
}

func TestMusicOpen(t *testing.T) {
	m := NewMusic(0)

	// Speaker initialization fails without an audio device
	if err := m.Open(); err != nil {
		t.Logf("Open() failed (expected without audio device): %v", err)
		return
	}
	defer m.Close()

	if err := m.Open(); err != nil {
		t.Errorf("second Open() should be a no-op, got %v", err)
	}
	m.Play()
	m.Rewind()
	m.Pause()
}
