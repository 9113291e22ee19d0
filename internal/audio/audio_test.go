package audio

import (
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/yes-no-rings/internal/config"
	"github.com/iburimskiy/yes-no-rings/internal/physics"
)

const testRate = beep.SampleRate(8000)

// writeClip writes a constant-level stereo WAV of n samples.
func writeClip(t *testing.T, dir, name string, rate beep.SampleRate, n int, level float64) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src := beep.Take(n, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{level, level}
		}
		return len(samples), true
	}))
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, src, format); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
}

func streamLen(s beep.Streamer) int {
	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestLoadBankFallsBackToSilence(t *testing.T) {
	b := LoadBank(t.TempDir(), testRate)

	if b.AmbientCount() != 1 {
		t.Errorf("AmbientCount() = %d, want 1", b.AmbientCount())
	}
	want := testRate.N(50 * time.Millisecond)
	for _, name := range []string{config.YesClip, config.NoClip, "unknown"} {
		if got := streamLen(b.Clip(name)); got != want {
			t.Errorf("clip %q has %d samples, want %d", name, got, want)
		}
	}
}

func TestLoadBankFindsClips(t *testing.T) {
	dir := t.TempDir()
	writeClip(t, dir, "none.wav", testRate, 100, 0)
	writeClip(t, dir, "YES.wav", testRate, 400, 0.5)
	writeClip(t, dir, "gravity fall.wav", testRate, 200, 0.5)
	writeClip(t, dir, "gravity fall (3).wav", testRate, 200, 0.5)
	writeClip(t, dir, "gravity fall4.wav", testRate, 200, 0.5)
	writeClip(t, dir, "gravity fall (16).wav", testRate, 200, 0.5)

	b := LoadBank(dir, testRate)

	if b.AmbientCount() != 3 {
		t.Errorf("AmbientCount() = %d, want 3", b.AmbientCount())
	}
	if got := streamLen(b.Clip(config.YesClip)); got != 400 {
		t.Errorf("YES has %d samples, want 400", got)
	}
	// NO is missing and falls back to none
	if got := streamLen(b.Clip(config.NoClip)); got != 100 {
		t.Errorf("NO has %d samples, want 100", got)
	}
}

func TestLoadBankResamples(t *testing.T) {
	dir := t.TempDir()
	writeClip(t, dir, "YES.wav", testRate/2, 1000, 0.5)

	b := LoadBank(dir, testRate)
	got := streamLen(b.Clip(config.YesClip))
	if got < 1900 || got > 2100 {
		t.Errorf("resampled clip has %d samples, want about 2000", got)
	}
}

func TestDecodeFileRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.ogg")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := decodeFile(path); err == nil {
		t.Error("expected error for .ogg")
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	dir := t.TempDir()
	writeClip(t, dir, "YES.wav", testRate, 300, 0.5)
	writeClip(t, dir, "NO.wav", testRate, 300, 0.25)
	writeClip(t, dir, "gravity fall.wav", testRate, 1000, 0.1)
	writeClip(t, dir, "gravity fall2.wav", testRate, 1000, 0.1)
	return NewManager(LoadBank(dir, testRate), &sync.Mutex{}, rand.New(rand.NewSource(1)))
}

func TestTouchCueReplacesPrevious(t *testing.T) {
	m := newTestManager(t)
	m.PlayTouch()
	m.PlayTouch()
	if m.Playing() != 2 {
		t.Fatalf("Playing() = %d before streaming", m.Playing())
	}

	m.Streamer().Stream(make([][2]float64, 10))
	if m.Playing() != 1 {
		t.Errorf("Playing() = %d, want the stopped touch cue dropped", m.Playing())
	}
}

func TestBreakCuesOverlap(t *testing.T) {
	m := newTestManager(t)
	m.PlayBreak(physics.Yes)
	m.PlayBreak(physics.No)

	samples := make([][2]float64, 100)
	m.Streamer().Stream(samples)
	// 0.5 + 0.25 through 16-bit quantisation
	if v := samples[50][0]; v < 0.74 || v > 0.76 {
		t.Errorf("mixed sample = %f, want about 0.75", v)
	}
	if m.Playing() != 2 {
		t.Errorf("Playing() = %d, want 2", m.Playing())
	}

	// a clip is dropped on the call after its last sample
	m.Streamer().Stream(make([][2]float64, 400))
	m.Streamer().Stream(make([][2]float64, 10))
	if m.Playing() != 0 {
		t.Errorf("finished clips still playing: %d", m.Playing())
	}
}

func TestStopClearsMixer(t *testing.T) {
	m := newTestManager(t)
	m.PlayTouch()
	m.PlayBreak(physics.Yes)
	m.Stop()
	if m.Playing() != 0 {
		t.Errorf("Playing() = %d after Stop", m.Playing())
	}
}
