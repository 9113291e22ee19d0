// Package audio loads the toy's sound clips into memory and mixes the
// touch and break cues.
package audio

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/yes-no-rings/internal/config"
)

const resampleQuality = 4

var clipExtensions = []string{".wav", ".mp3", ".flac"}

// Bank holds decoded clips, all at one sample rate.
type Bank struct {
	format  beep.Format
	clips   map[string]*beep.Buffer
	ambient []*beep.Buffer
}

// LoadBank reads the named clips and the ambient set from dir. A missing or
// broken clip is replaced by the fallback clip, and a missing fallback by a
// short silence, so LoadBank never fails.
func LoadBank(dir string, rate beep.SampleRate) *Bank {
	b := &Bank{
		format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
		clips:  map[string]*beep.Buffer{},
	}

	fallback, err := b.load(dir, config.FallbackClip)
	if err != nil {
		log.Printf("Fallback clip unavailable, using silence: %v", err)
		fallback = b.silence()
	}
	b.clips[config.FallbackClip] = fallback

	for _, name := range []string{config.YesClip, config.NoClip} {
		buf, err := b.load(dir, name)
		if err != nil {
			log.Printf("Clip %q unavailable, using fallback: %v", name, err)
			buf = fallback
		}
		b.clips[name] = buf
	}

	for _, candidates := range ambientNames() {
		for _, name := range candidates {
			buf, err := b.load(dir, name)
			if err == nil {
				b.ambient = append(b.ambient, buf)
				break
			}
			if !errors.Is(err, os.ErrNotExist) {
				log.Printf("Skipping ambient clip %q: %v", name, err)
			}
		}
	}
	log.Printf("Loaded %d ambient clips", len(b.ambient))
	if len(b.ambient) == 0 {
		log.Printf("Warning: no ambient clips found, using fallback")
		b.ambient = []*beep.Buffer{fallback}
	}
	return b
}

// ambientNames lists, per slot, the accepted base names of the ambient clips.
func ambientNames() [][]string {
	prefix := config.AmbientClipPrefix
	names := [][]string{{prefix}}
	for i := 2; i <= config.AmbientClipMax; i++ {
		names = append(names, []string{
			fmt.Sprintf("%s (%d)", prefix, i),
			fmt.Sprintf("%s%d", prefix, i),
		})
	}
	return names
}

func (b *Bank) Format() beep.Format { return b.format }

// Clip returns a fresh streamer over the named clip, or the fallback.
func (b *Bank) Clip(name string) beep.StreamSeeker {
	buf, ok := b.clips[name]
	if !ok {
		buf = b.clips[config.FallbackClip]
	}
	return buf.Streamer(0, buf.Len())
}

func (b *Bank) AmbientCount() int { return len(b.ambient) }

// Ambient returns a fresh streamer over ambient clip i.
func (b *Bank) Ambient(i int) beep.StreamSeeker {
	buf := b.ambient[i]
	return buf.Streamer(0, buf.Len())
}

func (b *Bank) load(dir, name string) (*beep.Buffer, error) {
	path, ok := findClip(dir, name)
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, os.ErrNotExist)
	}
	streamer, format, err := decodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != b.format.SampleRate {
		src = beep.Resample(resampleQuality, format.SampleRate, b.format.SampleRate, streamer)
	}
	buf := beep.NewBuffer(b.format)
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf, nil
}

func (b *Bank) silence() *beep.Buffer {
	buf := beep.NewBuffer(b.format)
	buf.Append(beep.Silence(b.format.SampleRate.N(50 * time.Millisecond)))
	return buf
}

func findClip(dir, name string) (string, bool) {
	for _, ext := range clipExtensions {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	// Decode based on extension
	ext := filepath.Ext(path)
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(ext) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, beep.Format{}, errors.New("unsupported file type: " + ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, err
	}
	return streamer, format, nil
}
