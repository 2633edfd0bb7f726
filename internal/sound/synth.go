// Package sound renders whistle cues and plays them, together with spoken
// round announcements, through an OS backend.
package sound

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// PCM format of the rendered whistles.
const (
	SampleRate = 22050
	Channels   = 1
	BitDepth   = 16

	wavFormatPCM = 1
)

// Whistle describes a synthesised referee whistle.
type Whistle struct {
	Name     string
	Duration time.Duration
	// Pitch is the carrier frequency in Hz.
	Pitch float64
	// Warble is the frequency of the pea rattle in Hz.
	Warble float64
	// Volume is the peak amplitude in [0, 1].
	Volume float64
}

// Samples renders the whistle as signed 16-bit mono samples.
func (whistle Whistle) Samples(sampleRate int) []int {
	count := int(whistle.Duration.Seconds() * float64(sampleRate))
	if count <= 0 {
		return nil
	}
	const maxAmplitude = 1<<(BitDepth-1) - 1
	attack := int(0.01 * float64(sampleRate))
	release := int(0.04 * float64(sampleRate))

	samples := make([]int, count)
	phase := 0.0
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		frequency := whistle.Pitch * (1 + 0.04*math.Sin(2*math.Pi*whistle.Warble*t))
		phase += 2 * math.Pi * frequency / float64(sampleRate)

		envelope := 1.0
		if i < attack {
			envelope = float64(i) / float64(attack)
		}
		if tail := count - i; tail < release {
			envelope = math.Min(envelope, float64(tail)/float64(release))
		}
		samples[i] = int(math.Sin(phase) * envelope * whistle.Volume * maxAmplitude)
	}
	return samples
}

// WriteWAV renders the whistle into a WAV file at path.
func (whistle Whistle) WriteWAV(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", whistle.Name, err)
	}

	encoder := wav.NewEncoder(file, SampleRate, BitDepth, Channels, wavFormatPCM)
	buffer := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: Channels, SampleRate: SampleRate},
		Data:           whistle.Samples(SampleRate),
		SourceBitDepth: BitDepth,
	}
	if err := encoder.Write(buffer); err != nil {
		_ = file.Close()
		return fmt.Errorf("encode %s: %w", whistle.Name, err)
	}
	if err := encoder.Close(); err != nil {
		_ = file.Close()
		return fmt.Errorf("finalize %s: %w", whistle.Name, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", whistle.Name, err)
	}
	return nil
}
