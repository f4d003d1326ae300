// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic sources and waveforms for tests.
package audiotest

import (
	"errors"
	"io"
	"math"
	"math/rand/v2"
)

// ErrSourceFailed is returned by FailingSource.
var ErrSourceFailed = errors.New("source failed")

// MockSource generates interleaved audio from a waveform function.
// It implements audio.Source without importing it, to avoid cycles.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // per channel
	waveform     func(sample int, channel int) float32
}

// NewMockSource creates a new mock audio source. totalSamples is the number
// of frames to generate.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSineSource creates a mock source that generates a sine wave on every channel.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source where channel c is values[c].
func NewConstantSource(sampleRate, totalSamples int, values ...float32) *MockSource {
	return NewMockSource(sampleRate, len(values), totalSamples, func(sample int, channel int) float32 {
		return values[channel]
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the generator.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	for frame := range frames {
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(m.generated+frame, ch)
		}
	}

	m.generated += frames
	if m.generated >= m.totalSamples {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}

// FailingSource returns ErrSourceFailed after emitting `after` frames.
type FailingSource struct {
	*MockSource
	after int
}

func NewFailingSource(sampleRate, channels, after int) *FailingSource {
	return &FailingSource{
		MockSource: NewMockSource(sampleRate, channels, math.MaxInt32, func(int, int) float32 { return 0.25 }),
		after:      after,
	}
}

func (f *FailingSource) ReadSamples(dst []float32) (int, error) {
	if f.generated >= f.after {
		return 0, ErrSourceFailed
	}

	limit := (f.after - f.generated) * f.channels
	if len(dst) > limit {
		dst = dst[:limit]
	}

	return f.MockSource.ReadSamples(dst)
}

// Sine returns n samples of a sine wave with the given amplitude.
func Sine(n, sampleRate int, frequency, amplitude float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*frequency*float64(i)/float64(sampleRate))
	}
	return out
}

// Noise returns n uniformly distributed samples in [-amplitude, amplitude).
// The same seed always yields the same samples.
func Noise(n int, amplitude float64, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}
	return out
}

// MaxAbsDiff returns the largest absolute difference between a and b over
// their common prefix.
func MaxAbsDiff(a, b []float64) float64 {
	var worst float64
	for i := range min(len(a), len(b)) {
		worst = math.Max(worst, math.Abs(a[i]-b[i]))
	}
	return worst
}
