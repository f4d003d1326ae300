// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/ik5/audsig/audio"
	"github.com/ik5/audsig/formats"
	"github.com/ik5/audsig/stft"
)

// DefaultSampleRate is used for in-memory samples when no rate is given.
const DefaultSampleRate = 44100

// Signal is a multi-channel waveform together with its optional
// short-time spectrogram.
//
// Samples are stored channel major. ISTFT, Write and the conversion
// methods replace or rescale them in place; keep a Clone when the previous
// samples are still needed. A Signal is not safe for concurrent mutation.
type Signal struct {
	samples    [][]float64
	timeAxis   []float64
	sampleRate int
	path       string

	params        stft.Params
	defaultParams bool
	kernel        stft.KernelFactory
	spec          *stft.Spectrogram

	log logrus.FieldLogger
}

// New creates a signal from at most one of WithPath, WithReader,
// WithSource and WithSamples or WithMono. Without any of them the signal starts empty and
// is usually given a spectrogram with WithSpectrogram.
func New(opts ...Option) (*Signal, error) {
	c := config{sampleRate: DefaultSampleRate}
	for _, opt := range opts {
		opt(&c)
	}

	sources := 0
	for _, set := range []bool{c.path != "", c.reader != nil, c.source != nil, c.hasSamples} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return nil, ErrAmbiguousSource
	}

	if sources == 0 && !c.hasSampleRate && c.spec != nil && c.spec.SampleRate > 0 {
		c.sampleRate = c.spec.SampleRate
	}

	if c.sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, c.sampleRate)
	}

	s := &Signal{
		sampleRate: c.sampleRate,
		path:       c.path,
		kernel:     c.kernel,
		log:        c.logger,
	}
	if s.log == nil {
		s.log = defaultLogger()
	}
	if s.kernel == nil {
		s.kernel = stft.NewGonumKernel
	}

	reg := c.registry
	if reg == nil {
		reg = formats.Default()
	}

	switch {
	case c.path != "":
		if err := s.loadFile(reg, c.path, c.offset, c.duration); err != nil {
			return nil, err
		}
	case c.reader != nil:
		if err := s.loadReader(reg, c.reader, c.format, c.offset, c.duration); err != nil {
			return nil, err
		}
	case c.source != nil:
		if err := s.loadSource(c.source, c.offset, c.duration); err != nil {
			return nil, err
		}
	case c.hasSamples:
		if err := s.SetSamples(c.samples); err != nil {
			return nil, err
		}
	}

	if c.params != nil {
		if err := c.params.Validate(); err != nil {
			return nil, err
		}
		s.params = *c.params
	} else {
		s.params = stft.DefaultParams(s.sampleRate)
		s.defaultParams = true
	}

	if c.spec != nil {
		if s.samples != nil && c.spec.Channels() != s.Channels() {
			return nil, fmt.Errorf("%w: spectrogram has %d channels, samples have %d",
				ErrChannelMismatch, c.spec.Channels(), s.Channels())
		}
		s.spec = c.spec
	}

	return s, nil
}

// FromArray creates a signal from channel major samples.
func FromArray(samples [][]float64, sampleRate int, opts ...Option) (*Signal, error) {
	return New(append([]Option{WithSamples(samples), WithSampleRate(sampleRate)}, opts...)...)
}

// FromMono creates a single channel signal.
func FromMono(samples []float64, sampleRate int, opts ...Option) (*Signal, error) {
	return New(append([]Option{WithMono(samples), WithSampleRate(sampleRate)}, opts...)...)
}

// Load decodes the audio file at path.
func Load(path string, opts ...Option) (*Signal, error) {
	return New(append([]Option{WithPath(path)}, opts...)...)
}

// FromSource drains src, e.g. the end of an audio pipeline, into a signal.
func FromSource(src audio.Source, opts ...Option) (*Signal, error) {
	return New(append([]Option{WithSource(src)}, opts...)...)
}

// LoadFrom decodes a stream of the given format.
func LoadFrom(r io.Reader, format string, opts ...Option) (*Signal, error) {
	return New(append([]Option{WithReader(r, format)}, opts...)...)
}

// SetSamples replaces the samples with a copy of samples. A nil or empty
// slice becomes a single empty channel. All channels must have the same
// length. The spectrogram is kept, so non-empty samples must have as many
// channels as it does or ErrChannelMismatch is returned.
func (s *Signal) SetSamples(samples [][]float64) error {
	if len(samples) == 0 {
		samples = [][]float64{nil}
	}

	length := len(samples[0])
	if s.spec != nil && length > 0 && s.spec.Channels() != len(samples) {
		return fmt.Errorf("%w: spectrogram has %d channels, samples have %d",
			ErrChannelMismatch, s.spec.Channels(), len(samples))
	}
	data := make([][]float64, len(samples))
	for ch, row := range samples {
		if len(row) != length {
			return fmt.Errorf("%w: channel %d has %d samples, want %d",
				audio.ErrRaggedChannels, ch, len(row), length)
		}
		data[ch] = slices.Clone(row)
		if data[ch] == nil {
			data[ch] = []float64{}
		}
	}

	s.setSamples(data)
	return nil
}

// setSamples takes ownership of data and derives the time axis.
func (s *Signal) setSamples(data [][]float64) {
	s.samples = data

	s.timeAxis = make([]float64, s.Len())
	for i := range s.timeAxis {
		s.timeAxis[i] = float64(i) / float64(s.sampleRate)
	}
}

// Samples returns the channel major samples. The slices are shared with
// the signal; use Clone to get an independent copy.
func (s *Signal) Samples() [][]float64 { return s.samples }

// Matrix returns a Channels x Len copy of the samples, or nil when the
// signal has no samples.
func (s *Signal) Matrix() *mat.Dense {
	if s.Len() == 0 {
		return nil
	}

	m := mat.NewDense(s.Channels(), s.Len(), nil)
	for ch, row := range s.samples {
		m.SetRow(ch, row)
	}

	return m
}

// Len returns the number of samples per channel.
func (s *Signal) Len() int {
	if len(s.samples) == 0 {
		return 0
	}
	return len(s.samples[0])
}

func (s *Signal) Channels() int   { return len(s.samples) }
func (s *Signal) SampleRate() int { return s.sampleRate }

// Duration is the playing time of the samples.
func (s *Signal) Duration() time.Duration {
	return time.Duration(float64(s.Len()) / float64(s.sampleRate) * float64(time.Second))
}

// TimeAxis returns the time in seconds of every sample.
func (s *Signal) TimeAxis() []float64 { return s.timeAxis }

// Path returns the file the signal was loaded from, if any.
func (s *Signal) Path() string { return s.path }

// FileName returns the base name of the file the signal was loaded from,
// or "" for in-memory signals.
func (s *Signal) FileName() string {
	if s.path == "" {
		return ""
	}
	return filepath.Base(s.path)
}

func (s *Signal) Params() stft.Params { return s.params }

// SetParams changes the STFT parameters. The current spectrogram is kept;
// the next STFT call recomputes it and ISTFT checks it against p.
func (s *Signal) SetParams(p stft.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.params = p
	s.defaultParams = false
	return nil
}

// Spectrogram returns the spectrogram computed by STFT or attached with
// WithSpectrogram, or nil.
func (s *Signal) Spectrogram() *stft.Spectrogram { return s.spec }

func (s *Signal) HasSpectrogram() bool { return s.spec != nil }

// SetSpectrogram attaches spec, e.g. after editing a clone of it.
func (s *Signal) SetSpectrogram(spec *stft.Spectrogram) error {
	if spec != nil && s.Len() > 0 && spec.Channels() != s.Channels() {
		return fmt.Errorf("%w: spectrogram has %d channels, samples have %d",
			ErrChannelMismatch, spec.Channels(), s.Channels())
	}

	s.spec = spec
	return nil
}

// Clone returns a deep copy of the signal including its spectrogram.
func (s *Signal) Clone() *Signal {
	c := *s

	c.samples = make([][]float64, len(s.samples))
	for ch, row := range s.samples {
		c.samples[ch] = slices.Clone(row)
	}
	c.timeAxis = slices.Clone(s.timeAxis)

	if s.spec != nil {
		c.spec = s.spec.Clone()
	}

	return &c
}

// derive returns an in-memory signal holding data that shares the
// receiver's rate, params and logger.
func (s *Signal) derive(data [][]float64) *Signal {
	out := &Signal{
		sampleRate:    s.sampleRate,
		params:        s.params,
		defaultParams: s.defaultParams,
		kernel:        s.kernel,
		log:           s.log,
	}
	out.setSamples(data)

	return out
}
