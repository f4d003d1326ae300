// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audsig/audio"
	"github.com/ik5/audsig/stft"
)

// Source returns a streaming view of the samples as interleaved float32,
// for use with the audio package pipeline stages.
func (s *Signal) Source() (audio.Source, error) {
	if s.Len() == 0 {
		return nil, ErrNoAudio
	}

	src, err := audio.NewSliceSource(s.sampleRate, s.samples)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return src, nil
}

// replace swaps in samples produced by a conversion. The spectrogram no
// longer describes them and is dropped.
func (s *Signal) replace(data [][]float64) {
	s.setSamples(data)
	s.spec = nil
}

// Resample converts the signal to rate with cubic interpolation. Default
// STFT params are re-derived for the new rate; explicit ones are kept.
func (s *Signal) Resample(rate int) error {
	if rate <= 0 {
		return fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, rate)
	}
	if rate == s.sampleRate {
		return nil
	}

	src, err := s.Source()
	if err != nil {
		return err
	}

	data, err := audio.ReadAll(audio.NewResampler(src, rate))
	if err != nil {
		return fmt.Errorf("failed to resample: %w", err)
	}

	from := s.sampleRate
	s.sampleRate = rate
	s.replace(data)
	if s.defaultParams {
		s.params = stft.DefaultParams(rate)
	}

	s.log.WithFields(logrus.Fields{
		"function": "Resample",
		"from":     from,
		"to":       rate,
		"samples":  s.Len(),
	}).Debug("Signal resampled")

	return nil
}

// SetChannels keeps the first n channels, or repeats the existing
// channels in order until there are n.
func (s *Signal) SetChannels(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrChannelOutOfRange, n)
	}
	if s.Channels() == 0 {
		return ErrNoAudio
	}
	if n == s.Channels() {
		return nil
	}

	data := make([][]float64, n)
	for ch := range data {
		data[ch] = slices.Clone(s.samples[ch%s.Channels()])
	}
	s.replace(data)

	return nil
}

// ToMono averages all channels into one.
func (s *Signal) ToMono() error {
	if s.Channels() == 1 {
		return nil
	}

	src, err := s.Source()
	if err != nil {
		return err
	}

	data, err := audio.ReadAll(audio.NewMonoMixer(src))
	if err != nil {
		return fmt.Errorf("failed to mix down: %w", err)
	}
	s.replace(data)

	return nil
}

// Conformance describes the shape a consumer expects signals to have.
// Zero fields are not enforced.
type Conformance struct {
	// SampleRate the signal must have. With Strict a mismatch is an error,
	// otherwise the signal is resampled.
	SampleRate int
	Strict     bool
	// Params replaces the signal's STFT params when set.
	Params *stft.Params
	// Channels keeps the first Channels channels of wider signals. Narrower
	// signals are left as they are and a warning is logged.
	Channels int
}

// Conform brings sig in line with c.
func Conform(sig *Signal, c Conformance) error {
	if c.SampleRate > 0 && sig.sampleRate != c.SampleRate {
		if c.Strict {
			return fmt.Errorf("%w: signal is %d Hz, want %d Hz",
				ErrSampleRateMismatch, sig.sampleRate, c.SampleRate)
		}

		if err := sig.Resample(c.SampleRate); err != nil {
			return err
		}
	}

	if c.Params != nil {
		if err := sig.SetParams(*c.Params); err != nil {
			return err
		}
	}

	if c.Channels > 0 {
		switch {
		case sig.Channels() > c.Channels:
			if err := sig.SetChannels(c.Channels); err != nil {
				return err
			}
		case sig.Channels() < c.Channels:
			sig.log.WithFields(logrus.Fields{
				"function": "Conform",
				"path":     sig.path,
				"channels": sig.Channels(),
				"want":     c.Channels,
			}).Warn("Signal has fewer channels than requested")
		}
	}

	return nil
}
