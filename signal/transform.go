// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audsig/stft"
)

func (s *Signal) transform() (*stft.Transform, error) {
	t, err := stft.New(s.params, s.sampleRate, stft.WithKernel(s.kernel))
	if err != nil {
		return nil, fmt.Errorf("failed to set up stft: %w", err)
	}

	return t, nil
}

// STFT computes the spectrogram of every channel from scratch, stores it
// on the signal and returns it. The samples are not modified.
func (s *Signal) STFT() (*stft.Spectrogram, error) {
	if s.Len() == 0 {
		return nil, ErrNoAudio
	}

	t, err := s.transform()
	if err != nil {
		return nil, err
	}

	spec, err := t.Forward(s.samples)
	if err != nil {
		return nil, fmt.Errorf("stft: %w", err)
	}
	s.spec = spec

	s.log.WithFields(logrus.Fields{
		"function": "STFT",
		"channels": spec.Channels(),
		"frames":   spec.Frames(),
		"bins":     spec.Bins(),
		"window":   s.params.Window.String(),
	}).Debug("Spectrogram computed")

	return spec, nil
}

// ISTFT replaces the samples with the inverse transform of the current
// spectrogram. The spectrogram itself is kept, so repeated calls give the
// same samples.
func (s *Signal) ISTFT() error {
	if s.spec == nil {
		return ErrNoSpectrogram
	}

	t, err := s.transform()
	if err != nil {
		return err
	}

	data, err := t.Inverse(s.spec)
	if err != nil {
		return fmt.Errorf("istft: %w", err)
	}
	s.setSamples(data)

	s.log.WithFields(logrus.Fields{
		"function": "ISTFT",
		"channels": s.Channels(),
		"samples":  s.Len(),
	}).Debug("Samples synthesized from spectrogram")

	return nil
}
