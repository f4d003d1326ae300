// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/ik5/audsig/formats/wav"
	"github.com/ik5/audsig/utils"
)

// WriteBitDepth is the PCM depth Write encodes at.
const WriteBitDepth = 16

// Write peak normalizes the samples in place and stores them as a 16-bit
// PCM WAV file. A sampleRate above zero overrides the signal's rate in the
// file header.
func (s *Signal) Write(path string, sampleRate int) error {
	if s.Len() == 0 {
		return ErrNoAudio
	}

	s.PeakNormalize(WriteBitDepth)

	rate := s.sampleRate
	if sampleRate > 0 {
		rate = sampleRate
	}

	if err := wav.WriteFile(path, rate, WriteBitDepth, s.samples); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	s.log.WithFields(logrus.Fields{
		"function":    "Write",
		"path":        path,
		"sample_rate": rate,
		"channels":    s.Channels(),
		"samples":     s.Len(),
	}).Info("Audio file written")

	return nil
}

// WriteTo encodes the samples as PCM WAV at bitDepth without normalizing
// them. Samples outside [-1, 1] are clipped by the encoder.
func (s *Signal) WriteTo(ws io.WriteSeeker, sampleRate, bitDepth int) error {
	if s.Len() == 0 {
		return ErrNoAudio
	}

	rate := s.sampleRate
	if sampleRate > 0 {
		rate = sampleRate
	}

	if err := wav.Encode(ws, rate, bitDepth, s.samples); err != nil {
		return fmt.Errorf("failed to encode wav: %w", err)
	}

	return nil
}

// Peak returns the largest absolute sample value.
func (s *Signal) Peak() float64 {
	peak := 0.0
	for _, row := range s.samples {
		if len(row) == 0 {
			continue
		}
		peak = max(peak, floats.Max(row), -floats.Min(row))
	}

	return peak
}

// PeakNormalize scales every sample by 1/peak when the peak exceeds the
// unit full scale that bitDepth maps to. Signals within range and empty
// signals are left unchanged.
func (s *Signal) PeakNormalize(bitDepth int) {
	ceiling := utils.IntToFloat(int(utils.FullScale(bitDepth)), bitDepth)

	peak := s.Peak()
	if peak <= ceiling {
		return
	}

	for _, row := range s.samples {
		floats.Scale(1/peak, row)
	}
}
