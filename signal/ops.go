// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
)

func (s *Signal) checkChannels(other *Signal) error {
	if s.Channels() != other.Channels() {
		return fmt.Errorf("%w: %d and %d", ErrChannelMismatch, s.Channels(), other.Channels())
	}
	return nil
}

// Add returns the sample-wise sum of s and other. The shorter signal is
// added into the start of a copy of the longer one; the rest of the longer
// signal is kept as is. Neither operand changes.
func (s *Signal) Add(other *Signal) (*Signal, error) {
	if err := s.checkChannels(other); err != nil {
		return nil, err
	}

	long, short := s.samples, other.samples
	if other.Len() > s.Len() {
		long, short = short, long
	}

	out := make([][]float64, len(long))
	for ch := range long {
		out[ch] = slices.Clone(long[ch])
		floats.Add(out[ch][:len(short[ch])], short[ch])
	}

	return s.derive(out), nil
}

// Sub returns s minus other when s is at least as long as other. When s
// is shorter, the longer operand is copied and s is subtracted from its
// start, so the result is other minus s. Neither operand changes.
func (s *Signal) Sub(other *Signal) (*Signal, error) {
	if err := s.checkChannels(other); err != nil {
		return nil, err
	}

	long, short := s.samples, other.samples
	if other.Len() > s.Len() {
		long, short = short, long
	}

	out := make([][]float64, len(long))
	for ch := range long {
		out[ch] = slices.Clone(long[ch])
		floats.Sub(out[ch][:len(short[ch])], short[ch])
	}

	return s.derive(out), nil
}

// Concat appends the samples of other to s along the time axis.
func (s *Signal) Concat(other *Signal) error {
	if err := s.checkChannels(other); err != nil {
		return err
	}

	data := make([][]float64, s.Channels())
	for ch := range data {
		data[ch] = slices.Concat(s.samples[ch], other.samples[ch])
	}
	s.setSamples(data)

	return nil
}

// Channel returns a copy of channel n, counting from 1.
func (s *Signal) Channel(n int) ([]float64, error) {
	if n < 1 || n > s.Channels() {
		return nil, fmt.Errorf("%w: %d of %d", ErrChannelOutOfRange, n, s.Channels())
	}

	return slices.Clone(s.samples[n-1]), nil
}
