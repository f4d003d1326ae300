// SPDX-License-Identifier: EPL-2.0

package stft

import (
	"fmt"
	"math/cmplx"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Spectrogram holds complex short-time coefficients for every channel of a
// signal. The buffer is sized once; channels are frame-major blocks of
// Bins coefficients per frame.
type Spectrogram struct {
	data []complex128

	bins     int
	frames   int
	channels int

	// SampleRate of the analyzed signal in Hz.
	SampleRate int
	// TransformSize is the FFT length the coefficients came from.
	TransformSize int
	// SignalLength is the number of samples per channel of the analyzed
	// signal, or 0 when unknown.
	SignalLength int
	// Freqs holds the centre frequency in Hz of every bin.
	Freqs []float64
	// Times holds the centre of every frame in seconds, relative to the
	// start of the unpadded signal.
	Times []float64
}

// NewSpectrogram allocates a zeroed spectrogram.
func NewSpectrogram(bins, frames, channels int) *Spectrogram {
	return &Spectrogram{
		data:     make([]complex128, bins*frames*channels),
		bins:     bins,
		frames:   frames,
		channels: channels,
	}
}

// NewSpectrogramFromFrames builds a spectrogram from per channel frame
// major coefficients. Every frame of every channel must have the same
// number of bins and every channel the same number of frames.
func NewSpectrogramFromFrames(channels [][][]complex128) (*Spectrogram, error) {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return nil, fmt.Errorf("%w: no frames", ErrParamsMismatch)
	}

	frames := len(channels[0])
	bins := len(channels[0][0])
	s := NewSpectrogram(bins, frames, len(channels))

	for ch, rows := range channels {
		if len(rows) != frames {
			return nil, fmt.Errorf("%w: channel %d has %d frames, want %d",
				ErrParamsMismatch, ch, len(rows), frames)
		}

		dst := s.Channel(ch)
		for f, row := range rows {
			if len(row) != bins {
				return nil, fmt.Errorf("%w: channel %d frame %d has %d bins, want %d",
					ErrParamsMismatch, ch, f, len(row), bins)
			}
			copy(dst[f], row)
		}
	}

	return s, nil
}

func (s *Spectrogram) Bins() int     { return s.bins }
func (s *Spectrogram) Frames() int   { return s.frames }
func (s *Spectrogram) Channels() int { return s.channels }

func (s *Spectrogram) index(bin, frame, ch int) int {
	return (ch*s.frames+frame)*s.bins + bin
}

func (s *Spectrogram) At(bin, frame, ch int) complex128 {
	return s.data[s.index(bin, frame, ch)]
}

func (s *Spectrogram) Set(bin, frame, ch int, v complex128) {
	s.data[s.index(bin, frame, ch)] = v
}

// Power returns |X|² of one coefficient.
func (s *Spectrogram) Power(bin, frame, ch int) float64 {
	v := s.At(bin, frame, ch)
	return real(v)*real(v) + imag(v)*imag(v)
}

// Channel returns frame major views into the coefficients of ch. Writes
// through the views modify the spectrogram.
func (s *Spectrogram) Channel(ch int) [][]complex128 {
	rows := make([][]complex128, s.frames)
	for f := range rows {
		start := s.index(0, f, ch)
		rows[f] = s.data[start : start+s.bins : start+s.bins]
	}

	return rows
}

// Magnitude returns |X| of ch as a Bins x Frames matrix.
func (s *Spectrogram) Magnitude(ch int) *mat.Dense {
	m := mat.NewDense(s.bins, s.frames, nil)
	for f, row := range s.Channel(ch) {
		for b, v := range row {
			m.Set(b, f, cmplx.Abs(v))
		}
	}

	return m
}

// PowerMatrix returns |X|² of ch as a Bins x Frames matrix.
func (s *Spectrogram) PowerMatrix(ch int) *mat.Dense {
	m := mat.NewDense(s.bins, s.frames, nil)
	for f := range s.frames {
		for b := range s.bins {
			m.Set(b, f, s.Power(b, f, ch))
		}
	}

	return m
}

func (s *Spectrogram) Clone() *Spectrogram {
	c := *s
	c.data = slices.Clone(s.data)
	c.Freqs = slices.Clone(s.Freqs)
	c.Times = slices.Clone(s.Times)

	return &c
}
