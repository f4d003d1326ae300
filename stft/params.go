// SPDX-License-Identifier: EPL-2.0

package stft

import (
	"fmt"
	"math"
)

// DefaultWindowSeconds is the default analysis window length in seconds.
const DefaultWindowSeconds = 0.06

// Params describes how a signal is cut into frames and transformed.
//
// An OverlapRatio of 0 with a window that is zero at its edges (Hann,
// Blackman, Triangular, Sine) loses the first and last sample of every
// frame on the way back through Inverse.
type Params struct {
	Window        WindowType `yaml:"window_type"`
	WindowLength  int        `yaml:"window_length"`
	TransformSize int        `yaml:"transform_size"`
	OverlapRatio  float64    `yaml:"overlap_ratio"`
}

// DefaultParams returns Hamming windows of 60ms at sampleRate, a transform
// of the same size and 50% overlap.
func DefaultParams(sampleRate int) Params {
	w := max(int(DefaultWindowSeconds*float64(sampleRate)), 1)

	return Params{
		Window:        Hamming,
		WindowLength:  w,
		TransformSize: w,
		OverlapRatio:  0.5,
	}
}

// OverlapSamples is the number of samples shared by consecutive frames.
func (p Params) OverlapSamples() int {
	return int(math.Ceil(p.OverlapRatio * float64(p.WindowLength)))
}

// Hop is the distance in samples between consecutive frame starts.
func (p Params) Hop() int {
	return p.WindowLength - p.OverlapSamples()
}

// Bins is the number of non-negative frequency bins per frame.
func (p Params) Bins() int {
	return p.TransformSize/2 + 1
}

// Frames returns the number of frames needed to cover length samples once
// the signal is padded with OverlapSamples zeros in front.
func (p Params) Frames(length int) int {
	if length <= 0 {
		return 0
	}

	return (p.OverlapSamples()+length-1)/p.Hop() + 1
}

// PaddedLength is the length of the padded signal the frames span.
func (p Params) PaddedLength(length int) int {
	frames := p.Frames(length)
	if frames == 0 {
		return 0
	}

	return (frames-1)*p.Hop() + p.WindowLength
}

func (p Params) Validate() error {
	switch {
	case !p.Window.valid():
		return fmt.Errorf("%w: %w: %d", ErrInvalidParams, ErrUnknownWindow, int(p.Window))
	case p.WindowLength <= 0:
		return fmt.Errorf("%w: window_length %d must be positive", ErrInvalidParams, p.WindowLength)
	case p.TransformSize < p.WindowLength:
		return fmt.Errorf("%w: transform_size %d is smaller than window_length %d",
			ErrInvalidParams, p.TransformSize, p.WindowLength)
	case p.OverlapRatio < 0 || p.OverlapRatio >= 1 || math.IsNaN(p.OverlapRatio):
		return fmt.Errorf("%w: overlap_ratio %g must be in [0, 1)", ErrInvalidParams, p.OverlapRatio)
	case p.OverlapSamples() >= p.WindowLength:
		return fmt.Errorf("%w: overlap of %d samples leaves no hop for window_length %d",
			ErrInvalidParams, p.OverlapSamples(), p.WindowLength)
	}

	return nil
}
