// SPDX-License-Identifier: EPL-2.0

// Package stft implements the short-time Fourier transform and its inverse
// for multi-channel signals.
//
// A channel of length L is padded with O = Params.OverlapSamples() zeros in
// front and enough zeros at the back to fill the last frame. Frames of
// WindowLength samples start every Hop() samples, are windowed, zero padded
// to TransformSize and transformed by a Kernel into TransformSize/2+1 bins.
//
// The inverse applies the same window again, overlap-adds the frames and
// divides by the summed squared window, so that with any of the provided
// windows and an overlap above zero
//
//	Inverse(Forward(x)) == x
//
// up to floating point error. With zero overlap only windows that are
// non-zero at their edges (Rectangular, Hamming) reconstruct every sample.
//
//	t, _ := stft.New(stft.DefaultParams(44100), 44100)
//	spec, _ := t.Forward(samples)
//	restored, _ := t.Inverse(spec)
package stft
