// SPDX-License-Identifier: EPL-2.0

// Package audsig analyzes and resynthesizes multi-channel audio through
// its short-time Fourier transform.
//
// The work is split across subpackages:
//   - signal holds a waveform and its spectrogram and implements STFT,
//     ISTFT, mixing arithmetic, peak normalization and channel handling.
//   - stft implements framing, windows (gonum dsp/window) and the forward
//     and inverse transforms over pluggable FFT kernels (gonum dsp/fourier,
//     mjibson/go-dsp).
//   - audio defines the streaming Source interface, the resampler and the
//     mono mixer used at the I/O boundary.
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis and
//     formats/flac decode files; formats.Default registers them all.
//
// # Quick Start
//
//	sig, err := audsig.Open("mixture.wav")
//	if err != nil {
//		return err
//	}
//
//	spec, err := sig.STFT()
//	// scale spec coefficients with a mask ...
//
//	if err := sig.ISTFT(); err != nil {
//		return err
//	}
//	err = sig.Write("estimate.wav", 0)
//
// # Pipelines
//
// Streaming stages from the audio package can feed a signal directly:
//
//	sig, err := audsig.OpenMono("speech.mp3", 16000)
//
// decodes, resamples with cubic interpolation and mixes down to one channel
// before the samples are collected.
package audsig
