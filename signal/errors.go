// SPDX-License-Identifier: EPL-2.0

package signal

import "errors"

var (
	ErrAmbiguousSource    = errors.New("signal source is ambiguous: use a path, a reader or samples, not several")
	ErrNoAudio            = errors.New("signal has no audio data")
	ErrNoSpectrogram      = errors.New("signal has no spectrogram")
	ErrChannelMismatch    = errors.New("signals have a different number of channels")
	ErrChannelOutOfRange  = errors.New("channel index out of range")
	ErrSampleRateMismatch = errors.New("signal sample rate does not match")
)
