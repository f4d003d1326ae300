// SPDX-License-Identifier: EPL-2.0

// Package signal holds a multi-channel audio signal and converts it between
// its waveform and its short-time spectrogram.
//
//	sig, err := signal.Load("mixture.wav")
//	spec, err := sig.STFT()
//	// edit spec, e.g. apply a mask
//	err = sig.ISTFT()
//	err = sig.Write("estimate.wav", 0)
//
// Several operations change the signal in place: ISTFT replaces the samples
// with the synthesized ones, Write peak normalizes before encoding and the
// conversions (Resample, SetChannels, ToMono) replace the samples and drop
// the spectrogram. Use Clone to keep a copy.
//
// Add and Sub align signals of different lengths at their start and keep
// the tail of the longer one, rather than truncating to the shorter.
package signal
