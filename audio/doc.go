// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives shared by the format
// decoders and the signal package.
//
//   - Source streams interleaved float32 samples in [-1, 1]
//   - PCMReader exposes the fixed-point samples of integer formats
//   - FixedPoint adapts an integer reader into both
//   - SliceSource streams in-memory channel-major samples
//   - Resampler changes the sample rate with cubic interpolation
//   - MonoMixer averages all channels into one
//   - Registry maps format names and file extensions to decoders
//
// # Sources
//
// A Source reports io.EOF once it is exhausted. ReadAll drains a source into
// one float64 slice per channel:
//
//	src, _ := audio.NewSliceSource(44100, [][]float64{left, right})
//	res := audio.NewResampler(src, 16000)
//	channels, err := audio.ReadAll(res)
//
// # Fixed-point sources
//
// Integer formats (WAV, AIFF, MP3, FLAC) implement PCMReader next to
// Source. Callers that convert to float themselves read integers through
// ReadPCM and divide by utils.FullScale(BitDepth()).
//
// # Format Registry
//
// The registry allows dynamic decoder registration and lookup by file
// extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.Lookup("take1.wav")
package audio
