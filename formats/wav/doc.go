// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding on top of
// github.com/go-audio/wav.
//
// # Decoding WAV Files
//
// The Decoder accepts integer PCM at 8, 16, 24 or 32 bits, any channel count
// and any sample rate:
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//
// The returned source implements both audio.Source (float32 in [-1, 1)) and
// audio.PCMReader (the raw signed integers and their bit depth).
//
// # Writing WAV Files
//
// Encode converts channel-major float samples to integers at the requested
// bit depth; WriteFile does the same into a new file:
//
//	err := wav.WriteFile("out.wav", 44100, 16, [][]float64{left, right})
//
// Samples outside [-1, 1) are clamped. Peak-normalize beforehand to avoid
// clipping.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyPCMSupported: the data is compressed or floating point
//   - ErrUnsupportedBitDepth: the bit depth cannot be read or written
//   - ErrUnsupportedWavLayout: the header or chunk layout is unusable
package wav
