// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3, which always decodes to
// 16-bit stereo PCM; mono files come out with both channels equal.
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//
// The source implements audio.PCMReader with a bit depth of 16.
package mp3
