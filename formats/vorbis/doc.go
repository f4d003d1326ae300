// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding via github.com/jfreymuth/oggvorbis.
//
//	file, _ := os.Open("audio.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//
// Vorbis is a floating-point codec, so the source only implements
// audio.Source; there is no fixed-point representation to expose.
package vorbis
