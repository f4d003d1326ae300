// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC decoding via github.com/mewkiz/flac.
//
// Frames are decoded lazily as samples are read. The returned source
// implements audio.PCMReader so the integer samples can be read directly:
//
//	src, err := flac.Decoder{}.Decode(file)
//	if pcm, ok := src.(audio.PCMReader); ok {
//		n, err := pcm.ReadPCM(buf)
//	}
package flac
