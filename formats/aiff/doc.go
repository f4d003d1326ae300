// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files, Apple's
// uncompressed PCM container. 8, 16, 24 and 32-bit samples are supported
// with any channel count and sample rate.
//
//	file, _ := os.Open("audio.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//
// The source implements audio.PCMReader, so callers can read the signed
// integers directly and convert them with utils.IntToFloat.
//
// Inputs that are not an io.ReadSeeker are buffered into memory first, since
// go-audio has to seek between chunks.
package aiff
