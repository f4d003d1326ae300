// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audsig/utils"
)

// chunkFrames is how many frames are converted per encoder write.
const chunkFrames = 4096

// Encode writes channel-major float samples as an integer PCM WAV.
// Samples are scaled by utils.FullScale(bitDepth) and clamped; callers that
// need headroom should normalize first. bitDepth must be 16, 24 or 32.
func Encode(ws io.WriteSeeker, sampleRate, bitDepth int, samples [][]float64) error {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	channels := len(samples)
	if channels == 0 {
		return ErrNoChannels
	}

	frames := len(samples[0])
	for _, ch := range samples[1:] {
		if len(ch) != frames {
			return ErrRaggedChannels
		}
	}

	enc := gowav.NewEncoder(ws, sampleRate, bitDepth, channels, formatPCM)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, min(frames, chunkFrames)*channels),
		SourceBitDepth: bitDepth,
	}

	for start := 0; start < frames; start += chunkFrames {
		end := min(start+chunkFrames, frames)
		buf.Data = buf.Data[:(end-start)*channels]

		for f := start; f < end; f++ {
			for c, ch := range samples {
				buf.Data[(f-start)*channels+c] = utils.FloatToInt(ch[f], bitDepth)
			}
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteFile encodes samples into a new WAV file at path.
func WriteFile(path string, sampleRate, bitDepth int, samples [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := Encode(f, sampleRate, bitDepth, samples); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
