// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audsig/audio"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// pcmDecoder is the part of gowav.Decoder the source needs, to allow testing.
type pcmDecoder interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type Decoder struct{}

// Decode parses the WAV header of r and returns a fixed-point source over
// its PCM data. 8, 16, 24 and 32-bit integer PCM are supported.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio needs to seek between chunks
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, ErrOnlyPCMSupported
	}

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, ErrUnsupportedWavLayout
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	return newSource(dec, int(dec.SampleRate), int(dec.NumChans), int(dec.BitDepth)), nil
}

func newSource(dec pcmDecoder, sampleRate, channels, bitDepth int) *audio.FixedPoint {
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: bitDepth,
	}

	read := func(dst []int) (int, error) {
		buf.Data = dst

		n, err := dec.PCMBuffer(buf)
		if err != nil {
			return n, fmt.Errorf("%w", err)
		}
		if n == 0 {
			return 0, io.EOF
		}

		// 8-bit WAV is unsigned
		if bitDepth == 8 {
			for i := range n {
				dst[i] -= 128
			}
		}

		return n, nil
	}

	return audio.NewFixedPoint(sampleRate, channels, bitDepth, read)
}
