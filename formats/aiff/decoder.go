// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audsig/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type Decoder struct{}

// Decode returns a fixed-point source over the sound data of an AIFF
// stream. 8, 16, 24 and 32-bit samples are supported.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels == 0 || format.SampleRate == 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	return newSource(dec, format, int(dec.BitDepth)), nil
}

func newSource(dec aiffReader, format *goaudio.Format, bitDepth int) *audio.FixedPoint {
	buf := &goaudio.IntBuffer{
		Format:         format,
		SourceBitDepth: bitDepth,
	}

	read := func(dst []int) (int, error) {
		buf.Data = dst

		n, err := dec.PCMBuffer(buf)
		if n == 0 {
			if err != nil && err != io.EOF {
				return 0, fmt.Errorf("%w", err)
			}
			return 0, io.EOF
		}

		// A short read without an error marks the end of the sound chunk.
		if n < len(dst) && err == nil {
			return n, io.EOF
		}
		if err != nil && err != io.EOF {
			return n, fmt.Errorf("%w", err)
		}

		return n, err
	}

	return audio.NewFixedPoint(format.SampleRate, format.NumChannels, bitDepth, read)
}
