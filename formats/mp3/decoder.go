// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audsig/audio"
)

const (
	// go-mp3 always produces 16-bit little-endian stereo
	channels = 2
	bitDepth = 16
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec), nil
}

func newSource(dec mp3Reader) *audio.FixedPoint {
	buf := make([]byte, 8192)

	read := func(dst []int) (int, error) {
		need := len(dst) * 2
		if cap(buf) < need {
			buf = make([]byte, need)
		}

		n, err := io.ReadFull(dec, buf[:need])
		samples := n / 2
		for i := range samples {
			dst[i] = int(int16(binary.LittleEndian.Uint16(buf[2*i:])))
		}

		switch {
		case err == nil:
			return samples, nil
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			return samples, io.EOF
		default:
			return samples, fmt.Errorf("%w", err)
		}
	}

	return audio.NewFixedPoint(dec.SampleRate(), channels, bitDepth, read)
}
