// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audsig/audio"
)

// frameParser is the subset of *flac.Stream the source needs.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

// frameReader flattens decoded FLAC frames into interleaved integers.
type frameReader struct {
	stream   frameParser
	channels int

	// samples of the current frame, one slice per channel
	cur [][]int32
	pos int
	eof bool
}

func (f *frameReader) next() error {
	fr, err := f.stream.ParseNext()
	if err != nil {
		return err
	}

	if len(fr.Subframes) != f.channels {
		return ErrChannelCountChanged
	}

	f.cur = f.cur[:0]
	for _, sub := range fr.Subframes {
		f.cur = append(f.cur, sub.Samples)
	}
	f.pos = 0

	return nil
}

func (f *frameReader) remaining() int {
	if len(f.cur) == 0 {
		return 0
	}
	return len(f.cur[0]) - f.pos
}

func (f *frameReader) read(dst []int) (int, error) {
	frames := len(dst) / f.channels
	written := 0

	for written < frames {
		if f.remaining() == 0 {
			if f.eof {
				break
			}

			err := f.next()
			if errors.Is(err, io.EOF) {
				f.eof = true
				break
			}
			if err != nil {
				return written * f.channels, fmt.Errorf("%w", err)
			}
			continue
		}

		take := min(frames-written, f.remaining())
		for i := range take {
			for ch := range f.channels {
				dst[(written+i)*f.channels+ch] = int(f.cur[ch][f.pos+i])
			}
		}
		f.pos += take
		written += take
	}

	n := written * f.channels
	if n == 0 && f.eof {
		return 0, io.EOF
	}

	return n, nil
}

type Decoder struct{}

// Decode parses the FLAC stream header and returns a fixed-point source
// that decodes frames lazily.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	channels := int(info.NChannels)
	bitDepth := int(info.BitsPerSample)

	if channels <= 0 {
		_ = stream.Close()
		return nil, ErrNoChannels
	}

	if bitDepth < 4 || bitDepth > 32 {
		_ = stream.Close()
		return nil, ErrUnsupportedBitDepth
	}

	fr := &frameReader{stream: stream, channels: channels}
	src := audio.NewFixedPoint(int(info.SampleRate), channels, bitDepth, fr.read)

	return src.OnClose(stream.Close), nil
}
