// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/audsig/utils"
)

// FixedPoint adapts a reader of interleaved signed integer samples into a
// Source that also implements PCMReader. Format decoders build on it so the
// integer to float conversion lives in one place.
type FixedPoint struct {
	read       func(dst []int) (int, error)
	closer     func() error
	sampleRate int
	channels   int
	bitDepth   int
	tmp        []int
}

// NewFixedPoint returns a FixedPoint source. read must follow the
// ReadSamples contract: it returns the number of values written and io.EOF
// once the stream is exhausted.
func NewFixedPoint(sampleRate, channels, bitDepth int, read func(dst []int) (int, error)) *FixedPoint {
	return &FixedPoint{
		read:       read,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
		tmp:        make([]int, 4096),
	}
}

// OnClose registers fn to be called by Close.
func (f *FixedPoint) OnClose(fn func() error) *FixedPoint {
	f.closer = fn
	return f
}

func (f *FixedPoint) SampleRate() int { return f.sampleRate }
func (f *FixedPoint) Channels() int   { return f.channels }
func (f *FixedPoint) BitDepth() int   { return f.bitDepth }
func (f *FixedPoint) BufSize() int    { return cap(f.tmp) }

func (f *FixedPoint) Close() error {
	if f.closer == nil {
		return nil
	}

	if err := f.closer(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (f *FixedPoint) ReadPCM(dst []int) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	return f.read(dst)
}

func (f *FixedPoint) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(f.tmp) < len(dst) {
		f.tmp = make([]int, len(dst))
	}
	f.tmp = f.tmp[:len(dst)]

	n, err := f.read(f.tmp)
	for i := range n {
		dst[i] = float32(utils.IntToFloat(f.tmp[i], f.bitDepth))
	}

	return n, err
}
