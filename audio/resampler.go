// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audsig/utils"
)

// Resampler streams from src to a target sample rate using cubic
// interpolation. It works on interleaved samples and preserves the channel
// count. When downsampling a one-pole low-pass filter is applied to the
// source frames first.
//
// Output frame k sits at source position k*step, where step is
// srcRate/dstRate; frames are produced while that position does not pass
// the last source frame.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64
	channels int

	// hist[j] holds source frame base-1+j.
	hist   [4][]float32
	base   int
	loaded int
	primed bool
	eof    bool
	k      int

	in    []float32
	lp    []float32
	alpha float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     float64(src.SampleRate()) / float64(dstRate),
		channels: channels,
		in:       make([]float32, channels),
		lp:       make([]float32, channels),
	}

	if r.step > 1 {
		r.alpha = 0.5
	}

	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// fetch reads one source frame into r.in. It reports false once the source
// is exhausted.
func (r *Resampler) fetch() (bool, error) {
	if r.eof {
		return false, nil
	}

	idle := 0
	for {
		n, err := r.src.ReadSamples(r.in)
		if n == r.channels {
			if errors.Is(err, io.EOF) {
				r.eof = true
			} else if err != nil {
				return false, fmt.Errorf("%w", err)
			}
			r.filter()
			return true, nil
		}

		if errors.Is(err, io.EOF) {
			r.eof = true
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("%w", err)
		}

		idle++
		if idle >= maxIdleReads {
			return false, io.ErrNoProgress
		}
	}
}

func (r *Resampler) filter() {
	if r.alpha == 0 {
		return
	}

	if r.loaded == 0 {
		copy(r.lp, r.in)
	}

	for c := range r.channels {
		r.in[c] = r.alpha*r.in[c] + (1-r.alpha)*r.lp[c]
		r.lp[c] = r.in[c]
	}
}

// fill loads the next source frame into hist[j], repeating hist[j-1] when
// the source is exhausted.
func (r *Resampler) fill(j int) error {
	ok, err := r.fetch()
	if err != nil {
		return err
	}

	if ok {
		copy(r.hist[j], r.in)
		r.loaded++
		return nil
	}

	copy(r.hist[j], r.hist[j-1])
	return nil
}

func (r *Resampler) prime() error {
	ok, err := r.fetch()
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}

	copy(r.hist[1], r.in)
	copy(r.hist[0], r.in)
	r.loaded = 1

	for j := 2; j < 4; j++ {
		if err := r.fill(j); err != nil {
			return err
		}
	}

	r.primed = true
	return nil
}

func (r *Resampler) shift() error {
	first := r.hist[0]
	copy(r.hist[:], r.hist[1:])
	r.hist[3] = first
	r.base++

	return r.fill(3)
}

// ReadSamples produces dst samples at the target rate.
// dst length should be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		pos := float64(r.k) * r.step
		idx := int(pos)

		for r.base < idx {
			if r.base+1 >= r.loaded {
				return written * r.channels, io.EOF
			}
			if err := r.shift(); err != nil {
				return written * r.channels, err
			}
		}

		x := float32(pos - float64(idx))
		out := dst[written*r.channels:]
		for c := range r.channels {
			out[c] = utils.CubicInterpolate(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], x)
		}

		written++
		r.k++
	}

	return written * r.channels, nil
}
