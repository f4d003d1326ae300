// SPDX-License-Identifier: EPL-2.0

package stft

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// normFloor is the smallest summed squared window weight the inverse divides
// by. Samples below it are set to zero.
const normFloor = 1e-10

// Forward computes the frames of a single channel. The channel is padded
// with p.OverlapSamples() zeros in front and zeros at the back so that
// every sample is covered by full frames.
func Forward(channel []float64, p Params, k Kernel) ([][]complex128, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	win, err := p.Window.Coefficients(p.WindowLength)
	if err != nil {
		return nil, err
	}

	frames := make([][]complex128, p.Frames(len(channel)))
	for f := range frames {
		frames[f] = make([]complex128, p.Bins())
	}

	if err := forwardInto(frames, channel, p, win, k); err != nil {
		return nil, err
	}

	return frames, nil
}

func forwardInto(dst [][]complex128, channel []float64, p Params, win []float64, k Kernel) error {
	if k.Len() != p.TransformSize {
		return fmt.Errorf("%w: kernel size %d, transform_size %d",
			ErrParamsMismatch, k.Len(), p.TransformSize)
	}

	pad := p.OverlapSamples()
	hop := p.Hop()
	buf := make([]float64, p.TransformSize)

	for f := range dst {
		start := f*hop - pad
		for i := range buf {
			buf[i] = 0
		}

		for i, w := range win {
			j := start + i
			if j >= 0 && j < len(channel) {
				buf[i] = channel[j] * w
			}
		}

		k.Forward(dst[f], buf)
	}

	return nil
}

// Inverse rebuilds a single channel from its frames with weighted overlap
// add. length trims the output to the original signal length; 0 keeps
// every sample the frames cover after the front padding is removed.
//
// Samples where every covering window is zero can not be recovered and
// come back as 0. With OverlapRatio 0 these are the first and last sample
// of each frame for windows that vanish at their edges, such as Hann,
// Blackman, Triangular and Sine. Use some overlap or a Rectangular or
// Hamming window when exact reconstruction matters.
func Inverse(frames [][]complex128, length int, p Params, k Kernel) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	win, err := p.Window.Coefficients(p.WindowLength)
	if err != nil {
		return nil, err
	}

	return inverse(frames, length, p, win, k)
}

func inverse(frames [][]complex128, length int, p Params, win []float64, k Kernel) ([]float64, error) {
	if k.Len() != p.TransformSize {
		return nil, fmt.Errorf("%w: kernel size %d, transform_size %d",
			ErrParamsMismatch, k.Len(), p.TransformSize)
	}

	if len(frames) == 0 {
		return []float64{}, nil
	}

	pad := p.OverlapSamples()
	hop := p.Hop()
	padded := (len(frames)-1)*hop + p.WindowLength

	out := make([]float64, padded)
	norm := make([]float64, padded)
	buf := make([]float64, p.TransformSize)

	for f, coeff := range frames {
		if len(coeff) != p.Bins() {
			return nil, fmt.Errorf("%w: frame %d has %d bins, want %d",
				ErrParamsMismatch, f, len(coeff), p.Bins())
		}

		k.Inverse(buf, coeff)
		start := f * hop
		for i, w := range win {
			out[start+i] += buf[i] * w
			norm[start+i] += w * w
		}
	}

	for i := range out {
		if norm[i] > normFloor {
			out[i] /= norm[i]
		} else {
			out[i] = 0
		}
	}

	out = out[pad:]
	if length > 0 && length < len(out) {
		out = out[:length]
	}

	return out, nil
}

type options struct {
	kernel      KernelFactory
	parallelism int
}

type Option func(*options)

// WithKernel selects the FFT implementation. The default is NewGonumKernel.
func WithKernel(f KernelFactory) Option {
	return func(o *options) {
		o.kernel = f
	}
}

// WithParallelism limits how many channels are transformed at once. Values
// below one mean GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// Transform runs Forward and Inverse over every channel of a signal.
type Transform struct {
	params     Params
	sampleRate int
	window     []float64
	opts       options
}

func New(p Params, sampleRate int, opts ...Option) (*Transform, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidParams, sampleRate)
	}

	win, err := p.Window.Coefficients(p.WindowLength)
	if err != nil {
		return nil, err
	}

	o := options{kernel: NewGonumKernel}
	for _, opt := range opts {
		opt(&o)
	}
	if o.parallelism < 1 {
		o.parallelism = runtime.GOMAXPROCS(0)
	}

	return &Transform{
		params:     p,
		sampleRate: sampleRate,
		window:     win,
		opts:       o,
	}, nil
}

func (t *Transform) Params() Params { return t.params }

// Forward analyzes channel major samples. All channels must have the same
// length.
func (t *Transform) Forward(samples [][]float64) (*Spectrogram, error) {
	length := 0
	if len(samples) > 0 {
		length = len(samples[0])
	}
	for ch := range samples {
		if len(samples[ch]) != length {
			return nil, fmt.Errorf("%w: channel %d has %d samples, want %d",
				ErrParamsMismatch, ch, len(samples[ch]), length)
		}
	}

	p := t.params
	spec := NewSpectrogram(p.Bins(), p.Frames(length), len(samples))
	spec.SampleRate = t.sampleRate
	spec.TransformSize = p.TransformSize
	spec.SignalLength = length
	spec.Freqs = FrequencyAxis(p.TransformSize, t.sampleRate)
	spec.Times = TimeAxis(spec.Frames(), p, t.sampleRate)

	var g errgroup.Group
	g.SetLimit(t.opts.parallelism)

	for ch := range samples {
		g.Go(func() error {
			return forwardInto(spec.Channel(ch), samples[ch], p, t.window, t.opts.kernel(p.TransformSize))
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return spec, nil
}

// Inverse synthesizes one channel of samples per spectrogram channel.
// See the package level Inverse for the samples zero overlap loses.
func (t *Transform) Inverse(spec *Spectrogram) ([][]float64, error) {
	p := t.params
	if spec.Bins() != p.Bins() {
		return nil, fmt.Errorf("%w: %d bins, transform_size %d needs %d",
			ErrParamsMismatch, spec.Bins(), p.TransformSize, p.Bins())
	}

	out := make([][]float64, spec.Channels())

	var g errgroup.Group
	g.SetLimit(t.opts.parallelism)

	for ch := range out {
		g.Go(func() error {
			samples, err := inverse(spec.Channel(ch), spec.SignalLength, p, t.window, t.opts.kernel(p.TransformSize))
			if err != nil {
				return fmt.Errorf("channel %d: %w", ch, err)
			}

			out[ch] = samples
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// FrequencyAxis returns the frequency in Hz of each of the n/2+1 bins.
func FrequencyAxis(n, sampleRate int) []float64 {
	freqs := make([]float64, n/2+1)
	for k := range freqs {
		freqs[k] = float64(k) * float64(sampleRate) / float64(n)
	}

	return freqs
}

// TimeAxis returns the centre of each frame in seconds, measured from the
// first sample of the unpadded signal.
func TimeAxis(frames int, p Params, sampleRate int) []float64 {
	times := make([]float64, frames)
	centre := float64(p.WindowLength)/2 - float64(p.OverlapSamples())
	for f := range times {
		times[f] = (float64(f*p.Hop()) + centre) / float64(sampleRate)
	}

	return times
}
