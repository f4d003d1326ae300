// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audsig/audio"
	"github.com/ik5/audsig/stft"
)

type config struct {
	path   string
	reader io.Reader
	format string
	source audio.Source

	samples    [][]float64
	hasSamples bool

	offset   float64
	duration float64

	sampleRate    int
	hasSampleRate bool
	spec       *stft.Spectrogram
	params     *stft.Params
	kernel     stft.KernelFactory
	registry   *audio.Registry
	logger     logrus.FieldLogger
}

// Option configures New.
type Option func(*config)

// WithPath loads the signal from an audio file. The decoder is picked by
// file extension from the registry.
func WithPath(path string) Option {
	return func(c *config) {
		c.path = path
	}
}

// WithReader decodes the signal from r using the decoder registered for
// format, e.g. "wav" or "flac".
func WithReader(r io.Reader, format string) Option {
	return func(c *config) {
		c.reader = r
		c.format = format
	}
}

// WithSource drains src into the signal and closes it. The signal takes
// the source's sample rate.
func WithSource(src audio.Source) Option {
	return func(c *config) {
		c.source = src
	}
}

// WithSamples uses channel major samples. They are copied.
func WithSamples(samples [][]float64) Option {
	return func(c *config) {
		c.samples = samples
		c.hasSamples = true
	}
}

// WithMono uses a single channel of samples. They are copied.
func WithMono(samples []float64) Option {
	return func(c *config) {
		c.samples = [][]float64{samples}
		c.hasSamples = true
	}
}

// WithOffset skips the given number of seconds of a decoded file.
func WithOffset(seconds float64) Option {
	return func(c *config) {
		c.offset = seconds
	}
}

// WithDuration keeps at most the given number of seconds of a decoded file.
// Zero keeps everything after the offset.
func WithDuration(seconds float64) Option {
	return func(c *config) {
		c.duration = seconds
	}
}

// WithSampleRate sets the sample rate of in-memory samples. Decoded files
// always use the rate stored in the file. Without it a signal built from
// WithSpectrogram alone takes the spectrogram's rate.
func WithSampleRate(hz int) Option {
	return func(c *config) {
		c.sampleRate = hz
		c.hasSampleRate = true
	}
}

// WithSpectrogram attaches an existing spectrogram, e.g. a masked copy of
// another signal's, so ISTFT can synthesize it.
func WithSpectrogram(spec *stft.Spectrogram) Option {
	return func(c *config) {
		c.spec = spec
	}
}

// WithParams overrides the default STFT parameters.
func WithParams(p stft.Params) Option {
	return func(c *config) {
		c.params = &p
	}
}

// WithKernel selects the FFT implementation used by STFT and ISTFT.
func WithKernel(f stft.KernelFactory) Option {
	return func(c *config) {
		c.kernel = f
	}
}

// WithRegistry sets the decoders used to load files. The default is
// formats.Default().
func WithRegistry(reg *audio.Registry) Option {
	return func(c *config) {
		c.registry = reg
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		c.logger = l
	}
}
