// SPDX-License-Identifier: EPL-2.0

package audsig

import (
	"errors"
	"fmt"
	"os"

	"github.com/ik5/audsig/audio"
	"github.com/ik5/audsig/formats"
	"github.com/ik5/audsig/signal"
)

// ErrNothingToMix is returned by Mix without signals.
var ErrNothingToMix = errors.New("no signals to mix")

// Open loads the audio file at path with the built-in decoders.
func Open(path string, opts ...signal.Option) (*signal.Signal, error) {
	return signal.Load(path, append([]signal.Option{signal.WithRegistry(formats.Default())}, opts...)...)
}

// OpenMono loads path through a resample -> mono pipeline and returns a
// single channel signal at targetRate.
func OpenMono(path string, targetRate int, opts ...signal.Option) (*signal.Signal, error) {
	if targetRate <= 0 {
		return nil, fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, targetRate)
	}

	dec, err := formats.Default().Lookup(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var pipeline audio.Source
	if src.SampleRate() == targetRate {
		pipeline = audio.NewMonoMixer(src)
	} else {
		pipeline = audio.NewMonoMixer(audio.NewResampler(src, targetRate))
	}

	sig, err := signal.FromSource(pipeline, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sig, nil
}

// Mix sums signals with Add, aligning them at their start. The result has
// the sample rate and params of the first signal.
func Mix(signals ...*signal.Signal) (*signal.Signal, error) {
	if len(signals) == 0 {
		return nil, ErrNothingToMix
	}

	mix := signals[0].Clone()
	for i, sig := range signals[1:] {
		next, err := mix.Add(sig)
		if err != nil {
			return nil, fmt.Errorf("signal %d: %w", i+1, err)
		}
		mix = next
	}

	return mix, nil
}
