// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audsig/audio"
	"github.com/ik5/audsig/utils"
)

func (s *Signal) loadFile(reg *audio.Registry, path string, offset, duration float64) error {
	dec, err := reg.Lookup(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	if err := s.decode(dec, f, offset, duration); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

func (s *Signal) loadReader(reg *audio.Registry, r io.Reader, format string, offset, duration float64) error {
	dec, ok := reg.Get(format)
	if !ok {
		return fmt.Errorf("%w: %q", audio.ErrUnsupportedFormat, format)
	}

	return s.decode(dec, r, offset, duration)
}

func (s *Signal) decode(dec audio.Decoder, r io.Reader, offset, duration float64) error {
	src, err := dec.Decode(r)
	if err != nil {
		return fmt.Errorf("failed to decode audio: %w", err)
	}

	return s.loadSource(src, offset, duration)
}

// loadSource reads src to the end and closes it.
func (s *Signal) loadSource(src audio.Source, offset, duration float64) error {
	defer src.Close()

	data, err := readSource(src)
	if err != nil {
		return fmt.Errorf("failed to read audio: %w", err)
	}

	s.sampleRate = src.SampleRate()
	if s.sampleRate <= 0 {
		return fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, s.sampleRate)
	}

	start, end := span(len(data[0]), s.sampleRate, offset, duration)
	for ch := range data {
		data[ch] = data[ch][start:end:end]
	}
	s.setSamples(data)

	s.log.WithFields(logrus.Fields{
		"function":    "loadSource",
		"path":        s.path,
		"sample_rate": s.sampleRate,
		"channels":    s.Channels(),
		"samples":     s.Len(),
	}).Debug("Audio decoded")

	return nil
}

// readSource drains src. Fixed-point sources are read as integers and
// divided by the full scale of their bit depth.
func readSource(src audio.Source) ([][]float64, error) {
	pcm, ok := src.(audio.PCMReader)
	if !ok {
		return audio.ReadAll(src)
	}

	ints, err := audio.ReadAllPCM(pcm, src.Channels())
	if err != nil {
		return nil, err
	}

	bitDepth := pcm.BitDepth()
	data := make([][]float64, len(ints))
	for ch, row := range ints {
		data[ch] = make([]float64, len(row))
		for i, v := range row {
			data[ch][i] = utils.IntToFloat(v, bitDepth)
		}
	}

	return data, nil
}

// span converts offset and duration in seconds into sample bounds clamped
// to length. A duration of zero or less runs to the end.
func span(length, sampleRate int, offset, duration float64) (int, int) {
	start := min(max(int(offset*float64(sampleRate)), 0), length)
	if duration <= 0 {
		return start, length
	}

	end := min(start+int(duration*float64(sampleRate)), length)
	return start, end
}
