// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// SliceSource streams channel-major float64 samples as an interleaved
// Source. The data is not copied.
type SliceSource struct {
	data       [][]float64
	sampleRate int
	length     int
	pos        int
}

// NewSliceSource returns a Source over data, where data[c] holds channel c.
func NewSliceSource(sampleRate int, data [][]float64) (*SliceSource, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if len(data) == 0 {
		return nil, ErrInvalidDstSize
	}

	length := len(data[0])
	for _, ch := range data[1:] {
		if len(ch) != length {
			return nil, ErrRaggedChannels
		}
	}

	return &SliceSource{
		data:       data,
		sampleRate: sampleRate,
		length:     length,
	}, nil
}

func (s *SliceSource) SampleRate() int { return s.sampleRate }
func (s *SliceSource) Channels() int   { return len(s.data) }
func (s *SliceSource) BufSize() int    { return 4096 * len(s.data) }
func (s *SliceSource) Close() error    { return nil }

// Reset rewinds the source to the first frame.
func (s *SliceSource) Reset() { s.pos = 0 }

func (s *SliceSource) ReadSamples(dst []float32) (int, error) {
	channels := len(s.data)
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if s.pos >= s.length {
		return 0, io.EOF
	}

	frames := min(len(dst)/channels, s.length-s.pos)
	for f := range frames {
		for c, ch := range s.data {
			dst[f*channels+c] = float32(ch[s.pos+f])
		}
	}
	s.pos += frames

	if s.pos >= s.length {
		return frames * channels, io.EOF
	}

	return frames * channels, nil
}
