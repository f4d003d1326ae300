// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// ReadAll drains src and returns its samples de-interleaved into one
// float64 slice per channel. It does not close src.
func ReadAll(src Source) ([][]float64, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrInvalidDstSize
	}

	size := max(src.BufSize(), 4096)
	size -= size % channels
	buf := make([]float32, size)

	out := make([][]float64, channels)
	idle := 0
	for {
		n, err := src.ReadSamples(buf)
		idle, err = progress(n, idle, err)
		for i := range n - n%channels {
			out[i%channels] = append(out[i%channels], float64(buf[i]))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return out, nil
}

// ReadAllPCM drains a fixed-point reader, returning one int slice per
// channel.
func ReadAllPCM(r PCMReader, channels int) ([][]int, error) {
	if channels <= 0 {
		return nil, ErrInvalidDstSize
	}

	buf := make([]int, 4096*channels)
	out := make([][]int, channels)
	idle := 0
	for {
		n, err := r.ReadPCM(buf)
		idle, err = progress(n, idle, err)
		for i := range n - n%channels {
			out[i%channels] = append(out[i%channels], buf[i])
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return out, nil
}

// maxIdleReads bounds how many empty reads without io.EOF are tolerated.
const maxIdleReads = 100

func progress(n, idle int, err error) (int, error) {
	if n > 0 || err != nil {
		return 0, err
	}

	idle++
	if idle >= maxIdleReads {
		return idle, io.ErrNoProgress
	}

	return idle, nil
}
