// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audsig/audio"
)

func writeTemp(t *testing.T, sampleRate, bitDepth int, samples [][]float64) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.wav")
	if err := WriteFile(path, sampleRate, bitDepth, samples); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	return path
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	samples := [][]float64{
		{0, 0.5, -0.5, 0.25, -1},
		{0.125, -0.125, 0.75, -0.75, 0},
	}

	for _, bitDepth := range []int{16, 24, 32} {
		path := writeTemp(t, 22050, bitDepth, samples)

		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}

		src, err := Decoder{}.Decode(f)
		if err != nil {
			_ = f.Close()
			t.Fatalf("Decode() error = %v", err)
		}

		if src.SampleRate() != 22050 || src.Channels() != 2 {
			t.Errorf("%d-bit: format = %d Hz, %d ch", bitDepth, src.SampleRate(), src.Channels())
		}

		pcm, ok := src.(audio.PCMReader)
		if !ok {
			t.Fatalf("%d-bit: source does not implement audio.PCMReader", bitDepth)
		}
		if pcm.BitDepth() != bitDepth {
			t.Errorf("BitDepth() = %d, want %d", pcm.BitDepth(), bitDepth)
		}

		got, err := audio.ReadAll(src)
		_ = f.Close()
		if err != nil {
			t.Fatalf("ReadAll() error = %v", err)
		}

		for c := range samples {
			if len(got[c]) != len(samples[c]) {
				t.Fatalf("%d-bit channel %d: %d samples, want %d", bitDepth, c, len(got[c]), len(samples[c]))
			}
			for i, want := range samples[c] {
				if math.Abs(got[c][i]-want) > 1e-4 {
					t.Errorf("%d-bit [%d][%d] = %v, want %v", bitDepth, c, i, got[c][i], want)
				}
			}
		}
	}
}

func TestDecode_RawIntegers(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, 8000, 16, [][]float64{{0.5, -1, 0}})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	// a plain io.Reader is buffered into memory
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got, err := audio.ReadAllPCM(src.(audio.PCMReader), 1)
	if err != nil {
		t.Fatalf("ReadAllPCM() error = %v", err)
	}

	want := []int{16384, -32768, 0}
	for i := range want {
		if got[0][i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, got[0][i], want[i])
		}
	}
}

func TestDecode_NotWav(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("this is not a riff file at all, only some text")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestEncode_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name     string
		bitDepth int
		samples  [][]float64
		want     error
	}{
		{"8-bit", 8, [][]float64{{0}}, ErrUnsupportedBitDepth},
		{"no channels", 16, nil, ErrNoChannels},
		{"ragged", 16, [][]float64{{0, 1}, {0}}, ErrRaggedChannels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := WriteFile(filepath.Join(dir, tt.name+".wav"), 8000, tt.bitDepth, tt.samples)
			if !errors.Is(err, tt.want) {
				t.Errorf("WriteFile() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEncode_Clamps(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, 8000, 16, [][]float64{{2, -2}})
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got, err := audio.ReadAllPCM(src.(audio.PCMReader), 1)
	if err != nil {
		t.Fatalf("ReadAllPCM() error = %v", err)
	}
	if got[0][0] != math.MaxInt16 || got[0][1] != math.MinInt16 {
		t.Errorf("clamped samples = %v", got[0])
	}
}

// mockPCM feeds fixed integers through newSource.
type mockPCM struct {
	data []int
	err  error
}

func (m *mockPCM) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := copy(buf.Data, m.data)
	m.data = m.data[n:]
	return n, nil
}

func TestSource_EightBitIsUnsigned(t *testing.T) {
	t.Parallel()

	src := newSource(&mockPCM{data: []int{0, 128, 255}}, 8000, 1, 8)

	got, err := audio.ReadAllPCM(src, 1)
	if err != nil {
		t.Fatalf("ReadAllPCM() error = %v", err)
	}

	want := []int{-128, 0, 127}
	for i := range want {
		if got[0][i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, got[0][i], want[i])
		}
	}
}

func TestSource_PropagatesError(t *testing.T) {
	t.Parallel()

	failure := errors.New("disk on fire")
	src := newSource(&mockPCM{err: failure}, 8000, 1, 16)

	if _, err := audio.ReadAll(src); !errors.Is(err, failure) {
		t.Errorf("ReadAll() error = %v, want %v", err, failure)
	}
}
