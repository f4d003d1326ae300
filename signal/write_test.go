// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/audsig/audio"
	"github.com/ik5/audsig/formats/wav"
	"github.com/ik5/audsig/internal/audiotest"
)

// quantum is the step of 16-bit PCM in unit scale.
const quantum = 1.0 / 32768

func TestSignal_PeakNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"above range", []float64{0.5, -2, 1}, []float64{0.25, -1, 0.5}},
		{"positive peak", []float64{4, 2, -1}, []float64{1, 0.5, -0.25}},
		{"within range", []float64{0.5, -1, 0.25}, []float64{0.5, -1, 0.25}},
		{"empty", []float64{}, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sig := mono(t, tt.in...)
			sig.PeakNormalize(16)

			if !slices.Equal(sig.Samples()[0], tt.want) {
				t.Errorf("PeakNormalize() = %v, want %v", sig.Samples()[0], tt.want)
			}
		})
	}

	multi, _ := FromArray([][]float64{{0.5, 1}, {-3, 1.5}}, 8000)
	multi.PeakNormalize(24)
	if math.Abs(multi.Peak()-1) > 1e-15 || math.Abs(multi.Samples()[0][1]-1.0/3) > 1e-15 {
		t.Errorf("multi-channel PeakNormalize() = %v", multi.Samples())
	}
}

func TestSignal_WriteLoad(t *testing.T) {
	t.Parallel()

	in := [][]float64{
		audiotest.Sine(8000, 8000, 440, 0.5),
		audiotest.Noise(8000, 0.25, 3),
	}
	sig, _ := FromArray(in, 8000)

	path := filepath.Join(t.TempDir(), "out.wav")
	if err := sig.Write(path, 0); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got.SampleRate() != 8000 || got.Channels() != 2 || got.Len() != 8000 {
		t.Fatalf("loaded %d Hz, %d x %d", got.SampleRate(), got.Channels(), got.Len())
	}
	if got.FileName() != "out.wav" || got.Path() != path {
		t.Errorf("FileName() = %q, Path() = %q", got.FileName(), got.Path())
	}
	for ch := range in {
		if d := audiotest.MaxAbsDiff(in[ch], got.Samples()[ch]); d > quantum {
			t.Errorf("channel %d differs by %g", ch, d)
		}
	}
}

func TestSignal_WriteNormalizesInPlace(t *testing.T) {
	t.Parallel()

	sig := mono(t, 0.5, -2, 1, 0)
	path := filepath.Join(t.TempDir(), "loud.wav")

	if err := sig.Write(path, 16000); err != nil {
		t.Fatal(err)
	}
	if sig.Peak() != 1 {
		t.Errorf("Peak() after Write() = %g, want 1", sig.Peak())
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want the override 16000", got.SampleRate())
	}
	if v := got.Samples()[0][1]; v != -1 {
		t.Errorf("negative peak = %g, want -1", v)
	}
}

func TestSignal_WriteErrors(t *testing.T) {
	t.Parallel()

	empty, _ := New()
	if err := empty.Write(filepath.Join(t.TempDir(), "x.wav"), 0); !errors.Is(err, ErrNoAudio) {
		t.Errorf("Write() error = %v, want ErrNoAudio", err)
	}

	sig := mono(t, 0.1, 0.2)
	if err := sig.Write(filepath.Join(t.TempDir(), "missing", "x.wav"), 0); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Write() error = %v, want os.ErrNotExist", err)
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "y.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := sig.WriteTo(f, 0, 12); !errors.Is(err, wav.ErrUnsupportedBitDepth) {
		t.Errorf("WriteTo() error = %v, want ErrUnsupportedBitDepth", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Load("notes.txt"); !errors.Is(err, audio.ErrUnsupportedFormat) {
		t.Errorf("Load(txt) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.wav")
	if err := os.WriteFile(bad, []byte("definitely not a wav file"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load(bad) error = nil")
	}
}

func TestLoad_OffsetDuration(t *testing.T) {
	t.Parallel()

	in := audiotest.Sine(8000, 8000, 100, 0.9)
	src := mono(t, in...)

	path := filepath.Join(t.TempDir(), "tone.wav")
	if err := src.Write(path, 0); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		opts      []Option
		wantStart int
		wantLen   int
	}{
		{"offset and duration", []Option{WithOffset(0.25), WithDuration(0.5)}, 2000, 4000},
		{"offset only", []Option{WithOffset(0.75)}, 6000, 2000},
		{"duration past end", []Option{WithOffset(0.5), WithDuration(10)}, 4000, 4000},
		{"offset past end", []Option{WithOffset(2)}, 8000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sig, err := Load(path, tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if sig.Len() != tt.wantLen {
				t.Fatalf("Len() = %d, want %d", sig.Len(), tt.wantLen)
			}
			if tt.wantLen > 0 && math.Abs(sig.Samples()[0][0]-in[tt.wantStart]) > quantum {
				t.Errorf("first sample = %g, want %g", sig.Samples()[0][0], in[tt.wantStart])
			}
		})
	}
}

func TestLoadFrom(t *testing.T) {
	t.Parallel()

	sig := mono(t, 0.5, -0.5, 0.25)
	path := filepath.Join(t.TempDir(), "a.wav")
	if err := sig.Write(path, 0); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	got, err := LoadFrom(bytes.NewReader(data), "WAV")
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if !slices.Equal(got.Samples()[0], []float64{0.5, -0.5, 0.25}) {
		t.Errorf("LoadFrom() = %v", got.Samples()[0])
	}
	if got.FileName() != "" {
		t.Errorf("FileName() = %q, want empty for streams", got.FileName())
	}
}
