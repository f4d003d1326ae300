// SPDX-License-Identifier: EPL-2.0

package stft_test

import (
	"fmt"
	"math"

	"github.com/ik5/audsig/stft"
)

func Example() {
	samples := [][]float64{make([]float64, 10)}
	for i := range samples[0] {
		samples[0][i] = math.Sin(float64(i))
	}

	p := stft.Params{Window: stft.Hann, WindowLength: 4, TransformSize: 4, OverlapRatio: 0.5}
	t, err := stft.New(p, 4)
	if err != nil {
		panic(err)
	}

	spec, err := t.Forward(samples)
	if err != nil {
		panic(err)
	}
	fmt.Printf("bins=%d frames=%d\n", spec.Bins(), spec.Frames())

	restored, err := t.Inverse(spec)
	if err != nil {
		panic(err)
	}
	fmt.Printf("samples=%d\n", len(restored[0]))

	// Output:
	// bins=3 frames=6
	// samples=10
}

func ExampleParseParams() {
	p, err := stft.ParseParams([]byte("window_type: hann\nwindow_length: 512\noverlap_ratio: 0.75\n"), stft.DefaultParams(16000))
	if err != nil {
		panic(err)
	}

	fmt.Println(p.Window, p.WindowLength, p.TransformSize, p.Hop())
	// Output: hann 512 960 128
}
