// SPDX-License-Identifier: EPL-2.0

package signal_test

import (
	"fmt"

	"github.com/ik5/audsig/signal"
	"github.com/ik5/audsig/stft"
)

func ExampleSignal_Add() {
	a, _ := signal.FromMono([]float64{1, 1, 1, 1, 1}, 8000)
	b, _ := signal.FromMono([]float64{2, 2, 2}, 8000)

	sum, err := a.Add(b)
	if err != nil {
		panic(err)
	}
	diff, _ := a.Sub(b)

	fmt.Println(sum.Samples()[0])
	fmt.Println(diff.Samples()[0])
	// Output:
	// [3 3 3 1 1]
	// [-1 -1 -1 1 1]
}

func ExampleSignal_STFT() {
	samples := make([]float64, 16)
	for i := range samples {
		samples[i] = float64(i%4) / 4
	}

	p := stft.Params{Window: stft.Hann, WindowLength: 8, TransformSize: 8, OverlapRatio: 0.5}
	sig, _ := signal.FromMono(samples, 8000, signal.WithParams(p))

	spec, err := sig.STFT()
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d channel, %d frames, %d bins\n", spec.Channels(), spec.Frames(), spec.Bins())

	if err := sig.ISTFT(); err != nil {
		panic(err)
	}
	fmt.Println(sig.Len())
	// Output:
	// 1 channel, 5 frames, 5 bins
	// 16
}

func ExampleSignal_PeakNormalize() {
	sig, _ := signal.FromMono([]float64{0.5, -2, 1}, 8000)
	sig.PeakNormalize(16)

	fmt.Println(sig.Samples()[0])
	// Output: [0.25 -1 0.5]
}
