// SPDX-License-Identifier: EPL-2.0

package stft

import (
	"math/cmplx"
	"testing"

	"github.com/ik5/audsig/internal/audiotest"
)

var kernels = map[string]KernelFactory{
	"gonum": NewGonumKernel,
	"dsp":   NewDSPKernel,
}

func TestKernel_RoundTrip(t *testing.T) {
	t.Parallel()

	for name, factory := range kernels {
		for _, n := range []int{8, 63, 64, 100} {
			k := factory(n)
			if k.Len() != n {
				t.Fatalf("%s: Len() = %d, want %d", name, k.Len(), n)
			}

			in := audiotest.Noise(n, 1, uint64(n))
			coeff := k.Forward(nil, in)
			if len(coeff) != n/2+1 {
				t.Fatalf("%s n=%d: %d coefficients, want %d", name, n, len(coeff), n/2+1)
			}

			out := k.Inverse(nil, coeff)
			if d := audiotest.MaxAbsDiff(in, out); d > 1e-9 {
				t.Errorf("%s n=%d: round trip error %g", name, n, d)
			}
		}
	}
}

func TestKernel_Agreement(t *testing.T) {
	t.Parallel()

	for _, n := range []int{16, 45, 256} {
		frame := audiotest.Noise(n, 0.8, 7)

		a := NewGonumKernel(n).Forward(nil, frame)
		b := NewDSPKernel(n).Forward(nil, frame)

		for i := range a {
			if cmplx.Abs(a[i]-b[i]) > 1e-9 {
				t.Errorf("n=%d bin %d: gonum %v, dsp %v", n, i, a[i], b[i])
				break
			}
		}
	}
}

func TestKernel_ReusesDst(t *testing.T) {
	t.Parallel()

	for name, factory := range kernels {
		k := factory(8)
		dst := make([]complex128, 5)
		got := k.Forward(dst, []float64{1, 0, 0, 0, 0, 0, 0, 0})

		if &got[0] != &dst[0] {
			t.Errorf("%s: Forward() did not write into dst", name)
		}
		for i, v := range got {
			if cmplx.Abs(v-1) > 1e-12 {
				t.Errorf("%s: impulse bin %d = %v, want 1", name, i, v)
			}
		}
	}
}
