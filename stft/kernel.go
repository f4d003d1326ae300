// SPDX-License-Identifier: EPL-2.0

package stft

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Kernel is a real-input discrete Fourier transform of a fixed size n.
// Implementations need not be safe for concurrent use.
type Kernel interface {
	// Len returns the transform size n.
	Len() int
	// Forward writes the n/2+1 non-negative frequency coefficients of frame,
	// which must hold n values, into dst. dst is allocated when nil.
	Forward(dst []complex128, frame []float64) []complex128
	// Inverse writes the n real samples whose spectrum is coeff into dst,
	// scaled so Inverse(Forward(x)) == x. dst is allocated when nil.
	Inverse(dst []float64, coeff []complex128) []float64
}

// KernelFactory creates a Kernel of size n.
type KernelFactory func(n int) Kernel

// GonumKernel computes transforms with gonum's dsp/fourier package.
type GonumKernel struct {
	fft *fourier.FFT
	n   int
}

func NewGonumKernel(n int) Kernel {
	return &GonumKernel{fft: fourier.NewFFT(n), n: n}
}

func (g *GonumKernel) Len() int { return g.n }

func (g *GonumKernel) Forward(dst []complex128, frame []float64) []complex128 {
	return g.fft.Coefficients(dst, frame)
}

func (g *GonumKernel) Inverse(dst []float64, coeff []complex128) []float64 {
	// fourier.FFT.Sequence is unnormalized
	dst = g.fft.Sequence(dst, coeff)
	scale := 1 / float64(g.n)
	for i := range dst {
		dst[i] *= scale
	}

	return dst
}

// DSPKernel computes transforms with github.com/mjibson/go-dsp/fft. It is
// slower than GonumKernel and serves as an independent cross check.
type DSPKernel struct {
	full []complex128
	n    int
}

func NewDSPKernel(n int) Kernel {
	return &DSPKernel{full: make([]complex128, n), n: n}
}

func (d *DSPKernel) Len() int { return d.n }

func (d *DSPKernel) Forward(dst []complex128, frame []float64) []complex128 {
	bins := d.n/2 + 1
	if dst == nil {
		dst = make([]complex128, bins)
	}

	copy(dst[:bins], fft.FFTReal(frame)[:bins])
	return dst
}

func (d *DSPKernel) Inverse(dst []float64, coeff []complex128) []float64 {
	if dst == nil {
		dst = make([]float64, d.n)
	}

	// rebuild the Hermitian spectrum; fft.IFFT already divides by n
	copy(d.full, coeff)
	for k := 1; d.n-k > d.n/2; k++ {
		d.full[d.n-k] = cmplx.Conj(coeff[k])
	}

	for i, v := range fft.IFFT(d.full) {
		dst[i] = real(v)
	}

	return dst
}
