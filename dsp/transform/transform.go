package transform

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-sigproc/dsp/sequence"
)

// Errors returned by transform functions.
var (
	ErrEmptyInput   = errors.New("transform: empty input")
	ErrSizeOverflow = errors.New("transform: size exceeds 2^30")
)

// maxSize caps the power-of-two search. Sizes beyond this are treated as
// pathological rather than satisfied with a multi-gigabyte allocation.
const maxSize = 1 << 30

// NextLargestPowerOfTwo returns the smallest power of two >= n, found by
// doubling from 1. It fails with ErrSizeOverflow once the search passes
// maxSize, and rejects non-positive n.
func NextLargestPowerOfTwo(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("transform: size must be > 0: %d", n)
	}

	p := 1
	for p < n {
		if p >= maxSize {
			return 0, fmt.Errorf("%w: requested %d", ErrSizeOverflow, n)
		}
		p *= 2
	}

	return p, nil
}

// DFT computes the discrete Fourier transform of a real sequence by direct
// evaluation of X[k] = sum_n x[n]*exp(-2*pi*i*k*n/N).
//
// This is the O(N^2) reference implementation; use FFT for anything beyond
// small or test-sized inputs.
func DFT(x []float64) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var sumRe, sumIm float64
		for i, v := range x {
			angle := -2 * math.Pi * float64(k) * float64(i) / float64(n)
			sumRe += v * math.Cos(angle)
			sumIm += v * math.Sin(angle)
		}
		out[k] = complex(sumRe, sumIm)
	}

	return out, nil
}

// IDFT computes the inverse discrete Fourier transform, keeping only the
// real part of each output sample. The result is only meaningful when the
// spectrum came from a real-valued signal.
func IDFT(x []complex128) ([]float64, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]float64, n)
	scale := 1 / float64(n)
	for i := 0; i < n; i++ {
		var sum float64
		for k, v := range x {
			angle := 2 * math.Pi * float64(k) * float64(i) / float64(n)
			sum += real(v)*math.Cos(angle) - imag(v)*math.Sin(angle)
		}
		out[i] = sum * scale
	}

	return out, nil
}

// FFT computes the Fourier transform of a real sequence using the recursive
// radix-2 decimation-in-time algorithm. The input is zero-padded to the next
// power of two, so len(result) = NextLargestPowerOfTwo(len(x)). The padding
// is not tracked; callers needing the original length must trim themselves.
func FFT(x []float64) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	return FFTComplex(sequence.ToComplex(x))
}

// FFTComplex is FFT for complex-valued input.
func FFTComplex(x []complex128) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	size, err := NextLargestPowerOfTwo(len(x))
	if err != nil {
		return nil, err
	}

	padded, err := sequence.ZeroPadComplex(x, size)
	if err != nil {
		return nil, err
	}

	return fftRecursive(padded), nil
}

// IFFT computes the inverse Fourier transform via the swap trick: swap the
// real and imaginary part of every sample, run the forward FFT, swap again,
// and divide by the transform length. Like FFT, the input is zero-padded to
// the next power of two and the output keeps the padded length.
func IFFT(x []complex128) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	size, err := NextLargestPowerOfTwo(len(x))
	if err != nil {
		return nil, err
	}

	// ZeroPadComplex always copies, so the swap never touches the caller's
	// buffer.
	padded, err := sequence.ZeroPadComplex(x, size)
	if err != nil {
		return nil, err
	}

	sequence.SwapInPlace(padded)
	out := fftRecursive(padded)
	sequence.SwapInPlace(out)

	scale := complex(1/float64(size), 0)
	for i := range out {
		out[i] *= scale
	}

	return out, nil
}

// fftRecursive implements the decimation-in-time recursion. The input
// length is a power of two by construction; each level allocates its own
// output, matching the reference divide-and-conquer formulation.
func fftRecursive(x []complex128) []complex128 {
	n := len(x)
	if n == 1 {
		return []complex128{x[0]}
	}

	// The length is even at every level, so the split cannot fail.
	evenHalf, oddHalf, _ := sequence.InterlacedComplex(x)

	e := fftRecursive(evenHalf)
	o := fftRecursive(oddHalf)

	out := make([]complex128, n)
	half := n / 2
	for k := 0; k < half; k++ {
		angle := -2 * math.Pi * float64(k) / float64(n)
		twiddle := complex(math.Cos(angle), math.Sin(angle))

		p := e[k]
		q := twiddle * o[k]
		out[k] = p + q
		out[k+half] = p - q
	}

	return out
}
