package conv

import "errors"

// Errors returned by convolution functions.
var (
	ErrEmptyInput       = errors.New("conv: empty input")
	ErrEmptyKernel      = errors.New("conv: empty kernel")
	ErrInvalidBlockSize = errors.New("conv: invalid block size")
)

// Direct performs full linear convolution of x and h using the naive
// gather formulation y[i] = sum_j h[j]*x[i-j], with an explicit bounds
// check on every term. The result has length len(x) + len(h) - 1.
//
// Operands are normalized so the shorter sequence acts as the kernel;
// the result is identical either way.
func Direct(x, h []float64) ([]float64, error) {
	x, h, err := normalize(x, h)
	if err != nil {
		return nil, err
	}

	n := len(x)
	m := len(h)
	out := make([]float64, n+m-1)

	for i := range out {
		var acc float64
		for j := 0; j < m; j++ {
			if i-j >= 0 && i-j < n {
				acc += h[j] * x[i-j]
			}
		}
		out[i] = acc
	}

	return out, nil
}

// Optimized performs full linear convolution with the same result as
// [Direct], restructured into three index regions so the inner loop never
// needs a bounds check:
//
//	ramp-up      i in [0, M-1):     overlap grows from the left edge
//	steady-state i in [M-1, N):     kernel fully inside the signal
//	ramp-down    i in [N, N+M-1):   overlap shrinks at the right edge
//
// where N = len(x), M = len(h) after operand normalization.
func Optimized(x, h []float64) ([]float64, error) {
	x, h, err := normalize(x, h)
	if err != nil {
		return nil, err
	}

	n := len(x)
	m := len(h)
	out := make([]float64, n+m-1)

	// Ramp-up: only the first i+1 kernel taps overlap the signal.
	for i := 0; i < m-1; i++ {
		var acc float64
		for j := 0; j <= i; j++ {
			acc += h[j] * x[i-j]
		}
		out[i] = acc
	}

	// Steady-state: full overlap, the hot loop.
	for i := m - 1; i < n; i++ {
		var acc float64
		for j := 0; j < m; j++ {
			acc += h[j] * x[i-j]
		}
		out[i] = acc
	}

	// Ramp-down: the leading taps have slid past the signal end.
	for i := n; i < n+m-1; i++ {
		var acc float64
		for j := i - n + 1; j < m; j++ {
			acc += h[j] * x[i-j]
		}
		out[i] = acc
	}

	return out, nil
}

// Same performs linear convolution truncated to the length of the longer
// operand. The output is the central window of the full convolution,
// offset by len(h)/2 after normalization, so the filtered signal stays
// centered on the input. The leading and trailing half-kernel of the full
// result are discarded.
func Same(x, h []float64) ([]float64, error) {
	x, h, err := normalize(x, h)
	if err != nil {
		return nil, err
	}

	n := len(x)
	m := len(h)
	offset := m / 2
	out := make([]float64, n)

	for k := range out {
		i := k + offset

		jLo := 0
		if i-n+1 > 0 {
			jLo = i - n + 1
		}
		jHi := m
		if i+1 < m {
			jHi = i + 1
		}

		var acc float64
		for j := jLo; j < jHi; j++ {
			acc += h[j] * x[i-j]
		}
		out[k] = acc
	}

	return out, nil
}

// Convolve performs full linear convolution with automatic algorithm
// selection: the three-region time-domain path for short kernels, FFT
// overlap-add for longer ones.
func Convolve(x, h []float64) ([]float64, error) {
	x, h, err := normalize(x, h)
	if err != nil {
		return nil, err
	}

	// Crossover determined empirically; see BenchmarkConvolution.
	const directThreshold = 64
	if len(h) <= directThreshold {
		return Optimized(x, h)
	}

	return FFTConvolve(x, h)
}

// normalize validates both operands and orders them so the shorter one is
// second, exploiting commutativity.
func normalize(x, h []float64) ([]float64, []float64, error) {
	if len(x) == 0 {
		return nil, nil, ErrEmptyInput
	}
	if len(h) == 0 {
		return nil, nil, ErrEmptyKernel
	}
	if len(h) > len(x) {
		x, h = h, x
	}
	return x, h, nil
}
