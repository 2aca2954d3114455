package fir

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-sigproc/dsp/window"
)

// Errors returned by kernel design functions.
var (
	ErrEmptyKernel = errors.New("fir: empty kernel")
	ErrEvenLength  = errors.New("fir: kernel length must be odd")
	ErrCutoffRange = errors.New("fir: cutoff must be in (0, 0.5]")
	ErrInvalidTaps = errors.New("fir: kernel length must be > 0")
	ErrZeroDCGain  = errors.New("fir: kernel tap sum is zero")
)

// Sinc returns the ideal lowpass impulse response of odd length m with
// normalized cutoff fc in (0, 0.5]. The center tap equals 2*fc; tap i
// equals sin(2*pi*fc*(i-center)) / (pi*(i-center)) elsewhere.
//
// The raw sinc kernel has heavy spectral ripple; use WindowedSinc for a
// usable filter.
func Sinc(m int, fc float64) ([]float64, error) {
	if err := validateDesign(m, fc); err != nil {
		return nil, err
	}

	center := (m - 1) / 2
	out := make([]float64, m)

	for i := range out {
		if i == center {
			out[i] = 2 * fc
			continue
		}

		d := float64(i - center)
		out[i] = math.Sin(2*math.Pi*fc*d) / (math.Pi * d)
	}

	return out, nil
}

// WindowedSinc returns a practical lowpass kernel of odd length m with
// normalized cutoff fc: the ideal sinc tapered by a Blackman window, then
// rescaled so the taps sum to 1 (unity gain at DC).
func WindowedSinc(m int, fc float64) ([]float64, error) {
	kernel, err := Sinc(m, fc)
	if err != nil {
		return nil, err
	}

	taper, err := window.Blackman(m)
	if err != nil {
		return nil, err
	}

	out, err := window.ApplyCoefficients(kernel, taper)
	if err != nil {
		return nil, err
	}

	sum := 0.0
	for _, v := range out {
		sum += v
	}
	if sum == 0 {
		return nil, ErrZeroDCGain
	}

	scale := 1 / sum
	for i := range out {
		out[i] *= scale
	}

	return out, nil
}

// SpectralInversion returns a kernel whose frequency response is the
// original flipped top-to-bottom: passbands become stopbands at the same
// cutoff. Every tap is negated and 1 is added to the center tap. The
// kernel length must be odd; applying the operation twice restores the
// original kernel.
func SpectralInversion(kernel []float64) ([]float64, error) {
	if err := validateKernel(kernel); err != nil {
		return nil, err
	}

	out := make([]float64, len(kernel))
	for i, v := range kernel {
		out[i] = -v
	}
	out[len(kernel)/2]++

	return out, nil
}

// SpectralReversal returns a kernel whose frequency response is the
// original mirrored about a quarter of the sample rate: lowpass(fc)
// becomes highpass(0.5-fc). Every odd-indexed tap is negated. The kernel
// length must be odd; applying the operation twice restores the original
// kernel.
func SpectralReversal(kernel []float64) ([]float64, error) {
	if err := validateKernel(kernel); err != nil {
		return nil, err
	}

	out := make([]float64, len(kernel))
	for i, v := range kernel {
		if i%2 == 1 {
			out[i] = -v
		} else {
			out[i] = v
		}
	}

	return out, nil
}

func validateDesign(m int, fc float64) error {
	if m <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTaps, m)
	}
	if m%2 == 0 {
		return fmt.Errorf("%w: %d", ErrEvenLength, m)
	}
	if fc <= 0 || fc > 0.5 {
		return fmt.Errorf("%w: %g", ErrCutoffRange, fc)
	}
	return nil
}

func validateKernel(kernel []float64) error {
	if len(kernel) == 0 {
		return ErrEmptyKernel
	}
	if len(kernel)%2 == 0 {
		return fmt.Errorf("%w: %d", ErrEvenLength, len(kernel))
	}
	return nil
}
