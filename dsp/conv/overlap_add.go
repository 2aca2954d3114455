package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// OverlapAdd convolves signals with a fixed kernel using FFT-based
// overlap-add block processing. It is worthwhile when the same kernel is
// applied repeatedly or when the kernel is long enough that the O(N*M)
// time-domain paths dominate.
type OverlapAdd struct {
	kernelFFT []complex128
	kernelLen int
	blockSize int
	fftSize   int

	plan *algofft.Plan[complex128]

	block  []complex128
	result []complex128
}

// NewOverlapAdd creates an overlap-add convolver for the given kernel.
// blockSize sets how the input is segmented; zero selects a size
// automatically from the kernel length. Negative block sizes are invalid.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if blockSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockSize)
	}

	if blockSize == 0 {
		blockSize = nextPowerOfTwo(len(kernel))
		if blockSize < 256 {
			blockSize = 256
		}
	}

	// Linear convolution of a block needs blockSize + kernelLen - 1 samples.
	fftSize := nextPowerOfTwo(blockSize + len(kernel) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: FFT plan: %w", err)
	}

	oa := &OverlapAdd{
		kernelFFT: make([]complex128, fftSize),
		kernelLen: len(kernel),
		blockSize: blockSize,
		fftSize:   fftSize,
		plan:      plan,
		block:     make([]complex128, fftSize),
		result:    make([]complex128, fftSize),
	}

	padded := make([]complex128, fftSize)
	for i, v := range kernel {
		padded[i] = complex(v, 0)
	}
	if err := plan.Forward(oa.kernelFFT, padded); err != nil {
		return nil, fmt.Errorf("conv: kernel FFT: %w", err)
	}

	return oa, nil
}

// KernelLen returns the kernel length.
func (oa *OverlapAdd) KernelLen() int { return oa.kernelLen }

// BlockSize returns the input segmentation size.
func (oa *OverlapAdd) BlockSize() int { return oa.blockSize }

// FFTSize returns the internal transform size.
func (oa *OverlapAdd) FFTSize() int { return oa.fftSize }

// Process convolves input with the kernel and returns the full linear
// convolution of length len(input) + KernelLen() - 1.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	outLen := len(input) + oa.kernelLen - 1
	out := make([]float64, outLen)

	for start := 0; start < len(input); start += oa.blockSize {
		end := start + oa.blockSize
		if end > len(input) {
			end = len(input)
		}

		for i := range oa.block {
			oa.block[i] = 0
		}
		for i, v := range input[start:end] {
			oa.block[i] = complex(v, 0)
		}

		if err := oa.plan.Forward(oa.block, oa.block); err != nil {
			return nil, fmt.Errorf("conv: forward FFT: %w", err)
		}
		for i := range oa.result {
			oa.result[i] = oa.block[i] * oa.kernelFFT[i]
		}
		if err := oa.plan.Inverse(oa.result, oa.result); err != nil {
			return nil, fmt.Errorf("conv: inverse FFT: %w", err)
		}

		// Each block contributes blockLen + kernelLen - 1 samples; the tail
		// overlaps the next block's head and is summed there.
		contrib := (end - start) + oa.kernelLen - 1
		for i := 0; i < contrib && start+i < outLen; i++ {
			out[start+i] += real(oa.result[i])
		}
	}

	return out, nil
}

// FFTConvolve performs one-shot overlap-add convolution of x and h.
func FFTConvolve(x, h []float64) ([]float64, error) {
	x, h, err := normalize(x, h)
	if err != nil {
		return nil, err
	}

	oa, err := NewOverlapAdd(h, 0)
	if err != nil {
		return nil, err
	}
	return oa.Process(x)
}

// nextPowerOfTwo returns the smallest power of two >= n.
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
