// Package sequence provides primitive operations on finite real and complex
// sequences: interlaced and even/odd decomposition, real-to-complex
// conversion, zero-padding, and an in-place component swap.
//
// Every function returns a freshly allocated result and leaves its input
// untouched, with the single documented exception of [SwapInPlace].
package sequence

import (
	"errors"
	"fmt"
)

// Errors returned by sequence operations.
var (
	ErrEmptyInput  = errors.New("sequence: empty input")
	ErrOddLength   = errors.New("sequence: length must be even")
	ErrShortTarget = errors.New("sequence: target length shorter than input")
)

// Interlaced splits x into its even-indexed and odd-indexed samples,
// preserving order. The input length must be even; both outputs have
// length len(x)/2.
func Interlaced(x []float64) (even, odd []float64, err error) {
	if len(x) == 0 {
		return nil, nil, ErrEmptyInput
	}
	if len(x)%2 != 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrOddLength, len(x))
	}

	half := len(x) / 2
	even = make([]float64, half)
	odd = make([]float64, half)

	for i := 0; i < half; i++ {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}

	return even, odd, nil
}

// InterlacedComplex splits x into its even-indexed and odd-indexed samples,
// preserving order. The input length must be even.
func InterlacedComplex(x []complex128) (even, odd []complex128, err error) {
	if len(x) == 0 {
		return nil, nil, ErrEmptyInput
	}
	if len(x)%2 != 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrOddLength, len(x))
	}

	half := len(x) / 2
	even = make([]complex128, half)
	odd = make([]complex128, half)

	for i := 0; i < half; i++ {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}

	return even, odd, nil
}

// EvenDecompose returns the even-symmetric part of x under circular
// indexing: even[0] = x[0] and even[i] = (x[i] + x[N-i]) / 2 for i >= 1.
// The input length must be even.
//
// Index 0 pairs with itself; for i >= 1 the mirror index N-i stays in
// bounds. This is the circular-difference formula, not a symmetric
// extension of the sequence.
func EvenDecompose(x []float64) ([]float64, error) {
	if err := validateEvenLength(x); err != nil {
		return nil, err
	}

	n := len(x)
	out := make([]float64, n)
	out[0] = x[0]

	for i := 1; i < n; i++ {
		out[i] = (x[i] + x[n-i]) / 2
	}

	return out, nil
}

// OddDecompose returns the odd-symmetric part of x under circular indexing:
// odd[0] = 0 and odd[i] = (x[i] - x[N-i]) / 2 for i >= 1. The input length
// must be even.
//
// For any valid x, EvenDecompose(x)[i] + OddDecompose(x)[i] == x[i].
func OddDecompose(x []float64) ([]float64, error) {
	if err := validateEvenLength(x); err != nil {
		return nil, err
	}

	n := len(x)
	out := make([]float64, n)
	out[0] = 0

	for i := 1; i < n; i++ {
		out[i] = (x[i] - x[n-i]) / 2
	}

	return out, nil
}

// ToComplex lifts a real sequence to a complex one with zero imaginary
// parts.
func ToComplex(x []float64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}
	return out
}

// ZeroPad returns a copy of x extended with trailing zeros to length n.
// It fails if n is shorter than the input. The result is always a fresh
// slice, even when n == len(x).
func ZeroPad(x []float64, n int) ([]float64, error) {
	if n < len(x) {
		return nil, fmt.Errorf("%w: %d < %d", ErrShortTarget, n, len(x))
	}

	out := make([]float64, n)
	copy(out, x)
	return out, nil
}

// ZeroPadComplex returns a copy of x extended with trailing zeros to
// length n. It fails if n is shorter than the input.
func ZeroPadComplex(x []complex128, n int) ([]complex128, error) {
	if n < len(x) {
		return nil, fmt.Errorf("%w: %d < %d", ErrShortTarget, n, len(x))
	}

	out := make([]complex128, n)
	copy(out, x)
	return out, nil
}

// SwapInPlace exchanges the real and imaginary component of every element
// of x, in place. This is the only mutating operation in the package;
// callers sharing x across goroutines must synchronize externally.
func SwapInPlace(x []complex128) {
	for i, v := range x {
		x[i] = complex(imag(v), real(v))
	}
}

func validateEvenLength(x []float64) error {
	if len(x) == 0 {
		return ErrEmptyInput
	}
	if len(x)%2 != 0 {
		return fmt.Errorf("%w: %d", ErrOddLength, len(x))
	}
	return nil
}
