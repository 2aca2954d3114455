// Package signal generates deterministic test and excitation sequences.
//
// Frequencies are normalized to the sample rate (cycles per sample), so
// the library stays free of any sample-rate configuration. All generators
// return fresh slices.
package signal

import (
	"errors"
	"fmt"
	"math"
)

// ErrDelayBounds is returned when a delay or width parameter places a
// feature outside the target sequence.
var ErrDelayBounds = errors.New("signal: delay outside sequence")

// Impulse generates a sequence of the given length that is zero everywhere
// except for a single sample of the given magnitude at index delay.
func Impulse(length, delay int, magnitude float64) ([]float64, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}
	if delay < 0 || delay >= length {
		return nil, fmt.Errorf("%w: delay %d, length %d", ErrDelayBounds, delay, length)
	}

	out := make([]float64, length)
	out[delay] = magnitude
	return out, nil
}

// Step generates a sequence that is zero before index delay and holds the
// given magnitude from delay onward.
func Step(length, delay int, magnitude float64) ([]float64, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}
	if delay < 0 || delay >= length {
		return nil, fmt.Errorf("%w: delay %d, length %d", ErrDelayBounds, delay, length)
	}

	out := make([]float64, length)
	for i := delay; i < length; i++ {
		out[i] = magnitude
	}
	return out, nil
}

// Rectangle generates a pulse of the given width and magnitude starting at
// index delay; the rest of the sequence is zero. The pulse must lie
// entirely inside the sequence.
func Rectangle(length, delay, width int, magnitude float64) ([]float64, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}
	if width <= 0 {
		return nil, fmt.Errorf("signal: width must be > 0: %d", width)
	}
	if delay < 0 || delay+width > length {
		return nil, fmt.Errorf("%w: delay %d, width %d, length %d", ErrDelayBounds, delay, width, length)
	}

	out := make([]float64, length)
	for i := delay; i < delay+width; i++ {
		out[i] = magnitude
	}
	return out, nil
}

// Sine generates a sine wave with normalized frequency freq in cycles per
// sample: x[i] = magnitude * sin(2*pi*freq*i).
func Sine(length int, freq, magnitude float64) ([]float64, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}

	out := make([]float64, length)
	step := 2 * math.Pi * freq
	for i := range out {
		out[i] = magnitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Ramp generates a linear ramp from 0 at the first sample to magnitude at
// the last. A length-1 ramp is the single sample 0.
func Ramp(length int, magnitude float64) ([]float64, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}

	out := make([]float64, length)
	if length == 1 {
		return out, nil
	}

	step := magnitude / float64(length-1)
	for i := range out {
		out[i] = step * float64(i)
	}
	return out, nil
}

func validateLength(length int) error {
	if length <= 0 {
		return fmt.Errorf("signal: length must be > 0: %d", length)
	}
	return nil
}
