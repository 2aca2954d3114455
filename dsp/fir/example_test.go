package fir_test

import (
	"fmt"

	"github.com/cwbudde/algo-sigproc/dsp/conv"
	"github.com/cwbudde/algo-sigproc/dsp/fir"
	"github.com/cwbudde/algo-sigproc/dsp/signal"
)

func ExampleWindowedSinc() {
	kernel, err := fir.WindowedSinc(11, 0.25)
	if err != nil {
		panic(err)
	}

	sum := 0.0
	for _, tap := range kernel {
		sum += tap
	}

	fmt.Printf("%d taps, DC gain %.3f\n", len(kernel), sum)
	// Output: 11 taps, DC gain 1.000
}

func ExampleSpectralInversion() {
	// Design a lowpass, flip it into a highpass, and apply it.
	lowpass, err := fir.WindowedSinc(51, 0.1)
	if err != nil {
		panic(err)
	}
	highpass, err := fir.SpectralInversion(lowpass)
	if err != nil {
		panic(err)
	}

	x, err := signal.Sine(200, 0.02, 1)
	if err != nil {
		panic(err)
	}
	filtered, err := conv.Same(x, highpass)
	if err != nil {
		panic(err)
	}

	fmt.Println(len(filtered))
	// Output: 200
}
