package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sigproc/dsp/transform"
	"github.com/cwbudde/algo-sigproc/internal/testutil"
)

func TestMagnitude(t *testing.T) {
	in := []complex128{complex(3, 4), complex(0, -2), 1}

	out := Magnitude(in)
	testutil.RequireSliceNearlyEqual(t, out, []float64{5, 2, 1}, 1e-12)
}

func TestPower(t *testing.T) {
	in := []complex128{complex(3, 4), complex(0, -2), 1}

	out := Power(in)
	testutil.RequireSliceNearlyEqual(t, out, []float64{25, 4, 1}, 1e-12)
}

func TestEmptyInputsReturnNil(t *testing.T) {
	if Magnitude(nil) != nil {
		t.Error("Magnitude(nil) should be nil")
	}
	if Power(nil) != nil {
		t.Error("Power(nil) should be nil")
	}
	if Phase(nil) != nil {
		t.Error("Phase(nil) should be nil")
	}
	if UnwrapPhase(nil) != nil {
		t.Error("UnwrapPhase(nil) should be nil")
	}
}

func TestPhase(t *testing.T) {
	in := []complex128{1, complex(0, 1), -1}

	out := Phase(in)
	testutil.RequireSliceNearlyEqual(t, out, []float64{0, math.Pi / 2, math.Pi}, 1e-12)
}

func TestUnwrapPhase(t *testing.T) {
	wrapped := []float64{0, 3, -3, 3}

	out := UnwrapPhase(wrapped)

	// Jumps larger than pi are folded back by 2*pi.
	expected := []float64{0, 3, -3 + 2*math.Pi, 3}
	testutil.RequireSliceNearlyEqual(t, out, expected, 1e-12)
}

func TestImpulseSpectrumIsFlat(t *testing.T) {
	x := testutil.Impulse(16, 0)

	bins, err := transform.FFT(x)
	if err != nil {
		t.Fatalf("FFT: %v", err)
	}

	mag := Magnitude(bins)
	testutil.RequireSliceNearlyEqual(t, mag, testutil.Ones(16), 1e-12)
}
