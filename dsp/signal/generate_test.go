package signal

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-sigproc/internal/testutil"
)

func TestImpulse(t *testing.T) {
	out, err := Impulse(5, 2, 3.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{0, 0, 3.5, 0, 0}, 0)
}

func TestStep(t *testing.T) {
	out, err := Step(5, 2, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{0, 0, -1, -1, -1}, 0)
}

func TestRectangle(t *testing.T) {
	out, err := Rectangle(6, 1, 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{0, 2, 2, 2, 0, 0}, 0)
}

func TestSine(t *testing.T) {
	// One full cycle over 8 samples.
	out, err := Sine(8, 0.125, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out[0] != 0 {
		t.Errorf("out[0] = %v, expected 0", out[0])
	}
	if math.Abs(out[2]-1) > 1e-12 {
		t.Errorf("out[2] = %v, expected 1", out[2])
	}
	if math.Abs(out[6]+1) > 1e-12 {
		t.Errorf("out[6] = %v, expected -1", out[6])
	}
}

func TestRamp(t *testing.T) {
	out, err := Ramp(5, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{0, 0.5, 1, 1.5, 2}, 1e-12)

	single, err := Ramp(1, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if single[0] != 0 {
		t.Errorf("length-1 ramp = %v, expected [0]", single)
	}
}

func TestDelayBounds(t *testing.T) {
	if _, err := Impulse(5, 5, 1); !errors.Is(err, ErrDelayBounds) {
		t.Errorf("Impulse: expected ErrDelayBounds, got %v", err)
	}
	if _, err := Impulse(5, -1, 1); !errors.Is(err, ErrDelayBounds) {
		t.Errorf("Impulse: expected ErrDelayBounds, got %v", err)
	}
	if _, err := Step(5, 7, 1); !errors.Is(err, ErrDelayBounds) {
		t.Errorf("Step: expected ErrDelayBounds, got %v", err)
	}
	if _, err := Rectangle(5, 3, 3, 1); !errors.Is(err, ErrDelayBounds) {
		t.Errorf("Rectangle: expected ErrDelayBounds, got %v", err)
	}
}

func TestInvalidLengths(t *testing.T) {
	if _, err := Impulse(0, 0, 1); err == nil {
		t.Error("Impulse: expected error for length 0")
	}
	if _, err := Sine(-4, 0.1, 1); err == nil {
		t.Error("Sine: expected error for negative length")
	}
	if _, err := Rectangle(5, 0, 0, 1); err == nil {
		t.Error("Rectangle: expected error for width 0")
	}
}
