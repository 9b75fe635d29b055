package dominion

import "testing"

func TestSigmoidZeroExact(t *testing.T) {
	k := NewKernels()
	if got := k.Sigmoid(0); got != 0.5 {
		t.Errorf("Sigmoid(0) = %v, want exactly 0.5", got)
	}
}

func TestSigmoidMonotone(t *testing.T) {
	k := NewKernels()
	prev := k.Sigmoid(sigmoidMin)
	for x := sigmoidMin; x <= sigmoidMax; x += 0.1 {
		cur := k.Sigmoid(x)
		if cur < prev {
			t.Fatalf("Sigmoid not monotone at x=%v: prev=%v cur=%v", x, prev, cur)
		}
		prev = cur
	}
}

func TestSigmoidClampsOutOfRange(t *testing.T) {
	k := NewKernels()
	if got := k.Sigmoid(-100); got != k.Sigmoid(sigmoidMin) {
		t.Errorf("Sigmoid(-100) = %v, want clamp to endpoint %v", got, k.Sigmoid(sigmoidMin))
	}
	if got := k.Sigmoid(100); got != k.Sigmoid(sigmoidMax) {
		t.Errorf("Sigmoid(100) = %v, want clamp to endpoint %v", got, k.Sigmoid(sigmoidMax))
	}
}

func TestDistanceKernelZeroExact(t *testing.T) {
	k := NewKernels()
	if got := k.DistanceKernel(0); got != 1.0 {
		t.Errorf("K(0) = %v, want 1.0", got)
	}
}

func TestDistanceKernelMonotoneDecreasing(t *testing.T) {
	k := NewKernels()
	prev := k.DistanceKernel(0)
	for d := 1; d <= distanceMaxD; d++ {
		cur := k.DistanceKernel(d)
		if cur > prev {
			t.Fatalf("K not monotone decreasing at d=%d: prev=%v cur=%v", d, prev, cur)
		}
		prev = cur
	}
}

func TestDiscountOneStep(t *testing.T) {
	k := NewKernels()
	if got := k.Discount(1); got != 0.95 {
		t.Errorf("d^1 = %v, want 0.95", got)
	}
}

func TestDiscountClampsBelowOne(t *testing.T) {
	k := NewKernels()
	if got := k.Discount(0); got != k.Discount(1) {
		t.Errorf("Discount(0) should clamp to Discount(1)")
	}
	if got := k.Discount(-5); got != k.Discount(1) {
		t.Errorf("Discount(-5) should clamp to Discount(1)")
	}
}

func TestLogRatioOneIsZero(t *testing.T) {
	k := NewKernels()
	got := k.LogRatio(1.0)
	if got < -1e-9 || got > 1e-9 {
		t.Errorf("ln(1) via LUT = %v, want ~0", got)
	}
}

func TestLogRatioClampsEndpoints(t *testing.T) {
	k := NewKernels()
	if got := k.LogRatio(0.0); got != k.LogRatio(logRatioMin) {
		t.Errorf("LogRatio(0) should clamp to domain min")
	}
	if got := k.LogRatio(1000); got != k.LogRatio(logRatioMax) {
		t.Errorf("LogRatio(1000) should clamp to domain max")
	}
}

func TestStandardKernelsSingleton(t *testing.T) {
	a := StandardKernels()
	b := StandardKernels()
	if a != b {
		t.Error("StandardKernels should return the same instance")
	}
}

func TestSafeDivGuardsZero(t *testing.T) {
	got := safeDiv(1.0, 0.0)
	want := 1.0 / epsilon
	if got != want {
		t.Errorf("safeDiv(1,0) = %v, want %v", got, want)
	}
}
