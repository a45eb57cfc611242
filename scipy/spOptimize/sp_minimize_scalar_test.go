package spOptimize

import (
	"math"
	"testing"
)

func TestQuadratic(t *testing.T) {
	f := func(x float64) float64 { return (x - 2.0) * (x - 2.0) }
	res := MinimizeScalarBounded(f, 0, 10)

	t.Log("x:", res.X, "fun:", res.Fun, "nfev:", res.NFev)
	if !res.Success {
		t.Fatal("expected convergence:", res.Message)
	}
	if math.Abs(res.X-2.0) > 1e-4 {
		t.Fatal("minimum mismatch:", res.X)
	}
}

func TestSinusoid(t *testing.T) {
	res := MinimizeScalarBounded(math.Sin, 0, 2*math.Pi)
	if !res.Success {
		t.Fatal("expected convergence:", res.Message)
	}
	if math.Abs(res.X-3*math.Pi/2) > 1e-4 {
		t.Fatal("minimum mismatch:", res.X)
	}
}

// 最小值在界外时应收敛到边界附近
func TestBoundaryMinimum(t *testing.T) {
	f := func(x float64) float64 { return x * x }
	res := MinimizeScalarBounded(f, 1, 4)
	if !res.Success {
		t.Fatal("expected convergence:", res.Message)
	}
	if math.Abs(res.X-1.0) > 1e-3 {
		t.Fatal("expected x near lower bound, got", res.X)
	}
}

// 求值预算耗尽必须以 Success=false 上报而不是panic
func TestMaxFunExhausted(t *testing.T) {
	f := func(x float64) float64 { return (x - 2.0) * (x - 2.0) }
	res := MinimizeScalarBoundedOpt(f, 0, 10, 1e-12, 3)
	if res.Success {
		t.Fatal("expected failure flag when eval budget exhausted")
	}
	if res.NFev > 3 {
		t.Fatal("budget overrun:", res.NFev)
	}
}

func TestNaNObjective(t *testing.T) {
	f := func(x float64) float64 { return math.NaN() }
	res := MinimizeScalarBounded(f, 0, 10)
	if res.Success {
		t.Fatal("NaN objective must not report success")
	}
}

func TestInvertedBounds(t *testing.T) {
	res := MinimizeScalarBounded(math.Sin, 5, 1)
	if res.Success || !math.IsNaN(res.X) {
		t.Fatal("inverted bounds must fail")
	}
}

func BenchmarkQuadratic(b *testing.B) {
	f := func(x float64) float64 { return (x - 2.0) * (x - 2.0) }
	for i := 0; i < b.N; i++ {
		_ = MinimizeScalarBounded(f, 0, 10)
	}
}
