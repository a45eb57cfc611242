package mixrate

import (
	"math"
	"testing"
)

func constantSeries(n int, ts, v float64) ([]float64, []float64) {
	t := make([]float64, n)
	z := make([]float64, n)
	for i := range t {
		t[i] = float64(i) * ts
		z[i] = v
	}
	return t, z
}

func TestPredictInitialAndLength(t *testing.T) {
	tvec, z := constantSeries(4, 1, 50)
	out := Predict(tvec, 100, 0.5, 1, z)
	if len(out) != len(tvec) {
		t.Fatal("length mismatch:", len(out))
	}
	if out[0] != 100 {
		t.Fatal("first element must be x0:", out[0])
	}
}

func TestPredictDeterministic(t *testing.T) {
	tvec, z := constantSeries(16, 0.25, 42)
	a := Predict(tvec, 90, 1.3, 0.25, z)
	b := Predict(tvec, 90, 1.3, 0.25, z)
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("not deterministic at", i)
		}
	}
}

// 室外恒定时轨迹应单调趋向室外值
func TestPredictRelaxesToOutdoor(t *testing.T) {
	tvec, z := constantSeries(10, 1, 50)
	out := Predict(tvec, 100, 0.5, 1, z)
	for i := 1; i < len(out); i++ {
		if math.Abs(out[i]-50) >= math.Abs(out[i-1]-50) {
			t.Fatal("not relaxing toward outdoor at", i, out)
		}
	}
	// 解析解: x[n]-50 = 50*(0.5)^n
	if math.Abs(out[3]-(50+50*0.125)) > 1e-12 {
		t.Fatal("trajectory value mismatch:", out[3])
	}
}

func TestPredictZeroRate(t *testing.T) {
	tvec, z := constantSeries(8, 1, 50)
	out := Predict(tvec, 100, 0, 1, z)
	for i, v := range out {
		if v != 100 {
			t.Fatal("ach=0 must hold x0 forever, got", v, "at", i)
		}
	}
}

// ts*ach > 1 时递推振荡放大 (非物理), 行为本身仍是确定的
func TestPredictAmplifiesPastNyquist(t *testing.T) {
	tvec, z := constantSeries(4, 1, 50)
	out := Predict(tvec, 100, 1.5, 1, z)
	want := []float64{100, 25, 62.5, 43.75}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Fatal("recurrence mismatch:", out)
		}
	}
}

func BenchmarkPredict(b *testing.B) {
	tvec, z := constantSeries(1000, 0.1, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Predict(tvec, 100, 1.5, 0.1, z)
	}
}
