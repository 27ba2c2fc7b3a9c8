package stats

import (
	"math"
	"testing"

	"github.com/subsurfaceio/petrolog/internal/wellog"
)

func TestSummarizeBasic(t *testing.T) {
	samples := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	s := Summarize(samples)

	if s.Mean != 5 {
		t.Errorf("expected mean 5, got %v", s.Mean)
	}
	// Sample (n-1) standard deviation of this set is sqrt(32/7).
	want := math.Sqrt(32.0 / 7.0)
	if math.Abs(s.StdDev-want) > 1e-9 {
		t.Errorf("expected stddev %.6f, got %.6f", want, s.StdDev)
	}
	if s.Min != 2 || s.Max != 9 {
		t.Errorf("expected min 2 max 9, got %v %v", s.Min, s.Max)
	}
	if s.ValidCount != 8 || s.TotalCount != 8 {
		t.Errorf("expected counts 8/8, got %d/%d", s.ValidCount, s.TotalCount)
	}
	if s.LowConfidence {
		t.Error("should not be low confidence")
	}
	if s.StdDev < 0 {
		t.Error("stddev must be non-negative")
	}
	if !(s.CILow <= s.Mean && s.Mean <= s.CIHigh) {
		t.Errorf("confidence interval [%v, %v] does not bracket mean %v", s.CILow, s.CIHigh, s.Mean)
	}
}

func TestSummarizeSkipsMissing(t *testing.T) {
	samples := []float64{1, wellog.Sentinel, 2, math.NaN(), 3, math.Inf(1), 4, 5}

	s := Summarize(samples)

	if s.TotalCount != 8 {
		t.Errorf("expected total 8, got %d", s.TotalCount)
	}
	if s.ValidCount != 5 {
		t.Errorf("expected 5 valid, got %d", s.ValidCount)
	}
	if s.Mean != 3 {
		t.Errorf("expected mean 3 over valid subset, got %v", s.Mean)
	}
}

func TestSummarizeLowConfidence(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
	}{
		{"empty", nil},
		{"one valid", []float64{1.5}},
		{"two valid", []float64{1.5, 2.5}},
		{"two valid among sentinels", []float64{wellog.Sentinel, 1.5, wellog.Sentinel, 2.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.samples)
			if !s.LowConfidence {
				t.Error("expected low-confidence summary")
			}
			if s.Mean != 0 || s.StdDev != 0 || s.CILow != 0 || s.CIHigh != 0 {
				t.Errorf("low-confidence summary should be zeroed: %+v", s)
			}
		})
	}
}

func TestConfidenceIntervalTLevels(t *testing.T) {
	// Small sample uses t=2.262, large sample uses 1.96.
	small := make([]float64, 10)
	large := make([]float64, 40)
	for i := range small {
		small[i] = float64(i)
	}
	for i := range large {
		large[i] = float64(i)
	}

	checkMargin := func(samples []float64, tVal float64) {
		t.Helper()
		s := Summarize(samples)
		wantMargin := tVal * s.StdDev / math.Sqrt(float64(s.ValidCount))
		gotMargin := s.CIHigh - s.Mean
		if math.Abs(gotMargin-wantMargin) > 1e-9 {
			t.Errorf("expected margin %.6f (t=%.3f), got %.6f", wantMargin, tVal, gotMargin)
		}
		if math.Abs((s.Mean-s.CILow)-gotMargin) > 1e-9 {
			t.Error("confidence interval is not symmetric about the mean")
		}
	}

	checkMargin(small, 2.262)
	checkMargin(large, 1.96)
}

func TestCombinedUncertainty(t *testing.T) {
	// Root sum of squares of standard error and method uncertainty.
	got := CombinedUncertainty(0.03, MethodUncertaintyNeutron)
	want := math.Sqrt(0.03*0.03 + 0.03*0.03)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %.6f, got %.6f", want, got)
	}

	if got := CombinedUncertainty(0, MethodUncertaintyDensity); got != MethodUncertaintyDensity {
		t.Errorf("zero standard error should return the method constant, got %v", got)
	}
}

func TestStandardError(t *testing.T) {
	s := Summarize([]float64{1, 2, 3, 4})
	want := s.StdDev / 2
	if math.Abs(s.StandardError()-want) > 1e-12 {
		t.Errorf("expected %.6f, got %.6f", want, s.StandardError())
	}

	low := Summarize([]float64{1})
	if low.StandardError() != 0 {
		t.Errorf("low-confidence summary should have zero standard error, got %v", low.StandardError())
	}
}
