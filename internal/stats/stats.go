// Package stats computes descriptive statistics, confidence intervals,
// and the combined uncertainty budget over the valid subset of a curve.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/subsurfaceio/petrolog/internal/wellog"
)

// Summary describes the valid (non-sentinel, finite) subset of a curve.
type Summary struct {
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"std_dev"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	ValidCount int     `json:"valid_count"`
	TotalCount int     `json:"total_count"`
	CILow      float64 `json:"ci_low"`
	CIHigh     float64 `json:"ci_high"`

	// LowConfidence marks a summary built from fewer than MinValidSamples
	// values; such summaries are zeroed rather than failing the call.
	LowConfidence bool `json:"low_confidence"`
}

// MinValidSamples is the valid-sample floor below which a summary is
// returned zeroed and flagged instead of computed.
const MinValidSamples = 3

// Per-property method uncertainty constants for the combined budget.
const (
	MethodUncertaintyDensity   = 0.02
	MethodUncertaintyNeutron   = 0.03
	MethodUncertaintyEffective = 0.025
)

// Summarize computes descriptive statistics over the valid subset.
// Standard deviation uses the sample (n-1) convention throughout; the
// t-based confidence interval assumes the sample estimator.
func Summarize(samples []float64) Summary {
	s := Summary{TotalCount: len(samples)}

	valid := make([]float64, 0, len(samples))
	for _, v := range samples {
		if !wellog.IsMissing(v) {
			valid = append(valid, v)
		}
	}
	s.ValidCount = len(valid)

	if s.ValidCount < MinValidSamples {
		s.LowConfidence = true
		return s
	}

	s.Mean = stat.Mean(valid, nil)
	s.StdDev = stat.StdDev(valid, nil)

	s.Min, s.Max = valid[0], valid[0]
	for _, v := range valid[1:] {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}

	margin := tApprox(s.ValidCount) * s.StdDev / math.Sqrt(float64(s.ValidCount))
	s.CILow = s.Mean - margin
	s.CIHigh = s.Mean + margin
	return s
}

// tApprox is the two-level t-statistic approximation: the normal value for
// large samples, a conservative small-sample value otherwise.
func tApprox(n int) float64 {
	if n > 30 {
		return 1.96
	}
	return 2.262
}

// StandardError returns sd/sqrt(n) for a computed summary, 0 when the
// summary is low-confidence.
func (s Summary) StandardError() float64 {
	if s.LowConfidence || s.ValidCount == 0 {
		return 0
	}
	return s.StdDev / math.Sqrt(float64(s.ValidCount))
}

// CombinedUncertainty folds the statistical standard error together with a
// fixed per-method uncertainty as a root sum of squares. This is a
// simplified additive budget, not a stochastic simulation.
func CombinedUncertainty(standardError, methodUncertainty float64) float64 {
	return math.Sqrt(standardError*standardError + methodUncertainty*methodUncertainty)
}
