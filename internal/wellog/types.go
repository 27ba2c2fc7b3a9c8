// Package wellog holds depth-indexed well-log curves and the curve store
// used by all downstream petrophysical calculations.
package wellog

import "math"

// Sentinel is the reserved marker for a missing or invalid sample.
// Indices are never dropped from a curve, only marked.
const Sentinel = -999.25

// sentinelTolerance absorbs float formatting drift in parsed files
// (-999.2500 vs -999.25).
const sentinelTolerance = 1e-4

// IsMissing reports whether v is the sentinel or a non-finite marker.
func IsMissing(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return true
	}
	return math.Abs(v-Sentinel) < sentinelTolerance
}

// DepthAxis is the ordered sequence of depth values that defines sample
// positions for every curve in a dataset. Depths must be non-decreasing.
type DepthAxis []float64

// Validate checks the non-decreasing invariant.
func (a DepthAxis) Validate() error {
	for i := 1; i < len(a); i++ {
		if a[i] < a[i-1] {
			return ErrMalformedInput
		}
	}
	return nil
}

// LogCurve is a single named measurement aligned to a DepthAxis.
type LogCurve struct {
	Name    string    `json:"name"`
	Unit    string    `json:"unit,omitempty"`
	Samples []float64 `json:"samples"`
}

// ValidCount returns the number of non-missing samples.
func (c LogCurve) ValidCount() int {
	n := 0
	for _, v := range c.Samples {
		if !IsMissing(v) {
			n++
		}
	}
	return n
}
