package zones

import (
	"github.com/subsurfaceio/petrolog/internal/wellog"
)

// Segment runs the single-pass cutoff scan over a derived curve. vsh is an
// optional shale-volume curve used for the net-pay-potential field; pass
// nil when unavailable and thickness alone drives net pay.
//
// The scan is deterministic and O(n): a qualifying sample while idle opens
// a run; a non-qualifying or missing sample closes it. Missing data is a
// hard boundary, never bridged. A run still open after the last sample
// closes at the final depth. Closed runs survive only if they exceed the
// mode's point-count and thickness minimums; rejected runs are discarded,
// never merged with neighbors.
func Segment(axis wellog.DepthAxis, values, vsh []float64, cutoff float64, dir Direction, mode Mode) []Interval {
	minPoints, minThickness := mode.minimums()

	var intervals []Interval

	inRun := false
	var top float64
	var sum, vshSum float64
	var count, vshCount int

	closeRun := func(bottom float64) {
		if !inRun {
			return
		}
		inRun = false

		thickness := bottom - top
		if count <= minPoints || thickness <= minThickness {
			return
		}

		mean := sum / float64(count)
		meanVsh := 0.0
		if vshCount > 0 {
			meanVsh = vshSum / float64(vshCount)
		}

		intervals = append(intervals, Interval{
			Top:             top,
			Bottom:          bottom,
			Thickness:       thickness,
			MeanValue:       mean,
			PointCount:      count,
			Permeability:    PermeabilityEstimate(mean),
			NetToGross:      NetToGross(mean),
			NetPayPotential: thickness * (1 - meanVsh),
		})
	}

	for i, v := range values {
		qualifies := !wellog.IsMissing(v) && ((dir == Above && v >= cutoff) || (dir == Below && v <= cutoff))

		if qualifies {
			if !inRun {
				inRun = true
				top = axis[i]
				sum, count = 0, 0
				vshSum, vshCount = 0, 0
			}
			sum += v
			count++
			if vsh != nil && !wellog.IsMissing(vsh[i]) {
				vshSum += vsh[i]
				vshCount++
			}
			continue
		}

		// Run ends at the last qualifying depth, not the current one.
		if inRun {
			closeRun(axis[i-1])
		}
	}
	if inRun {
		closeRun(axis[len(axis)-1])
	}

	return intervals
}

// PermeabilityEstimate is the Kozeny-Carman-style porosity-permeability
// transform phi^3 / (1-phi)^2 * 1000, in millidarcies.
func PermeabilityEstimate(phi float64) float64 {
	if phi <= 0 {
		return 0
	}
	if phi >= 1 {
		phi = 0.9999
	}
	return phi * phi * phi / ((1 - phi) * (1 - phi)) * 1000
}

// NetToGross maps mean porosity to a net-to-gross fraction via fixed
// breakpoints.
func NetToGross(phi float64) float64 {
	switch {
	case phi >= 0.15:
		return 0.9
	case phi >= 0.10:
		return 0.75
	case phi >= 0.06:
		return 0.6
	default:
		return 0.4
	}
}
