package zones

import "sort"

// Fixed classification breakpoints. Buckets are non-overlapping and
// half-open on the upper bound.

// ClassifyPorosity labels a porosity fraction.
func ClassifyPorosity(phi float64) Quality {
	switch {
	case phi < 0.08:
		return QualityPoor
	case phi < 0.12:
		return QualityFair
	case phi < 0.18:
		return QualityGood
	default:
		return QualityExcellent
	}
}

// ClassifyShaleVolume labels a shale-volume fraction; cleaner is better.
func ClassifyShaleVolume(vsh float64) Quality {
	switch {
	case vsh < 0.15:
		return QualityExcellent
	case vsh < 0.30:
		return QualityGood
	case vsh < 0.50:
		return QualityFair
	default:
		return QualityPoor
	}
}

// ClassifyWaterSaturation labels a water-saturation fraction; lower means
// more hydrocarbon.
func ClassifyWaterSaturation(sw float64) Quality {
	switch {
	case sw < 0.30:
		return QualityExcellent
	case sw < 0.50:
		return QualityGood
	case sw < 0.70:
		return QualityFair
	default:
		return QualityPoor
	}
}

// ClassifyNetToGross labels a net-to-gross fraction.
func ClassifyNetToGross(ntg float64) Quality {
	switch {
	case ntg < 0.5:
		return QualityPoor
	case ntg < 0.7:
		return QualityFair
	case ntg < 0.85:
		return QualityGood
	default:
		return QualityExcellent
	}
}

// ScoreFunc computes the composite ranking score for an interval.
type ScoreFunc func(Interval) float64

// ScoreValueThickness ranks by mean value times thickness.
func ScoreValueThickness(iv Interval) float64 {
	return iv.MeanValue * iv.Thickness
}

// ScoreNetPay ranks by net-pay potential.
func ScoreNetPay(iv Interval) float64 {
	return iv.NetPayPotential
}

// Rank sorts intervals descending by score and assigns 1-based ranks.
// The sort is stable so tied scores keep original depth order; rank 1
// drives downstream primary-target labeling and must be exact. The input
// slice is modified in place and returned.
func Rank(intervals []Interval, score ScoreFunc) []Interval {
	sort.SliceStable(intervals, func(i, j int) bool {
		return score(intervals[i]) > score(intervals[j])
	})
	for i := range intervals {
		intervals[i].Rank = i + 1
	}
	return intervals
}
