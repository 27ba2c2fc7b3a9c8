// Package zones turns derived curves into classified, ranked depth
// intervals via a single-pass cutoff scan.
package zones

// Quality is the ordinal label assigned to an interval or scalar.
type Quality string

const (
	QualityPoor      Quality = "poor"
	QualityFair      Quality = "fair"
	QualityGood      Quality = "good"
	QualityExcellent Quality = "excellent"
)

// Interval is one maximal qualifying depth run kept by a segmentation
// pass. Intervals from a single pass are depth-ordered and non-overlapping.
type Interval struct {
	Top        float64 `json:"top_depth"`
	Bottom     float64 `json:"bottom_depth"`
	Thickness  float64 `json:"thickness"`
	MeanValue  float64 `json:"mean_value"`
	PointCount int     `json:"point_count"`

	// Derived reservoir-quality fields.
	Permeability    float64 `json:"permeability_md"`
	NetToGross      float64 `json:"net_to_gross"`
	NetPayPotential float64 `json:"net_pay_potential"`

	Quality Quality `json:"quality"`
	Rank    int     `json:"rank,omitempty"` // 1-based after ranking; 1 is the primary target
}

// Mode selects the acceptance thresholds for a segmentation pass.
type Mode int

const (
	// ModeReservoir keeps runs with more than 3 points and more than 3
	// depth units of thickness.
	ModeReservoir Mode = iota
	// ModeCleanSand keeps runs with more than 3 points and more than 2
	// depth units of thickness.
	ModeCleanSand
	// ModeHighPorosity keeps runs with more than 2 points and more than 1
	// depth unit of thickness.
	ModeHighPorosity
)

// minimums returns the exclusive point-count and thickness thresholds.
func (m Mode) minimums() (minPoints int, minThickness float64) {
	switch m {
	case ModeCleanSand:
		return 3, 2.0
	case ModeHighPorosity:
		return 2, 1.0
	default:
		return 3, 3.0
	}
}

// Direction selects which side of the cutoff qualifies.
type Direction int

const (
	// Above qualifies samples >= cutoff (reservoir, high porosity).
	Above Direction = iota
	// Below qualifies samples <= cutoff (clean sand on shale volume).
	Below
)
