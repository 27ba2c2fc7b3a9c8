package analysis

import (
	"github.com/subsurfaceio/petrolog/internal/petro"
	"github.com/subsurfaceio/petrolog/internal/stats"
	"github.com/subsurfaceio/petrolog/internal/zones"
)

// DerivedCurve is one output curve with its summary and, for the porosity
// curves, the combined uncertainty (standard error folded with the
// per-method constant).
type DerivedCurve struct {
	Name        string        `json:"name" msgpack:"name"`
	Samples     []float64     `json:"samples" msgpack:"samples"`
	Summary     stats.Summary `json:"summary" msgpack:"summary"`
	Uncertainty float64       `json:"uncertainty,omitempty" msgpack:"uncertainty"`
}

// Evaluation is the result of a full formation evaluation.
type Evaluation struct {
	AnalysisID  string           `json:"analysis_id" msgpack:"analysis_id"`
	Well        string           `json:"well" msgpack:"well"`
	Parameters  petro.Parameters `json:"parameters" msgpack:"parameters"`
	DepthTop    float64          `json:"depth_top" msgpack:"depth_top"`
	DepthBottom float64          `json:"depth_bottom" msgpack:"depth_bottom"`
	Curves      []DerivedCurve   `json:"curves" msgpack:"curves"`

	PorosityQuality   zones.Quality `json:"porosity_quality" msgpack:"porosity_quality"`
	ShaleQuality      zones.Quality `json:"shale_quality,omitempty" msgpack:"shale_quality"`
	SaturationQuality zones.Quality `json:"saturation_quality,omitempty" msgpack:"saturation_quality"`
}

// IntervalSet is the result of one segmentation pass. Intervals are ranked;
// rank 1 is the primary target.
type IntervalSet struct {
	AnalysisID string           `json:"analysis_id" msgpack:"analysis_id"`
	Well       string           `json:"well" msgpack:"well"`
	Kind       string           `json:"kind" msgpack:"kind"`
	Curve      string           `json:"curve" msgpack:"curve"`
	Cutoff     float64          `json:"cutoff" msgpack:"cutoff"`
	Intervals  []zones.Interval `json:"intervals" msgpack:"intervals"`
	Summary    stats.Summary    `json:"summary" msgpack:"summary"`
}

// PrimaryTarget returns the rank-1 interval, nil when no interval was kept.
func (s *IntervalSet) PrimaryTarget() *zones.Interval {
	for i := range s.Intervals {
		if s.Intervals[i].Rank == 1 {
			return &s.Intervals[i]
		}
	}
	return nil
}

// CurveStats is the result of a standalone curve statistics call.
type CurveStats struct {
	AnalysisID string        `json:"analysis_id" msgpack:"analysis_id"`
	Well       string        `json:"well" msgpack:"well"`
	Curve      string        `json:"curve" msgpack:"curve"`
	Unit       string        `json:"unit,omitempty" msgpack:"unit"`
	Summary    stats.Summary `json:"summary" msgpack:"summary"`
}
