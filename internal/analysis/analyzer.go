// Package analysis orchestrates the petrophysics pipeline: curve store to
// calculators to segmentation to classification, with summaries attached.
// An Analyzer holds no state across calls; every result is freshly
// allocated and owned by the caller.
package analysis

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/subsurfaceio/petrolog/internal/petro"
	"github.com/subsurfaceio/petrolog/internal/stats"
	"github.com/subsurfaceio/petrolog/internal/wellog"
	"github.com/subsurfaceio/petrolog/internal/zones"
)

// Default cutoffs for the interval operations.
const (
	DefaultReservoirCutoff    = 0.08
	DefaultCleanSandCutoff    = 0.30
	DefaultHighPorosityCutoff = 0.12
)

// MinPorositySamples is the valid-sample floor for formation evaluation.
const MinPorositySamples = 10

// Analyzer runs analysis operations against one dataset with one
// parameter set. Construction validates the parameters up front so the
// operations cannot fail on configuration mid-pass.
type Analyzer struct {
	ds     *wellog.Dataset
	params petro.Parameters
	logger *zap.SugaredLogger
}

// New creates an Analyzer. Zero-valued parameter fields take documented
// defaults; out-of-range values are a hard error.
func New(ds *wellog.Dataset, params petro.Parameters, logger *zap.SugaredLogger) (*Analyzer, error) {
	params = params.Normalize()
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{ds: ds, params: params, logger: logger}, nil
}

// Parameters returns the effective (normalized) parameter set.
func (a *Analyzer) Parameters() petro.Parameters {
	return a.params
}

// derived bundles the per-call derived curves. Optional inputs leave their
// slice nil rather than failing the whole call.
type derived struct {
	phiD []float64
	phiN []float64
	phiE []float64
	vsh  []float64
	sw   []float64
}

// deriveCurves computes every derived curve the dataset supports. Density
// and neutron curves are required; gamma ray and resistivity are optional.
func (a *Analyzer) deriveCurves() (*derived, error) {
	rhob, err := a.ds.Curve("RHOB")
	if err != nil {
		return nil, fmt.Errorf("density curve: %w", err)
	}
	nphi, err := a.ds.Curve("NPHI")
	if err != nil {
		return nil, fmt.Errorf("neutron curve: %w", err)
	}

	d := &derived{
		phiD: petro.DensityPorosity(rhob.Samples, a.params),
		phiN: petro.NeutronPorosity(nphi.Samples, a.params),
	}

	if gr, err := a.ds.Curve("GR"); err == nil {
		d.vsh = petro.ShaleVolume(gr.Samples, a.params)
	}

	d.phiE = petro.EffectivePorosity(d.phiD, d.phiN, d.vsh, a.params)

	if rt, err := a.ds.Curve("RT"); err == nil {
		d.sw = petro.WaterSaturation(d.phiE, rt.Samples, a.params)
	}

	return d, nil
}

// FormationEvaluation computes the full derived-curve suite with per-curve
// summaries and the combined uncertainty budget. Fails with
// ErrInsufficientData when fewer than MinPorositySamples valid effective
// porosity samples exist.
func (a *Analyzer) FormationEvaluation() (*Evaluation, error) {
	d, err := a.deriveCurves()
	if err != nil {
		return nil, err
	}

	phiESummary := stats.Summarize(d.phiE)
	if phiESummary.ValidCount < MinPorositySamples {
		return nil, fmt.Errorf("%d valid porosity samples, need %d: %w",
			phiESummary.ValidCount, MinPorositySamples, wellog.ErrInsufficientData)
	}

	ev := &Evaluation{
		AnalysisID:  uuid.NewString(),
		Well:        a.ds.Well,
		Parameters:  a.params,
		DepthTop:    a.ds.Axis[0],
		DepthBottom: a.ds.Axis[len(a.ds.Axis)-1],
		Curves: []DerivedCurve{
			{Name: "PHID", Samples: d.phiD, Summary: stats.Summarize(d.phiD),
				Uncertainty: stats.MethodUncertaintyDensity},
			{Name: "PHIN", Samples: d.phiN, Summary: stats.Summarize(d.phiN),
				Uncertainty: stats.MethodUncertaintyNeutron},
			{Name: "PHIE", Samples: d.phiE, Summary: phiESummary,
				Uncertainty: stats.MethodUncertaintyEffective},
		},
		PorosityQuality: zones.ClassifyPorosity(phiESummary.Mean),
	}

	// Fold the statistical and method uncertainties per curve.
	for i := range ev.Curves {
		c := &ev.Curves[i]
		c.Uncertainty = stats.CombinedUncertainty(c.Summary.StandardError(), c.Uncertainty)
	}

	if d.vsh != nil {
		s := stats.Summarize(d.vsh)
		ev.Curves = append(ev.Curves, DerivedCurve{Name: "VSH", Samples: d.vsh, Summary: s})
		ev.ShaleQuality = zones.ClassifyShaleVolume(s.Mean)
	}
	if d.sw != nil {
		s := stats.Summarize(d.sw)
		ev.Curves = append(ev.Curves, DerivedCurve{Name: "SW", Samples: d.sw, Summary: s})
		ev.SaturationQuality = zones.ClassifyWaterSaturation(s.Mean)
	}

	if a.logger != nil {
		a.logger.Debugf("formation evaluation for %s: %d samples, mean PHIE %.3f",
			a.ds.Well, len(a.ds.Axis), phiESummary.Mean)
	}
	return ev, nil
}

// ReservoirIntervals segments effective porosity against a cutoff
// (DefaultReservoirCutoff when cutoff <= 0) and ranks the kept intervals
// by value times thickness.
func (a *Analyzer) ReservoirIntervals(cutoff float64) (*IntervalSet, error) {
	if cutoff <= 0 {
		cutoff = DefaultReservoirCutoff
	}
	d, err := a.deriveCurves()
	if err != nil {
		return nil, err
	}

	intervals := zones.Segment(a.ds.Axis, d.phiE, d.vsh, cutoff, zones.Above, zones.ModeReservoir)
	for i := range intervals {
		intervals[i].Quality = zones.ClassifyPorosity(intervals[i].MeanValue)
	}
	intervals = zones.Rank(intervals, zones.ScoreValueThickness)

	return a.newIntervalSet("reservoir", "PHIE", cutoff, intervals, d.phiE), nil
}

// CleanSandIntervals segments shale volume below a cutoff
// (DefaultCleanSandCutoff when cutoff <= 0) and ranks by net-pay
// potential. Requires a gamma-ray curve.
func (a *Analyzer) CleanSandIntervals(cutoff float64) (*IntervalSet, error) {
	if cutoff <= 0 {
		cutoff = DefaultCleanSandCutoff
	}
	gr, err := a.ds.Curve("GR")
	if err != nil {
		return nil, fmt.Errorf("gamma ray curve: %w", err)
	}

	vsh := petro.ShaleVolume(gr.Samples, a.params)
	intervals := zones.Segment(a.ds.Axis, vsh, vsh, cutoff, zones.Below, zones.ModeCleanSand)
	for i := range intervals {
		intervals[i].Quality = zones.ClassifyShaleVolume(intervals[i].MeanValue)
	}
	intervals = zones.Rank(intervals, zones.ScoreNetPay)

	return a.newIntervalSet("clean_sand", "VSH", cutoff, intervals, vsh), nil
}

// HighPorosityZones segments effective porosity with the looser
// high-porosity acceptance thresholds (DefaultHighPorosityCutoff when
// cutoff <= 0).
func (a *Analyzer) HighPorosityZones(cutoff float64) (*IntervalSet, error) {
	if cutoff <= 0 {
		cutoff = DefaultHighPorosityCutoff
	}
	d, err := a.deriveCurves()
	if err != nil {
		return nil, err
	}

	intervals := zones.Segment(a.ds.Axis, d.phiE, d.vsh, cutoff, zones.Above, zones.ModeHighPorosity)
	for i := range intervals {
		intervals[i].Quality = zones.ClassifyPorosity(intervals[i].MeanValue)
	}
	intervals = zones.Rank(intervals, zones.ScoreValueThickness)

	return a.newIntervalSet("high_porosity", "PHIE", cutoff, intervals, d.phiE), nil
}

// CurveStatistics summarizes a single stored curve resolved by alias.
func (a *Analyzer) CurveStatistics(name string) (*CurveStats, error) {
	curve, err := a.ds.Curve(name)
	if err != nil {
		return nil, err
	}
	return &CurveStats{
		AnalysisID: uuid.NewString(),
		Well:       a.ds.Well,
		Curve:      curve.Name,
		Unit:       curve.Unit,
		Summary:    stats.Summarize(curve.Samples),
	}, nil
}

func (a *Analyzer) newIntervalSet(kind, curve string, cutoff float64, intervals []zones.Interval, values []float64) *IntervalSet {
	set := &IntervalSet{
		AnalysisID: uuid.NewString(),
		Well:       a.ds.Well,
		Kind:       kind,
		Curve:      curve,
		Cutoff:     cutoff,
		Intervals:  intervals,
		Summary:    stats.Summarize(values),
	}
	if a.logger != nil {
		a.logger.Debugf("%s segmentation for %s: cutoff %.3f, %d intervals kept",
			kind, a.ds.Well, cutoff, len(intervals))
	}
	return set
}
