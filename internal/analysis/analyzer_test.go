package analysis

import (
	"errors"
	"reflect"
	"testing"

	"github.com/subsurfaceio/petrolog/internal/petro"
	"github.com/subsurfaceio/petrolog/internal/wellog"
)

// buildDataset assembles a synthetic well with a porous sand body between
// depths 2010 and 2025 sitting in shale.
func buildDataset(t *testing.T) *wellog.Dataset {
	t.Helper()

	n := 50
	axis := make(wellog.DepthAxis, n)
	rhob := make([]float64, n)
	nphi := make([]float64, n)
	gr := make([]float64, n)
	rt := make([]float64, n)

	for i := 0; i < n; i++ {
		axis[i] = 2000 + float64(i)
		if i >= 10 && i < 25 {
			// Sand: low density, moderate neutron, clean gamma, resistive.
			rhob[i] = 2.30
			nphi[i] = 0.22
			gr[i] = 35
			rt[i] = 20
		} else {
			// Shale: dense, high neutron, hot gamma, conductive.
			rhob[i] = 2.62
			nphi[i] = 0.30
			gr[i] = 110
			rt[i] = 2
		}
	}

	ds, err := wellog.NewDataset("SYNTH-1", axis, []wellog.LogCurve{
		{Name: "RHOB", Unit: "G/CC", Samples: rhob},
		{Name: "NPHI", Unit: "V/V", Samples: nphi},
		{Name: "GR", Unit: "API", Samples: gr},
		{Name: "ILD", Unit: "OHMM", Samples: rt},
	})
	if err != nil {
		t.Fatalf("dataset: %v", err)
	}
	return ds
}

func newAnalyzer(t *testing.T, ds *wellog.Dataset) *Analyzer {
	t.Helper()
	a, err := New(ds, petro.Parameters{}, nil)
	if err != nil {
		t.Fatalf("analyzer: %v", err)
	}
	return a
}

func TestFormationEvaluation(t *testing.T) {
	a := newAnalyzer(t, buildDataset(t))

	ev, err := a.FormationEvaluation()
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}

	if ev.AnalysisID == "" {
		t.Error("missing analysis id")
	}
	if ev.Well != "SYNTH-1" {
		t.Errorf("wrong well: %q", ev.Well)
	}
	if ev.DepthTop != 2000 || ev.DepthBottom != 2049 {
		t.Errorf("depth range wrong: %v..%v", ev.DepthTop, ev.DepthBottom)
	}

	names := make(map[string]DerivedCurve)
	for _, c := range ev.Curves {
		names[c.Name] = c
		if len(c.Samples) != 50 {
			t.Errorf("curve %s has %d samples, want 50", c.Name, len(c.Samples))
		}
	}
	for _, want := range []string{"PHID", "PHIN", "PHIE", "VSH", "SW"} {
		if _, ok := names[want]; !ok {
			t.Errorf("missing derived curve %s", want)
		}
	}

	// Porosity curves carry a combined uncertainty at least the method
	// constant; the summary must bracket its own mean.
	phie := names["PHIE"]
	if phie.Uncertainty < 0.025 {
		t.Errorf("PHIE uncertainty %v below method constant", phie.Uncertainty)
	}
	if !(phie.Summary.CILow <= phie.Summary.Mean && phie.Summary.Mean <= phie.Summary.CIHigh) {
		t.Error("PHIE confidence interval does not bracket mean")
	}
}

func TestFormationEvaluationInsufficientData(t *testing.T) {
	// Only 5 samples: below the 10-sample floor for porosity statistics.
	axis := wellog.DepthAxis{0, 1, 2, 3, 4}
	ds, err := wellog.NewDataset("TINY", axis, []wellog.LogCurve{
		{Name: "RHOB", Samples: []float64{2.4, 2.4, 2.4, 2.4, 2.4}},
		{Name: "NPHI", Samples: []float64{0.2, 0.2, 0.2, 0.2, 0.2}},
	})
	if err != nil {
		t.Fatal(err)
	}

	a := newAnalyzer(t, ds)
	_, err = a.FormationEvaluation()
	if !errors.Is(err, wellog.ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}

func TestFormationEvaluationMissingCurve(t *testing.T) {
	axis := wellog.DepthAxis{0, 1, 2}
	ds, err := wellog.NewDataset("NOCURVES", axis, []wellog.LogCurve{
		{Name: "GR", Samples: []float64{40, 50, 60}},
	})
	if err != nil {
		t.Fatal(err)
	}

	a := newAnalyzer(t, ds)
	_, err = a.FormationEvaluation()
	if !errors.Is(err, wellog.ErrCurveNotFound) {
		t.Errorf("expected ErrCurveNotFound, got %v", err)
	}
}

func TestReservoirIntervals(t *testing.T) {
	a := newAnalyzer(t, buildDataset(t))

	set, err := a.ReservoirIntervals(0)
	if err != nil {
		t.Fatalf("reservoir intervals failed: %v", err)
	}

	if set.Kind != "reservoir" || set.Curve != "PHIE" {
		t.Errorf("wrong result labeling: %s/%s", set.Kind, set.Curve)
	}
	if set.Cutoff != DefaultReservoirCutoff {
		t.Errorf("expected default cutoff, got %v", set.Cutoff)
	}
	if len(set.Intervals) == 0 {
		t.Fatal("expected the sand body to segment into at least one interval")
	}

	primary := set.PrimaryTarget()
	if primary == nil {
		t.Fatal("no primary target")
	}
	if primary.Rank != 1 {
		t.Errorf("primary target rank %d", primary.Rank)
	}
	// The sand body sits between 2010 and 2024.
	if primary.Top < 2009 || primary.Bottom > 2025 {
		t.Errorf("primary target [%v, %v] outside the sand body", primary.Top, primary.Bottom)
	}
	if primary.Quality == "" {
		t.Error("interval not classified")
	}
	if primary.Permeability <= 0 {
		t.Error("expected a positive permeability estimate in the sand")
	}
}

func TestCleanSandIntervals(t *testing.T) {
	a := newAnalyzer(t, buildDataset(t))

	set, err := a.CleanSandIntervals(0)
	if err != nil {
		t.Fatalf("clean sand intervals failed: %v", err)
	}
	if set.Cutoff != DefaultCleanSandCutoff {
		t.Errorf("expected default cutoff, got %v", set.Cutoff)
	}
	if len(set.Intervals) != 1 {
		t.Fatalf("expected exactly the sand body, got %d intervals", len(set.Intervals))
	}
	if set.Intervals[0].NetPayPotential <= 0 {
		t.Error("clean interval should carry net-pay potential")
	}
}

func TestHighPorosityZones(t *testing.T) {
	a := newAnalyzer(t, buildDataset(t))

	set, err := a.HighPorosityZones(0)
	if err != nil {
		t.Fatalf("high porosity zones failed: %v", err)
	}
	if set.Cutoff != DefaultHighPorosityCutoff {
		t.Errorf("expected default cutoff, got %v", set.Cutoff)
	}
	if len(set.Intervals) == 0 {
		t.Fatal("expected high-porosity zones in the sand body")
	}
}

func TestAnalyzerDeterminism(t *testing.T) {
	a := newAnalyzer(t, buildDataset(t))

	first, err := a.ReservoirIntervals(0.08)
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.ReservoirIntervals(0.08)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first.Intervals, second.Intervals) {
		t.Error("identical inputs produced different interval lists")
	}
}

func TestCleanSandRequiresGammaRay(t *testing.T) {
	axis := wellog.DepthAxis{0, 1, 2}
	ds, err := wellog.NewDataset("NOGR", axis, []wellog.LogCurve{
		{Name: "RHOB", Samples: []float64{2.4, 2.4, 2.4}},
		{Name: "NPHI", Samples: []float64{0.2, 0.2, 0.2}},
	})
	if err != nil {
		t.Fatal(err)
	}

	a := newAnalyzer(t, ds)
	_, err = a.CleanSandIntervals(0)
	if !errors.Is(err, wellog.ErrCurveNotFound) {
		t.Errorf("expected ErrCurveNotFound, got %v", err)
	}
}

func TestNewRejectsBadParameters(t *testing.T) {
	ds := buildDataset(t)
	_, err := New(ds, petro.Parameters{MatrixDensity: 5.0}, nil)
	if !errors.Is(err, wellog.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestCurveStatistics(t *testing.T) {
	a := newAnalyzer(t, buildDataset(t))

	cs, err := a.CurveStatistics("GAMMA")
	if err != nil {
		t.Fatalf("curve statistics failed: %v", err)
	}
	if cs.Curve != "GR" {
		t.Errorf("alias should resolve to stored name, got %q", cs.Curve)
	}
	if cs.Summary.ValidCount != 50 {
		t.Errorf("expected 50 valid samples, got %d", cs.Summary.ValidCount)
	}

	_, err = a.CurveStatistics("SONIC")
	if !errors.Is(err, wellog.ErrCurveNotFound) {
		t.Errorf("expected ErrCurveNotFound, got %v", err)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	a := newAnalyzer(t, buildDataset(t))

	set, err := a.ReservoirIntervals(0)
	if err != nil {
		t.Fatal(err)
	}

	b, err := EncodeSnapshot(set)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	var decoded IntervalSet
	if err := DecodeSnapshot(b, &decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.AnalysisID != set.AnalysisID || decoded.Well != set.Well {
		t.Error("snapshot identity fields did not survive the round trip")
	}
	if !reflect.DeepEqual(decoded.Intervals, set.Intervals) {
		t.Error("snapshot intervals did not survive the round trip")
	}
}
