package las

import (
	"errors"
	"strings"
	"testing"

	"github.com/subsurfaceio/petrolog/internal/wellog"
)

const sampleLAS = `~VERSION INFORMATION
 VERS.   2.0 : CWLS LOG ASCII STANDARD
 WRAP.   NO  : ONE LINE PER DEPTH STEP
~WELL INFORMATION
 STRT.M   1670.0 :
 STOP.M   1674.0 :
 STEP.M   1.0    :
 NULL.    -999.25 : NULL VALUE
 WELL.    BIG-HORN-7 : WELL NAME
~CURVE INFORMATION
 DEPT.M       : DEPTH
 GR  .API     : GAMMA RAY
 RHOB.G/CC    : BULK DENSITY
 NPHI.V/V     : NEUTRON POROSITY
~PARAMETER INFORMATION
 MUD .        GEL CHEM :
~A  DEPT     GR      RHOB    NPHI
1670.0   45.0    2.40    0.21
1671.0   52.5    2.42    0.19
1672.0   -999.25 2.45    0.18
1673.0   61.0    -999.25 0.17
1674.0   58.0    2.50    0.16
`

func TestParseSample(t *testing.T) {
	ds, err := Parse(strings.NewReader(sampleLAS), "FALLBACK")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if ds.Well != "BIG-HORN-7" {
		t.Errorf("expected well name from WELL parameter, got %q", ds.Well)
	}
	if len(ds.Axis) != 5 {
		t.Fatalf("expected 5 depth samples, got %d", len(ds.Axis))
	}
	if ds.Axis[0] != 1670 || ds.Axis[4] != 1674 {
		t.Errorf("depth axis wrong: %v", ds.Axis)
	}

	gr, err := ds.Curve("GR")
	if err != nil {
		t.Fatalf("GR curve missing: %v", err)
	}
	if gr.Unit != "API" {
		t.Errorf("expected unit API, got %q", gr.Unit)
	}
	if gr.Samples[1] != 52.5 {
		t.Errorf("expected 52.5 at index 1, got %v", gr.Samples[1])
	}
	if !wellog.IsMissing(gr.Samples[2]) {
		t.Errorf("NULL value should map to sentinel, got %v", gr.Samples[2])
	}

	rhob, err := ds.Curve("RHOB")
	if err != nil {
		t.Fatalf("RHOB curve missing: %v", err)
	}
	if !wellog.IsMissing(rhob.Samples[3]) {
		t.Errorf("expected sentinel at index 3, got %v", rhob.Samples[3])
	}
}

func TestParseCustomNull(t *testing.T) {
	las := `~WELL
 NULL.  -9999.0 :
~CURVE
 DEPT.M :
 GR.API :
~A
100.0  45.0
101.0  -9999.0
102.0  50.0
`
	ds, err := Parse(strings.NewReader(las), "W")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	gr, _ := ds.Curve("GR")
	if !wellog.IsMissing(gr.Samples[1]) {
		t.Errorf("custom NULL should map to sentinel, got %v", gr.Samples[1])
	}
	if wellog.IsMissing(gr.Samples[0]) || wellog.IsMissing(gr.Samples[2]) {
		t.Error("valid samples marked missing")
	}
}

func TestParseWrappedRows(t *testing.T) {
	// Wrapped files split one depth step across multiple lines.
	las := `~CURVE
 DEPT.M :
 GR.API :
 RHOB.G/CC :
~A
100.0
45.0  2.40
101.0
50.0  2.45
`
	ds, err := Parse(strings.NewReader(las), "W")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(ds.Axis) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(ds.Axis))
	}
	rhob, _ := ds.Curve("RHOB")
	if rhob.Samples[1] != 2.45 {
		t.Errorf("wrapped row misaligned: %v", rhob.Samples)
	}
}

func TestParseComments(t *testing.T) {
	las := `# header comment
~CURVE
 DEPT.M :
 GR.API :
# mid comment
~A
100.0 45.0
`
	if _, err := Parse(strings.NewReader(las), "W"); err != nil {
		t.Fatalf("comments should be skipped: %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		las  string
	}{
		{"no curves", "~A\n100.0 45.0\n"},
		{"bad token", "~CURVE\n DEPT.M :\n GR.API :\n~A\n100.0 abc\n"},
		{"trailing partial row", "~CURVE\n DEPT.M :\n GR.API :\n~A\n100.0 45.0\n101.0\n"},
		{"empty input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.las), "W")
			if !errors.Is(err, wellog.ErrMalformedInput) {
				t.Errorf("expected ErrMalformedInput, got %v", err)
			}
		})
	}
}

func TestParseFallbackWellName(t *testing.T) {
	las := "~CURVE\n DEPT.M :\n GR.API :\n~A\n100.0 45.0\n"
	ds, err := Parse(strings.NewReader(las), "FALLBACK-2")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if ds.Well != "FALLBACK-2" {
		t.Errorf("expected fallback well name, got %q", ds.Well)
	}
}
