package wellog

import (
	"fmt"
	"sort"
	"strings"
)

// curveAliases maps the logical curve mnemonics used by the calculators to
// the names they commonly appear under in log files. Matching is
// case-insensitive; the first stored curve matching any alias wins.
var curveAliases = map[string][]string{
	"RHOB": {"RHOB", "DENSITY", "RHO", "DEN", "ZDEN"},
	"NPHI": {"NPHI", "NEUTRON", "PHIN", "NEU", "CNC"},
	"GR":   {"GR", "GAMMA", "GAMMA_RAY", "SGR", "CGR"},
	"RT":   {"RT", "RESD", "ILD", "RES", "LLD", "RDEP"},
	"DEPT": {"DEPT", "DEPTH", "MD", "TVD"},
}

// Dataset is an immutable collection of depth-aligned curves. All curves
// share the same DepthAxis; the length invariant is enforced at assembly.
type Dataset struct {
	Well   string
	Axis   DepthAxis
	curves []LogCurve
}

// NewDataset assembles a dataset, validating the axis and the alignment of
// every curve against it.
func NewDataset(well string, axis DepthAxis, curves []LogCurve) (*Dataset, error) {
	if err := axis.Validate(); err != nil {
		return nil, fmt.Errorf("depth axis for well %s: %w", well, err)
	}
	for _, c := range curves {
		if len(c.Samples) != len(axis) {
			return nil, fmt.Errorf("curve %s has %d samples, axis has %d: %w",
				c.Name, len(c.Samples), len(axis), ErrMalformedInput)
		}
	}
	return &Dataset{Well: well, Axis: axis, curves: curves}, nil
}

// CurveNames returns the stored curve names in original order.
func (d *Dataset) CurveNames() []string {
	names := make([]string, len(d.curves))
	for i, c := range d.curves {
		names[i] = c.Name
	}
	return names
}

// Curve resolves a curve by name or alias. The requested name is matched
// directly first, then through the alias table for its logical mnemonic.
func (d *Dataset) Curve(name string) (LogCurve, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))

	for _, c := range d.curves {
		if strings.ToUpper(c.Name) == upper {
			return c, nil
		}
	}

	// Find which logical mnemonic the request belongs to, then try every
	// alias of that mnemonic against the stored curves.
	for mnemonic, aliases := range curveAliases {
		requested := upper == mnemonic
		for _, a := range aliases {
			if a == upper {
				requested = true
				break
			}
		}
		if !requested {
			continue
		}
		for _, a := range aliases {
			for _, c := range d.curves {
				if strings.ToUpper(c.Name) == a {
					return c, nil
				}
			}
		}
	}

	return LogCurve{}, fmt.Errorf("no curve matches %q in well %s: %w", name, d.Well, ErrCurveNotFound)
}

// HasCurve reports whether a curve resolves by name or alias.
func (d *Dataset) HasCurve(name string) bool {
	_, err := d.Curve(name)
	return err == nil
}

// FilterByDepthRange returns a new dataset restricted to the inclusive
// depth range [start, end], preserving sample order. The underlying sample
// storage is shared; datasets are read-only after construction.
func (d *Dataset) FilterByDepthRange(start, end float64) *Dataset {
	// Depths are non-decreasing, so the window is a contiguous slice.
	lo := sort.SearchFloat64s(d.Axis, start)
	hi := sort.SearchFloat64s(d.Axis, end)
	for hi < len(d.Axis) && d.Axis[hi] <= end {
		hi++
	}

	filtered := make([]LogCurve, len(d.curves))
	for i, c := range d.curves {
		filtered[i] = LogCurve{Name: c.Name, Unit: c.Unit, Samples: c.Samples[lo:hi]}
	}
	return &Dataset{Well: d.Well, Axis: d.Axis[lo:hi], curves: filtered}
}
