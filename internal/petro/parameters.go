// Package petro implements the pure per-sample petrophysical calculators:
// density, neutron and effective porosity, shale volume, and Archie water
// saturation. Every calculator is sentinel-absorbing: a missing input at
// index i produces a missing output at index i.
package petro

import (
	"fmt"

	"github.com/subsurfaceio/petrolog/internal/wellog"
)

// Lithology selects the neutron-porosity correction factor.
type Lithology string

const (
	LithologySandstone Lithology = "sandstone"
	LithologyLimestone Lithology = "limestone"
	LithologyCarbonate Lithology = "carbonate"
	LithologyDolomite  Lithology = "dolomite"
)

// BlendMethod selects how density and neutron porosity are combined into
// effective porosity.
type BlendMethod string

const (
	BlendArithmetic BlendMethod = "arithmetic"
	BlendGeometric  BlendMethod = "geometric"
	BlendHarmonic   BlendMethod = "harmonic"
	BlendRMS        BlendMethod = "rms"
)

// VshMethod selects the gamma-ray index transform for shale volume.
type VshMethod string

const (
	VshLarionovTertiary    VshMethod = "larionov_tertiary"
	VshLarionovPreTertiary VshMethod = "larionov_pre_tertiary"
	VshClavier             VshMethod = "clavier"
	VshLinear              VshMethod = "linear"
)

// Parameters holds the physical constants and method selectors shared by
// the calculators. The zero value of a numeric field means "use default";
// Normalize fills defaults, Validate enforces the declared ranges.
type Parameters struct {
	MatrixDensity float64 `json:"matrix_density" yaml:"matrix_density"` // g/cc, default 2.65 (quartz)
	FluidDensity  float64 `json:"fluid_density" yaml:"fluid_density"`   // g/cc, default 1.0 (water)

	GRClean float64 `json:"gr_clean" yaml:"gr_clean"` // API, default 30
	GRShale float64 `json:"gr_shale" yaml:"gr_shale"` // API, default 120

	// Archie constants.
	TortuosityA  float64 `json:"tortuosity_a" yaml:"tortuosity_a"`   // a, default 1.0
	CementationM float64 `json:"cementation_m" yaml:"cementation_m"` // m, default 2.0
	SaturationN  float64 `json:"saturation_n" yaml:"saturation_n"`   // n, default 2.0
	WaterRw      float64 `json:"water_rw" yaml:"water_rw"`           // ohm·m, default 0.03

	Lithology Lithology   `json:"lithology" yaml:"lithology"`   // default sandstone
	Blend     BlendMethod `json:"blend" yaml:"blend"`           // default geometric
	VshMethod VshMethod   `json:"vsh_method" yaml:"vsh_method"` // default larionov_tertiary
	ShaleCorr bool        `json:"shale_corr" yaml:"shale_corr"` // apply shale correction to effective porosity
}

// DefaultParameters returns the documented defaults.
func DefaultParameters() Parameters {
	return Parameters{
		MatrixDensity: 2.65,
		FluidDensity:  1.0,
		GRClean:       30.0,
		GRShale:       120.0,
		TortuosityA:   1.0,
		CementationM:  2.0,
		SaturationN:   2.0,
		WaterRw:       0.03,
		Lithology:     LithologySandstone,
		Blend:         BlendGeometric,
		VshMethod:     VshLarionovTertiary,
	}
}

// Normalize fills zero-valued fields with defaults without touching
// explicitly-set values.
func (p Parameters) Normalize() Parameters {
	d := DefaultParameters()
	if p.MatrixDensity == 0 {
		p.MatrixDensity = d.MatrixDensity
	}
	if p.FluidDensity == 0 {
		p.FluidDensity = d.FluidDensity
	}
	if p.GRClean == 0 {
		p.GRClean = d.GRClean
	}
	if p.GRShale == 0 {
		p.GRShale = d.GRShale
	}
	if p.TortuosityA == 0 {
		p.TortuosityA = d.TortuosityA
	}
	if p.CementationM == 0 {
		p.CementationM = d.CementationM
	}
	if p.SaturationN == 0 {
		p.SaturationN = d.SaturationN
	}
	if p.WaterRw == 0 {
		p.WaterRw = d.WaterRw
	}
	if p.Lithology == "" {
		p.Lithology = d.Lithology
	}
	if p.Blend == "" {
		p.Blend = d.Blend
	}
	if p.VshMethod == "" {
		p.VshMethod = d.VshMethod
	}
	return p
}

// Validate enforces declared ranges. Out-of-range constants are a hard
// error, never silently clamped.
func (p Parameters) Validate() error {
	check := func(name string, v, lo, hi float64) error {
		if v < lo || v > hi {
			return fmt.Errorf("%s=%g outside [%g, %g]: %w", name, v, lo, hi, wellog.ErrInvalidParameter)
		}
		return nil
	}

	if err := check("matrix_density", p.MatrixDensity, 2.0, 3.2); err != nil {
		return err
	}
	if err := check("fluid_density", p.FluidDensity, 0.6, 1.3); err != nil {
		return err
	}
	if p.MatrixDensity <= p.FluidDensity {
		return fmt.Errorf("matrix_density %g must exceed fluid_density %g: %w",
			p.MatrixDensity, p.FluidDensity, wellog.ErrInvalidParameter)
	}
	if err := check("gr_clean", p.GRClean, 0, 300); err != nil {
		return err
	}
	if err := check("gr_shale", p.GRShale, 0, 500); err != nil {
		return err
	}
	if p.GRShale <= p.GRClean {
		return fmt.Errorf("gr_shale %g must exceed gr_clean %g: %w",
			p.GRShale, p.GRClean, wellog.ErrInvalidParameter)
	}
	if err := check("tortuosity_a", p.TortuosityA, 0.5, 2.0); err != nil {
		return err
	}
	if err := check("cementation_m", p.CementationM, 1.3, 3.0); err != nil {
		return err
	}
	if err := check("saturation_n", p.SaturationN, 1.0, 3.0); err != nil {
		return err
	}
	if err := check("water_rw", p.WaterRw, 0.001, 10.0); err != nil {
		return err
	}

	switch p.Lithology {
	case LithologySandstone, LithologyLimestone, LithologyCarbonate, LithologyDolomite:
	default:
		return fmt.Errorf("unknown lithology %q: %w", p.Lithology, wellog.ErrInvalidParameter)
	}
	switch p.Blend {
	case BlendArithmetic, BlendGeometric, BlendHarmonic, BlendRMS:
	default:
		return fmt.Errorf("unknown blend method %q: %w", p.Blend, wellog.ErrInvalidParameter)
	}
	switch p.VshMethod {
	case VshLarionovTertiary, VshLarionovPreTertiary, VshClavier, VshLinear:
	default:
		return fmt.Errorf("unknown vsh method %q: %w", p.VshMethod, wellog.ErrInvalidParameter)
	}
	return nil
}

// neutronLithologyFactor returns the per-lithology correction applied to
// neutron porosity. Values are field defaults, overridable via Lithology.
func (p Parameters) neutronLithologyFactor() float64 {
	switch p.Lithology {
	case LithologyDolomite:
		return 0.7
	case LithologyLimestone, LithologyCarbonate:
		return 1.0
	default:
		return 0.9
	}
}
