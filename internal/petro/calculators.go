package petro

import (
	"math"

	"github.com/subsurfaceio/petrolog/internal/wellog"
)

// Porosity clamp bounds shared by all porosity calculators.
const (
	porosityMin = 0.0
	porosityMax = 0.5
)

// Density-porosity plausibility gate: an unclamped result outside these
// bounds marks the reading itself as bad, not merely extreme.
const (
	densityRejectLow  = -0.15
	densityRejectHigh = 0.6
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DensityPorosity computes porosity from bulk density:
//
//	phi = (rho_ma - rho_b) / (rho_ma - rho_f)
//
// The unclamped value distinguishes a bad measurement from a valid but
// extreme one: below -0.15 or above 0.6 the sample is rejected as an
// implausible reading (sentinel); otherwise it is clamped to [0, 0.5].
func DensityPorosity(rhob []float64, p Parameters) []float64 {
	out := make([]float64, len(rhob))
	denom := p.MatrixDensity - p.FluidDensity
	for i, rb := range rhob {
		if wellog.IsMissing(rb) {
			out[i] = wellog.Sentinel
			continue
		}
		phi := (p.MatrixDensity - rb) / denom
		if phi < densityRejectLow || phi > densityRejectHigh {
			out[i] = wellog.Sentinel
			continue
		}
		out[i] = clamp(phi, porosityMin, porosityMax)
	}
	return out
}

// NeutronPorosity normalizes a neutron curve to decimal fraction, applies
// the lithology correction factor, and clamps to [0, 0.5]. Values above 1
// are treated as percent; values above 3 are always percent even though a
// decimal fraction that large is already implausible.
func NeutronPorosity(nphi []float64, p Parameters) []float64 {
	out := make([]float64, len(nphi))
	factor := p.neutronLithologyFactor()
	for i, v := range nphi {
		if wellog.IsMissing(v) {
			out[i] = wellog.Sentinel
			continue
		}
		if v > 1 {
			// Percent-scaled curve; anything above 3 could not be a
			// decimal fraction either way.
			v /= 100
		}
		out[i] = clamp(v*factor, porosityMin, porosityMax)
	}
	return out
}

// EffectivePorosity blends density and neutron porosity per the configured
// method (geometric mean by default). When ShaleCorr is set and a shale
// volume curve is supplied, vsh*0.5*phiN is subtracted before the final
// clamp to [0, 0.5]. vsh may be nil when no correction is wanted.
func EffectivePorosity(phiD, phiN, vsh []float64, p Parameters) []float64 {
	out := make([]float64, len(phiD))
	for i := range phiD {
		if wellog.IsMissing(phiD[i]) || wellog.IsMissing(phiN[i]) {
			out[i] = wellog.Sentinel
			continue
		}
		d, n := phiD[i], phiN[i]

		var phi float64
		switch p.Blend {
		case BlendArithmetic:
			phi = (d + n) / 2
		case BlendHarmonic:
			if d <= 0 || n <= 0 {
				phi = 0
			} else {
				phi = 2 * d * n / (d + n)
			}
		case BlendRMS:
			// Wyllie-style root-mean-square blend.
			phi = math.Sqrt((d*d + n*n) / 2)
		default: // geometric
			if d < 0 {
				d = 0
			}
			if n < 0 {
				n = 0
			}
			phi = math.Sqrt(d * n)
		}

		if p.ShaleCorr && vsh != nil {
			if wellog.IsMissing(vsh[i]) {
				out[i] = wellog.Sentinel
				continue
			}
			phi -= vsh[i] * 0.5 * n
		}

		out[i] = clamp(phi, porosityMin, porosityMax)
	}
	return out
}

// ShaleVolume computes shale volume from gamma ray via the gamma-ray index
//
//	IGR = clamp((GR - GRclean) / (GRshale - GRclean), 0, 1)
//
// followed by the configured method transform. Results clamp to [0, 1].
func ShaleVolume(gr []float64, p Parameters) []float64 {
	out := make([]float64, len(gr))
	span := p.GRShale - p.GRClean
	for i, v := range gr {
		if wellog.IsMissing(v) {
			out[i] = wellog.Sentinel
			continue
		}
		igr := clamp((v-p.GRClean)/span, 0, 1)

		var vsh float64
		switch p.VshMethod {
		case VshLarionovPreTertiary:
			vsh = 0.33 * (math.Pow(2, 2*igr) - 1)
		case VshClavier:
			rad := 3.38 - (igr+0.7)*(igr+0.7)
			if rad < 0 {
				rad = 0
			}
			vsh = 1.7 - math.Sqrt(rad)
		case VshLinear:
			vsh = igr
		default: // larionov_tertiary
			vsh = 0.083 * (math.Pow(2, 3.7*igr) - 1)
		}

		out[i] = clamp(vsh, 0, 1)
	}
	return out
}

// WaterSaturation applies the Archie equation
//
//	Sw = ((a * Rw) / (phi^m * Rt)) ^ (1/n)
//
// Non-positive porosity or resistivity cannot carry a saturation and
// produce the sentinel. Results clamp to [0, 1].
func WaterSaturation(porosity, rt []float64, p Parameters) []float64 {
	out := make([]float64, len(porosity))
	for i := range porosity {
		phi, res := porosity[i], rt[i]
		if wellog.IsMissing(phi) || wellog.IsMissing(res) || phi <= 0 || res <= 0 {
			out[i] = wellog.Sentinel
			continue
		}
		sw := math.Pow((p.TortuosityA*p.WaterRw)/(math.Pow(phi, p.CementationM)*res), 1/p.SaturationN)
		out[i] = clamp(sw, 0, 1)
	}
	return out
}
