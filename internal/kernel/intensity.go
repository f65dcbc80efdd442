package kernel

import (
	"math"

	"github.com/bobleesj/sasmodels/internal/constants"
	"github.com/bobleesj/sasmodels/internal/quadrature"
)

// qEpsilon guards the q -> 0 singularity of the transverse response.
const qEpsilon = 1e-16

// AxisDistribution maps a quadrature abscissa in [-1, 1] to an anisotropy
// axis angle. IsotropicAxis covers untextured materials; a textured
// distribution (Weissmueller et al. PRB 63, 214414 (2001)) would replace it.
type AxisDistribution func(z float64) float64

func IsotropicAxis(z float64) float64 {
	return quadrature.Angle(z)
}

// AnisotropyAverage integrates the weighted squared cross sections over the
// in-plane random anisotropy axis. Only the particle core carries the
// effective anisotropy; hk is its amplitude at this q. The result is not yet
// normalized by 2 pi: that factor sits in the final intensity scale.
func AnisotropyAverage(x, y, z, mz, nuc, hk float64, p Parameters, w Weights, g quadrature.Grid, axis AxisDistribution) float64 {
	var total float64
	for i := range g.Z {
		sinG, cosG := math.Sincos(axis(g.Z[i]))
		hkx := hk * sinG
		hky := hk * cosG
		m := Transverse(x, y, z, mz, hkx, hky, p.Hi, p.Ms, p.A, p.D)
		sld := Assemble(x, y, z, m, mz, nuc)
		total += g.W[i] * sld.WeightedSquares(w)
	}
	return total
}

// Iqxy is the 2D intensity at detector-plane wavevector (qx, qy). [cm^-1]
// At the beam center (q <= qEpsilon) the response is singular and the
// forward-scattering value is defined as 0.
func Iqxy(qx, qy float64, p Parameters, g quadrature.Grid) float64 {
	q := math.Sqrt(qx*qx + qy*qy)
	if q <= qEpsilon {
		return 0.
	}
	x, y, z := RotateToSampleFrame(q, qx/q, qy/q, p.Alpha, p.Beta)
	w := PolarizationWeights(p.UpI, p.UpF)
	mz := CoreShellAmplitude(q, p.Radius, p.Thickness, p.MagCore, p.MagShell, p.MagSolvent)
	nuc := CoreShellAmplitude(q, p.Radius, p.Thickness, p.NucCore, p.NucShell, p.NucSolvent)
	hk := CoreShellAmplitude(q, p.Radius, p.Thickness, p.HkCore, 0., 0.)
	return constants.Scale2D * AnisotropyAverage(x, y, z, mz, nuc, hk, p, w, g, IsotropicAxis)
}

// Iq is the 1D intensity at wavevector magnitude q, averaged over the
// detector-plane orientation. [cm^-1]
func Iq(q float64, p Parameters, g quadrature.Grid) float64 {
	w := PolarizationWeights(p.UpI, p.UpF)
	mz := CoreShellAmplitude(q, p.Radius, p.Thickness, p.MagCore, p.MagShell, p.MagSolvent)
	nuc := CoreShellAmplitude(q, p.Radius, p.Thickness, p.NucCore, p.NucShell, p.NucSolvent)
	hk := CoreShellAmplitude(q, p.Radius, p.Thickness, p.HkCore, 0., 0.)

	var total float64
	for j := range g.Z {
		sinT, cosT := math.Sincos(quadrature.Angle(g.Z[j]))
		x, y, z := RotateToSampleFrame(q, cosT, sinT, p.Alpha, p.Beta)
		total += g.W[j] * AnisotropyAverage(x, y, z, mz, nuc, hk, p, w, g, IsotropicAxis)
	}
	return constants.Scale1D * total
}
