package kernel

import "math"

// hiFloor keeps the susceptibility finite at vanishing internal field.
const hiFloor = 1e-6

// ReducedField is the longitudinal micromagnetic susceptibility relating the
// internal field Hi, the exchange stiffness A and the wavevector magnitude.
// q in [1e10 m^-1], A in [1e-12 J/m], mu0 folded into the factor 4 pi 10.
// Requires Ms != 0 (checked at the configuration boundary, not here).
func ReducedField(q, ms, hi, a float64) float64 {
	if hi <= hiFloor {
		hi = hiFloor
	}
	return ms / (hi + 2.*a*4.*math.Pi/ms*q*q*10.)
}

// DMILength is the chirality length scale of the Dzyaloshinskii-Moriya
// interaction. D in [1e-3 J/m^2], qval in [1e10 m^-1].
func DMILength(ms, d, qval float64) float64 {
	return 2. * d * 4. * math.Pi / ms / ms * qval
}

// Response holds the transverse magnetization components at one wavevector.
// Mz, the longitudinal component along the field, stays (almost) constant in
// the approach to saturation; the misalignment driven by anisotropy and
// dipolar fields enters Mx and My.
type Response struct {
	MxRe, MxIm float64
	MyRe, MyIm float64
}

// Transverse solves the linearized micromagnetic response at wavevector
// (x, y, z) for longitudinal magnetization mz and in-plane anisotropy field
// (hkx, hky), after Michels et al. PRB 94, 054424 (2016).
// Singular as q -> 0; callers guard with qEpsilon.
func Transverse(x, y, z, mz, hkx, hky, hi, ms, a, d float64) Response {
	qsq := x*x + y*y + z*z
	q := math.Sqrt(qsq)
	r := ReducedField(q, ms, hi, a)
	lq := DMILength(ms, d, q)
	lx := DMILength(ms, d, x)
	ly := DMILength(ms, d, y)
	lz := DMILength(ms, d, z)

	denom := 1. + r*(x*x+y*y)/qsq - (r*lz)*(r*lz)
	spiral := 1. + r*lq*lq
	f := r / denom
	return Response{
		MxRe: f * (hkx*(1.+r*y*y/qsq) - ms*mz*x*z/qsq*spiral - hky*r*x*y/qsq),
		MxIm: -f * (ms*mz*(1.+r)*ly + hky*r*lz),
		MyRe: f * (hky*(1.+r*x*x/qsq) - ms*mz*y*z/qsq*spiral - hkx*r*x*y/qsq),
		MyIm: f * (ms*mz*(1.+r)*lx - hkx*r*lz),
	}
}
