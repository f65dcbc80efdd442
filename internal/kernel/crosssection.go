package kernel

import "math"

// weightEpsilon: channels weighted below it are skipped in the quadrature
// sum. A shortcut, not a physical zero.
const weightEpsilon = 1e-8

// Weights hold the polarization-efficiency weight of each spin-resolved
// channel. All weights are non-negative.
type Weights struct {
	DD, UU, DU, UD float64
}

// PolarizationWeights maps the incident and final beam efficiencies into
// channel weights. Without a spin analyzer (upF near 0 or 1) the
// normalization keeps the non-spin-flip channels lossless.
func PolarizationWeights(upI, upF float64) Weights {
	upI = clip(upI, 0., 1.)
	upF = clip(upF, 0., 1.)
	norm := upF
	if upF < 0.5 {
		norm = 1. - upF
	}
	return Weights{
		DD: (1. - upI) * (1. - upF) / norm,
		UU: upI * upF / norm,
		DU: (1. - upI) * upF / norm,
		UD: upI * (1. - upF) / norm,
	}
}

func clip(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// CrossSections are the four complex spin-resolved scattering-length-density
// amplitudes: non-spin-flip dd/uu and spin-flip du/ud.
type CrossSections struct {
	DD, UU, DU, UD complex128
}

// Assemble projects the magnetization perpendicular to the wavevector
// (Halpern-Johnson vector M - (M.q)q/q^2) and collects the spin-resolved
// amplitudes after Moon, Riste and Koehler, Phys Rev 181, 920 (1969):
// non-spin-flip nuc -+ Mperp_z, spin-flip -(Mperp_x +- i Mperp_y).
func Assemble(x, y, z float64, m Response, mz, nuc float64) CrossSections {
	q := math.Sqrt(x*x + y*y + z*z)
	ux, uy, uz := x/q, y/q, z/q

	dotRe := m.MxRe*ux + m.MyRe*uy + mz*uz
	dotIm := m.MxIm*ux + m.MyIm*uy

	perpXRe := m.MxRe - dotRe*ux
	perpXIm := m.MxIm - dotIm*ux
	perpYRe := m.MyRe - dotRe*uy
	perpYIm := m.MyIm - dotIm*uy
	perpZRe := mz - dotRe*uz
	perpZIm := -dotIm * uz

	return CrossSections{
		DD: complex(nuc+perpZRe, perpZIm),
		UU: complex(nuc-perpZRe, -perpZIm),
		UD: complex(-(perpXRe - perpYIm), -(perpXIm + perpYRe)),
		DU: complex(-(perpXRe + perpYIm), -(perpXIm - perpYRe)),
	}
}

// WeightedSquares sums the squared amplitude magnitudes over the channels,
// each scaled by its weight.
func (c CrossSections) WeightedSquares(w Weights) float64 {
	var form float64
	if w.DD > weightEpsilon {
		form += w.DD * absSq(c.DD)
	}
	if w.UU > weightEpsilon {
		form += w.UU * absSq(c.UU)
	}
	if w.DU > weightEpsilon {
		form += w.DU * absSq(c.DU)
	}
	if w.UD > weightEpsilon {
		form += w.UD * absSq(c.UD)
	}
	return form
}

func absSq(v complex128) float64 {
	re, im := real(v), imag(v)
	return re*re + im*im
}
