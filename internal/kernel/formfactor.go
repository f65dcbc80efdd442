package kernel

import "math"

// FormVolume is the total particle volume. [A^3]
func FormVolume(radius, thickness float64) float64 {
	return sphereVolume(radius + thickness)
}

// EffectiveRadius returns the radius used for structure-factor coupling:
// mode 1 is the outer radius, mode 2 the core radius.
func EffectiveRadius(mode int, radius, thickness float64) float64 {
	switch mode {
	case 2:
		return radius
	default:
		return radius + thickness
	}
}

func sphereVolume(r float64) float64 {
	return 4. * math.Pi / 3. * r * r * r
}

// sas3j1xX is 3 j1(x)/x, the sphere amplitude factor, with a Taylor series
// below the cutoff to avoid cancellation.
func sas3j1xX(x float64) float64 {
	if math.Abs(x) < 0.1 {
		x2 := x * x
		return 1. + x2*(-3./30.+x2*(3./840.+x2*(-3./45360.)))
	}
	sin, cos := math.Sincos(x)
	return 3. * (sin - x*cos) / (x * x * x)
}

// CoreShellAmplitude is the radial core-shell form-factor amplitude for the
// three region scattering-length densities. q in [A^-1], lengths in [A].
func CoreShellAmplitude(q, radius, thickness, core, shell, solvent float64) float64 {
	outer := radius + thickness
	f := sphereVolume(radius) * (core - shell) * sas3j1xX(q*radius)
	f += sphereVolume(outer) * (shell - solvent) * sas3j1xX(q*outer)
	return f
}
