package kernel

import "fmt"

// Parameters of one core-shell particle model. Lengths in [A],
// scattering-length densities in [1e-6 A^-2], A in [1e-12 J/m],
// D in [1e-3 J/m^2], fields and magnetization in units consistent with q in
// [1e10 m^-1], tilt angles in [deg].
type Parameters struct {
	Radius    float64
	Thickness float64

	NucCore    float64
	NucShell   float64
	NucSolvent float64

	MagCore    float64
	MagShell   float64
	MagSolvent float64

	HkCore float64 // anisotropy field amplitude of the core
	Hi     float64 // internal field
	Ms     float64 // saturation magnetization
	A      float64 // exchange stiffness
	D      float64 // DMI constant

	UpI float64 // incident beam polarization efficiency
	UpF float64 // final beam polarization efficiency

	Alpha float64
	Beta  float64
}

// Validate rejects parameter sets the kernel cannot evaluate. The kernel
// itself never checks these: a violation is a configuration error, not a
// runtime fault.
func (p Parameters) Validate() error {
	if p.Ms == 0 {
		return fmt.Errorf("saturation magnetization Ms must be nonzero")
	}
	if p.Radius < 0 || p.Thickness < 0 {
		return fmt.Errorf("negative geometry: radius %g, thickness %g", p.Radius, p.Thickness)
	}
	if p.UpI < 0 || p.UpI > 1 {
		return fmt.Errorf("incident polarization efficiency %g outside [0,1]", p.UpI)
	}
	if p.UpF < 0 || p.UpF > 1 {
		return fmt.Errorf("final polarization efficiency %g outside [0,1]", p.UpF)
	}
	return nil
}
