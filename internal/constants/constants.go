package constants

const Mu0 float64 = 1.25663706127e-6 // [T m A^-1]
const Quantile95 = 1.96

// conversion of the summed squared SLD amplitudes [1e-12 A^-1]^2 to [cm^-1]
const Scale2D float64 = 0.5 * 1.0e-4  // single detector orientation
const Scale1D float64 = 0.25 * 1.0e-4 // averaged over the detector plane
