package kernel

import "math"

// RotateToSampleFrame rotates the detector-plane unit direction
// (cosTheta, sinTheta) scaled by q into the sample frame. The magnetic field
// is along (0,0,1); the detector orientation precesses in a cone around it
// with tilt angles alpha and beta. [deg]
func RotateToSampleFrame(q, cosTheta, sinTheta, alpha, beta float64) (x, y, z float64) {
	sinA, cosA := math.Sincos(alpha * math.Pi / 180.)
	sinB, cosB := math.Sincos(beta * math.Pi / 180.)
	x = q * cosA * cosTheta
	y = q * (cosTheta*sinA*sinB + cosB*sinTheta)
	z = q * (-cosB*sinA*cosTheta + sinB*sinTheta)
	return
}
