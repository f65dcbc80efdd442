package quadrature

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// DefaultNodes matches the 76-point rule used by the reference tables.
const DefaultNodes = 76

// Grid is a fixed Gauss-Legendre rule on [-1, 1]. It must not be mutated
// after New: evaluations running on different goroutines share it.
type Grid struct {
	Z []float64 // abscissas
	W []float64 // weights
}

func New(n int) Grid {
	z := make([]float64, n)
	w := make([]float64, n)
	quad.Legendre{}.FixedLocations(z, w, -1., 1.)
	return Grid{Z: z, W: w}
}

// Angle remaps an abscissa z in [-1, 1] to the full period [0, 2pi).
func Angle(z float64) float64 {
	return math.Pi * (z + 1.)
}
