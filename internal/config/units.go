package config

import "github.com/bobleesj/sasmodels/internal/utils"

// conversion to kernel units: lengths in [A], wavevectors in [A^-1]
var unitToKernel = map[string]float64{
	"A":     1,
	"nm":    10.,
	"um":    1e4,
	"A^-1":  1,
	"nm^-1": 0.1,
}

type UnitClass int

const (
	Length UnitClass = iota
	WaveVector
)

var unitsInClass = map[UnitClass][]string{
	Length:     {"A", "nm", "um"},
	WaveVector: {"A^-1", "nm^-1"},
}

var classesOfUnits = map[string]UnitClass{
	"A":     Length,
	"nm":    Length,
	"um":    Length,
	"A^-1":  WaveVector,
	"nm^-1": WaveVector,
}

var defaultUnits = []string{"A", "A^-1"}

func checkUnits(units []string) (extended, conflicts []string) {
	classes := map[UnitClass]struct{}{}
	for _, unit := range units {
		if _, some := classes[classesOfUnits[unit]]; some {
			conflicts = append(conflicts, unit)
		} else {
			classes[classesOfUnits[unit]] = struct{}{}
		}
	}
	extended = units
	for _, unit := range defaultUnits {
		if _, some := classes[classesOfUnits[unit]]; !some {
			extended = append(extended, unit)
		}
	}
	return
}

func toKernel(v float64, class UnitClass, units []string) float64 {
	unit := utils.Intersect(unitsInClass[class], units)
	if unit == nil {
		return v
	}
	return v * unitToKernel[*unit]
}
