package utils

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Float | constraints.Integer
}

func SumSlice[T Number](arr []T) (r T) {
	for i := range arr {
		r += arr[i]
	}
	return
}

func Average[T Number](s []T) (mean float64) {
	for i := range s {
		mean += float64(s[i])
	}
	mean /= float64(len(s))
	return
}

func MeanAndVariance[T Number](s []T, unbiased bool) (mean, variance float64) {
	mean = Average(s)
	for i := range s {
		variance += (float64(s[i]) - mean) * (float64(s[i]) - mean)
	}
	if unbiased {
		variance /= float64(len(s) - 1)
	} else {
		variance /= float64(len(s))
	}

	return
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n == 1 {
		return []float64{lo}
	}
	s := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range s {
		s[i] = lo + step*float64(i)
	}
	s[n-1] = hi
	return s
}

// Logspace returns n geometrically spaced values from lo to hi inclusive.
// Requires lo > 0 and hi > 0.
func Logspace(lo, hi float64, n int) []float64 {
	if n == 1 {
		return []float64{lo}
	}
	s := make([]float64, n)
	ratio := math.Log(hi/lo) / float64(n-1)
	for i := range s {
		s[i] = lo * math.Exp(ratio*float64(i))
	}
	s[n-1] = hi
	return s
}

func Intersect(a, b []string) *string {
	for i := range a {
		if slices.Contains(b, a[i]) {
			return &a[i]
		}
	}
	return nil
}
