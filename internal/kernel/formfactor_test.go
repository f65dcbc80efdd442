package kernel

import (
	"math"
	"testing"
)

func TestFormVolume(t *testing.T) {
	want := 4. * math.Pi / 3. * 60. * 60. * 60.
	if got := FormVolume(50., 10.); math.Abs(got-want) > 1e-9*want {
		t.Fatalf("FormVolume = %g, want %g", got, want)
	}
}

func TestEffectiveRadius(t *testing.T) {
	if got := EffectiveRadius(1, 50., 10.); got != 60. {
		t.Fatalf("outer radius %g, want 60", got)
	}
	if got := EffectiveRadius(2, 50., 10.); got != 50. {
		t.Fatalf("core radius %g, want 50", got)
	}
	// unknown modes fall back to the outer radius
	if got := EffectiveRadius(0, 50., 10.); got != 60. {
		t.Fatalf("default mode radius %g, want 60", got)
	}
}

func TestSphereAmplitudeFactor(t *testing.T) {
	if got := sas3j1xX(0.); got != 1. {
		t.Fatalf("3j1(x)/x at 0 = %g, want 1", got)
	}
	// series and closed form agree near the cutoff
	for _, x := range []float64{0.0999, 0.1001} {
		series := 1. + x*x*(-3./30.+x*x*(3./840.+x*x*(-3./45360.)))
		exact := 3. * (math.Sin(x) - x*math.Cos(x)) / (x * x * x)
		if math.Abs(series-exact) > 1e-12 {
			t.Fatalf("x=%g: series %.15g vs exact %.15g", x, series, exact)
		}
		if got := sas3j1xX(x); math.Abs(got-exact) > 1e-12 {
			t.Fatalf("x=%g: sas3j1xX=%.15g, want %.15g", x, got, exact)
		}
	}
}

func TestCoreShellAmplitude(t *testing.T) {
	// uniform contrast in solvent of the same density scatters nothing
	if got := CoreShellAmplitude(0.05, 50., 10., 2., 2., 2.); got != 0 {
		t.Fatalf("contrast-matched amplitude %g, want 0", got)
	}
	// forward limit is the contrast-weighted volume
	want := sphereVolume(50.)*(1.-1.7) + sphereVolume(60.)*(1.7-6.4)
	if got := CoreShellAmplitude(0., 50., 10., 1., 1.7, 6.4); math.Abs(got-want) > 1e-9*math.Abs(want) {
		t.Fatalf("forward amplitude %g, want %g", got, want)
	}
}
