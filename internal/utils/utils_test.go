package utils

import (
	"math"
	"os"
	"strings"
	"testing"
)

func TestLinspace(t *testing.T) {
	s := Linspace(0., 1., 5)
	if len(s) != 5 || s[0] != 0. || s[4] != 1. {
		t.Fatalf("unexpected grid %v", s)
	}
	if math.Abs(s[2]-0.5) > 1e-15 {
		t.Fatalf("midpoint %g, want 0.5", s[2])
	}
	if got := Linspace(3., 7., 1); len(got) != 1 || got[0] != 3. {
		t.Fatalf("single point grid %v", got)
	}
}

func TestLogspace(t *testing.T) {
	s := Logspace(1e-3, 0.1, 3)
	if s[0] != 1e-3 || s[2] != 0.1 {
		t.Fatalf("endpoints %g, %g", s[0], s[2])
	}
	if math.Abs(s[1]-1e-2) > 1e-15 {
		t.Fatalf("geometric midpoint %g, want 1e-2", s[1])
	}
}

func TestMeanAndVariance(t *testing.T) {
	mean, variance := MeanAndVariance([]float64{1., 2., 3., 4.}, true)
	if mean != 2.5 {
		t.Fatalf("mean %g, want 2.5", mean)
	}
	if math.Abs(variance-5./3.) > 1e-15 {
		t.Fatalf("variance %g, want 5/3", variance)
	}
	if got := SumSlice([]int{1, 2, 3}); got != 6 {
		t.Fatalf("sum %d, want 6", got)
	}
}

func TestIntersect(t *testing.T) {
	if got := Intersect([]string{"nm", "A"}, []string{"A"}); got == nil || *got != "A" {
		t.Fatalf("intersect = %v", got)
	}
	if got := Intersect([]string{"nm"}, []string{"Torr"}); got != nil {
		t.Fatalf("unexpected intersection %q", *got)
	}
}

func TestCSVNaturalOrder(t *testing.T) {
	data := CSV{{"m10", "a"}, {"m2", "b"}}
	if !data.Less(1, 0) {
		t.Fatal("m2 should sort before m10")
	}
}

func TestWriteAsCSV(t *testing.T) {
	dir := t.TempDir() + "/"
	data := CSV{{"m10", "1"}, {"m2", "2"}}
	if err := WriteAsCSV(data, false, dir, "run", "summary", []string{"model", "value"}); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(dir + "run_summary.txt")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	want := []string{"model,value", "m2,2", "m10,1"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
