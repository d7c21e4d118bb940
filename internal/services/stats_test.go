package services

import (
	"math"
	"testing"
)

func TestDescribe(t *testing.T) {
	s := Describe([]float64{5, 3, 1, 4, 2})
	if s.Median != 3 || s.Mean != 3 {
		t.Fatalf("median/mean = %v/%v, want 3/3", s.Median, s.Mean)
	}
	if s.P90 != 5 {
		t.Fatalf("p90 = %v, want 5 (rank floor(5*0.9)=4)", s.P90)
	}
	if s.P10 != 1 || s.P50 != 3 {
		t.Fatalf("p10/p50 = %v/%v", s.P10, s.P50)
	}
	if s.Min != 1 || s.Max != 5 {
		t.Fatalf("min/max = %v/%v", s.Min, s.Max)
	}
	if math.Abs(s.Std-math.Sqrt2) > 1e-12 {
		t.Fatalf("population std = %v, want sqrt(2)", s.Std)
	}
}

func TestDescribeNearestRankEvenLength(t *testing.T) {
	s := Describe([]float64{10, 20, 30, 40})
	// tanpa interpolasi: median = sorted[2]
	if s.Median != 30 {
		t.Fatalf("median = %v, want 30", s.Median)
	}
	if s.P10 != 10 || s.P90 != 40 {
		t.Fatalf("p10/p90 = %v/%v", s.P10, s.P90)
	}
}

func TestDescribeEmpty(t *testing.T) {
	if got := Describe(nil); got != (Stats{}) {
		t.Fatalf("expected zero stats, got %+v", got)
	}
}

func TestDescribeDoesNotMutateInput(t *testing.T) {
	in := []float64{3, 1, 2}
	Describe(in)
	if in[0] != 3 || in[1] != 1 || in[2] != 2 {
		t.Fatalf("input mutated: %v", in)
	}
}
