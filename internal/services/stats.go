// internal/services/stats.go
// Statistik deskriptif (mean, median, std populasi, persentil nearest-rank)

package services

import (
	"math"
	"sort"
)

type Stats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P10    float64 `json:"p10"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
}

// Describe: persentil = sorted[floor(n*f)] tanpa interpolasi. Input kosong -> semua nol.
func Describe(values []float64) Stats {
	n := len(values)
	if n == 0 {
		return Stats{}
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	var ss float64
	for _, v := range values {
		ss += (v - mean) * (v - mean)
	}

	median := sorted[n/2]
	return Stats{
		Mean:   mean,
		Median: median,
		Std:    math.Sqrt(ss / float64(n)),
		Min:    sorted[0],
		Max:    sorted[n-1],
		P10:    sorted[rank(n, 0.1)],
		P50:    median,
		P90:    sorted[rank(n, 0.9)],
	}
}

func rank(n int, f float64) int {
	i := int(math.Floor(float64(n) * f))
	if i >= n {
		i = n - 1
	}
	return i
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var s float64
	for _, v := range values {
		s += v
	}
	return s / float64(len(values))
}
