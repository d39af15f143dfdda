package analyzer

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Descriptive-statistics helpers shared by the analyzers. They wrap gonum
// where its semantics match the contract and enforce the degenerate-input
// sentinels: an empty input yields zero, never NaN or a panic.

// mean returns the arithmetic mean, zero for an empty input.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// sampleStdDev returns the sample standard deviation (n-1 denominator),
// zero for fewer than two values.
func sampleStdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}

// quantile returns the p-quantile of sorted using linear interpolation
// between closest ranks (index h = p*(n-1)), zero for an empty input.
// gonum's cumulant kinds interpolate the empirical CDF, which disagrees
// with this method on small samples, so the interpolation is done here.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	h := p * float64(n-1)
	lo := int(math.Floor(h))
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}

// pearson returns the Pearson correlation coefficient of x and y and
// whether it is defined. It is undefined for fewer than two points or when
// either series has no variance.
func pearson(x, y []float64) (float64, bool) {
	if len(x) != len(y) || len(x) < 2 {
		return 0, false
	}
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}
