package analyzer

import (
	"math"
	"testing"
)

func TestQuantileLinearInterpolation(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 1000}

	tests := []struct {
		p        float64
		expected float64
	}{
		{0.00, 10},
		{0.25, 20},
		{0.50, 30},
		{0.75, 40},
		{1.00, 1000},
	}

	for _, tt := range tests {
		result := quantile(sorted, tt.p)
		if result != tt.expected {
			t.Errorf("quantile(%v, %f) = %f, expected %f", sorted, tt.p, result, tt.expected)
		}
	}
}

func TestQuantileInterpolatesBetweenRanks(t *testing.T) {
	// Four values: the 25th percentile falls at index 0.75, three
	// quarters of the way from 10 to 20.
	sorted := []float64{10, 20, 30, 40}

	if got := quantile(sorted, 0.25); got != 17.5 {
		t.Errorf("quantile = %f, expected 17.5", got)
	}
	if got := quantile(sorted, 0.50); got != 25 {
		t.Errorf("median = %f, expected 25", got)
	}
}

func TestQuantileDegenerate(t *testing.T) {
	if got := quantile(nil, 0.5); got != 0 {
		t.Errorf("quantile(nil) = %f, expected 0", got)
	}
	if got := quantile([]float64{7}, 0.25); got != 7 {
		t.Errorf("quantile single = %f, expected 7", got)
	}
}

func TestMeanDegenerate(t *testing.T) {
	if got := mean(nil); got != 0 {
		t.Errorf("mean(nil) = %f, expected 0", got)
	}
	if got := mean([]float64{2, 4}); got != 3 {
		t.Errorf("mean = %f, expected 3", got)
	}
}

func TestSampleStdDev(t *testing.T) {
	if got := sampleStdDev(nil); got != 0 {
		t.Errorf("stddev(nil) = %f, expected 0", got)
	}
	if got := sampleStdDev([]float64{5}); got != 0 {
		t.Errorf("stddev single = %f, expected 0", got)
	}
	if got := sampleStdDev([]float64{10, 20, 30}); math.Abs(got-10) > 1e-9 {
		t.Errorf("stddev = %f, expected 10", got)
	}
}

func TestPearson(t *testing.T) {
	r, ok := pearson([]float64{1, 2, 3}, []float64{2, 4, 6})
	if !ok {
		t.Fatal("pearson undefined for perfectly correlated series")
	}
	if math.Abs(r-1) > 1e-9 {
		t.Errorf("r = %f, expected 1", r)
	}

	r, ok = pearson([]float64{1, 2, 3}, []float64{6, 4, 2})
	if !ok || math.Abs(r+1) > 1e-9 {
		t.Errorf("r = %f (ok=%v), expected -1", r, ok)
	}
}

func TestPearsonUndefined(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
	}{
		{"empty", nil, nil},
		{"single point", []float64{1}, []float64{2}},
		{"mismatched lengths", []float64{1, 2}, []float64{1}},
		{"no variance", []float64{5, 5, 5}, []float64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := pearson(tt.x, tt.y); ok {
				t.Errorf("pearson(%v, %v) defined, expected undefined", tt.x, tt.y)
			}
		})
	}
}
