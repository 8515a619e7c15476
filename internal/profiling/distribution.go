package profiling

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// DistributionAnalyzer computes summary statistics for a numeric column
type DistributionAnalyzer struct{}

// NewDistributionAnalyzer creates a new distribution analyzer
func NewDistributionAnalyzer() *DistributionAnalyzer {
	return &DistributionAnalyzer{}
}

// AnalyzeDistribution summarizes data; it fails on an empty slice
func (da *DistributionAnalyzer) AnalyzeDistribution(data []float64) (NumericSummary, error) {
	summary := NumericSummary{}

	sum, err := stats.Sum(data)
	if err != nil {
		return summary, err
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return summary, err
	}

	median, err := stats.Median(data)
	if err != nil {
		return summary, err
	}

	min, err := stats.Min(data)
	if err != nil {
		return summary, err
	}

	max, err := stats.Max(data)
	if err != nil {
		return summary, err
	}

	stdDev, err := stats.StandardDeviationSample(data)
	if err != nil || math.IsNaN(stdDev) {
		stdDev = 0
	}

	summary.Sum = sum
	summary.Mean = mean
	summary.Median = median
	summary.Min = min
	summary.Max = max
	summary.StdDev = stdDev
	summary.Skew = calculateSkewness(data)

	return summary, nil
}

// calculateSkewness returns 0 when the sample is too small or constant
func calculateSkewness(data []float64) float64 {
	if len(data) < 3 {
		return 0
	}
	skew := stat.Skew(data, nil)
	if math.IsNaN(skew) || math.IsInf(skew, 0) {
		return 0
	}
	return skew
}
