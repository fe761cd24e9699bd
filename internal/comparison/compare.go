// Package comparison quantifies the incremental effect of a test scenario
// over a baseline scenario of equal length.
package comparison

import (
	"github.com/insurewise/agency-growth/internal/simulation"
	"github.com/insurewise/agency-growth/pkg/constants"
	"github.com/insurewise/agency-growth/pkg/mathutil"
)

// Result is the derived comparison between a baseline and a test scenario.
// PaybackMonth is 1-indexed; zero means cumulative incremental profit never
// turned positive within the horizon.
type Result struct {
	PaybackMonth           int
	ROIPercent             float64
	TotalIncrementalProfit float64
	TotalIncrementalCost   float64
	PolicyGrowth           float64
	PolicyGrowthPercent    float64

	// Full incremental series, for charting and reports.
	IncrementalMonthly    []float64
	IncrementalCumulative []float64
}

// Compare computes the incremental profit series, payback month, ROI, and
// policy growth of test over baseline. Both scenarios must have the same
// length; an empty or mismatched pair yields a zero Result rather than an
// error. Profit and cost deltas are rounded to cents before payback and ROI
// are derived. ROI is reported as zero whenever the total incremental cost
// is not positive, so a test scenario that costs less than baseline never
// produces an undefined or negative-denominator ratio.
func Compare(baseline, test simulation.Scenario) Result {
	if len(baseline) == 0 || len(test) == 0 || len(baseline) != len(test) {
		return Result{}
	}

	n := len(test)
	monthly := make([]float64, n)
	cumulative := make([]float64, n)

	running := 0.0
	paybackMonth := 0
	totalCost := 0.0
	for i := 0; i < n; i++ {
		monthly[i] = mathutil.Round(test[i].NetProfit - baseline[i].NetProfit)
		running += monthly[i]
		cumulative[i] = running
		// Strictly positive: a cumulative of exactly zero is not yet paid back.
		if paybackMonth == 0 && running > 0 {
			paybackMonth = i + 1
		}
		totalCost += test[i].TotalCosts - baseline[i].TotalCosts
	}
	totalProfit := running
	totalCost = mathutil.Round(totalCost)

	roiPercent := 0.0
	if mathutil.IsPositive(totalCost) {
		roiPercent = totalProfit / totalCost * constants.PercentageMultiplier
	}

	policyGrowth := test[n-1].PoliciesEnd - baseline[n-1].PoliciesEnd
	policyGrowthPercent := 0.0
	if !mathutil.IsZero(baseline[n-1].PoliciesEnd) {
		policyGrowthPercent = policyGrowth / baseline[n-1].PoliciesEnd * constants.PercentageMultiplier
	}

	return Result{
		PaybackMonth:           paybackMonth,
		ROIPercent:             roiPercent,
		TotalIncrementalProfit: totalProfit,
		TotalIncrementalCost:   totalCost,
		PolicyGrowth:           policyGrowth,
		PolicyGrowthPercent:    policyGrowthPercent,
		IncrementalMonthly:     monthly,
		IncrementalCumulative:  cumulative,
	}
}
